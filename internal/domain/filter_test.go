package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testDataset mirrors the four-record scenario used throughout the filter and
// summary tests: two USA tests, one USSR, one France.
func testDataset() Dataset {
	return Dataset{
		{Country: "USA", Location: "Nevada Test Site, USA", Year: 1965, Depth: 500, Category: "Shaft", TestType: "Shaft", TestName: "Palanquin", Purpose: "Weapons Development", Latitude: 37.1, Longitude: -116.0},
		{Country: "USA", Location: "Pacific Proving Grounds, USA", Year: 1970, Depth: 300, Category: "Atmospheric", TestType: "Atmospheric", TestName: "Bravo Follow", Purpose: "Weapons Development", Latitude: 11.6, Longitude: 165.3},
		{Country: "USSR", Location: "Semipalatinsk, USSR", Year: 1965, Depth: 800, Category: "Shaft", TestType: "Shaft", TestName: "Chagan", Purpose: "Peaceful", Latitude: 49.9, Longitude: 79.0},
		{Country: "France", Location: "Reggane, France", Year: 1966, Depth: 200, Category: "Shaft", TestType: "Shaft", TestName: "Rubis", Purpose: "Weapons Development", Latitude: 26.7, Longitude: 0.3},
	}
}

func TestFilter(t *testing.T) {
	ds := testDataset()

	t.Run("countries and years", func(t *testing.T) {
		result := Filter(ds, Criteria{
			Countries:  []string{"USA", "USSR"},
			YearLo:     1960,
			YearHi:     1968,
			Categories: []string{AllCategories},
		})

		require.Len(t, result, 2)
		assert.Equal(t, "Palanquin", result[0].TestName)
		assert.Equal(t, "Chagan", result[1].TestName)
	})

	t.Run("empty country set yields empty view", func(t *testing.T) {
		result := Filter(ds, Criteria{YearLo: 1945, YearHi: 1998, Categories: []string{AllCategories}})
		assert.Empty(t, result)
	})

	t.Run("year interval inclusive on both ends", func(t *testing.T) {
		result := Filter(ds, Criteria{
			Countries:  []string{"USA", "USSR", "France"},
			YearLo:     1965,
			YearHi:     1966,
			Categories: []string{AllCategories},
		})

		require.Len(t, result, 3)
		assert.Equal(t, 1965, result[0].Year)
		assert.Equal(t, 1966, result[2].Year)
	})

	t.Run("category selection intersects", func(t *testing.T) {
		result := Filter(ds, Criteria{
			Countries:  []string{"USA", "USSR", "France"},
			YearLo:     1945,
			YearHi:     1998,
			Categories: []string{"Atmospheric"},
		})

		require.Len(t, result, 1)
		assert.Equal(t, "Bravo Follow", result[0].TestName)
	})

	t.Run("All sentinel overrides other selected categories", func(t *testing.T) {
		withSentinel := Filter(ds, Criteria{
			Countries:  []string{"USA", "USSR", "France"},
			YearLo:     1945,
			YearHi:     1998,
			Categories: []string{AllCategories, "Atmospheric"},
		})
		sentinelOnly := Filter(ds, Criteria{
			Countries:  []string{"USA", "USSR", "France"},
			YearLo:     1945,
			YearHi:     1998,
			Categories: []string{AllCategories},
		})

		// The sentinel drops the category condition; it is not intersected
		// with the other selections.
		assert.Equal(t, sentinelOnly, withSentinel)
		assert.Len(t, withSentinel, 4)
	})

	t.Run("empty category set matches nothing", func(t *testing.T) {
		// Like the empty country set: an empty selection is an empty
		// selection, not "no condition". Only the sentinel drops it.
		result := Filter(ds, Criteria{
			Countries: []string{"USA", "USSR", "France"},
			YearLo:    1945,
			YearHi:    1998,
		})
		assert.Empty(t, result)

		result = Filter(ds, Criteria{
			Countries:  []string{"USA", "USSR", "France"},
			YearLo:     1945,
			YearHi:     1998,
			Categories: []string{},
		})
		assert.Empty(t, result)
	})

	t.Run("search is case-insensitive substring", func(t *testing.T) {
		result := Filter(ds, Criteria{
			Countries:  []string{"USA", "USSR", "France"},
			YearLo:     1945,
			YearHi:     1998,
			Categories: []string{AllCategories},
			Search:     "CHAG",
		})

		require.Len(t, result, 1)
		assert.Equal(t, "Chagan", result[0].TestName)
	})

	t.Run("search with no match yields empty view", func(t *testing.T) {
		result := Filter(ds, Criteria{
			Countries:  []string{"USA", "USSR", "France"},
			YearLo:     1945,
			YearHi:     1998,
			Categories: []string{AllCategories},
			Search:     "xyz123",
		})

		assert.Empty(t, result)
		assert.Nil(t, Summarize(result))
	})

	t.Run("empty test name never matches a non-empty search", func(t *testing.T) {
		withUnnamed := append(Dataset{}, ds...)
		withUnnamed = append(withUnnamed, Record{Country: "USA", Year: 1965, Category: "Shaft"})

		result := Filter(withUnnamed, Criteria{
			Countries:  []string{"USA"},
			YearLo:     1945,
			YearHi:     1998,
			Categories: []string{AllCategories},
			Search:     "a",
		})

		for _, r := range result {
			assert.NotEmpty(t, r.TestName)
		}
	})
}

func TestFilterOrderPreservation(t *testing.T) {
	ds := testDataset()
	result := Filter(ds, Criteria{
		Countries:  []string{"USA", "USSR", "France"},
		YearLo:     1945,
		YearHi:     1998,
		Categories: []string{"Shaft"},
	})

	require.Len(t, result, 3)
	assert.Equal(t, []string{"Palanquin", "Chagan", "Rubis"},
		[]string{result[0].TestName, result[1].TestName, result[2].TestName})
}

func TestFilterIdempotence(t *testing.T) {
	ds := testDataset()
	c := Criteria{
		Countries:  []string{"USA", "USSR"},
		YearLo:     1960,
		YearHi:     1968,
		Categories: []string{"Shaft"},
		Search:     "a",
	}

	once := Filter(ds, c)
	twice := Filter(once, c)

	assert.Equal(t, once, twice)
}

func TestFilterMonotonicity(t *testing.T) {
	ds := testDataset()
	narrow := Criteria{
		Countries:  []string{"USA"},
		YearLo:     1964,
		YearHi:     1966,
		Categories: []string{"Shaft"},
	}
	wide := Criteria{
		Countries:  []string{"USA", "USSR", "France"},
		YearLo:     1945,
		YearHi:     1998,
		Categories: []string{"Shaft", "Atmospheric"},
	}

	narrowResult := Filter(ds, narrow)
	wideResult := Filter(ds, wide)

	for _, r := range narrowResult {
		assert.Contains(t, wideResult, r)
	}
}
