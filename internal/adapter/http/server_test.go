package http_test

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/ktpham/nuclear-explorer/internal/adapter/http"
	"github.com/ktpham/nuclear-explorer/internal/domain"
	"github.com/ktpham/nuclear-explorer/internal/explorer"
	"github.com/ktpham/nuclear-explorer/internal/observability"
)

func testData() domain.Dataset {
	return domain.Dataset{
		{Country: "USA", Location: "Nevada Test Site, USA", Year: 1965, Depth: 500, Category: "Shaft", TestType: "Shaft", TestName: "Palanquin", Purpose: "Weapons Development", Latitude: 37.1, Longitude: -116.0},
		{Country: "USA", Location: "Pacific Proving Grounds, USA", Year: 1970, Depth: 300, Category: "Atmospheric", TestType: "Atmospheric", TestName: "Bravo Follow", Purpose: "Weapons Development", Latitude: 11.6, Longitude: 165.3},
		{Country: "USSR", Location: "Semipalatinsk, USSR", Year: 1965, Depth: 800, Category: "Shaft", TestType: "Shaft", TestName: "Chagan", Purpose: "Peaceful", Latitude: 49.9, Longitude: 79.0},
		{Country: "France", Location: "Reggane, France", Year: 1966, Depth: 200, Category: "Shaft", TestType: "Shaft", TestName: "Rubis", Purpose: "Weapons Development", Latitude: 26.7, Longitude: 0.3},
	}
}

func newTestServer(t *testing.T, data domain.Dataset, loadErr error) *httpadapter.Server {
	t.Helper()
	banner := filepath.Join(t.TempDir(), "banner.png")
	require.NoError(t, os.WriteFile(banner, []byte("png-bytes"), 0o644))

	exp := explorer.New(data, 0, loadErr, slog.Default(), observability.NewMetricsForTesting())
	return httpadapter.NewServer(":0", banner, exp, slog.Default())
}

func get(srv *httpadapter.Server, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHealthz(t *testing.T) {
	rec := get(newTestServer(t, testData(), nil), "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestReadyz(t *testing.T) {
	rec := get(newTestServer(t, testData(), nil), "/readyz")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	rec := get(newTestServer(t, testData(), nil), "/metrics")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestStatus(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		rec := get(newTestServer(t, testData(), nil), "/api/status")

		assert.Equal(t, http.StatusOK, rec.Code)

		var status explorer.Status
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
		assert.Equal(t, "Nuclear Explosions Explorer", status.Title)
		assert.Equal(t, 4, status.Rows)
		assert.Empty(t, status.LoadError)
	})

	t.Run("load failure surfaces the error banner", func(t *testing.T) {
		rec := get(newTestServer(t, domain.Dataset{}, errors.New("open dataset: gone")), "/api/status")

		assert.Equal(t, http.StatusOK, rec.Code)

		var status explorer.Status
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
		assert.Zero(t, status.Rows)
		assert.Contains(t, status.LoadError, "Error loading data")
	})
}

func TestFilters(t *testing.T) {
	rec := get(newTestServer(t, testData(), nil), "/api/filters")

	assert.Equal(t, http.StatusOK, rec.Code)

	var opts explorer.FilterOptions
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &opts))
	assert.Equal(t, []string{"USA", "USSR", "France"}, opts.Countries)
	assert.Equal(t, "All", opts.Categories[0])
	assert.Equal(t, 1965, opts.MinYear)
	assert.Equal(t, 1970, opts.MaxYear)
}

func TestSummary(t *testing.T) {
	srv := newTestServer(t, testData(), nil)

	t.Run("explicit criteria", func(t *testing.T) {
		rec := get(srv, "/api/summary?country=USA&country=USSR&year_lo=1960&year_hi=1968&category=All")

		assert.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Summary *domain.Summary `json:"summary"`
			Warning string          `json:"warning"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.NotNil(t, body.Summary)
		assert.Equal(t, 2, body.Summary.Count)
		assert.Equal(t, 800.0, body.Summary.MaxDepth)
		assert.Equal(t, "Shaft", body.Summary.TopTestType)
		assert.Empty(t, body.Warning)
	})

	t.Run("no matches returns the warning", func(t *testing.T) {
		rec := get(srv, "/api/summary?search=xyz123")

		assert.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body["warning"], "No data matches")
		assert.NotContains(t, body, "summary")
	})

	t.Run("invalid year is a 400", func(t *testing.T) {
		rec := get(srv, "/api/summary?year_lo=abc")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "year_lo")
	})
}

func TestViews(t *testing.T) {
	srv := newTestServer(t, testData(), nil)

	t.Run("overview with default criteria", func(t *testing.T) {
		rec := get(srv, "/api/views/overview")

		assert.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		// Defaults: USA+USSR, 1960-1980 clamped to 1965-1970 → 3 records.
		assert.Equal(t, float64(3), body["count"])
	})

	t.Run("each section responds", func(t *testing.T) {
		for _, section := range []string{"overview", "charts", "map", "details", "feedback"} {
			rec := get(srv, "/api/views/"+section)
			assert.Equal(t, http.StatusOK, rec.Code, section)
		}
	})

	t.Run("unknown section is a 404", func(t *testing.T) {
		rec := get(srv, "/api/views/downloads")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "unknown section")
	})

	t.Run("empty filter result renders the map notice", func(t *testing.T) {
		rec := get(srv, "/api/views/map?country=UK")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "No map data")
	})
}

func TestFeedback(t *testing.T) {
	srv := newTestServer(t, testData(), nil)

	post := func(body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/feedback", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		srv.ServeHTTP(rec, req)
		return rec
	}

	t.Run("comment without name echoes rating and comment only", func(t *testing.T) {
		rec := post(`{"rating":4,"name":"","comment":"Great tool"}`)

		assert.Equal(t, http.StatusOK, rec.Code)

		var ack domain.Acknowledgment
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ack))
		assert.Equal(t, 4, ack.Rating)
		assert.Equal(t, "Great tool", ack.Comment)
		assert.Empty(t, ack.Name)
		assert.NotEmpty(t, ack.ID)

		// The name field is omitted from the wire form entirely.
		assert.NotContains(t, rec.Body.String(), `"name"`)
	})

	t.Run("rating out of range is a 400", func(t *testing.T) {
		rec := post(`{"rating":0}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body is a 400", func(t *testing.T) {
		rec := post(`{not json`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("GET is not allowed", func(t *testing.T) {
		rec := get(srv, "/api/feedback")
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestBanner(t *testing.T) {
	rec := get(newTestServer(t, testData(), nil), "/banner")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "png-bytes", rec.Body.String())
}
