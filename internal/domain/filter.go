package domain

import "strings"

// AllCategories is the sentinel category selection meaning "do not filter by
// category". If it appears anywhere in Criteria.Categories the category
// condition is dropped entirely, not intersected with the other selections.
const AllCategories = "All"

// Criteria holds the user-selected filter parameters for one interaction.
// It is a transient value object: recomputed per request, never persisted.
type Criteria struct {
	Countries  []string `json:"countries"`
	YearLo     int      `json:"year_lo"` // inclusive
	YearHi     int      `json:"year_hi"` // inclusive
	Categories []string `json:"categories"` // empty set matches nothing; the AllCategories sentinel drops the condition
	Search     string   `json:"search"` // case-insensitive substring on test name; empty = no search
}

// Filter returns the subset of ds matching c, in the dataset's original row
// order. All conditions are AND-ed. An empty country selection yields an
// empty view, not an error.
func Filter(ds Dataset, c Criteria) Dataset {
	countries := toSet(c.Countries)

	var categories map[string]struct{}
	if !containsAll(c.Categories) {
		categories = toSet(c.Categories)
	}

	search := strings.ToLower(c.Search)

	out := make(Dataset, 0, len(ds))
	for _, r := range ds {
		if _, ok := countries[r.Country]; !ok {
			continue
		}
		if r.Year < c.YearLo || r.Year > c.YearHi {
			continue
		}
		if categories != nil {
			if _, ok := categories[r.Category]; !ok {
				continue
			}
		}
		if search != "" && !strings.Contains(strings.ToLower(r.TestName), search) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func containsAll(categories []string) bool {
	for _, c := range categories {
		if c == AllCategories {
			return true
		}
	}
	return false
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
