package domain

// Summary holds the descriptive statistics for one filtered view.
type Summary struct {
	Count           int     `json:"count"`
	MeanDepth       float64 `json:"mean_depth"`
	MinDepth        float64 `json:"min_depth"`
	MaxDepth        float64 `json:"max_depth"`
	MeanLatitude    float64 `json:"mean_latitude"`
	MeanLongitude   float64 `json:"mean_longitude"`
	UniqueLocations int     `json:"unique_locations"`
	TopCountry      string  `json:"top_country"`
	TopPurpose      string  `json:"top_purpose"`
	TopTestType     string  `json:"top_test_type"`
	PeakYear        int     `json:"peak_year"`
	PeakYearCount   int     `json:"peak_year_count"`
}

// Summarize computes descriptive statistics over a filtered view.
// Returns nil for an empty view; callers render a no-data warning instead of
// attempting further computation.
func Summarize(ds Dataset) *Summary {
	if len(ds) == 0 {
		return nil
	}

	s := &Summary{
		Count:    len(ds),
		MinDepth: ds[0].Depth,
		MaxDepth: ds[0].Depth,
	}

	var sumDepth, sumLat, sumLon float64
	locations := make(map[string]struct{})
	for _, r := range ds {
		sumDepth += r.Depth
		sumLat += r.Latitude
		sumLon += r.Longitude
		if r.Depth < s.MinDepth {
			s.MinDepth = r.Depth
		}
		if r.Depth > s.MaxDepth {
			s.MaxDepth = r.Depth
		}
		locations[r.Location] = struct{}{}
	}

	n := float64(len(ds))
	s.MeanDepth = sumDepth / n
	s.MeanLatitude = sumLat / n
	s.MeanLongitude = sumLon / n
	s.UniqueLocations = len(locations)

	s.TopCountry = mode(ds, func(r Record) string { return r.Country })
	s.TopPurpose = mode(ds, func(r Record) string { return r.Purpose })
	s.TopTestType = mode(ds, func(r Record) string { return r.TestType })
	s.PeakYear, s.PeakYearCount = peakYear(ds)

	return s
}

// mode returns the most frequent value of key over ds. Ties break on the
// first tied value encountered in row order, so results are deterministic.
func mode(ds Dataset, key func(Record) string) string {
	counts := make(map[string]int, len(ds))
	for _, r := range ds {
		counts[key(r)]++
	}

	best := ""
	bestCount := 0
	seen := make(map[string]struct{}, len(counts))
	for _, r := range ds {
		v := key(r)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		if counts[v] > bestCount {
			best = v
			bestCount = counts[v]
		}
	}
	return best
}

// peakYear returns the year with the most records and that count, with the
// same first-encountered tie-break as mode.
func peakYear(ds Dataset) (int, int) {
	counts := make(map[int]int, len(ds))
	for _, r := range ds {
		counts[r.Year]++
	}

	best := 0
	bestCount := 0
	seen := make(map[int]struct{}, len(counts))
	for _, r := range ds {
		if _, ok := seen[r.Year]; ok {
			continue
		}
		seen[r.Year] = struct{}{}
		if counts[r.Year] > bestCount {
			best = r.Year
			bestCount = counts[r.Year]
		}
	}
	return best, bestCount
}
