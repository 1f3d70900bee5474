package view

import (
	"sort"

	"github.com/ktpham/nuclear-explorer/internal/domain"
)

// depthBins is the number of equal-width histogram bins for the depth chart.
const depthBins = 10

// Charts carries the two chart series: a depth histogram grouped by category
// and a per-year test count. Both require more than one record.
type Charts struct {
	Notice         string           `json:"notice,omitempty"`
	DepthHistogram []CategorySeries `json:"depth_histogram,omitempty"`
	TestsPerYear   []YearCount      `json:"tests_per_year,omitempty"`
}

// CategorySeries is one category's depth distribution over the shared bins.
type CategorySeries struct {
	Category string         `json:"category"`
	Bins     []HistogramBin `json:"bins"`
}

// HistogramBin counts records whose depth falls in [Lo, Hi). The last bin is
// closed on both ends so the maximum depth lands somewhere.
type HistogramBin struct {
	Lo    float64 `json:"lo"`
	Hi    float64 `json:"hi"`
	Count int     `json:"count"`
}

// YearCount is one bar of the per-year chart.
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

func renderCharts(view domain.Dataset, _ *domain.Summary, _ domain.Criteria) any {
	if len(view) <= 1 {
		return Charts{Notice: "Not enough data to generate charts. Try adjusting your filters."}
	}
	return Charts{
		DepthHistogram: depthHistogram(view),
		TestsPerYear:   testsPerYear(view),
	}
}

// depthHistogram bins depths over the filtered range, one series per category
// in first-encountered row order. All series share the same bin edges so the
// front-end can stack or group them.
func depthHistogram(view domain.Dataset) []CategorySeries {
	lo, hi := view[0].Depth, view[0].Depth
	for _, r := range view {
		if r.Depth < lo {
			lo = r.Depth
		}
		if r.Depth > hi {
			hi = r.Depth
		}
	}

	bins := depthBins
	width := (hi - lo) / float64(bins)
	if width == 0 {
		// All depths identical: a single degenerate bin holds everything.
		bins = 1
	}

	binIndex := func(d float64) int {
		if width == 0 {
			return 0
		}
		i := int((d - lo) / width)
		if i >= bins {
			i = bins - 1
		}
		return i
	}

	var order []string
	counts := make(map[string][]int)
	for _, r := range view {
		if _, ok := counts[r.Category]; !ok {
			order = append(order, r.Category)
			counts[r.Category] = make([]int, bins)
		}
		counts[r.Category][binIndex(r.Depth)]++
	}

	series := make([]CategorySeries, 0, len(order))
	for _, cat := range order {
		s := CategorySeries{Category: cat, Bins: make([]HistogramBin, bins)}
		for i := range s.Bins {
			s.Bins[i] = HistogramBin{
				Lo:    lo + float64(i)*width,
				Hi:    lo + float64(i+1)*width,
				Count: counts[cat][i],
			}
		}
		if width == 0 {
			s.Bins[0].Hi = hi
		}
		series = append(series, s)
	}
	return series
}

func testsPerYear(view domain.Dataset) []YearCount {
	counts := make(map[int]int)
	for _, r := range view {
		counts[r.Year]++
	}

	out := make([]YearCount, 0, len(counts))
	for year, count := range counts {
		out = append(out, YearCount{Year: year, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}
