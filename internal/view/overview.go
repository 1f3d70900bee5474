package view

import "github.com/ktpham/nuclear-explorer/internal/domain"

// Overview restates the record count and selected year range, plus headline
// metrics when the view is non-empty.
type Overview struct {
	Count   int              `json:"count"`
	YearLo  int              `json:"year_lo"`
	YearHi  int              `json:"year_hi"`
	Metrics *OverviewMetrics `json:"metrics,omitempty"`
}

// OverviewMetrics are the three headline numbers shown for a non-empty view.
type OverviewMetrics struct {
	DeepestDepth    float64 `json:"deepest_depth"`
	ShallowestDepth float64 `json:"shallowest_depth"`
	PeakYear        int     `json:"peak_year"`
	PeakYearCount   int     `json:"peak_year_count"`
}

func renderOverview(view domain.Dataset, sum *domain.Summary, c domain.Criteria) any {
	o := Overview{
		Count:  len(view),
		YearLo: c.YearLo,
		YearHi: c.YearHi,
	}
	if sum != nil {
		o.Metrics = &OverviewMetrics{
			DeepestDepth:    sum.MaxDepth,
			ShallowestDepth: sum.MinDepth,
			PeakYear:        sum.PeakYear,
			PeakYearCount:   sum.PeakYearCount,
		}
	}
	return o
}
