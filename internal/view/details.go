package view

import (
	"sort"

	"github.com/ktpham/nuclear-explorer/internal/domain"
)

const (
	deepestLimit = 5
	previewLimit = 10
)

// Details shows the deepest tests and a preview of matching records.
type Details struct {
	Notice  string       `json:"notice,omitempty"`
	Deepest []DepthRow   `json:"deepest,omitempty"`
	Preview []PreviewRow `json:"preview,omitempty"`
}

// DepthRow is one row of the "deepest explosions" table.
type DepthRow struct {
	Country  string  `json:"country"`
	Location string  `json:"location"`
	Year     int     `json:"year"`
	Depth    float64 `json:"depth"`
	Category string  `json:"category"`
}

// PreviewRow is one row of the test-details preview table.
type PreviewRow struct {
	TestName string `json:"test_name"`
	TestType string `json:"test_type"`
	Purpose  string `json:"purpose"`
	Country  string `json:"country"`
	Year     int    `json:"year"`
	Category string `json:"category"`
}

func renderDetails(view domain.Dataset, _ *domain.Summary, _ domain.Criteria) any {
	if len(view) == 0 {
		return Details{Notice: "No test details available for selected filters."}
	}
	return Details{
		Deepest: deepestRows(view),
		Preview: previewRows(view),
	}
}

// deepestRows returns up to five records by descending depth. The stable sort
// keeps original row order for equal depths.
func deepestRows(view domain.Dataset) []DepthRow {
	byDepth := append(domain.Dataset{}, view...)
	sort.SliceStable(byDepth, func(i, j int) bool { return byDepth[i].Depth > byDepth[j].Depth })

	if len(byDepth) > deepestLimit {
		byDepth = byDepth[:deepestLimit]
	}

	rows := make([]DepthRow, 0, len(byDepth))
	for _, r := range byDepth {
		rows = append(rows, DepthRow{
			Country:  r.Country,
			Location: r.Location,
			Year:     r.Year,
			Depth:    r.Depth,
			Category: r.Category,
		})
	}
	return rows
}

func previewRows(view domain.Dataset) []PreviewRow {
	n := len(view)
	if n > previewLimit {
		n = previewLimit
	}

	rows := make([]PreviewRow, 0, n)
	for _, r := range view[:n] {
		rows = append(rows, PreviewRow{
			TestName: r.TestName,
			TestType: r.TestType,
			Purpose:  r.Purpose,
			Country:  r.Country,
			Year:     r.Year,
			Category: r.Category,
		})
	}
	return rows
}
