package view

import "github.com/ktpham/nuclear-explorer/internal/domain"

// Map plots every record as a point, centered on the view's mean coordinate.
// The tile engine drawing it is out of scope; this is pure series data.
type Map struct {
	Notice          string     `json:"notice,omitempty"`
	CenterLatitude  float64    `json:"center_latitude,omitempty"`
	CenterLongitude float64    `json:"center_longitude,omitempty"`
	Points          []MapPoint `json:"points,omitempty"`
}

// MapPoint is one test site with its tooltip fields.
type MapPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country"`
	Location  string  `json:"location"`
	Year      int     `json:"year"`
	Depth     float64 `json:"depth"`
	Category  string  `json:"category"`
}

func renderMap(view domain.Dataset, sum *domain.Summary, _ domain.Criteria) any {
	if sum == nil {
		return Map{Notice: "No map data to display."}
	}

	points := make([]MapPoint, 0, len(view))
	for _, r := range view {
		points = append(points, MapPoint{
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
			Country:   r.Country,
			Location:  r.Location,
			Year:      r.Year,
			Depth:     r.Depth,
			Category:  r.Category,
		})
	}

	return Map{
		CenterLatitude:  sum.MeanLatitude,
		CenterLongitude: sum.MeanLongitude,
		Points:          points,
	}
}
