package domain

// Record is one nuclear test entry. Immutable once loaded.
type Record struct {
	Country   string  `json:"country"`
	Location  string  `json:"location"` // "<deployment location>, <country>", derived at load
	Year      int     `json:"year"`
	Month     int     `json:"month"`
	Day       int     `json:"day"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Depth     float64 `json:"depth"` // meters; raw source sign convention
	Purpose   string  `json:"purpose"`
	TestName  string  `json:"test_name"`
	TestType  string  `json:"test_type"`
	Category  string  `json:"category"` // alias of TestType, derived at load
}

// Dataset is the ordered collection of valid records after load-time
// filtering of incomplete rows. Filtered views are Datasets too; they
// preserve the original row order.
type Dataset []Record
