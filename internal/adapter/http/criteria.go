package http

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/ktpham/nuclear-explorer/internal/domain"
)

// criteriaFromQuery decodes filter parameters from the query string,
// falling back to the session defaults for anything absent.
//
//	country=USA&country=USSR   repeated country selections
//	category=All&category=Shaft  repeated; "All" drops the category condition
//	year_lo=1960&year_hi=1980  inclusive year interval
//	search=chagan              case-insensitive test-name substring
func (s *Server) criteriaFromQuery(q url.Values) (domain.Criteria, error) {
	c := s.explorer.DefaultCriteria()

	if countries, ok := q["country"]; ok {
		c.Countries = countries
	}
	if categories, ok := q["category"]; ok {
		c.Categories = categories
	}
	if v := q.Get("year_lo"); v != "" {
		lo, err := strconv.Atoi(v)
		if err != nil {
			return domain.Criteria{}, fmt.Errorf("invalid year_lo %q", v)
		}
		c.YearLo = lo
	}
	if v := q.Get("year_hi"); v != "" {
		hi, err := strconv.Atoi(v)
		if err != nil {
			return domain.Criteria{}, fmt.Errorf("invalid year_hi %q", v)
		}
		c.YearHi = hi
	}
	c.Search = q.Get("search")

	return c, nil
}
