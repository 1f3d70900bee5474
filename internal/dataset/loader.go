// Package dataset loads the nuclear explosions CSV into an in-memory
// domain.Dataset, dropping incomplete rows and deriving display columns.
// Loads are cached per source path for the process lifetime.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ktpham/nuclear-explorer/internal/domain"
)

// Source column names, verbatim from the published CSV (including the
// misspelled "Cordinates" prefix).
const (
	ColCountry   = "WEAPON SOURCE COUNTRY"
	ColLocation  = "WEAPON DEPLOYMENT LOCATION"
	ColLatitude  = "Location.Cordinates.Latitude"
	ColLongitude = "Location.Cordinates.Longitude"
	ColDepth     = "Location.Cordinates.Depth"
	ColDay       = "Date.Day"
	ColMonth     = "Date.Month"
	ColYear      = "Date.Year"
	ColPurpose   = "Data.Purpose"
	ColName      = "Data.Name"
	ColType      = "Data.Type"
)

// RequiredColumns lists every column a row must have non-empty to survive the
// load. Order matches the published file's layout.
var RequiredColumns = []string{
	ColCountry, ColLocation,
	ColLatitude, ColLongitude, ColDepth,
	ColDay, ColMonth, ColYear,
	ColPurpose, ColName, ColType,
}

// Result is one cached load outcome. A failed load caches an empty dataset
// with its error so the session keeps rendering the error without re-reading
// the source on every request.
type Result struct {
	Data    domain.Dataset
	Dropped int // rows excluded for a missing required field
	Err     error
}

// Loader reads datasets and memoizes them per source path. Same path, same
// returned Dataset, no re-read, until the process restarts.
type Loader struct {
	cache *resultCache
}

// NewLoader creates a Loader whose cache holds at most maxEntries sources.
func NewLoader(maxEntries int) *Loader {
	return &Loader{cache: newResultCache(maxEntries)}
}

// Load returns the dataset for path, the number of dropped rows, and any load
// error. On error the dataset is empty, never nil-dereferencing downstream.
func (l *Loader) Load(path string) (domain.Dataset, int, error) {
	if r, ok := l.cache.get(path); ok {
		return r.Data, r.Dropped, r.Err
	}

	data, dropped, err := readCSV(path)
	l.cache.put(path, Result{Data: data, Dropped: dropped, Err: err})
	return data, dropped, err
}

func readCSV(path string) (domain.Dataset, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Dataset{}, 0, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return domain.Dataset{}, 0, fmt.Errorf("read dataset header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, col := range RequiredColumns {
		if _, ok := index[col]; !ok {
			return domain.Dataset{}, 0, fmt.Errorf("dataset missing column %q", col)
		}
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return domain.Dataset{}, 0, fmt.Errorf("read dataset rows: %w", err)
	}

	data := make(domain.Dataset, 0, len(rows))
	dropped := 0
	for _, row := range rows {
		if !complete(row, index) {
			dropped++
			continue
		}
		data = append(data, buildRecord(row, index))
	}
	return data, dropped, nil
}

// complete reports whether every required field is present and non-empty.
// A present-but-non-numeric value in a numeric column still counts as present;
// it parses to zero later. That mirrors the source application's behavior.
func complete(row []string, index map[string]int) bool {
	for _, col := range RequiredColumns {
		if strings.TrimSpace(row[index[col]]) == "" {
			return false
		}
	}
	return true
}

func buildRecord(row []string, index map[string]int) domain.Record {
	field := func(col string) string { return strings.TrimSpace(row[index[col]]) }

	country := field(ColCountry)
	testType := field(ColType)
	return domain.Record{
		Country:   country,
		Location:  field(ColLocation) + ", " + country,
		Year:      parseIntOrZero(field(ColYear)),
		Month:     parseIntOrZero(field(ColMonth)),
		Day:       parseIntOrZero(field(ColDay)),
		Latitude:  parseFloatOrZero(field(ColLatitude)),
		Longitude: parseFloatOrZero(field(ColLongitude)),
		Depth:     parseFloatOrZero(field(ColDepth)),
		Purpose:   field(ColPurpose),
		TestName:  field(ColName),
		TestType:  testType,
		Category:  testType,
	}
}

func parseFloatOrZero(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseIntOrZero(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		// Some exports write integer date parts as "1965.0".
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return 0
		}
		return int(f)
	}
	return v
}
