// Command validate performs integrity checks on a nuclear explosions dataset
// CSV before it is put in front of the explorer: header completeness,
// required-field coverage per row, derivation correctness of the loaded
// records, and summary sanity over the loaded result.
//
// Usage:
//
//	go run ./cmd/validate -dataset nuclear_explosions.csv
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ktpham/nuclear-explorer/internal/dataset"
	"github.com/ktpham/nuclear-explorer/internal/domain"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	datasetPath := flag.String("dataset", "", "path to the nuclear explosions CSV")
	flag.Parse()

	if *datasetPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(*datasetPath); code != 0 {
		os.Exit(code)
	}
}

func run(path string) int {
	fmt.Println("=== Nuclear Explosions Dataset Validation ===")
	fmt.Println()

	header, rows, err := readRaw(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: read dataset: %v\n", err)
		return 1
	}

	data, dropped, err := dataset.NewLoader(1).Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load dataset: %v\n", err)
		return 1
	}

	phases := []*phase{
		validateHeader(header),
		validateCompleteness(header, rows, len(data), dropped),
		validateDerivations(data),
		validateSummary(data),
	}

	fmt.Println()
	allPassed := true
	for _, p := range phases {
		status := "PASS"
		if !p.passed() {
			status = "FAIL"
			allPassed = false
		}
		fmt.Printf("[%s] %s\n", status, p.name)
		for _, e := range p.errors {
			fmt.Printf("       - %s\n", e)
		}
	}

	if !allPassed {
		return 1
	}
	fmt.Println()
	fmt.Printf("OK: %d valid records, %d rows dropped\n", len(data), dropped)
	return 0
}

func readRaw(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, nil, err
	}
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	return header, rows, nil
}

func validateHeader(header []string) *phase {
	p := &phase{name: "header contains the eleven required columns"}

	present := make(map[string]struct{}, len(header))
	for _, h := range header {
		present[strings.TrimSpace(h)] = struct{}{}
	}
	for _, col := range dataset.RequiredColumns {
		if _, ok := present[col]; !ok {
			p.errorf("missing column %q", col)
		}
	}
	return p
}

func validateCompleteness(header []string, rows [][]string, loaded, dropped int) *phase {
	p := &phase{name: "row is loaded iff all required fields are non-empty"}

	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.TrimSpace(h)] = i
	}

	complete := 0
	for _, row := range rows {
		ok := true
		for _, col := range dataset.RequiredColumns {
			i, found := index[col]
			if !found || i >= len(row) || strings.TrimSpace(row[i]) == "" {
				ok = false
				break
			}
		}
		if ok {
			complete++
		}
	}

	if complete != loaded {
		p.errorf("%d complete rows in source, %d records loaded", complete, loaded)
	}
	if len(rows)-complete != dropped {
		p.errorf("%d incomplete rows in source, loader reported %d dropped", len(rows)-complete, dropped)
	}
	return p
}

func validateDerivations(data domain.Dataset) *phase {
	p := &phase{name: "derived columns are consistent"}

	for i, r := range data {
		if r.Category != r.TestType {
			p.errorf("record %d: category %q is not the test type %q", i, r.Category, r.TestType)
		}
		if !strings.HasSuffix(r.Location, ", "+r.Country) {
			p.errorf("record %d: location %q does not end with %q", i, r.Location, ", "+r.Country)
		}
		if r.Year == 0 {
			p.errorf("record %d: year parsed to zero", i)
		}
	}
	return p
}

func validateSummary(data domain.Dataset) *phase {
	p := &phase{name: "summary sanity over the loaded dataset"}

	sum := domain.Summarize(data)
	if len(data) == 0 {
		if sum != nil {
			p.errorf("summary produced for an empty dataset")
		}
		return p
	}
	if sum == nil {
		p.errorf("no summary for a non-empty dataset")
		return p
	}

	if sum.Count != len(data) {
		p.errorf("summary count %d != record count %d", sum.Count, len(data))
	}
	if sum.MinDepth > sum.MeanDepth || sum.MeanDepth > sum.MaxDepth {
		p.errorf("depth aggregates out of order: min=%g mean=%g max=%g",
			sum.MinDepth, sum.MeanDepth, sum.MaxDepth)
	}
	if sum.PeakYearCount < 1 || sum.PeakYearCount > sum.Count {
		p.errorf("peak year count %d outside [1,%d]", sum.PeakYearCount, sum.Count)
	}
	if sum.UniqueLocations < 1 || sum.UniqueLocations > sum.Count {
		p.errorf("unique locations %d outside [1,%d]", sum.UniqueLocations, sum.Count)
	}
	return p
}
