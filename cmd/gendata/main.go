// Command gendata writes a small deterministic nuclear explosions CSV with
// the real source column names, for demos and test fixtures. One row is
// intentionally incomplete so the loader's row-dropping path is exercised.
//
// Usage:
//
//	go run ./cmd/gendata -out nuclear_explosions.csv
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ktpham/nuclear-explorer/internal/dataset"
)

// rows follow RequiredColumns order: country, location, lat, lon, depth,
// day, month, year, purpose, name, type.
var sampleRows = [][]string{
	{"USA", "Alamogordo", "32.54", "-105.57", "0", "16", "7", "1945", "Wr", "Trinity", "Tower"},
	{"USA", "Nevada Test Site", "37.1", "-116.0", "500", "14", "4", "1965", "Pne:V", "Palanquin", "Crater"},
	{"USA", "Pacific Proving Grounds", "11.6", "165.3", "-300", "1", "3", "1954", "Wr", "Bravo", "Atmosph"},
	{"USSR", "Semipalatinsk", "49.9", "79.0", "800", "15", "1", "1965", "Pne:V", "Chagan", "Crater"},
	{"USSR", "Novaya Zemlya", "73.8", "54.6", "-4000", "30", "10", "1961", "We", "Tsar Bomba", "Atmosph"},
	{"France", "Reggane", "26.7", "0.3", "0", "13", "2", "1960", "Wr", "Gerboise Bleue", "Atmosph"},
	{"France", "Mururoa", "-21.8", "-138.9", "620", "27", "1", "1996", "Wr", "Xouthos", "Shaft"},
	{"UK", "Maralinga", "-30.2", "131.6", "30", "27", "9", "1956", "Wr", "Buffalo One", "Tower"},
	{"China", "Lop Nor", "40.8", "89.8", "0", "16", "10", "1964", "Wr", "596", "Tower"},
	{"India", "Pokhran", "27.1", "71.8", "107", "18", "5", "1974", "Pne", "Smiling Buddha", "Shaft"},
	// Incomplete: no deployment location, dropped at load time.
	{"USA", "", "37.1", "-116.0", "200", "5", "5", "1962", "Wr", "Sedan Sibling", "Shaft"},
}

func main() {
	out := flag.String("out", "nuclear_explosions.csv", "output path for the sample dataset")
	flag.Parse()

	if err := run(*out); err != nil {
		log.Fatal(err)
	}
}

func run(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(dataset.RequiredColumns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range sampleRows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}

	log.Printf("wrote %s: %d rows (one intentionally incomplete)", path, len(sampleRows))
	return nil
}
