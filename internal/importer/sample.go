package importer

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

var sampleRows = [][]string{
	{"Date", "Description", "Amount"},
	{"2026-02-01", "Salary - ABC Corp", "3500.00"},
	{"2026-02-02", "Grocery Store", "-125.50"},
	{"2026-02-03", "Gas Station", "-45.00"},
	{"2026-02-04", "Restaurant - Dinner", "-65.30"},
	{"2026-02-05", "Amazon Purchase", "-89.99"},
	{"2026-02-06", "Electricity Bill", "-120.00"},
	{"2026-02-07", "Gym Membership", "-50.00"},
	{"2026-02-08", "Freelance Project", "500.00"},
	{"2026-02-10", "Movie Tickets", "-32.00"},
	{"2026-02-12", "Pharmacy", "-25.75"},
	{"2026-02-14", "Valentine Dinner", "-95.00"},
	{"2026-02-15", "Uber Ride", "-18.50"},
}

// WriteSampleCSV writes a small sample transaction file for trying out
// the import pipeline.
func WriteSampleCSV(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create sample directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create sample file: %w", err)
	}
	defer func() { _ = f.Close() }()

	writer := csv.NewWriter(f)
	if err := writer.WriteAll(sampleRows); err != nil {
		return fmt.Errorf("failed to write sample rows: %w", err)
	}

	return nil
}
