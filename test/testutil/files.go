// Copyright 2025 The simple-statuspage-subscriber-lister Authors
//
// Use of this source code is governed by an MIT-style license that can be
// found in the LICENSE file.

package testutil

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"testing"
)

// ContactRow is one record of the CSV and JSON output files.
type ContactRow struct {
	Contact   string `json:"contact"`
	Component string `json:"component"`
}

// CreateTempFile creates a temporary file with the given content
func CreateTempFile(t *testing.T, dir, pattern, content string) string {
	t.Helper()

	file, err := os.CreateTemp(dir, pattern)
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}

	if _, err := file.WriteString(content); err != nil {
		file.Close()
		t.Fatalf("Failed to write to temp file: %v", err)
	}

	if err := file.Close(); err != nil {
		t.Fatalf("Failed to close temp file: %v", err)
	}

	t.Cleanup(func() {
		os.Remove(file.Name())
	})

	return file.Name()
}

// ReadCSVRows reads a CSV output file, checks its header and returns the
// data rows.
func ReadCSVRows(t *testing.T, path string) []ContactRow {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open file: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse CSV: %v", err)
	}
	if len(records) == 0 {
		t.Fatalf("CSV file %s has no header", path)
	}
	if got := records[0]; len(got) != 2 || got[0] != "contact" || got[1] != "component" {
		t.Fatalf("Unexpected CSV header %v", got)
	}

	rows := make([]ContactRow, 0, len(records)-1)
	for _, rec := range records[1:] {
		rows = append(rows, ContactRow{Contact: rec[0], Component: rec[1]})
	}
	return rows
}

// ReadJSONRows reads a JSON output file.
func ReadJSONRows(t *testing.T, path string) []ContactRow {
	t.Helper()

	var rows []ContactRow
	ReadJSON(t, path, &rows)
	return rows
}

// ReadJSON reads JSON from a file into a struct
func ReadJSON(t *testing.T, path string, v interface{}) {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}
}

// AssertFileExists checks that a file exists
func AssertFileExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatalf("Expected file to exist: %s", path)
	}
}

// AssertFileNotExists checks that a file does not exist
func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("Expected file to not exist: %s", path)
	}
}
