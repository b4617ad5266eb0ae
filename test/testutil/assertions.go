// Copyright 2025 The simple-statuspage-subscriber-lister Authors
//
// Use of this source code is governed by an MIT-style license that can be
// found in the LICENSE file.

package testutil

import (
	"strings"
	"testing"
)

// AssertOutputsAgree checks that a CSV and a JSON output file hold the same
// rows in the same order, and returns them.
func AssertOutputsAgree(t *testing.T, csvPath, jsonPath string) []ContactRow {
	t.Helper()

	csvRows := ReadCSVRows(t, csvPath)
	jsonRows := ReadJSONRows(t, jsonPath)

	if len(csvRows) != len(jsonRows) {
		t.Fatalf("CSV has %d rows, JSON has %d", len(csvRows), len(jsonRows))
	}
	for i := range csvRows {
		if csvRows[i] != jsonRows[i] {
			t.Errorf("Row %d: CSV %+v, JSON %+v", i, csvRows[i], jsonRows[i])
		}
	}
	return csvRows
}

// AssertContacts checks the contact column of rows.
func AssertContacts(t *testing.T, rows []ContactRow, want ...string) {
	t.Helper()

	got := make([]string, len(rows))
	for i, r := range rows {
		got[i] = r.Contact
	}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Got contacts %v, want %v", got, want)
	}
}

// AssertContainsString checks if a string contains a substring
func AssertContainsString(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Errorf("Expected string to contain %q, got: %s", needle, haystack)
	}
}

// AssertNotContainsString checks if a string does not contain a substring
func AssertNotContainsString(t *testing.T, haystack, needle string) {
	t.Helper()
	if strings.Contains(haystack, needle) {
		t.Errorf("Expected string to NOT contain %q, got: %s", needle, haystack)
	}
}

// AssertErrorContains checks if an error contains expected text
func AssertErrorContains(t *testing.T, err error, expected string) {
	t.Helper()
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if !strings.Contains(err.Error(), expected) {
		t.Errorf("Expected error to contain %q, got: %v", expected, err)
	}
}
