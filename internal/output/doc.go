// Copyright 2025 The simple-statuspage-subscriber-lister Authors
//
// Use of this source code is governed by an MIT-style license that can be
// found in the LICENSE file.

// Package output renders subscriber/component result rows. Three formats are
// provided behind the OutputWriter interface:
//
//   - TableWriter: aligned, human-readable columns for a terminal
//   - CSVWriter: a "contact,component" header followed by one RFC 4180 row per result
//   - JSONWriter: a JSON array of {"contact", "component"} objects
//
// File-backed writers own their file handle. Close flushes and closes it and
// must be called on every path, including after a failed Write; WriteAll does
// that for you.
//
// Example usage:
//
//	w, err := output.NewCSVFile("subscribers.csv")
//	if err != nil {
//	    return err
//	}
//	if err := output.WriteAll(w, rows); err != nil {
//	    return err
//	}
package output
