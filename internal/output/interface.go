// Copyright 2025 The simple-statuspage-subscriber-lister Authors
//
// Use of this source code is governed by an MIT-style license that can be
// found in the LICENSE file.

package output

// Row is one result: a subscriber matched to the resolved component.
// Only Contact and Component are part of the CSV and JSON formats; the other
// fields are shown in the table.
type Row struct {
	SubscriberID string `json:"-"`
	Mode         string `json:"-"`
	Contact      string `json:"contact"`
	Component    string `json:"component"`
	CreatedAt    string `json:"-"`
}

// OutputWriter defines the interface for writing result rows.
type OutputWriter interface {
	// Write writes a single row to the output.
	Write(row Row) error

	// Close flushes buffered output and releases any resources.
	// It must be called even if Write failed.
	Close() error
}

// WriteAll writes every row and then closes w, returning the first error
// encountered. w is closed on every path.
func WriteAll(w OutputWriter, rows []Row) (err error) {
	defer func() {
		if closeErr := w.Close(); err == nil {
			err = closeErr
		}
	}()

	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
