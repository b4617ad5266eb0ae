// Copyright 2025 The simple-statuspage-subscriber-lister Authors
//
// Use of this source code is governed by an MIT-style license that can be
// found in the LICENSE file.

package output

import (
	"bytes"
	"errors"
	"testing"
)

// Compile-time checks that the writers implement OutputWriter
var (
	_ OutputWriter = (*CSVWriter)(nil)
	_ OutputWriter = (*JSONWriter)(nil)
	_ OutputWriter = (*TableWriter)(nil)
)

// recordingWriter records calls and optionally fails a write.
type recordingWriter struct {
	written  []Row
	failAt   int
	writeErr error
	closeErr error
	closed   int
}

func (r *recordingWriter) Write(row Row) error {
	if r.writeErr != nil && len(r.written) == r.failAt {
		return r.writeErr
	}
	r.written = append(r.written, row)
	return nil
}

func (r *recordingWriter) Close() error {
	r.closed++
	return r.closeErr
}

func TestWriteAll(t *testing.T) {
	rows := []Row{{Contact: "a"}, {Contact: "b"}, {Contact: "c"}}
	writeErr := errors.New("disk full")
	closeErr := errors.New("close failed")

	tests := []struct {
		name        string
		w           *recordingWriter
		wantErr     error
		wantWritten int
	}{
		{"success", &recordingWriter{}, nil, 3},
		{"write fails", &recordingWriter{failAt: 1, writeErr: writeErr}, writeErr, 1},
		{"close fails", &recordingWriter{closeErr: closeErr}, closeErr, 3},
		{"write error wins over close error", &recordingWriter{failAt: 0, writeErr: writeErr, closeErr: closeErr}, writeErr, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WriteAll(tt.w, rows)
			if !errors.Is(err, tt.wantErr) || (tt.wantErr == nil && err != nil) {
				t.Errorf("WriteAll() error = %v, want %v", err, tt.wantErr)
			}
			if len(tt.w.written) != tt.wantWritten {
				t.Errorf("wrote %d rows, want %d", len(tt.w.written), tt.wantWritten)
			}
			if tt.w.closed != 1 {
				t.Errorf("Close called %d times, want 1", tt.w.closed)
			}
		})
	}
}

func TestWritersAsOutputWriter(t *testing.T) {
	writers := map[string]func(*bytes.Buffer) OutputWriter{
		"csv":   func(b *bytes.Buffer) OutputWriter { return NewCSVWriter(b, "buffer") },
		"json":  func(b *bytes.Buffer) OutputWriter { return NewJSONWriter(b, "buffer") },
		"table": func(b *bytes.Buffer) OutputWriter { return NewTableWriter(b) },
	}

	for name, newWriter := range writers {
		t.Run(name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			w := newWriter(buf)

			if err := w.Write(Row{Contact: "alice@example.com", Component: "Checkout API"}); err != nil {
				t.Errorf("Write() error = %v", err)
			}
			if err := w.Close(); err != nil {
				t.Errorf("Close() error = %v", err)
			}
			if !bytes.Contains(buf.Bytes(), []byte("alice@example.com")) {
				t.Errorf("Expected row in output, got %q", buf.String())
			}
		})
	}
}
