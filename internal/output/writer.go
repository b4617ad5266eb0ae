package output

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	spgerrors "github.com/austinjhunt/simple-statuspage-subscriber-lister/internal/errors"
)

// CSVHeader is the header row of the CSV format.
var CSVHeader = []string{"contact", "component"}

// sink is the destination shared by all writers: a buffered io.Writer plus
// the file to close, if any.
type sink struct {
	path      string
	buf       *bufio.Writer
	closeFunc func() error
	closed    bool
}

func newSink(w io.Writer, path string) *sink {
	return &sink{path: path, buf: bufio.NewWriter(w)}
}

func newFileSink(path string) (*sink, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, &spgerrors.OutputError{Path: path, Err: err}
	}
	s := newSink(file, path)
	s.closeFunc = file.Close
	return s, nil
}

func (s *sink) wrap(err error) error {
	if err == nil {
		return nil
	}
	return &spgerrors.OutputError{Path: s.path, Err: err}
}

// close flushes the buffer and closes the file, reporting the first failure.
// Calling it more than once is a no-op.
func (s *sink) close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	err := s.buf.Flush()
	if s.closeFunc != nil {
		if closeErr := s.closeFunc(); err == nil {
			err = closeErr
		}
	}
	return s.wrap(err)
}

// CSVWriter writes rows as CSV with a contact,component header.
type CSVWriter struct {
	sink   *sink
	csv    *csv.Writer
	header bool
	count  int
}

// NewCSVWriter creates a CSV writer on w. label names the destination in errors.
func NewCSVWriter(w io.Writer, label string) *CSVWriter {
	s := newSink(w, label)
	return &CSVWriter{sink: s, csv: csv.NewWriter(s.buf)}
}

// NewCSVFile creates (or truncates) path and returns a CSV writer on it.
// The caller must call Close() when done to ensure the file is properly closed.
func NewCSVFile(path string) (*CSVWriter, error) {
	s, err := newFileSink(path)
	if err != nil {
		return nil, err
	}
	return &CSVWriter{sink: s, csv: csv.NewWriter(s.buf)}, nil
}

func (w *CSVWriter) writeHeader() error {
	if w.header {
		return nil
	}
	w.header = true
	return w.sink.wrap(w.csv.Write(CSVHeader))
}

// Write writes a single row.
func (w *CSVWriter) Write(row Row) error {
	if err := w.writeHeader(); err != nil {
		return err
	}
	if err := w.csv.Write([]string{row.Contact, row.Component}); err != nil {
		return w.sink.wrap(err)
	}
	w.count++
	return nil
}

// Count returns the number of rows written.
func (w *CSVWriter) Count() int {
	return w.count
}

// Close writes the header if no row was written, flushes and closes.
func (w *CSVWriter) Close() error {
	if w.sink.closed {
		return nil
	}

	err := w.writeHeader()
	w.csv.Flush()
	if err == nil {
		err = w.sink.wrap(w.csv.Error())
	}
	if closeErr := w.sink.close(); err == nil {
		err = closeErr
	}
	return err
}

// JSONWriter streams rows as the elements of a single JSON array.
type JSONWriter struct {
	sink  *sink
	count int
	buf   bytes.Buffer
	enc   *json.Encoder
}

// NewJSONWriter creates a JSON writer on w. label names the destination in errors.
func NewJSONWriter(w io.Writer, label string) *JSONWriter {
	return newJSONWriter(newSink(w, label))
}

// NewJSONFile creates (or truncates) path and returns a JSON writer on it.
// The caller must call Close() when done to ensure the file is properly closed.
func NewJSONFile(path string) (*JSONWriter, error) {
	s, err := newFileSink(path)
	if err != nil {
		return nil, err
	}
	return newJSONWriter(s), nil
}

func newJSONWriter(s *sink) *JSONWriter {
	w := &JSONWriter{sink: s}
	w.enc = json.NewEncoder(&w.buf)
	w.enc.SetEscapeHTML(false)
	return w
}

// Write writes a single row as the next array element.
func (w *JSONWriter) Write(row Row) error {
	w.buf.Reset()
	if err := w.enc.Encode(row); err != nil {
		return w.sink.wrap(fmt.Errorf("failed to encode row: %w", err))
	}

	sep := ",\n  "
	if w.count == 0 {
		sep = "[\n  "
	}
	if _, err := w.sink.buf.WriteString(sep); err != nil {
		return w.sink.wrap(err)
	}
	// Encode terminates each value with a newline.
	if _, err := w.sink.buf.Write(bytes.TrimRight(w.buf.Bytes(), "\n")); err != nil {
		return w.sink.wrap(err)
	}
	w.count++
	return nil
}

// Count returns the number of rows written.
func (w *JSONWriter) Count() int {
	return w.count
}

// Close terminates the array, flushes and closes.
func (w *JSONWriter) Close() error {
	if w.sink.closed {
		return nil
	}

	tail := "\n]\n"
	if w.count == 0 {
		tail = "[]\n"
	}
	_, err := w.sink.buf.WriteString(tail)
	err = w.sink.wrap(err)
	if closeErr := w.sink.close(); err == nil {
		err = closeErr
	}
	return err
}

// TableWriter prints rows as aligned columns for humans.
type TableWriter struct {
	sink  *sink
	tab   *tabwriter.Writer
	count int
}

// NewTableWriter creates a table writer on w.
func NewTableWriter(w io.Writer) *TableWriter {
	s := newSink(w, "stdout")
	return &TableWriter{
		sink: s,
		tab:  tabwriter.NewWriter(s.buf, 0, 4, 2, ' ', 0),
	}
}

// Write writes a single row, preceded by the column header on first use.
func (w *TableWriter) Write(row Row) error {
	if w.count == 0 {
		if _, err := fmt.Fprintln(w.tab, "ID\tMODE\tCONTACT\tCOMPONENT\tCREATED"); err != nil {
			return w.sink.wrap(err)
		}
	}
	if _, err := fmt.Fprintf(w.tab, "%s\t%s\t%s\t%s\t%s\n",
		dash(row.SubscriberID), dash(row.Mode), dash(row.Contact), dash(row.Component), dash(row.CreatedAt)); err != nil {
		return w.sink.wrap(err)
	}
	w.count++
	return nil
}

// Close prints a summary line and flushes.
func (w *TableWriter) Close() error {
	if w.sink.closed {
		return nil
	}

	var err error
	if w.count == 0 {
		_, err = fmt.Fprintln(w.tab, "No subscribers found for the specified component.")
	}
	if flushErr := w.tab.Flush(); err == nil {
		err = flushErr
	}
	if err == nil {
		_, err = fmt.Fprintf(w.sink.buf, "\n%d subscriber(s)\n", w.count)
	}
	err = w.sink.wrap(err)
	if closeErr := w.sink.close(); err == nil {
		err = closeErr
	}
	return err
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
