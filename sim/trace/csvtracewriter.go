package trace

import (
	"bufio"
	"fmt"
	"os"

	"github.com/rs/xid"
)

// CSVTraceWriter stores service slices in a CSV file.
type CSVTraceWriter struct {
	path string
}

// NewCSVTraceWriter creates a writer for path. An empty path is replaced by
// a unique "websched_trace_<xid>.csv" name in the working directory.
func NewCSVTraceWriter(path string) *CSVTraceWriter {
	if path == "" {
		path = "websched_trace_" + xid.New().String() + ".csv"
	}
	return &CSVTraceWriter{path: path}
}

// Path returns the file the writer targets.
func (w *CSVTraceWriter) Path() string {
	return w.path
}

// Write creates (or truncates) the CSV file and writes every slice of st.
func (w *CSVTraceWriter) Write(st *SimulationTrace) (err error) {
	file, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("creating trace file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing trace file: %w", closeErr)
		}
	}()

	buf := bufio.NewWriter(file)
	if _, err := fmt.Fprintf(buf, "RequestID, Start, End, Completed\n"); err != nil {
		return fmt.Errorf("writing trace header: %w", err)
	}
	if st != nil {
		for _, s := range st.Slices {
			if _, err := fmt.Fprintf(buf, "%d, %d, %d, %t\n", s.RequestID, s.Start, s.End, s.Completed); err != nil {
				return fmt.Errorf("writing trace row: %w", err)
			}
		}
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("flushing trace file: %w", err)
	}
	return nil
}
