package sinks

import (
	"fmt"
	"io"
	"os"
)

// OpsSink receives one row per write-interval step: step index, total
// energy (Joules, without bias), height H, and radius (meters).
type OpsSink interface {
	WriteHeader() error
	WriteRow(step int64, energyJ float64, h int, radiusM float64) error
	Close() error
}

// FileOpsSink writes the .ops format of spec §6: one header line, then
// one space-separated record per row.
type FileOpsSink struct {
	w      io.Writer
	closer io.Closer
}

// NewFileOpsSink creates (or truncates) the file at path as an OpsSink.
func NewFileOpsSink(path string) (*FileOpsSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("sinks: open ops sink %q: %w", path, err)
	}
	return &FileOpsSink{w: f, closer: f}, nil
}

func (s *FileOpsSink) WriteHeader() error {
	_, err := fmt.Fprintln(s.w, "step energy height radius")
	return err
}

func (s *FileOpsSink) WriteRow(step int64, energyJ float64, h int, radiusM float64) error {
	_, err := fmt.Fprintf(s.w, "%d %g %d %g\n", step, energyJ, h, radiusM)
	return err
}

func (s *FileOpsSink) Close() error {
	return s.closer.Close()
}
