package sinks

import (
	"fmt"
	"io"
	"os"

	"github.com/ringmc/actin-ring-mc/core"
)

// usMatrixSink is the shared file format behind the three US sinks:
// header is the set of integer heights min..max, then one row per
// iteration, each value space-separated with a trailing space before the
// newline (spec §6).
type usMatrixSink struct {
	w      io.Writer
	closer io.Closer
}

func newUSMatrixSink(path string) (*usMatrixSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("sinks: open US sink %q: %w", path, err)
	}
	return &usMatrixSink{w: f, closer: f}, nil
}

func (s *usMatrixSink) writeHeader(minHeight, maxHeight int) error {
	for h := minHeight; h <= maxHeight; h++ {
		if _, err := fmt.Fprintf(s.w, "%d ", h); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(s.w)
	return err
}

func (s *usMatrixSink) writeRow(values []float64) error {
	for _, v := range values {
		if _, err := fmt.Fprintf(s.w, "%g ", v); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(s.w)
	return err
}

func (s *usMatrixSink) Close() error {
	return s.closer.Close()
}

// USCountsSink emits biases.Counts, one row per US iteration.
type USCountsSink struct{ *usMatrixSink }

// NewUSCountsSink creates the .counts sink at path.
func NewUSCountsSink(path string) (*USCountsSink, error) {
	m, err := newUSMatrixSink(path)
	if err != nil {
		return nil, err
	}
	return &USCountsSink{m}, nil
}

func (s *USCountsSink) WriteHeader(minHeight, maxHeight int) error {
	return s.writeHeader(minHeight, maxHeight)
}

func (s *USCountsSink) WriteRow(b *core.Biases) error {
	return s.writeRow(b.Counts)
}

// USFreqsSink emits biases.Freqs, one row per US iteration.
type USFreqsSink struct{ *usMatrixSink }

// NewUSFreqsSink creates the .freqs sink at path.
func NewUSFreqsSink(path string) (*USFreqsSink, error) {
	m, err := newUSMatrixSink(path)
	if err != nil {
		return nil, err
	}
	return &USFreqsSink{m}, nil
}

func (s *USFreqsSink) WriteHeader(minHeight, maxHeight int) error {
	return s.writeHeader(minHeight, maxHeight)
}

func (s *USFreqsSink) WriteRow(b *core.Biases) error {
	return s.writeRow(b.Freqs)
}

// USBiasesSink emits biases.Enes, one row per US iteration.
type USBiasesSink struct{ *usMatrixSink }

// NewUSBiasesSink creates the .biases sink at path.
func NewUSBiasesSink(path string) (*USBiasesSink, error) {
	m, err := newUSMatrixSink(path)
	if err != nil {
		return nil, err
	}
	return &USBiasesSink{m}, nil
}

func (s *USBiasesSink) WriteHeader(minHeight, maxHeight int) error {
	return s.writeHeader(minHeight, maxHeight)
}

func (s *USBiasesSink) WriteRow(b *core.Biases) error {
	return s.writeRow(b.Enes)
}
