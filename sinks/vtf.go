package sinks

import (
	"fmt"
	"io"
	"os"

	"github.com/ringmc/actin-ring-mc/core"
)

// VTFSink receives the one-time topology block and one frame per
// write-interval step, in the VTF trajectory format of spec §6.
type VTFSink interface {
	WriteTopology(filaments []*core.Filament) error
	WriteFrame(filaments []*core.Filament) error
	Close() error
}

// FileVTFSink writes the .vtf format: topology lines `a <start>:<end> c
// <index> r 2.5` (one per filament, atom indices running across the
// whole assembly), then per frame a `t` line followed by one `<x*10> <y>
// 0` line per site in filament order.
type FileVTFSink struct {
	w      io.Writer
	closer io.Closer
}

// NewFileVTFSink creates (or truncates) the file at path as a VTFSink.
func NewFileVTFSink(path string) (*FileVTFSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("sinks: open vtf sink %q: %w", path, err)
	}
	return &FileVTFSink{w: f, closer: f}, nil
}

func (s *FileVTFSink) WriteTopology(filaments []*core.Filament) error {
	atom := 0
	for _, f := range filaments {
		start := atom
		end := atom + f.Lf - 1
		if _, err := fmt.Fprintf(s.w, "a %d:%d c %d r 2.5\n\n", start, end, f.Index); err != nil {
			return err
		}
		atom = end + 1
	}
	return nil
}

func (s *FileVTFSink) WriteFrame(filaments []*core.Filament) error {
	if _, err := fmt.Fprintln(s.w, "t"); err != nil {
		return err
	}
	for _, f := range filaments {
		for _, c := range f.Coors() {
			if _, err := fmt.Fprintf(s.w, "%d %d 0\n", c.X*10, c.Y); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(s.w)
	return err
}

func (s *FileVTFSink) Close() error {
	return s.closer.Close()
}
