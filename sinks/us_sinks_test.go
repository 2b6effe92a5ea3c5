package sinks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ringmc/actin-ring-mc/core"
)

func TestUSCountsSink_WritesHeaderAndCountsRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.counts")
	sink, err := NewUSCountsSink(path)
	if err != nil {
		t.Fatalf("NewUSCountsSink: %v", err)
	}
	if err := sink.WriteHeader(0, 3); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}

	b := core.NewBiases(0, 3, 1)
	b.Counts = []float64{1, 2, 3, 4}
	if err := sink.WriteRow(b); err != nil {
		t.Fatalf("WriteRow: %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := "0 1 2 3 \n1 2 3 4 \n"
	if string(data) != want {
		t.Errorf("contents = %q, want %q", data, want)
	}
}

func TestUSFreqsSink_WritesFreqsNotCounts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.freqs")
	sink, err := NewUSFreqsSink(path)
	if err != nil {
		t.Fatalf("NewUSFreqsSink: %v", err)
	}
	if err := sink.WriteHeader(0, 1); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}

	b := core.NewBiases(0, 1, 1)
	b.Counts = []float64{99, 99}
	b.Freqs = []float64{0.25, 0.75}
	if err := sink.WriteRow(b); err != nil {
		t.Fatalf("WriteRow: %v", err)
	}
	sink.Close()

	data, _ := os.ReadFile(path)
	want := "0 1 \n0.25 0.75 \n"
	if string(data) != want {
		t.Errorf("contents = %q, want %q", data, want)
	}
}

func TestUSBiasesSink_WritesEnes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.biases")
	sink, err := NewUSBiasesSink(path)
	if err != nil {
		t.Fatalf("NewUSBiasesSink: %v", err)
	}
	if err := sink.WriteHeader(5, 6); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}

	b := core.NewBiases(5, 6, 1)
	b.Enes = []float64{-1.5e-20, 2.25e-21}
	if err := sink.WriteRow(b); err != nil {
		t.Fatalf("WriteRow: %v", err)
	}
	sink.Close()

	data, _ := os.ReadFile(path)
	want := "5 6 \n-1.5e-20 2.25e-21 \n"
	if string(data) != want {
		t.Errorf("contents = %q, want %q", data, want)
	}
}
