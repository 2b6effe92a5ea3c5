package core

import (
	"errors"
	"testing"
)

type recordingMatrixSink struct {
	headerCalls int
	rows        [][]float64
}

func (s *recordingMatrixSink) WriteHeader(minHeight, maxHeight int) error { s.headerCalls++; return nil }
func (s *recordingMatrixSink) WriteRow(b *Biases) error {
	row := make([]float64, len(b.Enes))
	copy(row, b.Enes)
	s.rows = append(s.rows, row)
	return nil
}
func (s *recordingMatrixSink) Close() error { return nil }

func usTestSystem() (*System, *Biases) {
	lattice := NewLattice(1.0, 0, 10, 3)
	f1 := NewFilament(1, 4, []Coord{{0, 0}, {0, 1}, {0, 2}, {0, 3}})
	f2 := NewFilament(2, 4, []Coord{{1, 0}, {1, 1}, {1, 2}, {1, 3}})
	params := SystemParams{
		NFil: 2, NSca: 2, SitesPerFilament: 4,
		Ks: 1e-6, Kd: 1e-6, Xc: 1e-6, T: 300, EI: 6.9e-26, Lf: 10, Delta: 1.0,
	}
	sys := NewSystem(params, lattice, []*Filament{f1, f2})
	return sys, NewBiases(0, 10, 1)
}

func TestRunUS_RunsOneIterationPerConfiguredCount(t *testing.T) {
	sys, biases := usTestSystem()
	rng := NewPartitionedRNG(NewSimulationKey(1))
	counts := &recordingMatrixSink{}
	freqs := &recordingMatrixSink{}
	biasesOut := &recordingMatrixSink{}

	iterOpsCalls := 0
	factory := func(iter int) (OpsSink, VTFSink, error) {
		iterOpsCalls++
		return &recordingOpsSink{}, &recordingVTFSink{}, nil
	}

	rp := RunParams{Steps: 4, WriteInterval: 0, RadiusMoveFreq: 0}
	up := USParams{Iters: 3, RestartIter: 0, MaxBiasDiff: 5.0}

	stats, err := RunUS(sys, biases, rp, up, nil, rng, counts, freqs, biasesOut, factory)

	if err != nil {
		t.Fatalf("RunUS returned error: %v", err)
	}
	if iterOpsCalls != 3 {
		t.Errorf("iterSinks called %d times, want 3 (Iters=3, RestartIter=0)", iterOpsCalls)
	}
	if len(counts.rows) != 3 || len(freqs.rows) != 3 || len(biasesOut.rows) != 3 {
		t.Errorf("rows written: counts=%d freqs=%d biases=%d, want 3 each", len(counts.rows), len(freqs.rows), len(biasesOut.rows))
	}
	if stats.TranslationAttempts != 12 { // 3 iterations * 4 steps
		t.Errorf("TranslationAttempts = %d, want 12", stats.TranslationAttempts)
	}
}

func TestRunUS_RestartIterSkipsCompletedIterations(t *testing.T) {
	sys, biases := usTestSystem()
	rng := NewPartitionedRNG(NewSimulationKey(1))
	counts, freqs, biasesOut := &recordingMatrixSink{}, &recordingMatrixSink{}, &recordingMatrixSink{}

	iters := 0
	factory := func(iter int) (OpsSink, VTFSink, error) {
		iters++
		return &recordingOpsSink{}, &recordingVTFSink{}, nil
	}

	rp := RunParams{Steps: 2, WriteInterval: 0, RadiusMoveFreq: 0}
	up := USParams{Iters: 5, RestartIter: 3, MaxBiasDiff: 5.0}

	if _, err := RunUS(sys, biases, rp, up, nil, rng, counts, freqs, biasesOut, factory); err != nil {
		t.Fatalf("RunUS returned error: %v", err)
	}

	if iters != 2 { // iterations 4 and 5 only
		t.Errorf("iterSinks called %d times, want 2 (RestartIter=3, Iters=5)", iters)
	}
}

func TestRunUS_SeedsFromRestartEnesOverAnalytical(t *testing.T) {
	// GIVEN both a seedEnes array and AnalyticalBiases requested, with no
	// MC steps (so every bin's count stays zero and UpdateIterative
	// applies the same uniform -clamp shift to every bin, preserving the
	// seed's relative shape)
	sys, biases := usTestSystem()
	rng := NewPartitionedRNG(NewSimulationKey(1))
	counts, freqs, biasesOut := &recordingMatrixSink{}, &recordingMatrixSink{}, &recordingMatrixSink{}
	factory := func(iter int) (OpsSink, VTFSink, error) {
		return &recordingOpsSink{}, &recordingVTFSink{}, nil
	}

	seed := make([]float64, biases.NumBins)
	for i := range seed {
		seed[i] = float64(i) * 1e-21
	}

	rp := RunParams{Steps: 0, WriteInterval: 0, RadiusMoveFreq: 0}
	up := USParams{Iters: 1, RestartIter: 0, AnalyticalBiases: true, MaxBiasDiff: 5.0}

	if _, err := RunUS(sys, biases, rp, up, seed, rng, counts, freqs, biasesOut, factory); err != nil {
		t.Fatalf("RunUS returned error: %v", err)
	}

	// THEN the recorded row equals seed[i] - clamp for every bin, proving
	// seedEnes (not the analytical profile) was the base
	clamp := maxBiasDiffClamp(up.MaxBiasDiff, sys.Params.T)
	if len(biasesOut.rows) != 1 {
		t.Fatalf("biasesOut.rows has %d entries, want 1", len(biasesOut.rows))
	}
	for i, got := range biasesOut.rows[0] {
		want := seed[i] - clamp
		if got != want {
			t.Errorf("biasesOut.rows[0][%d] = %v, want %v (seed, not analytical)", i, got, want)
		}
	}
}

func TestRunUS_PropagatesSinkFactoryError(t *testing.T) {
	sys, biases := usTestSystem()
	rng := NewPartitionedRNG(NewSimulationKey(1))
	counts, freqs, biasesOut := &recordingMatrixSink{}, &recordingMatrixSink{}, &recordingMatrixSink{}

	wantErr := errors.New("boom")
	factory := func(iter int) (OpsSink, VTFSink, error) {
		return nil, nil, wantErr
	}

	rp := RunParams{Steps: 1, WriteInterval: 0, RadiusMoveFreq: 0}
	up := USParams{Iters: 1, RestartIter: 0, MaxBiasDiff: 5.0}

	_, err := RunUS(sys, biases, rp, up, nil, rng, counts, freqs, biasesOut, factory)

	if !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want wrapped %v", err, wantErr)
	}
}

func TestMoveStats_Merge_AccumulatesAndToleratesNil(t *testing.T) {
	total := &MoveStats{TranslationAttempts: 1, TranslationAccepts: 1}
	total.merge(&MoveStats{TranslationAttempts: 2, RadiusAttempts: 3})
	total.merge(nil)

	if total.TranslationAttempts != 3 {
		t.Errorf("TranslationAttempts = %d, want 3", total.TranslationAttempts)
	}
	if total.RadiusAttempts != 3 {
		t.Errorf("RadiusAttempts = %d, want 3", total.RadiusAttempts)
	}
}
