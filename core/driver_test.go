package core

import "testing"

// recordingOpsSink and recordingVTFSink are minimal OpsSink/VTFSink
// implementations that just count calls, used to verify Run's write
// cadence without touching the filesystem.
type recordingOpsSink struct {
	headerCalls int
	rowCalls    int
	closeCalls  int
}

func (s *recordingOpsSink) WriteHeader() error { s.headerCalls++; return nil }
func (s *recordingOpsSink) WriteRow(step int64, energyJ float64, h int, radiusM float64) error {
	s.rowCalls++
	return nil
}
func (s *recordingOpsSink) Close() error { s.closeCalls++; return nil }

type recordingVTFSink struct {
	topologyCalls int
	frameCalls    int
	closeCalls    int
}

func (s *recordingVTFSink) WriteTopology(filaments []*Filament) error { s.topologyCalls++; return nil }
func (s *recordingVTFSink) WriteFrame(filaments []*Filament) error    { s.frameCalls++; return nil }
func (s *recordingVTFSink) Close() error                              { s.closeCalls++; return nil }

func driverTestSystem() *System {
	lattice := NewLattice(1.0, 0, 10, 3) // period 4
	f1 := NewFilament(1, 4, []Coord{{0, 0}, {0, 1}, {0, 2}, {0, 3}})
	f2 := NewFilament(2, 4, []Coord{{1, 0}, {1, 1}, {1, 2}, {1, 3}})
	params := SystemParams{
		NFil: 2, NSca: 2, SitesPerFilament: 4,
		Ks: 1e-6, Kd: 1e-6, Xc: 1e-6, T: 300, EI: 6.9e-26, Lf: 10, Delta: 1.0,
	}
	return NewSystem(params, lattice, []*Filament{f1, f2})
}

func TestDriver_Run_WritesHeaderAndTopologyOnce(t *testing.T) {
	sys := driverTestSystem()
	biases := NewBiases(0, 10, 1)
	rng := NewPartitionedRNG(NewSimulationKey(1))
	ops := &recordingOpsSink{}
	vtf := &recordingVTFSink{}

	_, err := Run(sys, biases, RunParams{Steps: 10, WriteInterval: 5, RadiusMoveFreq: 0}, rng, ops, vtf)

	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if ops.headerCalls != 1 {
		t.Errorf("ops.headerCalls = %d, want 1", ops.headerCalls)
	}
	if vtf.topologyCalls != 1 {
		t.Errorf("vtf.topologyCalls = %d, want 1", vtf.topologyCalls)
	}
}

func TestDriver_Run_RespectsWriteIntervalCadence(t *testing.T) {
	// GIVEN 10 steps with a checkpoint every 5
	sys := driverTestSystem()
	biases := NewBiases(0, 10, 1)
	rng := NewPartitionedRNG(NewSimulationKey(1))
	ops := &recordingOpsSink{}
	vtf := &recordingVTFSink{}

	stats, err := Run(sys, biases, RunParams{Steps: 10, WriteInterval: 5, RadiusMoveFreq: 0}, rng, ops, vtf)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	// THEN checkpoints fire exactly twice (steps 5 and 10)
	if ops.rowCalls != 2 {
		t.Errorf("ops.rowCalls = %d, want 2", ops.rowCalls)
	}
	if vtf.frameCalls != 2 {
		t.Errorf("vtf.frameCalls = %d, want 2", vtf.frameCalls)
	}

	// AND every step attempted a translation (RadiusMoveFreq=0 forces it)
	if stats.TranslationAttempts != 10 {
		t.Errorf("TranslationAttempts = %d, want 10", stats.TranslationAttempts)
	}
	if stats.RadiusAttempts != 0 {
		t.Errorf("RadiusAttempts = %d, want 0", stats.RadiusAttempts)
	}
}

func TestDriver_Run_ZeroWriteIntervalNeverCheckpoints(t *testing.T) {
	sys := driverTestSystem()
	biases := NewBiases(0, 10, 1)
	rng := NewPartitionedRNG(NewSimulationKey(1))
	ops := &recordingOpsSink{}
	vtf := &recordingVTFSink{}

	_, err := Run(sys, biases, RunParams{Steps: 5, WriteInterval: 0, RadiusMoveFreq: 0}, rng, ops, vtf)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if ops.rowCalls != 0 || vtf.frameCalls != 0 {
		t.Errorf("rowCalls=%d frameCalls=%d, want 0/0 when WriteInterval<=0", ops.rowCalls, vtf.frameCalls)
	}
}

func TestMoveStats_RecordTranslationAndRadius(t *testing.T) {
	m := &MoveStats{}
	m.recordTranslation(true)
	m.recordTranslation(false)
	m.recordRadius(true)

	if m.TranslationAttempts != 2 || m.TranslationAccepts != 1 {
		t.Errorf("translation stats = %+v, want attempts=2 accepts=1", m)
	}
	if m.RadiusAttempts != 1 || m.RadiusAccepts != 1 {
		t.Errorf("radius stats = %+v, want attempts=1 accepts=1", m)
	}
}
