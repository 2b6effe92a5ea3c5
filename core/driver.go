package core

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// RunParams bundles the MC driver's run-level knobs (as opposed to the
// physical SystemParams): step count, checkpoint interval, and the move
// selection weight.
type RunParams struct {
	Steps          int
	WriteInterval  int
	RadiusMoveFreq float64 // probability of attempting a radius move each step
}

// MoveStats accumulates per-move-type attempt/accept counters over a
// run, mirroring the teacher's Metrics accumulator shape.
type MoveStats struct {
	TranslationAttempts int64
	TranslationAccepts  int64
	RadiusAttempts      int64
	RadiusAccepts       int64
}

func (m *MoveStats) recordTranslation(accepted bool) {
	m.TranslationAttempts++
	if accepted {
		m.TranslationAccepts++
	}
}

func (m *MoveStats) recordRadius(accepted bool) {
	m.RadiusAttempts++
	if accepted {
		m.RadiusAccepts++
	}
}

// Run executes one MC block of rp.Steps steps: recenters once, then at
// each step selects a move per rp.RadiusMoveFreq, applies it, and
// updates the bias histogram. Every rp.WriteInterval steps it
// re-verifies connectivity in consistency mode, recomputes the
// unbiased total energy, and emits one ops row and one vtf frame.
func Run(sys *System, biases *Biases, rp RunParams, rng *PartitionedRNG, ops OpsSink, vtf VTFSink) (*MoveStats, error) {
	sys.Recenter()
	stats := &MoveStats{}

	if err := ops.WriteHeader(); err != nil {
		return stats, fmt.Errorf("core: write ops header: %w", err)
	}
	if err := vtf.WriteTopology(sys.Filaments); err != nil {
		return stats, fmt.Errorf("core: write vtf topology: %w", err)
	}

	selectRNG := rng.ForSubsystem(SubsystemMoveSelect)

	for step := 1; step <= rp.Steps; step++ {
		var accepted bool
		if selectRNG.Float64() < rp.RadiusMoveFreq {
			accepted = RadiusMove(sys, biases, rng)
			stats.recordRadius(accepted)
		} else {
			accepted = TranslationMove(sys, rng)
			stats.recordTranslation(accepted)
		}

		biases.IncrementCount(sys.Lattice.ActiveHeight())

		if rp.WriteInterval > 0 && step%rp.WriteInterval == 0 {
			if err := sys.CheckConnectivityConsistency(); err != nil {
				return stats, fmt.Errorf("core: step %d: %w", step, err)
			}

			sys.Energy = sys.TotalEnergyNoBias()

			if err := ops.WriteRow(int64(step), sys.Energy, sys.Lattice.ActiveHeight(), sys.Lattice.Radius); err != nil {
				return stats, fmt.Errorf("core: write ops row at step %d: %w", step, err)
			}
			if err := vtf.WriteFrame(sys.Filaments); err != nil {
				return stats, fmt.Errorf("core: write vtf frame at step %d: %w", step, err)
			}

			logrus.Infof("[step %07d] energy=%g height=%d radius=%.6g translation=%d/%d radius_moves=%d/%d",
				step, sys.Energy, sys.Lattice.ActiveHeight(), sys.Lattice.Radius,
				stats.TranslationAccepts, stats.TranslationAttempts, stats.RadiusAccepts, stats.RadiusAttempts)
		}
	}

	return stats, nil
}
