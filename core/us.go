package core

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// IterSinkFactory opens the per-iteration ops/vtf sinks for US iteration
// iter. The US driver closes both sinks itself once that iteration's MC
// block completes.
type IterSinkFactory func(iter int) (OpsSink, VTFSink, error)

// USParams bundles the umbrella-sampling loop's own knobs, distinct from
// the per-block RunParams and the physical SystemParams.
type USParams struct {
	Iters            int
	RestartIter      int // 0 unless resuming from a bias restart file
	AnalyticalBiases bool
	MaxBiasDiff      float64
}

// RunUS seeds biases (from seedEnes if resuming, else analytically if
// up.AnalyticalBiases, else left at zero), then for each iteration in
// [RestartIter+1, Iters] runs one MC block (core.Run) through
// per-iteration ops/vtf sinks, emits that iteration's counts, refines
// the biases, and emits freqs and biases.
func RunUS(
	sys *System,
	biases *Biases,
	rp RunParams,
	up USParams,
	seedEnes []float64,
	rng *PartitionedRNG,
	counts USCountsSink,
	freqs USFreqsSink,
	biasesOut USBiasesSink,
	iterSinks IterSinkFactory,
) (*MoveStats, error) {
	if err := counts.WriteHeader(biases.MinHeight, biases.MaxHeight); err != nil {
		return nil, fmt.Errorf("core: write counts header: %w", err)
	}
	if err := freqs.WriteHeader(biases.MinHeight, biases.MaxHeight); err != nil {
		return nil, fmt.Errorf("core: write freqs header: %w", err)
	}
	if err := biasesOut.WriteHeader(biases.MinHeight, biases.MaxHeight); err != nil {
		return nil, fmt.Errorf("core: write biases header: %w", err)
	}

	switch {
	case seedEnes != nil:
		biases.SetEnes(seedEnes)
	case up.AnalyticalBiases:
		biases.SeedAnalytical(sys.Params)
	}

	total := &MoveStats{}

	for iter := up.RestartIter + 1; iter <= up.Iters; iter++ {
		ops, vtf, err := iterSinks(iter)
		if err != nil {
			return total, fmt.Errorf("core: open sinks for iteration %d: %w", iter, err)
		}

		stats, runErr := Run(sys, biases, rp, rng, ops, vtf)
		total.merge(stats)

		closeOpsErr := ops.Close()
		closeVTFErr := vtf.Close()

		if runErr != nil {
			return total, fmt.Errorf("core: iteration %d: %w", iter, runErr)
		}
		if closeOpsErr != nil {
			return total, fmt.Errorf("core: close ops sink for iteration %d: %w", iter, closeOpsErr)
		}
		if closeVTFErr != nil {
			return total, fmt.Errorf("core: close vtf sink for iteration %d: %w", iter, closeVTFErr)
		}

		if err := counts.WriteRow(biases); err != nil {
			return total, fmt.Errorf("core: write counts row for iteration %d: %w", iter, err)
		}

		biases.UpdateIterative(sys.Params.T, up.MaxBiasDiff)

		if err := freqs.WriteRow(biases); err != nil {
			return total, fmt.Errorf("core: write freqs row for iteration %d: %w", iter, err)
		}
		if err := biasesOut.WriteRow(biases); err != nil {
			return total, fmt.Errorf("core: write biases row for iteration %d: %w", iter, err)
		}

		logrus.Infof("[iter %03d/%03d] translation=%d/%d radius=%d/%d",
			iter, up.Iters, stats.TranslationAccepts, stats.TranslationAttempts, stats.RadiusAccepts, stats.RadiusAttempts)
	}

	return total, nil
}

func (m *MoveStats) merge(other *MoveStats) {
	if other == nil {
		return
	}
	m.TranslationAttempts += other.TranslationAttempts
	m.TranslationAccepts += other.TranslationAccepts
	m.RadiusAttempts += other.RadiusAttempts
	m.RadiusAccepts += other.RadiusAccepts
}
