package sinks

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ringmc/actin-ring-mc/core"
)

// RunParams mirrors the run-level settings dumped into the .parms file
// alongside the physical SystemParams fields (spec §6).
type RunParams struct {
	Steps            int
	WriteInterval    int
	FileBase         string
	MaxBiasDiff      float64
	RadiusMoveFreq   float64
	Iters            int
	AnalyticalBiases bool
	BinWidth         int
}

// parmsDocument is the single JSON object spec §6 names, with the exact
// key set {lf, T, kd, ks, EI, Lf, Xc, Nfil, Nsca, delta, steps,
// write_interval, filebase, max_bias_diff, radius_move_freq, iters,
// analytical_biases, binwidth}.
type parmsDocument struct {
	Lf               int     `json:"lf"`
	T                float64 `json:"T"`
	Kd               float64 `json:"kd"`
	Ks               float64 `json:"ks"`
	EI               float64 `json:"EI"`
	Lfil             float64 `json:"Lf"`
	Xc               float64 `json:"Xc"`
	Nfil             int     `json:"Nfil"`
	Nsca             int     `json:"Nsca"`
	Delta            float64 `json:"delta"`
	Steps            int     `json:"steps"`
	WriteInterval    int     `json:"write_interval"`
	FileBase         string  `json:"filebase"`
	MaxBiasDiff      float64 `json:"max_bias_diff"`
	RadiusMoveFreq   float64 `json:"radius_move_freq"`
	Iters            int     `json:"iters"`
	AnalyticalBiases bool    `json:"analytical_biases"`
	BinWidth         int     `json:"binwidth"`
}

// ParmsSink writes the single JSON parameter-dump object. A fixed
// one-shot struct marshal with no streaming or schema-evolution need, so
// it stays on encoding/json rather than reaching for a third-party
// marshaler (see DESIGN.md).
type ParmsSink struct{}

// Write marshals sp and rp into path as the .parms JSON document.
func (ParmsSink) Write(path string, sp core.SystemParams, rp RunParams) error {
	doc := parmsDocument{
		Lf:               sp.SitesPerFilament,
		T:                sp.T,
		Kd:               sp.Kd,
		Ks:               sp.Ks,
		EI:               sp.EI,
		Lfil:             sp.Lf,
		Xc:               sp.Xc,
		Nfil:             sp.NFil,
		Nsca:             sp.NSca,
		Delta:            sp.Delta,
		Steps:            rp.Steps,
		WriteInterval:    rp.WriteInterval,
		FileBase:         rp.FileBase,
		MaxBiasDiff:      rp.MaxBiasDiff,
		RadiusMoveFreq:   rp.RadiusMoveFreq,
		Iters:            rp.Iters,
		AnalyticalBiases: rp.AnalyticalBiases,
		BinWidth:         rp.BinWidth,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("sinks: marshal parms: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("sinks: write parms %q: %w", path, err)
	}
	return nil
}
