package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ringmc/actin-ring-mc/core"
	"github.com/ringmc/actin-ring-mc/sinks"
)

// Config is the full YAML run configuration: physical SystemParams,
// startup geometry, MC driver knobs, and umbrella-sampling knobs. All
// top-level keys must be listed to satisfy the strict KnownFields(true)
// decode below.
type Config struct {
	Ks    float64 `yaml:"ks"`
	Kd    float64 `yaml:"kd"`
	T     float64 `yaml:"T"`
	Delta float64 `yaml:"delta"`
	Xc    float64 `yaml:"xc"`
	EI    float64 `yaml:"EI"`
	Lf    float64 `yaml:"Lf"`

	SitesPerFilament int `yaml:"lf"`
	NFil             int `yaml:"nfil"`
	NSca             int `yaml:"nsca"`
	Overlap          int `yaml:"overlap"`

	MinHeight int `yaml:"min_height"`
	MaxHeight int `yaml:"max_height"`
	H0        int `yaml:"h0"`

	Steps          int     `yaml:"steps"`
	WriteInterval  int     `yaml:"write_interval"`
	RadiusMoveFreq float64 `yaml:"radius_move_freq"`
	FileBase       string  `yaml:"filebase"`

	MaxBiasDiff      float64 `yaml:"max_bias_diff"`
	Iters            int     `yaml:"iters"`
	AnalyticalBiases bool    `yaml:"analytical_biases"`
	BinWidth         int     `yaml:"binwidth"`
	RestartIter      int     `yaml:"restart_iter"`
	BiasFile         string  `yaml:"bias_file"`

	Seed int64 `yaml:"seed"`
}

// LoadConfig parses path as strict YAML: unknown keys are a decode
// error, matching the teacher's defaults.yaml loader.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("cmd: read config %q: %w", path, err)
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("cmd: parse config %q: %w", path, err)
	}
	return cfg, nil
}

// SystemParams extracts the physical parameter bundle core.System needs.
func (c Config) SystemParams() core.SystemParams {
	return core.SystemParams{
		Ks:               c.Ks,
		Kd:               c.Kd,
		T:                c.T,
		Delta:            c.Delta,
		Xc:               c.Xc,
		EI:               c.EI,
		Lf:               c.Lf,
		SitesPerFilament: c.SitesPerFilament,
		NFil:             c.NFil,
		NSca:             c.NSca,
	}
}

// RunParams extracts the MC driver's per-block knobs.
func (c Config) RunParams() core.RunParams {
	return core.RunParams{
		Steps:          c.Steps,
		WriteInterval:  c.WriteInterval,
		RadiusMoveFreq: c.RadiusMoveFreq,
	}
}

// USParams extracts the umbrella-sampling loop's own knobs.
func (c Config) USParams() core.USParams {
	return core.USParams{
		Iters:            c.Iters,
		RestartIter:      c.RestartIter,
		AnalyticalBiases: c.AnalyticalBiases,
		MaxBiasDiff:      c.MaxBiasDiff,
	}
}

// SinksRunParams extracts the subset of Config the .parms JSON dump
// reports alongside SystemParams.
func (c Config) SinksRunParams() sinks.RunParams {
	return sinks.RunParams{
		Steps:            c.Steps,
		WriteInterval:    c.WriteInterval,
		FileBase:         c.FileBase,
		MaxBiasDiff:      c.MaxBiasDiff,
		RadiusMoveFreq:   c.RadiusMoveFreq,
		Iters:            c.Iters,
		AnalyticalBiases: c.AnalyticalBiases,
		BinWidth:         c.BinWidth,
	}
}
