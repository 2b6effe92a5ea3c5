// cmd/root.go
package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ringmc/actin-ring-mc/core"
	"github.com/ringmc/actin-ring-mc/sinks"
)

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "ringmc",
	Short: "Monte Carlo sampler for ring-shaped actin filament assemblies",
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a single MC block and write .ops/.vtf/.parms",
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevel()

		cfg, err := LoadConfig(configPath)
		if err != nil {
			logrus.Fatalf("load config: %v", err)
		}

		sys, biases, rng, err := buildRun(cfg)
		if err != nil {
			logrus.Fatalf("build run: %v", err)
		}

		if err := (sinks.ParmsSink{}).Write(cfg.FileBase+".parms", cfg.SystemParams(), cfg.SinksRunParams()); err != nil {
			logrus.Fatalf("write parms: %v", err)
		}

		ops, err := sinks.NewFileOpsSink(cfg.FileBase + ".ops")
		if err != nil {
			logrus.Fatalf("open ops sink: %v", err)
		}
		defer ops.Close()

		vtf, err := sinks.NewFileVTFSink(cfg.FileBase + ".vtf")
		if err != nil {
			logrus.Fatalf("open vtf sink: %v", err)
		}
		defer vtf.Close()

		logrus.Infof("starting MC run: steps=%d write_interval=%d nfil=%d nsca=%d",
			cfg.Steps, cfg.WriteInterval, cfg.NFil, cfg.NSca)

		stats, err := core.Run(sys, biases, cfg.RunParams(), rng, ops, vtf)
		if err != nil {
			logrus.Fatalf("run: %v", err)
		}

		logrus.Infof("done: translation %d/%d accepted, radius %d/%d accepted",
			stats.TranslationAccepts, stats.TranslationAttempts,
			stats.RadiusAccepts, stats.RadiusAttempts)
	},
}

var umbrellaCmd = &cobra.Command{
	Use:   "umbrella",
	Short: "Run the umbrella-sampling iteration loop",
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevel()

		cfg, err := LoadConfig(configPath)
		if err != nil {
			logrus.Fatalf("load config: %v", err)
		}

		sys, biases, rng, err := buildRun(cfg)
		if err != nil {
			logrus.Fatalf("build run: %v", err)
		}

		if err := (sinks.ParmsSink{}).Write(cfg.FileBase+".parms", cfg.SystemParams(), cfg.SinksRunParams()); err != nil {
			logrus.Fatalf("write parms: %v", err)
		}

		var seedEnes []float64
		if cfg.RestartIter > 0 {
			seedEnes, err = (sinks.BiasReader{}).ReadRestartEnes(cfg.BiasFile, cfg.RestartIter, biases.NumBins)
			if err != nil {
				logrus.Fatalf("read bias restart: %v", err)
			}
		}

		counts, err := sinks.NewUSCountsSink(cfg.FileBase + ".counts")
		if err != nil {
			logrus.Fatalf("open counts sink: %v", err)
		}
		defer counts.Close()

		freqs, err := sinks.NewUSFreqsSink(cfg.FileBase + ".freqs")
		if err != nil {
			logrus.Fatalf("open freqs sink: %v", err)
		}
		defer freqs.Close()

		biasesSink, err := sinks.NewUSBiasesSink(cfg.FileBase + ".biases")
		if err != nil {
			logrus.Fatalf("open biases sink: %v", err)
		}
		defer biasesSink.Close()

		iterSinks := func(iter int) (core.OpsSink, core.VTFSink, error) {
			ops, err := sinks.NewFileOpsSink(fmt.Sprintf("%s.iter%d.ops", cfg.FileBase, iter))
			if err != nil {
				return nil, nil, err
			}
			vtf, err := sinks.NewFileVTFSink(fmt.Sprintf("%s.iter%d.vtf", cfg.FileBase, iter))
			if err != nil {
				ops.Close()
				return nil, nil, err
			}
			return ops, vtf, nil
		}

		logrus.Infof("starting umbrella sampling: iters=%d binwidth=%d analytical=%v",
			cfg.Iters, cfg.BinWidth, cfg.AnalyticalBiases)

		stats, err := core.RunUS(sys, biases, cfg.RunParams(), cfg.USParams(), seedEnes, rng, counts, freqs, biasesSink, iterSinks)
		if err != nil {
			logrus.Fatalf("run umbrella sampling: %v", err)
		}

		logrus.Infof("done: translation %d/%d accepted, radius %d/%d accepted",
			stats.TranslationAccepts, stats.TranslationAttempts,
			stats.RadiusAccepts, stats.RadiusAttempts)
	},
}

// buildRun assembles the startup configuration, biases, and RNG shared
// by both run and umbrella.
func buildRun(cfg Config) (*core.System, *core.Biases, *core.PartitionedRNG, error) {
	params := cfg.SystemParams()

	lattice, filaments, err := core.GenerateStartupConfig(params, cfg.Overlap, cfg.MinHeight, cfg.MaxHeight, cfg.H0)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("generate startup config: %w", err)
	}

	sys := core.NewSystem(params, lattice, filaments)
	biases := core.NewBiases(cfg.MinHeight, cfg.MaxHeight, cfg.BinWidth)
	rng := core.NewPartitionedRNG(core.NewSimulationKey(cfg.Seed))

	return sys, biases, rng, nil
}

func setLogLevel() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "Path to run configuration YAML")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(umbrellaCmd)
}
