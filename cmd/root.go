// Package cmd wires the cobra CLI around the simulation engine.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cachesim/cachesim/internal/benchmark"
	"github.com/cachesim/cachesim/internal/cache"
	"github.com/cachesim/cachesim/internal/config"
	"github.com/cachesim/cachesim/internal/output"
	"github.com/cachesim/cachesim/internal/workload"
)

var (
	configPath string
	logLevel   string
	policies   []string
	patterns   []string
	capacity   int
	keySpace   int
	length     int
	trials     int
	seed       uint64
	parallel   int
	outDir     string
)

var rootCmd = &cobra.Command{
	Use:   "cachesim",
	Short: "Simulate and compare cache eviction policies on synthetic workloads",
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the simulation and report aggregated hit ratios",
	RunE:  runSimulation,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available policies and patterns",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println("Policies:")
		for _, name := range cache.Names() {
			fmt.Printf("  %s\n", name)
		}
		fmt.Println("Patterns:")
		for _, p := range workload.Patterns() {
			fmt.Printf("  %s\n", p)
		}
	},
}

func init() {
	flags := runCmd.Flags()
	flags.StringVar(&configPath, "config", "", "YAML configuration file (flags override file values)")
	flags.StringSliceVar(&policies, "policies", nil, "policies to simulate (default from config)")
	flags.StringSliceVar(&patterns, "patterns", nil, "sequence patterns to simulate (default from config)")
	flags.IntVar(&capacity, "capacity", 0, "cache capacity in entries")
	flags.IntVar(&keySpace, "key-space", 0, "size of the key space")
	flags.IntVar(&length, "length", 0, "accesses per sequence")
	flags.IntVar(&trials, "trials", 0, "trials per (policy, pattern) pair")
	flags.Uint64Var(&seed, "seed", 0, "base seed for sequence generation")
	flags.IntVar(&parallel, "parallel", 0, "concurrent trial workers (0 = NumCPU)")
	flags.StringVar(&outDir, "out-dir", "", "directory for cachesim_results.{md,json}")

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log verbosity level")
	rootCmd.AddCommand(runCmd, listCmd)
}

func runSimulation(cmd *cobra.Command, _ []string) error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q", logLevel)
	}
	logrus.SetLevel(level)

	cfg := config.Default()
	if configPath != "" {
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("policies") {
		cfg.Policies = policies
	}
	if flags.Changed("patterns") {
		cfg.Patterns = patterns
	}
	if flags.Changed("capacity") {
		cfg.Capacity = capacity
	}
	if flags.Changed("key-space") {
		cfg.KeySpace = keySpace
	}
	if flags.Changed("length") {
		cfg.Length = length
	}
	if flags.Changed("trials") {
		cfg.Trials = trials
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("parallel") {
		cfg.Parallel = parallel
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration:\n%w", err)
	}

	logrus.Infof("simulating %d policies x %d patterns: capacity=%d key_space=%d length=%d trials=%d seed=%d",
		len(cfg.Policies), len(cfg.Patterns), cfg.Capacity, cfg.KeySpace, cfg.Length, cfg.Trials, cfg.Seed)

	aggregates, err := benchmark.Run(benchmark.Options{
		Policies: cfg.Policies,
		Specs:    cfg.Specs(),
		Capacity: cfg.Capacity,
		Trials:   cfg.Trials,
		Seed:     cfg.Seed,
		Parallel: cfg.Parallel,
	})
	if err != nil {
		return err
	}

	results := output.Results{Aggregates: aggregates}
	results.Rankings, results.Medals = output.ComputeRankings(aggregates)
	results.RunInfo = output.RunInfo{
		OS:          runtime.GOOS,
		Arch:        runtime.GOARCH,
		NumCPU:      runtime.NumCPU(),
		GoVersion:   runtime.Version(),
		CommandLine: "cachesim " + strings.Join(os.Args[1:], " "),
	}

	output.Fprint(os.Stdout, results)

	if outDir != "" {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
		mdPath := filepath.Join(outDir, "cachesim_results.md")
		if err := output.WriteMarkdown(mdPath, results); err != nil {
			return fmt.Errorf("write markdown: %w", err)
		}
		jsonPath := filepath.Join(outDir, "cachesim_results.json")
		if err := output.WriteJSON(jsonPath, results); err != nil {
			return fmt.Errorf("write JSON: %w", err)
		}
		fmt.Printf("Results: %s\n         %s\n", mdPath, jsonPath)
	}
	return nil
}
