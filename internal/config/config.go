// Package config loads and validates the simulation configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cachesim/cachesim/internal/cache"
	"github.com/cachesim/cachesim/internal/workload"
)

// Config enumerates what to simulate: which policies, which sequence
// patterns, the cache and key-space dimensions, and the trial count.
type Config struct {
	Policies []string `yaml:"policies"`
	Patterns []string `yaml:"patterns"`
	Capacity int      `yaml:"capacity"`
	KeySpace int      `yaml:"key_space"`
	Length   int      `yaml:"sequence_length"`
	Trials   int      `yaml:"trials"`
	Seed     uint64   `yaml:"seed"`
	Parallel int      `yaml:"parallel"`

	Cyclic   CyclicConfig   `yaml:"cyclic"`
	Locality LocalityConfig `yaml:"locality"`
	Zipf     ZipfConfig     `yaml:"zipf"`
}

// CyclicConfig parameterizes the cyclic pattern.
type CyclicConfig struct {
	CycleLength int `yaml:"cycle_length"`
}

// LocalityConfig parameterizes the locality pattern.
type LocalityConfig struct {
	BurstLength int `yaml:"burst_length"`
	Window      int `yaml:"window"`
}

// ZipfConfig parameterizes the zipf pattern.
type ZipfConfig struct {
	Theta float64 `yaml:"theta"`
}

// Default returns a runnable baseline configuration.
func Default() Config {
	return Config{
		Policies: []string{"lru", "fifo", "lifo"},
		Patterns: []string{string(workload.Cyclic), string(workload.Random), string(workload.Locality)},
		Capacity: 64,
		KeySpace: 256,
		Length:   10_000,
		Trials:   10,
		Seed:     42,
		Cyclic:   CyclicConfig{CycleLength: 32},
		Locality: LocalityConfig{BurstLength: 16, Window: 48},
		Zipf:     ZipfConfig{Theta: 0.99},
	}
}

// Load overlays a YAML file onto the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the whole configuration before any trial runs and
// reports every problem found as one aggregated error.
func (c Config) Validate() error {
	var errs []error
	if c.Capacity <= 0 {
		errs = append(errs, fmt.Errorf("capacity must be positive, got %d", c.Capacity))
	}
	if c.KeySpace <= 0 {
		errs = append(errs, fmt.Errorf("key space must be positive, got %d", c.KeySpace))
	}
	if c.Length <= 0 {
		errs = append(errs, fmt.Errorf("sequence length must be positive, got %d", c.Length))
	}
	if c.Trials <= 0 {
		errs = append(errs, fmt.Errorf("trials must be positive, got %d", c.Trials))
	}
	if len(c.Policies) == 0 {
		errs = append(errs, errors.New("no policies selected"))
	}
	for _, name := range c.Policies {
		if !cache.Known(name) {
			errs = append(errs, fmt.Errorf("unknown policy %q (known: %v)", name, cache.Names()))
		}
	}
	if len(c.Patterns) == 0 {
		errs = append(errs, errors.New("no patterns selected"))
	}
	for _, spec := range c.Specs() {
		if err := spec.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Specs expands the selected pattern names into workload specs.
func (c Config) Specs() []workload.Spec {
	specs := make([]workload.Spec, 0, len(c.Patterns))
	for _, name := range c.Patterns {
		specs = append(specs, workload.Spec{
			Pattern:     workload.Pattern(name),
			Length:      c.Length,
			KeySpace:    c.KeySpace,
			CycleLength: c.Cyclic.CycleLength,
			BurstLength: c.Locality.BurstLength,
			Window:      c.Locality.Window,
			Theta:       c.Zipf.Theta,
		})
	}
	return specs
}
