package benchmark

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cachesim/cachesim/internal/cache"
	"github.com/cachesim/cachesim/internal/workload"
)

// Options configure a trial run across (policy, pattern) pairs.
type Options struct {
	Policies []string
	Specs    []workload.Spec
	Capacity int
	Trials   int
	Seed     uint64
	Parallel int // trial worker limit, 0 means NumCPU
}

// Aggregate summarizes repeated trials of one (policy, pattern) pair.
// Ratios holds successful trials only; failed trials are counted and their
// messages kept, never silently dropped.
type Aggregate struct {
	Policy   string           `json:"policy"`
	Pattern  workload.Pattern `json:"pattern"`
	Ratios   []float64        `json:"ratios"`
	Mean     float64          `json:"mean"`
	StdDev   float64          `json:"std_dev"`
	Min      float64          `json:"min"`
	Max      float64          `json:"max"`
	Trials   int              `json:"trials"`
	Failed   int              `json:"failed"`
	Failures []string         `json:"failures,omitempty"`
}

// trialOutcome is one trial's result for one policy.
type trialOutcome struct {
	ratio float64
	err   error
}

// Run executes Trials independent trials for every (policy, pattern) pair.
// Within a trial every policy replays the same freshly generated sequence,
// so policies compete on identical inputs; across trials the sequences are
// regenerated from derived seeds. Trials run concurrently on a bounded
// worker pool; each trial owns its caches and writes its own result slot,
// so aggregation happens once at the end without shared mutable state.
func Run(opts Options) ([]Aggregate, error) {
	if len(opts.Policies) == 0 {
		return nil, errors.New("no policies to run")
	}
	if len(opts.Specs) == 0 {
		return nil, errors.New("no patterns to run")
	}
	if opts.Trials <= 0 {
		return nil, fmt.Errorf("trials must be positive, got %d", opts.Trials)
	}
	parallel := opts.Parallel
	if parallel <= 0 {
		parallel = runtime.NumCPU()
	}

	aggregates := make([]Aggregate, 0, len(opts.Specs)*len(opts.Policies))
	for si, spec := range opts.Specs {
		outcomes := make([][]trialOutcome, opts.Trials) // [trial][policy]

		var g errgroup.Group
		g.SetLimit(parallel)
		for t := range opts.Trials {
			g.Go(func() error {
				keys, err := workload.Generate(spec, trialSeed(opts.Seed, si, t))
				if err != nil {
					return fmt.Errorf("generate %s sequence: %w", spec.Pattern, err)
				}
				row := make([]trialOutcome, len(opts.Policies))
				for pi, policy := range opts.Policies {
					row[pi] = runTrial(policy, opts.Capacity, keys)
				}
				outcomes[t] = row
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		for pi, policy := range opts.Policies {
			agg := aggregate(policy, spec.Pattern, outcomes, pi)
			if agg.Failed > 0 {
				logrus.Warnf("%d of %d trials failed for policy %s on %s pattern",
					agg.Failed, agg.Trials, policy, spec.Pattern)
			}
			aggregates = append(aggregates, agg)
		}
		logrus.Infof("pattern %s done: %d policies x %d trials",
			spec.Pattern, len(opts.Policies), opts.Trials)
	}
	return aggregates, nil
}

func runTrial(policy string, capacity int, keys []int) trialOutcome {
	c, err := cache.New(policy, capacity)
	if err != nil {
		return trialOutcome{err: err}
	}
	defer c.Close()
	ratio, err := Replay(c, keys)
	if err != nil {
		return trialOutcome{err: err}
	}
	return trialOutcome{ratio: ratio}
}

func aggregate(policy string, pattern workload.Pattern, outcomes [][]trialOutcome, pi int) Aggregate {
	agg := Aggregate{Policy: policy, Pattern: pattern, Trials: len(outcomes)}
	for t, row := range outcomes {
		out := row[pi]
		if out.err != nil {
			agg.Failed++
			agg.Failures = append(agg.Failures, fmt.Sprintf("trial %d: %v", t, out.err))
			continue
		}
		agg.Ratios = append(agg.Ratios, out.ratio)
	}
	if len(agg.Ratios) > 0 {
		agg.Mean = stat.Mean(agg.Ratios, nil)
		agg.Min = floats.Min(agg.Ratios)
		agg.Max = floats.Max(agg.Ratios)
	}
	if len(agg.Ratios) > 1 {
		agg.StdDev = stat.StdDev(agg.Ratios, nil)
	}
	return agg
}

// trialSeed derives a distinct seed per (pattern, trial) so sequences are
// reproducible from the base seed yet independent across trials.
func trialSeed(base uint64, spec, trial int) uint64 {
	return base + uint64(spec)<<32 + uint64(trial)
}
