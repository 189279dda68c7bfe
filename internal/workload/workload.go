// Package workload generates synthetic cache access sequences.
package workload

import (
	"fmt"
	"math/rand/v2"
)

// Pattern names an access-sequence shape.
type Pattern string

const (
	// Cyclic repeats a fixed cycle of distinct keys, testing retention of
	// a small hot set.
	Cyclic Pattern = "cyclic"
	// Random draws each key uniformly and independently over the key
	// space; no temporal correlation.
	Random Pattern = "random"
	// Locality draws keys in bursts confined to a sliding sub-range of
	// the key space, favoring recency-aware policies.
	Locality Pattern = "locality"
	// Zipf draws keys with a skewed popularity distribution.
	Zipf Pattern = "zipf"
)

// Patterns returns all supported patterns in display order.
func Patterns() []Pattern {
	return []Pattern{Cyclic, Random, Locality, Zipf}
}

// Known reports whether the pattern name is supported.
func Known(p Pattern) bool {
	switch p {
	case Cyclic, Random, Locality, Zipf:
		return true
	}
	return false
}

// Spec describes one sequence to materialize. Sequences are generated
// eagerly; lengths are bounded and known upfront.
type Spec struct {
	Pattern  Pattern
	Length   int
	KeySpace int

	CycleLength int     // cyclic: number of distinct keys in the cycle
	BurstLength int     // locality: accesses per burst
	Window      int     // locality: width of the active sub-range
	Theta       float64 // zipf: skew, in (0, 1)
}

// Validate checks the parameters the pattern actually uses.
func (s Spec) Validate() error {
	if !Known(s.Pattern) {
		return fmt.Errorf("unknown pattern %q", s.Pattern)
	}
	if s.Length <= 0 {
		return fmt.Errorf("pattern %s: sequence length must be positive, got %d", s.Pattern, s.Length)
	}
	if s.KeySpace <= 0 {
		return fmt.Errorf("pattern %s: key space must be positive, got %d", s.Pattern, s.KeySpace)
	}
	switch s.Pattern {
	case Cyclic:
		if s.CycleLength <= 0 || s.CycleLength > s.KeySpace {
			return fmt.Errorf("cyclic: cycle length must be in [1, %d], got %d", s.KeySpace, s.CycleLength)
		}
	case Locality:
		if s.BurstLength <= 0 {
			return fmt.Errorf("locality: burst length must be positive, got %d", s.BurstLength)
		}
		if s.Window <= 0 || s.Window > s.KeySpace {
			return fmt.Errorf("locality: window must be in [1, %d], got %d", s.KeySpace, s.Window)
		}
	case Zipf:
		if s.Theta <= 0 || s.Theta >= 1 {
			return fmt.Errorf("zipf: theta must be in (0, 1), got %g", s.Theta)
		}
	}
	return nil
}

// Generate materializes the sequence. Equal specs and seeds produce equal
// sequences; the returned slice is never mutated by this package.
func Generate(s Spec, seed uint64) ([]int, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewPCG(seed, seed+1))
	keys := make([]int, s.Length)

	switch s.Pattern {
	case Cyclic:
		for i := range keys {
			keys[i] = i % s.CycleLength
		}
	case Random:
		for i := range keys {
			keys[i] = rng.IntN(s.KeySpace)
		}
	case Locality:
		start := 0
		for i := range keys {
			if i%s.BurstLength == 0 {
				start = rng.IntN(s.KeySpace - s.Window + 1)
			}
			keys[i] = start + rng.IntN(s.Window)
		}
	case Zipf:
		generateZipf(rng, keys, s.KeySpace, s.Theta)
	}
	return keys, nil
}
