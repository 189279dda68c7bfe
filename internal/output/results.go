// Package output renders aggregated simulation results as terminal/markdown
// tables and JSON, and computes cross-pattern rankings. Chart plotting is
// deliberately left to downstream consumers of the JSON dump.
package output

import (
	"github.com/cachesim/cachesim/internal/benchmark"
)

// Results is the full, serializable outcome of one simulation run.
type Results struct {
	Aggregates []benchmark.Aggregate `json:"aggregates"`
	Rankings   []Ranking             `json:"rankings,omitempty"`
	Medals     []PatternMedals       `json:"medals,omitempty"`
	RunInfo    RunInfo               `json:"run_info"`
	Timestamp  string                `json:"timestamp,omitempty"`
}

// RunInfo records the environment a run was produced on.
type RunInfo struct {
	OS          string `json:"os"`
	Arch        string `json:"arch"`
	NumCPU      int    `json:"num_cpu"`
	GoVersion   string `json:"go_version"`
	CommandLine string `json:"command_line,omitempty"`
}

// Ranking is one policy's place on the overall leaderboard.
type Ranking struct {
	Rank   int     `json:"rank"`
	Name   string  `json:"name"`
	Score  float64 `json:"score"`
	Gold   int     `json:"gold"`
	Silver int     `json:"silver"`
	Bronze int     `json:"bronze"`
}

// PatternMedals lists the medalists of one pattern. Ties at three decimal
// places of mean hit ratio share a medal.
type PatternMedals struct {
	Pattern string   `json:"pattern"`
	Gold    []string `json:"gold,omitempty"`
	Silver  []string `json:"silver,omitempty"`
	Bronze  []string `json:"bronze,omitempty"`
}
