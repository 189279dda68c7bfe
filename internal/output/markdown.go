package output

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/cachesim/cachesim/internal/benchmark"
)

// Fprint renders the full report; the same table layout serves the
// terminal and the markdown file.
func Fprint(out io.Writer, results Results) {
	w := func(format string, args ...any) {
		fmt.Fprintf(out, format, args...)
	}

	w("# cachesim results\n\n")
	w("```\n")
	if results.RunInfo.CommandLine != "" {
		w("Command: %s\n", results.RunInfo.CommandLine)
	}
	w("Environment: %s/%s, %d CPUs, %s\n",
		results.RunInfo.OS, results.RunInfo.Arch, results.RunInfo.NumCPU, results.RunInfo.GoVersion)
	w("```\n\n")

	for _, pattern := range patternOrder(results.Aggregates) {
		writePatternTable(w, pattern, results.Aggregates)
	}

	writeFailures(w, results.Aggregates)

	if len(results.Rankings) > 0 {
		w("## Overall Rankings\n\n")
		w("| Rank | Policy        | Score | Gold | Silver | Bronze |\n")
		w("|------|---------------|-------|------|--------|--------|\n")
		for _, r := range results.Rankings {
			w("| %4d | %-13s | %5.0f | %4d | %6d | %6d |\n",
				r.Rank, r.Name, r.Score, r.Gold, r.Silver, r.Bronze)
		}
		w("\n")
	}
}

// WriteMarkdown writes the report to a markdown file.
func WriteMarkdown(filename string, results Results) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	Fprint(f, results)
	return nil
}

func patternOrder(aggregates []benchmark.Aggregate) []string {
	var order []string
	seen := make(map[string]bool)
	for _, agg := range aggregates {
		p := string(agg.Pattern)
		if !seen[p] {
			seen[p] = true
			order = append(order, p)
		}
	}
	return order
}

func writePatternTable(w func(string, ...any), pattern string, aggregates []benchmark.Aggregate) {
	var rows []benchmark.Aggregate
	for _, agg := range aggregates {
		if string(agg.Pattern) == pattern {
			rows = append(rows, agg)
		}
	}
	if len(rows) == 0 {
		return
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Mean > rows[j].Mean
	})

	w("## %s pattern\n\n", pattern)
	w("| Policy        | Mean ratio | Std dev | Min    | Max    | Trials |\n")
	w("|---------------|------------|---------|--------|--------|--------|\n")
	for _, r := range rows {
		trials := fmt.Sprintf("%d", r.Trials)
		if r.Failed > 0 {
			trials = fmt.Sprintf("%d (%d failed)", r.Trials, r.Failed)
		}
		w("| %-13s | %10.4f | %7.4f | %6.4f | %6.4f | %s |\n",
			r.Policy, r.Mean, r.StdDev, r.Min, r.Max, trials)
	}

	if len(rows) >= 2 && rows[0].Mean > 0 && rows[1].Mean > 0 {
		best, second := rows[0], rows[1]
		pct := (best.Mean - second.Mean) / second.Mean * 100
		w("\n  winner: %s (+%.1f%% vs %s)\n", best.Policy, pct, second.Policy)
	}
	w("\n")
}

func writeFailures(w func(string, ...any), aggregates []benchmark.Aggregate) {
	var failed []benchmark.Aggregate
	for _, agg := range aggregates {
		if agg.Failed > 0 {
			failed = append(failed, agg)
		}
	}
	if len(failed) == 0 {
		return
	}
	w("## Failed trials\n\n")
	for _, agg := range failed {
		w("- %s on %s: %d of %d trials failed\n", agg.Policy, agg.Pattern, agg.Failed, agg.Trials)
		for _, msg := range agg.Failures {
			w("  - %s\n", msg)
		}
	}
	w("\n")
}
