package output

import (
	"math"
	"sort"

	"github.com/cachesim/cachesim/internal/benchmark"
)

// Points awarded by placement: 1st=10, 2nd=7, 3rd=5, 4th=4, 5th=3, 6th=2, 7th=1.
var placementPoints = []float64{10, 7, 5, 4, 3, 2, 1}

// Round3 rounds to 3 decimal places for tie detection.
func Round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}

// rankedEntry holds a name and score for tie detection.
type rankedEntry struct {
	name  string
	score float64
}

// ComputeRankings turns per-(policy, pattern) aggregates into per-pattern
// medals and an overall points leaderboard. Policies whose mean hit ratios
// agree to three decimals share a placement; the positions their tie
// consumes are skipped, so two golds leave no silver.
func ComputeRankings(aggregates []benchmark.Aggregate) ([]Ranking, []PatternMedals) {
	scores := make(map[string]float64)
	medals := make(map[string][3]int) // [gold, silver, bronze]

	byPattern := make(map[string][]rankedEntry)
	var patternOrder []string
	for _, agg := range aggregates {
		pattern := string(agg.Pattern)
		if _, ok := byPattern[pattern]; !ok {
			patternOrder = append(patternOrder, pattern)
		}
		byPattern[pattern] = append(byPattern[pattern], rankedEntry{agg.Policy, agg.Mean})
	}

	var patternMedals []PatternMedals
	for _, pattern := range patternOrder {
		entries := byPattern[pattern]
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].score > entries[j].score
		})

		pm := PatternMedals{Pattern: pattern}
		pos := 0
		i := 0
		for i < len(entries) {
			var tied []string
			baseScore := Round3(entries[i].score)
			for i < len(entries) && Round3(entries[i].score) == baseScore {
				tied = append(tied, entries[i].name)
				i++
			}

			for _, n := range tied {
				if pos < len(placementPoints) {
					scores[n] += placementPoints[pos]
				}
				if pos < 3 {
					m := medals[n]
					m[pos]++
					medals[n] = m
				}
			}

			switch pos {
			case 0:
				pm.Gold = tied
			case 1:
				pm.Silver = tied
			case 2:
				pm.Bronze = tied
			}

			pos += len(tied)
		}
		patternMedals = append(patternMedals, pm)
	}

	if len(scores) == 0 {
		return nil, nil
	}

	type policyRank struct {
		name   string
		score  float64
		gold   int
		silver int
		bronze int
	}
	var ranks []policyRank
	for name, score := range scores {
		m := medals[name]
		ranks = append(ranks, policyRank{name, score, m[0], m[1], m[2]})
	}
	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].score != ranks[j].score {
			return ranks[i].score > ranks[j].score
		}
		if ranks[i].gold != ranks[j].gold {
			return ranks[i].gold > ranks[j].gold
		}
		if ranks[i].silver != ranks[j].silver {
			return ranks[i].silver > ranks[j].silver
		}
		if ranks[i].bronze != ranks[j].bronze {
			return ranks[i].bronze > ranks[j].bronze
		}
		return ranks[i].name < ranks[j].name
	})

	rankings := make([]Ranking, 0, len(ranks))
	for i, r := range ranks {
		rankings = append(rankings, Ranking{
			Rank:   i + 1,
			Name:   r.name,
			Score:  r.score,
			Gold:   r.gold,
			Silver: r.silver,
			Bronze: r.bronze,
		})
	}
	return rankings, patternMedals
}
