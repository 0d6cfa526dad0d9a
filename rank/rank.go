// Package rank scores candidate inventory records against a SearchIntent and
// the raw query text. Scoring is an additive model over a 0.5 base, clamped
// to [0,1]; it orders candidates but never excludes them. Hard filtering
// happens upstream at the storage query.
package rank

import (
	"sort"
	"strings"

	"github.com/dealerdesk/showroom/inventory"
	"github.com/dealerdesk/showroom/query"
)

// ScoredVehicle pairs a record with its relevance score for one search.
// Ephemeral; produced per search and discarded after response formatting.
type ScoredVehicle struct {
	inventory.Vehicle
	RelevanceScore float64 `json:"relevance_score"`
}

// scoreProbes widens a few feature tags to the substrings that count as a
// match on record feature strings; tags not listed here match on the tag
// name itself.
var scoreProbes = map[string][]string{
	"family":  {"7 seat", "spacious", "large"},
	"turbo":   {"turbo", "performance"},
	"comfort": {"comfort", "leather", "spacious"},
}

// Score computes the relevance of one vehicle for the given intent and raw
// query. The result is always within [0,1].
func Score(v inventory.Vehicle, intent query.SearchIntent, rawQuery string) float64 {
	score := 0.5
	rawLower := strings.ToLower(rawQuery)
	params := intent.Parameters

	// Brand signals weigh highest; a structured match beats a raw mention.
	if params.Brand != "" && strings.EqualFold(params.Brand, v.Make) {
		score += 0.3
	} else if strings.Contains(rawLower, strings.ToLower(v.Make)) {
		score += 0.2
	}

	if params.Model != "" && strings.Contains(strings.ToLower(v.Model), strings.ToLower(params.Model)) {
		score += 0.25
	} else if strings.Contains(rawLower, strings.ToLower(v.Model)) {
		score += 0.15
	}

	if params.Year != 0 && params.Year == v.Year {
		score += 0.1
	}

	if params.MaxBudget != nil {
		if v.Price <= *params.MaxBudget {
			score += 0.1
		} else {
			// Over budget penalizes but does not exclude; strict
			// exclusion already happened at the storage filter.
			score -= 0.2
		}
	}
	if params.MinBudget != nil && v.Price >= *params.MinBudget {
		score += 0.05
	}

	if matched := matchedFeatureCount(v.Features, intent.Features); matched > 0 {
		score += min(float64(matched)*0.1, 0.3)
	}

	if bonus := rawWordFeatureMatches(v.Features, rawLower); bonus > 0 {
		score += min(float64(bonus)*0.05, 0.15)
	}

	return min(max(score, 0.0), 1.0)
}

// ScoreAll scores every candidate and sorts by relevance descending. The
// sort is stable: candidates with equal scores keep their arrival order,
// which preserves the storage layer's price-ascending ordering among ties.
func ScoreAll(vehicles []inventory.Vehicle, intent query.SearchIntent, rawQuery string) []ScoredVehicle {
	scored := make([]ScoredVehicle, len(vehicles))
	for i, v := range vehicles {
		scored[i] = ScoredVehicle{Vehicle: v, RelevanceScore: Score(v, intent, rawQuery)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].RelevanceScore > scored[j].RelevanceScore
	})
	return scored
}

func matchedFeatureCount(features []string, requested []string) int {
	if len(features) == 0 || len(requested) == 0 {
		return 0
	}
	lowered := make([]string, len(features))
	for i, f := range features {
		lowered[i] = strings.ToLower(f)
	}

	matched := 0
	for _, tag := range requested {
		probes, ok := scoreProbes[tag]
		if !ok {
			probes = []string{tag}
		}
		if anyContains(lowered, probes) {
			matched++
		}
	}
	return matched
}

func anyContains(features []string, probes []string) bool {
	for _, f := range features {
		for _, p := range probes {
			if strings.Contains(f, p) {
				return true
			}
		}
	}
	return false
}

// rawWordFeatureMatches counts vehicle features containing any whitespace
// separated word of the raw query.
func rawWordFeatureMatches(features []string, rawLower string) int {
	words := strings.Fields(rawLower)
	if len(words) == 0 {
		return 0
	}
	matches := 0
	for _, f := range features {
		lower := strings.ToLower(f)
		for _, w := range words {
			if strings.Contains(lower, w) {
				matches++
				break
			}
		}
	}
	return matches
}
