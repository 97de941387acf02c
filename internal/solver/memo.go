package solver

import (
	"sort"
	"strconv"
	"strings"

	"github.com/napolitain/mix-solver/internal/mixer"
	"github.com/napolitain/mix-solver/internal/models"
)

// PruneEpsilon absorbs float error when comparing a bound against the best profit
const PruneEpsilon = 1e-9

// CanPrune reports whether a branch with the given bound cannot beat best
func CanPrune(bound, best float64) bool {
	return bound+PruneEpsilon <= best
}

// DominanceTable remembers the cheapest cost at which each state key was reached
// at each depth. Two arrivals at the same key and depth face identical futures, so
// the later, costlier one cannot produce a better result and is pruned.
//
// With a budget the search may stop early at nodes where nothing is affordable,
// and a cheaper arrival would keep going where a costlier one stops. ExactOnly
// restricts pruning to arrivals at an equal cost for that case.
type DominanceTable struct {
	ExactOnly bool
	costs     map[string]float64
}

// NewDominanceTable creates an empty table
func NewDominanceTable(exactOnly bool) *DominanceTable {
	return &DominanceTable{
		ExactOnly: exactOnly,
		costs:     make(map[string]float64),
	}
}

// Visit records an arrival and returns false if an earlier arrival dominates it
func (t *DominanceTable) Visit(depth int, key string, cost float64) bool {
	k := strconv.Itoa(depth) + "#" + key
	prev, seen := t.costs[k]
	if seen {
		if prev == cost || (!t.ExactOnly && prev < cost) {
			return false
		}
		if prev < cost {
			return true
		}
	}
	t.costs[k] = cost
	return true
}

// Len returns the number of recorded keys
func (t *DominanceTable) Len() int {
	return len(t.costs)
}

// MultiStateKey is the canonical key of several tracked states: each component is
// "substance:effects", and the components are sorted and joined by "|".
func MultiStateKey(states []*models.MixState) string {
	parts := make([]string, len(states))
	for i, s := range states {
		parts[i] = string(s.Substance) + ":" + mixer.StateKey(s.Effects)
	}
	sort.Strings(parts)
	return strings.Join(parts, "|")
}
