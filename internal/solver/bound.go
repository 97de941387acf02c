package solver

import (
	"math"

	"github.com/napolitain/mix-solver/internal/mixer"
	"github.com/napolitain/mix-solver/internal/models"
)

// Bounder computes optimistic profit estimates for branch-and-bound pruning.
//
// The multiplier sum after k more steps is bounded two ways and the smaller bound wins:
//   - each step changes the sum by at most maxGain, the largest per-ingredient sum of
//     positive rule deltas plus the default effect's multiplier;
//   - the final set holds at most min(8, |E|+k) effects, so its sum is at most the sum
//     of that many top catalog multipliers.
//
// Future cost is k times the cheapest allowed ingredient.
type Bounder struct {
	mixer   *mixer.Mixer
	minCost float64
	maxGain float64
	known   int
	topSum  []float64 // topSum[k] = sum of the k highest catalog multipliers
}

// NewBounder prepares a bounder for one set of allowed ingredients
func NewBounder(m *mixer.Mixer, ingredients []models.IngredientID) *Bounder {
	cat := m.Catalog()
	b := &Bounder{mixer: m}

	for _, id := range ingredients {
		ing, ok := cat.Ingredient(id)
		if !ok {
			continue
		}
		if b.known == 0 || ing.Cost < b.minCost {
			b.minCost = ing.Cost
		}
		b.known++

		gain := multiplier(cat, ing.DefaultEffect)
		for _, r := range ing.Rules {
			if delta := multiplier(cat, r.Then) - multiplier(cat, r.If); delta > 0 {
				gain += delta
			}
		}
		b.maxGain = math.Max(b.maxGain, gain)
	}

	top := cat.TopEffectsByMultiplier(models.MaxEffects)
	b.topSum = make([]float64, len(top)+1)
	for i, e := range top {
		b.topSum[i+1] = b.topSum[i] + e.Multiplier
	}
	return b
}

// MinCost returns the cheapest allowed ingredient cost
func (b *Bounder) MinCost() float64 {
	return b.minCost
}

// FutureCost is the least that steps more ingredients can cost
func (b *Bounder) FutureCost(steps int) float64 {
	return float64(steps) * b.minCost
}

// MultiplierCeiling bounds the multiplier sum of effects after steps more ingredients
func (b *Bounder) MultiplierCeiling(effects []models.EffectID, steps int) float64 {
	current := b.mixer.MultiplierSum(effects)
	byGain := current + float64(steps)*b.maxGain

	k := min(models.MaxEffects, len(effects)+steps, len(b.topSum)-1)
	return math.Min(byGain, b.topSum[k])
}

// Bound returns an over-estimate of the combined profit reachable from states
// that share one sequence and one cost, within steps more ingredients.
// With a budget the search may stop early, so every feasible step count is tried.
func (b *Bounder) Bound(states []*models.MixState, steps int, budget *float64) float64 {
	if len(states) == 0 {
		return math.Inf(-1)
	}
	cost := states[0].Cost

	if budget == nil && b.known > 0 {
		return b.boundAt(states, steps, cost)
	}

	best := b.boundAt(states, 0, cost)
	for k := 1; k <= steps && b.known > 0; k++ {
		if budget != nil && cost+b.FutureCost(k) > *budget {
			break
		}
		best = math.Max(best, b.boundAt(states, k, cost))
	}
	return best
}

func (b *Bounder) boundAt(states []*models.MixState, steps int, cost float64) float64 {
	var value float64
	for _, s := range states {
		value += s.BasePrice * (1 + b.MultiplierCeiling(s.Effects, steps))
	}
	return value - cost - b.FutureCost(steps)
}

func multiplier(cat mixer.Catalog, id models.EffectID) float64 {
	if e, ok := cat.Effect(id); ok {
		return e.Multiplier
	}
	return 0
}
