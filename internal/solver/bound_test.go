package solver

import (
	"math"
	"testing"

	"github.com/napolitain/mix-solver/internal/mixer"
	"github.com/napolitain/mix-solver/internal/models"
)

// bestBelow returns the highest profit reachable from s with exactly steps more ingredients
func bestBelow(m *mixer.Mixer, s *models.MixState, steps int) float64 {
	if steps == 0 {
		return s.Profit
	}
	best := math.Inf(-1)
	for _, id := range m.Catalog().IngredientIDs() {
		next, _ := m.ApplyIngredient(s, id)
		best = math.Max(best, bestBelow(m, next, steps-1))
	}
	return best
}

func TestBoundNeverUnderestimates(t *testing.T) {
	m := mixer.New(models.DefaultCatalog())
	b := NewBounder(m, m.Catalog().IngredientIDs())

	for _, sub := range models.DefaultCatalog().SubstanceIDs() {
		base, _ := m.CreateInitialState(sub)

		for steps := 0; steps <= 2; steps++ {
			bound := b.Bound([]*models.MixState{base}, steps, nil)
			actual := bestBelow(m, base, steps)
			if bound+PruneEpsilon < actual {
				t.Errorf("%s steps=%d: bound %.4f below reachable %.4f", sub, steps, bound, actual)
			}
		}

		// from every one-step child as well
		for _, id := range m.Catalog().IngredientIDs() {
			child, _ := m.ApplyIngredient(base, id)
			bound := b.Bound([]*models.MixState{child}, 1, nil)
			actual := bestBelow(m, child, 1)
			if bound+PruneEpsilon < actual {
				t.Errorf("%s after %s: bound %.4f below reachable %.4f", sub, id, bound, actual)
			}
		}
	}
}

func TestBoundCombinesStates(t *testing.T) {
	m := mixer.New(models.DefaultCatalog())
	b := NewBounder(m, m.Catalog().IngredientIDs())

	og, _ := m.CreateInitialState(models.OGKush)
	sd, _ := m.CreateInitialState(models.SourDiesel)

	pair := b.Bound([]*models.MixState{og, sd}, 2, nil)

	best := math.Inf(-1)
	for _, first := range m.Catalog().IngredientIDs() {
		for _, second := range m.Catalog().IngredientIDs() {
			a, _ := m.ApplySequence(models.OGKush, []models.IngredientID{first, second})
			c, _ := m.ApplySequence(models.SourDiesel, []models.IngredientID{first, second})
			best = math.Max(best, a.Value+c.Value-a.Cost)
		}
	}
	if pair+PruneEpsilon < best {
		t.Errorf("combined bound %.4f below reachable %.4f", pair, best)
	}

	if b.Bound(nil, 2, nil) != math.Inf(-1) {
		t.Error("bound of no states should be -Inf")
	}
}

func TestBoundWithBudget(t *testing.T) {
	m := mixer.New(models.DefaultCatalog())
	b := NewBounder(m, m.Catalog().IngredientIDs())
	base, _ := m.CreateInitialState(models.OGKush)

	// nothing affordable: the bound is the state's own profit
	zero := 0.0
	if got := b.Bound([]*models.MixState{base}, 3, &zero); math.Abs(got-base.Profit) > PruneEpsilon {
		t.Errorf("zero budget bound %.4f, want current profit %.4f", got, base.Profit)
	}

	budget := 10.0
	if b.Bound([]*models.MixState{base}, 3, &budget) < base.Profit {
		t.Error("budgeted bound below stopping here")
	}
}

func TestBounderCostAndCeiling(t *testing.T) {
	m := mixer.New(models.DefaultCatalog())

	b := NewBounder(m, []models.IngredientID{models.Battery, models.Iodine, "glitter"})
	if b.MinCost() != 8 {
		t.Errorf("min cost %.2f, want 8", b.MinCost())
	}
	if b.FutureCost(3) != 24 {
		t.Errorf("future cost %.2f, want 24", b.FutureCost(3))
	}

	all := NewBounder(m, m.Catalog().IngredientIDs())
	if all.MinCost() != 2 {
		t.Errorf("min cost %.2f, want 2", all.MinCost())
	}

	// eight effects can never exceed the eight best multipliers
	var top float64
	for _, e := range m.Catalog().TopEffectsByMultiplier(models.MaxEffects) {
		top += e.Multiplier
	}
	if got := all.MultiplierCeiling(nil, 20); got > top+PruneEpsilon {
		t.Errorf("ceiling %.4f above top-8 sum %.4f", got, top)
	}
	if got := all.MultiplierCeiling([]models.EffectID{models.Calming}, 0); math.Abs(got-0.10) > PruneEpsilon {
		t.Errorf("ceiling with no steps %.4f, want current sum 0.10", got)
	}
}
