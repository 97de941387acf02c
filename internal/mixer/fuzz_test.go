package mixer

import (
	"math"
	"testing"

	"github.com/napolitain/mix-solver/internal/models"
)

// FuzzApplySequence decodes bytes into a substance and an ingredient sequence
// and checks the transition invariants hold at every step
func FuzzApplySequence(f *testing.F) {
	f.Add([]byte{0, 1})
	f.Add([]byte{1, 5, 13})
	f.Add([]byte{4, 10, 10, 10, 0, 0, 3, 7, 11, 15})
	f.Add([]byte{5, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15})

	catalog := models.DefaultCatalog()
	m := New(catalog)
	substances := catalog.SubstanceIDs()
	ingredients := catalog.IngredientIDs()

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) == 0 {
			return
		}
		if len(data) > 32 {
			data = data[:32]
		}

		state, err := m.CreateInitialState(substances[int(data[0])%len(substances)])
		if err != nil {
			t.Fatalf("CreateInitialState: %v", err)
		}

		for n, b := range data[1:] {
			id := ingredients[int(b)%len(ingredients)]
			ing, _ := catalog.Ingredient(id)
			before := state.Clone()

			next, err := m.ApplyIngredient(state, id)
			if err != nil {
				t.Fatalf("step %d: %v", n, err)
			}

			if len(next.Effects) > models.MaxEffects {
				t.Fatalf("step %d: %d effects", n, len(next.Effects))
			}
			if len(SortedEffects(next.Effects)) != len(next.Effects) {
				t.Fatalf("step %d: duplicate effects %v", n, next.Effects)
			}
			if next.Cost != before.Cost+ing.Cost {
				t.Fatalf("step %d: cost %.2f, want %.2f", n, next.Cost, before.Cost+ing.Cost)
			}
			if len(next.Sequence) != len(before.Sequence)+1 || next.Sequence[len(next.Sequence)-1] != id {
				t.Fatalf("step %d: sequence %v", n, next.Sequence)
			}
			if next.Value < next.BasePrice {
				t.Fatalf("step %d: value %.2f below base price", n, next.Value)
			}
			if math.Abs(next.Profit-(next.Value-next.Cost)) > 1e-9 {
				t.Fatalf("step %d: profit %.4f != value - cost", n, next.Profit)
			}
			if next.Addiction < 0 || next.Addiction > models.MaxAddiction {
				t.Fatalf("step %d: addiction %.0f out of range", n, next.Addiction)
			}
			// rules never grow the set, so a non-full mix always gains the default
			if len(before.Effects) < models.MaxEffects && !next.HasEffect(ing.DefaultEffect) {
				t.Fatalf("step %d: default %s missing from %v", n, ing.DefaultEffect, next.Effects)
			}
			if StateKey(state.Effects) != StateKey(before.Effects) || state.Cost != before.Cost {
				t.Fatalf("step %d: input state mutated", n)
			}

			state = next
		}
	})
}
