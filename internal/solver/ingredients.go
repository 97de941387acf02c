package solver

import (
	"github.com/napolitain/mix-solver/internal/mixer"
	"github.com/napolitain/mix-solver/internal/models"
)

// ResolveIngredients returns the iteration order for a search.
// An empty list means the whole catalog. Known ids follow catalog order with
// duplicates removed; unknown ids are kept at the end in the given order so the
// search can count them as skipped.
func ResolveIngredients(cat mixer.Catalog, ids []models.IngredientID) []models.IngredientID {
	all := cat.IngredientIDs()
	if len(ids) == 0 {
		return all
	}

	wanted := make(map[models.IngredientID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	out := make([]models.IngredientID, 0, len(ids))
	for _, id := range all {
		if wanted[id] {
			out = append(out, id)
			delete(wanted, id)
		}
	}
	for _, id := range ids {
		if wanted[id] {
			out = append(out, id)
			delete(wanted, id)
		}
	}
	return out
}

// MeetsAddiction reports whether s satisfies an optional minimum addiction
func MeetsAddiction(s *models.MixState, min *float64) bool {
	return min == nil || s.Addiction >= *min
}
