// Package mixer applies ingredients to mix states and values the result.
// It performs no search; see the solver packages for that.
package mixer

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/napolitain/mix-solver/internal/models"
)

// Catalog is the read-only data the mixer and optimizers depend on
type Catalog interface {
	Effect(id models.EffectID) (*models.Effect, bool)
	Ingredient(id models.IngredientID) (*models.Ingredient, bool)
	Substance(id models.SubstanceID) (*models.Substance, bool)
	IngredientIDs() []models.IngredientID
	TopEffectsByMultiplier(n int) []*models.Effect
}

// Mixer is the state transition engine. It holds no mutable state.
type Mixer struct {
	catalog Catalog
}

// New creates a mixer over a catalog
func New(catalog Catalog) *Mixer {
	return &Mixer{catalog: catalog}
}

// Catalog returns the catalog the mixer resolves ids against
func (m *Mixer) Catalog() Catalog {
	return m.catalog
}

// CreateInitialState builds the unmixed state of a substance
func (m *Mixer) CreateInitialState(id models.SubstanceID) (*models.MixState, error) {
	sub, ok := m.catalog.Substance(id)
	if !ok {
		return nil, &models.NotFoundError{Kind: "substance", ID: string(id)}
	}

	effects := make([]models.EffectID, 0, models.MaxEffects)
	for _, e := range sub.InitialEffects {
		if len(effects) >= models.MaxEffects {
			break
		}
		if !contains(effects, e) {
			effects = append(effects, e)
		}
	}

	state := &models.MixState{
		Substance: sub.ID,
		BasePrice: sub.BasePrice,
		Effects:   effects,
		Sequence:  []models.IngredientID{},
	}
	m.recompute(state)
	return state, nil
}

// ApplyIngredient returns the state produced by mixing one ingredient into s.
// s is left untouched.
func (m *Mixer) ApplyIngredient(s *models.MixState, id models.IngredientID) (*models.MixState, error) {
	ing, ok := m.catalog.Ingredient(id)
	if !ok {
		return nil, &models.NotFoundError{Kind: "ingredient", ID: string(id)}
	}

	effects := transform(s.Effects, ing)
	if len(effects) < models.MaxEffects && !contains(effects, ing.DefaultEffect) {
		effects = append(effects, ing.DefaultEffect)
	}

	sequence := make([]models.IngredientID, len(s.Sequence), len(s.Sequence)+1)
	copy(sequence, s.Sequence)

	next := &models.MixState{
		Substance: s.Substance,
		BasePrice: s.BasePrice,
		Effects:   effects,
		Sequence:  append(sequence, id),
		Cost:      s.Cost + ing.Cost,
	}
	m.recompute(next)
	return next, nil
}

// ApplySequence folds ApplyIngredient over ids starting from the substance's initial state
func (m *Mixer) ApplySequence(substance models.SubstanceID, ids []models.IngredientID) (*models.MixState, error) {
	state, err := m.CreateInitialState(substance)
	if err != nil {
		return nil, err
	}
	for n, id := range ids {
		state, err = m.ApplyIngredient(state, id)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", n+1, err)
		}
	}
	return state, nil
}

// WouldExceedEffectLimit reports whether applying id to s would drop the
// ingredient's default effect because the mix is full. s is not modified.
func (m *Mixer) WouldExceedEffectLimit(s *models.MixState, id models.IngredientID) (bool, error) {
	ing, ok := m.catalog.Ingredient(id)
	if !ok {
		return false, &models.NotFoundError{Kind: "ingredient", ID: string(id)}
	}
	effects := transform(s.Effects, ing)
	return len(effects) >= models.MaxEffects && !contains(effects, ing.DefaultEffect), nil
}

// CalculateCurrentValue returns basePrice * (1 + sum of effect multipliers)
func (m *Mixer) CalculateCurrentValue(s *models.MixState) float64 {
	return s.BasePrice * (1 + m.MultiplierSum(s.Effects))
}

// CalculateProfit returns current value minus cumulative cost
func (m *Mixer) CalculateProfit(s *models.MixState) float64 {
	return m.CalculateCurrentValue(s) - s.Cost
}

// CalculateAddiction returns the addiction percentage of an effect set, rounded and capped
func (m *Mixer) CalculateAddiction(effects []models.EffectID) float64 {
	var sum float64
	for _, id := range SortedEffects(effects) {
		if e, ok := m.catalog.Effect(id); ok {
			sum += e.Addiction
		}
	}
	return math.Min(math.Round(sum*100), models.MaxAddiction)
}

// MultiplierSum adds up the multipliers of effects. Unknown effects count as 0.
// Summation runs in id order so equal sets always produce identical floats.
func (m *Mixer) MultiplierSum(effects []models.EffectID) float64 {
	var sum float64
	for _, id := range SortedEffects(effects) {
		if e, ok := m.catalog.Effect(id); ok {
			sum += e.Multiplier
		}
	}
	return sum
}

// EffectsArray returns a copy of the state's effects in insertion order
func EffectsArray(s *models.MixState) []models.EffectID {
	return append([]models.EffectID{}, s.Effects...)
}

// SortedEffects returns the state's effects sorted by id, deduplicated
func SortedEffects(effects []models.EffectID) []models.EffectID {
	out := make([]models.EffectID, 0, len(effects))
	for _, e := range effects {
		if !contains(out, e) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// StateKey is the canonical form of an effect set: sorted ids joined by ",".
// Equal sets give equal keys regardless of how they were reached.
func StateKey(effects []models.EffectID) string {
	sorted := SortedEffects(effects)
	var b strings.Builder
	for i, e := range sorted {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(string(e))
	}
	return b.String()
}

func (m *Mixer) recompute(s *models.MixState) {
	s.Value = m.CalculateCurrentValue(s)
	s.Profit = s.Value - s.Cost
	s.Addiction = m.CalculateAddiction(s.Effects)
}

// transform applies the ingredient's rules in order against a working copy.
// Each rule sees the replacements made by the rules before it.
func transform(effects []models.EffectID, ing *models.Ingredient) []models.EffectID {
	working := make([]models.EffectID, len(effects), max(len(effects), models.MaxEffects)+1)
	copy(working, effects)

	for _, r := range ing.Rules {
		idx := indexOf(working, r.If)
		if idx < 0 || r.If == r.Then {
			continue
		}
		if contains(working, r.Then) {
			working = append(working[:idx], working[idx+1:]...)
			continue
		}
		working[idx] = r.Then
	}
	return working
}

func indexOf(effects []models.EffectID, id models.EffectID) int {
	for i, e := range effects {
		if e == id {
			return i
		}
	}
	return -1
}

func contains(effects []models.EffectID, id models.EffectID) bool {
	return indexOf(effects, id) >= 0
}
