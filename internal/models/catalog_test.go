package models

import (
	"errors"
	"testing"
)

func TestDefaultCatalogValidates(t *testing.T) {
	if err := DefaultCatalog().Validate(); err != nil {
		t.Fatalf("default catalog invalid: %v", err)
	}
}

func TestDefaultCatalogSizes(t *testing.T) {
	c := DefaultCatalog()

	if n := len(c.AllEffects()); n != 34 {
		t.Errorf("effects: got %d, want 34", n)
	}
	if n := len(c.AllIngredients()); n != 16 {
		t.Errorf("ingredients: got %d, want 16", n)
	}
	if n := len(c.AllSubstances()); n != 6 {
		t.Errorf("substances: got %d, want 6", n)
	}
}

func TestCatalogLookups(t *testing.T) {
	c := DefaultCatalog()

	if e, ok := c.Effect(AntiGravity); !ok || e.Multiplier != 0.54 {
		t.Errorf("anti_gravity lookup: %+v %v", e, ok)
	}
	if i, ok := c.Ingredient(MouthWash); !ok || i.Cost != 4 || i.DefaultEffect != Balding {
		t.Errorf("mouth_wash lookup: %+v %v", i, ok)
	}
	if s, ok := c.Substance(Cocaine); !ok || s.BasePrice != 150 || len(s.InitialEffects) != 0 {
		t.Errorf("cocaine lookup: %+v %v", s, ok)
	}

	if _, ok := c.Effect("nope"); ok {
		t.Error("unknown effect resolved")
	}
	if _, ok := c.Ingredient("nope"); ok {
		t.Error("unknown ingredient resolved")
	}
	if _, ok := c.Substance("nope"); ok {
		t.Error("unknown substance resolved")
	}
}

func TestIngredientOrder(t *testing.T) {
	ids := DefaultCatalog().IngredientIDs()
	if ids[0] != Cuke || ids[len(ids)-1] != HorseSemen {
		t.Errorf("unexpected order: %v", ids)
	}
	for i := 1; i < len(ids); i++ {
		prev, _ := DefaultCatalog().Ingredient(ids[i-1])
		cur, _ := DefaultCatalog().Ingredient(ids[i])
		if cur.Cost < prev.Cost {
			t.Errorf("%s ($%.0f) listed after %s ($%.0f)", cur.ID, cur.Cost, prev.ID, prev.Cost)
		}
	}
}

func TestTopEffectsByMultiplier(t *testing.T) {
	c := DefaultCatalog()

	top := c.TopEffectsByMultiplier(3)
	want := []EffectID{Shrinking, Zombifying, Cyclopean}
	if len(top) != len(want) {
		t.Fatalf("got %d effects, want %d", len(top), len(want))
	}
	for i, e := range top {
		if e.ID != want[i] {
			t.Errorf("top[%d] = %s, want %s", i, e.ID, want[i])
		}
	}

	if got := c.TopEffectsByMultiplier(0); got != nil {
		t.Errorf("n=0 should return nil, got %v", got)
	}
	if got := c.TopEffectsByMultiplier(100); len(got) != 34 {
		t.Errorf("n beyond size should return all, got %d", len(got))
	}
}

func TestRangeQueries(t *testing.T) {
	c := DefaultCatalog()

	cheap := c.IngredientsByCostRange(2, 3)
	if len(cheap) != 4 {
		t.Errorf("ingredients costing 2..3: got %d, want 4", len(cheap))
	}

	worthless := c.EffectsByMultiplierRange(0, 0)
	if len(worthless) != 8 {
		t.Errorf("zero-multiplier effects: got %d, want 8", len(worthless))
	}
	for _, e := range worthless {
		if e.Category != EffectNegative {
			t.Errorf("%s has no value but is %s", e.ID, e.Category)
		}
	}

	if n := len(c.SubstancesByCategory(CategoryMarijuana)); n != 4 {
		t.Errorf("marijuana strains: got %d, want 4", n)
	}
	if n := len(c.SubstancesByCategory(CategoryCocaine)); n != 1 {
		t.Errorf("cocaine: got %d, want 1", n)
	}
}

func TestListingsAreCopies(t *testing.T) {
	c := DefaultCatalog()

	effects := c.AllEffects()
	effects[0] = nil
	if c.AllEffects()[0] == nil {
		t.Error("AllEffects exposes internal slice")
	}
}

func TestNewCatalogDuplicates(t *testing.T) {
	effects := []*Effect{
		{ID: "a", Multiplier: 0.1},
		{ID: "b", Multiplier: 0.2},
		{ID: "a", Multiplier: 0.5},
	}
	c := NewCatalog(effects, nil, nil)

	all := c.AllEffects()
	if len(all) != 2 || all[0].ID != "a" || all[1].ID != "b" {
		t.Fatalf("unexpected listing %v", all)
	}
	if all[0].Multiplier != 0.5 {
		t.Errorf("listing kept stale duplicate: %.1f", all[0].Multiplier)
	}
	if e, _ := c.Effect("a"); e.Multiplier != 0.5 {
		t.Errorf("lookup returned %.1f, want 0.5", e.Multiplier)
	}
	if top := c.TopEffectsByMultiplier(1); top[0].ID != "a" {
		t.Errorf("top effect %s, want a", top[0].ID)
	}
}

func TestValidate(t *testing.T) {
	effects := func() []*Effect {
		return []*Effect{{ID: "a", Multiplier: 0.1, Addiction: 0.2}, {ID: "b", Multiplier: 0.3}}
	}

	tests := []struct {
		name        string
		effects     []*Effect
		ingredients []*Ingredient
		substances  []*Substance
		want        error
	}{
		{
			name:    "negative multiplier",
			effects: []*Effect{{ID: "a", Multiplier: -1}},
			want:    ErrValidation,
		},
		{
			name:    "addiction above one",
			effects: []*Effect{{ID: "a", Addiction: 1.5}},
			want:    ErrValidation,
		},
		{
			name:        "negative cost",
			effects:     effects(),
			ingredients: []*Ingredient{{ID: "x", Cost: -2, DefaultEffect: "a"}},
			want:        ErrValidation,
		},
		{
			name:        "unknown default effect",
			effects:     effects(),
			ingredients: []*Ingredient{{ID: "x", Cost: 1, DefaultEffect: "zzz"}},
			want:        ErrNotFound,
		},
		{
			name:        "unknown rule target",
			effects:     effects(),
			ingredients: []*Ingredient{{ID: "x", Cost: 1, DefaultEffect: "a", Rules: []Rule{{"a", "zzz"}}}},
			want:        ErrNotFound,
		},
		{
			name:       "zero base price",
			effects:    effects(),
			substances: []*Substance{{ID: "s", BasePrice: 0}},
			want:       ErrValidation,
		},
		{
			name:       "unknown initial effect",
			effects:    effects(),
			substances: []*Substance{{ID: "s", BasePrice: 10, InitialEffects: []EffectID{"zzz"}}},
			want:       ErrNotFound,
		},
		{
			name:       "too many initial effects",
			effects:    effects(),
			substances: []*Substance{{ID: "s", BasePrice: 10, InitialEffects: []EffectID{"a", "b", "a", "b", "a", "b", "a", "b", "a"}}},
			want:       ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewCatalog(tt.effects, tt.ingredients, tt.substances).Validate()
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestErrors(t *testing.T) {
	nf := &NotFoundError{Kind: "ingredient", ID: "glitter"}
	if nf.Error() != `ingredient "glitter" not found` {
		t.Errorf("unexpected message %q", nf.Error())
	}
	if !errors.Is(nf, ErrNotFound) || errors.Is(nf, ErrValidation) {
		t.Error("NotFoundError should match only ErrNotFound")
	}

	ve := &ValidationError{Field: "steps", Message: "must be non-negative"}
	if ve.Error() != "steps: must be non-negative" {
		t.Errorf("unexpected message %q", ve.Error())
	}
	if (&ValidationError{Message: "bare"}).Error() != "bare" {
		t.Error("empty field should print the message alone")
	}
	if !errors.Is(ve, ErrValidation) {
		t.Error("ValidationError should match ErrValidation")
	}
}

func TestMixStateHelpers(t *testing.T) {
	s := &MixState{
		Effects:  []EffectID{Calming, Sneaky},
		Sequence: []IngredientID{Banana},
	}
	if !s.HasEffect(Sneaky) || s.HasEffect(Toxic) {
		t.Error("HasEffect wrong")
	}
	if s.Steps() != 1 {
		t.Errorf("steps %d, want 1", s.Steps())
	}

	c := s.Clone()
	c.Effects[0] = Toxic
	c.Sequence[0] = Cuke
	if s.Effects[0] != Calming || s.Sequence[0] != Banana {
		t.Error("Clone shares slices")
	}
}

func TestResultConstructors(t *testing.T) {
	s := &MixState{Substance: OGKush, Cost: 4, Value: 64.4, Profit: 60.4, Sequence: []IngredientID{MouthWash}}

	r := NewOptimizationResult(s)
	if !r.ConstraintSatisfied || r.TotalCost != 4 || r.SellPrice != 64.4 {
		t.Errorf("unexpected result %+v", r)
	}

	sr := NewSubstanceResult(s, 8)
	if sr.TotalCost != 8 || sr.Profit != 64.4-8 {
		t.Errorf("unexpected substance result %+v", sr)
	}

	if ProfitMargin(5, 0) != 0 {
		t.Error("zero sell price should give zero margin")
	}
	if ProfitMargin(25, 100) != 25 {
		t.Errorf("margin %.2f, want 25", ProfitMargin(25, 100))
	}
}
