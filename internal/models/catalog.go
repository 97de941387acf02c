package models

import (
	"fmt"
	"sort"
)

// Catalog holds the effect, ingredient and substance tables.
// It is read-only after construction and safe to share.
type Catalog struct {
	effects     []*Effect
	ingredients []*Ingredient
	substances  []*Substance

	effectByID     map[EffectID]*Effect
	ingredientByID map[IngredientID]*Ingredient
	substanceByID  map[SubstanceID]*Substance

	// effects sorted by multiplier desc, ties by definition order
	byMultiplier []*Effect
}

// NewCatalog builds a catalog keeping the definition order of each table.
// Later duplicates of an id replace earlier ones in lookups but keep the first position.
func NewCatalog(effects []*Effect, ingredients []*Ingredient, substances []*Substance) *Catalog {
	c := &Catalog{
		effectByID:     make(map[EffectID]*Effect, len(effects)),
		ingredientByID: make(map[IngredientID]*Ingredient, len(ingredients)),
		substanceByID:  make(map[SubstanceID]*Substance, len(substances)),
	}

	for _, e := range effects {
		if _, ok := c.effectByID[e.ID]; !ok {
			c.effects = append(c.effects, e)
		}
		c.effectByID[e.ID] = e
	}
	for _, i := range ingredients {
		if _, ok := c.ingredientByID[i.ID]; !ok {
			c.ingredients = append(c.ingredients, i)
		}
		c.ingredientByID[i.ID] = i
	}
	for _, s := range substances {
		if _, ok := c.substanceByID[s.ID]; !ok {
			c.substances = append(c.substances, s)
		}
		c.substanceByID[s.ID] = s
	}

	// Resolve duplicates so listings and lookups agree
	for idx, e := range c.effects {
		c.effects[idx] = c.effectByID[e.ID]
	}
	for idx, i := range c.ingredients {
		c.ingredients[idx] = c.ingredientByID[i.ID]
	}
	for idx, s := range c.substances {
		c.substances[idx] = c.substanceByID[s.ID]
	}

	c.byMultiplier = make([]*Effect, len(c.effects))
	copy(c.byMultiplier, c.effects)
	sort.SliceStable(c.byMultiplier, func(i, j int) bool {
		return c.byMultiplier[i].Multiplier > c.byMultiplier[j].Multiplier
	})

	return c
}

// DefaultCatalog returns the built-in game data
func DefaultCatalog() *Catalog {
	return NewCatalog(DefaultEffects(), DefaultIngredients(), DefaultSubstances())
}

// Effect resolves an effect by id
func (c *Catalog) Effect(id EffectID) (*Effect, bool) {
	e, ok := c.effectByID[id]
	return e, ok
}

// Ingredient resolves an ingredient by id
func (c *Catalog) Ingredient(id IngredientID) (*Ingredient, bool) {
	i, ok := c.ingredientByID[id]
	return i, ok
}

// Substance resolves a substance by id
func (c *Catalog) Substance(id SubstanceID) (*Substance, bool) {
	s, ok := c.substanceByID[id]
	return s, ok
}

// AllEffects returns every effect in definition order
func (c *Catalog) AllEffects() []*Effect {
	out := make([]*Effect, len(c.effects))
	copy(out, c.effects)
	return out
}

// AllIngredients returns every ingredient in definition order
func (c *Catalog) AllIngredients() []*Ingredient {
	out := make([]*Ingredient, len(c.ingredients))
	copy(out, c.ingredients)
	return out
}

// AllSubstances returns every substance in definition order
func (c *Catalog) AllSubstances() []*Substance {
	out := make([]*Substance, len(c.substances))
	copy(out, c.substances)
	return out
}

// IngredientIDs returns all ingredient ids in definition order.
// This order is the search iteration order.
func (c *Catalog) IngredientIDs() []IngredientID {
	ids := make([]IngredientID, len(c.ingredients))
	for i, ing := range c.ingredients {
		ids[i] = ing.ID
	}
	return ids
}

// SubstanceIDs returns all substance ids in definition order
func (c *Catalog) SubstanceIDs() []SubstanceID {
	ids := make([]SubstanceID, len(c.substances))
	for i, s := range c.substances {
		ids[i] = s.ID
	}
	return ids
}

// EffectsByMultiplierRange returns effects with min <= multiplier <= max
func (c *Catalog) EffectsByMultiplierRange(min, max float64) []*Effect {
	var out []*Effect
	for _, e := range c.effects {
		if e.Multiplier >= min && e.Multiplier <= max {
			out = append(out, e)
		}
	}
	return out
}

// IngredientsByCostRange returns ingredients with min <= cost <= max
func (c *Catalog) IngredientsByCostRange(min, max float64) []*Ingredient {
	var out []*Ingredient
	for _, i := range c.ingredients {
		if i.Cost >= min && i.Cost <= max {
			out = append(out, i)
		}
	}
	return out
}

// SubstancesByCategory returns substances of one category
func (c *Catalog) SubstancesByCategory(cat SubstanceCategory) []*Substance {
	var out []*Substance
	for _, s := range c.substances {
		if s.Category == cat {
			out = append(out, s)
		}
	}
	return out
}

// TopEffectsByMultiplier returns the n highest-multiplier effects, highest first
func (c *Catalog) TopEffectsByMultiplier(n int) []*Effect {
	if n <= 0 {
		return nil
	}
	if n > len(c.byMultiplier) {
		n = len(c.byMultiplier)
	}
	out := make([]*Effect, n)
	copy(out, c.byMultiplier[:n])
	return out
}

// Validate checks that every effect referenced by ingredients and substances exists
// and that numeric attributes are in range
func (c *Catalog) Validate() error {
	for _, e := range c.effects {
		if e.Multiplier < 0 {
			return &ValidationError{Field: "effect " + string(e.ID), Message: "multiplier must be non-negative"}
		}
		if e.Addiction < 0 || e.Addiction > 1 {
			return &ValidationError{Field: "effect " + string(e.ID), Message: "addiction must be within [0,1]"}
		}
	}

	for _, i := range c.ingredients {
		field := "ingredient " + string(i.ID)
		if i.Cost < 0 {
			return &ValidationError{Field: field, Message: "cost must be non-negative"}
		}
		if _, ok := c.effectByID[i.DefaultEffect]; !ok {
			return fmt.Errorf("%s default effect: %w", field, &NotFoundError{Kind: "effect", ID: string(i.DefaultEffect)})
		}
		for n, r := range i.Rules {
			if _, ok := c.effectByID[r.If]; !ok {
				return fmt.Errorf("%s rule %d: %w", field, n, &NotFoundError{Kind: "effect", ID: string(r.If)})
			}
			if _, ok := c.effectByID[r.Then]; !ok {
				return fmt.Errorf("%s rule %d: %w", field, n, &NotFoundError{Kind: "effect", ID: string(r.Then)})
			}
		}
	}

	for _, s := range c.substances {
		field := "substance " + string(s.ID)
		if s.BasePrice <= 0 {
			return &ValidationError{Field: field, Message: "base price must be positive"}
		}
		if len(s.InitialEffects) > MaxEffects {
			return &ValidationError{Field: field, Message: fmt.Sprintf("more than %d initial effects", MaxEffects)}
		}
		for _, id := range s.InitialEffects {
			if _, ok := c.effectByID[id]; !ok {
				return fmt.Errorf("%s initial effect: %w", field, &NotFoundError{Kind: "effect", ID: string(id)})
			}
		}
	}

	return nil
}
