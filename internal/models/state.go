package models

const (
	// MaxEffects is the most effects a mix can carry
	MaxEffects = 8
	// MaxAddiction caps the addiction percentage
	MaxAddiction = 100.0
)

// MixState is a snapshot of one mix after a sequence of ingredients.
// States are never mutated once built; applying an ingredient yields a new state.
type MixState struct {
	Substance SubstanceID
	BasePrice float64
	Effects   []EffectID // set semantics, insertion order
	Sequence  []IngredientID
	Cost      float64
	Value     float64
	Profit    float64
	Addiction float64 // percentage, 0..100
}

// HasEffect reports whether the mix carries id
func (s *MixState) HasEffect(id EffectID) bool {
	for _, e := range s.Effects {
		if e == id {
			return true
		}
	}
	return false
}

// Steps returns the number of ingredients applied so far
func (s *MixState) Steps() int {
	return len(s.Sequence)
}

// Clone returns a deep copy of the state
func (s *MixState) Clone() *MixState {
	c := *s
	c.Effects = make([]EffectID, len(s.Effects))
	copy(c.Effects, s.Effects)
	c.Sequence = make([]IngredientID, len(s.Sequence))
	copy(c.Sequence, s.Sequence)
	return &c
}
