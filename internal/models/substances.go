package models

// SubstanceID identifies a base product
type SubstanceID string

const (
	OGKush           SubstanceID = "og_kush"
	SourDiesel       SubstanceID = "sour_diesel"
	GreenCrack       SubstanceID = "green_crack"
	GranddaddyPurple SubstanceID = "granddaddy_purple"
	Meth             SubstanceID = "meth"
	Cocaine          SubstanceID = "cocaine"
)

// SubstanceCategory is the product family of a substance
type SubstanceCategory string

const (
	CategoryMarijuana SubstanceCategory = "marijuana"
	CategoryMeth      SubstanceCategory = "meth"
	CategoryCocaine   SubstanceCategory = "cocaine"
)

// Substance is the base product a mix starts from
type Substance struct {
	ID             SubstanceID
	BasePrice      float64
	InitialEffects []EffectID
	Category       SubstanceCategory
}

// DefaultSubstances returns the built-in substance table
func DefaultSubstances() []*Substance {
	return []*Substance{
		{ID: OGKush, BasePrice: 35, InitialEffects: []EffectID{Calming}, Category: CategoryMarijuana},
		{ID: SourDiesel, BasePrice: 35, InitialEffects: []EffectID{Refreshing}, Category: CategoryMarijuana},
		{ID: GreenCrack, BasePrice: 35, InitialEffects: []EffectID{Energizing}, Category: CategoryMarijuana},
		{ID: GranddaddyPurple, BasePrice: 35, InitialEffects: []EffectID{Sedating}, Category: CategoryMarijuana},
		{ID: Meth, BasePrice: 70, Category: CategoryMeth},
		{ID: Cocaine, BasePrice: 150, Category: CategoryCocaine},
	}
}
