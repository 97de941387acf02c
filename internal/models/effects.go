package models

// EffectID identifies an effect a mix can carry
type EffectID string

const (
	AntiGravity      EffectID = "anti_gravity"
	Athletic         EffectID = "athletic"
	Balding          EffectID = "balding"
	BrightEyed       EffectID = "bright_eyed"
	Calming          EffectID = "calming"
	CalorieDense     EffectID = "calorie_dense"
	Cyclopean        EffectID = "cyclopean"
	Disorienting     EffectID = "disorienting"
	Electrifying     EffectID = "electrifying"
	Energizing       EffectID = "energizing"
	Euphoric         EffectID = "euphoric"
	Explosive        EffectID = "explosive"
	Focused          EffectID = "focused"
	Foggy            EffectID = "foggy"
	Gingeritis       EffectID = "gingeritis"
	Glowing          EffectID = "glowing"
	Jennerising      EffectID = "jennerising"
	Laxative         EffectID = "laxative"
	LongFaced        EffectID = "long_faced"
	Munchies         EffectID = "munchies"
	Paranoia         EffectID = "paranoia"
	Refreshing       EffectID = "refreshing"
	Schizophrenia    EffectID = "schizophrenia"
	Sedating         EffectID = "sedating"
	SeizureInducing  EffectID = "seizure_inducing"
	Shrinking        EffectID = "shrinking"
	Slippery         EffectID = "slippery"
	Smelly           EffectID = "smelly"
	Sneaky           EffectID = "sneaky"
	Spicy            EffectID = "spicy"
	ThoughtProvoking EffectID = "thought_provoking"
	Toxic            EffectID = "toxic"
	TropicThunder    EffectID = "tropic_thunder"
	Zombifying       EffectID = "zombifying"
)

// EffectCategory groups effects for listing
type EffectCategory string

const (
	EffectPositive EffectCategory = "positive"
	EffectNeutral  EffectCategory = "neutral"
	EffectNegative EffectCategory = "negative"
)

// Effect is a modifier contributing a price multiplier and an addiction weight
type Effect struct {
	ID         EffectID
	Multiplier float64 // added to 1 and applied to the base price
	Addiction  float64 // 0..1
	Category   EffectCategory
}

// DefaultEffects returns the built-in effect table in definition order
func DefaultEffects() []*Effect {
	return []*Effect{
		{ID: AntiGravity, Multiplier: 0.54, Addiction: 0.611, Category: EffectPositive},
		{ID: Athletic, Multiplier: 0.32, Addiction: 0.607, Category: EffectPositive},
		{ID: Balding, Multiplier: 0.30, Category: EffectNeutral},
		{ID: BrightEyed, Multiplier: 0.40, Addiction: 0.2, Category: EffectPositive},
		{ID: Calming, Multiplier: 0.10, Category: EffectPositive},
		{ID: CalorieDense, Multiplier: 0.28, Addiction: 0.1, Category: EffectNeutral},
		{ID: Cyclopean, Multiplier: 0.56, Addiction: 0.1, Category: EffectNeutral},
		{ID: Disorienting, Category: EffectNegative},
		{ID: Electrifying, Multiplier: 0.50, Addiction: 0.235, Category: EffectPositive},
		{ID: Energizing, Multiplier: 0.22, Addiction: 0.61, Category: EffectPositive},
		{ID: Euphoric, Multiplier: 0.18, Addiction: 0.235, Category: EffectPositive},
		{ID: Explosive, Category: EffectNegative},
		{ID: Focused, Multiplier: 0.16, Addiction: 0.104, Category: EffectPositive},
		{ID: Foggy, Multiplier: 0.36, Addiction: 0.1, Category: EffectNeutral},
		{ID: Gingeritis, Multiplier: 0.20, Category: EffectNeutral},
		{ID: Glowing, Multiplier: 0.48, Addiction: 0.472, Category: EffectPositive},
		{ID: Jennerising, Multiplier: 0.42, Addiction: 0.343, Category: EffectNeutral},
		{ID: Laxative, Addiction: 0.1, Category: EffectNegative},
		{ID: LongFaced, Multiplier: 0.52, Addiction: 0.607, Category: EffectNeutral},
		{ID: Munchies, Multiplier: 0.12, Addiction: 0.096, Category: EffectPositive},
		{ID: Paranoia, Category: EffectNegative},
		{ID: Refreshing, Multiplier: 0.14, Addiction: 0.104, Category: EffectPositive},
		{ID: Schizophrenia, Category: EffectNegative},
		{ID: Sedating, Multiplier: 0.26, Category: EffectPositive},
		{ID: SeizureInducing, Category: EffectNegative},
		{ID: Shrinking, Multiplier: 0.60, Addiction: 0.336, Category: EffectNeutral},
		{ID: Slippery, Multiplier: 0.34, Addiction: 0.309, Category: EffectNeutral},
		{ID: Smelly, Category: EffectNegative},
		{ID: Sneaky, Multiplier: 0.24, Addiction: 0.327, Category: EffectPositive},
		{ID: Spicy, Multiplier: 0.38, Addiction: 0.665, Category: EffectNeutral},
		{ID: ThoughtProvoking, Multiplier: 0.44, Addiction: 0.37, Category: EffectPositive},
		{ID: Toxic, Category: EffectNegative},
		{ID: TropicThunder, Multiplier: 0.46, Addiction: 0.803, Category: EffectPositive},
		{ID: Zombifying, Multiplier: 0.58, Addiction: 0.598, Category: EffectNeutral},
	}
}
