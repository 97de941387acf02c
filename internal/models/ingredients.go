package models

// IngredientID identifies an ingredient that can be mixed in
type IngredientID string

const (
	Cuke        IngredientID = "cuke"
	Banana      IngredientID = "banana"
	Paracetamol IngredientID = "paracetamol"
	Donut       IngredientID = "donut"
	Viagra      IngredientID = "viagra"
	MouthWash   IngredientID = "mouth_wash"
	FluMedicine IngredientID = "flu_medicine"
	Gasoline    IngredientID = "gasoline"
	EnergyDrink IngredientID = "energy_drink"
	MotorOil    IngredientID = "motor_oil"
	MegaBean    IngredientID = "mega_bean"
	Chili       IngredientID = "chili"
	Battery     IngredientID = "battery"
	Iodine      IngredientID = "iodine"
	Addy        IngredientID = "addy"
	HorseSemen  IngredientID = "horse_semen"
)

// Rule replaces If with Then when the mix carries If
type Rule struct {
	If   EffectID
	Then EffectID
}

// Ingredient is one mixing step. Rules are applied in slice order.
type Ingredient struct {
	ID            IngredientID
	Cost          float64
	DefaultEffect EffectID
	Rules         []Rule
}

// DefaultIngredients returns the built-in ingredient table.
// Rule order is part of the data and must not be sorted.
func DefaultIngredients() []*Ingredient {
	return []*Ingredient{
		{
			ID: Cuke, Cost: 2, DefaultEffect: Energizing,
			Rules: []Rule{
				{Toxic, Euphoric},
				{Slippery, Munchies},
				{Sneaky, Paranoia},
				{Foggy, Cyclopean},
				{Gingeritis, ThoughtProvoking},
				{Munchies, Athletic},
				{Euphoric, Laxative},
			},
		},
		{
			ID: Banana, Cost: 2, DefaultEffect: Gingeritis,
			Rules: []Rule{
				{Energizing, ThoughtProvoking},
				{Calming, Sneaky},
				{Toxic, Smelly},
				{LongFaced, Refreshing},
				{Cyclopean, ThoughtProvoking},
				{Disorienting, Focused},
				{Focused, SeizureInducing},
				{Paranoia, Jennerising},
				{Smelly, AntiGravity},
			},
		},
		{
			ID: Paracetamol, Cost: 3, DefaultEffect: Sneaky,
			Rules: []Rule{
				{Energizing, Paranoia},
				{Calming, Slippery},
				{Toxic, TropicThunder},
				{Spicy, BrightEyed},
				{Glowing, Toxic},
				{Foggy, Calming},
				{Munchies, AntiGravity},
				{Paranoia, Balding},
				{Electrifying, Athletic},
			},
		},
		{
			ID: Donut, Cost: 3, DefaultEffect: CalorieDense,
			Rules: []Rule{
				{CalorieDense, Explosive},
				{Balding, Sneaky},
				{AntiGravity, Slippery},
				{Jennerising, Gingeritis},
				{Focused, Euphoric},
				{Shrinking, Energizing},
			},
		},
		{
			ID: Viagra, Cost: 4, DefaultEffect: TropicThunder,
			Rules: []Rule{
				{Athletic, Sneaky},
				{Euphoric, BrightEyed},
				{Laxative, Calming},
				{Disorienting, Toxic},
			},
		},
		{
			ID: MouthWash, Cost: 4, DefaultEffect: Balding,
			Rules: []Rule{
				{Calming, AntiGravity},
				{CalorieDense, Sneaky},
				{Explosive, Sedating},
				{Focused, Jennerising},
			},
		},
		{
			ID: FluMedicine, Cost: 5, DefaultEffect: Sedating,
			Rules: []Rule{
				{Calming, BrightEyed},
				{Athletic, Munchies},
				{ThoughtProvoking, Gingeritis},
				{Cyclopean, Foggy},
				{Munchies, Slippery},
				{Laxative, Euphoric},
				{Euphoric, Toxic},
				{Focused, Calming},
				{Electrifying, Refreshing},
				{Shrinking, Paranoia},
			},
		},
		{
			ID: Gasoline, Cost: 5, DefaultEffect: Toxic,
			Rules: []Rule{
				{Gingeritis, Smelly},
				{Jennerising, Sneaky},
				{Sneaky, TropicThunder},
				{Munchies, Sedating},
				{Energizing, Euphoric},
				{Euphoric, Spicy},
				{Laxative, Foggy},
				{Disorienting, Glowing},
				{Paranoia, Calming},
				{Electrifying, Disorienting},
				{Shrinking, Focused},
			},
		},
		{
			ID: EnergyDrink, Cost: 6, DefaultEffect: Athletic,
			Rules: []Rule{
				{Sedating, Munchies},
				{Euphoric, Energizing},
				{Spicy, Euphoric},
				{TropicThunder, Sneaky},
				{Glowing, Disorienting},
				{Foggy, Laxative},
				{Disorienting, Electrifying},
				{Schizophrenia, Balding},
				{Focused, Shrinking},
			},
		},
		{
			ID: MotorOil, Cost: 6, DefaultEffect: Slippery,
			Rules: []Rule{
				{Energizing, Munchies},
				{Foggy, Toxic},
				{Euphoric, Sedating},
				{Paranoia, AntiGravity},
				{Munchies, Schizophrenia},
			},
		},
		{
			ID: MegaBean, Cost: 7, DefaultEffect: Foggy,
			Rules: []Rule{
				{Energizing, Cyclopean},
				{Calming, Glowing},
				{Sneaky, Calming},
				{Jennerising, Paranoia},
				{Athletic, Laxative},
				{Slippery, Toxic},
				{ThoughtProvoking, Energizing},
				{SeizureInducing, Focused},
				{Focused, Disorienting},
				{Shrinking, Electrifying},
			},
		},
		{
			ID: Chili, Cost: 7, DefaultEffect: Spicy,
			Rules: []Rule{
				{Athletic, Euphoric},
				{AntiGravity, TropicThunder},
				{Sneaky, BrightEyed},
				{Munchies, Toxic},
				{Laxative, LongFaced},
				{Shrinking, Refreshing},
			},
		},
		{
			ID: Battery, Cost: 8, DefaultEffect: BrightEyed,
			Rules: []Rule{
				{Munchies, TropicThunder},
				{Euphoric, Zombifying},
				{Electrifying, Euphoric},
				{Laxative, CalorieDense},
				{Cyclopean, Glowing},
				{Shrinking, Munchies},
			},
		},
		{
			ID: Iodine, Cost: 8, DefaultEffect: Jennerising,
			Rules: []Rule{
				{Calming, Balding},
				{Toxic, Sneaky},
				{Foggy, Paranoia},
				{CalorieDense, Gingeritis},
				{Euphoric, SeizureInducing},
				{Refreshing, ThoughtProvoking},
			},
		},
		{
			ID: Addy, Cost: 9, DefaultEffect: ThoughtProvoking,
			Rules: []Rule{
				{Sedating, Gingeritis},
				{LongFaced, Electrifying},
				{Glowing, Refreshing},
				{Foggy, Energizing},
				{Explosive, Euphoric},
			},
		},
		{
			ID: HorseSemen, Cost: 9, DefaultEffect: LongFaced,
			Rules: []Rule{
				{AntiGravity, Calming},
				{Gingeritis, Refreshing},
				{ThoughtProvoking, Electrifying},
			},
		},
	}
}
