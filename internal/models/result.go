package models

// SearchStats counts the work done by one optimizer call
type SearchStats struct {
	Nodes       int `json:"nodes"`
	Leaves      int `json:"leaves"`
	BoundPrunes int `json:"bound_prunes"`
	MemoPrunes  int `json:"memo_prunes"`
	Skipped     int `json:"skipped"` // unknown or unaffordable ingredients
}

// OptimizationResult is the outcome of a single-target search
type OptimizationResult struct {
	FinalState   *MixState      `json:"-"`
	Substance    SubstanceID    `json:"substance"`
	Sequence     []IngredientID `json:"sequence"`
	Effects      []EffectID     `json:"effects"`
	TotalCost    float64        `json:"total_cost"`
	SellPrice    float64        `json:"sell_price"`
	Profit       float64        `json:"profit"`
	ProfitMargin float64        `json:"profit_margin"`
	Addiction    float64        `json:"addiction"`

	// ConstraintSatisfied is false when a minimum addiction was requested and no
	// sequence met it; the result then describes the unmixed base substance.
	ConstraintSatisfied bool        `json:"constraint_satisfied"`
	Stats               SearchStats `json:"stats"`
}

// SubstanceResult is one substance's share of a multi-target result.
// TotalCost is the shared sequence cost, not a per-substance split.
type SubstanceResult struct {
	FinalState   *MixState   `json:"-"`
	Substance    SubstanceID `json:"substance"`
	Effects      []EffectID  `json:"effects"`
	TotalCost    float64     `json:"total_cost"`
	SellPrice    float64     `json:"sell_price"`
	Profit       float64     `json:"profit"`
	ProfitMargin float64     `json:"profit_margin"`
	Addiction    float64     `json:"addiction"`
}

// MultiOptimizationResult is the outcome of a shared-sequence search.
// TotalProfit = TotalSellPrice - TotalCost; the cost is paid once.
type MultiOptimizationResult struct {
	Sequence            []IngredientID    `json:"sequence"`
	Results             []SubstanceResult `json:"results"`
	TotalCost           float64           `json:"total_cost"`
	TotalSellPrice      float64           `json:"total_sell_price"`
	TotalProfit         float64           `json:"total_profit"`
	AverageProfitMargin float64           `json:"average_profit_margin"`

	ConstraintSatisfied bool        `json:"constraint_satisfied"`
	Stats               SearchStats `json:"stats"`
}

// ProfitMargin returns profit/sellPrice*100, or 0 when sellPrice is 0
func ProfitMargin(profit, sellPrice float64) float64 {
	if sellPrice == 0 {
		return 0
	}
	return profit / sellPrice * 100
}

// NewOptimizationResult materialises a result from a final state
func NewOptimizationResult(s *MixState) *OptimizationResult {
	return &OptimizationResult{
		FinalState:          s,
		Substance:           s.Substance,
		Sequence:            append([]IngredientID{}, s.Sequence...),
		Effects:             append([]EffectID{}, s.Effects...),
		TotalCost:           s.Cost,
		SellPrice:           s.Value,
		Profit:              s.Profit,
		ProfitMargin:        ProfitMargin(s.Profit, s.Value),
		Addiction:           s.Addiction,
		ConstraintSatisfied: true,
	}
}

// NewSubstanceResult materialises one substance's share given the shared cost
func NewSubstanceResult(s *MixState, sharedCost float64) SubstanceResult {
	profit := s.Value - sharedCost
	return SubstanceResult{
		FinalState:   s,
		Substance:    s.Substance,
		Effects:      append([]EffectID{}, s.Effects...),
		TotalCost:    sharedCost,
		SellPrice:    s.Value,
		Profit:       profit,
		ProfitMargin: ProfitMargin(profit, s.Value),
		Addiction:    s.Addiction,
	}
}
