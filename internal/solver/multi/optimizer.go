// Package multi searches for one ingredient sequence shared by several substances,
// maximising their combined sell price minus the once-paid sequence cost.
package multi

import (
	"github.com/napolitain/mix-solver/internal/mixer"
	"github.com/napolitain/mix-solver/internal/models"
	"github.com/napolitain/mix-solver/internal/solver"
)

// Options configures one shared-sequence search
type Options struct {
	Substances   []models.SubstanceID
	MaxSteps     int
	Ingredients  []models.IngredientID // empty = whole catalog
	Budget       *float64              // shared, nil = unlimited
	MinAddiction *float64              // applied to every substance
}

func (o Options) validate() error {
	if len(o.Substances) == 0 {
		return &models.ValidationError{Field: "substances", Message: "at least one base substance required"}
	}
	seen := make(map[models.SubstanceID]bool, len(o.Substances))
	for _, id := range o.Substances {
		if seen[id] {
			return &models.ValidationError{Field: "substances", Message: "duplicate substance " + string(id)}
		}
		seen[id] = true
	}
	if o.MaxSteps < 0 {
		return &models.ValidationError{Field: "max_steps", Message: "must be non-negative"}
	}
	if o.Budget != nil && *o.Budget < 0 {
		return &models.ValidationError{Field: "budget", Message: "must be non-negative"}
	}
	if o.MinAddiction != nil && *o.MinAddiction < 0 {
		return &models.ValidationError{Field: "min_addiction", Message: "must be non-negative"}
	}
	return nil
}

// Optimizer runs shared-sequence searches. It keeps no per-call state.
type Optimizer struct {
	mixer  *mixer.Mixer
	logger solver.Logger
}

// Option configures an Optimizer
type Option func(*Optimizer)

// WithLogger sets the logger receiving search statistics
func WithLogger(l solver.Logger) Option {
	return func(o *Optimizer) {
		o.logger = l
	}
}

// NewOptimizer creates an optimizer over a mixer
func NewOptimizer(m *mixer.Mixer, opts ...Option) *Optimizer {
	o := &Optimizer{
		mixer:  m,
		logger: solver.NopLogger{},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// node is one point of the shared sequence: a state per substance, all with
// the same sequence and cost
type node []*models.MixState

func (n node) cost() float64 {
	return n[0].Cost
}

func (n node) steps() int {
	return n[0].Steps()
}

// profit is the combined sell price minus the shared cost
func (n node) profit() float64 {
	var value float64
	for _, s := range n {
		value += s.Value
	}
	return value - n.cost()
}

type search struct {
	opts        Options
	ingredients []models.IngredientID
	bounder     *solver.Bounder
	memo        *solver.DominanceTable
	best        node
	bestProfit  float64
	stats       models.SearchStats
}

// FindOptimalMix returns the shared sequence with the highest combined profit.
// Every substance must meet MinAddiction on its own; if no sequence achieves
// that, the unmixed states are returned with ConstraintSatisfied set to false.
func (o *Optimizer) FindOptimalMix(opts Options) (*models.MultiOptimizationResult, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	root := make(node, len(opts.Substances))
	for i, id := range opts.Substances {
		state, err := o.mixer.CreateInitialState(id)
		if err != nil {
			return nil, err
		}
		root[i] = state
	}

	if opts.MaxSteps == 0 {
		result := assemble(root)
		result.ConstraintSatisfied = meetsAddiction(root, opts.MinAddiction)
		return result, nil
	}

	ingredients := solver.ResolveIngredients(o.mixer.Catalog(), opts.Ingredients)
	s := &search{
		opts:        opts,
		ingredients: ingredients,
		bounder:     solver.NewBounder(o.mixer, ingredients),
		memo:        solver.NewDominanceTable(opts.Budget != nil),
	}

	o.explore(s, root, opts.MaxSteps)

	o.logger.Debugf("multi %v steps=%d: nodes=%d leaves=%d bound_prunes=%d memo_prunes=%d skipped=%d",
		opts.Substances, opts.MaxSteps, s.stats.Nodes, s.stats.Leaves,
		s.stats.BoundPrunes, s.stats.MemoPrunes, s.stats.Skipped)

	if s.best == nil {
		o.logger.Infof("no shared sequence meets the minimum addiction for all of %v, returning base states", opts.Substances)
		result := assemble(root)
		result.ConstraintSatisfied = false
		result.Stats = s.stats
		return result, nil
	}

	result := assemble(s.best)
	result.Stats = s.stats
	return result, nil
}

func (o *Optimizer) explore(s *search, n node, remaining int) node {
	s.stats.Nodes++

	if !s.memo.Visit(n.steps(), solver.MultiStateKey(n), n.cost()) {
		s.stats.MemoPrunes++
		return nil
	}

	if remaining == 0 {
		return o.leaf(s, n)
	}

	if s.best != nil {
		bound := s.bounder.Bound(n, remaining, s.opts.Budget)
		if solver.CanPrune(bound, s.bestProfit) {
			s.stats.BoundPrunes++
			return nil
		}
	}

	cat := o.mixer.Catalog()
	var best node
	var bestProfit float64
	expanded := false

	for _, id := range s.ingredients {
		ing, ok := cat.Ingredient(id)
		if !ok {
			s.stats.Skipped++
			continue
		}
		if s.opts.Budget != nil && n.cost()+ing.Cost > *s.opts.Budget {
			s.stats.Skipped++
			continue
		}

		next, ok := o.step(n, id)
		if !ok {
			s.stats.Skipped++
			continue
		}
		expanded = true

		child := o.explore(s, next, remaining-1)
		if child == nil {
			continue
		}
		if p := child.profit(); best == nil || p > bestProfit {
			best, bestProfit = child, p
		}
	}

	if !expanded {
		return o.leaf(s, n)
	}
	return best
}

// step applies id to every tracked state. Nothing is committed unless all succeed.
func (o *Optimizer) step(n node, id models.IngredientID) (node, bool) {
	next := make(node, len(n))
	for i, state := range n {
		applied, err := o.mixer.ApplyIngredient(state, id)
		if err != nil {
			return nil, false
		}
		next[i] = applied
	}
	return next, true
}

func (o *Optimizer) leaf(s *search, n node) node {
	s.stats.Leaves++
	if !meetsAddiction(n, s.opts.MinAddiction) {
		return nil
	}
	if p := n.profit(); s.best == nil || p > s.bestProfit {
		s.best, s.bestProfit = n, p
	}
	return n
}

func meetsAddiction(n node, min *float64) bool {
	for _, state := range n {
		if !solver.MeetsAddiction(state, min) {
			return false
		}
	}
	return true
}

// assemble builds the result; totals come from the sums, so the shared cost
// is subtracted once
func assemble(n node) *models.MultiOptimizationResult {
	cost := n.cost()
	result := &models.MultiOptimizationResult{
		Sequence:            append([]models.IngredientID{}, n[0].Sequence...),
		Results:             make([]models.SubstanceResult, len(n)),
		TotalCost:           cost,
		ConstraintSatisfied: true,
	}
	for i, state := range n {
		result.Results[i] = models.NewSubstanceResult(state, cost)
		result.TotalSellPrice += state.Value
	}
	result.TotalProfit = result.TotalSellPrice - result.TotalCost
	result.AverageProfitMargin = models.ProfitMargin(result.TotalProfit, result.TotalSellPrice)
	return result
}
