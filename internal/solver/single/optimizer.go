// Package single searches for the most profitable ingredient sequence for one substance.
package single

import (
	"github.com/napolitain/mix-solver/internal/mixer"
	"github.com/napolitain/mix-solver/internal/models"
	"github.com/napolitain/mix-solver/internal/solver"
)

// Options configures one search
type Options struct {
	Substance    models.SubstanceID
	MaxSteps     int
	Ingredients  []models.IngredientID // empty = whole catalog
	Budget       *float64              // nil = unlimited
	MinAddiction *float64              // nil = no constraint
}

func (o Options) validate() error {
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

// Optimizer runs depth-first branch-and-bound searches.
// All per-call state lives in a search value, so one Optimizer may serve
// concurrent calls.
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

// search is the per-call context threaded through the recursion
type search struct {
	opts        Options
	ingredients []models.IngredientID
	bounder     *solver.Bounder
	memo        *solver.DominanceTable
	best        *models.MixState
	stats       models.SearchStats
}

// FindOptimalMix returns the most profitable sequence of exactly MaxSteps
// ingredients, or fewer when the budget runs out. Ties go to the sequence
// found first in catalog order.
//
// If MinAddiction rules out every sequence, the unmixed base state is returned
// with ConstraintSatisfied set to false.
func (o *Optimizer) FindOptimalMix(opts Options) (*models.OptimizationResult, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	base, err := o.mixer.CreateInitialState(opts.Substance)
	if err != nil {
		return nil, err
	}

	if opts.MaxSteps == 0 {
		result := models.NewOptimizationResult(base)
		result.ConstraintSatisfied = solver.MeetsAddiction(base, opts.MinAddiction)
		return result, nil
	}

	ingredients := solver.ResolveIngredients(o.mixer.Catalog(), opts.Ingredients)
	s := &search{
		opts:        opts,
		ingredients: ingredients,
		bounder:     solver.NewBounder(o.mixer, ingredients),
		memo:        solver.NewDominanceTable(opts.Budget != nil),
	}

	o.explore(s, base, opts.MaxSteps)

	o.logger.Debugf("single %s steps=%d: nodes=%d leaves=%d bound_prunes=%d memo_prunes=%d skipped=%d",
		opts.Substance, opts.MaxSteps, s.stats.Nodes, s.stats.Leaves,
		s.stats.BoundPrunes, s.stats.MemoPrunes, s.stats.Skipped)

	if s.best == nil {
		o.logger.Infof("no sequence for %s meets the minimum addiction, returning base state", opts.Substance)
		result := models.NewOptimizationResult(base)
		result.ConstraintSatisfied = false
		result.Stats = s.stats
		return result, nil
	}

	result := models.NewOptimizationResult(s.best)
	result.Stats = s.stats
	return result, nil
}

// explore returns the best valid leaf below state, or nil when the branch was
// pruned or has no leaf meeting the addiction constraint
func (o *Optimizer) explore(s *search, state *models.MixState, remaining int) *models.MixState {
	s.stats.Nodes++

	if !s.memo.Visit(state.Steps(), mixer.StateKey(state.Effects), state.Cost) {
		s.stats.MemoPrunes++
		return nil
	}

	if remaining == 0 {
		return o.leaf(s, state)
	}

	if s.best != nil {
		bound := s.bounder.Bound([]*models.MixState{state}, remaining, s.opts.Budget)
		if solver.CanPrune(bound, s.best.Profit) {
			s.stats.BoundPrunes++
			return nil
		}
	}

	cat := o.mixer.Catalog()
	var best *models.MixState
	expanded := false

	for _, id := range s.ingredients {
		ing, ok := cat.Ingredient(id)
		if !ok {
			s.stats.Skipped++
			continue
		}
		if s.opts.Budget != nil && state.Cost+ing.Cost > *s.opts.Budget {
			s.stats.Skipped++
			continue
		}

		next, err := o.mixer.ApplyIngredient(state, id)
		if err != nil {
			s.stats.Skipped++
			continue
		}
		expanded = true

		child := o.explore(s, next, remaining-1)
		if child != nil && (best == nil || child.Profit > best.Profit) {
			best = child
		}
	}

	// Nothing affordable: the sequence ends here
	if !expanded {
		return o.leaf(s, state)
	}
	return best
}

func (o *Optimizer) leaf(s *search, state *models.MixState) *models.MixState {
	s.stats.Leaves++
	if !solver.MeetsAddiction(state, s.opts.MinAddiction) {
		return nil
	}
	if s.best == nil || state.Profit > s.best.Profit {
		s.best = state
	}
	return state
}
