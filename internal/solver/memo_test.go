package solver

import (
	"testing"

	"github.com/napolitain/mix-solver/internal/models"
)

func TestDominanceTable(t *testing.T) {
	memo := NewDominanceTable(false)

	if !memo.Visit(1, "calming", 4) {
		t.Fatal("first arrival must be explored")
	}
	if memo.Visit(1, "calming", 4) {
		t.Error("equal-cost arrival should be pruned")
	}
	if memo.Visit(1, "calming", 6) {
		t.Error("costlier arrival should be pruned")
	}
	if !memo.Visit(1, "calming", 2) {
		t.Error("cheaper arrival must be explored")
	}
	if memo.Visit(1, "calming", 3) {
		t.Error("arrival costlier than the new minimum should be pruned")
	}
	if !memo.Visit(2, "calming", 9) {
		t.Error("depth is part of the key")
	}
	if !memo.Visit(1, "sneaky", 9) {
		t.Error("different effects are a different key")
	}
	if memo.Len() != 3 {
		t.Errorf("len %d, want 3", memo.Len())
	}
}

func TestDominanceTableExactOnly(t *testing.T) {
	memo := NewDominanceTable(true)

	memo.Visit(1, "calming", 4)
	if !memo.Visit(1, "calming", 6) {
		t.Error("costlier arrival must be explored in exact mode")
	}
	if memo.Visit(1, "calming", 4) {
		t.Error("equal-cost arrival should still be pruned")
	}
	if !memo.Visit(1, "calming", 2) {
		t.Error("cheaper arrival must be explored")
	}
	if memo.Visit(1, "calming", 2) {
		t.Error("repeat of the new minimum should be pruned")
	}
}

func TestCanPrune(t *testing.T) {
	tests := []struct {
		bound, best float64
		want        bool
	}{
		{10, 20, true},
		{20, 10, false},
		{20, 20, true},
		{20 - 1e-12, 20, true},
		{20 + 1e-6, 20, false},
	}
	for _, tt := range tests {
		if got := CanPrune(tt.bound, tt.best); got != tt.want {
			t.Errorf("CanPrune(%v, %v) = %v, want %v", tt.bound, tt.best, got, tt.want)
		}
	}
}

func TestMultiStateKey(t *testing.T) {
	a := []*models.MixState{
		{Substance: models.OGKush, Effects: []models.EffectID{models.Sneaky, models.Calming}},
		{Substance: models.Meth, Effects: nil},
	}
	b := []*models.MixState{
		{Substance: models.Meth},
		{Substance: models.OGKush, Effects: []models.EffectID{models.Calming, models.Sneaky}},
	}

	if MultiStateKey(a) != MultiStateKey(b) {
		t.Errorf("keys differ: %q vs %q", MultiStateKey(a), MultiStateKey(b))
	}
	if want := "meth:|og_kush:calming,sneaky"; MultiStateKey(a) != want {
		t.Errorf("key %q, want %q", MultiStateKey(a), want)
	}

	c := []*models.MixState{
		{Substance: models.OGKush, Effects: []models.EffectID{models.Calming}},
		{Substance: models.Meth, Effects: []models.EffectID{models.Sneaky}},
	}
	if MultiStateKey(a) == MultiStateKey(c) {
		t.Error("effects must stay attached to their substance")
	}
}
