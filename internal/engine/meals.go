package engine

import (
	"github.com/vitaclub/wellness-engine/internal/domain"
)

// MealSlot identifies one of the three scored meal positions.
type MealSlot string

const (
	SlotBreakfast MealSlot = "breakfast"
	SlotLunch     MealSlot = "lunch"
	SlotDinner    MealSlot = "dinner"
)

// Engine scores the read-only meal catalog against classifier outputs. It
// holds no mutable state, so concurrent use needs no locking.
type Engine struct {
	catalog []domain.MenuItem
	weights Weights
}

func New(catalog []domain.MenuItem, w Weights) *Engine {
	return &Engine{catalog: catalog, weights: w}
}

func (e *Engine) Catalog() []domain.MenuItem { return e.catalog }

// RecommendMeal picks one catalog item for the slot: filter by slot-eligible
// categories, drop excluded ids, score the rest, take the first maximum in
// catalog order. An empty candidate set falls back to the unfiltered
// slot-eligible set, then to the catalog's first item, so the result is
// always deterministic and non-empty.
func (e *Engine) RecommendMeal(slot MealSlot, somatotype domain.Somatotype, chronotype domain.Chronotype, goal domain.Goal, exclude map[string]bool) (domain.MenuItem, bool) {
	if len(e.catalog) == 0 {
		return domain.MenuItem{}, false
	}

	eligible := e.slotEligible(slot)
	if len(eligible) == 0 {
		return e.catalog[0], true
	}

	candidates := eligible
	if len(exclude) > 0 {
		kept := make([]domain.MenuItem, 0, len(eligible))
		for _, item := range eligible {
			if !exclude[item.ID] {
				kept = append(kept, item)
			}
		}
		if len(kept) > 0 {
			candidates = kept
		}
	}

	best := candidates[0]
	bestScore := e.scoreItem(candidates[0], slot, somatotype, chronotype, goal)
	for _, item := range candidates[1:] {
		if s := e.scoreItem(item, slot, somatotype, chronotype, goal); s > bestScore {
			best, bestScore = item, s
		}
	}
	return best, true
}

func (e *Engine) slotEligible(slot MealSlot) []domain.MenuItem {
	var out []domain.MenuItem
	for _, item := range e.catalog {
		switch slot {
		case SlotBreakfast:
			if item.Category == domain.CategoryBreakfast {
				out = append(out, item)
			}
		case SlotLunch:
			if item.Category == domain.CategoryMain ||
				(item.Category == domain.CategorySalad && item.HasTag(domain.TagHighProtein)) {
				out = append(out, item)
			}
		case SlotDinner:
			if item.Category == domain.CategorySalad ||
				(item.Category == domain.CategoryMain && item.HasTag(domain.TagLowCarb)) {
				out = append(out, item)
			}
		}
	}
	return out
}

func (e *Engine) scoreItem(item domain.MenuItem, slot MealSlot, somatotype domain.Somatotype, chronotype domain.Chronotype, goal domain.Goal) float64 {
	score := e.weights.Baseline

	switch goal {
	case domain.GoalWeightLoss:
		if item.HasTag(domain.TagLowCarb) {
			score += e.weights.LossLowCarbBonus
		}
		if item.HasTag(domain.TagKeto) {
			score += e.weights.LossKetoBonus
		}
		if item.HasTag(domain.TagHighCarb) {
			score -= e.weights.LossHighCarbPen
		}
	case domain.GoalMuscleGain:
		if item.Protein > e.weights.GainProteinGrams {
			score += e.weights.GainProteinBonus
		}
		if item.HasTag(domain.TagHighCarb) {
			score += e.weights.GainHighCarbBonus
		}
	}

	switch somatotype {
	case domain.Endomorph:
		if item.HasTag(domain.TagHighCarb) {
			score -= e.weights.EndoHighCarbPen
		}
	case domain.Ectomorph:
		if item.HasTag(domain.TagHighCarb) {
			score += e.weights.EctoHighCarbBonus
		}
	}

	if chronotype == domain.Wolf && slot == SlotDinner && item.HasTag(domain.TagHighProtein) {
		score += e.weights.WolfDinnerBonus
	}

	return score
}
