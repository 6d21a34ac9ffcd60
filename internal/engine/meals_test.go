package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitaclub/wellness-engine/internal/catalog"
	"github.com/vitaclub/wellness-engine/internal/domain"
)

func newTestEngine() *Engine {
	return New(catalog.Default, DefaultWeights())
}

func TestRecommendMealSlotFilters(t *testing.T) {
	e := newTestEngine()

	breakfast, ok := e.RecommendMeal(SlotBreakfast, domain.Mesomorph, domain.Bear, domain.GoalHealthDetox, nil)
	require.True(t, ok)
	assert.Equal(t, domain.CategoryBreakfast, breakfast.Category)

	lunch, ok := e.RecommendMeal(SlotLunch, domain.Mesomorph, domain.Bear, domain.GoalHealthDetox, nil)
	require.True(t, ok)
	if lunch.Category == domain.CategorySalad {
		assert.True(t, lunch.HasTag(domain.TagHighProtein), "salad lunch must be high-protein")
	} else {
		assert.Equal(t, domain.CategoryMain, lunch.Category)
	}

	dinner, ok := e.RecommendMeal(SlotDinner, domain.Mesomorph, domain.Bear, domain.GoalHealthDetox, nil)
	require.True(t, ok)
	if dinner.Category == domain.CategoryMain {
		assert.True(t, dinner.HasTag(domain.TagLowCarb), "main dinner must be low-carb")
	} else {
		assert.Equal(t, domain.CategorySalad, dinner.Category)
	}
}

func TestRecommendMealWeightLossAvoidsHighCarb(t *testing.T) {
	e := newTestEngine()

	item, ok := e.RecommendMeal(SlotLunch, domain.Endomorph, domain.Bear, domain.GoalWeightLoss, nil)
	require.True(t, ok)
	assert.False(t, item.HasTag(domain.TagHighCarb))
	assert.True(t, item.HasTag(domain.TagLowCarb) || item.HasTag(domain.TagKeto))
}

func TestRecommendMealEctomorphMuscleGainPrefersCarbs(t *testing.T) {
	e := newTestEngine()

	item, ok := e.RecommendMeal(SlotBreakfast, domain.Ectomorph, domain.Bear, domain.GoalMuscleGain, nil)
	require.True(t, ok)
	assert.True(t, item.HasTag(domain.TagHighCarb))
}

func TestRecommendMealExclusion(t *testing.T) {
	e := newTestEngine()

	lunch, ok := e.RecommendMeal(SlotLunch, domain.Mesomorph, domain.Bear, domain.GoalHealthDetox, nil)
	require.True(t, ok)

	dinner, ok := e.RecommendMeal(SlotDinner, domain.Mesomorph, domain.Bear, domain.GoalHealthDetox, map[string]bool{lunch.ID: true})
	require.True(t, ok)
	assert.NotEqual(t, lunch.ID, dinner.ID)
}

func TestRecommendMealExclusionFallback(t *testing.T) {
	e := newTestEngine()

	// Excluding every breakfast item must widen back to the eligible set
	// instead of failing.
	exclude := make(map[string]bool)
	for _, item := range catalog.Default {
		if item.Category == domain.CategoryBreakfast {
			exclude[item.ID] = true
		}
	}
	item, ok := e.RecommendMeal(SlotBreakfast, domain.Mesomorph, domain.Bear, domain.GoalHealthDetox, exclude)
	require.True(t, ok)
	assert.Equal(t, domain.CategoryBreakfast, item.Category)
}

func TestRecommendMealCatalogFallbacks(t *testing.T) {
	// A catalog with no slot-eligible items still returns its first item.
	snacksOnly := []domain.MenuItem{
		{ID: "snack-1", Name: "Trail Mix", Category: domain.CategorySnack},
		{ID: "snack-2", Name: "Protein Bar", Category: domain.CategorySnack},
	}
	e := New(snacksOnly, DefaultWeights())
	item, ok := e.RecommendMeal(SlotDinner, domain.Mesomorph, domain.Bear, domain.GoalHealthDetox, nil)
	require.True(t, ok)
	assert.Equal(t, "snack-1", item.ID)

	// An empty catalog is the only case with no result.
	empty := New(nil, DefaultWeights())
	_, ok = empty.RecommendMeal(SlotLunch, domain.Mesomorph, domain.Bear, domain.GoalHealthDetox, nil)
	assert.False(t, ok)
}

func TestRecommendMealTieBreakIsCatalogOrder(t *testing.T) {
	// With no scoring signals every candidate scores the baseline, so the
	// first eligible item in catalog order wins.
	e := newTestEngine()
	item, ok := e.RecommendMeal(SlotLunch, domain.Mesomorph, domain.Bear, domain.GoalHealthDetox, nil)
	require.True(t, ok)

	var firstEligible domain.MenuItem
	for _, c := range catalog.Default {
		if c.Category == domain.CategoryMain ||
			(c.Category == domain.CategorySalad && c.HasTag(domain.TagHighProtein)) {
			firstEligible = c
			break
		}
	}
	assert.Equal(t, firstEligible.ID, item.ID)
}

func TestRecommendMealWolfDinnerBonus(t *testing.T) {
	// Two otherwise identical salads; only the high-protein one gets the
	// wolf dinner bonus.
	menu := []domain.MenuItem{
		{ID: "plain", Category: domain.CategorySalad, Tags: []string{domain.TagBalanced}},
		{ID: "protein", Category: domain.CategorySalad, Tags: []string{domain.TagHighProtein}},
	}
	e := New(menu, DefaultWeights())

	item, ok := e.RecommendMeal(SlotDinner, domain.Mesomorph, domain.Wolf, domain.GoalHealthDetox, nil)
	require.True(t, ok)
	assert.Equal(t, "protein", item.ID)

	// Without the wolf signal the tie resolves to catalog order.
	item, ok = e.RecommendMeal(SlotDinner, domain.Mesomorph, domain.Bear, domain.GoalHealthDetox, nil)
	require.True(t, ok)
	assert.Equal(t, "plain", item.ID)
}
