package engine

import (
	"github.com/vitaclub/wellness-engine/internal/domain"
)

// GenerateSmartCards derives the macro split and workout-timing cards.
// The split starts at protein 30 / carbs 40 / fats 30 and is adjusted
// additively by somatotype and goal. Percentages are floored at 0 and
// deliberately not renormalized to sum to 100; downstream consumers treat
// them as relative emphasis, not exact shares.
func GenerateSmartCards(somatotype domain.Somatotype, chronotype domain.Chronotype, goal domain.Goal) domain.SmartCards {
	protein, carbs, fats := 30, 40, 30
	strategyTitle := "Metabolic Balance"
	strategyDetail := "Maintain steady energy levels"

	switch somatotype {
	case domain.Ectomorph:
		carbs += 10
		protein -= 5
		fats -= 5
	case domain.Endomorph:
		carbs -= 20
		protein += 10
		fats += 10
	case domain.Mesomorph:
		carbs -= 5
		protein += 5
	}

	switch goal {
	case domain.GoalMuscleGain:
		protein += 5
		carbs += 5
		fats -= 10
		strategyTitle = "Hypertrophy"
		strategyDetail = "Controlled caloric surplus"
	case domain.GoalWeightLoss:
		carbs -= 10
		protein += 10
		strategyTitle = "Lipolysis"
		strategyDetail = "Caloric deficit with high protein"
	case domain.GoalEnergy:
		fats += 5
		carbs += 5
		protein -= 10
	}

	if protein < 0 {
		protein = 0
	}
	if carbs < 0 {
		carbs = 0
	}
	if fats < 0 {
		fats = 0
	}

	value := "Balanced"
	switch somatotype {
	case domain.Endomorph:
		value = "Low Carb"
	case domain.Ectomorph:
		value = "High Carb"
	}

	workout := map[domain.Chronotype]domain.WorkoutCard{
		domain.Lion: {Title: "Testosterone Peak Window", Value: "17:00", Detail: "Strength / power"},
		domain.Bear: {Title: "Testosterone Peak Window", Value: "18:00", Detail: "Mixed cardio + weights"},
		domain.Wolf: {Title: "Testosterone Peak Window", Value: "19:00", Detail: "Strength / explosive"},
	}

	return domain.SmartCards{
		Nutrition: domain.NutritionCard{
			Title:  strategyTitle,
			Value:  value,
			Detail: strategyDetail,
			Macros: domain.Macros{Protein: protein, Carbs: carbs, Fats: fats},
		},
		Workout: workout[chronotype],
	}
}
