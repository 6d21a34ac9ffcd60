package engine

import (
	"fmt"
	"math"
	"strings"

	"github.com/vitaclub/wellness-engine/internal/domain"
)

// TDEE multiplier applied to BMR; average activity factor.
const activityFactor = 1.35

// ApplyDefaults fills missing assessment fields with the documented
// defaults so every downstream computation is total.
func ApplyDefaults(data domain.AssessmentData) domain.AssessmentData {
	if data.Gender == "" {
		data.Gender = domain.GenderMale
	}
	if data.Age == 0 {
		data.Age = 30
	}
	if data.Height == 0 {
		data.Height = 175
	}
	if data.Weight == 0 {
		data.Weight = 75
	}
	if data.WristSize == 0 {
		data.WristSize = 18
	}
	if data.WakeTime == "" {
		data.WakeTime = "07:00"
	}
	if data.StressLevel == "" {
		data.StressLevel = domain.StressLow
	}
	if data.MainGoal == "" {
		data.MainGoal = domain.GoalHealthDetox
	}
	return data
}

// GeneratePlan runs the full classification pipeline for one assessment:
// BMI, somatotype, chronotype, caloric targets, and narrative
// recommendations.
func GeneratePlan(data domain.AssessmentData) domain.GeneratedPlan {
	data = ApplyDefaults(data)

	bmi := ComputeBMI(data.Weight, data.Height)
	somatotype := ClassifySomatotype(data.Gender, data.WristSize, bmi.Value)
	chronotype := ClassifyChronotype(data.WakeTime)

	bmr := ComputeBMR(data.Weight, data.Height, data.Age, data.Gender)
	tdee := int(math.Round(bmr * activityFactor))

	var nutrition strings.Builder
	fmt.Fprintf(&nutrition, "Daily caloric target: %d kcal. ", tdee)
	switch somatotype {
	case domain.Endomorph:
		nutrition.WriteString("Carb cycling is your best strategy. Keep breakfast sugar-free.")
	case domain.Ectomorph:
		nutrition.WriteString("You need a caloric surplus. Eat a mixed meal every 3 hours.")
	default:
		nutrition.WriteString("Your body responds well to protein. Aim for 40% protein per meal.")
	}

	supplements := []string{"Multivitamin"}
	if data.StressLevel == domain.StressHigh {
		supplements = append(supplements, "Magnesium Glycinate (night)", "Ashwagandha (afternoon)")
		nutrition.WriteString(" With high stress, limit caffeine after 14:00.")
	}

	workout := "Train inside the 6-10 hour window after waking."
	if chronotype == domain.Wolf {
		workout = "Your energy peaks in the evening. Schedule heavy lifts after 19:00."
	}
	if matchesAny(strings.ToLower(data.Neighborhood), primeDistricts) {
		workout += " Location tip: interval runs in Mellat Park, eastern slopes."
	}

	return domain.GeneratedPlan{
		Somatotype: somatotype,
		Chronotype: chronotype,
		BMIValue:   bmi.Value,
		BMIStatus:  bmi.Status,
		BMR:        int(math.Round(bmr)),
		TDEE:       tdee,
		Recommendations: domain.Recommendations{
			Nutrition:   nutrition.String(),
			Workout:     workout,
			Supplements: supplements,
			Lifestyle:   fmt.Sprintf("Metabolic baseline: %d BMR", int(math.Round(bmr))),
		},
	}
}

// GenerateDashboardMeta derives the greeting and relative energy state for
// the dashboard header.
func GenerateDashboardMeta(chronotype domain.Chronotype, wakeTime string, currentHour int) domain.DashboardMeta {
	if wakeTime == "" {
		wakeTime = "07:00"
	}

	greeting := "Good night, champion"
	switch {
	case currentHour >= 5 && currentHour < 12:
		greeting = "Good morning, champion"
	case currentHour >= 12 && currentHour < 17:
		greeting = "Good afternoon, champion"
	case currentHour >= 17 && currentHour < 21:
		greeting = "Good evening, champion"
	}

	return domain.DashboardMeta{
		Greeting:      greeting,
		EnergyLevel:   RelativeEnergyLevel(wakeTime, currentHour),
		HydrationGoal: 8,
	}
}

// GenerateDashboard composes the live projections for one assessment at the
// given hour: meta, smart cards, skin/hair protocol, and the day timeline.
func (e *Engine) GenerateDashboard(data domain.AssessmentData, currentHour int) (domain.GeneratedPlan, domain.LiveDashboard) {
	data = ApplyDefaults(data)
	plan := GeneratePlan(data)

	return plan, domain.LiveDashboard{
		Meta:     GenerateDashboardMeta(plan.Chronotype, data.WakeTime, currentHour),
		Cards:    GenerateSmartCards(plan.Somatotype, plan.Chronotype, data.MainGoal),
		SkinHair: GenerateSkinHairProfile(plan.Somatotype, plan.Chronotype, data.StressLevel, data.Age),
		Timeline: e.GenerateTimeline(plan.Chronotype, plan.Somatotype, data.WakeTime, currentHour, data.MainGoal),
	}
}
