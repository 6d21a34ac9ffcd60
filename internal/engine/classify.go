package engine

import (
	"github.com/vitaclub/wellness-engine/internal/domain"
	"github.com/vitaclub/wellness-engine/internal/timeutil"
)

// Wrist thresholds (cm) separating small/medium/large bone frames.
const (
	wristSmallMale   = 17
	wristLargeMale   = 20
	wristSmallFemale = 15
	wristLargeFemale = 17
)

// defaultWakeMinutes is 07:00, used when the wake time is missing or
// malformed.
const defaultWakeMinutes = 420

// ClassifySomatotype combines a bone-frame signal (wrist circumference) with
// a mass signal (BMI) via additive points, so conflicting signals degrade
// gracefully instead of flipping on a single threshold. BMI dominates at the
// extremes: above 29 the frame is ignored entirely, which keeps a low-muscle
// high-fat profile from being labeled by bone size alone.
func ClassifySomatotype(gender domain.Gender, wristSize, bmi float64) domain.Somatotype {
	if bmi > 29 {
		return domain.Endomorph
	}

	var ecto, meso, endo int

	small, large := float64(wristSmallMale), float64(wristLargeMale)
	if gender == domain.GenderFemale {
		small, large = wristSmallFemale, wristLargeFemale
	}
	switch {
	case wristSize < small:
		ecto += 3
	case wristSize > large:
		endo += 3
	default:
		meso += 3
	}

	switch {
	case bmi > 25:
		endo += 5
		meso++
	case bmi < 18.5:
		ecto += 5
		endo -= 2
	default:
		meso += 2
		ecto++
	}

	// Strictly highest score wins; ties resolve toward the leaner type.
	result, best := domain.Ectomorph, ecto
	if meso > best {
		result, best = domain.Mesomorph, meso
	}
	if endo > best {
		result = domain.Endomorph
	}
	return result
}

// ClassifyChronotype maps habitual wake time to a chronotype: before 06:30
// lion, after 08:30 wolf, otherwise bear. Missing or malformed wake times
// default to 07:00.
func ClassifyChronotype(wakeTime string) domain.Chronotype {
	wakeMin, ok := timeutil.TimeToMinutes(wakeTime)
	if !ok {
		wakeMin = defaultWakeMinutes
	}
	switch {
	case wakeMin < 390:
		return domain.Lion
	case wakeMin > 510:
		return domain.Wolf
	default:
		return domain.Bear
	}
}

// RelativeEnergyLevel models the circadian energy curve relative to wake
// time, not clock time. The bands are staged thresholds on hours awake:
// sleep inertia, cortisol peak, post-lunch dip, second wind, melatonin onset.
func RelativeEnergyLevel(wakeTime string, currentHour int) string {
	wakeMin, ok := timeutil.TimeToMinutes(wakeTime)
	if !ok {
		wakeMin = defaultWakeMinutes
	}
	hoursAwake := currentHour - wakeMin/60
	if hoursAwake < 0 {
		hoursAwake += 24
	}

	switch {
	case hoursAwake <= 1:
		return "Low"
	case hoursAwake <= 6:
		return "High"
	case hoursAwake <= 8:
		return "Low"
	case hoursAwake <= 12:
		return "Medium"
	default:
		return "Low"
	}
}
