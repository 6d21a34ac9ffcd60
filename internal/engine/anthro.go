package engine

import (
	"math"

	"github.com/vitaclub/wellness-engine/internal/domain"
)

// ComputeBMI returns weight/(height_m)^2 rounded to one decimal, with its
// status band. Height <= 0 is guarded with a fixed {0, Normal} fallback
// instead of propagating a division error.
func ComputeBMI(weight, height float64) domain.BMIResult {
	if height <= 0 {
		return domain.BMIResult{Value: 0, Status: domain.BMINormal}
	}
	h := height / 100
	val := math.Round(weight/(h*h)*10) / 10

	status := domain.BMINormal
	switch {
	case val < 18.5:
		status = domain.BMIUnderweight
	case val >= 30:
		status = domain.BMIObese
	case val >= 25:
		status = domain.BMIOverweight
	}
	return domain.BMIResult{Value: val, Status: status}
}

// ComputeBMR estimates resting caloric need via Mifflin-St Jeor:
// 10*weight + 6.25*height - 5*age, plus 5 for males or minus 161 for females.
func ComputeBMR(weight, height float64, age int, gender domain.Gender) float64 {
	bmr := 10*weight + 6.25*height - 5*float64(age)
	if gender == domain.GenderFemale {
		return bmr - 161
	}
	return bmr + 5
}
