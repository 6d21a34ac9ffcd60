package engine

import (
	"strings"

	"github.com/vitaclub/wellness-engine/internal/domain"
)

// Affluent district fragments, matched case-insensitively as substrings of
// the free-text neighborhood answer. Prime districts weigh more than rising
// ones.
var (
	primeDistricts  = []string{"vakil", "sajjad", "ahmadabad"}
	risingDistricts = []string{"hashemieh", "kuhsangi", "farhang", "honarestan"}
)

// ComputeLeadScore derives a 0-100 commercial follow-up priority score from
// the assessment and its BMI status. Pure and deterministic; the final sum
// is clamped into [0,100].
func ComputeLeadScore(data domain.AssessmentData, bmiStatus domain.BMIStatus) int {
	score := 50

	switch bmiStatus {
	case domain.BMIOverweight:
		score += 15
	case domain.BMIObese:
		score += 25
	}

	if data.MainGoal == domain.GoalWeightLoss {
		score += 10
	}

	if hood := strings.ToLower(strings.TrimSpace(data.Neighborhood)); hood != "" {
		if matchesAny(hood, primeDistricts) {
			score += 25
		} else if matchesAny(hood, risingDistricts) {
			score += 15
		}
	}

	if data.Age > 30 {
		score += 10
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

func matchesAny(hood string, fragments []string) bool {
	for _, f := range fragments {
		if strings.Contains(hood, f) {
			return true
		}
	}
	return false
}
