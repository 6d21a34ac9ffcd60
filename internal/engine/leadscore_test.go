package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vitaclub/wellness-engine/internal/domain"
)

func TestComputeLeadScoreBase(t *testing.T) {
	data := domain.AssessmentData{Age: 25, MainGoal: domain.GoalHealthDetox}
	assert.Equal(t, 50, ComputeLeadScore(data, domain.BMINormal))
}

func TestComputeLeadScoreWeights(t *testing.T) {
	tests := []struct {
		name   string
		data   domain.AssessmentData
		status domain.BMIStatus
		want   int
	}{
		{"overweight", domain.AssessmentData{Age: 25}, domain.BMIOverweight, 65},
		{"obese", domain.AssessmentData{Age: 25}, domain.BMIObese, 75},
		{"weight loss goal", domain.AssessmentData{Age: 25, MainGoal: domain.GoalWeightLoss}, domain.BMINormal, 60},
		{"over thirty", domain.AssessmentData{Age: 31}, domain.BMINormal, 60},
		{"prime neighborhood", domain.AssessmentData{Age: 25, Neighborhood: "Vakil Abad Blvd"}, domain.BMINormal, 75},
		{"rising neighborhood", domain.AssessmentData{Age: 25, Neighborhood: "near Hashemieh"}, domain.BMINormal, 65},
		{"unknown neighborhood", domain.AssessmentData{Age: 25, Neighborhood: "somewhere"}, domain.BMINormal, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeLeadScore(tt.data, tt.status))
		})
	}
}

func TestComputeLeadScoreClampsAtHundred(t *testing.T) {
	// All weights stacked: 50 + 25 + 10 + 25 + 10 exceeds 100 and must clamp.
	data := domain.AssessmentData{
		Age:          45,
		MainGoal:     domain.GoalWeightLoss,
		Neighborhood: "Sajjad district",
	}
	assert.Equal(t, 100, ComputeLeadScore(data, domain.BMIObese))
}

func TestComputeLeadScoreRange(t *testing.T) {
	for _, status := range []domain.BMIStatus{domain.BMIUnderweight, domain.BMINormal, domain.BMIOverweight, domain.BMIObese} {
		for _, goal := range []domain.Goal{domain.GoalWeightLoss, domain.GoalMuscleGain, domain.GoalEnergy, domain.GoalHealthDetox} {
			for _, age := range []int{0, 18, 31, 90} {
				score := ComputeLeadScore(domain.AssessmentData{Age: age, MainGoal: goal, Neighborhood: "vakil"}, status)
				assert.GreaterOrEqual(t, score, 0)
				assert.LessOrEqual(t, score, 100)
			}
		}
	}
}
