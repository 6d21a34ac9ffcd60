package engine

import (
	"encoding/json"
	"fmt"
	"os"
)

// Weights defines the additive adjustments the meal scorer applies on top of
// the neutral baseline.
type Weights struct {
	Baseline          float64 `json:"baseline"`
	LossLowCarbBonus  float64 `json:"loss_low_carb_bonus"`
	LossKetoBonus     float64 `json:"loss_keto_bonus"`
	LossHighCarbPen   float64 `json:"loss_high_carb_penalty"`
	GainProteinBonus  float64 `json:"gain_protein_bonus"`
	GainProteinGrams  float64 `json:"gain_protein_grams"`
	GainHighCarbBonus float64 `json:"gain_high_carb_bonus"`
	EndoHighCarbPen   float64 `json:"endo_high_carb_penalty"`
	EctoHighCarbBonus float64 `json:"ecto_high_carb_bonus"`
	WolfDinnerBonus   float64 `json:"wolf_dinner_bonus"`
}

// DefaultWeights returns the baseline scoring profile.
func DefaultWeights() Weights {
	return Weights{
		Baseline:          50,
		LossLowCarbBonus:  15,
		LossKetoBonus:     10,
		LossHighCarbPen:   15,
		GainProteinBonus:  15,
		GainProteinGrams:  40,
		GainHighCarbBonus: 10,
		EndoHighCarbPen:   20,
		EctoHighCarbBonus: 15,
		WolfDinnerBonus:   10,
	}
}

// LoadWeightsFromFile loads weights from a JSON file, falling back to
// defaults on read errors.
func LoadWeightsFromFile(path string) (Weights, error) {
	w := DefaultWeights()
	b, err := os.ReadFile(path)
	if err != nil {
		return w, fmt.Errorf("read weights file: %w", err)
	}
	if err := json.Unmarshal(b, &w); err != nil {
		return w, fmt.Errorf("unmarshal weights: %w", err)
	}
	return w, nil
}
