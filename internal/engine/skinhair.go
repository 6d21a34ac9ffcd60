package engine

import (
	"github.com/vitaclub/wellness-engine/internal/domain"
)

// Base skin/hair dietary profiles keyed by somatotype.
var skinHairBase = map[domain.Somatotype]domain.SkinHairProfile{
	domain.Ectomorph: {
		SkinCondition:     "Lipid-dry, thin barrier",
		HairCondition:     "Structurally thin",
		NutritionStrategy: "Raise healthy fats to rebuild the lipid barrier",
		HeroIngredient:    "Avocado + walnuts",
		MorningProtocol:   "Breakfast with omega-3 source and whole-fat yogurt",
		EveningProtocol:   "Dinner with olive oil dressing; no late caffeine",
	},
	domain.Mesomorph: {
		SkinCondition:     "Balanced, exercise-flushed",
		HairCondition:     "Dense, sweat-stressed",
		NutritionStrategy: "Antioxidants to offset training oxidative load",
		HeroIngredient:    "Berries + green tea",
		MorningProtocol:   "Vitamin C fruit with protein breakfast",
		EveningProtocol:   "Zinc-rich dinner within two hours after training",
	},
	domain.Endomorph: {
		SkinCondition:     "Sebum-rich, inflammation-prone",
		HairCondition:     "Androgenic risk",
		NutritionStrategy: "Cut refined sugar to lower sebum and inflammation",
		HeroIngredient:    "Leafy greens + turmeric",
		MorningProtocol:   "Sugar-free breakfast, green vegetables first",
		EveningProtocol:   "Light low-glycemic dinner before 20:00",
	},
}

const (
	tipNightRepair    = "Your skin runs collagen repair during late-night deep sleep. Eat your last protein portion at dinner so the building blocks are available."
	tipMorningDigest  = "Your digestion peaks in the first hours after waking. Front-load skin-feeding nutrients at breakfast for best absorption."
	antiCortisolNote  = " Add ashwagandha to blunt evening cortisol."
	antiAgingAddition = "; add a collagen peptide scoop"
	densityAddition   = "; add vitamin D3 + K2 for skin and bone density"
)

// GenerateSkinHairProfile composes the dietary skin/hair protocol from the
// somatotype base table plus stress, age, and chronotype modifiers. All
// modifiers append text; nothing is removed or reordered.
func GenerateSkinHairProfile(somatotype domain.Somatotype, chronotype domain.Chronotype, stress domain.StressLevel, age int) domain.SkinHairProfile {
	p, ok := skinHairBase[somatotype]
	if !ok {
		p = skinHairBase[domain.Mesomorph]
	}

	if stress == domain.StressHigh {
		p.HeroIngredient += " + ashwagandha"
		p.EveningProtocol += antiCortisolNote
	}

	if age > 30 {
		p.MorningProtocol += antiAgingAddition
	}
	if age > 40 {
		p.MorningProtocol += densityAddition
	}

	if chronotype == domain.Wolf {
		p.CircadianTip = tipNightRepair
	} else {
		p.CircadianTip = tipMorningDigest
	}

	return p
}
