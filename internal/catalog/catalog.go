// Package catalog holds the read-only meal reference data the scorer
// consumes. Loaded once at process start, never mutated.
package catalog

import (
	"github.com/vitaclub/wellness-engine/internal/domain"
)

const orderBase = "https://m.snappfood.ir/restaurant/menu/healthy-sense-cafe"

// Default is the built-in menu, used when no catalog file is configured.
var Default = []domain.MenuItem{
	{
		ID: "salad-protein", Name: "Signature Protein Salad", Price: 305000, Protein: 85,
		Ingredients: "200g grilled chicken, egg, seed mix, beans",
		Category:    domain.CategorySalad,
		Tags:        []string{domain.TagHighProtein, domain.TagLowCarb, domain.TagKeto},
		OrderLink:   orderBase,
	},
	{
		ID: "salad-caesar", Name: "Grilled Caesar Salad", Price: 270000, Protein: 52,
		Ingredients: "200g grilled chicken",
		Category:    domain.CategorySalad,
		Tags:        []string{domain.TagHighProtein, domain.TagBalanced},
		OrderLink:   orderBase,
	},
	{
		ID: "salad-greek", Name: "Greek Salad", Price: 275000, Protein: 68,
		Ingredients: "200g grilled chicken, mediterranean dressing",
		Category:    domain.CategorySalad,
		Tags:        []string{domain.TagHighProtein, domain.TagLowCarb},
		OrderLink:   orderBase,
	},
	{
		ID: "salad-quinoa-chicken", Name: "Quinoa Chicken Salad", Price: 295000, Protein: 75,
		Ingredients: "200g chicken, beans, quinoa",
		Category:    domain.CategorySalad,
		Tags:        []string{domain.TagHighProtein, domain.TagBalanced, domain.TagHighCarb},
		OrderLink:   orderBase,
	},
	{
		ID: "steak-fish", Name: "Trout Steak", Price: 410000, Protein: 44,
		Ingredients: "300g trout, steamed vegetables",
		Category:    domain.CategoryMain,
		Tags:        []string{domain.TagHighProtein, domain.TagLowCarb, domain.TagKeto},
		OrderLink:   orderBase,
	},
	{
		ID: "steak-chicken", Name: "Lean Chicken Steak", Price: 370000, Protein: 70,
		Ingredients: "300g grilled chicken steak",
		Category:    domain.CategoryMain,
		Tags:        []string{domain.TagHighProtein, domain.TagLowCarb},
		OrderLink:   orderBase,
	},
	{
		ID: "roast-beef-plate", Name: "Lean Roast Beef Plate", Price: 560000, Protein: 52,
		Ingredients: "300g trimmed beef tenderloin, mushrooms",
		Category:    domain.CategoryMain,
		Tags:        []string{domain.TagHighProtein, domain.TagKeto},
		OrderLink:   orderBase,
	},
	{
		ID: "panini-roast-beef", Name: "Roast Beef Panini", Price: 570000, Protein: 80,
		Ingredients: "150g beef, zero-fat cheese",
		Category:    domain.CategoryMain,
		Tags:        []string{domain.TagHighProtein, domain.TagHighCarb},
		OrderLink:   orderBase,
	},
	{
		ID: "pizza-steak", Name: "Italian Roast Beef Pizza", Price: 560000, Protein: 55,
		Ingredients: "High protein, no added fat",
		Category:    domain.CategoryMain,
		Tags:        []string{domain.TagHighCarb, domain.TagHighProtein},
		OrderLink:   orderBase,
	},
	{
		ID: "veggie-plate", Name: "Steamed Vegetable Plate", Price: 160000, Protein: 10,
		Ingredients: "High fiber, cleansing",
		Category:    domain.CategoryMain,
		Tags:        []string{domain.TagLowCarb, domain.TagVegan},
		OrderLink:   orderBase,
	},
	{
		ID: "oatmeal-banana", Name: "Banana Chocolate Oatmeal", Price: 205000, Protein: 12,
		Ingredients: "Stevia-sweetened, high fiber",
		Category:    domain.CategoryBreakfast,
		Tags:        []string{domain.TagHighCarb, domain.TagBalanced},
		OrderLink:   orderBase,
	},
	{
		ID: "pancake-protein", Name: "Protein Pancakes", Price: 295000, Protein: 42,
		Ingredients: "Whey protein, stevia",
		Category:    domain.CategoryBreakfast,
		Tags:        []string{domain.TagHighProtein, domain.TagBalanced},
		OrderLink:   orderBase,
	},
	{
		ID: "iranian-breakfast", Name: "Healthy Persian Breakfast", Price: 155000, Protein: 20,
		Ingredients: "Balanced protein and healthy fats",
		Category:    domain.CategoryBreakfast,
		Tags:        []string{domain.TagBalanced},
		OrderLink:   orderBase,
	},
	{
		ID: "egg-toast", Name: "Egg Toast", Price: 165000, Protein: 28,
		Ingredients: "Complete protein, complex carbs",
		Category:    domain.CategoryBreakfast,
		Tags:        []string{domain.TagBalanced, domain.TagHighProtein},
		OrderLink:   orderBase,
	},
}
