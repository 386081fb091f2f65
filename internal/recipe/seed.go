package recipe

import "github.com/hammamikhairi/koji/internal/domain"

// SeedRecipes returns the built-in starter recipes in display order.
func SeedRecipes() []domain.Recipe {
	return []domain.Recipe{
		misoSoup(),
		chickenRiceBowl(),
		oatsYogurtFruit(),
	}
}

func misoSoup() domain.Recipe {
	return domain.Recipe{
		ID:          "koji-miso-soup",
		Title:       "Miso Soup (quick)",
		Description: "Simple base: dashi + miso + tofu + seaweed. 10 min.",
		Servings:    2,
		PrepMinutes: 3,
		CookMinutes: 7,
		Tags:        []string{"japanese", "quick", "broth"},
		Ingredients: []domain.Ingredient{
			{Item: "Water", Qty: "500 ml"},
			{Item: "Dashi (instant or homemade)", Qty: "1 tsp / to taste"},
			{Item: "Miso paste", Qty: "1-2 tbsp"},
			{Item: "Firm tofu", Qty: "150 g"},
			{Item: "Dried wakame", Qty: "1 tsp"},
			{Item: "Scallion", Qty: "to taste"},
		},
		Steps: []string{
			"Heat the water and dissolve the dashi.",
			"Add the wakame and cubed tofu; cook 2-3 min.",
			"Turn off the heat. Dissolve the miso in a bowl with a little broth and return it to the pot (do not boil hard).",
			"Serve and finish with scallion.",
		},
	}
}

func chickenRiceBowl() domain.Recipe {
	return domain.Recipe{
		ID:          "chicken-rice-bowl",
		Title:       "Chicken Rice Bowl (meal prep)",
		Description: "Chicken + rice + veggies. Good for 3-4 lunches.",
		Servings:    4,
		PrepMinutes: 10,
		CookMinutes: 20,
		Tags:        []string{"meal-prep", "high-protein", "simple"},
		Ingredients: []domain.Ingredient{
			{Item: "Chicken breast", Qty: "600 g"},
			{Item: "Rice (uncooked)", Qty: "1 cup"},
			{Item: "Broccoli", Qty: "2 cups"},
			{Item: "Soy sauce", Qty: "2 tbsp"},
			{Item: "Garlic", Qty: "2 cloves"},
			{Item: "Lime", Qty: "1"},
			{Item: "Oil", Qty: "1 tbsp"},
			{Item: "Salt and pepper", Qty: "to taste"},
		},
		Steps: []string{
			"Cook the rice.",
			"Season the chicken with salt, pepper, garlic, soy and lime. Sear 5-6 min per side.",
			"Steam or saute the broccoli 4-5 min.",
			"Build bowls: rice + chicken + broccoli. Pack into containers.",
		},
	}
}

func oatsYogurtFruit() domain.Recipe {
	return domain.Recipe{
		ID:          "oats-yogurt-fruit",
		Title:       "Oats with yogurt and fruit",
		Description: "Fast breakfast: filling, cheap and easy to adjust.",
		Servings:    1,
		PrepMinutes: 5,
		CookMinutes: 0,
		Tags:        []string{"breakfast", "quick", "no-cook"},
		Ingredients: []domain.Ingredient{
			{Item: "Plain or Greek yogurt", Qty: "200 g"},
			{Item: "Oats", Qty: "40-60 g"},
			{Item: "Honey or maple", Qty: "1 tsp (optional)"},
			{Item: "Fruit (banana/strawberries)", Qty: "1 cup"},
			{Item: "Cinnamon", Qty: "to taste"},
			{Item: "Nuts or peanuts", Qty: "1 handful (optional)"},
		},
		Steps: []string{
			"Mix yogurt + oats + cinnamon.",
			"Top with fruit.",
			"Sweeten if you like and finish with nuts.",
		},
	}
}
