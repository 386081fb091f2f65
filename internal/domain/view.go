package domain

import (
	"fmt"
	"strings"
)

// ViewID identifies a page of the navigation shell.
type ViewID int

const (
	ViewDashboard ViewID = iota
	ViewRecipes
	ViewIngredients
	ViewMealPlan
)

// Views returns the navigation entries in display order.
func Views() []ViewID {
	return []ViewID{ViewDashboard, ViewRecipes, ViewIngredients, ViewMealPlan}
}

// String returns the view id used in commands and config.
func (v ViewID) String() string {
	switch v {
	case ViewDashboard:
		return "dashboard"
	case ViewRecipes:
		return "recipes"
	case ViewIngredients:
		return "ingredients"
	case ViewMealPlan:
		return "mealplan"
	default:
		return "unknown"
	}
}

// Label returns the human-readable navigation label.
func (v ViewID) Label() string {
	switch v {
	case ViewDashboard:
		return "Dashboard"
	case ViewRecipes:
		return "Recipes"
	case ViewIngredients:
		return "Ingredients"
	case ViewMealPlan:
		return "Meal Plan"
	default:
		return "Unknown"
	}
}

// ParseView converts a view name to a ViewID. Case, spaces, dashes and
// underscores are ignored, so "Meal Plan" and "meal-plan" both resolve.
func ParseView(name string) (ViewID, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(key)
	for _, v := range Views() {
		if v.String() == key {
			return v, nil
		}
	}
	return ViewDashboard, fmt.Errorf("%q: %w", name, ErrUnknownView)
}
