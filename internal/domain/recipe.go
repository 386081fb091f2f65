// Package domain defines the core types and interfaces for the recipe manager.
// All other packages depend on domain; domain depends on nothing.
package domain

// Recipe is a single recipe record. Values are copied with Clone before
// they cross an ownership boundary (store, editor draft).
type Recipe struct {
	ID          string       `json:"id" yaml:"id" toml:"id"`
	Title       string       `json:"title" yaml:"title" toml:"title"`
	Description string       `json:"description" yaml:"description" toml:"description"`
	Servings    int          `json:"servings" yaml:"servings" toml:"servings"`
	PrepMinutes int          `json:"prepMinutes" yaml:"prep_minutes" toml:"prep_minutes"`
	CookMinutes int          `json:"cookMinutes" yaml:"cook_minutes" toml:"cook_minutes"`
	Tags        []string     `json:"tags" yaml:"tags" toml:"tags"`
	Ingredients []Ingredient `json:"ingredients" yaml:"ingredients" toml:"ingredients"`
	Steps       []string     `json:"steps" yaml:"steps" toml:"steps"`
}

// Ingredient is one line of a recipe's ingredient list. An empty Qty means
// the quantity is absent ("salt", "to taste" style entries).
type Ingredient struct {
	Item string `json:"item" yaml:"item" toml:"item"`
	Qty  string `json:"qty,omitempty" yaml:"qty,omitempty" toml:"qty,omitempty"`
}

// HasQty reports whether the ingredient carries a quantity.
func (i Ingredient) HasQty() bool { return i.Qty != "" }

// TotalMinutes returns prep plus cook time.
func (r Recipe) TotalMinutes() int { return r.PrepMinutes + r.CookMinutes }

// Clone returns a deep copy. Nil slices stay nil.
func (r Recipe) Clone() Recipe {
	out := r
	if r.Tags != nil {
		out.Tags = append([]string(nil), r.Tags...)
	}
	if r.Ingredients != nil {
		out.Ingredients = append([]Ingredient(nil), r.Ingredients...)
	}
	if r.Steps != nil {
		out.Steps = append([]string(nil), r.Steps...)
	}
	return out
}
