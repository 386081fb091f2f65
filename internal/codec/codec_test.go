package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/koji/internal/domain"
)

func TestEncodeIngredients(t *testing.T) {
	tests := []struct {
		name string
		in   []domain.Ingredient
		want string
	}{
		{"qty and plain", []domain.Ingredient{{Item: "Tofu", Qty: "150g"}, {Item: "Salt"}}, "150g | Tofu\nSalt"},
		{"trims fields", []domain.Ingredient{{Item: "  Miso ", Qty: " 2 tbsp "}}, "2 tbsp | Miso"},
		{"skips blank entries", []domain.Ingredient{{Item: ""}, {Item: " ", Qty: " "}, {Item: "Water"}}, "Water"},
		{"qty without item", []domain.Ingredient{{Qty: "1 cup"}}, "1 cup | "},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodeIngredients(tt.in))
		})
	}
}

func TestDecodeIngredients(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []domain.Ingredient
	}{
		{"qty and plain", "150g | Tofu\nSalt", []domain.Ingredient{{Item: "Tofu", Qty: "150g"}, {Item: "Salt"}}},
		{"blank lines and padding", "\n  500 ml|Water  \r\n\n\tRice\n", []domain.Ingredient{{Item: "Water", Qty: "500 ml"}, {Item: "Rice"}}},
		{"extra separators stay in item", "1 | salt | pepper", []domain.Ingredient{{Item: "salt | pepper", Qty: "1"}}},
		{"empty qty segment", "| Chives", []domain.Ingredient{{Item: "Chives"}}},
		{"only whitespace", "  \n \n", []domain.Ingredient{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeIngredients(tt.in))
		})
	}
}

func TestIngredientsRoundTrip(t *testing.T) {
	lists := [][]domain.Ingredient{
		{{Item: "Tofu", Qty: "150g"}, {Item: "Salt"}},
		{{Item: "Water", Qty: "500 ml"}, {Item: "Dashi", Qty: "1 tsp / to taste"}, {Item: "Chives"}},
		{{Item: "Oats"}},
	}

	for _, list := range lists {
		got := DecodeIngredients(EncodeIngredients(list))
		require.Len(t, got, len(list))
		for i := range list {
			assert.Equal(t, list[i].Item, got[i].Item)
			assert.Equal(t, list[i].HasQty(), got[i].HasQty())
			assert.Equal(t, list[i].Qty, got[i].Qty)
		}
	}
}

func TestSteps(t *testing.T) {
	assert.Equal(t, "Boil water.\nAdd miso.", EncodeSteps([]string{" Boil water. ", "", "  ", "Add miso."}))
	assert.Equal(t, []string{"Boil water.", "Add miso."}, DecodeSteps("Boil water.\n\n   \nAdd miso.  \n"))
	assert.Empty(t, DecodeSteps(""))

	steps := []string{"Cook the rice.", "Sear the chicken 5-6 min per side.", "Assemble bowls."}
	assert.Equal(t, steps, DecodeSteps(EncodeSteps(steps)))
}
