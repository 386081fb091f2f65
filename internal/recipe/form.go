package recipe

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hammamikhairi/koji/internal/codec"
	"github.com/hammamikhairi/koji/internal/domain"
)

// Field names one editable input of a Form.
type Field int

const (
	FieldTitle Field = iota
	FieldDescription
	FieldServings
	FieldPrepMinutes
	FieldCookMinutes
	FieldTags
	FieldIngredients
	FieldSteps
)

// Fields returns every field in form order.
func Fields() []Field {
	return []Field{
		FieldTitle, FieldDescription, FieldServings, FieldPrepMinutes,
		FieldCookMinutes, FieldTags, FieldIngredients, FieldSteps,
	}
}

// String returns the canonical field name.
func (f Field) String() string {
	switch f {
	case FieldTitle:
		return "title"
	case FieldDescription:
		return "description"
	case FieldServings:
		return "servings"
	case FieldPrepMinutes:
		return "prep"
	case FieldCookMinutes:
		return "cook"
	case FieldTags:
		return "tags"
	case FieldIngredients:
		return "ingredients"
	case FieldSteps:
		return "steps"
	default:
		return "unknown"
	}
}

// Multiline reports whether the field holds newline-delimited text.
func (f Field) Multiline() bool {
	return f == FieldIngredients || f == FieldSteps || f == FieldDescription
}

var fieldAliases = map[string]Field{
	"title":       FieldTitle,
	"name":        FieldTitle,
	"description": FieldDescription,
	"desc":        FieldDescription,
	"servings":    FieldServings,
	"serves":      FieldServings,
	"prep":        FieldPrepMinutes,
	"prepminutes": FieldPrepMinutes,
	"cook":        FieldCookMinutes,
	"cookminutes": FieldCookMinutes,
	"tags":        FieldTags,
	"ingredients": FieldIngredients,
	"steps":       FieldSteps,
}

// ParseField resolves a field name, ignoring case and "_"/"-".
func ParseField(name string) (Field, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("_", "", "-", "").Replace(key)
	if f, ok := fieldAliases[key]; ok {
		return f, nil
	}
	return FieldTitle, fmt.Errorf("%q: %w", name, domain.ErrUnknownField)
}

// Form is the raw, unvalidated text of every editable recipe input.
type Form struct {
	Title       string
	Description string
	Servings    string
	PrepMinutes string
	CookMinutes string
	Tags        string
	Ingredients string
	Steps       string
}

// FormFromRecipe fills a form with the recipe's current values.
func FormFromRecipe(r domain.Recipe) Form {
	return Form{
		Title:       r.Title,
		Description: r.Description,
		Servings:    strconv.Itoa(r.Servings),
		PrepMinutes: strconv.Itoa(r.PrepMinutes),
		CookMinutes: strconv.Itoa(r.CookMinutes),
		Tags:        JoinTags(r.Tags),
		Ingredients: codec.EncodeIngredients(r.Ingredients),
		Steps:       codec.EncodeSteps(r.Steps),
	}
}

// Get returns the raw value of a field.
func (f Form) Get(field Field) string {
	if p := f.ptr(field); p != nil {
		return *p
	}
	return ""
}

// Set replaces the raw value of a field.
func (f *Form) Set(field Field, value string) error {
	p := f.ptr(field)
	if p == nil {
		return fmt.Errorf("field %d: %w", int(field), domain.ErrUnknownField)
	}
	*p = value
	return nil
}

func (f *Form) ptr(field Field) *string {
	switch field {
	case FieldTitle:
		return &f.Title
	case FieldDescription:
		return &f.Description
	case FieldServings:
		return &f.Servings
	case FieldPrepMinutes:
		return &f.PrepMinutes
	case FieldCookMinutes:
		return &f.CookMinutes
	case FieldTags:
		return &f.Tags
	case FieldIngredients:
		return &f.Ingredients
	case FieldSteps:
		return &f.Steps
	}
	return nil
}
