// Package codec converts ingredient and step lists to and from the flat,
// newline-delimited text used when editing a recipe.
//
// Both codecs are total: any input decodes to some list. Encoding then
// decoding reproduces the original list as long as no entry is empty and
// no ingredient item contains the "|" separator.
package codec

import (
	"strings"

	"github.com/hammamikhairi/koji/internal/domain"
)

// qtySeparator splits "qty | item" ingredient lines.
const qtySeparator = "|"

// EncodeIngredients renders one ingredient per line as "qty | item", or
// just "item" when there is no quantity. Entries whose item and qty are
// both blank are skipped.
func EncodeIngredients(ings []domain.Ingredient) string {
	lines := make([]string, 0, len(ings))
	for _, ing := range ings {
		item := strings.TrimSpace(ing.Item)
		qty := strings.TrimSpace(ing.Qty)
		if item == "" && qty == "" {
			continue
		}
		if qty != "" {
			lines = append(lines, qty+" "+qtySeparator+" "+item)
			continue
		}
		lines = append(lines, item)
	}
	return strings.Join(lines, "\n")
}

// DecodeIngredients parses text produced by EncodeIngredients (or typed by
// hand). Blank lines are dropped. A line containing "|" is split on every
// separator: the first segment is the quantity and the remaining segments,
// re-joined with " | ", form the item.
func DecodeIngredients(text string) []domain.Ingredient {
	lines := splitLines(text)
	out := make([]domain.Ingredient, 0, len(lines))
	for _, line := range lines {
		parts := strings.Split(line, qtySeparator)
		if len(parts) < 2 {
			out = append(out, domain.Ingredient{Item: line})
			continue
		}
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		out = append(out, domain.Ingredient{
			Qty:  parts[0],
			Item: strings.TrimSpace(strings.Join(parts[1:], " "+qtySeparator+" ")),
		})
	}
	return out
}

// EncodeSteps trims each step, drops empty ones and joins the rest with
// newlines.
func EncodeSteps(steps []string) string {
	kept := make([]string, 0, len(steps))
	for _, s := range steps {
		if s = strings.TrimSpace(s); s != "" {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, "\n")
}

// DecodeSteps returns the non-empty, trimmed lines of text in order.
func DecodeSteps(text string) []string {
	return splitLines(text)
}

// splitLines splits on "\n", trims each line (which also removes a
// trailing "\r") and drops blank ones.
func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	out := make([]string, 0, len(raw))
	for _, l := range raw {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}
