package recipe

import (
	"strconv"
	"strings"

	"github.com/hammamikhairi/koji/internal/codec"
	"github.com/hammamikhairi/koji/internal/domain"
)

// Normalize turns a raw form into a committed recipe. The ID comes from
// prior. Numbers that fail to parse fall back to prior's value, then are
// clamped (servings >= 1, minutes >= 0). Normalize never fails.
func Normalize(f Form, prior domain.Recipe) domain.Recipe {
	servingsFallback := prior.Servings
	if servingsFallback == 0 {
		servingsFallback = 1
	}

	return domain.Recipe{
		ID:          prior.ID,
		Title:       strings.TrimSpace(f.Title),
		Description: strings.TrimSpace(f.Description),
		Servings:    max(1, intOr(f.Servings, servingsFallback)),
		PrepMinutes: max(0, intOr(f.PrepMinutes, prior.PrepMinutes)),
		CookMinutes: max(0, intOr(f.CookMinutes, prior.CookMinutes)),
		Tags:        SplitTags(f.Tags),
		Ingredients: codec.DecodeIngredients(f.Ingredients),
		Steps:       codec.DecodeSteps(f.Steps),
	}
}

// CanCommit reports whether a form may be saved: the title must contain
// something other than whitespace.
func CanCommit(f Form) bool {
	return strings.TrimSpace(f.Title) != ""
}

// SplitTags splits a comma-separated list into trimmed, non-empty tags.
// Order and duplicates are kept.
func SplitTags(s string) []string {
	out := []string{}
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// JoinTags is the inverse of SplitTags for display in the editor.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// intOr parses the leading integer of s, or returns fallback.
func intOr(s string, fallback int) int {
	if n, ok := parseLeadingInt(s); ok {
		return n
	}
	return fallback
}

// parseLeadingInt reads an optionally signed run of decimal digits at the
// start of s (after whitespace) and ignores whatever follows, so "12 min"
// is 12 and "3.5" is 3. It fails when there are no digits or the value
// overflows int.
func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
