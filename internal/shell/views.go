package shell

import (
	"fmt"
	"strings"

	"github.com/hammamikhairi/koji/internal/domain"
	"github.com/hammamikhairi/koji/internal/recipe"
)

// quickMinutes is the total time at or under which a recipe counts as quick
// on the dashboard.
const quickMinutes = 15

func (a *App) renderView(v domain.ViewID) {
	switch v {
	case domain.ViewDashboard:
		a.showDashboard()
	case domain.ViewRecipes:
		a.showList("Recipes", a.store.List())
	default:
		a.out.PrintHeader(v.Label())
		a.out.PrintHint("Nothing here yet.")
	}
}

func (a *App) showDashboard() {
	recipes := a.store.List()
	quick := 0
	tags := map[string]bool{}
	for _, r := range recipes {
		if r.TotalMinutes() <= quickMinutes {
			quick++
		}
		for _, t := range r.Tags {
			tags[strings.ToLower(t)] = true
		}
	}

	a.out.PrintHeader("Dashboard")
	a.out.PrintLine(fmt.Sprintf("%d recipes, %d quick (%d min or less), %d distinct tags", len(recipes), quick, quickMinutes, len(tags)))
	if st := a.Status(); st.EditorOpen {
		title := st.DraftTitle
		if title == "" {
			title = "untitled"
		}
		a.out.PrintLine(fmt.Sprintf("Open draft (%s): %s", st.EditorMode, title))
	}

	a.mu.RLock()
	msg := a.lastMessage
	a.mu.RUnlock()
	if msg != "" {
		a.out.PrintHint("Host: " + msg)
	}
	a.out.PrintHint("Quick actions: 'new', 'list', 'search <text>'.")
}

func (a *App) showList(title string, recipes []domain.Recipe) {
	a.listing = a.listing[:0]
	a.out.PrintHeader(title)
	if len(recipes) == 0 {
		a.out.PrintHint("No recipes match.")
		return
	}
	for i, r := range recipes {
		a.listing = append(a.listing, r.ID)
		a.out.PrintLine(fmt.Sprintf("[%d] %s", i+1, r.Title))
		meta := fmt.Sprintf("%d min • %d servings", r.TotalMinutes(), r.Servings)
		if len(r.Tags) > 0 {
			meta += " • " + strings.Join(r.Tags, ", ")
		}
		a.out.PrintHint(meta)
	}
}

func (a *App) showRecipe(r domain.Recipe) {
	a.out.PrintHeader(fmt.Sprintf("=== %s ===", r.Title))
	if r.Description != "" {
		a.out.PrintLine(r.Description)
	}
	a.out.PrintHint(fmt.Sprintf("Servings: %d • Prep: %d min • Cook: %d min", r.Servings, r.PrepMinutes, r.CookMinutes))
	if len(r.Tags) > 0 {
		a.out.PrintHint("Tags: " + strings.Join(r.Tags, ", "))
	}

	a.out.Println("")
	a.out.PrintHeader("Ingredients:")
	for _, ing := range r.Ingredients {
		item := strings.TrimSpace(ing.Item)
		qty := strings.TrimSpace(ing.Qty)
		if item == "" && qty == "" {
			continue
		}
		line := "  - " + item
		if qty != "" {
			line += " — " + qty
		}
		a.out.PrintLine(line)
	}

	a.out.PrintHeader("Steps:")
	n := 0
	for _, s := range r.Steps {
		if strings.TrimSpace(s) == "" {
			continue
		}
		n++
		a.out.PrintLine(fmt.Sprintf("  %d. %s", n, s))
	}
}

func (a *App) showDraft() {
	form, open := a.editor.Form()
	if !open {
		a.out.PrintHint("No open draft.")
		return
	}

	a.out.PrintHeader(fmt.Sprintf("Draft (%s) %s", a.editor.Mode(), a.editor.DraftID()))
	for _, f := range recipe.Fields() {
		value := form.Get(f)
		if !f.Multiline() || !strings.Contains(value, "\n") {
			a.out.PrintLine(fmt.Sprintf("%-12s %s", f.String()+":", value))
			continue
		}
		a.out.PrintLine(f.String() + ":")
		for _, l := range strings.Split(value, "\n") {
			a.out.PrintLine("    " + l)
		}
	}

	if a.editor.CanSave() {
		a.out.PrintHint("Ready to save.")
	} else {
		a.out.PrintHint("A title is required before saving.")
	}
}

var helpLines = [][2]string{
	{"list", "show all recipes"},
	{"search <text>, /<text>", "filter by title, description or tag"},
	{"show <n|id>", "recipe details"},
	{"new", "start a new recipe"},
	{"edit <n|id>", "edit a recipe"},
	{"set <field> <value>", "change a draft field"},
	{"set ingredients|steps", "multi-line entry, '.' to finish"},
	{"draft", "show the open draft"},
	{"save / cancel", "commit or discard the draft"},
	{"delete <n|id>", "remove a recipe (asks first)"},
	{"go <view>", "dashboard, recipes, ingredients, mealplan"},
	{"ping", "check the host bridge"},
	{"quit", "exit"},
}

func (a *App) showHelp() {
	a.out.PrintHeader("Commands")
	for _, h := range helpLines {
		a.out.PrintLine(fmt.Sprintf("  %-24s %s", h[0], h[1]))
	}
	a.out.PrintHint("Fields: " + fieldNames() + ".")
}
