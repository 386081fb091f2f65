package shell

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/koji/internal/command"
	"github.com/hammamikhairi/koji/internal/domain"
	"github.com/hammamikhairi/koji/internal/editor"
	"github.com/hammamikhairi/koji/internal/logger"
	"github.com/hammamikhairi/koji/internal/recipe"
)

type harness struct {
	app     *App
	store   *recipe.MemoryStore
	editor  *editor.Session
	out     *recordingOutput
	confirm *fakeConfirmer
	bridge  *fakeBridge
	ctx     context.Context
}

func setupApp(t *testing.T, opts ...Option) *harness {
	t.Helper()
	log := logger.New(logger.LevelOff, nil)
	store := recipe.NewMemoryStore(log)
	n := 0
	ed := editor.New(store, log, editor.WithIDFunc(func() string {
		n++
		return fmt.Sprintf("r-test-%d", n)
	}))
	h := &harness{
		store:   store,
		editor:  ed,
		out:     &recordingOutput{},
		confirm: &fakeConfirmer{},
		bridge:  &fakeBridge{},
		ctx:     context.Background(),
	}
	h.app = New(Deps{
		Store:   store,
		Editor:  ed,
		Bridge:  h.bridge,
		Confirm: h.confirm,
		Parser:  command.NewKeywordParser(log),
		Out:     h.out,
		Log:     log,
	}, opts...)
	return h
}

func (h *harness) run(t *testing.T, lines ...string) {
	t.Helper()
	for _, l := range lines {
		require.True(t, h.app.Handle(h.ctx, l), "line %q quit unexpectedly", l)
	}
}

func storeIDs(s *recipe.MemoryStore) []string {
	var out []string
	for _, r := range s.List() {
		out = append(out, r.ID)
	}
	return out
}

func TestGreetListsRecipes(t *testing.T) {
	h := setupApp(t)

	h.app.Greet()

	text := h.out.text()
	assert.Contains(t, text, "header: Recipes")
	assert.Contains(t, text, "line: [1] Miso Soup (quick)")
	assert.Contains(t, text, "hint: 10 min • 2 servings • japanese, quick, broth")
	assert.Equal(t, domain.ViewRecipes, h.app.View())
}

func TestSearchAndShowByNumber(t *testing.T) {
	h := setupApp(t)

	h.run(t, "search MEAL")
	assert.Contains(t, h.out.text(), `header: Results for "MEAL" (1)`)
	assert.Contains(t, h.out.text(), "line: [1] Chicken Rice Bowl (meal prep)")

	h.out.reset()
	h.run(t, "show 1")
	text := h.out.text()
	assert.Contains(t, text, "header: === Chicken Rice Bowl (meal prep) ===")
	assert.Contains(t, text, "line:   - Chicken breast — 600 g")
	assert.Contains(t, text, "line:   1. Cook the rice.")
}

func TestShowUnknownReference(t *testing.T) {
	h := setupApp(t)

	h.run(t, "list", "show 9", "show nope")

	text := h.out.text()
	assert.Contains(t, text, "urgent: no recipe number 9 in the last list")
	assert.Contains(t, text, `urgent: no recipe "nope"`)
}

func TestCreateRecipeFlow(t *testing.T) {
	h := setupApp(t)

	h.run(t,
		"new",
		"set title   Pasta night",
		"set servings two",
		"set tags italian, quick",
		"set ingredients",
		"200 g | Spaghetti",
		"",
		"Salt",
		".",
		"set steps",
		"Boil water.",
		"Cook pasta.",
		".",
		"save",
	)

	assert.False(t, h.editor.IsOpen())
	assert.Equal(t, "r-test-1", storeIDs(h.store)[0])

	got, err := h.store.Get("r-test-1")
	require.NoError(t, err)
	assert.Equal(t, "Pasta night", got.Title)
	assert.Equal(t, 1, got.Servings, "unparseable servings falls back to the blank default")
	assert.Equal(t, []string{"italian", "quick"}, got.Tags)
	assert.Equal(t, []domain.Ingredient{{Item: "Spaghetti", Qty: "200 g"}, {Item: "Salt"}}, got.Ingredients)
	assert.Equal(t, []string{"Boil water.", "Cook pasta."}, got.Steps)
	assert.Contains(t, h.out.text(), `chat: Added "Pasta night".`)
}

func TestSaveWithoutTitleIsNoop(t *testing.T) {
	h := setupApp(t)
	before := storeIDs(h.store)

	h.run(t, "new", "set title    ", "save")

	assert.Equal(t, before, storeIDs(h.store))
	assert.True(t, h.editor.IsOpen())
	assert.Contains(t, h.out.text(), "hint: A title is required before saving.")
}

func TestEditInPlace(t *testing.T) {
	h := setupApp(t)

	h.run(t, "list", "edit 2", "set title Chicken Bowl v2", "set cook 25", "save")

	assert.Equal(t, []string{"koji-miso-soup", "chicken-rice-bowl", "oats-yogurt-fruit"}, storeIDs(h.store))
	got, err := h.store.Get("chicken-rice-bowl")
	require.NoError(t, err)
	assert.Equal(t, "Chicken Bowl v2", got.Title)
	assert.Equal(t, 25, got.CookMinutes)
	assert.Equal(t, 10, got.PrepMinutes)
}

func TestCancelLeavesStore(t *testing.T) {
	h := setupApp(t)

	h.run(t, "edit koji-miso-soup", "set title Changed", "cancel")

	got, err := h.store.Get("koji-miso-soup")
	require.NoError(t, err)
	assert.Equal(t, "Miso Soup (quick)", got.Title)
	assert.Contains(t, h.out.text(), "hint: Draft discarded.")

	h.out.reset()
	h.run(t, "cancel", "save", "set title x")
	text := h.out.text()
	assert.Contains(t, text, "hint: Nothing to cancel.")
	assert.Contains(t, text, "hint: Nothing to save.")
	assert.Contains(t, text, "hint: No open draft.")
}

func TestSetUnknownField(t *testing.T) {
	h := setupApp(t)

	h.run(t, "new", "set colour red")

	assert.Contains(t, h.out.text(), `urgent: Unknown field "colour"`)
}

func TestDeleteAsksFirst(t *testing.T) {
	h := setupApp(t)

	h.confirm.answer = false
	h.run(t, "list", "delete 1")
	require.Len(t, h.confirm.prompts, 1)
	assert.Contains(t, h.confirm.prompts[0], `Delete "Miso Soup (quick)"?`)
	assert.Equal(t, 3, h.store.Len())
	assert.Contains(t, h.out.text(), "hint: Kept.")

	h.confirm.answer = true
	h.run(t, "delete koji-miso-soup")
	assert.Equal(t, []string{"chicken-rice-bowl", "oats-yogurt-fruit"}, storeIDs(h.store))
}

func TestDeleteConfirmError(t *testing.T) {
	h := setupApp(t)
	h.confirm.err = errors.New("input closed")

	h.run(t, "delete oats-yogurt-fruit")

	assert.Equal(t, 3, h.store.Len())
}

func TestNavigate(t *testing.T) {
	h := setupApp(t)

	h.run(t, "go dashboard")
	assert.Equal(t, domain.ViewDashboard, h.app.View())
	assert.Contains(t, h.out.text(), "line: 3 recipes, 2 quick (15 min or less), 8 distinct tags")

	h.run(t, "meal plan")
	assert.Equal(t, domain.ViewMealPlan, h.app.View())
	assert.Contains(t, h.out.text(), "hint: Nothing here yet.")

	h.run(t, "go pantry")
	assert.Equal(t, domain.ViewMealPlan, h.app.View())
	assert.Contains(t, h.out.text(), `urgent: No view called "pantry".`)
}

func TestHostMessagesAndPing(t *testing.T) {
	h := setupApp(t, WithStartView(domain.ViewDashboard))

	h.bridge.send("ready at 10:00")
	h.run(t, "ping", "home")

	text := h.out.text()
	assert.Contains(t, text, "hint: [host] ready at 10:00")
	assert.Contains(t, text, "chat: pong from fake")
	assert.Contains(t, text, "hint: Host: ready at 10:00")

	h.bridge.pingErr = errors.New("bridge down")
	h.run(t, "ping")
	assert.Contains(t, h.out.text(), "urgent: Ping failed: bridge down")
}

func TestStatus(t *testing.T) {
	h := setupApp(t)

	st := h.app.Status()
	assert.False(t, st.EditorOpen)
	assert.Equal(t, 3, st.RecipeCount)

	h.run(t, "new", "set title Soup")
	st = h.app.Status()
	assert.True(t, st.EditorOpen)
	assert.Equal(t, "new", st.EditorMode)
	assert.Equal(t, "Soup", st.DraftTitle)
	assert.True(t, st.Dirty)
}

func TestQuitAndUnknown(t *testing.T) {
	h := setupApp(t)

	assert.True(t, h.app.Handle(h.ctx, "make me a sandwich"))
	assert.Contains(t, h.out.text(), `hint: Didn't catch "make me a sandwich".`)
	assert.True(t, h.app.Handle(h.ctx, "   "))
	assert.False(t, h.app.Handle(h.ctx, "quit"))
}

func TestRunStopsOnClosedInput(t *testing.T) {
	h := setupApp(t)
	in := make(chan string, 3)
	in <- "new"
	in <- "set title Toast"
	in <- "save"
	close(in)

	h.app.Run(h.ctx, in)

	got, err := h.store.Get("r-test-1")
	require.NoError(t, err)
	assert.Equal(t, "Toast", got.Title)
}
