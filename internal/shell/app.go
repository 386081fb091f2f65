// Package shell is the interactive recipe manager: it reads command lines,
// dispatches them to the recipe collection, the editor session and the
// host bridge, and tracks which navigation view is active.
package shell

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/hammamikhairi/koji/internal/domain"
	"github.com/hammamikhairi/koji/internal/editor"
	"github.com/hammamikhairi/koji/internal/logger"
	"github.com/hammamikhairi/koji/internal/recipe"
)

// Compile-time interface check.
var _ domain.StatusSource = (*App)(nil)

// Output is where the shell writes. Implementations must be safe for
// concurrent use; host messages may arrive from another goroutine.
type Output interface {
	Println(a ...any)
	PrintChat(text string)
	PrintHeader(text string)
	PrintLine(text string)
	PrintHint(text string)
	PrintUrgent(text string)
}

// Deps are the collaborators an App needs. All fields are required.
type Deps struct {
	Store   domain.Catalog
	Editor  *editor.Session
	Bridge  domain.Bridge
	Confirm domain.Confirmer
	Parser  domain.CommandParser
	Out     Output
	Log     *logger.Logger
}

// Option configures an App.
type Option func(*App)

// WithStartView sets the view shown by Greet.
func WithStartView(v domain.ViewID) Option {
	return func(a *App) {
		a.view = v
	}
}

// App holds the shell state. Handle must only be called from one
// goroutine; Status may be called from any.
type App struct {
	store   domain.Catalog
	editor  *editor.Session
	bridge  domain.Bridge
	confirm domain.Confirmer
	parser  domain.CommandParser
	out     Output
	log     *logger.Logger

	mu          sync.RWMutex
	view        domain.ViewID
	lastMessage string

	listing []string // recipe IDs of the last printed list, for numeric refs
	capture *capture // non-nil while collecting a multi-line field
}

// capture collects lines for a multi-line field until a lone ".".
type capture struct {
	field recipe.Field
	lines []string
}

// captureEnd terminates multi-line input.
const captureEnd = "."

// New creates a shell app and subscribes it to host messages.
func New(d Deps, opts ...Option) *App {
	a := &App{
		store:   d.Store,
		editor:  d.Editor,
		bridge:  d.Bridge,
		confirm: d.Confirm,
		parser:  d.Parser,
		out:     d.Out,
		log:     d.Log,
		view:    domain.ViewRecipes,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.bridge.OnMessage(a.onHostMessage)
	return a
}

// Run greets the user and handles lines from in until quit, ctx is
// cancelled or in is closed.
func (a *App) Run(ctx context.Context, in <-chan string) {
	a.Greet()
	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-in:
			if !ok {
				return
			}
			if !a.Handle(ctx, line) {
				return
			}
		}
	}
}

// Greet prints the welcome line and renders the start view.
func (a *App) Greet() {
	a.out.PrintChat("Welcome to Koji. Type 'help' for commands.")
	a.out.Println("")
	a.renderView(a.View())
}

// View returns the active navigation view.
func (a *App) View() domain.ViewID {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.view
}

// Status implements domain.StatusSource.
func (a *App) Status() domain.Status {
	a.mu.RLock()
	view := a.view
	a.mu.RUnlock()

	st := domain.Status{
		View:        view,
		RecipeCount: a.store.Len(),
	}
	if form, open := a.editor.Form(); open {
		st.EditorOpen = true
		st.EditorMode = a.editor.Mode().String()
		st.DraftTitle = strings.TrimSpace(form.Title)
		st.Dirty = a.editor.Dirty()
	}
	return st
}

// Capturing reports whether the shell is collecting multi-line input.
func (a *App) Capturing() bool {
	return a.capture != nil
}

// Handle processes one input line. It returns false when the user quits.
func (a *App) Handle(ctx context.Context, line string) bool {
	if a.capture != nil {
		a.captureLine(line)
		return true
	}

	if strings.TrimSpace(line) == "" {
		return true
	}

	intent, err := a.parser.Parse(ctx, line)
	if err != nil {
		a.log.Error("parsing input: %v", err)
		return true
	}
	a.log.Debug("intent: %s (payload=%q)", intent.Type, intent.Payload)

	switch intent.Type {
	case domain.IntentQuit:
		if a.editor.Dirty() {
			a.out.PrintHint("Unsaved draft discarded.")
		}
		a.out.PrintChat("Bye.")
		return false
	case domain.IntentHelp:
		a.showHelp()
	case domain.IntentNavigate:
		a.navigate(intent.Payload)
	case domain.IntentList:
		a.setView(domain.ViewRecipes)
		a.showList("Recipes", a.store.List())
	case domain.IntentSearch:
		a.search(intent.Payload)
	case domain.IntentShow:
		a.show(intent.Payload)
	case domain.IntentNew:
		a.openNew()
	case domain.IntentEdit:
		a.openEdit(intent.Payload)
	case domain.IntentSet:
		a.set(intent.Payload)
	case domain.IntentDraft:
		a.showDraft()
	case domain.IntentSave:
		a.save()
	case domain.IntentCancel:
		a.cancel()
	case domain.IntentDelete:
		a.remove(ctx, intent.Payload)
	case domain.IntentPing:
		a.ping(ctx)
	default:
		a.out.PrintHint(fmt.Sprintf("Didn't catch %q. Type 'help' for commands.", intent.Payload))
	}
	return true
}

// ── Navigation ───────────────────────────────────────────────────

func (a *App) setView(v domain.ViewID) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.view = v
}

func (a *App) navigate(name string) {
	v, err := domain.ParseView(name)
	if err != nil {
		a.out.PrintUrgent(fmt.Sprintf("No view called %q.", name))
		return
	}
	a.setView(v)
	a.renderView(v)
}

func (a *App) onHostMessage(message string) {
	a.mu.Lock()
	a.lastMessage = message
	a.mu.Unlock()
	a.out.PrintHint("[host] " + message)
}

// ── Recipes ──────────────────────────────────────────────────────

func (a *App) search(query string) {
	a.setView(domain.ViewRecipes)
	results := a.store.Search(query)
	if strings.TrimSpace(query) == "" {
		a.showList("Recipes", results)
		return
	}
	a.showList(fmt.Sprintf("Results for %q (%d)", strings.TrimSpace(query), len(results)), results)
}

func (a *App) show(ref string) {
	r, err := a.resolve(ref)
	if err != nil {
		a.out.PrintUrgent(err.Error())
		return
	}
	a.showRecipe(r)
}

// resolve maps a reference to a recipe: a 1-based number into the last
// printed list, or a recipe ID.
func (a *App) resolve(ref string) (domain.Recipe, error) {
	ref = strings.TrimSpace(ref)
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(a.listing) {
			return domain.Recipe{}, fmt.Errorf("no recipe number %d in the last list", n)
		}
		ref = a.listing[n-1]
	}
	r, err := a.store.Get(ref)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Recipe{}, fmt.Errorf("no recipe %q", ref)
	}
	return r, err
}

func (a *App) remove(ctx context.Context, ref string) {
	r, err := a.resolve(ref)
	if err != nil {
		a.out.PrintUrgent(err.Error())
		return
	}

	ok, err := a.confirm.Confirm(ctx, fmt.Sprintf("Delete %q? This cannot be undone.", r.Title))
	if err != nil {
		a.log.Warn("delete confirmation for %s: %v", r.ID, err)
		return
	}
	if !ok {
		a.out.PrintHint("Kept.")
		return
	}

	if a.store.Remove(r.ID) {
		a.out.PrintChat(fmt.Sprintf("Deleted %q.", r.Title))
	}
	if a.View() == domain.ViewRecipes {
		a.showList("Recipes", a.store.List())
	}
}

func (a *App) ping(ctx context.Context) {
	reply, err := a.bridge.Ping(ctx)
	if err != nil {
		a.out.PrintUrgent(fmt.Sprintf("Ping failed: %v", err))
		return
	}
	a.out.PrintChat(reply)
}

// ── Editor ───────────────────────────────────────────────────────

func (a *App) openNew() {
	blank := a.editor.OpenNew()
	a.out.PrintChat("New recipe. Fill it in with 'set <field> <value>', then 'save'.")
	a.log.Debug("new draft %s", blank.ID)
	a.showDraft()
}

func (a *App) openEdit(ref string) {
	r, err := a.resolve(ref)
	if err != nil {
		a.out.PrintUrgent(err.Error())
		return
	}
	a.editor.OpenEdit(r)
	a.out.PrintChat(fmt.Sprintf("Editing %q.", r.Title))
	a.showDraft()
}

func (a *App) set(payload string) {
	if !a.editor.IsOpen() {
		a.out.PrintHint("No open draft. Type 'new' or 'edit <n>' first.")
		return
	}

	name, value, _ := strings.Cut(strings.TrimSpace(payload), " ")
	field, err := recipe.ParseField(name)
	if err != nil {
		a.out.PrintUrgent(fmt.Sprintf("Unknown field %q. Fields: %s.", name, fieldNames()))
		return
	}
	value = strings.TrimSpace(value)

	if value == "" && field.Multiline() {
		a.capture = &capture{field: field}
		switch field {
		case recipe.FieldIngredients:
			a.out.PrintHint("One ingredient per line as 'qty | item' or just 'item'. A lone '.' finishes.")
		default:
			a.out.PrintHint(fmt.Sprintf("Enter %s one line at a time. A lone '.' finishes.", field))
		}
		return
	}

	if err := a.editor.Set(field, value); err != nil {
		a.out.PrintUrgent(err.Error())
		return
	}
	a.out.PrintHint(fmt.Sprintf("%s set.", field))
}

func (a *App) captureLine(line string) {
	if strings.TrimSpace(line) != captureEnd {
		a.capture.lines = append(a.capture.lines, line)
		return
	}

	c := a.capture
	a.capture = nil
	if err := a.editor.Set(c.field, strings.Join(c.lines, "\n")); err != nil {
		a.out.PrintUrgent(err.Error())
		return
	}
	a.out.PrintHint(fmt.Sprintf("%s set (%d lines).", c.field, len(c.lines)))
}

func (a *App) save() {
	if !a.editor.IsOpen() {
		a.out.PrintHint("Nothing to save.")
		return
	}
	if !a.editor.CanSave() {
		a.out.PrintHint("A title is required before saving.")
		return
	}

	mode := a.editor.Mode()
	saved, ok := a.editor.Save()
	if !ok {
		return
	}
	if mode == editor.ModeNew {
		a.out.PrintChat(fmt.Sprintf("Added %q.", saved.Title))
	} else {
		a.out.PrintChat(fmt.Sprintf("Saved %q.", saved.Title))
	}
	if a.View() == domain.ViewRecipes {
		a.showList("Recipes", a.store.List())
	}
}

func (a *App) cancel() {
	if a.editor.Cancel() {
		a.out.PrintHint("Draft discarded.")
		return
	}
	a.out.PrintHint("Nothing to cancel.")
}

func fieldNames() string {
	names := make([]string, 0, len(recipe.Fields()))
	for _, f := range recipe.Fields() {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}
