// Package editor implements the recipe editor session: a small state
// machine that stages edits to one recipe and commits them to the
// collection on save.
//
//	Closed --OpenNew/OpenEdit--> Open(mode, draft)
//	Open   --OpenNew/OpenEdit--> Open(new draft)   (previous edits dropped)
//	Open   --Cancel----------->  Closed            (no store change)
//	Open   --Save [title set]--> Closed            (store upsert)
package editor

import (
	"sync"

	"github.com/hammamikhairi/koji/internal/domain"
	"github.com/hammamikhairi/koji/internal/logger"
	"github.com/hammamikhairi/koji/internal/recipe"
)

// Blank draft defaults.
const (
	DefaultServings    = 1
	DefaultPrepMinutes = 5
	DefaultCookMinutes = 10
)

// Mode tells whether the open draft creates a recipe or edits one.
type Mode int

const (
	ModeNew Mode = iota
	ModeEdit
)

// String returns a human-readable mode.
func (m Mode) String() string {
	switch m {
	case ModeNew:
		return "new"
	case ModeEdit:
		return "edit"
	default:
		return "unknown"
	}
}

// Upserter is the part of the collection the editor commits to.
type Upserter interface {
	Upsert(recipe domain.Recipe) (created bool)
}

// Option configures a Session.
type Option func(*Session)

// WithIDFunc overrides how new recipe IDs are generated.
func WithIDFunc(fn func() string) Option {
	return func(s *Session) {
		s.newID = fn
	}
}

// Session is the editor state machine. Safe for concurrent use; the
// display goroutine polls Status while the shell mutates the draft.
type Session struct {
	mu    sync.RWMutex
	store Upserter
	log   *logger.Logger
	newID func() string

	open    bool
	mode    Mode
	initial domain.Recipe // clone of what the draft was opened with
	opened  recipe.Form   // form as first rendered, for dirty tracking
	form    recipe.Form
}

// New creates a closed editor committing to store.
func New(store Upserter, log *logger.Logger, opts ...Option) *Session {
	s := &Session{
		store: store,
		log:   log,
		newID: newRecipeID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BlankRecipe returns the starting point for a new recipe: empty text,
// default numbers and one empty ingredient and step placeholder.
func BlankRecipe(id string) domain.Recipe {
	return domain.Recipe{
		ID:          id,
		Servings:    DefaultServings,
		PrepMinutes: DefaultPrepMinutes,
		CookMinutes: DefaultCookMinutes,
		Tags:        []string{},
		Ingredients: []domain.Ingredient{{}},
		Steps:       []string{""},
	}
}

// OpenNew opens a blank draft with a fresh ID and returns it. Any draft
// already open is discarded.
func (s *Session) OpenNew() domain.Recipe {
	blank := BlankRecipe(s.newID())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset(ModeNew, blank)
	return blank.Clone()
}

// OpenEdit opens a draft holding a copy of r. Any draft already open is
// discarded.
func (s *Session) OpenEdit(r domain.Recipe) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset(ModeEdit, r)
}

func (s *Session) reset(mode Mode, r domain.Recipe) {
	if s.open && s.form != s.opened {
		s.log.Info("discarding unsaved %s draft %s", s.mode, s.initial.ID)
	}
	s.open = true
	s.mode = mode
	s.initial = r.Clone()
	s.form = recipe.FormFromRecipe(r)
	s.opened = s.form
	s.log.Debug("editor opened (%s) for %s", mode, r.ID)
}

// Cancel closes the editor without touching the store. Reports whether a
// draft was open.
func (s *Session) Cancel() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return false
	}
	s.log.Debug("editor cancelled (%s) for %s", s.mode, s.initial.ID)
	s.close()
	return true
}

// Set replaces one raw field of the draft.
func (s *Session) Set(field recipe.Field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return domain.ErrEditorClosed
	}
	return s.form.Set(field, value)
}

// CanSave reports whether Save would commit: a draft is open and its
// title is not blank.
func (s *Session) CanSave() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.open && recipe.CanCommit(s.form)
}

// Save normalises the draft, upserts it and closes the editor. When the
// editor is closed or the title is blank it does nothing and returns false.
func (s *Session) Save() (domain.Recipe, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open || !recipe.CanCommit(s.form) {
		return domain.Recipe{}, false
	}

	next := recipe.Normalize(s.form, s.initial)
	s.store.Upsert(next)
	s.log.Debug("editor saved (%s) %s", s.mode, next.ID)
	s.close()
	return next, true
}

// Preview returns the draft as it would be saved, without committing.
func (s *Session) Preview() (domain.Recipe, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return domain.Recipe{}, false
	}
	return recipe.Normalize(s.form, s.initial), true
}

// Form returns a copy of the raw draft fields.
func (s *Session) Form() (recipe.Form, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.form, s.open
}

// IsOpen reports whether a draft is open.
func (s *Session) IsOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.open
}

// Mode returns the mode of the open draft.
func (s *Session) Mode() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// DraftID returns the ID the open draft will be saved under.
func (s *Session) DraftID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.initial.ID
}

// Dirty reports whether the draft differs from what it was opened with.
func (s *Session) Dirty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.open && s.form != s.opened
}

func (s *Session) close() {
	s.open = false
	s.initial = domain.Recipe{}
	s.form = recipe.Form{}
	s.opened = recipe.Form{}
}
