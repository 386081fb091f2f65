package domain

import "context"

// Catalog is the canonical, ordered recipe collection. Implementations
// never hold two recipes with the same ID.
type Catalog interface {
	List() []Recipe
	Get(id string) (Recipe, error)
	Upsert(recipe Recipe) (created bool)
	Remove(id string) bool
	Search(query string) []Recipe
	Len() int
}

// Bridge is the channel to the host process. It is passed to whoever needs
// it rather than reached through a global, so tests can swap in a fake.
type Bridge interface {
	Ping(ctx context.Context) (string, error)
	// GetAll is declared for a future persistent backend. Implementations
	// may return ErrNotImplemented.
	GetAll(ctx context.Context) ([]any, error)
	OnMessage(fn func(message string))
}

// Confirmer asks the user a yes/no question and blocks until answered or
// ctx is done.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// CommandParser converts a raw input line into an intent.
type CommandParser interface {
	Parse(ctx context.Context, input string) (*Intent, error)
}

// StatusSource reports the shell state rendered by the status bar.
type StatusSource interface {
	Status() Status
}

// Status is a point-in-time view of the shell for display purposes.
type Status struct {
	View        ViewID
	RecipeCount int
	EditorOpen  bool
	EditorMode  string
	DraftTitle  string
	Dirty       bool
}
