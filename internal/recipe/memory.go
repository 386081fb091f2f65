// Package recipe holds the recipe record rules (form normalisation) and the
// in-memory recipe collection.
package recipe

import (
	"fmt"
	"strings"
	"sync"

	"github.com/hammamikhairi/koji/internal/domain"
	"github.com/hammamikhairi/koji/internal/logger"
)

// Compile-time interface check.
var _ domain.Catalog = (*MemoryStore)(nil)

// Option configures a MemoryStore.
type Option func(*MemoryStore)

// WithRecipes replaces the built-in seed with the given recipes, kept in
// the given order. Later duplicates of an ID are dropped.
func WithRecipes(recipes ...domain.Recipe) Option {
	return func(s *MemoryStore) {
		s.seed = recipes
	}
}

// MemoryStore is the ordered recipe collection. Values are cloned on the
// way in and out, so callers never share slices with the store. Safe for
// concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	recipes []domain.Recipe
	seed    []domain.Recipe
	log     *logger.Logger
}

// NewMemoryStore creates a store preloaded with the built-in recipes,
// unless WithRecipes says otherwise.
func NewMemoryStore(log *logger.Logger, opts ...Option) *MemoryStore {
	s := &MemoryStore{
		log:  log,
		seed: SeedRecipes(),
	}
	for _, opt := range opts {
		opt(s)
	}

	seen := make(map[string]bool, len(s.seed))
	for _, r := range s.seed {
		if seen[r.ID] {
			s.log.Warn("dropping duplicate seed recipe %s", r.ID)
			continue
		}
		seen[r.ID] = true
		s.recipes = append(s.recipes, r.Clone())
	}
	s.seed = nil
	s.log.Debug("seeded %d recipes", len(s.recipes))
	return s
}

// List returns every recipe in store order.
func (s *MemoryStore) List() []domain.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.recipes)
}

// Len returns the number of recipes.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.recipes)
}

// Get returns a recipe by ID.
func (s *MemoryStore) Get(id string) (domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.recipes[i].Clone(), nil
	}
	s.log.Debug("recipe not found: %s", id)
	return domain.Recipe{}, fmt.Errorf("recipe %q: %w", id, domain.ErrNotFound)
}

// Upsert replaces the recipe with the same ID in place, or puts a new
// recipe at the front. Reports whether the recipe was new.
func (s *MemoryStore) Upsert(recipe domain.Recipe) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(recipe.ID); i >= 0 {
		s.recipes[i] = recipe.Clone()
		s.log.Info("recipe updated: %s (%q)", recipe.ID, recipe.Title)
		return false
	}

	s.recipes = append([]domain.Recipe{recipe.Clone()}, s.recipes...)
	s.log.Info("recipe created: %s (%q)", recipe.ID, recipe.Title)
	return true
}

// Remove deletes the recipe with the given ID. Removing an unknown ID is a
// no-op and returns false.
func (s *MemoryStore) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		s.log.Debug("remove: no recipe %s", id)
		return false
	}
	s.recipes = append(s.recipes[:i], s.recipes[i+1:]...)
	s.log.Info("recipe removed: %s", id)
	return true
}

// Search returns recipes whose title, description or tags contain the
// query, ignoring case. A blank query returns everything. Results keep
// store order.
func (s *MemoryStore) Search(query string) []domain.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return cloneAll(s.recipes)
	}
	s.log.Debug("searching recipes for: %s", q)

	out := []domain.Recipe{}
	for _, r := range s.recipes {
		if strings.Contains(searchText(r), q) {
			out = append(out, r.Clone())
		}
	}
	return out
}

// searchText is the lower-cased haystack a query is matched against.
func searchText(r domain.Recipe) string {
	return strings.ToLower(strings.Join([]string{r.Title, r.Description, strings.Join(r.Tags, " ")}, " "))
}

func (s *MemoryStore) indexOf(id string) int {
	for i := range s.recipes {
		if s.recipes[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneAll(in []domain.Recipe) []domain.Recipe {
	out := make([]domain.Recipe, len(in))
	for i, r := range in {
		out[i] = r.Clone()
	}
	return out
}
