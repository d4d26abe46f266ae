package service

import (
	"context"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	apperrors "github.com/pageza/recipe-catalog/internal/errors"
	"github.com/pageza/recipe-catalog/internal/model"
)

// RecipeService owns the in-memory recipe list for the running process. The
// list is hydrated by Init and written back through the RecipeStore after
// every mutation. Records are kept newest first.
type RecipeService struct {
	store           RecipeStore
	defaultCategory string
	now             func() time.Time

	mu       sync.RWMutex
	recipes  []model.Recipe
	degraded bool
}

var _ IRecipeService = (*RecipeService)(nil)

// Option configures a RecipeService.
type Option func(*RecipeService)

// WithClock replaces time.Now for ids and timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *RecipeService) { s.now = now }
}

// WithDefaultCategory sets the category given to drafts without one.
func WithDefaultCategory(category string) Option {
	return func(s *RecipeService) { s.defaultCategory = category }
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(store RecipeStore, opts ...Option) *RecipeService {
	s := &RecipeService{
		store:           store,
		defaultCategory: "General",
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init hydrates the list from the store. A storage failure is logged and
// leaves the service running on whatever the store could provide.
func (s *RecipeService) Init(ctx context.Context) error {
	recipes, err := s.store.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.recipes = recipes
	s.degraded = err != nil
	if err != nil {
		log.Warn().Err(err).Int("count", len(recipes)).Msg("Recipes loaded without persistent storage")
		if apperrors.Is(err, apperrors.ErrStorageUnavailable) {
			return nil
		}
		return err
	}
	log.Info().Int("count", len(recipes)).Msg("Recipes loaded")
	return nil
}

// Create assigns an id and creation time to draft and prepends it.
func (s *RecipeService) Create(ctx context.Context, draft model.Draft) (*model.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	r := model.Recipe{
		ID:        s.nextID(now),
		Category:  s.defaultCategory,
		CreatedAt: now,
	}
	draft.ApplyTo(&r)
	if strings.TrimSpace(r.Category) == "" {
		r.Category = s.defaultCategory
	}

	s.recipes = append([]model.Recipe{r}, s.recipes...)
	s.persist(ctx, "create", r.ID)

	out := r.Clone()
	return &out, nil
}

// Update merges the present draft fields into the record with id.
func (s *RecipeService) Update(ctx context.Context, id string, draft model.Draft) (*model.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, apperrors.NotFound(id)
	}

	r := s.recipes[i].Clone()
	draft.ApplyTo(&r)
	if strings.TrimSpace(r.Category) == "" {
		r.Category = s.defaultCategory
	}
	updated := s.now()
	r.UpdatedAt = &updated
	s.recipes[i] = r
	s.persist(ctx, "update", id)

	out := r.Clone()
	return &out, nil
}

// Delete removes the record with id.
func (s *RecipeService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return apperrors.NotFound(id)
	}
	s.recipes = slices.Delete(s.recipes, i, i+1)
	s.persist(ctx, "delete", id)
	return nil
}

// Find returns a copy of the record with id.
func (s *RecipeService) Find(_ context.Context, id string) (*model.Recipe, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, false
	}
	r := s.recipes[i].Clone()
	return &r, true
}

// List applies the difficulty filter, then the case-insensitive title
// search, then the category filter, and returns copies in stored order.
func (s *RecipeService) List(_ context.Context, filter model.Filter) []model.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Recipe, 0, len(s.recipes))
	for _, r := range s.recipes {
		out = append(out, r.Clone())
	}

	if filter.HasDifficulty() {
		want, _ := model.ParseDifficulty(filter.Difficulty)
		out = slices.DeleteFunc(out, func(r model.Recipe) bool { return r.Difficulty != want })
	}
	if q := strings.ToLower(strings.TrimSpace(filter.Search)); q != "" {
		out = slices.DeleteFunc(out, func(r model.Recipe) bool {
			return !strings.Contains(strings.ToLower(r.Title), q)
		})
	}
	if c := strings.TrimSpace(filter.Category); c != "" {
		out = slices.DeleteFunc(out, func(r model.Recipe) bool { return !strings.EqualFold(r.Category, c) })
	}
	return out
}

// Categories returns the distinct categories in order of first appearance.
func (s *RecipeService) Categories(_ context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	var out []string
	for _, r := range s.recipes {
		if _, ok := seen[r.Category]; ok {
			continue
		}
		seen[r.Category] = struct{}{}
		out = append(out, r.Category)
	}
	return out
}

// Degraded reports whether the most recent load or save failed, meaning
// changes currently live in memory only.
func (s *RecipeService) Degraded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.degraded
}

// persist writes the list while the caller holds the write lock. A failure
// keeps the in-memory change.
func (s *RecipeService) persist(ctx context.Context, op, id string) {
	if err := s.store.Save(ctx, s.recipes); err != nil {
		s.degraded = true
		log.Error().Err(err).Str("op", op).Str("id", id).Msg("Failed to save recipes, keeping change in memory")
		return
	}
	s.degraded = false
}

// nextID is the creation time in unix milliseconds, bumped past any id
// already in use.
func (s *RecipeService) nextID(now time.Time) string {
	ms := now.UnixMilli()
	for {
		id := strconv.FormatInt(ms, 10)
		if s.indexOf(id) < 0 {
			return id
		}
		ms++
	}
}

func (s *RecipeService) indexOf(id string) int {
	return slices.IndexFunc(s.recipes, func(r model.Recipe) bool { return r.ID == id })
}
