package service

import (
	"context"

	"github.com/pageza/recipe-catalog/internal/model"
)

// RecipeStore persists the whole recipe list. storage.Adapter implements it.
type RecipeStore interface {
	Load(ctx context.Context) ([]model.Recipe, error)
	Save(ctx context.Context, recipes []model.Recipe) error
}

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	Create(ctx context.Context, draft model.Draft) (*model.Recipe, error)
	Update(ctx context.Context, id string, draft model.Draft) (*model.Recipe, error)
	Delete(ctx context.Context, id string) error
	Find(ctx context.Context, id string) (*model.Recipe, bool)
	List(ctx context.Context, filter model.Filter) []model.Recipe
	Categories(ctx context.Context) []string
	Degraded() bool
}
