package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/recipe-catalog/internal/model"
)

// MockRecipeStore is a mock implementation of service.RecipeStore
type MockRecipeStore struct {
	mock.Mock
}

// Load mocks the Load method
func (m *MockRecipeStore) Load(ctx context.Context) ([]model.Recipe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Recipe), args.Error(1)
}

// Save mocks the Save method
func (m *MockRecipeStore) Save(ctx context.Context, recipes []model.Recipe) error {
	args := m.Called(ctx, recipes)
	return args.Error(0)
}
