package services

import (
	"context"

	"github.com/pfdash/pfdash_backend/internal/core/domain"
	"github.com/pfdash/pfdash_backend/internal/dto"
)

// CategorySvcFacade defines operations over the user's categories.
type CategorySvcFacade interface {
	// CreateCategory creates a new category; names are unique per user.
	CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error)

	// GetCategoryByID retrieves one of the user's categories.
	GetCategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error)

	// ListCategories retrieves all of the user's categories.
	ListCategories(ctx context.Context, userID string) ([]domain.Category, error)

	// UpdateCategory renames or retypes a category. Referencing budgets and
	// transactions follow by ID; no fan-out rewrite happens.
	UpdateCategory(ctx context.Context, userID, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)

	// DeleteCategory removes an unreferenced category.
	DeleteCategory(ctx context.Context, userID, categoryID string) error

	// SeedDefaultCategories creates the starter category set for a new user.
	SeedDefaultCategories(ctx context.Context, userID string) error
}
