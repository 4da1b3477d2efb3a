package repositories

import (
	"context"

	"github.com/pfdash/pfdash_backend/internal/core/domain"
)

// CategoryReader defines read operations for category data.
type CategoryReader interface {
	// FindCategoryByID retrieves a specific category owned by userID.
	FindCategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error)

	// FindCategoriesByUser retrieves all of the user's categories.
	FindCategoriesByUser(ctx context.Context, userID string) ([]domain.Category, error)
}

// CategoryWriter defines write operations for category data.
type CategoryWriter interface {
	// SaveCategory persists a new category.
	SaveCategory(ctx context.Context, category domain.Category) error

	// SaveCategories persists a batch of categories (used for seeding).
	SaveCategories(ctx context.Context, categories []domain.Category) error

	// UpdateCategory updates a category; references follow by ID, so a rename
	// is this single row.
	UpdateCategory(ctx context.Context, category domain.Category) error

	// DeleteCategory removes an unreferenced category. Referenced categories
	// fail with a conflict error.
	DeleteCategory(ctx context.Context, userID, categoryID string) error
}

// CategoryRepositoryFacade combines all category-related repository interfaces.
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
