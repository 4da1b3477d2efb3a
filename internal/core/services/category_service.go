package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pfdash/pfdash_backend/internal/core/domain"
	portsrepo "github.com/pfdash/pfdash_backend/internal/core/ports/repositories"
	portssvc "github.com/pfdash/pfdash_backend/internal/core/ports/services"
	"github.com/pfdash/pfdash_backend/internal/dto"
)

// categoryService implements the CategorySvcFacade interface
type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	now := time.Now()
	category := domain.Category{
		CategoryID:   uuid.NewString(),
		UserID:       userID,
		Name:         req.Name,
		CategoryType: domain.CategoryType(req.CategoryType),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category", slog.String("name", req.Name))
		return nil, err
	}

	return &category, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error) {
	return s.categoryRepo.FindCategoryByID(ctx, userID, categoryID)
}

func (s *categoryService) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	return s.categoryRepo.FindCategoriesByUser(ctx, userID)
}

// UpdateCategory renames or retypes a category in place. Transactions and
// budgets reference the category by ID, so nothing else is rewritten.
func (s *categoryService) UpdateCategory(ctx context.Context, userID, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.CategoryType != nil {
		category.CategoryType = domain.CategoryType(*req.CategoryType)
	}
	category.LastUpdatedAt = time.Now()
	category.LastUpdatedBy = userID

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to update category", slog.String("category_id", categoryID))
		return nil, err
	}
	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	if err := s.categoryRepo.DeleteCategory(ctx, userID, categoryID); err != nil {
		s.LogError(ctx, err, "Failed to delete category", slog.String("category_id", categoryID))
		return err
	}
	return nil
}

// SeedDefaultCategories creates the starter set for a new user in one batch.
func (s *categoryService) SeedDefaultCategories(ctx context.Context, userID string) error {
	now := time.Now()
	defaults := domain.DefaultCategories()
	categories := make([]domain.Category, 0, len(defaults))
	for _, d := range defaults {
		categories = append(categories, domain.Category{
			CategoryID:   uuid.NewString(),
			UserID:       userID,
			Name:         d.Name,
			CategoryType: d.Type,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		})
	}

	if err := s.categoryRepo.SaveCategories(ctx, categories); err != nil {
		s.LogError(ctx, err, "Failed to seed default categories", slog.String("user_id", userID))
		return err
	}

	s.LogInfo(ctx, "Seeded default categories",
		slog.String("user_id", userID),
		slog.Int("count", len(categories)))
	return nil
}
