package dto

import (
	"github.com/pfdash/pfdash_backend/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a category.
type CreateCategoryRequest struct {
	Name         string `json:"name" binding:"required,max=100"`
	CategoryType string `json:"categoryType" binding:"required,oneof=EXPENSE INCOME INVESTMENT"`
}

// UpdateCategoryRequest renames or retypes a category.
type UpdateCategoryRequest struct {
	Name         *string `json:"name" binding:"omitempty,max=100"`
	CategoryType *string `json:"categoryType" binding:"omitempty,oneof=EXPENSE INCOME INVESTMENT"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID   string `json:"categoryID"`
	Name         string `json:"name"`
	CategoryType string `json:"categoryType"`
}

// ToCategoryResponse converts a domain.Category to CategoryResponse.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:   c.CategoryID,
		Name:         c.Name,
		CategoryType: string(c.CategoryType),
	}
}

// ListCategoriesResponse wraps the list of categories.
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToListCategoriesResponse converts a slice of categories to DTOs.
func ToListCategoriesResponse(categories []domain.Category) ListCategoriesResponse {
	res := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		res[i] = ToCategoryResponse(&c)
	}
	return ListCategoriesResponse{Categories: res}
}
