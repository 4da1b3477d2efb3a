package handlers_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/pfdash/pfdash_backend/internal/apperrors"
	"github.com/pfdash/pfdash_backend/internal/core/domain"
	portssvc "github.com/pfdash/pfdash_backend/internal/core/ports/services"
	"github.com/pfdash/pfdash_backend/internal/dto"
	"github.com/pfdash/pfdash_backend/internal/handlers"
	"github.com/pfdash/pfdash_backend/internal/platform/config"
)

// --- Mock CategoryService ---
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockCategoryService) GetCategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, userID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockCategoryService) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}
func (m *MockCategoryService) UpdateCategory(ctx context.Context, userID, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	args := m.Called(ctx, userID, categoryID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockCategoryService) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	args := m.Called(ctx, userID, categoryID)
	return args.Error(0)
}
func (m *MockCategoryService) SeedDefaultCategories(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.CategorySvcFacade = (*MockCategoryService)(nil)

// --- Test Suite ---
type CategoryHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockCategoryService *MockCategoryService
	jwtSecret           string
	userID              string
}

func (suite *CategoryHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "pfdash-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *CategoryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()

	suite.mockCategoryService = new(MockCategoryService)

	cfg := &config.Config{
		JWTSecret:              suite.jwtSecret,
		IsProduction:           true, // skip swagger routes
		AuthRateLimit:          "5-M",
		RefreshTokenCookieName: "rtid",
		RefreshTokenCookiePath: "/auth",
	}
	container := &portssvc.ServiceContainer{Category: suite.mockCategoryService}
	handlers.RegisterRoutes(suite.router, cfg, container, nil)
}

func (suite *CategoryHandlerTestSuite) doRequest(method, url string, body []byte) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *CategoryHandlerTestSuite) TestDeleteCategory_Success() {
	categoryID := uuid.NewString()
	suite.mockCategoryService.On("DeleteCategory", mock.Anything, suite.userID, categoryID).
		Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/categories/"+categoryID, nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockCategoryService.AssertExpectations(suite.T())
}

func (suite *CategoryHandlerTestSuite) TestDeleteCategory_ReferencedConflict() {
	categoryID := uuid.NewString()
	suite.mockCategoryService.On("DeleteCategory", mock.Anything, suite.userID, categoryID).
		Return(apperrors.ErrConflict).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/categories/"+categoryID, nil)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockCategoryService.AssertExpectations(suite.T())
}

func (suite *CategoryHandlerTestSuite) TestCreateCategory_DuplicateName() {
	reqBody := []byte(`{"name":"Groceries","categoryType":"EXPENSE"}`)
	suite.mockCategoryService.On("CreateCategory", mock.Anything, suite.userID, mock.Anything).
		Return(nil, apperrors.ErrDuplicate).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/categories", reqBody)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockCategoryService.AssertExpectations(suite.T())
}

func TestCategoryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryHandlerTestSuite))
}
