package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/pfdash/pfdash_backend/internal/core/domain"
	portssvc "github.com/pfdash/pfdash_backend/internal/core/ports/services"
	"github.com/pfdash/pfdash_backend/internal/dto"
	"github.com/pfdash/pfdash_backend/internal/handlers"
	"github.com/pfdash/pfdash_backend/internal/platform/config"
)

// --- Mock BudgetService ---
type MockBudgetService struct {
	mock.Mock
}

func (m *MockBudgetService) CreateBudget(ctx context.Context, userID string, req dto.CreateBudgetRequest) (*domain.Budget, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}
func (m *MockBudgetService) GetBudgetByID(ctx context.Context, userID, budgetID string) (*domain.Budget, error) {
	args := m.Called(ctx, userID, budgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}
func (m *MockBudgetService) ListBudgets(ctx context.Context, userID string, month *time.Time) ([]domain.Budget, error) {
	args := m.Called(ctx, userID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Budget), args.Error(1)
}
func (m *MockBudgetService) UpdateBudget(ctx context.Context, userID, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, error) {
	args := m.Called(ctx, userID, budgetID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}
func (m *MockBudgetService) DeleteBudget(ctx context.Context, userID, budgetID string) error {
	args := m.Called(ctx, userID, budgetID)
	return args.Error(0)
}
func (m *MockBudgetService) GetBudgetProgress(ctx context.Context, userID string, month time.Time) ([]domain.BudgetProgress, error) {
	args := m.Called(ctx, userID, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BudgetProgress), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.BudgetSvcFacade = (*MockBudgetService)(nil)

// --- Test Suite ---
type BudgetHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockBudgetService *MockBudgetService
	jwtSecret         string
	userID            string
}

func (suite *BudgetHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "pfdash-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tsignedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return tsignedString
}

func (suite *BudgetHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()

	suite.mockBudgetService = new(MockBudgetService)

	cfg := &config.Config{
		JWTSecret:              suite.jwtSecret,
		IsProduction:           true,
		AuthRateLimit:          "5-M",
		RefreshTokenCookieName: "rtid",
		RefreshTokenCookiePath: "/auth",
	}
	container := &portssvc.ServiceContainer{Budget: suite.mockBudgetService}
	handlers.RegisterRoutes(suite.router, cfg, container, nil)
}

func (suite *BudgetHandlerTestSuite) doGet(url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *BudgetHandlerTestSuite) TestGetBudgetProgress_Success() {
	month := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	rows := []domain.BudgetProgress{
		{
			BudgetID:        uuid.NewString(),
			CategoryID:      uuid.NewString(),
			CategoryName:    "Food",
			LimitAmount:     decimal.NewFromInt(500),
			Spent:           decimal.NewFromInt(200),
			ProgressPercent: decimal.NewFromInt(40),
		},
	}

	suite.mockBudgetService.On("GetBudgetProgress", mock.Anything, suite.userID, month).
		Return(rows, nil).Once()

	w := suite.doGet("/api/v1/budgets/progress?month=2025-03")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.BudgetProgressResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("2025-03", resp.Month)
	suite.Require().Len(resp.Rows, 1)
	suite.Equal("Food", resp.Rows[0].CategoryName)
	suite.mockBudgetService.AssertExpectations(suite.T())
}

func (suite *BudgetHandlerTestSuite) TestGetBudgetProgress_InvalidMonth() {
	w := suite.doGet("/api/v1/budgets/progress?month=March-2025")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockBudgetService.AssertNotCalled(suite.T(), "GetBudgetProgress")
}

func (suite *BudgetHandlerTestSuite) TestGetBudgetProgress_MissingMonth() {
	w := suite.doGet("/api/v1/budgets/progress")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockBudgetService.AssertNotCalled(suite.T(), "GetBudgetProgress")
}

func (suite *BudgetHandlerTestSuite) TestListBudgets_MonthScoped() {
	month := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	budgets := []domain.Budget{
		{
			BudgetID:     uuid.NewString(),
			UserID:       suite.userID,
			CategoryID:   uuid.NewString(),
			CategoryName: "Food",
			LimitAmount:  decimal.NewFromInt(500),
			Month:        month,
		},
	}

	suite.mockBudgetService.On("ListBudgets", mock.Anything, suite.userID, mock.MatchedBy(func(m *time.Time) bool {
		return m != nil && m.Equal(month)
	})).Return(budgets, nil).Once()

	w := suite.doGet("/api/v1/budgets?month=2025-03")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListBudgetsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Budgets, 1)
	suite.Equal("2025-03", resp.Budgets[0].Month)
	suite.mockBudgetService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestBudgetHandler(t *testing.T) {
	suite.Run(t, new(BudgetHandlerTestSuite))
}
