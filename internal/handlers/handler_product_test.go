package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ThotaSridharRao/Ecom-sub000/internal/apperrors"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/domain"
	portssvc "github.com/ThotaSridharRao/Ecom-sub000/internal/core/ports/services"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/pricing"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/dto"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/handlers"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/middleware"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ProductService ---
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
func (m *MockProductService) ListProducts(ctx context.Context, limit int, nextToken string) ([]domain.Product, string, error) {
	args := m.Called(ctx, limit, nextToken)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.Product), args.String(1), args.Error(2)
}
func (m *MockProductService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, creatorUserID string) (*domain.Product, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
func (m *MockProductService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, updaterUserID string) (*domain.Product, error) {
	args := m.Called(ctx, productID, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
func (m *MockProductService) DeactivateProduct(ctx context.Context, productID string, updaterUserID string) error {
	args := m.Called(ctx, productID, updaterUserID)
	return args.Error(0)
}
func (m *MockProductService) BulkUpdateTax(ctx context.Context, req dto.BulkTaxUpdateRequest, updaterUserID string) ([]domain.Product, error) {
	args := m.Called(ctx, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.ProductSvcFacade = (*MockProductService)(nil)

// --- Test Suite ---
type ProductHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockProductService *MockProductService
	jwtSecret          string
}

// generateTestToken creates a JWT carrying the given role for testing.
func (suite *ProductHandlerTestSuite) generateTestToken(userID string, role domain.UserRole) string {
	token, err := utils.GenerateJWT(userID, string(role), suite.jwtSecret, time.Hour, "ecom-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *ProductHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	// Use the actual AuthMiddleware so role enforcement is exercised
	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockProductService = new(MockProductService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterProductRoutes(v1, suite.mockProductService)
}

func testProduct(id string) domain.Product {
	now := time.Now().UTC()
	return domain.Product{
		ProductID: id,
		SKU:       "SKU-" + id[:8],
		Name:      "Test Product",
		Category:  "Apparel",
		StockQty:  10,
		Selling: pricing.PriceSpec{
			Amount:      decimal.NewFromInt(118),
			RatePercent: decimal.NewFromInt(18),
			Mode:        pricing.TaxInclusive,
		},
		Purchase: pricing.PriceSpec{
			Amount:      decimal.NewFromInt(80),
			RatePercent: decimal.NewFromInt(18),
			Mode:        pricing.TaxExclusive,
		},
		IsActive: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
}

// --- Test Cases ---

func (suite *ProductHandlerTestSuite) TestGetProduct_Success() {
	productID := uuid.NewString()
	userID := uuid.NewString()
	product := testProduct(productID)

	suite.mockProductService.On("GetProductByID",
		mock.AnythingOfType("*context.valueCtx"),
		productID,
	).Return(&product, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/products/"+productID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID, domain.RoleStaff))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.ProductResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(productID, body.ProductID)
	// The response decomposes the inclusive 118 @ 18% into base and tax parts.
	suite.True(body.Selling.Base.Equal(decimal.NewFromInt(100)), "base was %s", body.Selling.Base)
	suite.True(body.Selling.Tax.Equal(decimal.NewFromInt(18)), "tax was %s", body.Selling.Tax)

	suite.mockProductService.AssertExpectations(suite.T())
}

func (suite *ProductHandlerTestSuite) TestGetProduct_NotFound() {
	productID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockProductService.On("GetProductByID",
		mock.AnythingOfType("*context.valueCtx"),
		productID,
	).Return(nil, fmt.Errorf("%w: product %s", apperrors.ErrNotFound, productID)).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/products/"+productID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID, domain.RoleStaff))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockProductService.AssertExpectations(suite.T())
}

func (suite *ProductHandlerTestSuite) TestListProducts_PassesPagination() {
	userID := uuid.NewString()
	products := []domain.Product{testProduct(uuid.NewString()), testProduct(uuid.NewString())}
	nextToken := "opaque-token"

	suite.mockProductService.On("ListProducts",
		mock.AnythingOfType("*context.valueCtx"),
		5,
		"prev-token",
	).Return(products, nextToken, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/products?limit=5&nextToken=prev-token", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID, domain.RoleStaff))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.ListProductsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body.Products, 2)
	suite.Equal(nextToken, body.NextToken)

	suite.mockProductService.AssertExpectations(suite.T())
}

func (suite *ProductHandlerTestSuite) TestCreateProduct_RequiresStaffRole() {
	userID := uuid.NewString()
	reqBody := dto.CreateProductRequest{
		SKU:  "SKU-001",
		Name: "Blocked Product",
		Selling: dto.PriceSpecRequest{
			Amount: decimal.NewFromInt(100),
			Mode:   pricing.TaxExclusive,
		},
		Purchase: dto.PriceSpecRequest{
			Amount: decimal.NewFromInt(60),
			Mode:   pricing.TaxExclusive,
		},
	}
	payload, _ := json.Marshal(reqBody)

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/products", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID, domain.RoleCustomer))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockProductService.AssertNotCalled(suite.T(), "CreateProduct")
}

func (suite *ProductHandlerTestSuite) TestBulkUpdateTax_AdminOnly() {
	userID := uuid.NewString()
	newRate := decimal.NewFromInt(12)
	reqBody := dto.BulkTaxUpdateRequest{
		ProductIDs:     []string{uuid.NewString()},
		NewRatePercent: &newRate,
		NewMode:        pricing.TaxInclusive,
		Strategy:       pricing.PreserveFinalPrice,
	}
	payload, _ := json.Marshal(reqBody)

	// Staff cannot run the migration
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/products/bulk-tax-update", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID, domain.RoleStaff))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockProductService.AssertNotCalled(suite.T(), "BulkUpdateTax")

	// Admin can
	updated := []domain.Product{testProduct(reqBody.ProductIDs[0])}
	suite.mockProductService.On("BulkUpdateTax",
		mock.AnythingOfType("*context.valueCtx"),
		mock.MatchedBy(func(r dto.BulkTaxUpdateRequest) bool {
			return len(r.ProductIDs) == 1 && r.Strategy == pricing.PreserveFinalPrice
		}),
		userID,
	).Return(updated, nil).Once()

	req2, _ := http.NewRequest(http.MethodPost, "/api/v1/products/bulk-tax-update", bytes.NewReader(payload))
	req2.Header.Set("Content-Type", "application/json")
	req2.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID, domain.RoleAdmin))

	w2 := httptest.NewRecorder()
	suite.router.ServeHTTP(w2, req2)

	suite.Equal(http.StatusOK, w2.Code)

	var body dto.ListProductsResponse
	suite.NoError(json.Unmarshal(w2.Body.Bytes(), &body))
	suite.Len(body.Products, 1)

	suite.mockProductService.AssertExpectations(suite.T())
}

func (suite *ProductHandlerTestSuite) TestListProducts_MissingToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/products", nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

// --- Run Test Suite ---
func TestProductHandler(t *testing.T) {
	suite.Run(t, new(ProductHandlerTestSuite))
}
