package services_test

import (
	"context"
	"testing"

	"github.com/ThotaSridharRao/Ecom-sub000/internal/apperrors"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/domain"
	portssvc "github.com/ThotaSridharRao/Ecom-sub000/internal/core/ports/services"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/pricing"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/services"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ProductServiceTestSuite struct {
	suite.Suite
	mockRepo *MockProductRepository
	service  portssvc.ProductSvcFacade
}

func (suite *ProductServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockProductRepository)
	suite.service = services.NewProductService(suite.mockRepo)
}

func validCreateRequest() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		SKU:      "SKU-001",
		Name:     "LED Bulb 9W",
		Category: "Lighting",
		StockQty: 50,
		Selling: dto.PriceSpecRequest{
			Amount:      decimal.RequireFromString("118"),
			RatePercent: decimal.RequireFromString("18"),
			Mode:        pricing.TaxInclusive,
		},
		Purchase: dto.PriceSpecRequest{
			Amount:      decimal.RequireFromString("80"),
			RatePercent: decimal.RequireFromString("18"),
			Mode:        pricing.TaxExclusive,
		},
	}
}

func (suite *ProductServiceTestSuite) TestCreateProduct_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := validCreateRequest()

	suite.mockRepo.On("SaveProduct", ctx, mock.MatchedBy(func(p domain.Product) bool {
		return p.SKU == req.SKU && p.IsActive && p.CreatedBy == creatorUserID
	})).Return(nil).Once()

	product, err := suite.service.CreateProduct(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(product)
	suite.Equal(req.Name, product.Name)
	suite.True(product.Selling.Amount.Equal(decimal.RequireFromString("118")))
	suite.Equal(pricing.TaxInclusive, product.Selling.Mode)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestCreateProduct_NegativeAmount() {
	ctx := context.Background()
	req := validCreateRequest()
	req.Selling.Amount = decimal.RequireFromString("-1")

	product, err := suite.service.CreateProduct(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(product)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveProduct")
}

func (suite *ProductServiceTestSuite) TestCreateProduct_RateOutOfRange() {
	ctx := context.Background()
	req := validCreateRequest()
	req.Purchase.RatePercent = decimal.RequireFromString("101")

	product, err := suite.service.CreateProduct(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(product)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ProductServiceTestSuite) TestGetProductByID_NotFound() {
	ctx := context.Background()
	id := uuid.NewString()

	suite.mockRepo.On("FindProductByID", ctx, id).Return(nil, apperrors.ErrNotFound).Once()

	product, err := suite.service.GetProductByID(ctx, id)

	suite.Require().Error(err)
	suite.Nil(product)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestUpdateProduct_PartialUpdate() {
	ctx := context.Background()
	id := uuid.NewString()
	updaterUserID := uuid.NewString()
	existing := &domain.Product{
		ProductID: id,
		SKU:       "SKU-001",
		Name:      "Old Name",
		StockQty:  10,
		Selling: pricing.PriceSpec{
			Amount:      decimal.RequireFromString("118"),
			RatePercent: decimal.RequireFromString("18"),
			Mode:        pricing.TaxInclusive,
		},
		Purchase: pricing.PriceSpec{
			Amount:      decimal.RequireFromString("80"),
			RatePercent: decimal.RequireFromString("18"),
			Mode:        pricing.TaxExclusive,
		},
		IsActive: true,
	}
	newName := "New Name"

	suite.mockRepo.On("FindProductByID", ctx, id).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateProduct", ctx, mock.MatchedBy(func(p domain.Product) bool {
		return p.Name == newName && p.StockQty == 10 && p.LastUpdatedBy == updaterUserID
	})).Return(nil).Once()

	product, err := suite.service.UpdateProduct(ctx, id, dto.UpdateProductRequest{Name: &newName}, updaterUserID)

	suite.Require().NoError(err)
	suite.Equal(newName, product.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Bulk tax migration ---

func (suite *ProductServiceTestSuite) bulkRequest(ids []string, rate string, mode pricing.TaxMode, strategy pricing.Strategy) dto.BulkTaxUpdateRequest {
	r := decimal.RequireFromString(rate)
	return dto.BulkTaxUpdateRequest{
		ProductIDs:     ids,
		NewRatePercent: &r,
		NewMode:        mode,
		Strategy:       strategy,
	}
}

func (suite *ProductServiceTestSuite) TestBulkUpdateTax_PreserveFinal() {
	ctx := context.Background()
	updaterUserID := uuid.NewString()
	ids := []string{uuid.NewString(), uuid.NewString()}
	catalog := []domain.Product{
		{
			ProductID: ids[0],
			Selling: pricing.PriceSpec{
				Amount:      decimal.RequireFromString("118"),
				RatePercent: decimal.RequireFromString("18"),
				Mode:        pricing.TaxInclusive,
			},
		},
		{
			ProductID: ids[1],
			Selling: pricing.PriceSpec{
				Amount:      decimal.RequireFromString("100"),
				RatePercent: decimal.RequireFromString("12"),
				Mode:        pricing.TaxExclusive,
			},
		},
	}

	suite.mockRepo.On("FindProductsByIDs", ctx, ids).Return(catalog, nil).Once()
	suite.mockRepo.On("UpdateProductPricing", ctx, mock.AnythingOfType("[]domain.Product")).Return(nil).Once()

	req := suite.bulkRequest(ids, "28", pricing.TaxInclusive, pricing.PreserveFinalPrice)
	updated, err := suite.service.BulkUpdateTax(ctx, req, updaterUserID)

	suite.Require().NoError(err)
	suite.Require().Len(updated, 2)

	// Inclusive stays at its sticker price under the preserve-final strategy.
	suite.True(updated[0].Selling.Amount.Equal(decimal.RequireFromString("118")))
	suite.True(updated[0].Selling.RatePercent.Equal(decimal.RequireFromString("28")))
	suite.Equal(pricing.TaxInclusive, updated[0].Selling.Mode)

	// Exclusive 100 @ 12% had final 112; the new inclusive amount is that final.
	suite.True(updated[1].Selling.Amount.Equal(decimal.RequireFromString("112")))
	suite.Equal(pricing.TaxInclusive, updated[1].Selling.Mode)
	suite.Equal(updaterUserID, updated[1].LastUpdatedBy)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestBulkUpdateTax_EmptySelection() {
	ctx := context.Background()
	req := suite.bulkRequest(nil, "28", pricing.TaxInclusive, pricing.PreserveFinalPrice)

	updated, err := suite.service.BulkUpdateTax(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindProductsByIDs")
}

func (suite *ProductServiceTestSuite) TestBulkUpdateTax_MissingRate() {
	ctx := context.Background()
	req := dto.BulkTaxUpdateRequest{
		ProductIDs: []string{uuid.NewString()},
		NewMode:    pricing.TaxInclusive,
		Strategy:   pricing.PreserveFinalPrice,
	}

	updated, err := suite.service.BulkUpdateTax(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ProductServiceTestSuite) TestBulkUpdateTax_RateOutOfRange() {
	ctx := context.Background()
	req := suite.bulkRequest([]string{uuid.NewString()}, "150", pricing.TaxInclusive, pricing.PreserveFinalPrice)

	updated, err := suite.service.BulkUpdateTax(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ProductServiceTestSuite) TestBulkUpdateTax_UnknownProductRejectsBatch() {
	ctx := context.Background()
	ids := []string{uuid.NewString(), uuid.NewString()}

	suite.mockRepo.On("FindProductsByIDs", ctx, ids).Return(nil, apperrors.ErrNotFound).Once()

	req := suite.bulkRequest(ids, "28", pricing.TaxInclusive, pricing.PreserveFinalPrice)
	updated, err := suite.service.BulkUpdateTax(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateProductPricing")
}

func (suite *ProductServiceTestSuite) TestBulkUpdateTax_PersistFailurePropagates() {
	ctx := context.Background()
	ids := []string{uuid.NewString()}
	catalog := []domain.Product{
		{
			ProductID: ids[0],
			Selling: pricing.PriceSpec{
				Amount:      decimal.RequireFromString("118"),
				RatePercent: decimal.RequireFromString("18"),
				Mode:        pricing.TaxInclusive,
			},
		},
	}

	suite.mockRepo.On("FindProductsByIDs", ctx, ids).Return(catalog, nil).Once()
	suite.mockRepo.On("UpdateProductPricing", ctx, mock.AnythingOfType("[]domain.Product")).Return(assert.AnError).Once()

	req := suite.bulkRequest(ids, "28", pricing.TaxInclusive, pricing.PreserveFinalPrice)
	updated, err := suite.service.BulkUpdateTax(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, assert.AnError)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestProductServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProductServiceTestSuite))
}
