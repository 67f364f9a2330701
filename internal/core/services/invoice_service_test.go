package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/ThotaSridharRao/Ecom-sub000/internal/apperrors"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/domain"
	portssvc "github.com/ThotaSridharRao/Ecom-sub000/internal/core/ports/services"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/pricing"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/services"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type InvoiceServiceTestSuite struct {
	suite.Suite
	mockInvoiceRepo *MockInvoiceRepository
	mockProductRepo *MockProductRepository
	mockPartyRepo   *MockPartyRepository
	service         portssvc.InvoiceSvcFacade

	customerID string
	productID  string
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockProductRepo = new(MockProductRepository)
	suite.mockPartyRepo = new(MockPartyRepository)
	suite.service = services.NewInvoiceService(suite.mockInvoiceRepo, suite.mockProductRepo, suite.mockPartyRepo)
	suite.customerID = uuid.NewString()
	suite.productID = uuid.NewString()
}

func (suite *InvoiceServiceTestSuite) expectCustomerAndProduct() {
	suite.mockPartyRepo.On("FindPartyByID", mock.Anything, suite.customerID).
		Return(&domain.Party{PartyID: suite.customerID, Kind: domain.PartyCustomer, Name: "Acme Traders"}, nil).Once()
	suite.mockProductRepo.On("FindProductsByIDs", mock.Anything, []string{suite.productID}).
		Return([]domain.Product{{ProductID: suite.productID, Name: "LED Bulb 9W"}}, nil).Once()
}

func (suite *InvoiceServiceTestSuite) invoiceRequest() dto.CreateInvoiceRequest {
	return dto.CreateInvoiceRequest{
		InvoiceNumber: "INV-001",
		CustomerID:    suite.customerID,
		InvoiceDate:   time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		Items: []dto.InvoiceItemRequest{
			{
				ProductID:       suite.productID,
				Quantity:        2,
				UnitPrice:       decimal.RequireFromString("1000"),
				DiscountPercent: decimal.RequireFromString("10"),
				TaxPercent:      decimal.RequireFromString("18"),
			},
		},
	}
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_FreezesSummaryAndStatus() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := suite.invoiceRequest()
	req.AmountPaid = decimal.RequireFromString("2124")

	suite.expectCustomerAndProduct()

	var saved domain.Invoice
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.Invoice"), map[string]int64{suite.productID: -2}).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.Invoice)
		}).Return(nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(invoice)

	// 1000 with 10% discount is 900 per unit; with 18% tax, 1062 per unit, 2124 for qty 2.
	suite.True(invoice.SubTotal.Equal(decimal.RequireFromString("2124")))
	suite.True(invoice.GrandTotal.Equal(decimal.RequireFromString("2124")))
	suite.Require().Len(invoice.Items, 1)
	suite.True(invoice.Items[0].SellingPricePerUnit.Equal(decimal.RequireFromString("900")))
	suite.True(invoice.Items[0].LineTotal.Equal(decimal.RequireFromString("2124")))
	suite.Equal("LED Bulb 9W", invoice.Items[0].ProductName)

	// Fully paid at save time.
	suite.Equal(pricing.PaymentPaid, invoice.PaymentStatus)
	suite.True(invoice.Balance.IsZero())

	suite.True(saved.GrandTotal.Equal(invoice.GrandTotal))
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
	suite.mockProductRepo.AssertExpectations(suite.T())
	suite.mockPartyRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_PartialPayment() {
	ctx := context.Background()
	req := suite.invoiceRequest()
	req.AmountPaid = decimal.RequireFromString("1000")

	suite.expectCustomerAndProduct()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.Invoice"), mock.Anything).Return(nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(pricing.PaymentPartial, invoice.PaymentStatus)
	suite.True(invoice.Balance.Equal(decimal.RequireFromString("1124")))
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_OverallDiscountAndExtraCharge() {
	ctx := context.Background()
	req := suite.invoiceRequest()
	req.OverallDiscount = decimal.RequireFromString("5")
	req.OverallDiscountType = pricing.DiscountPercentage
	req.ExtraCharge = decimal.RequireFromString("50")

	suite.expectCustomerAndProduct()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.Invoice"), mock.Anything).Return(nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	// 2124 - 5% (106.20) + 50 = 2067.80
	suite.True(invoice.DiscountAmount.Equal(decimal.RequireFromString("106.2")))
	suite.True(invoice.GrandTotal.Equal(decimal.RequireFromString("2067.8")))
	suite.Equal(pricing.PaymentPending, invoice.PaymentStatus)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_WrongPartyKind() {
	ctx := context.Background()
	req := suite.invoiceRequest()

	suite.mockPartyRepo.On("FindPartyByID", mock.Anything, suite.customerID).
		Return(&domain.Party{PartyID: suite.customerID, Kind: domain.PartyVendor}, nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice")
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_UnknownProduct() {
	ctx := context.Background()
	req := suite.invoiceRequest()

	suite.mockPartyRepo.On("FindPartyByID", mock.Anything, suite.customerID).
		Return(&domain.Party{PartyID: suite.customerID, Kind: domain.PartyCustomer}, nil).Once()
	suite.mockProductRepo.On("FindProductsByIDs", mock.Anything, []string{suite.productID}).
		Return(nil, apperrors.ErrNotFound).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_NegativeDiscountRejected() {
	ctx := context.Background()
	req := suite.invoiceRequest()
	req.Items[0].DiscountPercent = decimal.RequireFromString("-5")

	suite.expectCustomerAndProduct()

	invoice, err := suite.service.CreateInvoice(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *InvoiceServiceTestSuite) TestRecordPayment_TransitionsToPaidWithinTolerance() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	existing := &domain.Invoice{
		InvoiceID:     invoiceID,
		GrandTotal:    decimal.RequireFromString("2067.80"),
		AmountPaid:    decimal.RequireFromString("2000"),
		Balance:       decimal.RequireFromString("67.80"),
		PaymentStatus: pricing.PaymentPartial,
	}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(existing, nil).Once()
	suite.mockInvoiceRepo.On("UpdatePaymentState", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.PaymentStatus == pricing.PaymentPaid && inv.AmountPaid.Equal(decimal.RequireFromString("2067.50"))
	})).Return(nil).Once()

	invoice, err := suite.service.RecordPayment(ctx, invoiceID, dto.RecordPaymentRequest{
		Amount: decimal.RequireFromString("67.50"),
	}, uuid.NewString())

	suite.Require().NoError(err)
	// 0.30 short but within the settlement tolerance.
	suite.Equal(pricing.PaymentPaid, invoice.PaymentStatus)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestRecordPayment_NonPositiveAmount() {
	ctx := context.Background()

	invoice, err := suite.service.RecordPayment(ctx, uuid.NewString(), dto.RecordPaymentRequest{
		Amount: decimal.Zero,
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "FindInvoiceByID")
}

func (suite *InvoiceServiceTestSuite) TestReplaceInvoice_NetsStockDeltas() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	existing := &domain.Invoice{
		InvoiceID: invoiceID,
		Items: []domain.InvoiceItem{
			{ProductID: suite.productID, Quantity: 2},
		},
		AuditFields: domain.AuditFields{CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), CreatedBy: "creator"},
	}
	req := suite.invoiceRequest()
	req.Items[0].Quantity = 5

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(existing, nil).Once()
	suite.expectCustomerAndProduct()
	// Old sale returned 2 units, new sale takes 5: net -3.
	suite.mockInvoiceRepo.On("ReplaceInvoice", ctx, mock.AnythingOfType("domain.Invoice"), map[string]int64{suite.productID: -3}).Return(nil).Once()

	invoice, err := suite.service.ReplaceInvoice(ctx, invoiceID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal("creator", invoice.CreatedBy)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestDeleteInvoice_RestoresStock() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	existing := &domain.Invoice{
		InvoiceID: invoiceID,
		Items: []domain.InvoiceItem{
			{ProductID: suite.productID, Quantity: 4},
		},
	}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(existing, nil).Once()
	suite.mockInvoiceRepo.On("DeleteInvoice", ctx, invoiceID, map[string]int64{suite.productID: 4}).Return(nil).Once()

	err := suite.service.DeleteInvoice(ctx, invoiceID, uuid.NewString())

	suite.Require().NoError(err)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
