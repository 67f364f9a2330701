package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/ThotaSridharRao/Ecom-sub000/internal/apperrors"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/domain"
	portssvc "github.com/ThotaSridharRao/Ecom-sub000/internal/core/ports/services"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/services"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PartyServiceTestSuite struct {
	suite.Suite
	mockPartyRepo    *MockPartyRepository
	mockInvoiceRepo  *MockInvoiceRepository
	mockPurchaseRepo *MockPurchaseRepository
	mockPaymentRepo  *MockPaymentRepository
	service          portssvc.PartySvcFacade
}

func (suite *PartyServiceTestSuite) SetupTest() {
	suite.mockPartyRepo = new(MockPartyRepository)
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockPurchaseRepo = new(MockPurchaseRepository)
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.service = services.NewPartyService(suite.mockPartyRepo, suite.mockInvoiceRepo, suite.mockPurchaseRepo, suite.mockPaymentRepo)
}

func (suite *PartyServiceTestSuite) TestCreateParty_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreatePartyRequest{Name: "Acme Traders", Phone: "9876543210"}

	suite.mockPartyRepo.On("SaveParty", ctx, mock.MatchedBy(func(p domain.Party) bool {
		return p.Name == req.Name && p.Kind == domain.PartyCustomer && p.CreatedBy == creatorUserID
	})).Return(nil).Once()

	party, err := suite.service.CreateParty(ctx, domain.PartyCustomer, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Equal(domain.PartyCustomer, party.Kind)
	suite.mockPartyRepo.AssertExpectations(suite.T())
}

func (suite *PartyServiceTestSuite) TestRecordPayment_DirectionFollowsKind() {
	ctx := context.Background()
	vendorID := uuid.NewString()

	suite.mockPartyRepo.On("FindPartyByID", ctx, vendorID).
		Return(&domain.Party{PartyID: vendorID, Kind: domain.PartyVendor}, nil).Once()
	suite.mockPaymentRepo.On("SavePayment", ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.Direction == domain.PaymentMade && p.PartyKind == domain.PartyVendor
	})).Return(nil).Once()

	payment, err := suite.service.RecordPayment(ctx, vendorID, dto.CreatePaymentRequest{
		Amount:      decimal.RequireFromString("500"),
		PaymentDate: time.Now(),
	}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.PaymentMade, payment.Direction)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PartyServiceTestSuite) TestRecordPayment_NonPositiveAmount() {
	ctx := context.Background()

	payment, err := suite.service.RecordPayment(ctx, uuid.NewString(), dto.CreatePaymentRequest{
		Amount: decimal.Zero,
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPartyRepo.AssertNotCalled(suite.T(), "FindPartyByID")
}

func (suite *PartyServiceTestSuite) TestGetLedger_RunningBalance() {
	ctx := context.Background()
	customerID := uuid.NewString()
	day1 := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)
	day3 := time.Date(2024, 4, 20, 0, 0, 0, 0, time.UTC)

	suite.mockPartyRepo.On("FindPartyByID", ctx, customerID).
		Return(&domain.Party{PartyID: customerID, Kind: domain.PartyCustomer, Name: "Acme Traders"}, nil).Once()
	suite.mockInvoiceRepo.On("ListInvoicesByCustomer", ctx, customerID).Return([]domain.Invoice{
		{
			InvoiceID:     "inv-1",
			InvoiceNumber: "INV-001",
			InvoiceDate:   day1,
			GrandTotal:    decimal.RequireFromString("1000"),
			AmountPaid:    decimal.RequireFromString("400"),
		},
		{
			InvoiceID:     "inv-2",
			InvoiceNumber: "INV-002",
			InvoiceDate:   day2,
			GrandTotal:    decimal.RequireFromString("500"),
			AmountPaid:    decimal.Zero,
		},
	}, nil).Once()
	suite.mockPaymentRepo.On("ListPaymentsByParty", ctx, customerID).Return([]domain.Payment{
		{
			PaymentID:   "pay-1",
			PartyID:     customerID,
			Amount:      decimal.RequireFromString("600"),
			Direction:   domain.PaymentReceived,
			Note:        "dues settlement",
			PaymentDate: day3,
		},
	}, nil).Once()

	statement, err := suite.service.GetLedger(ctx, customerID)

	suite.Require().NoError(err)
	suite.Require().Len(statement.Entries, 4)

	// Day 1: invoice debit 1000, then its payment credit 400.
	suite.True(statement.Entries[0].Balance.Equal(decimal.RequireFromString("1000")))
	suite.True(statement.Entries[1].Balance.Equal(decimal.RequireFromString("600")))
	// Day 10: second invoice debit 500.
	suite.True(statement.Entries[2].Balance.Equal(decimal.RequireFromString("1100")))
	// Day 20: manual settlement credit 600.
	suite.True(statement.Entries[3].Balance.Equal(decimal.RequireFromString("500")))

	suite.True(statement.TotalInvoiced.Equal(decimal.RequireFromString("1500")))
	suite.True(statement.TotalPaid.Equal(decimal.RequireFromString("1000")))
	suite.True(statement.ClosingDues.Equal(decimal.RequireFromString("500")))

	suite.mockInvoiceRepo.AssertExpectations(suite.T())
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PartyServiceTestSuite) TestGetLedger_VendorUsesPurchases() {
	ctx := context.Background()
	vendorID := uuid.NewString()
	day1 := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	suite.mockPartyRepo.On("FindPartyByID", ctx, vendorID).
		Return(&domain.Party{PartyID: vendorID, Kind: domain.PartyVendor, Name: "Bulk Supplies"}, nil).Once()
	suite.mockPurchaseRepo.On("ListPurchasesByVendor", ctx, vendorID).Return([]domain.Purchase{
		{
			PurchaseID:   "pur-1",
			BillNumber:   "BILL-001",
			PurchaseDate: day1,
			GrandTotal:   decimal.RequireFromString("750"),
			AmountPaid:   decimal.Zero,
		},
	}, nil).Once()
	suite.mockPaymentRepo.On("ListPaymentsByParty", ctx, vendorID).Return([]domain.Payment{}, nil).Once()

	statement, err := suite.service.GetLedger(ctx, vendorID)

	suite.Require().NoError(err)
	suite.Require().Len(statement.Entries, 1)
	suite.True(statement.ClosingDues.Equal(decimal.RequireFromString("750")))
	suite.mockPurchaseRepo.AssertExpectations(suite.T())
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "ListInvoicesByCustomer")
}

func TestPartyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PartyServiceTestSuite))
}
