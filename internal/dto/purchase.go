package dto

import (
	"time"

	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/domain"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/pricing"
	"github.com/shopspring/decimal"
)

// PurchaseItemRequest is one raw line of a purchase bill.
type PurchaseItemRequest struct {
	ProductID       string          `json:"productID" binding:"required"`
	Quantity        int64           `json:"quantity" binding:"required,gt=0"`
	UnitCost        decimal.Decimal `json:"unitCost" binding:"required"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	TaxPercent      decimal.Decimal `json:"taxPercent"`
}

// CreatePurchaseRequest defines the data needed to save a purchase bill.
// The same shape is used for full replacement of an existing bill.
type CreatePurchaseRequest struct {
	BillNumber          string                `json:"billNumber" binding:"required"`
	VendorID            string                `json:"vendorID" binding:"required"`
	PurchaseDate        time.Time             `json:"purchaseDate" binding:"required"`
	Items               []PurchaseItemRequest `json:"items" binding:"required,min=1,dive"`
	OverallDiscount     decimal.Decimal       `json:"overallDiscount"`
	OverallDiscountType pricing.DiscountType  `json:"overallDiscountType" binding:"omitempty,oneof=PERCENTAGE FLAT"`
	ExtraCharge         decimal.Decimal       `json:"extraCharge"`
	AmountPaid          decimal.Decimal       `json:"amountPaid"`
}

// PurchaseItemResponse mirrors a frozen purchase line.
type PurchaseItemResponse struct {
	PurchaseItemID  string          `json:"purchaseItemID"`
	ProductID       string          `json:"productID"`
	ProductName     string          `json:"productName"`
	UnitCost        decimal.Decimal `json:"unitCost"`
	Quantity        int64           `json:"quantity"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	TaxPercent      decimal.Decimal `json:"taxPercent"`
	CostPerUnit     decimal.Decimal `json:"costPerUnit"`
	LineTotal       decimal.Decimal `json:"lineTotal"`
}

// PurchaseResponse defines the data returned for a purchase bill.
type PurchaseResponse struct {
	PurchaseID          string                 `json:"purchaseID"`
	BillNumber          string                 `json:"billNumber"`
	VendorID            string                 `json:"vendorID"`
	PurchaseDate        time.Time              `json:"purchaseDate"`
	Items               []PurchaseItemResponse `json:"items"`
	OverallDiscount     decimal.Decimal        `json:"overallDiscount"`
	OverallDiscountType pricing.DiscountType   `json:"overallDiscountType"`
	ExtraCharge         decimal.Decimal        `json:"extraCharge"`
	SubTotal            decimal.Decimal        `json:"subTotal"`
	DiscountAmount      decimal.Decimal        `json:"discountAmount"`
	GrandTotal          decimal.Decimal        `json:"grandTotal"`
	AmountPaid          decimal.Decimal        `json:"amountPaid"`
	Balance             decimal.Decimal        `json:"balance"`
	PaymentStatus       pricing.PaymentStatus  `json:"paymentStatus"`
	CreatedAt           time.Time              `json:"createdAt"`
	CreatedBy           string                 `json:"createdBy"`
	LastUpdatedAt       time.Time              `json:"lastUpdatedAt"`
}

// ListPurchasesResponse wraps a page of purchase bills.
type ListPurchasesResponse struct {
	Purchases []PurchaseResponse `json:"purchases"`
	NextToken string             `json:"nextToken,omitempty"`
}

// ToPurchaseItemResponse converts a domain.PurchaseItem to its DTO.
func ToPurchaseItemResponse(item *domain.PurchaseItem) PurchaseItemResponse {
	return PurchaseItemResponse{
		PurchaseItemID:  item.PurchaseItemID,
		ProductID:       item.ProductID,
		ProductName:     item.ProductName,
		UnitCost:        item.UnitCost,
		Quantity:        item.Quantity,
		DiscountPercent: item.DiscountPercent,
		TaxPercent:      item.TaxPercent,
		CostPerUnit:     item.CostPerUnit,
		LineTotal:       item.LineTotal,
	}
}

// ToPurchaseResponse converts a domain.Purchase to PurchaseResponse DTO
func ToPurchaseResponse(p *domain.Purchase) PurchaseResponse {
	items := make([]PurchaseItemResponse, len(p.Items))
	for i, item := range p.Items {
		items[i] = ToPurchaseItemResponse(&item)
	}
	return PurchaseResponse{
		PurchaseID:          p.PurchaseID,
		BillNumber:          p.BillNumber,
		VendorID:            p.VendorID,
		PurchaseDate:        p.PurchaseDate,
		Items:               items,
		OverallDiscount:     p.OverallDiscount,
		OverallDiscountType: p.OverallDiscountType,
		ExtraCharge:         p.ExtraCharge,
		SubTotal:            p.SubTotal,
		DiscountAmount:      p.DiscountAmount,
		GrandTotal:          p.GrandTotal,
		AmountPaid:          p.AmountPaid,
		Balance:             p.Balance,
		PaymentStatus:       p.PaymentStatus,
		CreatedAt:           p.CreatedAt,
		CreatedBy:           p.CreatedBy,
		LastUpdatedAt:       p.LastUpdatedAt,
	}
}

// ToListPurchasesResponse converts a page of domain.Purchase to the list DTO
func ToListPurchasesResponse(purchases []domain.Purchase, nextToken string) ListPurchasesResponse {
	res := make([]PurchaseResponse, len(purchases))
	for i, p := range purchases {
		res[i] = ToPurchaseResponse(&p)
	}
	return ListPurchasesResponse{Purchases: res, NextToken: nextToken}
}
