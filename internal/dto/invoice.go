package dto

import (
	"time"

	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/domain"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/pricing"
	"github.com/shopspring/decimal"
)

// InvoiceItemRequest is one raw line of a sales invoice as entered at the
// counter. Derived amounts are never accepted from the client.
type InvoiceItemRequest struct {
	ProductID       string          `json:"productID" binding:"required"`
	Quantity        int64           `json:"quantity" binding:"required,gt=0"`
	UnitPrice       decimal.Decimal `json:"unitPrice" binding:"required"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	TaxPercent      decimal.Decimal `json:"taxPercent"`
}

// CreateInvoiceRequest defines the data needed to save a sales invoice.
// The same shape is used for full replacement of an existing invoice.
type CreateInvoiceRequest struct {
	InvoiceNumber       string               `json:"invoiceNumber" binding:"required"`
	CustomerID          string               `json:"customerID" binding:"required"`
	InvoiceDate         time.Time            `json:"invoiceDate" binding:"required"`
	Items               []InvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
	OverallDiscount     decimal.Decimal      `json:"overallDiscount"`
	OverallDiscountType pricing.DiscountType `json:"overallDiscountType" binding:"omitempty,oneof=PERCENTAGE FLAT"`
	ExtraCharge         decimal.Decimal      `json:"extraCharge"`
	AmountPaid          decimal.Decimal      `json:"amountPaid"`
}

// RecordPaymentRequest adds a payment amount against a saved document.
type RecordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Note   string          `json:"note"`
}

// InvoiceItemResponse mirrors a frozen invoice line.
type InvoiceItemResponse struct {
	InvoiceItemID       string          `json:"invoiceItemID"`
	ProductID           string          `json:"productID"`
	ProductName         string          `json:"productName"`
	UnitPrice           decimal.Decimal `json:"unitPrice"`
	Quantity            int64           `json:"quantity"`
	DiscountPercent     decimal.Decimal `json:"discountPercent"`
	TaxPercent          decimal.Decimal `json:"taxPercent"`
	SellingPricePerUnit decimal.Decimal `json:"sellingPricePerUnit"`
	LineTotal           decimal.Decimal `json:"lineTotal"`
}

// InvoiceResponse defines the data returned for a sales invoice.
type InvoiceResponse struct {
	InvoiceID           string                `json:"invoiceID"`
	InvoiceNumber       string                `json:"invoiceNumber"`
	CustomerID          string                `json:"customerID"`
	InvoiceDate         time.Time             `json:"invoiceDate"`
	Items               []InvoiceItemResponse `json:"items"`
	OverallDiscount     decimal.Decimal       `json:"overallDiscount"`
	OverallDiscountType pricing.DiscountType  `json:"overallDiscountType"`
	ExtraCharge         decimal.Decimal       `json:"extraCharge"`
	SubTotal            decimal.Decimal       `json:"subTotal"`
	DiscountAmount      decimal.Decimal       `json:"discountAmount"`
	GrandTotal          decimal.Decimal       `json:"grandTotal"`
	AmountPaid          decimal.Decimal       `json:"amountPaid"`
	Balance             decimal.Decimal       `json:"balance"`
	PaymentStatus       pricing.PaymentStatus `json:"paymentStatus"`
	CreatedAt           time.Time             `json:"createdAt"`
	CreatedBy           string                `json:"createdBy"`
	LastUpdatedAt       time.Time             `json:"lastUpdatedAt"`
}

// ListInvoicesResponse wraps a page of invoices.
type ListInvoicesResponse struct {
	Invoices  []InvoiceResponse `json:"invoices"`
	NextToken string            `json:"nextToken,omitempty"`
}

// ToInvoiceItemResponse converts a domain.InvoiceItem to its DTO.
func ToInvoiceItemResponse(item *domain.InvoiceItem) InvoiceItemResponse {
	return InvoiceItemResponse{
		InvoiceItemID:       item.InvoiceItemID,
		ProductID:           item.ProductID,
		ProductName:         item.ProductName,
		UnitPrice:           item.UnitPrice,
		Quantity:            item.Quantity,
		DiscountPercent:     item.DiscountPercent,
		TaxPercent:          item.TaxPercent,
		SellingPricePerUnit: item.SellingPricePerUnit,
		LineTotal:           item.LineTotal,
	}
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse DTO
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, len(inv.Items))
	for i, item := range inv.Items {
		items[i] = ToInvoiceItemResponse(&item)
	}
	return InvoiceResponse{
		InvoiceID:           inv.InvoiceID,
		InvoiceNumber:       inv.InvoiceNumber,
		CustomerID:          inv.CustomerID,
		InvoiceDate:         inv.InvoiceDate,
		Items:               items,
		OverallDiscount:     inv.OverallDiscount,
		OverallDiscountType: inv.OverallDiscountType,
		ExtraCharge:         inv.ExtraCharge,
		SubTotal:            inv.SubTotal,
		DiscountAmount:      inv.DiscountAmount,
		GrandTotal:          inv.GrandTotal,
		AmountPaid:          inv.AmountPaid,
		Balance:             inv.Balance,
		PaymentStatus:       inv.PaymentStatus,
		CreatedAt:           inv.CreatedAt,
		CreatedBy:           inv.CreatedBy,
		LastUpdatedAt:       inv.LastUpdatedAt,
	}
}

// ToListInvoicesResponse converts a page of domain.Invoice to the list DTO
func ToListInvoicesResponse(invoices []domain.Invoice, nextToken string) ListInvoicesResponse {
	res := make([]InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		res[i] = ToInvoiceResponse(&inv)
	}
	return ListInvoicesResponse{Invoices: res, NextToken: nextToken}
}
