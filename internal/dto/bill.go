package dto

import (
	"time"

	"github.com/bookkeep/payables_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBillRequest defines the payload for recording a received bill.
type CreateBillRequest struct {
	SupplierID  string          `json:"supplierID" binding:"required"`
	BillNumber  string          `json:"billNumber" binding:"required"`
	BillDate    time.Time       `json:"billDate" binding:"required"`
	DueDate     *time.Time      `json:"dueDate"`
	TotalAmount decimal.Decimal `json:"totalAmount" binding:"required"`
	Notes       string          `json:"notes"`
}

// UpdateBillRequest defines the payload for editing a bill. Only bills
// without payments accept edits; paid amount and status are never editable.
type UpdateBillRequest struct {
	BillNumber  *string          `json:"billNumber"`
	BillDate    *time.Time       `json:"billDate"`
	DueDate     *time.Time       `json:"dueDate"`
	TotalAmount *decimal.Decimal `json:"totalAmount"`
	Notes       *string          `json:"notes"`
}

// BillResponse defines the data returned for a bill. Status is the display
// status: overdue is derived from balance and due date at read time.
type BillResponse struct {
	BillID      string          `json:"billID"`
	SupplierID  string          `json:"supplierID"`
	BillNumber  string          `json:"billNumber"`
	BillDate    time.Time       `json:"billDate"`
	DueDate     *time.Time      `json:"dueDate,omitempty"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	PaidAmount  decimal.Decimal `json:"paidAmount"`
	Balance     decimal.Decimal `json:"balance"`
	Status      string          `json:"status"`
	Notes       string          `json:"notes,omitempty"`
}

// ToBillResponse converts a domain.Bill to BillResponse DTO. The caller is
// expected to have decorated Status with the display classification already.
func ToBillResponse(b *domain.Bill) BillResponse {
	return BillResponse{
		BillID:      b.BillID,
		SupplierID:  b.SupplierID,
		BillNumber:  b.BillNumber,
		BillDate:    b.BillDate,
		DueDate:     b.DueDate,
		TotalAmount: b.TotalAmount,
		PaidAmount:  b.PaidAmount,
		Balance:     b.Balance(),
		Status:      string(b.Status),
		Notes:       b.Notes,
	}
}

// ToBillResponses converts a slice of domain.Bill to responses.
func ToBillResponses(bills []domain.Bill) []BillResponse {
	responses := make([]BillResponse, len(bills))
	for i, b := range bills {
		responses[i] = ToBillResponse(&b)
	}
	return responses
}
