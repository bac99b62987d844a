package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillStatus is the lifecycle state of a bill. OVERDUE is display-only: it is
// derived at read time from the balance and due date and never persisted.
type BillStatus string

const (
	BillDraft    BillStatus = "DRAFT"
	BillReceived BillStatus = "RECEIVED"
	BillPartial  BillStatus = "PARTIAL"
	BillPaid     BillStatus = "PAID"
	BillOverdue  BillStatus = "OVERDUE"
)

// Bill represents a payable obligation to a supplier.
type Bill struct {
	BillID      string          `json:"billID"`     // Primary Key (e.g., UUID)
	SupplierID  string          `json:"supplierID"` // FK -> suppliers.supplier_id (Not Null)
	BillNumber  string          `json:"billNumber"` // Supplier-facing reference
	BillDate    time.Time       `json:"billDate"`
	DueDate     *time.Time      `json:"dueDate"` // Nullable
	Notes       string          `json:"notes"`   // Nullable
	TotalAmount decimal.Decimal `json:"totalAmount"`
	// PaidAmount only ever moves through successful payments (up) or a
	// payment void (back down). It is never edited directly.
	PaidAmount decimal.Decimal `json:"paidAmount"`
	Status     BillStatus      `json:"status"`
	AuditFields
}

// Balance returns the outstanding amount on the bill.
func (b *Bill) Balance() decimal.Decimal {
	return b.TotalAmount.Sub(b.PaidAmount)
}

// HasPayments reports whether any payment has been applied against the bill.
// Bills with payments cannot be edited.
func (b *Bill) HasPayments() bool {
	return b.PaidAmount.IsPositive()
}
