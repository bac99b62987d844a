package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a settlement applied against a single bill. Payments are never
// deleted: voiding zeroes their financial effect but keeps the audit record.
type Payment struct {
	PaymentID   string          `json:"paymentID"` // Primary Key (e.g., UUID)
	BillID      string          `json:"billID"`    // FK -> bills.bill_id (Not Null)
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate time.Time       `json:"paymentDate"`
	Method      string          `json:"method"`    // Nullable (e.g., "BANK", "CASH")
	Reference   string          `json:"reference"` // Nullable
	VoidedAt    *time.Time      `json:"voidedAt"`  // Set exactly once; no un-voiding
	AuditFields
}

// IsVoided reports whether the payment has been voided.
func (p *Payment) IsVoided() bool {
	return p.VoidedAt != nil
}
