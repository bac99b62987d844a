package domain

import "github.com/shopspring/decimal"

// Supplier is the aggregate root for accounts-payable data. Bills and
// payments are always scoped to exactly one supplier.
type Supplier struct {
	SupplierID    string `json:"supplierID"` // Primary Key (e.g., UUID)
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson"` // Nullable
	Email         string `json:"email"`         // Nullable
	Phone         string `json:"phone"`         // Nullable
	Address       string `json:"address"`       // Nullable
	IsActive      bool   `json:"isActive"`
	AuditFields
	// TotalPayable is the sum of outstanding bill balances. It is computed
	// by the repository at read time and never recomputed by the core.
	TotalPayable decimal.Decimal `json:"totalPayable"`
}
