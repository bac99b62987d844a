package dto

import (
	"time"

	"github.com/bookkeep/payables_app/internal/core/ledger"
	"github.com/shopspring/decimal"
)

// LedgerRowResponse is one row of the supplier ledger as rendered to
// clients. ID keeps the legacy "bill-<id>" / "pay-<id>" form for stable row
// identity.
type LedgerRowResponse struct {
	ID          string          `json:"id"`
	Kind        string          `json:"type"`
	Date        time.Time       `json:"date"`
	Reference   string          `json:"reference,omitempty"`
	Description string          `json:"description,omitempty"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
	Voided      bool            `json:"voided,omitempty"`
}

// SupplierLedgerResponse is the full computed ledger for one supplier. The
// aggregate totals come from the same accumulation pass as the rows, so the
// exported figures can never drift from the on-screen ones.
type SupplierLedgerResponse struct {
	SupplierID         string              `json:"supplierID"`
	Rows               []LedgerRowResponse `json:"rows"`
	TotalBilled        decimal.Decimal     `json:"totalBilled"`
	TotalPaid          decimal.Decimal     `json:"totalPaid"`
	OutstandingBalance decimal.Decimal     `json:"outstandingBalance"`
	DroppedPayments    int                 `json:"droppedPayments,omitempty"`
}

// ToLedgerRowResponse converts a computed ledger.Row to its DTO.
func ToLedgerRowResponse(r ledger.Row) LedgerRowResponse {
	return LedgerRowResponse{
		ID:          r.Ref.String(),
		Kind:        string(r.Ref.Kind),
		Date:        r.Date,
		Reference:   r.Reference,
		Description: r.Description,
		Debit:       r.Debit,
		Credit:      r.Credit,
		Balance:     r.Balance,
		Voided:      r.Voided,
	}
}

// ToSupplierLedgerResponse assembles the ledger DTO from pipeline output.
func ToSupplierLedgerResponse(supplierID string, rows []ledger.Row, totals ledger.Totals, stats ledger.MergeStats) *SupplierLedgerResponse {
	rowResponses := make([]LedgerRowResponse, len(rows))
	for i, r := range rows {
		rowResponses[i] = ToLedgerRowResponse(r)
	}
	return &SupplierLedgerResponse{
		SupplierID:         supplierID,
		Rows:               rowResponses,
		TotalBilled:        totals.TotalBilled,
		TotalPaid:          totals.TotalPaid,
		OutstandingBalance: totals.Outstanding,
		DroppedPayments:    stats.DroppedPayments,
	}
}
