// Package ledger holds the pure computation pipeline behind the supplier
// ledger view: merging bills and payments into rows, ordering them
// deterministically, accumulating a running balance and deriving display
// statuses. Nothing in this package performs I/O or holds state.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// RowKind tags the source record type behind a ledger row.
type RowKind string

const (
	KindBill    RowKind = "BILL"
	KindPayment RowKind = "PAYMENT"
)

// RowRef identifies the source record of a ledger row. Its String form
// ("bill-<id>" / "pay-<id>") is the tie-break key used by Sequence, so two
// refs compare exactly like the legacy concatenated identifiers did.
type RowRef struct {
	Kind RowKind `json:"kind"`
	ID   string  `json:"id"`
}

// String renders the ref in its legacy "bill-<id>" / "pay-<id>" form.
func (r RowRef) String() string {
	if r.Kind == KindPayment {
		return "pay-" + r.ID
	}
	return "bill-" + r.ID
}

// Row is one line of a supplier's unified ledger. Exactly one of
// Debit/Credit is non-zero, except for voided payments which carry zero on
// both sides but stay visible for audit. Balance is only meaningful within
// the full ordered sequence for one supplier.
type Row struct {
	Ref         RowRef          `json:"ref"`
	Date        time.Time       `json:"date"`
	Reference   string          `json:"reference"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
	Voided      bool            `json:"voided"`
}

// Totals aggregates a computed ledger. Outstanding always equals the final
// row's running balance (or zero for an empty ledger).
type Totals struct {
	TotalBilled decimal.Decimal `json:"totalBilled"`
	TotalPaid   decimal.Decimal `json:"totalPaid"`
	Outstanding decimal.Decimal `json:"outstandingBalance"`
}

// MergeStats reports data-integrity gaps encountered while merging. Dropped
// payments indicate an upstream consistency problem and are surfaced to the
// caller for logging instead of being silently discarded.
type MergeStats struct {
	DroppedPayments int `json:"droppedPayments"`
}

// dayOf truncates a timestamp to day granularity for date comparisons.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
