package ledger

import (
	"github.com/bookkeep/payables_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MergeSupplierRows combines the bills and payments of one supplier into a
// flat list of ledger rows with Balance left unset; Sequence and Accumulate
// finish the pipeline. Bills become debit rows, active payments credit rows,
// voided payments zero/zero rows kept for audit visibility.
//
// The inputs may contain records for other suppliers: bills are filtered by
// SupplierID, payments by the owner of the bill they reference. A payment
// whose bill cannot be resolved at all is dropped and counted in MergeStats
// rather than aborting the merge; one bad record must not blank the view.
func MergeSupplierRows(supplierID string, bills []domain.Bill, payments []domain.Payment) ([]Row, MergeStats) {
	var stats MergeStats
	rows := make([]Row, 0, len(bills)+len(payments))

	billOwner := make(map[string]string, len(bills))
	for _, b := range bills {
		billOwner[b.BillID] = b.SupplierID
		if b.SupplierID != supplierID {
			continue
		}
		rows = append(rows, Row{
			Ref:         RowRef{Kind: KindBill, ID: b.BillID},
			Date:        b.BillDate,
			Reference:   b.BillNumber,
			Description: b.Notes,
			Debit:       b.TotalAmount,
			Credit:      decimal.Zero,
		})
	}

	for _, p := range payments {
		owner, ok := billOwner[p.BillID]
		if !ok {
			stats.DroppedPayments++
			continue
		}
		if owner != supplierID {
			continue
		}
		credit := p.Amount
		if p.IsVoided() {
			credit = decimal.Zero
		}
		rows = append(rows, Row{
			Ref:         RowRef{Kind: KindPayment, ID: p.PaymentID},
			Date:        p.PaymentDate,
			Reference:   p.Reference,
			Description: p.Method,
			Debit:       decimal.Zero,
			Credit:      credit,
			Voided:      p.IsVoided(),
		})
	}

	return rows, stats
}
