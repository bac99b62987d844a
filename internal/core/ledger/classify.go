package ledger

import (
	"time"

	"github.com/bookkeep/payables_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DisplayStatus derives the presentational status of a bill from its stored
// status, outstanding balance and due date. A bill that still owes money and
// whose due date (day granularity) lies strictly before today is shown as
// OVERDUE; paid bills and bills with a non-positive balance keep their
// stored status no matter how old the due date is.
//
// The result is re-derived on every read and never written back to storage.
func DisplayStatus(stored domain.BillStatus, balance decimal.Decimal, dueDate *time.Time, today time.Time) domain.BillStatus {
	if stored == domain.BillPaid || !balance.IsPositive() {
		return stored
	}
	if dueDate != nil && dayOf(*dueDate).Before(dayOf(today)) {
		return domain.BillOverdue
	}
	return stored
}
