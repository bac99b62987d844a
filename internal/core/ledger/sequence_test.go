package ledger_test

import (
	"testing"
	"time"

	"github.com/bookkeep/payables_app/internal/core/ledger"
	"github.com/stretchr/testify/assert"
)

func refRow(kind ledger.RowKind, id string, date time.Time) ledger.Row {
	return ledger.Row{Ref: ledger.RowRef{Kind: kind, ID: id}, Date: date}
}

func TestSequence_OrdersByDateThenRef(t *testing.T) {
	rows := []ledger.Row{
		refRow(ledger.KindPayment, "p1", day(2024, 3, 10)),
		refRow(ledger.KindBill, "b2", day(2024, 1, 5)),
		refRow(ledger.KindBill, "b1", day(2024, 2, 1)),
	}

	got := ledger.Sequence(rows)

	assert.Equal(t, "b2", got[0].Ref.ID)
	assert.Equal(t, "b1", got[1].Ref.ID)
	assert.Equal(t, "p1", got[2].Ref.ID)
}

func TestSequence_TieBreakIsDeterministic(t *testing.T) {
	sameDay := day(2024, 1, 1)
	rows := []ledger.Row{
		refRow(ledger.KindPayment, "p1", sameDay),
		refRow(ledger.KindBill, "b9", sameDay),
		refRow(ledger.KindBill, "b1", sameDay),
	}

	// "bill-b1" < "bill-b9" < "pay-p1" lexicographically, every run.
	for i := 0; i < 10; i++ {
		got := ledger.Sequence(rows)
		assert.Equal(t, "b1", got[0].Ref.ID)
		assert.Equal(t, "b9", got[1].Ref.ID)
		assert.Equal(t, "p1", got[2].Ref.ID)
	}
}

func TestSequence_DayGranularityIgnoresTimeOfDay(t *testing.T) {
	late := time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC)
	early := time.Date(2024, 1, 1, 0, 1, 0, 0, time.UTC)
	rows := []ledger.Row{
		refRow(ledger.KindPayment, "p1", early),
		refRow(ledger.KindBill, "b1", late),
	}

	got := ledger.Sequence(rows)

	// Same calendar day, so the ref string decides: bill before payment.
	assert.Equal(t, "b1", got[0].Ref.ID)
	assert.Equal(t, "p1", got[1].Ref.ID)
}

func TestSequence_MissingDateSortsFirst(t *testing.T) {
	rows := []ledger.Row{
		refRow(ledger.KindBill, "b1", day(2024, 1, 1)),
		refRow(ledger.KindPayment, "p-no-date", time.Time{}),
	}

	got := ledger.Sequence(rows)

	assert.Equal(t, "p-no-date", got[0].Ref.ID)
	assert.Equal(t, "b1", got[1].Ref.ID)
}

func TestSequence_DoesNotMutateInput(t *testing.T) {
	rows := []ledger.Row{
		refRow(ledger.KindBill, "b2", day(2024, 2, 1)),
		refRow(ledger.KindBill, "b1", day(2024, 1, 1)),
	}

	_ = ledger.Sequence(rows)

	assert.Equal(t, "b2", rows[0].Ref.ID, "input order must be preserved")
}
