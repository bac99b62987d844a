package ledger_test

import (
	"testing"

	"github.com/bookkeep/payables_app/internal/core/domain"
	"github.com/bookkeep/payables_app/internal/core/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func computeLedger(supplierID string, bills []domain.Bill, payments []domain.Payment) ([]ledger.Row, ledger.Totals) {
	rows, _ := ledger.MergeSupplierRows(supplierID, bills, payments)
	out, totals := ledger.Accumulate(ledger.Sequence(rows))
	return out, totals
}

func TestAccumulate_RunningBalance(t *testing.T) {
	bills := []domain.Bill{testBill("b1", "sup-1", "BILL-001", 1000, day(2024, 1, 1))}
	payments := []domain.Payment{testPayment("p1", "b1", 400, day(2024, 1, 15))}

	rows, totals := computeLedger("sup-1", bills, payments)

	assert.Len(t, rows, 2)
	assert.True(t, rows[0].Balance.Equal(decimal.NewFromInt(1000)))
	assert.True(t, rows[1].Balance.Equal(decimal.NewFromInt(600)))

	assert.True(t, totals.TotalBilled.Equal(decimal.NewFromInt(1000)))
	assert.True(t, totals.TotalPaid.Equal(decimal.NewFromInt(400)))
	assert.True(t, totals.Outstanding.Equal(decimal.NewFromInt(600)))
}

func TestAccumulate_VoidedPaymentLeavesBalanceUntouched(t *testing.T) {
	voidedAt := day(2024, 2, 1)
	bills := []domain.Bill{testBill("b1", "sup-1", "BILL-001", 1000, day(2024, 1, 1))}
	payment := testPayment("p1", "b1", 400, day(2024, 1, 15))
	payment.VoidedAt = &voidedAt

	rows, totals := computeLedger("sup-1", bills, []domain.Payment{payment})

	assert.Len(t, rows, 2)
	assert.True(t, rows[0].Balance.Equal(decimal.NewFromInt(1000)))
	assert.True(t, rows[1].Balance.Equal(decimal.NewFromInt(1000)))
	assert.True(t, totals.Outstanding.Equal(decimal.NewFromInt(1000)))
}

// The final row's balance must agree exactly with the aggregate totals.
func TestAccumulate_FinalBalanceEqualsAggregate(t *testing.T) {
	bills := []domain.Bill{
		testBill("b1", "sup-1", "BILL-001", 1000, day(2024, 1, 1)),
		testBill("b2", "sup-1", "BILL-002", 250.50, day(2024, 1, 3)),
	}
	payments := []domain.Payment{
		testPayment("p1", "b1", 400, day(2024, 1, 15)),
		testPayment("p2", "b2", 100.25, day(2024, 1, 20)),
	}

	rows, totals := computeLedger("sup-1", bills, payments)

	assert.NotEmpty(t, rows)
	last := rows[len(rows)-1]
	assert.True(t, last.Balance.Equal(totals.Outstanding))
	assert.True(t, totals.Outstanding.Equal(totals.TotalBilled.Sub(totals.TotalPaid)))
}

func TestAccumulate_IsIdempotent(t *testing.T) {
	bills := []domain.Bill{
		testBill("b1", "sup-1", "BILL-001", 1000, day(2024, 1, 1)),
		testBill("b2", "sup-1", "BILL-002", 300, day(2024, 1, 2)),
	}
	sequenced := ledger.Sequence(func() []ledger.Row {
		rows, _ := ledger.MergeSupplierRows("sup-1", bills, nil)
		return rows
	}())

	first, firstTotals := ledger.Accumulate(sequenced)
	second, secondTotals := ledger.Accumulate(sequenced)

	assert.Equal(t, len(first), len(second))
	for i := range first {
		assert.True(t, first[i].Balance.Equal(second[i].Balance))
	}
	assert.True(t, firstTotals.Outstanding.Equal(secondTotals.Outstanding))
}

func TestAccumulate_DoesNotMutateInput(t *testing.T) {
	rows := []ledger.Row{
		{Ref: ledger.RowRef{Kind: ledger.KindBill, ID: "b1"}, Debit: decimal.NewFromInt(100), Credit: decimal.Zero},
	}

	out, _ := ledger.Accumulate(rows)

	assert.True(t, rows[0].Balance.IsZero(), "input rows must stay unaccumulated")
	assert.True(t, out[0].Balance.Equal(decimal.NewFromInt(100)))
}

func TestAccumulate_EmptyLedger(t *testing.T) {
	rows, totals := ledger.Accumulate(nil)

	assert.Empty(t, rows)
	assert.True(t, totals.TotalBilled.IsZero())
	assert.True(t, totals.TotalPaid.IsZero())
	assert.True(t, totals.Outstanding.IsZero())
}
