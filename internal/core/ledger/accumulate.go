package ledger

import "github.com/shopspring/decimal"

// Accumulate walks the sequenced rows once, left to right, stamping each row
// with its post-transaction running balance (debit increases, credit
// decreases, starting from zero). The input slice is not mutated: callers
// holding the unaccumulated rows never observe a half-updated pass.
//
// The returned Totals agree with the final row's balance by construction:
// Outstanding == TotalBilled - TotalPaid == out[len(out)-1].Balance.
func Accumulate(rows []Row) ([]Row, Totals) {
	out := make([]Row, len(rows))
	balance := decimal.Zero
	billed := decimal.Zero
	paid := decimal.Zero
	for i, r := range rows {
		balance = balance.Add(r.Debit).Sub(r.Credit)
		r.Balance = balance
		out[i] = r
		billed = billed.Add(r.Debit)
		paid = paid.Add(r.Credit)
	}
	return out, Totals{
		TotalBilled: billed,
		TotalPaid:   paid,
		Outstanding: billed.Sub(paid),
	}
}
