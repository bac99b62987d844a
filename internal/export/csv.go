package export

import (
	"encoding/csv"
	"io"

	"github.com/bookkeep/payables_app/internal/dto"
)

var ledgerHeader = []string{"Date", "Type", "Reference", "Description", "Debit", "Credit", "Balance"}

// WriteSupplierLedgerCSV serialises a computed supplier ledger to CSV. The
// rows and totals come from the same accumulation pass, so the exported
// figures always match what the ledger endpoint returned.
func WriteSupplierLedgerCSV(w io.Writer, resp *dto.SupplierLedgerResponse) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(ledgerHeader); err != nil {
		return err
	}
	for _, row := range resp.Rows {
		description := row.Description
		if row.Voided {
			description = "VOID " + description
		}
		if err := writer.Write([]string{
			row.Date.Format("2006-01-02"),
			row.Kind,
			row.Reference,
			description,
			row.Debit.StringFixed(2),
			row.Credit.StringFixed(2),
			row.Balance.StringFixed(2),
		}); err != nil {
			return err
		}
	}

	records := [][]string{
		{},
		{"", "", "", "Total Billed", resp.TotalBilled.StringFixed(2), "", ""},
		{"", "", "", "Total Paid", "", resp.TotalPaid.StringFixed(2), ""},
		{"", "", "", "Outstanding Balance", "", "", resp.OutstandingBalance.StringFixed(2)},
	}
	for _, record := range records {
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
