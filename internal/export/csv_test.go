package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/bookkeep/payables_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSupplierLedgerCSV(t *testing.T) {
	resp := &dto.SupplierLedgerResponse{
		SupplierID: "sup-1",
		Rows: []dto.LedgerRowResponse{
			{
				ID:        "bill-bill-1",
				Kind:      "bill",
				Date:      time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
				Reference: "BILL-001",
				Debit:     decimal.NewFromInt(1000),
				Balance:   decimal.NewFromInt(1000),
			},
			{
				ID:      "pay-pay-1",
				Kind:    "payment",
				Date:    time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
				Credit:  decimal.NewFromInt(400),
				Balance: decimal.NewFromInt(600),
			},
		},
		TotalBilled:        decimal.NewFromInt(1000),
		TotalPaid:          decimal.NewFromInt(400),
		OutstandingBalance: decimal.NewFromInt(600),
	}

	buf := &bytes.Buffer{}
	require.NoError(t, WriteSupplierLedgerCSV(buf, resp))

	records, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	require.NoError(t, err)
	// Header, two rows, three totals rows. The blank spacer line is dropped
	// by the reader.
	require.Len(t, records, 6)

	assert.Equal(t, ledgerHeader, records[0])
	assert.Equal(t, []string{"2024-01-05", "bill", "BILL-001", "", "1000.00", "0.00", "1000.00"}, records[1])
	assert.Equal(t, []string{"2024-01-20", "payment", "", "", "0.00", "400.00", "600.00"}, records[2])
	assert.Equal(t, "Total Billed", records[3][3])
	assert.Equal(t, "600.00", records[5][6])
}

func TestWriteSupplierLedgerCSV_VoidedRowMarked(t *testing.T) {
	resp := &dto.SupplierLedgerResponse{
		SupplierID: "sup-1",
		Rows: []dto.LedgerRowResponse{
			{
				ID:          "pay-pay-1",
				Kind:        "payment",
				Date:        time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
				Description: "wire transfer",
				Credit:      decimal.Zero,
				Balance:     decimal.Zero,
				Voided:      true,
			},
		},
	}

	buf := &bytes.Buffer{}
	require.NoError(t, WriteSupplierLedgerCSV(buf, resp))

	records, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "VOID wire transfer", records[1][3])
}

func TestWriteSupplierLedgerCSV_EmptyLedger(t *testing.T) {
	resp := &dto.SupplierLedgerResponse{
		SupplierID:         "sup-1",
		TotalBilled:        decimal.Zero,
		TotalPaid:          decimal.Zero,
		OutstandingBalance: decimal.Zero,
	}

	buf := &bytes.Buffer{}
	require.NoError(t, WriteSupplierLedgerCSV(buf, resp))

	records, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, "0.00", records[3][6])
}
