package services

import (
	"context"

	"github.com/bookkeep/payables_app/internal/dto"
)

// LedgerSvcFacade computes the unified bill/payment ledger for a supplier.
type LedgerSvcFacade interface {
	// GetSupplierLedger loads the supplier's bills and payments and runs
	// the merge/sequence/accumulate pipeline. Concurrent calls for the same
	// supplier share one load, and results from before a mutation are
	// discarded rather than cached.
	GetSupplierLedger(ctx context.Context, supplierID string) (*dto.SupplierLedgerResponse, error)

	// InvalidateSupplier marks the supplier's ledger stale after a
	// mutation; any in-flight load started earlier will not be cached.
	InvalidateSupplier(supplierID string)
}
