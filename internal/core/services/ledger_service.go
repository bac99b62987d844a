package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/bookkeep/payables_app/internal/core/ledger"
	portsrepo "github.com/bookkeep/payables_app/internal/core/ports/repositories"
	portssvc "github.com/bookkeep/payables_app/internal/core/ports/services"
	"github.com/bookkeep/payables_app/internal/dto"
	"github.com/bookkeep/payables_app/internal/middleware"
	"golang.org/x/sync/singleflight"
)

// ledgerService runs the merge/sequence/accumulate pipeline over one
// supplier's bills and payments. Concurrent requests for the same supplier
// share a single load via singleflight, and each cached result is stamped
// with the supplier's generation at load start: a mutation bumps the
// generation, so a load that was already in flight when the mutation landed
// is discarded instead of overwriting newer state.
type ledgerService struct {
	billRepo    portsrepo.BillReaderRepository
	paymentRepo portsrepo.PaymentReaderRepository

	group singleflight.Group

	mu    sync.Mutex
	gens  map[string]uint64
	cache map[string]cachedLedger
}

type cachedLedger struct {
	gen  uint64
	resp *dto.SupplierLedgerResponse
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(billRepo portsrepo.BillReaderRepository, paymentRepo portsrepo.PaymentReaderRepository) portssvc.LedgerSvcFacade {
	return &ledgerService{
		billRepo:    billRepo,
		paymentRepo: paymentRepo,
		gens:        make(map[string]uint64),
		cache:       make(map[string]cachedLedger),
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// InvalidateSupplier marks the supplier's ledger stale after a mutation.
func (s *ledgerService) InvalidateSupplier(supplierID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gens[supplierID]++
	delete(s.cache, supplierID)
}

// GetSupplierLedger returns the supplier's computed ledger.
func (s *ledgerService) GetSupplierLedger(ctx context.Context, supplierID string) (*dto.SupplierLedgerResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	s.mu.Lock()
	if entry, ok := s.cache[supplierID]; ok && entry.gen == s.gens[supplierID] {
		s.mu.Unlock()
		return entry.resp, nil
	}
	startGen := s.gens[supplierID]
	s.mu.Unlock()

	v, err, _ := s.group.Do(supplierID, func() (interface{}, error) {
		bills, err := s.billRepo.ListBillsBySupplier(ctx, supplierID)
		if err != nil {
			return nil, fmt.Errorf("failed to load bills for supplier %s: %w", supplierID, err)
		}
		payments, err := s.paymentRepo.ListPaymentsBySupplier(ctx, supplierID)
		if err != nil {
			return nil, fmt.Errorf("failed to load payments for supplier %s: %w", supplierID, err)
		}

		rows, stats := ledger.MergeSupplierRows(supplierID, bills, payments)
		accumulated, totals := ledger.Accumulate(ledger.Sequence(rows))

		if stats.DroppedPayments > 0 {
			// An unresolvable bill reference points at an upstream
			// consistency gap; count it loudly instead of hiding it.
			logger.Warn("Dropped payments with unresolvable bill references",
				slog.String("supplier_id", supplierID),
				slog.Int("dropped_payments", stats.DroppedPayments),
			)
		}

		return dto.ToSupplierLedgerResponse(supplierID, accumulated, totals, stats), nil
	})
	if err != nil {
		return nil, err
	}
	resp := v.(*dto.SupplierLedgerResponse)

	// Only cache if no mutation landed while the load was in flight; a
	// stale result must not overwrite the newer state.
	s.mu.Lock()
	if s.gens[supplierID] == startGen {
		s.cache[supplierID] = cachedLedger{gen: startGen, resp: resp}
	}
	s.mu.Unlock()

	return resp, nil
}
