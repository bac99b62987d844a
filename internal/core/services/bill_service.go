package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bookkeep/payables_app/internal/apperrors"
	"github.com/bookkeep/payables_app/internal/core/domain"
	"github.com/bookkeep/payables_app/internal/core/ledger"
	portsrepo "github.com/bookkeep/payables_app/internal/core/ports/repositories"
	portssvc "github.com/bookkeep/payables_app/internal/core/ports/services"
	"github.com/bookkeep/payables_app/internal/dto"
	"github.com/bookkeep/payables_app/internal/middleware"
	"github.com/google/uuid"
)

var (
	// ErrBillHasPayments blocks edits and deletes once any payment has been
	// applied to a bill.
	ErrBillHasPayments = errors.New("bill cannot be changed after payments have been applied")
	// ErrBillAmountNotPositive rejects bills with a non-positive total.
	ErrBillAmountNotPositive = errors.New("bill total amount must be positive")
)

// billService provides bill operations.
type billService struct {
	billRepo       portsrepo.BillRepositoryFacade
	supplierRepo   portsrepo.SupplierReaderRepository
	ledgerSvc      portssvc.LedgerSvcFacade
	deleteAuthCode string
}

// NewBillService creates a new BillService. The ledger service is notified
// on every mutation so in-flight ledger loads are not cached stale.
func NewBillService(billRepo portsrepo.BillRepositoryFacade, supplierRepo portsrepo.SupplierReaderRepository, ledgerSvc portssvc.LedgerSvcFacade, deleteAuthCode string) portssvc.BillSvcFacade {
	return &billService{
		billRepo:       billRepo,
		supplierRepo:   supplierRepo,
		ledgerSvc:      ledgerSvc,
		deleteAuthCode: deleteAuthCode,
	}
}

var _ portssvc.BillSvcFacade = (*billService)(nil)

// classify decorates a bill with its display status for this read.
func classify(b *domain.Bill) {
	b.Status = ledger.DisplayStatus(b.Status, b.Balance(), b.DueDate, time.Now())
}

// CreateBill records a bill in the RECEIVED state with nothing paid yet.
func (s *billService) CreateBill(ctx context.Context, req dto.CreateBillRequest, creatorUserID string) (*domain.Bill, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.TotalAmount.IsPositive() {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrBillAmountNotPositive)
	}

	if _, err := s.supplierRepo.FindSupplierByID(ctx, req.SupplierID); err != nil {
		return nil, fmt.Errorf("failed to find supplier %s: %w", req.SupplierID, err)
	}

	now := time.Now()
	bill := domain.Bill{
		BillID:      uuid.NewString(),
		SupplierID:  req.SupplierID,
		BillNumber:  req.BillNumber,
		BillDate:    req.BillDate,
		DueDate:     req.DueDate,
		Notes:       req.Notes,
		TotalAmount: req.TotalAmount,
		Status:      domain.BillReceived,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.billRepo.SaveBill(ctx, bill); err != nil {
		return nil, fmt.Errorf("failed to save bill: %w", err)
	}

	s.ledgerSvc.InvalidateSupplier(bill.SupplierID)
	logger.Info("Bill created", slog.String("bill_id", bill.BillID), slog.String("supplier_id", bill.SupplierID))
	return &bill, nil
}

// GetBillByID retrieves a bill with its display status derived.
func (s *billService) GetBillByID(ctx context.Context, billID string) (*domain.Bill, error) {
	bill, err := s.billRepo.FindBillByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	classify(bill)
	return bill, nil
}

// ListBillsBySupplier retrieves a supplier's bills with display statuses.
func (s *billService) ListBillsBySupplier(ctx context.Context, supplierID string) ([]domain.Bill, error) {
	bills, err := s.billRepo.ListBillsBySupplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	for i := range bills {
		classify(&bills[i])
	}
	return bills, nil
}

// ListBills retrieves a paginated list of bills with display statuses.
func (s *billService) ListBills(ctx context.Context, params dto.ListParams) ([]domain.Bill, error) {
	params.Normalize()
	bills, err := s.billRepo.ListBills(ctx, params.Limit, params.Offset)
	if err != nil {
		return nil, err
	}
	for i := range bills {
		classify(&bills[i])
	}
	return bills, nil
}

// UpdateBill replaces the editable fields of a bill. Once any payment
// exists the bill is immutable and the edit is rejected, not ignored.
func (s *billService) UpdateBill(ctx context.Context, billID string, req dto.UpdateBillRequest, requestingUserID string) (*domain.Bill, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	bill, err := s.billRepo.FindBillByID(ctx, billID)
	if err != nil {
		return nil, err
	}

	if bill.HasPayments() {
		logger.Warn("Rejected edit of bill with payments", slog.String("bill_id", billID))
		return nil, fmt.Errorf("%w: %w", apperrors.ErrForbidden, ErrBillHasPayments)
	}

	if req.BillNumber != nil {
		bill.BillNumber = *req.BillNumber
	}
	if req.BillDate != nil {
		bill.BillDate = *req.BillDate
	}
	if req.DueDate != nil {
		bill.DueDate = req.DueDate
	}
	if req.Notes != nil {
		bill.Notes = *req.Notes
	}
	if req.TotalAmount != nil {
		if !req.TotalAmount.IsPositive() {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrBillAmountNotPositive)
		}
		bill.TotalAmount = *req.TotalAmount
	}
	bill.LastUpdatedAt = time.Now()
	bill.LastUpdatedBy = requestingUserID

	if err := s.billRepo.UpdateBill(ctx, *bill); err != nil {
		return nil, fmt.Errorf("failed to update bill %s: %w", billID, err)
	}

	s.ledgerSvc.InvalidateSupplier(bill.SupplierID)
	classify(bill)
	return bill, nil
}

// DeleteBill removes a bill. It requires the configured authorization code
// and refuses bills that already accrued payments.
func (s *billService) DeleteBill(ctx context.Context, billID string, authCode string, requestingUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := checkDeleteAuthCode(s.deleteAuthCode, authCode); err != nil {
		logger.Warn("Bill delete blocked by authorization code check", slog.String("bill_id", billID))
		return fmt.Errorf("%w: %w", apperrors.ErrForbidden, err)
	}

	bill, err := s.billRepo.FindBillByID(ctx, billID)
	if err != nil {
		return err
	}
	if bill.HasPayments() {
		return fmt.Errorf("%w: %w", apperrors.ErrForbidden, ErrBillHasPayments)
	}

	if err := s.billRepo.DeleteBill(ctx, billID); err != nil {
		return fmt.Errorf("failed to delete bill %s: %w", billID, err)
	}

	s.ledgerSvc.InvalidateSupplier(bill.SupplierID)
	logger.Info("Bill deleted", slog.String("bill_id", billID), slog.String("deleted_by", requestingUserID))
	return nil
}
