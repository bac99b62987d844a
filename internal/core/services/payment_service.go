package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bookkeep/payables_app/internal/apperrors"
	"github.com/bookkeep/payables_app/internal/core/domain"
	portsrepo "github.com/bookkeep/payables_app/internal/core/ports/repositories"
	portssvc "github.com/bookkeep/payables_app/internal/core/ports/services"
	"github.com/bookkeep/payables_app/internal/dto"
	"github.com/bookkeep/payables_app/internal/middleware"
	"github.com/google/uuid"
)

var (
	// ErrPaymentAmountNotPositive rejects zero or negative payments.
	ErrPaymentAmountNotPositive = errors.New("payment amount must be positive")
	// ErrPaymentExceedsBalance rejects payments above the outstanding balance.
	ErrPaymentExceedsBalance = errors.New("payment amount exceeds the bill's outstanding balance")
	// ErrPaymentAlreadyVoided blocks a second void; voiding is one-way and
	// happens at most once.
	ErrPaymentAlreadyVoided = errors.New("payment has already been voided")
)

// paymentService provides payment operations.
type paymentService struct {
	paymentRepo portsrepo.PaymentRepositoryFacade
	billRepo    portsrepo.BillReaderRepository
	ledgerSvc   portssvc.LedgerSvcFacade
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryFacade, billRepo portsrepo.BillReaderRepository, ledgerSvc portssvc.LedgerSvcFacade) portssvc.PaymentSvcFacade {
	return &paymentService{
		paymentRepo: paymentRepo,
		billRepo:    billRepo,
		ledgerSvc:   ledgerSvc,
	}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// CreatePayment applies a payment to a bill. The bill's paid amount and
// status move in the same repository transaction as the payment insert.
func (s *paymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, creatorUserID string) (*domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrPaymentAmountNotPositive)
	}

	bill, err := s.billRepo.FindBillByID(ctx, req.BillID)
	if err != nil {
		return nil, fmt.Errorf("failed to find bill %s: %w", req.BillID, err)
	}

	if req.Amount.GreaterThan(bill.Balance()) {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrPaymentExceedsBalance)
	}

	now := time.Now()
	payment := domain.Payment{
		PaymentID:   uuid.NewString(),
		BillID:      bill.BillID,
		Amount:      req.Amount,
		PaymentDate: req.PaymentDate,
		Method:      req.Method,
		Reference:   req.Reference,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	bill.PaidAmount = bill.PaidAmount.Add(req.Amount)
	if bill.Balance().IsZero() {
		bill.Status = domain.BillPaid
	} else {
		bill.Status = domain.BillPartial
	}
	bill.LastUpdatedAt = now
	bill.LastUpdatedBy = creatorUserID

	if err := s.paymentRepo.SavePayment(ctx, payment, *bill); err != nil {
		return nil, fmt.Errorf("failed to save payment: %w", err)
	}

	s.ledgerSvc.InvalidateSupplier(bill.SupplierID)
	logger.Info("Payment applied",
		slog.String("payment_id", payment.PaymentID),
		slog.String("bill_id", bill.BillID),
		slog.String("amount", payment.Amount.String()),
	)
	return &payment, nil
}

// VoidPayment zeroes a payment's financial effect exactly once. The payment
// record stays visible in history; the bill's paid amount drops back and
// its status is restored accordingly.
func (s *paymentService) VoidPayment(ctx context.Context, paymentID string, requestingUserID string) (*domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.IsVoided() {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrForbidden, ErrPaymentAlreadyVoided)
	}

	bill, err := s.billRepo.FindBillByID(ctx, payment.BillID)
	if err != nil {
		return nil, fmt.Errorf("failed to find bill %s: %w", payment.BillID, err)
	}

	now := time.Now()
	bill.PaidAmount = bill.PaidAmount.Sub(payment.Amount)
	if bill.PaidAmount.IsPositive() {
		bill.Status = domain.BillPartial
	} else {
		bill.Status = domain.BillReceived
	}
	bill.LastUpdatedAt = now
	bill.LastUpdatedBy = requestingUserID

	if err := s.paymentRepo.MarkPaymentVoided(ctx, paymentID, now, *bill); err != nil {
		return nil, fmt.Errorf("failed to void payment %s: %w", paymentID, err)
	}

	payment.VoidedAt = &now
	payment.LastUpdatedAt = now
	payment.LastUpdatedBy = requestingUserID

	s.ledgerSvc.InvalidateSupplier(bill.SupplierID)
	logger.Info("Payment voided",
		slog.String("payment_id", paymentID),
		slog.String("bill_id", bill.BillID),
	)
	return payment, nil
}

// GetPaymentByID retrieves one payment.
func (s *paymentService) GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	return s.paymentRepo.FindPaymentByID(ctx, paymentID)
}

// ListPaymentsByBill retrieves a bill's payments, voided ones included.
func (s *paymentService) ListPaymentsByBill(ctx context.Context, billID string) ([]domain.Payment, error) {
	return s.paymentRepo.ListPaymentsByBill(ctx, billID)
}
