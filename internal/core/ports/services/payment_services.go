package services

import (
	"context"

	"github.com/bookkeep/payables_app/internal/core/domain"
	"github.com/bookkeep/payables_app/internal/dto"
)

// PaymentReaderSvc defines read operations for payment data.
type PaymentReaderSvc interface {
	GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)
	ListPaymentsByBill(ctx context.Context, billID string) ([]domain.Payment, error)
}

// PaymentWriterSvc defines write operations for payment data.
type PaymentWriterSvc interface {
	// CreatePayment applies a payment to a bill and moves the bill's paid
	// amount and status with it atomically.
	CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, creatorUserID string) (*domain.Payment, error)

	// VoidPayment zeroes a payment's financial effect exactly once, keeping
	// the record for audit. Voiding twice returns ErrPaymentAlreadyVoided.
	VoidPayment(ctx context.Context, paymentID string, requestingUserID string) (*domain.Payment, error)
}

// PaymentSvcFacade combines all payment-related service interfaces.
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
}
