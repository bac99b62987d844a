package repositories

import (
	"context"
	"time"

	"github.com/bookkeep/payables_app/internal/core/domain"
)

// PaymentReaderRepository defines read operations for payment data.
type PaymentReaderRepository interface {
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)
	ListPaymentsByBill(ctx context.Context, billID string) ([]domain.Payment, error)
	// ListPaymentsBySupplier returns every payment applied to the
	// supplier's bills, voided ones included.
	ListPaymentsBySupplier(ctx context.Context, supplierID string) ([]domain.Payment, error)
}

// PaymentWriterRepository defines write operations for payment data. Both
// operations also adjust the parent bill's paid amount and status in the
// same database transaction so the two can never drift apart.
type PaymentWriterRepository interface {
	SavePayment(ctx context.Context, payment domain.Payment, bill domain.Bill) error
	MarkPaymentVoided(ctx context.Context, paymentID string, voidedAt time.Time, bill domain.Bill) error
}

// PaymentRepositoryFacade combines all payment repository interfaces.
type PaymentRepositoryFacade interface {
	PaymentReaderRepository
	PaymentWriterRepository
}
