package repositories

import (
	"context"

	"github.com/bookkeep/payables_app/internal/core/domain"
)

// BillReaderRepository defines read operations for bill data.
type BillReaderRepository interface {
	FindBillByID(ctx context.Context, billID string) (*domain.Bill, error)
	ListBillsBySupplier(ctx context.Context, supplierID string) ([]domain.Bill, error)
	ListBills(ctx context.Context, limit int, offset int) ([]domain.Bill, error)
}

// BillWriterRepository defines write operations for bill data. PaidAmount
// and Status are never written through UpdateBill; they only move through
// the payment repository's atomic operations.
type BillWriterRepository interface {
	SaveBill(ctx context.Context, bill domain.Bill) error
	UpdateBill(ctx context.Context, bill domain.Bill) error
	DeleteBill(ctx context.Context, billID string) error
}

// BillRepositoryFacade combines all bill repository interfaces.
type BillRepositoryFacade interface {
	BillReaderRepository
	BillWriterRepository
}
