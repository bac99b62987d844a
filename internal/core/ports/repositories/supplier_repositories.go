package repositories

import (
	"context"

	"github.com/bookkeep/payables_app/internal/core/domain"
)

// SupplierReaderRepository defines read operations for supplier data.
// Suppliers are returned with TotalPayable already computed by the query;
// the core never recomputes that aggregate.
type SupplierReaderRepository interface {
	FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error)
}

// SupplierWriterRepository defines write operations for supplier data.
type SupplierWriterRepository interface {
	SaveSupplier(ctx context.Context, supplier domain.Supplier) error
	UpdateSupplier(ctx context.Context, supplier domain.Supplier) error
}

// SupplierRepositoryFacade combines all supplier repository interfaces.
type SupplierRepositoryFacade interface {
	SupplierReaderRepository
	SupplierWriterRepository
}
