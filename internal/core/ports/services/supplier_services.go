package services

import (
	"context"

	"github.com/bookkeep/payables_app/internal/core/domain"
	"github.com/bookkeep/payables_app/internal/dto"
)

// SupplierReaderSvc defines read operations for supplier data.
type SupplierReaderSvc interface {
	// GetSupplierByID retrieves a supplier with its computed total payable.
	GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)

	// ListSuppliers retrieves a paginated list of suppliers.
	ListSuppliers(ctx context.Context, params dto.ListParams) ([]domain.Supplier, error)
}

// SupplierWriterSvc defines write operations for supplier data.
type SupplierWriterSvc interface {
	CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest, creatorUserID string) (*domain.Supplier, error)
	UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest, requestingUserID string) (*domain.Supplier, error)
}

// SupplierSvcFacade combines all supplier-related service interfaces.
type SupplierSvcFacade interface {
	SupplierReaderSvc
	SupplierWriterSvc
}
