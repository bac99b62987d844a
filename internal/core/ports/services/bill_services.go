package services

import (
	"context"

	"github.com/bookkeep/payables_app/internal/core/domain"
	"github.com/bookkeep/payables_app/internal/dto"
)

// BillReaderSvc defines read operations for bill data. Returned bills carry
// their display status (overdue derivation included), re-derived per read.
type BillReaderSvc interface {
	GetBillByID(ctx context.Context, billID string) (*domain.Bill, error)
	ListBillsBySupplier(ctx context.Context, supplierID string) ([]domain.Bill, error)
	ListBills(ctx context.Context, params dto.ListParams) ([]domain.Bill, error)
}

// BillWriterSvc defines write operations for bill data.
type BillWriterSvc interface {
	CreateBill(ctx context.Context, req dto.CreateBillRequest, creatorUserID string) (*domain.Bill, error)

	// UpdateBill replaces the editable fields of a bill. Bills that already
	// have payments applied are rejected with ErrBillHasPayments.
	UpdateBill(ctx context.Context, billID string, req dto.UpdateBillRequest, requestingUserID string) (*domain.Bill, error)

	// DeleteBill removes a bill after checking the configured authorization
	// code. Bills with payments cannot be deleted.
	DeleteBill(ctx context.Context, billID string, authCode string, requestingUserID string) error
}

// BillSvcFacade combines all bill-related service interfaces.
type BillSvcFacade interface {
	BillReaderSvc
	BillWriterSvc
}
