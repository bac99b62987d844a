package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/bookkeep/payables_app/internal/apperrors"
	"github.com/bookkeep/payables_app/internal/core/domain"
	"github.com/bookkeep/payables_app/internal/core/services"
	"github.com/bookkeep/payables_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newBillFixture(paid float64) *domain.Bill {
	return &domain.Bill{
		BillID:      "bill-1",
		SupplierID:  "sup-1",
		BillNumber:  "BILL-001",
		BillDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		TotalAmount: decimal.NewFromInt(1000),
		PaidAmount:  decimal.NewFromFloat(paid),
		Status:      domain.BillReceived,
	}
}

func TestBillService_CreateBill(t *testing.T) {
	billRepo := new(MockBillRepository)
	supplierRepo := new(MockSupplierRepository)
	ledgerSvc := new(MockLedgerService)
	svc := services.NewBillService(billRepo, supplierRepo, ledgerSvc, "")

	supplierRepo.On("FindSupplierByID", mock.Anything, "sup-1").Return(&domain.Supplier{SupplierID: "sup-1"}, nil)
	billRepo.On("SaveBill", mock.Anything, mock.AnythingOfType("domain.Bill")).Return(nil)
	ledgerSvc.On("InvalidateSupplier", "sup-1").Return()

	bill, err := svc.CreateBill(context.Background(), dto.CreateBillRequest{
		SupplierID:  "sup-1",
		BillNumber:  "BILL-001",
		BillDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		TotalAmount: decimal.NewFromInt(1000),
	}, "user-1")

	assert.NoError(t, err)
	assert.Equal(t, domain.BillReceived, bill.Status)
	assert.True(t, bill.PaidAmount.IsZero())
	billRepo.AssertExpectations(t)
	ledgerSvc.AssertExpectations(t)
}

func TestBillService_CreateBill_NonPositiveAmount(t *testing.T) {
	svc := services.NewBillService(new(MockBillRepository), new(MockSupplierRepository), new(MockLedgerService), "")

	_, err := svc.CreateBill(context.Background(), dto.CreateBillRequest{
		SupplierID:  "sup-1",
		BillNumber:  "BILL-001",
		BillDate:    time.Now(),
		TotalAmount: decimal.Zero,
	}, "user-1")

	assert.ErrorIs(t, err, services.ErrBillAmountNotPositive)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestBillService_UpdateBill_RejectedWhenPaymentsExist(t *testing.T) {
	billRepo := new(MockBillRepository)
	svc := services.NewBillService(billRepo, new(MockSupplierRepository), new(MockLedgerService), "")

	billRepo.On("FindBillByID", mock.Anything, "bill-1").Return(newBillFixture(400), nil)

	newNumber := "BILL-001-REV"
	_, err := svc.UpdateBill(context.Background(), "bill-1", dto.UpdateBillRequest{BillNumber: &newNumber}, "user-1")

	assert.ErrorIs(t, err, services.ErrBillHasPayments)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	billRepo.AssertNotCalled(t, "UpdateBill", mock.Anything, mock.Anything)
}

func TestBillService_UpdateBill_AllowedWithoutPayments(t *testing.T) {
	billRepo := new(MockBillRepository)
	ledgerSvc := new(MockLedgerService)
	svc := services.NewBillService(billRepo, new(MockSupplierRepository), ledgerSvc, "")

	billRepo.On("FindBillByID", mock.Anything, "bill-1").Return(newBillFixture(0), nil)
	billRepo.On("UpdateBill", mock.Anything, mock.AnythingOfType("domain.Bill")).Return(nil)
	ledgerSvc.On("InvalidateSupplier", "sup-1").Return()

	newTotal := decimal.NewFromInt(1200)
	bill, err := svc.UpdateBill(context.Background(), "bill-1", dto.UpdateBillRequest{TotalAmount: &newTotal}, "user-1")

	assert.NoError(t, err)
	assert.True(t, bill.TotalAmount.Equal(newTotal))
	ledgerSvc.AssertExpectations(t)
}

func TestBillService_DeleteBill_AuthorizationCode(t *testing.T) {
	billRepo := new(MockBillRepository)
	ledgerSvc := new(MockLedgerService)
	svc := services.NewBillService(billRepo, new(MockSupplierRepository), ledgerSvc, "s3cret")

	// Missing code is rejected before any repository call.
	err := svc.DeleteBill(context.Background(), "bill-1", "", "user-1")
	assert.ErrorIs(t, err, services.ErrAuthCodeRequired)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	// Wrong code gets its own distinct error.
	err = svc.DeleteBill(context.Background(), "bill-1", "nope", "user-1")
	assert.ErrorIs(t, err, services.ErrAuthCodeInvalid)
	billRepo.AssertNotCalled(t, "FindBillByID", mock.Anything, mock.Anything)

	// Correct code goes through.
	billRepo.On("FindBillByID", mock.Anything, "bill-1").Return(newBillFixture(0), nil)
	billRepo.On("DeleteBill", mock.Anything, "bill-1").Return(nil)
	ledgerSvc.On("InvalidateSupplier", "sup-1").Return()

	err = svc.DeleteBill(context.Background(), "bill-1", "s3cret", "user-1")
	assert.NoError(t, err)
	billRepo.AssertExpectations(t)
}

func TestBillService_DeleteBill_RejectedWhenPaymentsExist(t *testing.T) {
	billRepo := new(MockBillRepository)
	svc := services.NewBillService(billRepo, new(MockSupplierRepository), new(MockLedgerService), "")

	billRepo.On("FindBillByID", mock.Anything, "bill-1").Return(newBillFixture(250), nil)

	err := svc.DeleteBill(context.Background(), "bill-1", "", "user-1")

	assert.ErrorIs(t, err, services.ErrBillHasPayments)
	billRepo.AssertNotCalled(t, "DeleteBill", mock.Anything, mock.Anything)
}

func TestBillService_GetBillByID_DerivesOverdue(t *testing.T) {
	billRepo := new(MockBillRepository)
	svc := services.NewBillService(billRepo, new(MockSupplierRepository), new(MockLedgerService), "")

	pastDue := time.Now().AddDate(0, 0, -10)
	bill := newBillFixture(0)
	bill.DueDate = &pastDue
	billRepo.On("FindBillByID", mock.Anything, "bill-1").Return(bill, nil)

	got, err := svc.GetBillByID(context.Background(), "bill-1")

	assert.NoError(t, err)
	assert.Equal(t, domain.BillOverdue, got.Status)
}

func TestBillService_GetBillByID_PaidNeverOverdue(t *testing.T) {
	billRepo := new(MockBillRepository)
	svc := services.NewBillService(billRepo, new(MockSupplierRepository), new(MockLedgerService), "")

	pastDue := time.Now().AddDate(0, 0, -10)
	bill := newBillFixture(1000)
	bill.Status = domain.BillPaid
	bill.DueDate = &pastDue
	billRepo.On("FindBillByID", mock.Anything, "bill-1").Return(bill, nil)

	got, err := svc.GetBillByID(context.Background(), "bill-1")

	assert.NoError(t, err)
	assert.Equal(t, domain.BillPaid, got.Status)
}
