package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bookkeep/payables_app/internal/apperrors"
	"github.com/bookkeep/payables_app/internal/core/domain"
	"github.com/bookkeep/payables_app/internal/core/ledger"
	portssvc "github.com/bookkeep/payables_app/internal/core/ports/services"
	"github.com/bookkeep/payables_app/internal/core/services"
	"github.com/bookkeep/payables_app/internal/dto"
	"github.com/bookkeep/payables_app/internal/handlers"
	"github.com/bookkeep/payables_app/internal/middleware"
	"github.com/bookkeep/payables_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SupplierService ---

type MockSupplierService struct {
	mock.Mock
}

var _ portssvc.SupplierSvcFacade = (*MockSupplierService)(nil)

func (m *MockSupplierService) CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest, creatorUserID string) (*domain.Supplier, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supplier), args.Error(1)
}

func (m *MockSupplierService) UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest, requestingUserID string) (*domain.Supplier, error) {
	args := m.Called(ctx, supplierID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supplier), args.Error(1)
}

func (m *MockSupplierService) GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supplier), args.Error(1)
}

func (m *MockSupplierService) ListSuppliers(ctx context.Context, params dto.ListParams) ([]domain.Supplier, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Supplier), args.Error(1)
}

// --- Mock BillService ---

type MockBillService struct {
	mock.Mock
}

var _ portssvc.BillSvcFacade = (*MockBillService)(nil)

func (m *MockBillService) CreateBill(ctx context.Context, req dto.CreateBillRequest, creatorUserID string) (*domain.Bill, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockBillService) UpdateBill(ctx context.Context, billID string, req dto.UpdateBillRequest, requestingUserID string) (*domain.Bill, error) {
	args := m.Called(ctx, billID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockBillService) DeleteBill(ctx context.Context, billID string, authCode string, requestingUserID string) error {
	args := m.Called(ctx, billID, authCode, requestingUserID)
	return args.Error(0)
}

func (m *MockBillService) GetBillByID(ctx context.Context, billID string) (*domain.Bill, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockBillService) ListBillsBySupplier(ctx context.Context, supplierID string) ([]domain.Bill, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bill), args.Error(1)
}

func (m *MockBillService) ListBills(ctx context.Context, params dto.ListParams) ([]domain.Bill, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bill), args.Error(1)
}

// --- Mock PaymentService ---

type MockPaymentService struct {
	mock.Mock
}

var _ portssvc.PaymentSvcFacade = (*MockPaymentService)(nil)

func (m *MockPaymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, creatorUserID string) (*domain.Payment, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) VoidPayment(ctx context.Context, paymentID string, requestingUserID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) ListPaymentsByBill(ctx context.Context, billID string) ([]domain.Payment, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

// --- Mock JournalService ---

type MockJournalService struct {
	mock.Mock
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

func (m *MockJournalService) CreateEntry(ctx context.Context, req dto.CreateJournalEntryRequest, creatorUserID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) UpdateEntry(ctx context.Context, entryID string, req dto.UpdateJournalEntryRequest, requestingUserID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) DeleteEntry(ctx context.Context, entryID string, authCode string, requestingUserID string) error {
	args := m.Called(ctx, entryID, authCode, requestingUserID)
	return args.Error(0)
}

func (m *MockJournalService) ValidateDraft(req dto.CreateJournalEntryRequest) ledger.EntryErrors {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(ledger.EntryErrors)
}

func (m *MockJournalService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) ListEntries(ctx context.Context, params dto.ListParams) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

// --- Mock LedgerService ---

type MockLedgerService struct {
	mock.Mock
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

func (m *MockLedgerService) GetSupplierLedger(ctx context.Context, supplierID string) (*dto.SupplierLedgerResponse, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SupplierLedgerResponse), args.Error(1)
}

func (m *MockLedgerService) InvalidateSupplier(supplierID string) {
	m.Called(supplierID)
}

// --- Mock AccountService ---

type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// --- Suite ---

type HandlersTestSuite struct {
	suite.Suite
	router      *gin.Engine
	supplierSvc *MockSupplierService
	billSvc     *MockBillService
	paymentSvc  *MockPaymentService
	journalSvc  *MockJournalService
	ledgerSvc   *MockLedgerService
	accountSvc  *MockAccountService
}

func (s *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.supplierSvc = new(MockSupplierService)
	s.billSvc = new(MockBillService)
	s.paymentSvc = new(MockPaymentService)
	s.journalSvc = new(MockJournalService)
	s.ledgerSvc = new(MockLedgerService)
	s.accountSvc = new(MockAccountService)

	container := &portssvc.ServiceContainer{
		Supplier: s.supplierSvc,
		Bill:     s.billSvc,
		Payment:  s.paymentSvc,
		Journal:  s.journalSvc,
		Ledger:   s.ledgerSvc,
		Account:  s.accountSvc,
	}

	s.router = gin.New()
	s.router.Use(middleware.ActorMiddleware())
	handlers.RegisterRoutes(s.router, &config.Config{IsProduction: true}, container)
}

func (s *HandlersTestSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlersTestSuite) TestHealth() {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := s.serve(req)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("OK", w.Body.String())
}

func (s *HandlersTestSuite) TestGetSupplierLedger() {
	s.ledgerSvc.On("GetSupplierLedger", mock.Anything, "sup-1").Return(&dto.SupplierLedgerResponse{
		SupplierID: "sup-1",
		Rows: []dto.LedgerRowResponse{
			{ID: "bill-b1", Kind: "bill", Debit: decimal.NewFromInt(100), Balance: decimal.NewFromInt(100)},
		},
		TotalBilled:        decimal.NewFromInt(100),
		TotalPaid:          decimal.Zero,
		OutstandingBalance: decimal.NewFromInt(100),
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/suppliers/sup-1/ledger", nil)
	w := s.serve(req)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.SupplierLedgerResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("sup-1", resp.SupplierID)
	s.Len(resp.Rows, 1)
	s.Equal("bill-b1", resp.Rows[0].ID)
}

func (s *HandlersTestSuite) TestExportSupplierLedgerCSV() {
	s.ledgerSvc.On("GetSupplierLedger", mock.Anything, "sup-1").Return(&dto.SupplierLedgerResponse{
		SupplierID:         "sup-1",
		TotalBilled:        decimal.Zero,
		TotalPaid:          decimal.Zero,
		OutstandingBalance: decimal.Zero,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/suppliers/sup-1/ledger/export", nil)
	w := s.serve(req)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Header().Get("Content-Type"), "text/csv")
	s.Contains(w.Header().Get("Content-Disposition"), "supplier-ledger-sup-1.csv")
	s.Contains(w.Body.String(), "Date,Type,Reference,Description,Debit,Credit,Balance")
}

func (s *HandlersTestSuite) TestUpdateBillWithPaymentsForbidden() {
	s.billSvc.On("UpdateBill", mock.Anything, "bill-1", mock.Anything, "system").
		Return(nil, fmt.Errorf("%w: %w", apperrors.ErrForbidden, services.ErrBillHasPayments))

	body := bytes.NewBufferString(`{"billNumber":"BILL-2"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/bills/bill-1", body)
	req.Header.Set("Content-Type", "application/json")
	w := s.serve(req)

	s.Equal(http.StatusForbidden, w.Code)
	s.Contains(w.Body.String(), "payments")
}

func (s *HandlersTestSuite) TestDeleteBillPassesAuthCodeHeader() {
	s.billSvc.On("DeleteBill", mock.Anything, "bill-1", "s3cret", "alice").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/bills/bill-1", nil)
	req.Header.Set("X-Delete-Code", "s3cret")
	req.Header.Set("X-Actor-ID", "alice")
	w := s.serve(req)

	s.Equal(http.StatusNoContent, w.Code)
	s.billSvc.AssertExpectations(s.T())
}

func (s *HandlersTestSuite) TestCreateJournalEntryValidationFailure() {
	verr := &services.EntryValidationError{
		Errors: ledger.EntryErrors{
			{Kind: ledger.MissingDescription, Line: -1},
			{Kind: ledger.MissingAccount, Line: 0},
		},
	}
	s.journalSvc.On("CreateEntry", mock.Anything, mock.Anything, "system").Return(nil, verr)

	body := bytes.NewBufferString(`{"entryDate":"2024-03-01T00:00:00Z","lines":[{"debitAmount":"100"}]}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/journals", body)
	req.Header.Set("Content-Type", "application/json")
	w := s.serve(req)

	s.Equal(http.StatusBadRequest, w.Code)

	var resp struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Contains(resp.Fields, "description")
	s.Contains(resp.Fields, "lines[0].accountID")
}

func (s *HandlersTestSuite) TestValidateDraftEndpoint() {
	s.journalSvc.On("ValidateDraft", mock.Anything).Return(ledger.EntryErrors{
		{Kind: ledger.Unbalanced, Line: -1, DebitTotal: decimal.NewFromInt(100), CreditTotal: decimal.NewFromInt(50)},
	})

	body := bytes.NewBufferString(`{"entryDate":"2024-03-01T00:00:00Z","description":"x","lines":[]}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/journals/validate", body)
	req.Header.Set("Content-Type", "application/json")
	w := s.serve(req)

	s.Equal(http.StatusOK, w.Code)
	var resp struct {
		Valid  bool              `json:"valid"`
		Fields map[string]string `json:"fields"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.False(resp.Valid)
	s.Contains(resp.Fields, "balance")
}

func (s *HandlersTestSuite) TestCreatePayment() {
	now := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	s.paymentSvc.On("CreatePayment", mock.Anything, mock.Anything, "system").Return(&domain.Payment{
		PaymentID:   "pay-1",
		BillID:      "bill-1",
		Amount:      decimal.NewFromInt(400),
		PaymentDate: now,
	}, nil)

	body := bytes.NewBufferString(`{"billID":"bill-1","amount":"400","paymentDate":"2024-01-15T00:00:00Z"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", body)
	req.Header.Set("Content-Type", "application/json")
	w := s.serve(req)

	s.Equal(http.StatusCreated, w.Code)
	var resp dto.PaymentResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("pay-1", resp.PaymentID)
}

func (s *HandlersTestSuite) TestGetBillNotFound() {
	s.billSvc.On("GetBillByID", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bills/missing", nil)
	w := s.serve(req)

	s.Equal(http.StatusNotFound, w.Code)
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
