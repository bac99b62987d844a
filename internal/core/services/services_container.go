package services

import (
	portsrepo "github.com/bookkeep/payables_app/internal/core/ports/repositories"
	portssvc "github.com/bookkeep/payables_app/internal/core/ports/services"
	"github.com/bookkeep/payables_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The ledger service comes first: bill and payment mutations invalidate
	// its per-supplier state.
	container.Ledger = NewLedgerService(repos.BillRepo, repos.PaymentRepo)

	container.Supplier = NewSupplierService(repos.SupplierRepo)
	container.Bill = NewBillService(repos.BillRepo, repos.SupplierRepo, container.Ledger, cfg.DeleteAuthCode)
	container.Payment = NewPaymentService(repos.PaymentRepo, repos.BillRepo, container.Ledger)
	container.Journal = NewJournalService(repos.JournalRepo, cfg.DeleteAuthCode)
	container.Account = NewAccountService(repos.AccountRepo)

	return container
}
