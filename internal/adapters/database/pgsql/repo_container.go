package pgsql

import (
	portsrepo "github.com/bookkeep/payables_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds every pgsql-backed repository over one shared
// connection pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		SupplierRepo: NewPgxSupplierRepository(pool),
		BillRepo:     NewPgxBillRepository(pool),
		PaymentRepo:  NewPgxPaymentRepository(pool),
		JournalRepo:  NewPgxJournalRepository(pool),
		AccountRepo:  NewPgxAccountRepository(pool),
	}
}
