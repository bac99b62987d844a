package repositories

import (
	"context"

	"github.com/bookkeep/payables_app/internal/core/domain"
)

// AccountReaderRepository defines read operations for the chart of accounts.
type AccountReaderRepository interface {
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriterRepository defines write operations for the chart of accounts.
type AccountWriterRepository interface {
	SaveAccount(ctx context.Context, account domain.Account) error
}

// AccountRepositoryFacade combines all account repository interfaces.
type AccountRepositoryFacade interface {
	AccountReaderRepository
	AccountWriterRepository
}
