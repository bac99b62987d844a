package repositories

import (
	"context"

	"github.com/bookkeep/payables_app/internal/core/domain"
)

// JournalReaderRepository defines read operations for journal entries.
// Entries are always loaded with their lines in insertion order.
type JournalReaderRepository interface {
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)
	ListEntries(ctx context.Context, limit int, offset int) ([]domain.JournalEntry, error)
}

// JournalWriterRepository defines write operations for journal entries.
// SaveEntry assigns the entry number from a database sequence; the core
// treats it as opaque. UpdateEntry replaces the line set wholesale in one
// transaction; entries are never partially mutated.
type JournalWriterRepository interface {
	SaveEntry(ctx context.Context, entry domain.JournalEntry) (*domain.JournalEntry, error)
	UpdateEntry(ctx context.Context, entry domain.JournalEntry) error
	DeleteEntry(ctx context.Context, entryID string) error
}

// JournalRepositoryFacade combines all journal repository interfaces.
type JournalRepositoryFacade interface {
	JournalReaderRepository
	JournalWriterRepository
}
