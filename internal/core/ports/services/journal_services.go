package services

import (
	"context"

	"github.com/bookkeep/payables_app/internal/core/domain"
	"github.com/bookkeep/payables_app/internal/core/ledger"
	"github.com/bookkeep/payables_app/internal/dto"
)

// JournalReaderSvc defines read operations for journal entries.
type JournalReaderSvc interface {
	GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)
	ListEntries(ctx context.Context, params dto.ListParams) ([]domain.JournalEntry, error)
}

// JournalWriterSvc defines write operations for journal entries.
type JournalWriterSvc interface {
	// CreateEntry validates the draft and persists it. Validation failures
	// come back as an *EntryValidationError carrying every field error.
	CreateEntry(ctx context.Context, req dto.CreateJournalEntryRequest, creatorUserID string) (*domain.JournalEntry, error)

	// UpdateEntry re-validates and replaces the entry's line set wholesale.
	UpdateEntry(ctx context.Context, entryID string, req dto.UpdateJournalEntryRequest, requestingUserID string) (*domain.JournalEntry, error)

	// DeleteEntry removes an entry after checking the configured
	// authorization code.
	DeleteEntry(ctx context.Context, entryID string, authCode string, requestingUserID string) error
}

// JournalValidatorSvc exposes the pure draft validation so callers can show
// live balance feedback while an entry is being edited.
type JournalValidatorSvc interface {
	ValidateDraft(req dto.CreateJournalEntryRequest) ledger.EntryErrors
}

// JournalSvcFacade combines all journal-related service interfaces.
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
	JournalValidatorSvc
}
