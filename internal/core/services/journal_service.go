package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bookkeep/payables_app/internal/apperrors"
	"github.com/bookkeep/payables_app/internal/core/domain"
	"github.com/bookkeep/payables_app/internal/core/ledger"
	portsrepo "github.com/bookkeep/payables_app/internal/core/ports/repositories"
	portssvc "github.com/bookkeep/payables_app/internal/core/ports/services"
	"github.com/bookkeep/payables_app/internal/dto"
	"github.com/bookkeep/payables_app/internal/middleware"
	"github.com/google/uuid"
)

// EntryValidationError carries every field-scoped violation of a draft so
// handlers can render each message next to the offending input. It unwraps
// to apperrors.ErrValidation for generic error mapping.
type EntryValidationError struct {
	Errors ledger.EntryErrors
}

func (e *EntryValidationError) Error() string {
	return fmt.Sprintf("journal entry failed validation with %d violation(s)", len(e.Errors))
}

func (e *EntryValidationError) Unwrap() error {
	return apperrors.ErrValidation
}

// journalService provides journal entry operations.
type journalService struct {
	journalRepo    portsrepo.JournalRepositoryFacade
	deleteAuthCode string
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, deleteAuthCode string) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo:    journalRepo,
		deleteAuthCode: deleteAuthCode,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// ValidateDraft runs the pure entry validator without persisting anything,
// so callers can show live balance feedback while the entry is edited.
func (s *journalService) ValidateDraft(req dto.CreateJournalEntryRequest) ledger.EntryErrors {
	return ledger.ValidateEntry(req.ToEntryDraft())
}

// buildLines materializes request lines into domain lines for one entry.
func buildLines(entryID string, inputs []dto.JournalLineInput) []domain.JournalLine {
	lines := make([]domain.JournalLine, len(inputs))
	for i, l := range inputs {
		lines[i] = domain.JournalLine{
			LineID:       uuid.NewString(),
			EntryID:      entryID,
			AccountID:    l.AccountID,
			DebitAmount:  l.DebitAmount,
			CreditAmount: l.CreditAmount,
			Description:  l.Description,
		}
	}
	return lines
}

// CreateEntry validates and persists a new journal entry. The entry number
// is assigned by the repository and treated as opaque here.
func (s *journalService) CreateEntry(ctx context.Context, req dto.CreateJournalEntryRequest, creatorUserID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if errs := ledger.ValidateEntry(req.ToEntryDraft()); len(errs) > 0 {
		logger.Warn("Journal entry rejected by validator", slog.Int("violations", len(errs)))
		return nil, &EntryValidationError{Errors: errs}
	}

	now := time.Now()
	entryID := uuid.NewString()
	entry := domain.JournalEntry{
		EntryID:     entryID,
		EntryDate:   req.EntryDate,
		Description: strings.TrimSpace(req.Description),
		Reference:   req.Reference,
		Lines:       buildLines(entryID, req.Lines),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	saved, err := s.journalRepo.SaveEntry(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}

	logger.Info("Journal entry created",
		slog.String("entry_id", saved.EntryID),
		slog.String("entry_number", saved.EntryNumber),
	)
	return saved, nil
}

// UpdateEntry re-validates the draft and replaces the stored entry
// wholesale, lines included. Entries are never partially mutated.
func (s *journalService) UpdateEntry(ctx context.Context, entryID string, req dto.UpdateJournalEntryRequest, requestingUserID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if errs := ledger.ValidateEntry(req.ToEntryDraft()); len(errs) > 0 {
		logger.Warn("Journal entry update rejected by validator", slog.String("entry_id", entryID), slog.Int("violations", len(errs)))
		return nil, &EntryValidationError{Errors: errs}
	}

	existing, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	existing.EntryDate = req.EntryDate
	existing.Description = strings.TrimSpace(req.Description)
	existing.Reference = req.Reference
	existing.Lines = buildLines(entryID, req.Lines)
	existing.LastUpdatedAt = time.Now()
	existing.LastUpdatedBy = requestingUserID

	if err := s.journalRepo.UpdateEntry(ctx, *existing); err != nil {
		return nil, fmt.Errorf("failed to update journal entry %s: %w", entryID, err)
	}

	logger.Info("Journal entry replaced", slog.String("entry_id", entryID))
	return existing, nil
}

// DeleteEntry removes an entry after the authorization code check.
func (s *journalService) DeleteEntry(ctx context.Context, entryID string, authCode string, requestingUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := checkDeleteAuthCode(s.deleteAuthCode, authCode); err != nil {
		logger.Warn("Journal entry delete blocked by authorization code check", slog.String("entry_id", entryID))
		return fmt.Errorf("%w: %w", apperrors.ErrForbidden, err)
	}

	if err := s.journalRepo.DeleteEntry(ctx, entryID); err != nil {
		return err
	}

	logger.Info("Journal entry deleted", slog.String("entry_id", entryID), slog.String("deleted_by", requestingUserID))
	return nil
}

// GetEntryByID retrieves one entry with its lines.
func (s *journalService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	return s.journalRepo.FindEntryByID(ctx, entryID)
}

// ListEntries retrieves a paginated list of entries with lines.
func (s *journalService) ListEntries(ctx context.Context, params dto.ListParams) ([]domain.JournalEntry, error) {
	params.Normalize()
	return s.journalRepo.ListEntries(ctx, params.Limit, params.Offset)
}
