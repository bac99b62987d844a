package dto

import (
	"time"

	"github.com/bookkeep/payables_app/internal/core/domain"
	"github.com/bookkeep/payables_app/internal/core/ledger"
	"github.com/shopspring/decimal"
)

// JournalLineInput is one proposed debit-or-credit line of an entry.
// Amounts default to zero when omitted; the core validator enforces the
// exactly-one-side rule, so no binding constraint beyond the account here.
type JournalLineInput struct {
	AccountID    string          `json:"accountID"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
	Description  string          `json:"description"`
}

// CreateJournalEntryRequest defines the payload for a new journal entry.
// Structural and balance validation happens in the core validator so every
// violation is reported together, not through binding tags one at a time.
type CreateJournalEntryRequest struct {
	EntryDate   time.Time          `json:"entryDate" binding:"required"`
	Description string             `json:"description"`
	Reference   string             `json:"reference"`
	Lines       []JournalLineInput `json:"lines"`
}

// UpdateJournalEntryRequest replaces an entry wholesale, lines included.
type UpdateJournalEntryRequest = CreateJournalEntryRequest

// ToEntryDraft converts the request into the core validator's draft type.
func (r CreateJournalEntryRequest) ToEntryDraft() ledger.EntryDraft {
	lines := make([]ledger.LineDraft, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = ledger.LineDraft{
			AccountID:    l.AccountID,
			DebitAmount:  l.DebitAmount,
			CreditAmount: l.CreditAmount,
			Description:  l.Description,
		}
	}
	return ledger.EntryDraft{
		Description: r.Description,
		EntryDate:   r.EntryDate,
		Reference:   r.Reference,
		Lines:       lines,
	}
}

// JournalLineResponse defines the data returned for one entry line.
type JournalLineResponse struct {
	LineID       string          `json:"lineID"`
	AccountID    string          `json:"accountID"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
	Description  string          `json:"description,omitempty"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID     string                `json:"entryID"`
	EntryNumber string                `json:"entryNumber"`
	EntryDate   time.Time             `json:"entryDate"`
	Description string                `json:"description"`
	Reference   string                `json:"reference,omitempty"`
	Lines       []JournalLineResponse `json:"lines"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to its DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	lines := make([]JournalLineResponse, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = JournalLineResponse{
			LineID:       l.LineID,
			AccountID:    l.AccountID,
			DebitAmount:  l.DebitAmount,
			CreditAmount: l.CreditAmount,
			Description:  l.Description,
		}
	}
	return JournalEntryResponse{
		EntryID:     e.EntryID,
		EntryNumber: e.EntryNumber,
		EntryDate:   e.EntryDate,
		Description: e.Description,
		Reference:   e.Reference,
		Lines:       lines,
	}
}

// ToJournalEntryResponses converts a slice of entries to responses.
func ToJournalEntryResponses(entries []domain.JournalEntry) []JournalEntryResponse {
	responses := make([]JournalEntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = ToJournalEntryResponse(&e)
	}
	return responses
}
