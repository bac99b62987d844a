package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry represents a single, balanced double-entry record composed of
// two or more lines. Entries are replaced wholesale on edit, never partially
// mutated.
type JournalEntry struct {
	EntryID     string        `json:"entryID"`     // Primary Key (e.g., UUID)
	EntryNumber string        `json:"entryNumber"` // Assigned by the repository, opaque to the core
	EntryDate   time.Time     `json:"entryDate"`
	Description string        `json:"description"`
	Reference   string        `json:"reference"` // Nullable
	Lines       []JournalLine `json:"lines"`
	AuditFields
}

// JournalLine is one debit-or-credit component of a journal entry. Exactly
// one of DebitAmount/CreditAmount is non-zero on a valid line; insertion
// order is meaningful for display only.
type JournalLine struct {
	LineID       string          `json:"lineID"`  // Primary Key (e.g., UUID)
	EntryID      string          `json:"entryID"` // FK -> journal_entries.entry_id (Not Null)
	AccountID    string          `json:"accountID"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
	Description  string          `json:"description"` // Nullable
}
