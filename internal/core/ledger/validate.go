package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrorKind identifies one validation rule violated by a draft entry.
type ErrorKind string

const (
	MissingDescription ErrorKind = "MISSING_DESCRIPTION"
	InsufficientLines  ErrorKind = "INSUFFICIENT_LINES"
	MissingAccount     ErrorKind = "MISSING_ACCOUNT"
	InvalidLineAmount  ErrorKind = "INVALID_LINE_AMOUNT"
	Unbalanced         ErrorKind = "UNBALANCED"
)

// balanceTolerance absorbs rounding noise from float-sourced input. Amounts
// are exact decimals internally, so this only matters at the parsing edge.
var balanceTolerance = decimal.New(1, -2) // 0.01

// EntryDraft is a candidate journal entry as assembled by the caller, before
// any identifier has been assigned.
type EntryDraft struct {
	Description string
	EntryDate   time.Time
	Reference   string
	Lines       []LineDraft
}

// LineDraft is one proposed debit-or-credit line of an EntryDraft.
type LineDraft struct {
	AccountID    string
	DebitAmount  decimal.Decimal
	CreditAmount decimal.Decimal
	Description  string
}

// EntryError is a single field-scoped validation failure.
type EntryError struct {
	Kind ErrorKind
	// Line is the zero-based index of the offending line, or -1 for
	// entry-level errors.
	Line int
	// DebitTotal and CreditTotal are populated for Unbalanced so the caller
	// can show both sides next to the error.
	DebitTotal  decimal.Decimal
	CreditTotal decimal.Decimal
}

// Field returns the input path the error belongs to, suitable as a map key
// for rendering the message next to the offending input.
func (e EntryError) Field() string {
	switch e.Kind {
	case MissingDescription:
		return "description"
	case InsufficientLines:
		return "lines"
	case MissingAccount:
		return fmt.Sprintf("lines[%d].accountID", e.Line)
	case InvalidLineAmount:
		return fmt.Sprintf("lines[%d].amount", e.Line)
	case Unbalanced:
		return "balance"
	}
	return "entry"
}

// Message returns a user-facing description of the failure.
func (e EntryError) Message() string {
	switch e.Kind {
	case MissingDescription:
		return "description is required"
	case InsufficientLines:
		return "a journal entry needs at least two lines"
	case MissingAccount:
		return "select an account for this line"
	case InvalidLineAmount:
		return "enter exactly one of debit or credit, greater than zero"
	case Unbalanced:
		return fmt.Sprintf("debits (%s) must equal credits (%s)",
			e.DebitTotal.StringFixed(2), e.CreditTotal.StringFixed(2))
	}
	return "invalid entry"
}

// EntryErrors collects all rule violations of one draft. An empty slice
// means the draft is acceptable for submission.
type EntryErrors []EntryError

// Fields maps each error to its field path for display.
func (errs EntryErrors) Fields() map[string]string {
	if len(errs) == 0 {
		return nil
	}
	out := make(map[string]string, len(errs))
	for _, e := range errs {
		out[e.Field()] = e.Message()
	}
	return out
}

// ValidateEntry checks a draft entry against every rule independently and
// reports all violations together, so callers can surface live feedback per
// field rather than stopping at the first failure. It is pure: re-running it
// on every line edit is safe and expected.
func ValidateEntry(draft EntryDraft) EntryErrors {
	var errs EntryErrors

	if strings.TrimSpace(draft.Description) == "" {
		errs = append(errs, EntryError{Kind: MissingDescription, Line: -1})
	}

	if len(draft.Lines) < 2 {
		errs = append(errs, EntryError{Kind: InsufficientLines, Line: -1})
	}

	debits := decimal.Zero
	credits := decimal.Zero
	for i, line := range draft.Lines {
		if strings.TrimSpace(line.AccountID) == "" {
			errs = append(errs, EntryError{Kind: MissingAccount, Line: i})
		}
		hasDebit := line.DebitAmount.IsPositive()
		hasCredit := line.CreditAmount.IsPositive()
		if hasDebit == hasCredit || line.DebitAmount.IsNegative() || line.CreditAmount.IsNegative() {
			errs = append(errs, EntryError{Kind: InvalidLineAmount, Line: i})
		}
		debits = debits.Add(line.DebitAmount)
		credits = credits.Add(line.CreditAmount)
	}

	if debits.Sub(credits).Abs().GreaterThan(balanceTolerance) {
		errs = append(errs, EntryError{
			Kind:        Unbalanced,
			Line:        -1,
			DebitTotal:  debits,
			CreditTotal: credits,
		})
	}

	return errs
}
