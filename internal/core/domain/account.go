package domain

// AccountCategory defines the fundamental accounting type of an account.
type AccountCategory string

const (
	Asset     AccountCategory = "ASSET"
	Liability AccountCategory = "LIABILITY"
	Equity    AccountCategory = "EQUITY"
	Revenue   AccountCategory = "REVENUE"
	Expense   AccountCategory = "EXPENSE"
)

// Account is one entry in the chart of accounts. Journal lines reference
// accounts by ID; the chart itself is supplied by the data source and the
// core only checks that a value was chosen.
type Account struct {
	AccountID string          `json:"accountID"` // Primary Key (e.g., UUID)
	Code      string          `json:"code"`      // User-facing account code (e.g., "2010")
	Name      string          `json:"name"`
	Category  AccountCategory `json:"category"`
	IsActive  bool            `json:"isActive"`
	AuditFields
}
