package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts go over the wire as JSON numbers, e.g. 2000 rather than "2000".
	decimal.MarshalJSONWithoutQuotes = true
}

// DateLayout is the stored and accepted form of a transaction date
const DateLayout = "2006-01-02"

// Kind selects the income or outgoing side of the ledger
type Kind string

const (
	KindIncome   Kind = "income"
	KindOutgoing Kind = "outgoing"
)

// ParseKind validates a kind name
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindIncome, KindOutgoing:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown transaction kind %q", s)
}

// Label is the capitalized name used in response messages
func (k Kind) Label() string {
	switch k {
	case KindIncome:
		return "Income"
	case KindOutgoing:
		return "Outgoing"
	}
	return string(k)
}

// Transaction represents a single income or outgoing record
type Transaction struct {
	ID          int64           `json:"id"`
	ProfileID   int64           `json:"profile_id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"` // Format: YYYY-MM-DD
}

// NewTransaction holds the fields supplied when recording a transaction
type NewTransaction struct {
	ProfileID   int64
	Description string
	Amount      decimal.Decimal
	Date        string
}
