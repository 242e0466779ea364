package homesim

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Account is one of the five double-entry account categories.
//
// A debit increases Assets and Expenses and decreases Liabilities and
// Revenues; a credit is the mirror. Equity is derived from the ledger and is
// never posted to directly.
type Account int

const (
	Assets Account = iota
	Liabilities
	Equity
	Revenues
	Expenses
)

func (a Account) String() string {
	switch a {
	case Assets:
		return "assets"
	case Liabilities:
		return "liabilities"
	case Equity:
		return "equity"
	case Revenues:
		return "revenues"
	case Expenses:
		return "expenses"
	default:
		return "unknown"
	}
}

// ParseAccount parses an account category name.
func ParseAccount(s string) (Account, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "assets":
		return Assets, nil
	case "liabilities":
		return Liabilities, nil
	case "equity":
		return Equity, nil
	case "revenues":
		return Revenues, nil
	case "expenses":
		return Expenses, nil
	default:
		return Assets, fmt.Errorf("%w: unknown account %q", ErrConfiguration, s)
	}
}

// MarshalJSON encodes the account as its lowercase name.
func (a Account) MarshalJSON() ([]byte, error) { return json.Marshal(a.String()) }
