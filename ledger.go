package homesim

import (
	"fmt"
	"iter"
	"slices"
)

// Transaction is a single dated double-entry posting.
type Transaction struct {
	Description string
	Debit       Account
	Credit      Account
	Amount      Money
	Date        Date
}

// NewTransaction creates a validated posting: the debit and credit accounts
// must differ, and the amount must not be negative.
func NewTransaction(description string, debit, credit Account, amount Money, on Date) (Transaction, error) {
	if debit == credit {
		return Transaction{}, fmt.Errorf("%w: transaction %q debits and credits the same account %s", ErrDomain, description, debit)
	}
	if amount.IsNegative() {
		return Transaction{}, fmt.Errorf("%w: transaction %q has negative amount %s", ErrDomain, description, amount)
	}
	return Transaction{
		Description: description,
		Debit:       debit,
		Credit:      credit,
		Amount:      amount,
		Date:        on,
	}, nil
}

// MarshalJSON encodes the record as a mapping with a fixed field order. This
// is the output boundary: the amount becomes #,##0.00 text and the date
// YYYY-MM-DD text here, and nowhere else.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("description", t.Description)
	w.Append("debit", t.Debit)
	w.Append("credit", t.Credit)
	w.Append("amount", t.Amount.Display())
	w.Append("date", t.Date)
	// The currency only appears when a scenario overrides the default.
	if c := t.Amount.Currency(); c != DefaultCurrency {
		w.Optional("currency", c)
	}
	return w.MarshalJSON()
}

// Ledger is an ordered sequence of transactions representing all simulated
// financial events.
//
// The order is category-then-chronological: each stream handler appends its
// own chronologically ordered records in a fixed category order. It is not a
// single global date sort; SortedByDate provides that view.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates a ledger over the given transactions. The slice is owned
// by the ledger afterwards; ledgers are never mutated once built.
func NewLedger(transactions ...Transaction) *Ledger {
	return &Ledger{transactions: transactions}
}

// Len returns the number of transactions.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions returns an iterator over the transactions in ledger order.
func (l *Ledger) Transactions() iter.Seq[Transaction] {
	return slices.Values(l.transactions)
}

// Records returns a copy of the transactions in ledger order.
func (l *Ledger) Records() []Transaction { return slices.Clone(l.transactions) }

// SortedByDate returns a new ledger with the same transactions in global
// chronological order. Records on the same date keep their ledger order.
func (l *Ledger) SortedByDate() *Ledger {
	sorted := slices.Clone(l.transactions)
	slices.SortStableFunc(sorted, func(a, b Transaction) int {
		switch {
		case a.Date.Before(b.Date):
			return -1
		case b.Date.Before(a.Date):
			return 1
		default:
			return 0
		}
	})
	return NewLedger(sorted...)
}

// Equity folds the ledger into assets minus liabilities, applying the
// debit/credit conventions: a debit increases assets, a credit decreases
// them; a credit increases liabilities, a debit decreases them. Amounts stay
// numeric throughout.
func (l *Ledger) Equity() Money {
	var assets, liabilities Money
	for _, t := range l.transactions {
		switch t.Debit {
		case Assets:
			assets = assets.Add(t.Amount)
		case Liabilities:
			liabilities = liabilities.Sub(t.Amount)
		}
		switch t.Credit {
		case Assets:
			assets = assets.Sub(t.Amount)
		case Liabilities:
			liabilities = liabilities.Add(t.Amount)
		}
	}
	return assets.Sub(liabilities)
}
