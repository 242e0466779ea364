package homesim

import "fmt"

// Stream handlers turn each configuration category into transactions. Every
// handler receives immutable inputs and returns a freshly built slice; the
// simulator concatenates the results in a fixed order.

// assetRecords posts each asset once at the window start, debiting assets
// against revenues.
func assetRecords(items []PointItem, currency string, window Range) ([]Transaction, error) {
	return pointRecords(items, Assets, Revenues, currency, window.From)
}

// liabilityRecords posts each liability once at the window start, debiting
// expenses against liabilities.
func liabilityRecords(items []PointItem, currency string, window Range) ([]Transaction, error) {
	return pointRecords(items, Expenses, Liabilities, currency, window.From)
}

func pointRecords(items []PointItem, debit, credit Account, currency string, on Date) ([]Transaction, error) {
	records := make([]Transaction, 0, len(items))
	for _, item := range items {
		tx, err := NewTransaction(item.Description, debit, credit, M(item.Amount, currency), on)
		if err != nil {
			return nil, err
		}
		records = append(records, tx)
	}
	return records, nil
}

// expenseRecords expands each recurring expense over the window, debiting
// expenses against assets.
func expenseRecords(items []RecurringItem, currency string, window Range) ([]Transaction, error) {
	return recurringRecords(items, Expenses, Assets, currency, window)
}

// revenueRecords expands each recurring revenue over the window, debiting
// assets against revenues.
func revenueRecords(items []RecurringItem, currency string, window Range) ([]Transaction, error) {
	return recurringRecords(items, Assets, Revenues, currency, window)
}

func recurringRecords(items []RecurringItem, debit, credit Account, currency string, window Range) ([]Transaction, error) {
	var records []Transaction
	for _, item := range items {
		last := window.To
		if !item.Ends.IsZero() {
			last = item.Ends
		}
		for on := range Schedule(window.From, item.Period, last) {
			tx, err := NewTransaction(item.Description, debit, credit, M(item.Amount, currency), on)
			if err != nil {
				return nil, err
			}
			records = append(records, tx)
		}
	}
	return records, nil
}

// purchaseRecords dispatches each purchase to its variant's handler. The
// switch is exhaustive over the closed set of kinds; an unlisted kind is an
// error, never a silently dropped item.
func purchaseRecords(purchases []Purchase, currency string, window Range) ([]Transaction, error) {
	var records []Transaction
	for _, purchase := range purchases {
		switch p := purchase.(type) {
		case Property:
			propertyTxs, err := propertyRecords(p, currency)
			if err != nil {
				return nil, err
			}
			records = append(records, propertyTxs...)
		default:
			return nil, fmt.Errorf("%w: unsupported purchase kind %q", ErrConfiguration, purchase.Kind())
		}
	}
	return records, nil
}

// propertyRecords emits, in order: the stamp duty and the deposit at the
// purchase date, then the full level-payment schedule over the mortgage
// term. All three debit expenses against assets.
func propertyRecords(p Property, currency string) ([]Transaction, error) {
	duty := StampDuty(p.PurchasePrice, p.FirstHomeGrant, p.NewConstruction)
	records := make([]Transaction, 0, 2+p.Loan().Payments())

	tx, err := NewTransaction("Stamp Duty", Expenses, Assets, M(duty, currency), p.PurchaseDate)
	if err != nil {
		return nil, err
	}
	records = append(records, tx)

	tx, err = NewTransaction("Deposit for Property", Expenses, Assets, M(p.Deposit, currency), p.PurchaseDate)
	if err != nil {
		return nil, err
	}
	records = append(records, tx)

	// The payment amount stays numeric and unrounded here; rounding to two
	// decimals happens once at the output boundary.
	payment := M(p.Loan().Payment(), currency)
	lastPayment := p.PurchaseDate.AddYears(p.MortgageTerm)
	for on := range Schedule(p.PurchaseDate, p.RepaymentPeriod, lastPayment) {
		tx, err := NewTransaction("Repayment for Property", Expenses, Assets, payment, on)
		if err != nil {
			return nil, err
		}
		records = append(records, tx)
	}
	return records, nil
}
