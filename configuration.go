package homesim

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// Configuration is a declarative description of a household's financial
// position, decoded once per simulation run and immutable afterwards.
type Configuration struct {
	Runtime     Runtime
	Assets      []PointItem
	Liabilities []PointItem
	Purchases   []Purchase
	Expenses    []RecurringItem
	Revenues    []RecurringItem
}

// Runtime holds the simulation window bounds and the scenario currency.
// Zero dates mean "default relative to the caller's today".
type Runtime struct {
	StartDate Date
	EndDate   Date
	Currency  string
}

// Window resolves the simulation window: start defaults to today, end to
// today plus 365 days. Today is supplied by the caller so that the core
// never reads the process clock.
func (r Runtime) Window(today Date) Range {
	from := r.StartDate
	if from.IsZero() {
		from = today
	}
	to := r.EndDate
	if to.IsZero() {
		to = today.Add(365)
	}
	return NewRange(from, to)
}

func (r Runtime) currency() string {
	if r.Currency == "" {
		return DefaultCurrency
	}
	return r.Currency
}

// PointItem is an asset or liability posted once at the window start.
type PointItem struct {
	Description string
	Amount      decimal.Decimal
}

// RecurringItem is an expense or revenue repeating at a period over the
// window. A zero Ends means the window's end.
type RecurringItem struct {
	Description string
	Amount      decimal.Decimal
	Period      Period
	Ends        Date
}

// PurchaseKind identifies a purchase variant. The set is closed: decoding a
// configuration with an unlisted kind fails instead of dropping the item.
type PurchaseKind string

const KindProperty PurchaseKind = "property"

// Purchase is a tagged variant over the closed set of purchase kinds. Each
// variant carries its own payload and is constructed, validated, during
// configuration decoding.
type Purchase interface {
	Kind() PurchaseKind
}

// Property describes a property purchase financed by a deposit and an
// amortizing mortgage over the remainder.
type Property struct {
	PurchasePrice   decimal.Decimal
	Deposit         decimal.Decimal
	PurchaseDate    Date
	InterestRate    float64 // annual
	MortgageTerm    int     // years
	RepaymentPeriod Period

	// Concession flags, accepted but with no effect on the duty. See StampDuty.
	FirstHomeGrant  bool
	NewConstruction bool
}

func (Property) Kind() PurchaseKind { return KindProperty }

// Loan returns the mortgage implied by the purchase.
func (p Property) Loan() Loan {
	return Loan{
		Principal:  p.PurchasePrice.Sub(p.Deposit).InexactFloat64(),
		AnnualRate: p.InterestRate,
		TermYears:  p.MortgageTerm,
		Period:     p.RepaymentPeriod,
	}
}

func (p Property) validate() error {
	if p.Deposit.IsNegative() {
		return fmt.Errorf("%w: deposit %s is negative", ErrDomain, p.Deposit)
	}
	if p.PurchasePrice.LessThan(p.Deposit) {
		return fmt.Errorf("%w: deposit %s exceeds purchase price %s", ErrDomain, p.Deposit, p.PurchasePrice)
	}
	if p.MortgageTerm <= 0 {
		return fmt.Errorf("%w: mortgage term must be positive, got %d", ErrDomain, p.MortgageTerm)
	}
	if p.InterestRate < 0 {
		return fmt.Errorf("%w: interest rate %g is negative", ErrDomain, p.InterestRate)
	}
	return nil
}

// DecodeConfiguration reads a scenario from JSON. Missing required keys,
// unknown period names and unknown purchase types are configuration errors;
// values that parse but violate the model are domain errors.
func DecodeConfiguration(r io.Reader) (*Configuration, error) {
	var raw struct {
		Runtime struct {
			StartDate *Date  `json:"start_date"`
			EndDate   *Date  `json:"end_date"`
			Currency  string `json:"currency"`
		} `json:"runtime"`
		Assets      []jsonPointItem     `json:"assets"`
		Liabilities []jsonPointItem     `json:"liabilities"`
		Purchases   []json.RawMessage   `json:"purchases"`
		Expenses    []jsonRecurringItem `json:"expenses"`
		Revenues    []jsonRecurringItem `json:"revenues"`
	}
	dec := json.NewDecoder(bufio.NewReader(r))
	if err := dec.Decode(&raw); err != nil {
		// Date parse failures keep their own identity.
		if errors.Is(err, ErrDateFormat) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	cfg := &Configuration{}
	cfg.Runtime.Currency = raw.Runtime.Currency
	if raw.Runtime.StartDate != nil {
		cfg.Runtime.StartDate = *raw.Runtime.StartDate
	}
	if raw.Runtime.EndDate != nil {
		cfg.Runtime.EndDate = *raw.Runtime.EndDate
	}

	var err error
	if cfg.Assets, err = pointItems("assets", raw.Assets); err != nil {
		return nil, err
	}
	if cfg.Liabilities, err = pointItems("liabilities", raw.Liabilities); err != nil {
		return nil, err
	}
	if cfg.Expenses, err = recurringItems("expenses", raw.Expenses); err != nil {
		return nil, err
	}
	if cfg.Revenues, err = recurringItems("revenues", raw.Revenues); err != nil {
		return nil, err
	}
	for i, msg := range raw.Purchases {
		p, err := decodePurchase(i, msg)
		if err != nil {
			return nil, err
		}
		cfg.Purchases = append(cfg.Purchases, p)
	}
	return cfg, nil
}

// jsonPointItem and jsonRecurringItem are dedicated local structs for json
// parsing; pointers distinguish absent keys from zero values.
type jsonPointItem struct {
	Description string           `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
}

type jsonRecurringItem struct {
	Description string           `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	Period      string           `json:"period"`
	Ends        *Date            `json:"ends"`
}

func pointItems(section string, items []jsonPointItem) ([]PointItem, error) {
	out := make([]PointItem, 0, len(items))
	for i, it := range items {
		if it.Amount == nil {
			return nil, fmt.Errorf("%w: %s[%d]: missing amount", ErrConfiguration, section, i)
		}
		out = append(out, PointItem{Description: it.Description, Amount: *it.Amount})
	}
	return out, nil
}

func recurringItems(section string, items []jsonRecurringItem) ([]RecurringItem, error) {
	out := make([]RecurringItem, 0, len(items))
	for i, it := range items {
		if it.Amount == nil {
			return nil, fmt.Errorf("%w: %s[%d]: missing amount", ErrConfiguration, section, i)
		}
		period, err := ParsePeriod(it.Period)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", section, i, err)
		}
		item := RecurringItem{Description: it.Description, Amount: *it.Amount, Period: period}
		if it.Ends != nil {
			item.Ends = *it.Ends
		}
		out = append(out, item)
	}
	return out, nil
}

// decodePurchase dispatches on the "type" discriminator to the matching
// variant decoder, the same way ledger files dispatch transactions.
func decodePurchase(i int, msg json.RawMessage) (Purchase, error) {
	var identifier struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(msg, &identifier); err != nil {
		return nil, fmt.Errorf("%w: purchases[%d]: %v", ErrConfiguration, i, err)
	}
	switch PurchaseKind(identifier.Type) {
	case KindProperty:
		return decodeProperty(i, msg)
	default:
		return nil, fmt.Errorf("%w: purchases[%d]: unsupported purchase type %q", ErrConfiguration, i, identifier.Type)
	}
}

func decodeProperty(i int, msg json.RawMessage) (Purchase, error) {
	var jp struct {
		PurchasePrice   *decimal.Decimal `json:"purchase_price"`
		Deposit         *decimal.Decimal `json:"deposit"`
		PurchaseDate    *Date            `json:"purchase_date"`
		InterestRate    *float64         `json:"interest_rate"`
		MortgageTerm    *int             `json:"mortgage_term"`
		RepaymentPeriod string           `json:"repayment_period"`
		FirstHomeGrant  bool             `json:"first_home_grant"`
		NewConstruction bool             `json:"new_construction"`
	}
	if err := json.Unmarshal(msg, &jp); err != nil {
		return nil, fmt.Errorf("%w: purchases[%d]: %v", ErrConfiguration, i, err)
	}
	missing := func(key string) error {
		return fmt.Errorf("%w: purchases[%d]: missing %s", ErrConfiguration, i, key)
	}
	switch {
	case jp.PurchasePrice == nil:
		return nil, missing("purchase_price")
	case jp.Deposit == nil:
		return nil, missing("deposit")
	case jp.PurchaseDate == nil:
		return nil, missing("purchase_date")
	case jp.InterestRate == nil:
		return nil, missing("interest_rate")
	case jp.MortgageTerm == nil:
		return nil, missing("mortgage_term")
	}
	period, err := ParsePeriod(jp.RepaymentPeriod)
	if err != nil {
		return nil, fmt.Errorf("purchases[%d]: %w", i, err)
	}
	p := Property{
		PurchasePrice:   *jp.PurchasePrice,
		Deposit:         *jp.Deposit,
		PurchaseDate:    *jp.PurchaseDate,
		InterestRate:    *jp.InterestRate,
		MortgageTerm:    *jp.MortgageTerm,
		RepaymentPeriod: period,
		FirstHomeGrant:  jp.FirstHomeGrant,
		NewConstruction: jp.NewConstruction,
	}
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("purchases[%d]: %w", i, err)
	}
	return p, nil
}
