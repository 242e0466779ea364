package homesim

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

const scenarioJSON = `{
  "runtime": {"start_date": "2023-01-01", "end_date": "2023-12-31"},
  "assets": [{"description": "Savings", "amount": 50000}],
  "liabilities": [{"description": "Car Loan", "amount": 8000}],
  "purchases": [{
    "type": "property",
    "purchase_price": 400000,
    "deposit": 80000,
    "purchase_date": "2023-02-01",
    "interest_rate": 0.05,
    "mortgage_term": 20,
    "repayment_period": "monthly"
  }],
  "expenses": [{"description": "Groceries", "amount": 150, "period": "weekly"}],
  "revenues": [{"description": "Salary", "amount": 5000, "period": "monthly", "ends": "2023-06-30"}]
}`

func TestDecodeConfiguration(t *testing.T) {
	cfg, err := DecodeConfiguration(strings.NewReader(scenarioJSON))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Runtime.StartDate != MustParse("2023-01-01") {
		t.Errorf("start date = %v", cfg.Runtime.StartDate)
	}
	if cfg.Runtime.EndDate != MustParse("2023-12-31") {
		t.Errorf("end date = %v", cfg.Runtime.EndDate)
	}
	if len(cfg.Assets) != 1 || cfg.Assets[0].Description != "Savings" {
		t.Errorf("assets = %+v", cfg.Assets)
	}
	if !cfg.Assets[0].Amount.Equal(decimal.NewFromInt(50_000)) {
		t.Errorf("asset amount = %s", cfg.Assets[0].Amount)
	}
	if len(cfg.Revenues) != 1 || cfg.Revenues[0].Period != Monthly {
		t.Errorf("revenues = %+v", cfg.Revenues)
	}
	if cfg.Revenues[0].Ends != MustParse("2023-06-30") {
		t.Errorf("revenue ends = %v", cfg.Revenues[0].Ends)
	}
	if cfg.Expenses[0].Ends != (Date{}) {
		t.Errorf("open-ended expense has ends = %v", cfg.Expenses[0].Ends)
	}

	if len(cfg.Purchases) != 1 {
		t.Fatalf("purchases = %+v", cfg.Purchases)
	}
	prop, ok := cfg.Purchases[0].(Property)
	if !ok {
		t.Fatalf("purchase is %T, want Property", cfg.Purchases[0])
	}
	if prop.RepaymentPeriod != Monthly || prop.MortgageTerm != 20 {
		t.Errorf("property = %+v", prop)
	}
}

func TestDecodeConfiguration_Errors(t *testing.T) {
	tests := []struct {
		name string
		json string
		want error
	}{
		{
			name: "missing purchase_price",
			json: `{"purchases": [{"type": "property", "deposit": 1, "purchase_date": "2023-01-01", "interest_rate": 0.05, "mortgage_term": 20, "repayment_period": "monthly"}]}`,
			want: ErrConfiguration,
		},
		{
			name: "unknown purchase type",
			json: `{"purchases": [{"type": "boat"}]}`,
			want: ErrConfiguration,
		},
		{
			name: "unknown period",
			json: `{"expenses": [{"description": "x", "amount": 1, "period": "fortnightly"}]}`,
			want: ErrConfiguration,
		},
		{
			name: "missing amount",
			json: `{"assets": [{"description": "x"}]}`,
			want: ErrConfiguration,
		},
		{
			name: "bad date",
			json: `{"runtime": {"start_date": "01/02/2023"}}`,
			want: ErrDateFormat,
		},
		{
			name: "deposit exceeds price",
			json: `{"purchases": [{"type": "property", "purchase_price": 100, "deposit": 200, "purchase_date": "2023-01-01", "interest_rate": 0.05, "mortgage_term": 20, "repayment_period": "monthly"}]}`,
			want: ErrDomain,
		},
		{
			name: "negative mortgage term",
			json: `{"purchases": [{"type": "property", "purchase_price": 100, "deposit": 10, "purchase_date": "2023-01-01", "interest_rate": 0.05, "mortgage_term": -1, "repayment_period": "monthly"}]}`,
			want: ErrDomain,
		},
		{
			name: "not json",
			json: `]`,
			want: ErrConfiguration,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeConfiguration(strings.NewReader(tt.json))
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRuntime_Window(t *testing.T) {
	today := MustParse("2023-05-01")

	var r Runtime
	w := r.Window(today)
	if w.From != today || w.To != today.Add(365) {
		t.Errorf("default window = %v, want [today, today+365d]", w)
	}

	r = Runtime{StartDate: MustParse("2022-01-01"), EndDate: MustParse("2024-01-01")}
	w = r.Window(today)
	if w.From != r.StartDate || w.To != r.EndDate {
		t.Errorf("explicit window = %v", w)
	}
}
