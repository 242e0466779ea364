package homesim

import (
	"errors"
	"testing"
	"time"
)

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		in      string
		want    Period
		wantErr bool
	}{
		{in: "daily", want: Daily},
		{in: "weekly", want: Weekly},
		{in: "monthly", want: Monthly},
		{in: "quarterly", want: Quarterly},
		{in: "annually", want: Annually},
		{in: "yearly", want: Annually},
		{in: " Monthly ", want: Monthly},
		{in: "fortnightly", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePeriod(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParsePeriod(%q) = %v, want error", tt.in, got)
				}
				if !errors.Is(err, ErrConfiguration) {
					t.Errorf("ParsePeriod(%q) error = %v, want ErrConfiguration", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePeriod(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParsePeriod(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPeriod_PaymentsPerYear(t *testing.T) {
	tests := []struct {
		p    Period
		want int
	}{
		{Daily, 365},
		{Weekly, 52},
		{Monthly, 12},
		{Quarterly, 4},
		{Annually, 1},
	}
	for _, tt := range tests {
		if got := tt.p.PaymentsPerYear(); got != tt.want {
			t.Errorf("%s.PaymentsPerYear() = %d, want %d", tt.p, got, tt.want)
		}
	}
}

func TestPeriod_Step(t *testing.T) {
	if got := Daily.Step(); got != 24*time.Hour {
		t.Errorf("Daily.Step() = %v, want 24h", got)
	}
	if got := Weekly.Step(); got != 7*24*time.Hour {
		t.Errorf("Weekly.Step() = %v, want 168h", got)
	}
	// A month steps 30.44 days, not a calendar month.
	want := time.Duration(30.44 * 24 * float64(time.Hour))
	if got := Monthly.Step(); got != want {
		t.Errorf("Monthly.Step() = %v, want %v", got, want)
	}
}
