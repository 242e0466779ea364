package homesim

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestStampDuty(t *testing.T) {
	tests := []struct {
		name  string
		price float64
		want  float64
	}{
		// 80000*0.019 + 174.70 registration + 174.70 land transfer
		{name: "first bracket boundary", price: 80_000, want: 1_869.40},
		// 1520 + 20000*0.0285 + 174.70 + 184.70
		{name: "second bracket boundary", price: 100_000, want: 2_449.40},
		// 2090 + 50000*0.038 + 174.70 + 204.70
		{name: "third bracket", price: 150_000, want: 4_369.40},
		// 19665 + 174.70 + (20 + 300000/100000*100)
		{name: "fourth bracket boundary", price: 500_000, want: 20_159.70},
		// 19665 + 100000*0.0515 + 174.70 + (20 + 400000/100000*100)
		{name: "top bracket", price: 600_000, want: 25_409.70},
		// 50000*0.019 + 174.70 + 174.70
		{name: "below all boundaries", price: 50_000, want: 1_299.40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StampDuty(decimal.NewFromFloat(tt.price), false, false)
			if !got.Equal(decimal.NewFromFloat(tt.want)) {
				t.Errorf("StampDuty(%v) = %s, want %v", tt.price, got, tt.want)
			}
		})
	}
}

func TestStampDuty_Monotonic(t *testing.T) {
	// Increasing price never decreases duty.
	prev := decimal.Zero
	for price := 10_000; price <= 1_000_000; price += 5_000 {
		duty := StampDuty(decimal.NewFromInt(int64(price)), false, false)
		if duty.LessThan(prev) {
			t.Fatalf("duty decreased from %s to %s at price %d", prev, duty, price)
		}
		prev = duty
	}
}

func TestStampDuty_FlagsHaveNoEffect(t *testing.T) {
	price := decimal.NewFromInt(400_000)
	base := StampDuty(price, false, false)
	for _, flags := range [][2]bool{{true, false}, {false, true}, {true, true}} {
		if got := StampDuty(price, flags[0], flags[1]); !got.Equal(base) {
			t.Errorf("StampDuty with flags %v = %s, want %s", flags, got, base)
		}
	}
}
