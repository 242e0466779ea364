package homesim

import (
	"fmt"
	"strings"
	"time"
)

// Period is the named frequency of a recurring financial event.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
	Quarterly
	Annually
)

const day = 24 * time.Hour

func (p Period) String() string {
	switch p {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case Annually:
		return "annually"
	default:
		return "periodic"
	}
}

// ParsePeriod parses a period name. Unknown names are an error wrapping
// ErrConfiguration; there is deliberately no default period.
func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "daily", "day":
		return Daily, nil
	case "weekly", "week":
		return Weekly, nil
	case "monthly", "month":
		return Monthly, nil
	case "quarterly", "quarter":
		return Quarterly, nil
	case "annually", "annual", "yearly", "year":
		return Annually, nil
	default:
		return Daily, fmt.Errorf("%w: unknown period %q", ErrConfiguration, s)
	}
}

// Step returns the fixed duration between two consecutive occurrences.
// Months, quarters and years use average calendar lengths rather than exact
// calendar arithmetic; schedule generation accumulates the fraction instead
// of truncating it at every step.
func (p Period) Step() time.Duration {
	switch p {
	case Daily:
		return day
	case Weekly:
		return 7 * day
	case Monthly:
		return time.Duration(30.44 * float64(day))
	case Quarterly:
		return time.Duration(91.31 * float64(day))
	case Annually:
		return time.Duration(365.25 * float64(day))
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// PaymentsPerYear returns how many occurrences of the period fit in a year.
// It sizes repayment schedules and is independent of the approximate
// durations used by Step.
func (p Period) PaymentsPerYear() int {
	switch p {
	case Daily:
		return 365
	case Weekly:
		return 52
	case Monthly:
		return 12
	case Quarterly:
		return 4
	case Annually:
		return 1
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}
