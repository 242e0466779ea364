package homesim

import "errors"

// Core error taxonomy. Every failure in the simulation wraps one of these
// sentinels with context about the offending value, so callers can branch
// with errors.Is while users still see what was wrong.
var (
	// ErrConfiguration reports a missing or malformed scenario key, or an
	// unrecognized name (period, purchase type, account).
	ErrConfiguration = errors.New("invalid configuration")

	// ErrDateFormat reports a date text that is not in the YYYY-MM-DD form.
	ErrDateFormat = errors.New("invalid date")

	// ErrDomain reports a value that parses but violates a model constraint,
	// such as a deposit larger than the purchase price.
	ErrDomain = errors.New("domain constraint violated")
)
