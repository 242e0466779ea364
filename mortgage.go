package homesim

import "math"

// Closed-form amortizing-loan math. All functions are pure and deterministic;
// the zero-rate cases are defined explicitly rather than left to divide by
// zero in the annuity formula.

// PeriodicRate returns the interest rate applied per payment period for a
// given annual rate and payment frequency.
func PeriodicRate(annualRate float64, paymentsPerYear int) float64 {
	return annualRate / float64(paymentsPerYear)
}

// PaymentCount returns the total number of payments over the term.
func PaymentCount(termYears, paymentsPerYear int) int {
	return termYears * paymentsPerYear
}

// Payment returns the level payment that fully repays principal plus
// interest over n payments at the given periodic rate:
//
//	A = P·r·(1+r)^n / ((1+r)^n − 1)
//
// A zero periodic rate means straight-line repayment, principal / n.
func Payment(principal, periodicRate float64, n int) float64 {
	if periodicRate == 0 {
		return principal / float64(n)
	}
	f := math.Pow(1+periodicRate, float64(n))
	return principal * periodicRate * f / (f - 1)
}

// RemainingBalance returns the principal still owed after t payments of the
// given level payment:
//
//	P·(1+r)^t − A·((1+r)^t − 1)/r
//
// with the zero-rate case P − A·t. For the payment produced by Payment, the
// balance is the full principal at t=0 and ≈0 at t=n.
func RemainingBalance(principal, payment, periodicRate float64, t int) float64 {
	if periodicRate == 0 {
		return principal - payment*float64(t)
	}
	f := math.Pow(1+periodicRate, float64(t))
	return principal*f - payment*(f-1)/periodicRate
}

// Loan describes an amortizing mortgage over a property debt.
type Loan struct {
	Principal  float64 // borrowed amount, purchase price less deposit
	AnnualRate float64 // e.g. 0.05 for 5%
	TermYears  int
	Period     Period // repayment frequency
}

// PeriodicRate returns the loan's per-payment interest rate.
func (l Loan) PeriodicRate() float64 {
	return PeriodicRate(l.AnnualRate, l.Period.PaymentsPerYear())
}

// Payments returns the loan's total number of payments.
func (l Loan) Payments() int {
	return PaymentCount(l.TermYears, l.Period.PaymentsPerYear())
}

// Payment returns the loan's level payment amount.
func (l Loan) Payment() float64 {
	return Payment(l.Principal, l.PeriodicRate(), l.Payments())
}

// Balance returns the principal remaining after t payments.
func (l Loan) Balance(t int) float64 {
	return RemainingBalance(l.Principal, l.Payment(), l.PeriodicRate(), t)
}
