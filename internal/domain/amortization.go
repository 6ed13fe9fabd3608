package domain

// AmortizationEntry is one month of a loan's amortization schedule.
// Period is 1-indexed; Balance is the remaining principal after the
// payment and is never negative.
type AmortizationEntry struct {
	Period    int
	Payment   float64
	Principal float64
	Interest  float64
	Balance   float64
}
