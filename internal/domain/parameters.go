package domain

import "fmt"

// AccrualMode selects how loan interest accrues over the term.
type AccrualMode string

const (
	AccrualModeAmortizing AccrualMode = "AMORTIZING"
	AccrualModeSimple     AccrualMode = "SIMPLE"
)

// ResaleValueFactor is applied to the property price when no explicit
// resale value is provided.
const ResaleValueFactor = 1.2

// ValidationError reports an input parameter that violates a domain
// invariant. Construction of an evaluator fails with this error and
// nothing is partially computed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InvestmentParameters represents the full set of purchase, financing,
// rental, and exit assumptions for one evaluation.
// The record is immutable after construction: every result is derived
// from it on demand and nothing is cached across calls.
type InvestmentParameters struct {
	PropertyPrice      float64
	DownPayment        float64
	LoanTermYears      int
	AnnualInterestRate float64 // percent, e.g. 5.0
	InterestAccrual    AccrualMode
	BaseMonthlyRent    float64
	OccupancyRate      float64 // percent, 0..100
	AnnualRentGrowth   float64 // percent, compounded yearly
	EnhancementCosts   float64
	AnnualHOAFees      float64
	HoldingPeriodYears int
	ResaleValue        float64 // 0 or negative means "use default"
}

// Validate ensures the parameters adhere to domain rules.
// Returns a *ValidationError describing the first violated invariant.
func (p *InvestmentParameters) Validate() error {
	if p.PropertyPrice <= 0 {
		return &ValidationError{Field: "property_price", Reason: "must be positive"}
	}
	if p.DownPayment < 0 || p.DownPayment > p.PropertyPrice {
		return &ValidationError{Field: "down_payment", Reason: "must be between 0 and property price"}
	}
	if p.LoanTermYears <= 0 {
		return &ValidationError{Field: "loan_term_years", Reason: "must be positive"}
	}
	if p.AnnualInterestRate < 0 {
		return &ValidationError{Field: "annual_interest_rate", Reason: "cannot be negative"}
	}
	if p.BaseMonthlyRent < 0 {
		return &ValidationError{Field: "base_monthly_rent", Reason: "cannot be negative"}
	}
	if p.OccupancyRate < 0 || p.OccupancyRate > 100 {
		return &ValidationError{Field: "occupancy_rate", Reason: "must be between 0 and 100"}
	}
	if p.AnnualRentGrowth < 0 {
		return &ValidationError{Field: "annual_rent_growth", Reason: "cannot be negative"}
	}
	if p.InterestAccrual != "" &&
		p.InterestAccrual != AccrualModeAmortizing &&
		p.InterestAccrual != AccrualModeSimple {
		return &ValidationError{Field: "interest_accrual", Reason: "must be AMORTIZING or SIMPLE"}
	}
	return nil
}

// AccrualModeOrDefault resolves an unset accrual mode to amortizing.
func (p *InvestmentParameters) AccrualModeOrDefault() AccrualMode {
	if p.InterestAccrual == AccrualModeSimple {
		return AccrualModeSimple
	}
	return AccrualModeAmortizing
}

// LoanAmount is the financed principal: property price minus down payment.
func (p *InvestmentParameters) LoanAmount() float64 {
	return p.PropertyPrice - p.DownPayment
}

// TotalInitialInvestment is the cash put in up front: down payment plus
// enhancement costs.
func (p *InvestmentParameters) TotalInitialInvestment() float64 {
	return p.DownPayment + p.EnhancementCosts
}

// ResaleValueOrDefault returns the expected resale value, defaulting to
// ResaleValueFactor times the property price when unset.
func (p *InvestmentParameters) ResaleValueOrDefault() float64 {
	if p.ResaleValue > 0 {
		return p.ResaleValue
	}
	return p.PropertyPrice * ResaleValueFactor
}

// ExpectedCapitalGain is the gain (or loss) realized at exit.
func (p *InvestmentParameters) ExpectedCapitalGain() float64 {
	return p.ResaleValueOrDefault() - p.PropertyPrice
}
