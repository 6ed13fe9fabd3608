package domain

// AdvancedMetrics are the supplementary return ratios derived from the
// base scenario. DSCR may be +Inf when there is net income but no debt
// service; serializing layers are expected to render that as unavailable.
type AdvancedMetrics struct {
	DSCR                   float64
	CashOnCashReturn       float64 // percent
	PaybackPeriodYears     float64 // capped at the payback sentinel
	CapRate                float64 // percent
	AnnualDebtService      float64
	TotalInitialInvestment float64
}

// InvestmentSummary is the flattened snapshot of one evaluation, combining
// loan scalars with the base scenario's performance. It exists for
// reporting collaborators that want a single record.
type InvestmentSummary struct {
	PropertyPrice          float64
	DownPayment            float64
	LoanAmount             float64
	MonthlyPayment         float64
	TotalInterest          float64
	TotalInitialInvestment float64
	BaseMonthlyRent        float64
	EffectiveMonthlyRent   float64
	MonthlyCashFlow        float64
	AnnualCashFlow         float64
	ROIPercent             float64
	IRRPercent             *float64
	HoldingPeriodYears     int
	ExpectedResaleValue    float64
	ExpectedCapitalGain    float64
}
