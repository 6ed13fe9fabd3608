package rest

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/propeval/propeval-backend/internal/domain"
)

// DefaultHoldingPeriodYears is applied when a request omits the holding
// period. The default belongs to this boundary, not the engine.
const DefaultHoldingPeriodYears = 10

// EvaluationRequest is the JSON input for one evaluation.
// base_monthly_rent is strictly monthly; callers working with annual rent
// must divide by 12 themselves.
type EvaluationRequest struct {
	PropertyPrice      float64 `json:"property_price"`
	DownPayment        float64 `json:"down_payment"`
	LoanTermYears      int     `json:"loan_term_years"`
	AnnualInterestRate float64 `json:"annual_interest_rate"`
	InterestAccrual    string  `json:"interest_accrual"` // "amortizing" (default) or "simple"
	BaseMonthlyRent    float64 `json:"base_monthly_rent"`
	OccupancyRate      float64 `json:"occupancy_rate"`
	AnnualRentGrowth   float64 `json:"annual_rent_growth"`
	EnhancementCosts   float64 `json:"enhancement_costs"`
	AnnualHOAFees      float64 `json:"annual_hoa_fees"`
	HoldingPeriodYears int     `json:"holding_period_years"`
	ResaleValue        float64 `json:"resale_value"`
}

// toParams converts the request to the domain record. Validation happens
// in the domain, not here.
func (r *EvaluationRequest) toParams() domain.InvestmentParameters {
	holdingPeriod := r.HoldingPeriodYears
	if holdingPeriod == 0 {
		holdingPeriod = DefaultHoldingPeriodYears
	}

	return domain.InvestmentParameters{
		PropertyPrice:      r.PropertyPrice,
		DownPayment:        r.DownPayment,
		LoanTermYears:      r.LoanTermYears,
		AnnualInterestRate: r.AnnualInterestRate,
		InterestAccrual:    domain.AccrualMode(strings.ToUpper(r.InterestAccrual)),
		BaseMonthlyRent:    r.BaseMonthlyRent,
		OccupancyRate:      r.OccupancyRate,
		AnnualRentGrowth:   r.AnnualRentGrowth,
		EnhancementCosts:   r.EnhancementCosts,
		AnnualHOAFees:      r.AnnualHOAFees,
		HoldingPeriodYears: holdingPeriod,
		ResaleValue:        r.ResaleValue,
	}
}

// AmortizationRequest asks for an amortization schedule. A zero or absent
// period count means the full loan term.
type AmortizationRequest struct {
	EvaluationRequest
	Periods int `json:"periods"`
}

// SummaryResponse is the flattened investment snapshot.
type SummaryResponse struct {
	PropertyPrice          float64  `json:"property_price"`
	DownPayment            float64  `json:"down_payment"`
	LoanAmount             float64  `json:"loan_amount"`
	MonthlyPayment         float64  `json:"monthly_payment"`
	TotalInterest          float64  `json:"total_interest"`
	TotalInitialInvestment float64  `json:"total_initial_investment"`
	BaseMonthlyRent        float64  `json:"base_monthly_rent"`
	EffectiveMonthlyRent   float64  `json:"effective_monthly_rent"`
	MonthlyCashFlow        float64  `json:"monthly_cash_flow"`
	AnnualCashFlow         float64  `json:"annual_cash_flow"`
	ROI                    float64  `json:"roi"`
	IRR                    *float64 `json:"irr"`
	HoldingPeriodYears     int      `json:"holding_period_years"`
	ExpectedResaleValue    float64  `json:"expected_resale_value"`
	ExpectedCapitalGain    float64  `json:"expected_capital_gain"`
}

// ScenarioResponse is one scenario's projected performance.
type ScenarioResponse struct {
	RentMultiplier       float64   `json:"rent_multiplier"`
	MonthlyRent          float64   `json:"monthly_rent"`
	EffectiveMonthlyRent float64   `json:"effective_monthly_rent"`
	MonthlyCashFlow      float64   `json:"monthly_cash_flow"`
	AnnualNetIncome      float64   `json:"annual_net_income"`
	AnnualCashFlow       float64   `json:"annual_cash_flow"`
	ROI                  float64   `json:"roi"`
	IRR                  *float64  `json:"irr"`
	NetIncomeSchedule    []float64 `json:"net_income_schedule"`
	CashFlowSchedule     []float64 `json:"cash_flow_schedule"`
}

// MetricsResponse carries the advanced ratios. DSCR is null when the
// ratio is unbounded (net income with no debt service).
type MetricsResponse struct {
	DSCR                   *float64 `json:"dscr"`
	CashOnCashReturn       float64  `json:"cash_on_cash_return"`
	PaybackPeriodYears     float64  `json:"payback_period_years"`
	CapRate                float64  `json:"cap_rate"`
	AnnualDebtService      float64  `json:"annual_debt_service"`
	TotalInitialInvestment float64  `json:"total_initial_investment"`
}

// RiskResponse carries the qualitative risk view.
type RiskResponse struct {
	Level           string   `json:"level"`
	Factors         []string `json:"factors"`
	Recommendations []string `json:"recommendations"`
}

// EvaluationResponse is the full analysis payload.
type EvaluationResponse struct {
	EvaluationID string                      `json:"evaluation_id"`
	Summary      SummaryResponse             `json:"summary"`
	Scenarios    map[string]ScenarioResponse `json:"scenarios"`
	Metrics      MetricsResponse             `json:"metrics"`
	Risk         RiskResponse                `json:"risk"`
}

// AmortizationEntryResponse is one month of the schedule.
type AmortizationEntryResponse struct {
	Period    int     `json:"period"`
	Payment   float64 `json:"payment"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Balance   float64 `json:"balance"`
}

// AmortizationResponse is the schedule payload.
type AmortizationResponse struct {
	EvaluationID string                      `json:"evaluation_id"`
	Entries      []AmortizationEntryResponse `json:"entries"`
}

// round2 rounds a value to two decimal places for the wire. Raw engine
// floats are never exposed unrounded.
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func round2Ptr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	rounded := round2(*v)
	return &rounded
}

func round2Slice(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = round2(v)
	}
	return out
}

func newSummaryResponse(s domain.InvestmentSummary) SummaryResponse {
	return SummaryResponse{
		PropertyPrice:          round2(s.PropertyPrice),
		DownPayment:            round2(s.DownPayment),
		LoanAmount:             round2(s.LoanAmount),
		MonthlyPayment:         round2(s.MonthlyPayment),
		TotalInterest:          round2(s.TotalInterest),
		TotalInitialInvestment: round2(s.TotalInitialInvestment),
		BaseMonthlyRent:        round2(s.BaseMonthlyRent),
		EffectiveMonthlyRent:   round2(s.EffectiveMonthlyRent),
		MonthlyCashFlow:        round2(s.MonthlyCashFlow),
		AnnualCashFlow:         round2(s.AnnualCashFlow),
		ROI:                    round2(s.ROIPercent),
		IRR:                    round2Ptr(s.IRRPercent),
		HoldingPeriodYears:     s.HoldingPeriodYears,
		ExpectedResaleValue:    round2(s.ExpectedResaleValue),
		ExpectedCapitalGain:    round2(s.ExpectedCapitalGain),
	}
}

func newScenarioResponse(r domain.ScenarioResult) ScenarioResponse {
	return ScenarioResponse{
		RentMultiplier:       r.RentMultiplier,
		MonthlyRent:          round2(r.MonthlyRentYear1),
		EffectiveMonthlyRent: round2(r.EffectiveMonthlyRentYear1),
		MonthlyCashFlow:      round2(r.AverageMonthlyCashFlow),
		AnnualNetIncome:      round2(r.AverageAnnualNetIncome),
		AnnualCashFlow:       round2(r.AverageAnnualCashFlow),
		ROI:                  round2(r.ROIPercent),
		IRR:                  round2Ptr(r.IRRPercent),
		NetIncomeSchedule:    round2Slice(r.NetIncomeSchedule),
		CashFlowSchedule:     round2Slice(r.CashFlowSchedule),
	}
}

func newMetricsResponse(m domain.AdvancedMetrics) MetricsResponse {
	var dscr *float64
	if !math.IsInf(m.DSCR, 0) {
		rounded := round2(m.DSCR)
		dscr = &rounded
	}

	return MetricsResponse{
		DSCR:                   dscr,
		CashOnCashReturn:       round2(m.CashOnCashReturn),
		PaybackPeriodYears:     round2(m.PaybackPeriodYears),
		CapRate:                round2(m.CapRate),
		AnnualDebtService:      round2(m.AnnualDebtService),
		TotalInitialInvestment: round2(m.TotalInitialInvestment),
	}
}

func newRiskResponse(r domain.RiskAssessment) RiskResponse {
	return RiskResponse{
		Level:           string(r.Level),
		Factors:         r.Factors,
		Recommendations: r.Recommendations,
	}
}
