package cashflow

import (
	"github.com/propeval/propeval-backend/internal/domain"
	"github.com/propeval/propeval-backend/internal/usecase/loan"
	"github.com/propeval/propeval-backend/internal/usecase/rent"
)

// Engine combines the loan payment and the rent projection into the net
// cash position per year. Schedules are recomputed in full on every call;
// no iterator state is retained.
type Engine struct {
	Params domain.InvestmentParameters
	Loan   *loan.Model
	Rent   *rent.Projector
}

// NewEngine creates a new Engine instance from its collaborators.
func NewEngine(params domain.InvestmentParameters, loanModel *loan.Model, projector *rent.Projector) *Engine {
	return &Engine{
		Params: params,
		Loan:   loanModel,
		Rent:   projector,
	}
}

// MonthlyCashFlow is the net monthly position for a year after debt
// service and the monthly share of HOA fees.
func (e *Engine) MonthlyCashFlow(year int, multiplier float64) float64 {
	effectiveRent := e.Rent.EffectiveMonthlyRent(year, multiplier)
	monthlyHOA := e.Params.AnnualHOAFees / 12
	return effectiveRent - e.Loan.MonthlyPayment() - monthlyHOA
}

// AnnualNetIncome is the operating income for a year before debt service.
func (e *Engine) AnnualNetIncome(year int, multiplier float64) float64 {
	return e.Rent.EffectiveMonthlyRent(year, multiplier)*12 - e.Params.AnnualHOAFees
}

// AnnualCashFlow is the net position for a year after debt service.
func (e *Engine) AnnualCashFlow(year int, multiplier float64) float64 {
	return e.MonthlyCashFlow(year, multiplier) * 12
}

// NetIncomeSchedule is the pre-debt-service operating income for each year
// of the holding period, in order.
func (e *Engine) NetIncomeSchedule(multiplier float64) []float64 {
	schedule := make([]float64, 0, e.Params.HoldingPeriodYears)
	for year := 1; year <= e.Params.HoldingPeriodYears; year++ {
		schedule = append(schedule, e.AnnualNetIncome(year, multiplier))
	}
	return schedule
}

// CashFlowSchedule is the post-debt-service cash flow for each year of the
// holding period, in order.
func (e *Engine) CashFlowSchedule(multiplier float64) []float64 {
	schedule := make([]float64, 0, e.Params.HoldingPeriodYears)
	for year := 1; year <= e.Params.HoldingPeriodYears; year++ {
		schedule = append(schedule, e.AnnualCashFlow(year, multiplier))
	}
	return schedule
}
