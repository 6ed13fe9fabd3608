package scenario

import (
	"math"

	"github.com/propeval/propeval-backend/internal/domain"
	"github.com/propeval/propeval-backend/internal/usecase/cashflow"
)

// Analyzer evaluates the three fixed scenarios against the cash flow
// engine and aggregates ROI and IRR per scenario. It is a stateless batch
// computation: every call recomputes everything from the input record.
type Analyzer struct {
	Engine *cashflow.Engine
	Solver RateSolver
}

// NewAnalyzer creates a new Analyzer instance.
func NewAnalyzer(engine *cashflow.Engine, solver RateSolver) *Analyzer {
	return &Analyzer{
		Engine: engine,
		Solver: solver,
	}
}

// Run evaluates every scenario and returns the full result set.
func (a *Analyzer) Run() map[domain.Scenario]domain.ScenarioResult {
	results := make(map[domain.Scenario]domain.ScenarioResult, 3)
	for _, s := range domain.Scenarios() {
		results[s] = a.runScenario(s)
	}
	return results
}

func (a *Analyzer) runScenario(s domain.Scenario) domain.ScenarioResult {
	multiplier := s.RentMultiplier()

	netIncomeSchedule := a.Engine.NetIncomeSchedule(multiplier)
	cashFlowSchedule := a.Engine.CashFlowSchedule(multiplier)

	avgNetIncome := mean(netIncomeSchedule)
	avgCashFlow := mean(cashFlowSchedule)

	return domain.ScenarioResult{
		Scenario:                  s,
		RentMultiplier:            multiplier,
		MonthlyRentYear1:          a.Engine.Rent.MonthlyRent(1, multiplier),
		EffectiveMonthlyRentYear1: a.Engine.Rent.EffectiveMonthlyRent(1, multiplier),
		NetIncomeSchedule:         netIncomeSchedule,
		CashFlowSchedule:          cashFlowSchedule,
		AverageAnnualNetIncome:    avgNetIncome,
		AverageAnnualCashFlow:     avgCashFlow,
		AverageMonthlyCashFlow:    avgCashFlow / 12,
		ROIPercent:                a.roi(avgCashFlow, len(cashFlowSchedule)),
		IRRPercent:                a.irr(cashFlowSchedule),
	}
}

// roi is the average annual cash flow over the total initial investment,
// as a percentage. Degenerate inputs yield 0.
func (a *Analyzer) roi(avgCashFlow float64, scheduleLen int) float64 {
	totalInvestment := a.Engine.Params.TotalInitialInvestment()
	if scheduleLen == 0 || totalInvestment <= 0 {
		return 0
	}
	return (avgCashFlow / totalInvestment) * 100
}

// irr solves for the internal rate of return of the full cash-flow
// vector: the initial investment out, each year's cash flow, and the
// capital gain realized at exit folded into the final year.
// Returns nil when the rate is undeterminable.
func (a *Analyzer) irr(cashFlowSchedule []float64) *float64 {
	if a.Solver == nil || len(cashFlowSchedule) == 0 {
		return nil
	}

	flows := make([]float64, 0, len(cashFlowSchedule)+1)
	flows = append(flows, -a.Engine.Params.TotalInitialInvestment())
	flows = append(flows, cashFlowSchedule...)
	flows[len(flows)-1] += a.Engine.Params.ExpectedCapitalGain()

	rate, err := a.Solver.Rate(flows)
	if err != nil {
		return nil
	}

	percent := rate * 100
	if math.IsNaN(percent) || math.IsInf(percent, 0) {
		return nil
	}
	return &percent
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}
