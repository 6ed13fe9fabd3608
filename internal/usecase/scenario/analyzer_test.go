package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/propeval/propeval-backend/internal/domain"
	"github.com/propeval/propeval-backend/internal/usecase/cashflow"
	"github.com/propeval/propeval-backend/internal/usecase/loan"
	"github.com/propeval/propeval-backend/internal/usecase/rent"
)

func testParams() domain.InvestmentParameters {
	return domain.InvestmentParameters{
		PropertyPrice:      100000,
		DownPayment:        20000,
		LoanTermYears:      30,
		AnnualInterestRate: 5.0,
		BaseMonthlyRent:    1500,
		OccupancyRate:      95,
		AnnualRentGrowth:   2,
		AnnualHOAFees:      1200,
		HoldingPeriodYears: 10,
	}
}

func newAnalyzer(params domain.InvestmentParameters, solver RateSolver) *Analyzer {
	engine := cashflow.NewEngine(params, loan.NewModel(params), rent.NewProjector(params))
	return NewAnalyzer(engine, solver)
}

func TestRun_ProducesAllScenarios(t *testing.T) {
	analyzer := newAnalyzer(testParams(), NewNewtonSolver())

	results := analyzer.Run()

	assert.Len(t, results, 3)
	for _, s := range domain.Scenarios() {
		result, ok := results[s]
		assert.True(t, ok)
		assert.Equal(t, s, result.Scenario)
		assert.Equal(t, s.RentMultiplier(), result.RentMultiplier)
		assert.Len(t, result.NetIncomeSchedule, 10)
		assert.Len(t, result.CashFlowSchedule, 10)
		assert.InDelta(t, result.AverageAnnualCashFlow/12, result.AverageMonthlyCashFlow, 1e-9)
	}
}

func TestRun_ScenarioROIOrdering(t *testing.T) {
	analyzer := newAnalyzer(testParams(), NewNewtonSolver())

	results := analyzer.Run()

	conservative := results[domain.ScenarioConservative]
	base := results[domain.ScenarioBase]
	optimistic := results[domain.ScenarioOptimistic]

	assert.LessOrEqual(t, conservative.ROIPercent, base.ROIPercent)
	assert.LessOrEqual(t, base.ROIPercent, optimistic.ROIPercent)
}

func TestRun_Year1Rents(t *testing.T) {
	analyzer := newAnalyzer(testParams(), NewNewtonSolver())

	base := analyzer.Run()[domain.ScenarioBase]

	assert.InDelta(t, 1500, base.MonthlyRentYear1, 1e-9)
	assert.InDelta(t, 1500*0.95, base.EffectiveMonthlyRentYear1, 1e-9)
}

func TestRun_IRRPresentForHealthyInvestment(t *testing.T) {
	analyzer := newAnalyzer(testParams(), NewNewtonSolver())

	base := analyzer.Run()[domain.ScenarioBase]

	assert.NotNil(t, base.IRRPercent)
	assert.Greater(t, *base.IRRPercent, 0.0)
}

func TestRun_IRRAbsentForDegenerateCashFlows(t *testing.T) {
	// Paid in cash, no rent, no fees, resale at cost: every flow after the
	// initial outlay is zero, so no rate can zero the NPV.
	params := domain.InvestmentParameters{
		PropertyPrice:      100000,
		DownPayment:        100000,
		LoanTermYears:      30,
		BaseMonthlyRent:    0,
		OccupancyRate:      100,
		HoldingPeriodYears: 10,
		ResaleValue:        100000,
	}
	analyzer := newAnalyzer(params, NewNewtonSolver())

	results := analyzer.Run()

	for _, s := range domain.Scenarios() {
		assert.Nil(t, results[s].IRRPercent)
	}
}

func TestRun_EmptyScheduleYieldsZeroROIAndAbsentIRR(t *testing.T) {
	params := testParams()
	params.HoldingPeriodYears = 0
	analyzer := newAnalyzer(params, NewNewtonSolver())

	base := analyzer.Run()[domain.ScenarioBase]

	assert.Equal(t, 0.0, base.ROIPercent)
	assert.Nil(t, base.IRRPercent)
	assert.Empty(t, base.CashFlowSchedule)
}

func TestRun_ZeroInvestmentYieldsZeroROI(t *testing.T) {
	params := testParams()
	params.DownPayment = 0
	params.EnhancementCosts = 0
	analyzer := newAnalyzer(params, NewNewtonSolver())

	base := analyzer.Run()[domain.ScenarioBase]

	assert.Equal(t, 0.0, base.ROIPercent)
}

func TestRun_UnavailableSolverDegradesGracefully(t *testing.T) {
	analyzer := newAnalyzer(testParams(), UnavailableSolver{})

	results := analyzer.Run()

	for _, s := range domain.Scenarios() {
		result := results[s]
		assert.Nil(t, result.IRRPercent)
		// Everything else stays populated
		assert.NotZero(t, result.ROIPercent)
		assert.Len(t, result.CashFlowSchedule, 10)
	}
}
