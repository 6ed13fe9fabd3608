package evaluation

import (
	"github.com/propeval/propeval-backend/internal/domain"
	"github.com/propeval/propeval-backend/internal/usecase/cashflow"
	"github.com/propeval/propeval-backend/internal/usecase/loan"
	"github.com/propeval/propeval-backend/internal/usecase/metrics"
	"github.com/propeval/propeval-backend/internal/usecase/rent"
	"github.com/propeval/propeval-backend/internal/usecase/risk"
	"github.com/propeval/propeval-backend/internal/usecase/scenario"
)

// Evaluator is the engine facade: one validated parameter record wired to
// the loan model, rent projector, cash flow engine, scenario analyzer, and
// metrics service. Every accessor is a pure function of the parameters, so
// evaluators are safe to use from concurrent requests without coordination.
type Evaluator struct {
	params   domain.InvestmentParameters
	loan     *loan.Model
	rent     *rent.Projector
	engine   *cashflow.Engine
	analyzer *scenario.Analyzer
	metrics  *metrics.Service
}

// New constructs an Evaluator, or fails with a *domain.ValidationError
// when an input invariant is violated. Nothing is partially constructed
// on failure.
func New(params domain.InvestmentParameters) (*Evaluator, error) {
	return NewWithSolver(params, scenario.NewNewtonSolver())
}

// NewWithSolver constructs an Evaluator with an explicit IRR solver
// strategy. Passing scenario.UnavailableSolver{} yields an evaluator whose
// scenario analysis always reports IRR as absent.
func NewWithSolver(params domain.InvestmentParameters, solver scenario.RateSolver) (*Evaluator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	loanModel := loan.NewModel(params)
	projector := rent.NewProjector(params)
	engine := cashflow.NewEngine(params, loanModel, projector)

	return &Evaluator{
		params:   params,
		loan:     loanModel,
		rent:     projector,
		engine:   engine,
		analyzer: scenario.NewAnalyzer(engine, solver),
		metrics:  metrics.NewService(params, loanModel),
	}, nil
}

// Params returns the immutable input record.
func (e *Evaluator) Params() domain.InvestmentParameters {
	return e.params
}

// LoanAmount returns the financed principal.
func (e *Evaluator) LoanAmount() float64 {
	return e.params.LoanAmount()
}

// MonthlyPayment returns the constant monthly loan payment.
func (e *Evaluator) MonthlyPayment() float64 {
	return e.loan.MonthlyPayment()
}

// TotalInterest returns the interest paid over the full loan term.
func (e *Evaluator) TotalInterest() float64 {
	return e.loan.TotalInterest()
}

// TotalInitialInvestment returns the cash invested up front.
func (e *Evaluator) TotalInitialInvestment() float64 {
	return e.params.TotalInitialInvestment()
}

// AmortizationSchedule returns up to the requested number of periods of
// the loan's amortization schedule; a non-positive count means the full
// term.
func (e *Evaluator) AmortizationSchedule(periods int) []domain.AmortizationEntry {
	return e.loan.Schedule(periods)
}

// ScenarioAnalysis evaluates the conservative, base, and optimistic
// scenarios and returns the full result set.
func (e *Evaluator) ScenarioAnalysis() map[domain.Scenario]domain.ScenarioResult {
	return e.analyzer.Run()
}

// AdvancedMetrics derives DSCR, cash-on-cash return, payback period, and
// cap rate from the base scenario.
func (e *Evaluator) AdvancedMetrics() domain.AdvancedMetrics {
	base := e.analyzer.Run()[domain.ScenarioBase]
	return e.metrics.Advanced(base)
}

// RiskAssessment grades the investment from the scenario results.
func (e *Evaluator) RiskAssessment() domain.RiskAssessment {
	return risk.Assess(e.params, e.analyzer.Run())
}

// InvestmentSummary returns the flattened snapshot for reporting, built
// from the loan scalars and the base scenario.
func (e *Evaluator) InvestmentSummary() domain.InvestmentSummary {
	base := e.analyzer.Run()[domain.ScenarioBase]

	return domain.InvestmentSummary{
		PropertyPrice:          e.params.PropertyPrice,
		DownPayment:            e.params.DownPayment,
		LoanAmount:             e.params.LoanAmount(),
		MonthlyPayment:         e.loan.MonthlyPayment(),
		TotalInterest:          e.loan.TotalInterest(),
		TotalInitialInvestment: e.params.TotalInitialInvestment(),
		BaseMonthlyRent:        e.params.BaseMonthlyRent,
		EffectiveMonthlyRent:   base.EffectiveMonthlyRentYear1,
		MonthlyCashFlow:        base.AverageMonthlyCashFlow,
		AnnualCashFlow:         base.AverageAnnualCashFlow,
		ROIPercent:             base.ROIPercent,
		IRRPercent:             base.IRRPercent,
		HoldingPeriodYears:     e.params.HoldingPeriodYears,
		ExpectedResaleValue:    e.params.ResaleValueOrDefault(),
		ExpectedCapitalGain:    e.params.ExpectedCapitalGain(),
	}
}
