package metrics

import (
	"math"

	"github.com/propeval/propeval-backend/internal/domain"
	"github.com/propeval/propeval-backend/internal/usecase/loan"
)

// PaybackCapYears is the sentinel for "no payback within a practical
// horizon". A capped value keeps downstream serialization simple where
// infinity would not.
const PaybackCapYears = 999.0

// DebtServiceCoverageRatio is annual net operating income over annual
// debt service. With no debt service it degrades to +Inf when there is
// net income, 0 otherwise, preserving the ratio's monotonic meaning.
func DebtServiceCoverageRatio(annualNetIncome, annualDebtService float64) float64 {
	if annualDebtService <= 0 {
		if annualNetIncome > 0 {
			return math.Inf(1)
		}
		return 0
	}
	return annualNetIncome / annualDebtService
}

// CashOnCashReturn is the average annual cash flow over total cash
// invested, as a percentage. Degenerate investments yield 0.
func CashOnCashReturn(avgAnnualCashFlow, totalCashInvested float64) float64 {
	if totalCashInvested <= 0 {
		return 0
	}
	return (avgAnnualCashFlow / totalCashInvested) * 100
}

// CapRate is the year-1 net operating income over the property price, as
// a percentage. A non-positive price yields 0.
func CapRate(annualNetIncome, propertyPrice float64) float64 {
	if propertyPrice <= 0 {
		return 0
	}
	return (annualNetIncome / propertyPrice) * 100
}

// PaybackPeriod walks the cash-flow schedule cumulatively and reports the
// years until the total initial investment is recovered.
// Logic:
//   - within the schedule: full years plus a fractional-year
//     interpolation inside the crossing year
//   - past the schedule: linear extrapolation using the final year's flow,
//     provided that flow is positive
//   - no eventual recovery (final flow <= 0) or empty schedule: the
//     PaybackCapYears sentinel
//
// The result is always capped at PaybackCapYears.
func PaybackPeriod(totalInitialInvestment float64, cashFlowSchedule []float64) float64 {
	if totalInitialInvestment <= 0 {
		return 0
	}
	if len(cashFlowSchedule) == 0 {
		return PaybackCapYears
	}

	cumulative := 0.0
	for i, flow := range cashFlowSchedule {
		previous := cumulative
		cumulative += flow
		if cumulative >= totalInitialInvestment {
			fraction := 0.0
			if flow > 0 {
				fraction = (totalInitialInvestment - previous) / flow
			}
			return math.Min(float64(i)+fraction, PaybackCapYears)
		}
	}

	finalFlow := cashFlowSchedule[len(cashFlowSchedule)-1]
	if finalFlow <= 0 {
		return PaybackCapYears
	}

	years := float64(len(cashFlowSchedule)) + (totalInitialInvestment-cumulative)/finalFlow
	return math.Min(years, PaybackCapYears)
}

// Service derives the supplementary return ratios from the base scenario.
type Service struct {
	Params domain.InvestmentParameters
	Loan   *loan.Model
}

// NewService creates a new metrics Service instance.
func NewService(params domain.InvestmentParameters, loanModel *loan.Model) *Service {
	return &Service{
		Params: params,
		Loan:   loanModel,
	}
}

// Advanced computes the advanced metric set from the base scenario's
// result. Only the base scenario feeds these ratios.
func (s *Service) Advanced(base domain.ScenarioResult) domain.AdvancedMetrics {
	annualDebtService := s.Loan.AnnualDebtService()
	totalInvestment := s.Params.TotalInitialInvestment()

	netIncomeYear1 := 0.0
	if len(base.NetIncomeSchedule) > 0 {
		netIncomeYear1 = base.NetIncomeSchedule[0]
	}

	return domain.AdvancedMetrics{
		DSCR:                   DebtServiceCoverageRatio(netIncomeYear1, annualDebtService),
		CashOnCashReturn:       CashOnCashReturn(base.AverageAnnualCashFlow, totalInvestment),
		PaybackPeriodYears:     PaybackPeriod(totalInvestment, base.CashFlowSchedule),
		CapRate:                CapRate(netIncomeYear1, s.Params.PropertyPrice),
		AnnualDebtService:      annualDebtService,
		TotalInitialInvestment: totalInvestment,
	}
}
