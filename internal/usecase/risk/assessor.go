package risk

import (
	"github.com/propeval/propeval-backend/internal/domain"
)

// Thresholds for the qualitative risk grading.
const (
	thinMonthlyCashFlow    = 200.0
	comfortMonthlyCashFlow = 500.0
	lowROIPercent          = 5.0
	marketROIPercent       = 8.0
	lowDownPaymentPercent  = 15.0
	lowOccupancyPercent    = 90.0
	safeOccupancyPercent   = 95.0
)

// Assess grades the investment from its scenario results.
// Logic:
//   - negative base or conservative cash flow: HIGH
//   - thin cash flow margin, low ROI, low down-payment ratio, or a low
//     occupancy assumption: at least MEDIUM
//   - otherwise LOW
func Assess(params domain.InvestmentParameters, scenarios map[domain.Scenario]domain.ScenarioResult) domain.RiskAssessment {
	base := scenarios[domain.ScenarioBase]
	conservative := scenarios[domain.ScenarioConservative]

	level := domain.RiskLevelLow
	var factors []string

	escalate := func(to domain.RiskLevel) {
		if to == domain.RiskLevelHigh || level == domain.RiskLevelLow {
			level = to
		}
	}

	if base.AverageMonthlyCashFlow < 0 {
		factors = append(factors, "Negative cash flow in base scenario")
		escalate(domain.RiskLevelHigh)
	} else if base.AverageMonthlyCashFlow < thinMonthlyCashFlow {
		factors = append(factors, "Low cash flow margin")
		escalate(domain.RiskLevelMedium)
	}

	if conservative.AverageMonthlyCashFlow < 0 {
		factors = append(factors, "Negative cash flow in conservative scenario")
		escalate(domain.RiskLevelHigh)
	}

	if base.ROIPercent < lowROIPercent {
		factors = append(factors, "Low ROI compared to market alternatives")
		escalate(domain.RiskLevelMedium)
	}

	downPaymentRatio := (params.DownPayment / params.PropertyPrice) * 100
	if downPaymentRatio < lowDownPaymentPercent {
		factors = append(factors, "Low down payment increases leverage risk")
		escalate(domain.RiskLevelMedium)
	}

	if params.OccupancyRate < lowOccupancyPercent {
		factors = append(factors, "Low occupancy rate assumption increases vacancy risk")
		escalate(domain.RiskLevelMedium)
	}

	return domain.RiskAssessment{
		Level:           level,
		Factors:         factors,
		Recommendations: recommendations(params, base, level),
	}
}

func recommendations(params domain.InvestmentParameters, base domain.ScenarioResult, level domain.RiskLevel) []string {
	var recs []string

	if level == domain.RiskLevelHigh {
		recs = append(recs,
			"Consider increasing down payment to improve cash flow",
			"Negotiate a lower purchase price or higher rental income",
			"Explore properties in different markets with better rent-to-price ratios",
		)
	}

	if base.ROIPercent < marketROIPercent {
		recs = append(recs, "Compare with other investment options (stocks, bonds, REITs)")
	}

	if params.OccupancyRate < safeOccupancyPercent {
		recs = append(recs, "Research local rental market to validate occupancy assumptions")
	}

	if base.AverageMonthlyCashFlow < comfortMonthlyCashFlow {
		recs = append(recs, "Build a larger cash reserve for unexpected expenses and vacancies")
	}

	recs = append(recs,
		"Conduct thorough due diligence on the property and neighborhood",
		"Consider hiring a property management company if you lack experience",
		"Regularly review and adjust rent to market rates",
		"Maintain adequate insurance coverage for the property",
	)

	return recs
}
