package domain

// Scenario identifies one of the three fixed rent scenarios.
// The set is closed: scenario handling is meant to be exhaustive,
// not an open-ended mapping.
type Scenario string

const (
	ScenarioConservative Scenario = "CONSERVATIVE"
	ScenarioBase         Scenario = "BASE"
	ScenarioOptimistic   Scenario = "OPTIMISTIC"
)

// Scenarios returns all scenarios in their conventional order.
func Scenarios() []Scenario {
	return []Scenario{ScenarioConservative, ScenarioBase, ScenarioOptimistic}
}

// RentMultiplier returns the fixed rent multiplier for the scenario.
// Unknown scenarios behave as the base case.
func (s Scenario) RentMultiplier() float64 {
	switch s {
	case ScenarioConservative:
		return 0.85
	case ScenarioOptimistic:
		return 1.15
	default:
		return 1.0
	}
}

// ScenarioResult holds the projected performance of one scenario over the
// holding period. IRRPercent is nil when the rate cannot be determined;
// callers must treat that as "unavailable", never as zero.
type ScenarioResult struct {
	Scenario                  Scenario
	RentMultiplier            float64
	MonthlyRentYear1          float64
	EffectiveMonthlyRentYear1 float64
	NetIncomeSchedule         []float64 // one entry per holding year, pre debt service
	CashFlowSchedule          []float64 // one entry per holding year, post debt service
	AverageAnnualNetIncome    float64
	AverageAnnualCashFlow     float64
	AverageMonthlyCashFlow    float64
	ROIPercent                float64
	IRRPercent                *float64
}
