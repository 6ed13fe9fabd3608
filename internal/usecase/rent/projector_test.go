package rent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/propeval/propeval-backend/internal/domain"
)

func testParams() domain.InvestmentParameters {
	return domain.InvestmentParameters{
		PropertyPrice:      100000,
		DownPayment:        20000,
		LoanTermYears:      30,
		AnnualInterestRate: 5.0,
		BaseMonthlyRent:    1000,
		OccupancyRate:      95,
		AnnualRentGrowth:   5,
		HoldingPeriodYears: 10,
	}
}

func TestGrowthFactor_YearOneIsAlwaysOne(t *testing.T) {
	projector := NewProjector(testParams())
	assert.Equal(t, 1.0, projector.GrowthFactor(1))

	// Even with aggressive growth
	params := testParams()
	params.AnnualRentGrowth = 50
	assert.Equal(t, 1.0, NewProjector(params).GrowthFactor(1))
}

func TestGrowthFactor_Compounds(t *testing.T) {
	projector := NewProjector(testParams())

	assert.InDelta(t, 1.05, projector.GrowthFactor(2), 1e-9)
	assert.InDelta(t, 1.05*1.05, projector.GrowthFactor(3), 1e-9)
}

func TestMonthlyRent_GrowthMonotonicity(t *testing.T) {
	projector := NewProjector(testParams())

	for year := 1; year < 10; year++ {
		assert.Greater(t, projector.MonthlyRent(year+1, 1.0), projector.MonthlyRent(year, 1.0))
	}
}

func TestMonthlyRent_FlatWithoutGrowth(t *testing.T) {
	params := testParams()
	params.AnnualRentGrowth = 0
	projector := NewProjector(params)

	for year := 1; year <= 10; year++ {
		assert.Equal(t, 1000.0, projector.MonthlyRent(year, 1.0))
	}
}

func TestMonthlyRent_AppliesMultiplier(t *testing.T) {
	projector := NewProjector(testParams())

	assert.InDelta(t, 850, projector.MonthlyRent(1, 0.85), 1e-9)
	assert.InDelta(t, 1150, projector.MonthlyRent(1, 1.15), 1e-9)
}

func TestEffectiveMonthlyRent_AppliesOccupancy(t *testing.T) {
	projector := NewProjector(testParams())

	assert.InDelta(t, 950, projector.EffectiveMonthlyRent(1, 1.0), 1e-9)

	// Full occupancy leaves gross rent untouched
	params := testParams()
	params.OccupancyRate = 100
	assert.InDelta(t, 1000, NewProjector(params).EffectiveMonthlyRent(1, 1.0), 1e-9)

	// Zero occupancy means no income
	params.OccupancyRate = 0
	assert.Equal(t, 0.0, NewProjector(params).EffectiveMonthlyRent(1, 1.0))
}
