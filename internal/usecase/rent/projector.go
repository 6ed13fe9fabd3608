package rent

import (
	"math"

	"github.com/propeval/propeval-backend/internal/domain"
)

// Projector computes per-year rent under compounding growth and occupancy
// loss. All methods are pure: growth is computed directly by
// exponentiation for the requested year, so no state accumulates (and no
// drift builds up) between calls.
type Projector struct {
	Params domain.InvestmentParameters
}

// NewProjector creates a new Projector instance for the given parameters.
func NewProjector(params domain.InvestmentParameters) *Projector {
	return &Projector{Params: params}
}

// GrowthFactor returns the compounded rent growth factor for a year
// (1-indexed relative to the holding-period start). Year 1 is always 1.
func (p *Projector) GrowthFactor(year int) float64 {
	return math.Pow(1+p.Params.AnnualRentGrowth/100, float64(year-1))
}

// MonthlyRent is the gross monthly rent for a year under a scenario
// rent multiplier.
func (p *Projector) MonthlyRent(year int, multiplier float64) float64 {
	return p.Params.BaseMonthlyRent * p.GrowthFactor(year) * multiplier
}

// EffectiveMonthlyRent is the occupancy-adjusted monthly rent for a year
// under a scenario rent multiplier.
func (p *Projector) EffectiveMonthlyRent(year int, multiplier float64) float64 {
	return p.MonthlyRent(year, multiplier) * p.Params.OccupancyRate / 100
}
