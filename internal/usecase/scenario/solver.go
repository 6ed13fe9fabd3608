package scenario

import (
	"errors"
	"math"
)

// RateSolver solves for the discount rate at which the net present value
// of a cash-flow vector (index 0 = period 0) equals zero.
// Implementations must guarantee termination.
type RateSolver interface {
	Rate(cashFlows []float64) (float64, error)
}

var (
	// ErrNoConvergence means no real root could be found for the vector.
	ErrNoConvergence = errors.New("rate solver did not converge")
	// ErrSolverUnavailable means no solver capability is present.
	ErrSolverUnavailable = errors.New("rate solver unavailable")
)

// NewtonSolver finds the rate by Newton iteration with a bracketed
// bisection fallback. Iteration counts are bounded, so a call always
// terminates even on degenerate vectors.
type NewtonSolver struct {
	MaxIterations int
	Tolerance     float64
}

// NewNewtonSolver creates a NewtonSolver with the default bounds.
func NewNewtonSolver() *NewtonSolver {
	return &NewtonSolver{
		MaxIterations: 100,
		Tolerance:     1e-9,
	}
}

// Rate implements RateSolver.
func (s *NewtonSolver) Rate(cashFlows []float64) (float64, error) {
	if len(cashFlows) < 2 {
		return 0, ErrNoConvergence
	}

	// A sign change in the flows is necessary for a root to exist.
	hasInflow, hasOutflow := false, false
	for _, flow := range cashFlows {
		if flow > 0 {
			hasInflow = true
		}
		if flow < 0 {
			hasOutflow = true
		}
	}
	if !hasInflow || !hasOutflow {
		return 0, ErrNoConvergence
	}

	rate := 0.1
	for i := 0; i < s.MaxIterations; i++ {
		value := npv(cashFlows, rate)
		if math.Abs(value) < s.Tolerance {
			return checkRate(rate)
		}

		derivative := npvDerivative(cashFlows, rate)
		if derivative == 0 || math.IsNaN(derivative) || math.IsInf(derivative, 0) {
			break
		}

		next := rate - value/derivative
		// Rates at or below -100% are outside the solution domain.
		if next <= -1 || math.IsNaN(next) || math.IsInf(next, 0) {
			break
		}
		if math.Abs(next-rate) < s.Tolerance {
			return checkRate(next)
		}
		rate = next
	}

	return s.bisect(cashFlows)
}

// bisect scans (-1, 10] for a sign change of the NPV and narrows it down.
func (s *NewtonSolver) bisect(cashFlows []float64) (float64, error) {
	const step = 0.01
	lo, hi := -0.99, 10.0

	left := lo
	leftValue := npv(cashFlows, left)
	bracketFound := false
	for right := lo + step; right <= hi; right += step {
		rightValue := npv(cashFlows, right)
		if leftValue == 0 {
			return checkRate(left)
		}
		if leftValue*rightValue < 0 {
			lo, hi = left, right
			bracketFound = true
			break
		}
		left, leftValue = right, rightValue
	}
	if !bracketFound {
		return 0, ErrNoConvergence
	}

	for i := 0; i < 200; i++ {
		mid := (lo + hi) / 2
		value := npv(cashFlows, mid)
		if math.Abs(value) < s.Tolerance || (hi-lo)/2 < s.Tolerance {
			return checkRate(mid)
		}
		if npv(cashFlows, lo)*value < 0 {
			hi = mid
		} else {
			lo = mid
		}
	}

	return checkRate((lo + hi) / 2)
}

// UnavailableSolver always reports the rate as undeterminable. It is the
// capability fallback for builds without a numeric solver: scenario
// analysis still runs and IRR is simply absent.
type UnavailableSolver struct{}

// Rate implements RateSolver.
func (UnavailableSolver) Rate([]float64) (float64, error) {
	return 0, ErrSolverUnavailable
}

func npv(cashFlows []float64, rate float64) float64 {
	total := 0.0
	for t, flow := range cashFlows {
		total += flow / math.Pow(1+rate, float64(t))
	}
	return total
}

func npvDerivative(cashFlows []float64, rate float64) float64 {
	total := 0.0
	for t, flow := range cashFlows {
		if t == 0 {
			continue
		}
		total -= float64(t) * flow / math.Pow(1+rate, float64(t+1))
	}
	return total
}

func checkRate(rate float64) (float64, error) {
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return 0, ErrNoConvergence
	}
	return rate, nil
}
