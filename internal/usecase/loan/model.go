package loan

import (
	"math"

	"github.com/propeval/propeval-backend/internal/domain"
)

// Model sizes the loan payment and generates amortization schedules for
// one set of investment parameters. The payment is fixed for the life of
// the loan; which formula sizes it depends on the accrual mode.
type Model struct {
	Params domain.InvestmentParameters
}

// NewModel creates a new Model instance for the given parameters.
func NewModel(params domain.InvestmentParameters) *Model {
	return &Model{Params: params}
}

// MonthlyPayment calculates the constant monthly payment.
// Logic:
//   - No financed principal: payment is 0
//   - AMORTIZING with zero rate: straight-line principal / periods
//   - AMORTIZING: standard annuity (PMT) formula
//   - SIMPLE: flat interest on the original principal spread over the term
func (m *Model) MonthlyPayment() float64 {
	principal := m.Params.LoanAmount()
	if principal <= 0 {
		return 0
	}

	numPayments := float64(m.Params.LoanTermYears * 12)

	if m.Params.AccrualModeOrDefault() == domain.AccrualModeSimple {
		totalInterest := principal * (m.Params.AnnualInterestRate / 100) * float64(m.Params.LoanTermYears)
		return (principal + totalInterest) / numPayments
	}

	monthlyRate := m.Params.AnnualInterestRate / 100 / 12
	if monthlyRate == 0 {
		return principal / numPayments
	}

	// PMT = PV * (r * (1 + r)^n) / ((1 + r)^n - 1)
	growth := math.Pow(1+monthlyRate, numPayments)
	return principal * (monthlyRate * growth) / (growth - 1)
}

// TotalPayback is the total amount paid over the loan term.
func (m *Model) TotalPayback() float64 {
	return m.MonthlyPayment() * float64(m.Params.LoanTermYears*12)
}

// TotalInterest is the interest paid over the loan term.
func (m *Model) TotalInterest() float64 {
	return m.TotalPayback() - m.Params.LoanAmount()
}

// AnnualDebtService is one year of loan payments.
func (m *Model) AnnualDebtService() float64 {
	return m.MonthlyPayment() * 12
}

// Schedule generates the amortization schedule for up to the requested
// number of periods. A non-positive request means the full term.
// Generation stops early once the remaining balance reaches zero.
func (m *Model) Schedule(periods int) []domain.AmortizationEntry {
	termPeriods := m.Params.LoanTermYears * 12
	if periods <= 0 || periods > termPeriods {
		periods = termPeriods
	}

	payment := m.MonthlyPayment()
	monthlyRate := m.Params.AnnualInterestRate / 100 / 12
	balance := m.Params.LoanAmount()

	schedule := make([]domain.AmortizationEntry, 0, periods)
	for period := 1; period <= periods; period++ {
		if balance <= 0 {
			break
		}

		interest := balance * monthlyRate
		principal := math.Min(payment-interest, balance)
		balance -= principal
		if balance < 0 {
			balance = 0
		}

		schedule = append(schedule, domain.AmortizationEntry{
			Period:    period,
			Payment:   payment,
			Principal: principal,
			Interest:  interest,
			Balance:   balance,
		})
	}

	return schedule
}
