package domain

// RiskLevel grades the overall risk of an investment.
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "LOW"
	RiskLevelMedium RiskLevel = "MEDIUM"
	RiskLevelHigh   RiskLevel = "HIGH"
)

// RiskAssessment summarizes the qualitative risk view of an evaluation:
// an overall level, the factors that contributed to it, and a list of
// recommendations for the investor.
type RiskAssessment struct {
	Level           RiskLevel
	Factors         []string
	Recommendations []string
}
