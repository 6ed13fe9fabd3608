package rest

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/propeval/propeval-backend/internal/domain"
	"github.com/propeval/propeval-backend/internal/usecase/evaluation"
)

// Server exposes the evaluation engine over HTTP/JSON. It holds no state:
// every request constructs its own evaluator from the posted parameters.
type Server struct{}

// NewServer creates a new REST server instance.
func NewServer() *Server {
	return &Server{}
}

// RegisterRoutes attaches the evaluation endpoints to a router group.
func (s *Server) RegisterRoutes(r gin.IRouter) {
	r.POST("/evaluations", s.Evaluate)
	r.POST("/evaluations/amortization", s.Amortization)
}

// Evaluate handles POST /evaluations: the full analysis of one parameter
// set (summary, scenario set, advanced metrics, risk assessment).
func (s *Server) Evaluate(c *gin.Context) {
	var req EvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ev, err := evaluation.New(req.toParams())
	if err != nil {
		writeError(c, err)
		return
	}

	scenarios := ev.ScenarioAnalysis()
	scenarioResponses := make(map[string]ScenarioResponse, len(scenarios))
	for name, result := range scenarios {
		scenarioResponses[strings.ToLower(string(name))] = newScenarioResponse(result)
	}

	c.JSON(http.StatusOK, EvaluationResponse{
		EvaluationID: uuid.NewString(),
		Summary:      newSummaryResponse(ev.InvestmentSummary()),
		Scenarios:    scenarioResponses,
		Metrics:      newMetricsResponse(ev.AdvancedMetrics()),
		Risk:         newRiskResponse(ev.RiskAssessment()),
	})
}

// Amortization handles POST /evaluations/amortization: the loan's
// amortization schedule, optionally truncated to a period count.
func (s *Server) Amortization(c *gin.Context) {
	var req AmortizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ev, err := evaluation.New(req.toParams())
	if err != nil {
		writeError(c, err)
		return
	}

	schedule := ev.AmortizationSchedule(req.Periods)
	entries := make([]AmortizationEntryResponse, 0, len(schedule))
	for _, entry := range schedule {
		entries = append(entries, AmortizationEntryResponse{
			Period:    entry.Period,
			Payment:   round2(entry.Payment),
			Principal: round2(entry.Principal),
			Interest:  round2(entry.Interest),
			Balance:   round2(entry.Balance),
		})
	}

	c.JSON(http.StatusOK, AmortizationResponse{
		EvaluationID: uuid.NewString(),
		Entries:      entries,
	})
}

// writeError maps domain errors to HTTP status codes: validation failures
// become 400, anything else 500.
func writeError(c *gin.Context, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
