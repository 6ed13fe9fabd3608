package rest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewServer().RegisterRoutes(router.Group("/v1"))
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func validRequest() EvaluationRequest {
	return EvaluationRequest{
		PropertyPrice:      100000,
		DownPayment:        20000,
		LoanTermYears:      30,
		AnnualInterestRate: 5.0,
		BaseMonthlyRent:    1500,
		OccupancyRate:      100,
		EnhancementCosts:   5000,
		HoldingPeriodYears: 10,
	}
}

func TestEvaluate_Success(t *testing.T) {
	router := newTestRouter()

	recorder := postJSON(t, router, "/v1/evaluations", validRequest())

	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp EvaluationResponse
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))

	_, err := uuid.Parse(resp.EvaluationID)
	assert.NoError(t, err)

	assert.Equal(t, 80000.0, resp.Summary.LoanAmount)
	assert.InDelta(t, 429.46, resp.Summary.MonthlyPayment, 0.1)
	assert.Equal(t, 25000.0, resp.Summary.TotalInitialInvestment)
	assert.Equal(t, 120000.0, resp.Summary.ExpectedResaleValue)

	assert.Len(t, resp.Scenarios, 3)
	for _, name := range []string{"conservative", "base", "optimistic"} {
		scenario, ok := resp.Scenarios[name]
		assert.True(t, ok, "missing scenario %s", name)
		assert.Len(t, scenario.CashFlowSchedule, 10)
	}
	assert.Equal(t, 0.85, resp.Scenarios["conservative"].RentMultiplier)
	assert.LessOrEqual(t, resp.Scenarios["conservative"].ROI, resp.Scenarios["optimistic"].ROI)

	assert.NotNil(t, resp.Metrics.DSCR)
	assert.Greater(t, resp.Metrics.AnnualDebtService, 0.0)
	assert.NotEmpty(t, resp.Risk.Level)
	assert.NotEmpty(t, resp.Risk.Recommendations)
}

func TestEvaluate_DefaultsHoldingPeriod(t *testing.T) {
	router := newTestRouter()

	req := validRequest()
	req.HoldingPeriodYears = 0
	recorder := postJSON(t, router, "/v1/evaluations", req)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp EvaluationResponse
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, DefaultHoldingPeriodYears, resp.Summary.HoldingPeriodYears)
}

func TestEvaluate_SimpleInterestMode(t *testing.T) {
	router := newTestRouter()

	req := validRequest()
	req.InterestAccrual = "simple"
	recorder := postJSON(t, router, "/v1/evaluations", req)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp EvaluationResponse
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.InDelta(t, 555.56, resp.Summary.MonthlyPayment, 0.1)
}

func TestEvaluate_ValidationErrorIs400(t *testing.T) {
	router := newTestRouter()

	req := validRequest()
	req.PropertyPrice = 0
	recorder := postJSON(t, router, "/v1/evaluations", req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "property_price")
}

func TestEvaluate_MalformedBodyIs400(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/v1/evaluations", bytes.NewReader([]byte("{not json")))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestEvaluate_UnboundedDSCRIsNull(t *testing.T) {
	router := newTestRouter()

	// Paid in cash: no debt service, positive net income
	req := validRequest()
	req.DownPayment = req.PropertyPrice
	recorder := postJSON(t, router, "/v1/evaluations", req)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp EvaluationResponse
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Nil(t, resp.Metrics.DSCR)
	assert.Equal(t, 0.0, resp.Metrics.AnnualDebtService)
}

func TestAmortization_Success(t *testing.T) {
	router := newTestRouter()

	req := AmortizationRequest{EvaluationRequest: validRequest(), Periods: 12}
	recorder := postJSON(t, router, "/v1/evaluations/amortization", req)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp AmortizationResponse
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))

	assert.Len(t, resp.Entries, 12)
	assert.Equal(t, 1, resp.Entries[0].Period)
	// First month's interest on 80000 at 5%/12, rounded to cents
	assert.InDelta(t, 333.33, resp.Entries[0].Interest, 0.01)
}

func TestAmortization_FullTermByDefault(t *testing.T) {
	router := newTestRouter()

	req := AmortizationRequest{EvaluationRequest: validRequest()}
	recorder := postJSON(t, router, "/v1/evaluations/amortization", req)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp AmortizationResponse
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Len(t, resp.Entries, 360)
}

func TestAmortization_ValidationErrorIs400(t *testing.T) {
	router := newTestRouter()

	req := AmortizationRequest{EvaluationRequest: validRequest()}
	req.LoanTermYears = 0
	recorder := postJSON(t, router, "/v1/evaluations/amortization", req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "loan_term_years")
}
