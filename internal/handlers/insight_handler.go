package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"greenscore-api/internal/repositories"
	"greenscore-api/internal/services"
)

// InsightHandler handles insight generation requests
type InsightHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
	scoringService  services.ScoringServiceInterface
	insightService  services.InsightServiceInterface
	metrics         services.MetricsRecorderInterface
}

// NewInsightHandler creates a new insight handler
func NewInsightHandler(
	transactionRepo repositories.TransactionRepositoryInterface,
	scoringService services.ScoringServiceInterface,
	insightService services.InsightServiceInterface,
	metrics services.MetricsRecorderInterface,
) *InsightHandler {
	return &InsightHandler{
		transactionRepo: transactionRepo,
		scoringService:  scoringService,
		insightService:  insightService,
		metrics:         metrics,
	}
}

// GetInsights returns the sustainability insights for the demo dataset
// @Summary Get insights
// @Description Return summary, highlights, recommendations and ESG insights derived from all transactions
// @Tags Insights
// @Produce json
// @Success 200 {object} models.InsightBundle "Insight bundle"
// @Router /insights [get]
func (h *InsightHandler) GetInsights(c echo.Context) error {
	transactions := h.transactionRepo.GetAll()
	report := h.scoringService.CalculateScore(transactions)
	insights := h.insightService.GenerateInsights(transactions, report.Score)

	h.metrics.IncrementCounter("insight_request", nil)

	return c.JSON(http.StatusOK, insights)
}
