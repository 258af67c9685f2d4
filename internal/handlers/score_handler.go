package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"greenscore-api/internal/dto"
	"greenscore-api/internal/repositories"
	"greenscore-api/internal/services"
)

// esgPillarExplanation is the fixed description of what feeds each pillar
var esgPillarExplanation = dto.ESGExplanation{
	Environmental: "Based on transport, utilities, food, and shopping choices",
	Social:        "Based on donations and community engagement",
	Governance:    "Based on digital payments and transparency",
}

// ScoreHandler handles score and ESG breakdown requests
type ScoreHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
	scoringService  services.ScoringServiceInterface
	metrics         services.MetricsRecorderInterface
}

// NewScoreHandler creates a new score handler
func NewScoreHandler(
	transactionRepo repositories.TransactionRepositoryInterface,
	scoringService services.ScoringServiceInterface,
	metrics services.MetricsRecorderInterface,
) *ScoreHandler {
	return &ScoreHandler{
		transactionRepo: transactionRepo,
		scoringService:  scoringService,
		metrics:         metrics,
	}
}

// GetScore computes the GreenScore over the demo dataset
// @Summary Get the current GreenScore
// @Description Compute the 0-100 GreenScore, category breakdown and ESG components over all transactions
// @Tags Score
// @Produce json
// @Success 200 {object} dto.ScoreResponse "Score with breakdown and ESG components"
// @Router /score [get]
func (h *ScoreHandler) GetScore(c echo.Context) error {
	start := time.Now()

	transactions := h.transactionRepo.GetAll()
	report := h.scoringService.CalculateScore(transactions)
	esg := h.scoringService.ESGBreakdown(transactions)

	h.metrics.IncrementCounter("score_request", map[string]string{"status": report.Status})
	h.metrics.RecordGauge("score", float64(report.Score), nil)
	h.metrics.RecordProcessingTime("scoring", time.Since(start))

	return c.JSON(http.StatusOK, dto.ScoreResponse{
		Score:             report.Score,
		Status:            report.Status,
		Explanation:       report.Explanation,
		Breakdown:         report.Breakdown,
		ESG:               *esg,
		TotalTransactions: report.TotalTransactions,
		NetImpact:         report.NetImpact,
	})
}

// GetESGBreakdown returns the per-pillar ESG scores
// @Summary Get the ESG breakdown
// @Description Return environmental, social and governance component scores with pillar explanations
// @Tags Score
// @Produce json
// @Success 200 {object} dto.ESGBreakdownResponse "ESG component scores"
// @Router /esg-breakdown [get]
func (h *ScoreHandler) GetESGBreakdown(c echo.Context) error {
	transactions := h.transactionRepo.GetAll()
	report := h.scoringService.CalculateScore(transactions)
	esg := h.scoringService.ESGBreakdown(transactions)

	return c.JSON(http.StatusOK, dto.ESGBreakdownResponse{
		OverallScore: report.Score,
		ESGScores:    *esg,
		Explanation:  esgPillarExplanation,
	})
}
