package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"greenscore-api/internal/dto"
	"greenscore-api/internal/repositories"
	"greenscore-api/internal/services"
)

// IncentiveHandler handles incentive and tier comparison requests
type IncentiveHandler struct {
	transactionRepo  repositories.TransactionRepositoryInterface
	scoringService   services.ScoringServiceInterface
	incentiveService services.IncentiveServiceInterface
	metrics          services.MetricsRecorderInterface
}

// NewIncentiveHandler creates a new incentive handler
func NewIncentiveHandler(
	transactionRepo repositories.TransactionRepositoryInterface,
	scoringService services.ScoringServiceInterface,
	incentiveService services.IncentiveServiceInterface,
	metrics services.MetricsRecorderInterface,
) *IncentiveHandler {
	return &IncentiveHandler{
		transactionRepo:  transactionRepo,
		scoringService:   scoringService,
		incentiveService: incentiveService,
		metrics:          metrics,
	}
}

// GetIncentives returns the incentives unlocked by the current GreenScore
// @Summary Get eligible incentives
// @Description Return the current tier, eligible incentives and next tier progress for the dataset score
// @Tags Incentives
// @Produce json
// @Success 200 {object} dto.IncentivesResponse "Incentive offer"
// @Router /incentives [get]
func (h *IncentiveHandler) GetIncentives(c echo.Context) error {
	transactions := h.transactionRepo.GetAll()
	report := h.scoringService.CalculateScore(transactions)

	offer, err := h.incentiveService.IncentivesForScore(report.Score)
	if err != nil {
		return SendSystemError(c, err)
	}

	h.metrics.IncrementCounter("incentive_lookup", map[string]string{"tier": offer.CurrentTier.TierID})

	return c.JSON(http.StatusOK, dto.IncentivesResponse{
		GreenScore:     report.Score,
		IncentiveOffer: *offer,
	})
}

// GetComparison returns the benefit terms of every tier
// @Summary Compare tiers
// @Description Return the full tier ladder with the incentive terms of each tier, highest first
// @Tags Incentives
// @Produce json
// @Success 200 {object} dto.TierComparisonResponse "Tier comparison"
// @Router /incentives/comparison [get]
func (h *IncentiveHandler) GetComparison(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.TierComparisonResponse{
		Tiers: h.incentiveService.TierComparison(),
	})
}
