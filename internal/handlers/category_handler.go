package handlers

import (
	"math"
	"net/http"

	"github.com/labstack/echo/v4"

	"greenscore-api/internal/dto"
	"greenscore-api/internal/repositories"
)

// CategoryHandler handles category statistics requests
type CategoryHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(transactionRepo repositories.TransactionRepositoryInterface) *CategoryHandler {
	return &CategoryHandler{
		transactionRepo: transactionRepo,
	}
}

// GetCategories returns per-category statistics for the demo dataset
// @Summary Get category statistics
// @Description Return count, total amount and average eco impact per category
// @Tags Categories
// @Produce json
// @Success 200 {object} map[string]dto.CategoryStats "Statistics keyed by category"
// @Router /categories [get]
func (h *CategoryHandler) GetCategories(c echo.Context) error {
	stats := make(map[string]dto.CategoryStats)
	impactSums := make(map[string]int)

	for _, txn := range h.transactionRepo.GetAll() {
		category := txn.EffectiveCategory()
		entry := stats[category]
		entry.Count++
		entry.TotalAmount += txn.Amount.InexactFloat64()
		impactSums[category] += txn.EcoImpact
		stats[category] = entry
	}

	for category, entry := range stats {
		entry.AvgImpact = math.Round(float64(impactSums[category])/float64(entry.Count)*100) / 100
		stats[category] = entry
	}

	return c.JSON(http.StatusOK, stats)
}
