package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"greenscore-api/internal/dto"
	"greenscore-api/internal/errors"
	"greenscore-api/internal/services"
)

const maxClassifyBatchSize = 100

// ClassifyHandler handles transaction classification requests
type ClassifyHandler struct {
	classifierService services.ClassifierServiceInterface
	metrics           services.MetricsRecorderInterface
}

// NewClassifyHandler creates a new classification handler
func NewClassifyHandler(
	classifierService services.ClassifierServiceInterface,
	metrics services.MetricsRecorderInterface,
) *ClassifyHandler {
	return &ClassifyHandler{
		classifierService: classifierService,
		metrics:           metrics,
	}
}

// Classify classifies a transaction description
// @Summary Classify a transaction
// @Description Classify a transaction description into a category with an eco impact rating and reasoning
// @Tags Classification
// @Accept json
// @Produce json
// @Param request body dto.ClassifyRequest true "Transaction to classify"
// @Success 200 {object} models.ClassificationResult "Classification result"
// @Failure 400 {object} errors.ErrorResponse "CLASSIFICATION_001 - Empty description or VALIDATION_001 - Invalid payload"
// @Router /classify [post]
func (h *ClassifyHandler) Classify(c echo.Context) error {
	var req dto.ClassifyRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if strings.TrimSpace(req.Description) == "" {
		return SendError(c, errors.ClassificationEmptyDescription)
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	start := time.Now()
	result := h.classifierService.ClassifyWithFallback(c.Request().Context(), req.Description)

	h.metrics.IncrementCounter("classification", map[string]string{
		"method":   result.ClassificationMethod,
		"category": result.Category,
	})
	h.metrics.RecordProcessingTime("classification", time.Since(start))

	return c.JSON(http.StatusOK, result)
}

// ClassifyBatch classifies several descriptions in one call
// @Summary Classify a batch of transactions
// @Description Classify up to 100 transaction descriptions, preserving input order
// @Tags Classification
// @Accept json
// @Produce json
// @Param request body dto.ClassifyBatchRequest true "Descriptions to classify"
// @Success 200 {array} models.ClassificationResult "Classification results"
// @Failure 422 {object} errors.ErrorResponse "TRANSACTION_004 - Empty batch or CLASSIFICATION_002 - Batch too large"
// @Router /classify/batch [post]
func (h *ClassifyHandler) ClassifyBatch(c echo.Context) error {
	var req dto.ClassifyBatchRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if len(req.Descriptions) == 0 {
		return SendError(c, errors.TransactionEmptyBatch)
	}
	if len(req.Descriptions) > maxClassifyBatchSize {
		return SendError(c, errors.ClassificationBatchTooLarge)
	}

	start := time.Now()
	results := h.classifierService.ClassifyBatch(req.Descriptions)

	for _, result := range results {
		h.metrics.IncrementCounter("classification", map[string]string{
			"method":   result.ClassificationMethod,
			"category": result.Category,
		})
	}
	h.metrics.RecordProcessingTime("classification", time.Since(start))

	return c.JSON(http.StatusOK, results)
}
