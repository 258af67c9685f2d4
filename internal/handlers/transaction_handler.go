package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"greenscore-api/internal/dto"
	"greenscore-api/internal/errors"
	"greenscore-api/internal/models"
	"greenscore-api/internal/repositories"
)

// TransactionHandler handles demo transaction dataset requests
type TransactionHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionRepo repositories.TransactionRepositoryInterface) *TransactionHandler {
	return &TransactionHandler{
		transactionRepo: transactionRepo,
	}
}

// ListTransactions returns the demo dataset, optionally filtered by category
// @Summary List transactions
// @Description Return all demo transactions, optionally filtered by category (case-insensitive)
// @Tags Transactions
// @Produce json
// @Param category query string false "Filter by category" Enums(Transport, Food, Shopping, Utilities, Entertainment, Donations, Other)
// @Success 200 {object} dto.TransactionListResponse "Transactions with count"
// @Failure 400 {object} errors.ErrorResponse "TRANSACTION_002 - Invalid category"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	var transactions []models.Transaction

	if category := c.QueryParam("category"); category != "" {
		if !isKnownCategory(category) {
			return SendError(c, errors.TransactionInvalidCategory,
				errors.WithDetails("Unknown category: "+category))
		}
		transactions = h.transactionRepo.GetByCategory(category)
	} else {
		transactions = h.transactionRepo.GetAll()
	}

	if transactions == nil {
		transactions = []models.Transaction{}
	}

	return c.JSON(http.StatusOK, dto.TransactionListResponse{
		Count:        len(transactions),
		Transactions: transactions,
	})
}

// GetTransaction returns a single demo transaction by ID
// @Summary Get transaction by ID
// @Description Return one demo transaction with its eco impact data
// @Tags Transactions
// @Produce json
// @Param id path string true "Transaction ID, e.g. TXN001"
// @Success 200 {object} models.Transaction "Transaction details"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	transaction, err := h.transactionRepo.GetByID(c.Param("id"))
	if err != nil {
		if err == repositories.ErrTransactionNotFound {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, transaction)
}

// isKnownCategory reports whether the name matches a category, ignoring case
func isKnownCategory(category string) bool {
	for _, known := range models.AllCategories() {
		if strings.EqualFold(known, category) {
			return true
		}
	}
	return false
}
