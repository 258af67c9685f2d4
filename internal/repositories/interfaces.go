package repositories

import (
	"greenscore-api/internal/models"
)

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	GetAll() []models.Transaction
	GetByID(id string) (*models.Transaction, error)
	GetByCategory(category string) []models.Transaction
	Count() int
}

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	GetAll() []models.User
	GetByID(id string) (*models.User, error)
	Search(query string) []models.User
	GetTransactions(userID string) ([]models.Transaction, error)
	Count() int
}
