package repositories

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"greenscore-api/internal/models"
)

type TransactionRepositorySuite struct {
	suite.Suite
	repo TransactionRepositoryInterface
}

func TestTransactionRepositorySuite(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}

func (s *TransactionRepositorySuite) SetupTest() {
	s.repo = NewTransactionRepository()
}

func (s *TransactionRepositorySuite) TestGetAll_ReturnsFullDataset() {
	txns := s.repo.GetAll()

	s.Len(txns, 16)
	s.Equal(16, s.repo.Count())
	s.Equal("TXN001", txns[0].ID)
	s.Equal("TXN016", txns[15].ID)
}

func (s *TransactionRepositorySuite) TestGetAll_ReturnsCopy() {
	txns := s.repo.GetAll()
	txns[0].Description = "mutated"

	s.Equal("Metro Rail Monthly Pass", s.repo.GetAll()[0].Description)
}

func (s *TransactionRepositorySuite) TestGetByID_Found() {
	txn, err := s.repo.GetByID("TXN013")

	s.NoError(err)
	s.Equal("Charity Donation - Tree Plantation", txn.Description)
	s.Equal(models.CategoryDonations, txn.Category)
	s.Equal(5, txn.EcoImpact)
	s.True(txn.Amount.Equal(decimal.NewFromInt(2000)))
}

func (s *TransactionRepositorySuite) TestGetByID_NotFound() {
	txn, err := s.repo.GetByID("TXN999")

	s.Nil(txn)
	s.ErrorIs(err, ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestGetByCategory_CaseInsensitive() {
	upper := s.repo.GetByCategory("Transport")
	lower := s.repo.GetByCategory("transport")

	s.Len(upper, 6)
	s.Equal(upper, lower)
	for _, txn := range upper {
		s.Equal(models.CategoryTransport, txn.Category)
	}
}

func (s *TransactionRepositorySuite) TestGetByCategory_Unknown() {
	s.Empty(s.repo.GetByCategory("Groceries"))
}

func (s *TransactionRepositorySuite) TestDataset_ImpactRange() {
	for _, txn := range s.repo.GetAll() {
		s.GreaterOrEqual(txn.EcoImpact, models.MinEcoImpact)
		s.LessOrEqual(txn.EcoImpact, models.MaxEcoImpact)
		s.True(models.IsValidCategory(txn.Category))
	}
}
