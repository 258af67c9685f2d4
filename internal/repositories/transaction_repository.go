package repositories

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"greenscore-api/internal/models"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository serves the demo transaction dataset from memory
type transactionRepository struct {
	transactions []models.Transaction
	byID         map[string]int
}

// NewTransactionRepository creates a repository preloaded with the demo dataset
func NewTransactionRepository() TransactionRepositoryInterface {
	transactions := demoTransactions()
	byID := make(map[string]int, len(transactions))
	for i, txn := range transactions {
		byID[txn.ID] = i
	}
	return &transactionRepository{
		transactions: transactions,
		byID:         byID,
	}
}

// GetAll returns every demo transaction in dataset order
func (r *transactionRepository) GetAll() []models.Transaction {
	out := make([]models.Transaction, len(r.transactions))
	copy(out, r.transactions)
	return out
}

// GetByID retrieves a single transaction by its ID
func (r *transactionRepository) GetByID(id string) (*models.Transaction, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, ErrTransactionNotFound
	}
	txn := r.transactions[i]
	return &txn, nil
}

// GetByCategory returns transactions matching the category, case-insensitively
func (r *transactionRepository) GetByCategory(category string) []models.Transaction {
	var out []models.Transaction
	for _, txn := range r.transactions {
		if strings.EqualFold(txn.Category, category) {
			out = append(out, txn)
		}
	}
	return out
}

// Count reports the dataset size
func (r *transactionRepository) Count() int {
	return len(r.transactions)
}

func mustDate(year int, month time.Month, day int) models.Date {
	return models.NewDate(year, month, day)
}

// demoTransactions is the fixed demo dataset used by the scoring showcase
func demoTransactions() []models.Transaction {
	return []models.Transaction{
		{
			ID:          "TXN001",
			Description: "Metro Rail Monthly Pass",
			Amount:      decimal.NewFromFloat(1500.00),
			Category:    models.CategoryTransport,
			Merchant:    "Delhi Metro",
			Date:        mustDate(2026, time.January, 10),
			EcoImpact:   5,
			Reasoning:   "Public transport significantly reduces carbon emissions compared to private vehicles",
		},
		{
			ID:          "TXN002",
			Description: "Electric Vehicle Charging",
			Amount:      decimal.NewFromFloat(450.00),
			Category:    models.CategoryTransport,
			Merchant:    "Tata Power EV",
			Date:        mustDate(2026, time.January, 9),
			EcoImpact:   4,
			Reasoning:   "Electric vehicles produce zero direct emissions and support clean energy transition",
		},
		{
			ID:          "TXN003",
			Description: "Organic Grocery Shopping",
			Amount:      decimal.NewFromFloat(2300.00),
			Category:    models.CategoryFood,
			Merchant:    "Nature's Basket",
			Date:        mustDate(2026, time.January, 8),
			EcoImpact:   3,
			Reasoning:   "Organic products avoid harmful pesticides and support sustainable farming",
		},
		{
			ID:          "TXN004",
			Description: "Fast Fashion Purchase",
			Amount:      decimal.NewFromFloat(4500.00),
			Category:    models.CategoryShopping,
			Merchant:    "QuickTrends",
			Date:        mustDate(2026, time.January, 7),
			EcoImpact:   -4,
			Reasoning:   "Fast fashion contributes to textile waste and high water consumption",
		},
		{
			ID:          "TXN005",
			Description: "Solar Panel Installation EMI",
			Amount:      decimal.NewFromFloat(8500.00),
			Category:    models.CategoryUtilities,
			Merchant:    "SunPower India",
			Date:        mustDate(2026, time.January, 6),
			EcoImpact:   5,
			Reasoning:   "Solar energy investment reduces dependency on fossil fuels",
		},
		{
			ID:          "TXN006",
			Description: "Flight Ticket - Domestic",
			Amount:      decimal.NewFromFloat(7500.00),
			Category:    models.CategoryTransport,
			Merchant:    "AirIndia",
			Date:        mustDate(2026, time.January, 5),
			EcoImpact:   -5,
			Reasoning:   "Air travel has high carbon emissions per passenger kilometer",
		},
		{
			ID:          "TXN007",
			Description: "Plant-Based Restaurant",
			Amount:      decimal.NewFromFloat(850.00),
			Category:    models.CategoryFood,
			Merchant:    "Green Leaf Cafe",
			Date:        mustDate(2026, time.January, 4),
			EcoImpact:   4,
			Reasoning:   "Plant-based meals have significantly lower environmental footprint",
		},
		{
			ID:          "TXN008",
			Description: "Ride Share - Carpool",
			Amount:      decimal.NewFromFloat(250.00),
			Category:    models.CategoryTransport,
			Merchant:    "QuickRide",
			Date:        mustDate(2026, time.January, 3),
			EcoImpact:   3,
			Reasoning:   "Carpooling reduces per-person emissions and road congestion",
		},
		{
			ID:          "TXN009",
			Description: "Electricity Bill Payment",
			Amount:      decimal.NewFromFloat(3200.00),
			Category:    models.CategoryUtilities,
			Merchant:    "BSES Rajdhani",
			Date:        mustDate(2026, time.January, 2),
			EcoImpact:   0,
			Reasoning:   "Standard utility - impact depends on energy source mix",
		},
		{
			ID:          "TXN010",
			Description: "Petrol Fuel Purchase",
			Amount:      decimal.NewFromFloat(5000.00),
			Category:    models.CategoryTransport,
			Merchant:    "Indian Oil",
			Date:        mustDate(2026, time.January, 1),
			EcoImpact:   -4,
			Reasoning:   "Fossil fuel consumption contributes to carbon emissions",
		},
		{
			ID:          "TXN011",
			Description: "Thrift Store Shopping",
			Amount:      decimal.NewFromFloat(1200.00),
			Category:    models.CategoryShopping,
			Merchant:    "SecondChance Store",
			Date:        mustDate(2025, time.December, 30),
			EcoImpact:   4,
			Reasoning:   "Second-hand shopping reduces textile waste and manufacturing demand",
		},
		{
			ID:          "TXN012",
			Description: "Digital Subscription - Netflix",
			Amount:      decimal.NewFromFloat(649.00),
			Category:    models.CategoryEntertainment,
			Merchant:    "Netflix",
			Date:        mustDate(2025, time.December, 29),
			EcoImpact:   1,
			Reasoning:   "Digital entertainment has lower footprint than physical media",
		},
		{
			ID:          "TXN013",
			Description: "Charity Donation - Tree Plantation",
			Amount:      decimal.NewFromFloat(2000.00),
			Category:    models.CategoryDonations,
			Merchant:    "GreenEarth Foundation",
			Date:        mustDate(2025, time.December, 28),
			EcoImpact:   5,
			Reasoning:   "Direct contribution to carbon sequestration and biodiversity",
		},
		{
			ID:          "TXN014",
			Description: "Plastic Bottled Water - Bulk",
			Amount:      decimal.NewFromFloat(800.00),
			Category:    models.CategoryFood,
			Merchant:    "MegaMart",
			Date:        mustDate(2025, time.December, 27),
			EcoImpact:   -3,
			Reasoning:   "Single-use plastic contributes to pollution and waste",
		},
		{
			ID:          "TXN015",
			Description: "Bicycle Purchase",
			Amount:      decimal.NewFromFloat(12000.00),
			Category:    models.CategoryTransport,
			Merchant:    "Hero Cycles",
			Date:        mustDate(2025, time.December, 26),
			EcoImpact:   5,
			Reasoning:   "Zero-emission transportation with health benefits",
		},
		{
			ID:          "TXN016",
			Description: "UPI Payment - Local Vendor",
			Amount:      decimal.NewFromFloat(150.00),
			Category:    models.CategoryFood,
			Merchant:    "Street Food Vendor",
			Date:        mustDate(2025, time.December, 25),
			EcoImpact:   2,
			Reasoning:   "Digital payments and local sourcing reduce environmental impact",
		},
	}
}
