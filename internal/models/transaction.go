package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Transaction categories form a closed enumeration; anything the classifier
// cannot place ends up in CategoryOther.
const (
	CategoryTransport     = "Transport"
	CategoryFood          = "Food"
	CategoryShopping      = "Shopping"
	CategoryUtilities     = "Utilities"
	CategoryEntertainment = "Entertainment"
	CategoryDonations     = "Donations"
	CategoryOther         = "Other"
)

// Eco impact bounds for a single transaction.
const (
	MinEcoImpact = -5
	MaxEcoImpact = 5
)

// AllCategories returns all valid category constants
func AllCategories() []string {
	return []string{
		CategoryTransport,
		CategoryFood,
		CategoryShopping,
		CategoryUtilities,
		CategoryEntertainment,
		CategoryDonations,
		CategoryOther,
	}
}

// IsValidCategory checks if a category string is valid
func IsValidCategory(category string) bool {
	for _, validCategory := range AllCategories() {
		if category == validCategory {
			return true
		}
	}
	return false
}

// NormalizeCategory resolves a case-insensitive category name to its canonical
// form. Unknown categories resolve to CategoryOther.
func NormalizeCategory(category string) string {
	for _, validCategory := range AllCategories() {
		if strings.EqualFold(category, validCategory) {
			return validCategory
		}
	}
	return CategoryOther
}

// Transaction represents a single classified financial transaction.
// Once classified, a transaction is immutable; all pipeline stages treat it
// as a value.
type Transaction struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id,omitempty"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Merchant    string          `json:"merchant,omitempty"`
	Date        Date            `json:"date"`
	EcoImpact   int             `json:"eco_impact"`
	Reasoning   string          `json:"reasoning"`
}

// EffectiveCategory returns the transaction category, defaulting to Other
// when the field is missing.
func (t *Transaction) EffectiveCategory() string {
	if t.Category == "" {
		return CategoryOther
	}
	return t.Category
}

// DescriptionContainsAny reports whether the lower-cased description contains
// any of the given markers. Markers are expected to be lower case.
func (t *Transaction) DescriptionContainsAny(markers ...string) bool {
	lower := strings.ToLower(t.Description)
	for _, marker := range markers {
		if marker != "" && strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// Marker keyword sets used by the insight and scoring layers.
var (
	// DonationMarkers flag charitable activity in a description.
	DonationMarkers = []string{"donation", "charity"}
	// DigitalPaymentMarkers flag digital/transparent payment rails.
	DigitalPaymentMarkers = []string{"upi", "digital"}
)

// IsDonation reports whether the transaction description carries a
// donation/charity marker.
func (t *Transaction) IsDonation() bool {
	return t.DescriptionContainsAny(DonationMarkers...)
}

// IsDigitalPayment reports whether the transaction description carries a
// digital-payment marker.
func (t *Transaction) IsDigitalPayment() bool {
	return t.DescriptionContainsAny(DigitalPaymentMarkers...)
}

// FormatTransactionID builds the canonical per-user transaction identifier,
// e.g. "USR0001-TXN003".
func FormatTransactionID(userID string, sequence int) string {
	return fmt.Sprintf("%s-TXN%03d", userID, sequence)
}
