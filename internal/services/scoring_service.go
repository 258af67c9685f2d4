package services

import (
	"math"

	"greenscore-api/internal/models"
)

// Scoring constants. The base score is a neutral midpoint; impacts shift it
// up or down, scaled by how much history is available.
const (
	baseScore        = 50.0
	impactMultiplier = 2.5
	scaleCapCount    = 20
	esgPillarBase    = 50.0
	esgAvgMultiplier = 10.0
	governancePerTxn = 5.0
	emptySetScore    = 50
	emptySetExplain  = "No transactions to analyze"
)

// environmentalCategories and socialCategories partition the pillar inputs.
var (
	environmentalCategories = []string{
		models.CategoryTransport,
		models.CategoryUtilities,
		models.CategoryFood,
		models.CategoryShopping,
	}
	socialCategories = []string{
		models.CategoryDonations,
		models.CategoryEntertainment,
	}
)

type scoringService struct {
	weights map[string]float64
}

// NewScoringService creates a new ScoringServiceInterface instance
func NewScoringService() ScoringServiceInterface {
	return &scoringService{
		weights: initCategoryWeights(),
	}
}

// initCategoryWeights returns the per-category scoring weights. Transport and
// Donations carry the most leverage; Entertainment the least.
func initCategoryWeights() map[string]float64 {
	return map[string]float64{
		models.CategoryTransport:     1.5,
		models.CategoryUtilities:     1.3,
		models.CategoryFood:          1.0,
		models.CategoryShopping:      0.8,
		models.CategoryDonations:     1.5,
		models.CategoryEntertainment: 0.5,
	}
}

// CategoryWeight returns the scoring weight for a category. Unknown
// categories weigh 1.0.
func (s *scoringService) CategoryWeight(category string) float64 {
	if weight, ok := s.weights[category]; ok {
		return weight
	}
	return 1.0
}

// CalculateScore computes the 0-100 sustainability score for a set of
// classified transactions
func (s *scoringService) CalculateScore(transactions []models.Transaction) *models.ScoreReport {
	if len(transactions) == 0 {
		return &models.ScoreReport{
			Score:       emptySetScore,
			Status:      models.ScoreStatusMedium,
			Breakdown:   map[string]models.CategoryImpact{},
			Explanation: emptySetExplain,
		}
	}

	breakdown := s.CategoryBreakdown(transactions)

	var totalWeighted float64
	for _, impact := range breakdown {
		totalWeighted += impact.WeightedImpact
	}

	// Fewer than 20 transactions dampen the adjustment proportionally so a
	// single lucky purchase cannot swing a thin history to the extremes.
	scaleFactor := float64(min(len(transactions), scaleCapCount)) / scaleCapCount
	adjustment := totalWeighted * impactMultiplier * scaleFactor

	rawScore := baseScore + adjustment
	// Half-integer raw scores round to the nearest even score, so 40.5
	// stays in the low band rather than tipping into medium.
	finalScore := clampScore(int(math.RoundToEven(rawScore)))

	return &models.ScoreReport{
		Score:             finalScore,
		Status:            models.ScoreStatusFor(finalScore),
		Breakdown:         breakdown,
		TotalTransactions: len(transactions),
		NetImpact:         roundTo2(totalWeighted),
		Explanation:       scoreExplanation(finalScore),
	}
}

// CategoryBreakdown aggregates per-category raw and weighted impact
func (s *scoringService) CategoryBreakdown(transactions []models.Transaction) map[string]models.CategoryImpact {
	breakdown := make(map[string]models.CategoryImpact)

	for _, txn := range transactions {
		category := txn.EffectiveCategory()
		weighted := float64(txn.EcoImpact) * s.CategoryWeight(category)

		impact := breakdown[category]
		impact.Count++
		impact.TotalImpact += txn.EcoImpact
		impact.WeightedImpact += weighted
		breakdown[category] = impact
	}

	return breakdown
}

// ESGBreakdown splits the transaction set into environmental, social and
// governance pillar scores
func (s *scoringService) ESGBreakdown(transactions []models.Transaction) *models.ESGBreakdown {
	var envSum, socialSum int
	var envCount, socialCount, digitalCount int

	for _, txn := range transactions {
		category := txn.EffectiveCategory()

		if containsCategory(environmentalCategories, category) {
			envSum += txn.EcoImpact
			envCount++
		}

		if containsCategory(socialCategories, category) {
			socialSum += txn.EcoImpact
			socialCount++
		}

		if txn.IsDigitalPayment() {
			digitalCount++
		}
	}

	return &models.ESGBreakdown{
		Environmental: models.ESGPillar{
			Score:            pillarScore(envSum, envCount),
			TransactionCount: envCount,
			Categories:       environmentalCategories,
		},
		Social: models.ESGPillar{
			Score:            pillarScore(socialSum, socialCount),
			TransactionCount: socialCount,
			Categories:       socialCategories,
		},
		Governance: models.ESGPillar{
			Score:            clampScore(int(esgPillarBase + governancePerTxn*float64(digitalCount))),
			TransactionCount: digitalCount,
			Categories:       models.AllCategories(),
		},
	}
}

// pillarScore normalizes a pillar's average impact onto the 0-100 scale.
// Pillars with no transactions sit at the neutral midpoint.
func pillarScore(sum, count int) int {
	if count == 0 {
		return int(esgPillarBase)
	}
	avg := float64(sum) / float64(count)
	return clampScore(int(math.RoundToEven(esgPillarBase + avg*esgAvgMultiplier)))
}

// scoreExplanation maps a final score to its explanation band
func scoreExplanation(score int) string {
	switch {
	case score >= 80:
		return "Excellent! Your spending habits strongly support sustainability. Keep up the great work!"
	case score >= 60:
		return "Good progress! You're making sustainable choices. A few improvements could boost your score further."
	case score >= 40:
		return "Room for improvement. Consider shifting towards more eco-friendly alternatives."
	default:
		return "Your spending patterns have significant environmental impact. Small changes can make a big difference!"
	}
}

func clampScore(score int) int {
	if score < models.MinScore {
		return models.MinScore
	}
	if score > models.MaxScore {
		return models.MaxScore
	}
	return score
}

func roundTo2(value float64) float64 {
	return math.Round(value*100) / 100
}

func containsCategory(categories []string, category string) bool {
	for _, c := range categories {
		if c == category {
			return true
		}
	}
	return false
}
