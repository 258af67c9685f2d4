package services

import (
	"fmt"
	"sort"
	"strings"

	"greenscore-api/internal/models"
)

const (
	maxHighlights      = 5
	maxRecommendations = 4
	maxExamplesPerArea = 2
)

type insightService struct {
	improvementTips map[string]improvementTip
}

type improvementTip struct {
	icon      string
	action    string
	potential string
}

// impactAnalysis partitions a transaction set by impact sign. Best and worst
// keep the first-seen extreme so ties resolve deterministically.
type impactAnalysis struct {
	positiveCount int
	negativeCount int
	neutralCount  int
	best          *models.Transaction
	worst         *models.Transaction
}

// NewInsightService creates a new InsightServiceInterface instance
func NewInsightService() InsightServiceInterface {
	return &insightService{
		improvementTips: initImprovementTips(),
	}
}

// GenerateInsights produces the full insight bundle for a set of classified
// transactions and their computed score
func (s *insightService) GenerateInsights(transactions []models.Transaction, score int) *models.InsightBundle {
	if len(transactions) == 0 {
		return &models.InsightBundle{
			Summary:         "No transaction data available for analysis.",
			Highlights:      []models.Highlight{},
			Recommendations: []models.Recommendation{},
			ESGInsights:     &models.ESGInsights{},
		}
	}

	patterns := s.AnalyzePatterns(transactions)
	impacts := analyzeImpacts(transactions)

	return &models.InsightBundle{
		Summary:         buildSummary(score, impacts),
		Highlights:      buildHighlights(transactions, impacts),
		Recommendations: buildRecommendations(patterns, impacts, score),
		ESGInsights:     buildESGInsights(transactions),
		Patterns:        patterns,
	}
}

// AnalyzePatterns computes per-category spending patterns and the impact
// distribution
func (s *insightService) AnalyzePatterns(transactions []models.Transaction) *models.Patterns {
	byCategory := make(map[string]models.CategoryPattern)
	impactSums := make(map[string]int)

	var distribution models.ImpactDistribution

	for _, txn := range transactions {
		category := txn.EffectiveCategory()

		pattern := byCategory[category]
		pattern.Count++
		pattern.TotalAmount += txn.Amount.InexactFloat64()
		byCategory[category] = pattern
		impactSums[category] += txn.EcoImpact

		switch {
		case txn.EcoImpact > 0:
			distribution.Positive++
		case txn.EcoImpact < 0:
			distribution.Negative++
		default:
			distribution.Neutral++
		}
	}

	for category, pattern := range byCategory {
		pattern.AvgImpact = roundTo2(float64(impactSums[category]) / float64(pattern.Count))
		byCategory[category] = pattern
	}

	return &models.Patterns{
		ByCategory:         byCategory,
		ImpactDistribution: distribution,
	}
}

// ImprovementAreas flags the categories with negative-impact spending,
// worst total impact first
func (s *insightService) ImprovementAreas(transactions []models.Transaction) []models.ImprovementArea {
	type negativeGroup struct {
		count    int
		impact   int
		examples []string
	}

	groups := make(map[string]*negativeGroup)
	for _, txn := range transactions {
		if txn.EcoImpact >= 0 {
			continue
		}

		category := txn.EffectiveCategory()
		group, ok := groups[category]
		if !ok {
			group = &negativeGroup{}
			groups[category] = group
		}

		group.count++
		group.impact += txn.EcoImpact
		if len(group.examples) < maxExamplesPerArea {
			group.examples = append(group.examples, txn.Description)
		}
	}

	categories := make([]string, 0, len(groups))
	for category := range groups {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		if groups[categories[i]].impact != groups[categories[j]].impact {
			return groups[categories[i]].impact < groups[categories[j]].impact
		}
		return categories[i] < categories[j]
	})

	areas := make([]models.ImprovementArea, 0, len(categories))
	for _, category := range categories {
		group := groups[category]

		tip, ok := s.improvementTips[category]
		if !ok {
			tip = improvementTip{
				icon:      "📍",
				action:    fmt.Sprintf("Reduce high-impact %s activities", category),
				potential: "+5 points",
			}
		}

		priority := models.PriorityMedium
		if group.impact <= -5 {
			priority = models.PriorityHigh
		}

		areas = append(areas, models.ImprovementArea{
			Category:             category,
			Icon:                 tip.icon,
			Issue:                fmt.Sprintf("%d high-impact transaction(s) in %s", group.count, category),
			Examples:             group.examples,
			Impact:               group.impact,
			Suggestion:           tip.action,
			PotentialImprovement: tip.potential,
			Priority:             priority,
		})
	}

	return areas
}

// analyzeImpacts partitions transactions by impact sign
func analyzeImpacts(transactions []models.Transaction) impactAnalysis {
	var analysis impactAnalysis

	for i := range transactions {
		txn := &transactions[i]

		switch {
		case txn.EcoImpact > 0:
			analysis.positiveCount++
		case txn.EcoImpact < 0:
			analysis.negativeCount++
		default:
			analysis.neutralCount++
		}

		if analysis.best == nil || txn.EcoImpact > analysis.best.EcoImpact {
			analysis.best = txn
		}
		if analysis.worst == nil || txn.EcoImpact < analysis.worst.EcoImpact {
			analysis.worst = txn
		}
	}

	return analysis
}

// buildHighlights generates up to maxHighlights achievement highlights
func buildHighlights(transactions []models.Transaction, impacts impactAnalysis) []models.Highlight {
	highlights := []models.Highlight{}

	if impacts.best != nil {
		highlights = append(highlights, models.Highlight{
			Type:        models.HighlightPositive,
			Icon:        "🌟",
			Title:       "Top Sustainable Choice",
			Description: impacts.best.Description + " - Excellent eco-friendly decision!",
			Impact:      fmt.Sprintf("%+d", impacts.best.EcoImpact),
		})
	}

	if impacts.positiveCount >= 5 {
		highlights = append(highlights, models.Highlight{
			Type:        models.HighlightAchievement,
			Icon:        "🏆",
			Title:       "Sustainability Champion",
			Description: fmt.Sprintf("You made %d eco-friendly transactions!", impacts.positiveCount),
		})
	}

	for _, txn := range transactions {
		if txn.IsDonation() {
			highlights = append(highlights, models.Highlight{
				Type:        models.HighlightSocial,
				Icon:        "💚",
				Title:       "Green Contributor",
				Description: "Your donations support environmental causes!",
			})
			break
		}
	}

	if len(highlights) > maxHighlights {
		highlights = highlights[:maxHighlights]
	}
	return highlights
}

// buildRecommendations generates up to maxRecommendations actionable
// suggestions, highest-value first
func buildRecommendations(patterns *models.Patterns, impacts impactAnalysis, score int) []models.Recommendation {
	recommendations := []models.Recommendation{}

	if score < 50 {
		recommendations = append(recommendations, models.Recommendation{
			Priority:        models.PriorityHigh,
			Icon:            "🚨",
			Title:           "Boost Your GreenScore",
			Action:          "Replace high-emission activities with sustainable alternatives",
			PotentialImpact: "+15 to +25 points",
		})
	}

	if transport, ok := patterns.ByCategory[models.CategoryTransport]; ok && transport.AvgImpact < 0 {
		recommendations = append(recommendations, models.Recommendation{
			Priority:        models.PriorityMedium,
			Icon:            "🚇",
			Title:           "Switch to Green Transport",
			Action:          "Consider public transit, cycling, or electric vehicles for daily commute",
			PotentialImpact: "+10 to +20 points",
		})
	}

	if impacts.negativeCount > 3 {
		worstDescription := "high-impact purchases"
		if impacts.worst != nil {
			worstDescription = impacts.worst.Description
		}
		recommendations = append(recommendations, models.Recommendation{
			Priority:        models.PriorityHigh,
			Icon:            "📉",
			Title:           "Reduce Negative Impacts",
			Action:          fmt.Sprintf("Review spending like '%s'", worstDescription),
			PotentialImpact: "+5 to +15 points",
		})
	}

	if impacts.positiveCount > 0 {
		recommendations = append(recommendations, models.Recommendation{
			Priority:        models.PriorityLow,
			Icon:            "✨",
			Title:           "Keep Up the Good Work",
			Action:          "Continue your sustainable choices in transport and shopping",
			PotentialImpact: "Maintain your score",
		})
	}

	recommendations = append(recommendations, models.Recommendation{
		Priority:        models.PriorityMedium,
		Icon:            "🛒",
		Title:           "Shop Sustainably",
		Action:          "Choose second-hand, local, and eco-certified products",
		PotentialImpact: "+5 to +10 points",
	})

	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}
	return recommendations
}

// buildESGInsights generates the per-pillar insights
func buildESGInsights(transactions []models.Transaction) *models.ESGInsights {
	var envCount, envPositive, digitalPayments int
	hasDonations := false

	for _, txn := range transactions {
		if containsCategory(environmentalCategories, txn.EffectiveCategory()) {
			envCount++
			if txn.EcoImpact > 0 {
				envPositive++
			}
		}

		if strings.Contains(strings.ToLower(txn.Description), "donation") {
			hasDonations = true
		}

		if txn.IsDigitalPayment() {
			digitalPayments++
		}
	}

	environmental := models.ESGInsight{
		ScoreContribution: "primary",
		Status:            "needs_improvement",
		Insight:           fmt.Sprintf("%d of %d transactions are eco-friendly", envPositive, envCount),
	}
	if float64(envPositive) > float64(envCount)*0.5 {
		environmental.Status = "strong"
	}

	social := models.ESGInsight{
		ScoreContribution: "moderate",
		Status:            "opportunity",
		Insight:           "Consider supporting environmental causes through donations",
	}
	if hasDonations {
		social.Status = "engaged"
		social.Insight = "Great social contribution through charitable giving!"
	}

	governance := models.ESGInsight{
		ScoreContribution: "supporting",
		Status:            "standard",
		Insight:           "Digital payments enhance transparency",
	}
	if digitalPayments > 0 {
		governance.Status = "good"
		governance.Insight = fmt.Sprintf("%d digital/transparent payment(s) detected", digitalPayments)
	}

	return &models.ESGInsights{
		Environmental: &environmental,
		Social:        &social,
		Governance:    &governance,
	}
}

// buildSummary creates the headline summary for the bundle
func buildSummary(score int, impacts impactAnalysis) string {
	switch {
	case score >= 75:
		return fmt.Sprintf("🌿 Excellent sustainability profile! You made %d eco-friendly choices this period.", impacts.positiveCount)
	case score >= 50:
		return fmt.Sprintf("📊 Good progress with %d sustainable transactions. Reducing %d high-impact activities could boost your score.", impacts.positiveCount, impacts.negativeCount)
	default:
		return fmt.Sprintf("🔄 Room for improvement. Focus on shifting from %d high-impact activities to greener alternatives.", impacts.negativeCount)
	}
}

// initImprovementTips maps categories to their improvement suggestions
func initImprovementTips() map[string]improvementTip {
	return map[string]improvementTip{
		models.CategoryTransport: {
			icon:      "🚇",
			action:    "Switch to public transport, carpooling, or cycling",
			potential: "+15 to +25 points",
		},
		models.CategoryShopping: {
			icon:      "🛍️",
			action:    "Choose thrift stores, local brands, and sustainable products",
			potential: "+10 to +15 points",
		},
		models.CategoryFood: {
			icon:      "🥗",
			action:    "Reduce single-use plastics, choose local and plant-based options",
			potential: "+8 to +12 points",
		},
		models.CategoryUtilities: {
			icon:      "⚡",
			action:    "Reduce AC usage, switch to energy-efficient appliances",
			potential: "+5 to +10 points",
		},
	}
}
