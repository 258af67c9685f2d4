package services

import (
	"context"
	"time"

	"greenscore-api/internal/models"
)

// ClassifierServiceInterface defines the contract for transaction classification
type ClassifierServiceInterface interface {
	// Classify classifies a single transaction description into a category,
	// eco impact rating and reasoning
	Classify(description string) *models.ClassificationResult

	// ClassifyWithFallback attempts an external classification first and falls
	// back to the rule engine. The context bounds the external call.
	ClassifyWithFallback(ctx context.Context, description string) *models.ClassificationResult

	// ClassifyBatch classifies multiple descriptions, preserving input order
	ClassifyBatch(descriptions []string) []*models.ClassificationResult

	// Rules exposes the active rule table in match order
	Rules() []ClassificationRule
}

// ScoringServiceInterface defines the contract for the weighted scoring engine
type ScoringServiceInterface interface {
	// CalculateScore computes the 0-100 sustainability score for a set of
	// classified transactions
	CalculateScore(transactions []models.Transaction) *models.ScoreReport

	// CategoryBreakdown aggregates per-category impact without computing
	// the headline score
	CategoryBreakdown(transactions []models.Transaction) map[string]models.CategoryImpact

	// ESGBreakdown splits the transaction set into environmental, social and
	// governance pillar scores
	ESGBreakdown(transactions []models.Transaction) *models.ESGBreakdown

	// CategoryWeight returns the scoring weight for a category
	CategoryWeight(category string) float64
}

// InsightServiceInterface defines the contract for the insight generator
type InsightServiceInterface interface {
	// GenerateInsights produces the summary, highlights, recommendations and
	// ESG insights for a set of classified transactions
	GenerateInsights(transactions []models.Transaction, score int) *models.InsightBundle

	// AnalyzePatterns computes per-category spending patterns and the impact
	// distribution
	AnalyzePatterns(transactions []models.Transaction) *models.Patterns

	// ImprovementAreas flags the categories with negative-impact spending,
	// worst first
	ImprovementAreas(transactions []models.Transaction) []models.ImprovementArea
}

// IncentiveServiceInterface defines the contract for the tiered incentive mapper
type IncentiveServiceInterface interface {
	// TierForScore resolves the tier a score falls into
	TierForScore(score int) models.Tier

	// IncentivesForScore builds the full incentive offer for a score
	IncentivesForScore(score int) (*models.IncentiveOffer, error)

	// TierComparison lists all tiers with their incentives, highest first
	TierComparison() []models.TierComparisonEntry

	// NextTier describes the tier above the given score, if any
	NextTier(score int) models.NextTierInfo
}

// TransactionGeneratorInterface generates deterministic demo transaction data.
// TransactionCount reports a user's transaction total without materializing
// the transactions themselves.
type TransactionGeneratorInterface interface {
	GenerateUser(index int) models.User
	GenerateTransactions(user models.User) []models.Transaction
	TransactionCount(userID string) int
}

// MetricsRecorderInterface abstracts metric recording so handlers can be
// tested without a live Prometheus registry
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
