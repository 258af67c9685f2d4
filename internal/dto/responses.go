package dto

import (
	"greenscore-api/internal/models"
)

// APIInfoResponse describes the service and its endpoint map
type APIInfoResponse struct {
	Name        string            `json:"name"`
	Version     string            `json:"version"`
	Status      string            `json:"status"`
	Description string            `json:"description"`
	Endpoints   map[string]string `json:"endpoints"`
}

// ScoreResponse is the full score view: report plus the ESG component scores
type ScoreResponse struct {
	Score             int                              `json:"score"`
	Status            string                           `json:"status"`
	Explanation       string                           `json:"explanation"`
	Breakdown         map[string]models.CategoryImpact `json:"breakdown"`
	ESG               models.ESGBreakdown              `json:"esg"`
	TotalTransactions int                              `json:"total_transactions"`
	NetImpact         float64                          `json:"net_impact"`
}

// ESGExplanation carries the fixed pillar descriptions
type ESGExplanation struct {
	Environmental string `json:"environmental"`
	Social        string `json:"social"`
	Governance    string `json:"governance"`
}

// ESGBreakdownResponse is the detailed ESG view
type ESGBreakdownResponse struct {
	OverallScore int                 `json:"overall_score"`
	ESGScores    models.ESGBreakdown `json:"esg_scores"`
	Explanation  ESGExplanation      `json:"explanation"`
}

// TransactionListResponse wraps a transaction listing with its count
type TransactionListResponse struct {
	Count        int                  `json:"count"`
	Transactions []models.Transaction `json:"transactions"`
}

// IncentivesResponse is the eligible-incentives view keyed by the current score
type IncentivesResponse struct {
	GreenScore int `json:"green_score"`
	models.IncentiveOffer
}

// TierComparisonResponse lists the benefit terms of every tier
type TierComparisonResponse struct {
	Tiers []models.TierComparisonEntry `json:"tiers"`
}

// CategoryStats aggregates the transactions of one category
type CategoryStats struct {
	Count       int     `json:"count"`
	TotalAmount float64 `json:"total_amount"`
	AvgImpact   float64 `json:"avg_impact"`
}

// UserListResponse wraps a user listing with its count
type UserListResponse struct {
	Count int                  `json:"count"`
	Users []models.UserSummary `json:"users"`
}

// UserScoreResponse is the per-user score view
type UserScoreResponse struct {
	UserID string `json:"user_id"`
	ScoreResponse
}

// ImprovementsResponse wraps a user's improvement areas
type ImprovementsResponse struct {
	UserID       string                   `json:"user_id"`
	Improvements []models.ImprovementArea `json:"improvements"`
}
