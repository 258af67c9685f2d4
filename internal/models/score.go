package models

// Score status labels partition the score range into bands.
const (
	ScoreStatusLow    = "low"    // 0-40
	ScoreStatusMedium = "medium" // 41-70
	ScoreStatusHigh   = "high"   // 71-100
)

// Score range bounds.
const (
	MinScore = 0
	MaxScore = 100
)

// ScoreStatusFor maps a final score to its status band.
func ScoreStatusFor(score int) string {
	switch {
	case score <= 40:
		return ScoreStatusLow
	case score <= 70:
		return ScoreStatusMedium
	default:
		return ScoreStatusHigh
	}
}

// CategoryImpact aggregates the raw and weighted eco impact of all
// transactions in one category.
type CategoryImpact struct {
	Count          int     `json:"count"`
	TotalImpact    int     `json:"total_impact"`
	WeightedImpact float64 `json:"weighted_impact"`
}

// ScoreReport is the full output of the scoring engine for one
// transaction set.
type ScoreReport struct {
	Score             int                       `json:"score"`
	Status            string                    `json:"status"`
	Breakdown         map[string]CategoryImpact `json:"breakdown"`
	TotalTransactions int                       `json:"total_transactions"`
	NetImpact         float64                   `json:"net_impact"`
	Explanation       string                    `json:"explanation"`
}

// ESGPillar is one pillar of an ESG breakdown.
type ESGPillar struct {
	Score            int      `json:"score"`
	TransactionCount int      `json:"transaction_count"`
	Categories       []string `json:"categories"`
}

// ESGBreakdown splits spending behaviour into environmental, social and
// governance pillars.
type ESGBreakdown struct {
	Environmental ESGPillar `json:"environmental"`
	Social        ESGPillar `json:"social"`
	Governance    ESGPillar `json:"governance"`
}
