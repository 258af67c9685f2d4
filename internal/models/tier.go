package models

import "fmt"

// Tier identifiers, ordered from lowest to highest.
const (
	TierStarter  = "starter"
	TierBronze   = "bronze"
	TierSilver   = "silver"
	TierGold     = "gold"
	TierPlatinum = "platinum"
)

// Tier describes one incentive tier and its score range.
type Tier struct {
	TierID    string `json:"tier_id"`
	TierName  string `json:"tier_name"`
	MinScore  int    `json:"min_score"`
	MaxScore  int    `json:"max_score"`
	TierColor string `json:"tier_color"`
	Badge     string `json:"badge"`
}

// Contains reports whether a score falls inside the tier's range.
func (t Tier) Contains(score int) bool {
	return score >= t.MinScore && score <= t.MaxScore
}

// ScoreRange renders the tier's range as "min - max".
func (t Tier) ScoreRange() string {
	return fmt.Sprintf("%d - %d", t.MinScore, t.MaxScore)
}
