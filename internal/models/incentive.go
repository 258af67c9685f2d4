package models

// Incentive type identifiers.
const (
	IncentiveCashback    = "cashback"
	IncentiveGreenLoan   = "green_loan"
	IncentiveRewards     = "rewards"
	IncentiveInsurance   = "insurance"
	IncentiveCreditLimit = "credit_limit"
)

// Benefit holds the tier-specific terms of a single incentive. Only the
// fields relevant to the incentive type are populated.
type Benefit struct {
	Rate          string `json:"rate,omitempty"`
	MaxMonthly    string `json:"max_monthly,omitempty"`
	RateReduction string `json:"rate_reduction,omitempty"`
	Multiplier    string `json:"multiplier,omitempty"`
	BonusPoints   *int   `json:"bonus_points,omitempty"`
	Discount      string `json:"discount,omitempty"`
	Boost         string `json:"boost,omitempty"`
	Eligible      *bool  `json:"eligible,omitempty"`
}

// HeadlineValue returns the benefit's primary figure, used to decide
// eligibility for zero-valued tiers.
func (b Benefit) HeadlineValue() string {
	switch {
	case b.Rate != "":
		return b.Rate
	case b.RateReduction != "":
		return b.RateReduction
	case b.Discount != "":
		return b.Discount
	case b.Boost != "":
		return b.Boost
	default:
		return ""
	}
}

// Incentive is one offered benefit with its resolved eligibility.
type Incentive struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Eligible    bool    `json:"eligible"`
	Benefits    Benefit `json:"benefits"`
}

// NextTierInfo tells the user how far the next tier is. Exists is false at
// the top tier, in which case only Message is populated.
type NextTierInfo struct {
	Exists           bool   `json:"exists"`
	TierID           string `json:"tier_id,omitempty"`
	TierName         string `json:"tier_name,omitempty"`
	PointsNeeded     int    `json:"points_needed,omitempty"`
	MinScoreRequired int    `json:"min_score_required,omitempty"`
	Message          string `json:"message"`
}

// IncentiveOffer is the full incentive package for one score.
type IncentiveOffer struct {
	Score                 int          `json:"score"`
	CurrentTier           Tier         `json:"current_tier"`
	Incentives            []Incentive  `json:"incentives"`
	NextTier              NextTierInfo `json:"next_tier"`
	EstimatedMonthlyValue string       `json:"estimated_monthly_value"`
	Disclaimer            string       `json:"disclaimer"`
}

// TierComparisonEntry is one tier's row in the comparison table.
type TierComparisonEntry struct {
	TierID     string             `json:"tier_id"`
	TierName   string             `json:"tier_name"`
	ScoreRange string             `json:"score_range"`
	Badge      string             `json:"badge"`
	Incentives map[string]Benefit `json:"incentives"`
}
