package services

import (
	"fmt"

	"greenscore-api/internal/errors"
	"greenscore-api/internal/models"
)

const incentiveDisclaimer = "These are simulated incentives for demonstration purposes. No real financial benefits are provided."

// incentiveDefinition describes one incentive product and its per-tier terms
type incentiveDefinition struct {
	id          string
	name        string
	description string
	icon        string
	tiers       map[string]models.Benefit
}

type incentiveService struct {
	tiers      []models.Tier
	incentives []incentiveDefinition
	monthly    map[string]string
}

// NewIncentiveService creates a new IncentiveServiceInterface instance
func NewIncentiveService() IncentiveServiceInterface {
	return &incentiveService{
		tiers:      initTiers(),
		incentives: initIncentives(),
		monthly:    initMonthlyValues(),
	}
}

// TierForScore resolves the tier a score falls into. Out-of-range scores
// resolve to the starter tier.
func (s *incentiveService) TierForScore(score int) models.Tier {
	for _, tier := range s.tiers {
		if tier.Contains(score) {
			return tier
		}
	}
	return s.tiers[len(s.tiers)-1]
}

// IncentivesForScore builds the full incentive offer for a score
func (s *incentiveService) IncentivesForScore(score int) (*models.IncentiveOffer, error) {
	if score < models.MinScore || score > models.MaxScore {
		return nil, fmt.Errorf("%s: score %d", errors.GetErrorMessage(errors.ScoreOutOfRange), score)
	}

	tier := s.TierForScore(score)

	incentives := make([]models.Incentive, 0, len(s.incentives))
	for _, def := range s.incentives {
		benefits := def.tiers[tier.TierID]

		eligible := true
		if benefits.Eligible != nil {
			eligible = *benefits.Eligible
		}
		// Zero-valued benefits never count as eligible regardless of flags
		if headline := benefits.HeadlineValue(); headline == "0%" || headline == "0" {
			eligible = false
		}

		incentives = append(incentives, models.Incentive{
			ID:          def.id,
			Name:        def.name,
			Description: def.description,
			Icon:        def.icon,
			Eligible:    eligible,
			Benefits:    benefits,
		})
	}

	return &models.IncentiveOffer{
		Score:                 score,
		CurrentTier:           tier,
		Incentives:            incentives,
		NextTier:              s.NextTier(score),
		EstimatedMonthlyValue: s.monthly[tier.TierID],
		Disclaimer:            incentiveDisclaimer,
	}, nil
}

// NextTier describes the tier above the given score, if any
func (s *incentiveService) NextTier(score int) models.NextTierInfo {
	current := s.TierForScore(score)

	// s.tiers is ordered highest first; the next tier up sits one index back
	for i, tier := range s.tiers {
		if tier.TierID != current.TierID {
			continue
		}

		if i == 0 {
			return models.NextTierInfo{
				Exists:  false,
				Message: "You're at the highest tier! 🎉",
			}
		}

		next := s.tiers[i-1]
		pointsNeeded := next.MinScore - score
		return models.NextTierInfo{
			Exists:           true,
			TierID:           next.TierID,
			TierName:         next.TierName,
			PointsNeeded:     pointsNeeded,
			MinScoreRequired: next.MinScore,
			Message:          fmt.Sprintf("Earn %d more points to unlock %s!", pointsNeeded, next.TierName),
		}
	}

	return models.NextTierInfo{Exists: false, Message: "Unable to calculate next tier"}
}

// TierComparison lists all tiers with their raw incentive terms, highest first
func (s *incentiveService) TierComparison() []models.TierComparisonEntry {
	comparison := make([]models.TierComparisonEntry, 0, len(s.tiers))

	for _, tier := range s.tiers {
		tierIncentives := make(map[string]models.Benefit, len(s.incentives))
		for _, def := range s.incentives {
			tierIncentives[def.id] = def.tiers[tier.TierID]
		}

		comparison = append(comparison, models.TierComparisonEntry{
			TierID:     tier.TierID,
			TierName:   tier.TierName,
			ScoreRange: tier.ScoreRange(),
			Badge:      tier.Badge,
			Incentives: tierIncentives,
		})
	}

	return comparison
}

// initTiers returns the tier table, highest first. Ranges partition 0-100
// with no gaps or overlaps.
func initTiers() []models.Tier {
	return []models.Tier{
		{TierID: models.TierPlatinum, TierName: "Platinum Green", MinScore: 85, MaxScore: 100, TierColor: "#00D4AA", Badge: "🌟"},
		{TierID: models.TierGold, TierName: "Gold Green", MinScore: 70, MaxScore: 84, TierColor: "#FFD700", Badge: "🥇"},
		{TierID: models.TierSilver, TierName: "Silver Green", MinScore: 50, MaxScore: 69, TierColor: "#C0C0C0", Badge: "🥈"},
		{TierID: models.TierBronze, TierName: "Bronze Green", MinScore: 30, MaxScore: 49, TierColor: "#CD7F32", Badge: "🥉"},
		{TierID: models.TierStarter, TierName: "Green Starter", MinScore: 0, MaxScore: 29, TierColor: "#808080", Badge: "🌱"},
	}
}

func boolPtr(b bool) *bool { return &b }
func intPtr(n int) *int    { return &n }

// initIncentives returns the incentive catalog with per-tier terms
func initIncentives() []incentiveDefinition {
	return []incentiveDefinition{
		{
			id:          models.IncentiveCashback,
			name:        "Green Cashback",
			description: "Cashback on eco-friendly purchases",
			icon:        "💰",
			tiers: map[string]models.Benefit{
				models.TierPlatinum: {Rate: "5%", MaxMonthly: "₹2,500"},
				models.TierGold:     {Rate: "3%", MaxMonthly: "₹1,500"},
				models.TierSilver:   {Rate: "1.5%", MaxMonthly: "₹750"},
				models.TierBronze:   {Rate: "0.5%", MaxMonthly: "₹250"},
				models.TierStarter:  {Rate: "0%", MaxMonthly: "₹0"},
			},
		},
		{
			id:          models.IncentiveGreenLoan,
			name:        "Green Loan Benefits",
			description: "Reduced interest rates on eco-friendly purchases",
			icon:        "🏦",
			tiers: map[string]models.Benefit{
				models.TierPlatinum: {RateReduction: "2.0%", Eligible: boolPtr(true)},
				models.TierGold:     {RateReduction: "1.5%", Eligible: boolPtr(true)},
				models.TierSilver:   {RateReduction: "0.75%", Eligible: boolPtr(true)},
				models.TierBronze:   {RateReduction: "0.25%", Eligible: boolPtr(true)},
				models.TierStarter:  {RateReduction: "0%", Eligible: boolPtr(false)},
			},
		},
		{
			id:          models.IncentiveRewards,
			name:        "Green Reward Points",
			description: "Bonus reward points on sustainable transactions",
			icon:        "🎁",
			tiers: map[string]models.Benefit{
				models.TierPlatinum: {Multiplier: "3x", BonusPoints: intPtr(500)},
				models.TierGold:     {Multiplier: "2x", BonusPoints: intPtr(300)},
				models.TierSilver:   {Multiplier: "1.5x", BonusPoints: intPtr(150)},
				models.TierBronze:   {Multiplier: "1x", BonusPoints: intPtr(50)},
				models.TierStarter:  {Multiplier: "1x", BonusPoints: intPtr(0)},
			},
		},
		{
			id:          models.IncentiveInsurance,
			name:        "Green Insurance Discount",
			description: "Premium discounts on vehicle and health insurance",
			icon:        "🛡️",
			tiers: map[string]models.Benefit{
				models.TierPlatinum: {Discount: "15%", Eligible: boolPtr(true)},
				models.TierGold:     {Discount: "10%", Eligible: boolPtr(true)},
				models.TierSilver:   {Discount: "5%", Eligible: boolPtr(true)},
				models.TierBronze:   {Discount: "2%", Eligible: boolPtr(true)},
				models.TierStarter:  {Discount: "0%", Eligible: boolPtr(false)},
			},
		},
		{
			id:          models.IncentiveCreditLimit,
			name:        "Enhanced Credit Limit",
			description: "Higher credit limits for sustainable spenders",
			icon:        "💳",
			tiers: map[string]models.Benefit{
				models.TierPlatinum: {Boost: "+25%", Eligible: boolPtr(true)},
				models.TierGold:     {Boost: "+15%", Eligible: boolPtr(true)},
				models.TierSilver:   {Boost: "+5%", Eligible: boolPtr(true)},
				models.TierBronze:   {Boost: "0%", Eligible: boolPtr(false)},
				models.TierStarter:  {Boost: "0%", Eligible: boolPtr(false)},
			},
		},
	}
}

// initMonthlyValues maps tier IDs to estimated monthly incentive value ranges
func initMonthlyValues() map[string]string {
	return map[string]string{
		models.TierPlatinum: "₹3,000 - ₹5,000",
		models.TierGold:     "₹1,500 - ₹3,000",
		models.TierSilver:   "₹500 - ₹1,500",
		models.TierBronze:   "₹100 - ₹500",
		models.TierStarter:  "₹0",
	}
}
