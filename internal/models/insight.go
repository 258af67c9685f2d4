package models

// Highlight types.
const (
	HighlightPositive    = "positive"
	HighlightAchievement = "achievement"
	HighlightSocial      = "social"
)

// Recommendation priorities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Highlight is a notable positive finding surfaced to the user.
type Highlight struct {
	Type        string `json:"type"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact,omitempty"`
}

// Recommendation is an actionable suggestion with an estimated score effect.
type Recommendation struct {
	Priority        string `json:"priority"`
	Icon            string `json:"icon"`
	Title           string `json:"title"`
	Action          string `json:"action"`
	PotentialImpact string `json:"potential_impact"`
}

// ESGInsight summarises one ESG pillar's behaviour.
type ESGInsight struct {
	Status            string `json:"status"`
	Insight           string `json:"insight"`
	ScoreContribution string `json:"score_contribution"`
}

// ESGInsights groups the per-pillar insights. The pillar fields are omitted
// when unset so the empty bundle serializes as an empty object.
type ESGInsights struct {
	Environmental *ESGInsight `json:"environmental,omitempty"`
	Social        *ESGInsight `json:"social,omitempty"`
	Governance    *ESGInsight `json:"governance,omitempty"`
}

// CategoryPattern aggregates spending behaviour within one category.
type CategoryPattern struct {
	Count       int     `json:"count"`
	TotalAmount float64 `json:"total_amount"`
	AvgImpact   float64 `json:"avg_impact"`
}

// ImpactDistribution counts transactions by impact sign.
type ImpactDistribution struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// Patterns is the behavioural analysis block of an insight bundle.
type Patterns struct {
	ByCategory         map[string]CategoryPattern `json:"by_category"`
	ImpactDistribution ImpactDistribution         `json:"impact_distribution"`
}

// InsightBundle is the full output of the insight generator.
type InsightBundle struct {
	Summary         string           `json:"summary"`
	Highlights      []Highlight      `json:"highlights"`
	Recommendations []Recommendation `json:"recommendations"`
	ESGInsights     *ESGInsights     `json:"esg_insights"`
	Patterns        *Patterns        `json:"patterns,omitempty"`
}

// ImprovementArea flags a category where spending drags the score down.
type ImprovementArea struct {
	Category             string   `json:"category"`
	Icon                 string   `json:"icon"`
	Issue                string   `json:"issue"`
	Examples             []string `json:"examples"`
	Impact               int      `json:"impact"`
	Suggestion           string   `json:"suggestion"`
	PotentialImprovement string   `json:"potential_improvement"`
	Priority             string   `json:"priority"`
}
