package models

// Classification methods describe how a transaction's category and impact
// were determined.
const (
	ClassificationMethodRuleBased = "rule_based"
	ClassificationMethodDefault   = "default"
	ClassificationMethodExternal  = "external"
)

// ClassificationResult is the outcome of classifying a single free-text
// transaction description.
type ClassificationResult struct {
	Description          string  `json:"description"`
	Category             string  `json:"category"`
	EcoImpact            int     `json:"eco_impact"`
	Reasoning            string  `json:"reasoning"`
	Confidence           float64 `json:"confidence"`
	ClassificationMethod string  `json:"classification_method"`
}
