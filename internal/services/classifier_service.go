package services

import (
	"context"
	"fmt"
	"strings"

	"greenscore-api/internal/models"
)

// ClassificationRule maps description keywords to a category and eco impact.
// Rules are evaluated in order; the first keyword hit wins.
type ClassificationRule struct {
	Name      string   `json:"name"`
	Category  string   `json:"category"`
	EcoImpact int      `json:"eco_impact"`
	Keywords  []string `json:"keywords"`
}

type classifierService struct {
	rules            []ClassificationRule
	impactTemplates  map[int]string
	ruleDetails      map[string]string
	matchConfidence  float64
	defaultReasoning string
}

// NewClassifierService creates a new ClassifierServiceInterface instance
func NewClassifierService() ClassifierServiceInterface {
	return &classifierService{
		rules:            initClassificationRules(),
		impactTemplates:  initImpactTemplates(),
		ruleDetails:      initRuleDetails(),
		matchConfidence:  0.85,
		defaultReasoning: "Unable to determine specific environmental impact. Classified as neutral.",
	}
}

// Classify classifies a single transaction description
func (s *classifierService) Classify(description string) *models.ClassificationResult {
	lower := strings.ToLower(description)

	for _, rule := range s.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lower, keyword) {
				return &models.ClassificationResult{
					Description:          description,
					Category:             rule.Category,
					EcoImpact:            rule.EcoImpact,
					Reasoning:            s.reasoningFor(rule),
					Confidence:           s.matchConfidence,
					ClassificationMethod: models.ClassificationMethodRuleBased,
				}
			}
		}
	}

	return &models.ClassificationResult{
		Description:          description,
		Category:             models.CategoryOther,
		EcoImpact:            0,
		Reasoning:            s.defaultReasoning,
		Confidence:           0.5,
		ClassificationMethod: models.ClassificationMethodDefault,
	}
}

// ClassifyWithFallback is the hook for an external model-backed classifier.
// No external provider is wired, so it always takes the rule path.
func (s *classifierService) ClassifyWithFallback(ctx context.Context, description string) *models.ClassificationResult {
	// External provider integration point. Until one is configured the rule
	// engine handles every request, so the context is never awaited.
	return s.Classify(description)
}

// ClassifyBatch classifies multiple descriptions, preserving input order
func (s *classifierService) ClassifyBatch(descriptions []string) []*models.ClassificationResult {
	results := make([]*models.ClassificationResult, 0, len(descriptions))

	for _, description := range descriptions {
		results = append(results, s.Classify(description))
	}

	return results
}

// Rules exposes the active rule table
func (s *classifierService) Rules() []ClassificationRule {
	rules := make([]ClassificationRule, len(s.rules))
	copy(rules, s.rules)
	return rules
}

// reasoningFor renders the impact template with the rule's detail sentence
func (s *classifierService) reasoningFor(rule ClassificationRule) string {
	template, ok := s.impactTemplates[rule.EcoImpact]
	if !ok {
		template = "Environmental impact assessed. %s"
	}

	detail, ok := s.ruleDetails[rule.Name]
	if !ok {
		detail = "Environmental impact assessed based on transaction type."
	}

	return fmt.Sprintf(template, detail)
}

// initClassificationRules builds the ordered rule table. Order matters:
// "electric bike" must classify as electric transport before the bicycle rule
// gets a chance.
func initClassificationRules() []ClassificationRule {
	return []ClassificationRule{
		// Transport - sustainable
		{Name: "metro", Category: models.CategoryTransport, EcoImpact: 5, Keywords: []string{"metro", "subway", "tube"}},
		{Name: "electric", Category: models.CategoryTransport, EcoImpact: 4, Keywords: []string{"electric", "ev ", "tesla"}},
		{Name: "bicycle", Category: models.CategoryTransport, EcoImpact: 5, Keywords: []string{"bicycle", "bike", "cycling"}},
		{Name: "carpool", Category: models.CategoryTransport, EcoImpact: 3, Keywords: []string{"carpool", "rideshare", "shared ride"}},

		// Transport - harmful
		{Name: "flight", Category: models.CategoryTransport, EcoImpact: -5, Keywords: []string{"flight", "airline", "aviation"}},
		{Name: "petrol", Category: models.CategoryTransport, EcoImpact: -4, Keywords: []string{"petrol", "diesel", "fuel", "gas station"}},

		// Food - sustainable
		{Name: "organic", Category: models.CategoryFood, EcoImpact: 3, Keywords: []string{"organic", "natural", "farm fresh"}},
		{Name: "plant_based", Category: models.CategoryFood, EcoImpact: 4, Keywords: []string{"vegan", "plant-based", "vegetarian"}},
		{Name: "local", Category: models.CategoryFood, EcoImpact: 2, Keywords: []string{"local vendor", "farmer", "market"}},

		// Food - harmful
		{Name: "plastic", Category: models.CategoryFood, EcoImpact: -3, Keywords: []string{"plastic bottle", "disposable", "single-use"}},

		// Shopping - sustainable
		{Name: "thrift", Category: models.CategoryShopping, EcoImpact: 4, Keywords: []string{"thrift", "second-hand", "vintage", "pre-owned"}},
		{Name: "sustainable_brand", Category: models.CategoryShopping, EcoImpact: 3, Keywords: []string{"sustainable", "eco-friendly", "green"}},

		// Shopping - harmful
		{Name: "fast_fashion", Category: models.CategoryShopping, EcoImpact: -4, Keywords: []string{"fast fashion", "quicktrends", "cheap clothing"}},

		// Utilities
		{Name: "solar", Category: models.CategoryUtilities, EcoImpact: 5, Keywords: []string{"solar", "renewable", "wind energy"}},
		{Name: "electricity", Category: models.CategoryUtilities, EcoImpact: 0, Keywords: []string{"electricity", "power bill"}},

		// Entertainment
		{Name: "digital", Category: models.CategoryEntertainment, EcoImpact: 1, Keywords: []string{"streaming", "netflix", "spotify", "digital"}},

		// Donations
		{Name: "charity", Category: models.CategoryDonations, EcoImpact: 5, Keywords: []string{"donation", "charity", "foundation", "ngo"}},
	}
}

// initImpactTemplates maps eco impact ratings to reasoning templates
func initImpactTemplates() map[int]string {
	return map[int]string{
		5:  "Excellent sustainability choice! %s",
		4:  "Great eco-friendly decision. %s",
		3:  "Good sustainable practice. %s",
		2:  "Moderately positive environmental impact. %s",
		1:  "Slightly positive environmental impact. %s",
		0:  "Neutral environmental impact. %s",
		-1: "Slightly negative environmental impact. %s",
		-2: "Moderate environmental concern. %s",
		-3: "Notable negative environmental impact. %s",
		-4: "Significant environmental concern. %s",
		-5: "High environmental impact. %s",
	}
}

// initRuleDetails maps rule names to their reasoning detail sentences
func initRuleDetails() map[string]string {
	return map[string]string{
		"metro":             "Public transport reduces carbon emissions by up to 45% compared to private vehicles.",
		"electric":          "Electric vehicles produce zero direct emissions and reduce air pollution.",
		"bicycle":           "Zero-emission transport with added health benefits.",
		"carpool":           "Sharing rides reduces per-person carbon footprint and road congestion.",
		"flight":            "Aviation accounts for ~2.5% of global CO2 emissions. Consider alternatives when possible.",
		"petrol":            "Fossil fuel consumption contributes directly to carbon emissions.",
		"organic":           "Organic farming avoids synthetic pesticides and supports soil health.",
		"plant_based":       "Plant-based diets have 50% lower carbon footprint than meat-based diets.",
		"local":             "Local sourcing reduces transportation emissions and supports community.",
		"plastic":           "Plastic pollution affects oceans and wildlife. Consider reusable alternatives.",
		"thrift":            "Second-hand shopping extends product lifecycle and reduces manufacturing demand.",
		"sustainable_brand": "Supporting sustainable brands encourages eco-friendly business practices.",
		"fast_fashion":      "Fast fashion contributes to textile waste and excessive water usage.",
		"solar":             "Solar energy investment reduces reliance on fossil fuels.",
		"electricity":       "Impact depends on the energy source mix of your provider.",
		"digital":           "Digital entertainment has lower footprint than physical alternatives.",
		"charity":           "Direct contribution to environmental protection and sustainability initiatives.",
	}
}
