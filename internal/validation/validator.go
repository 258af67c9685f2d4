package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"greenscore-api/internal/models"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("green_score", validateGreenScore)
	_ = v.RegisterValidation("eco_impact", validateEcoImpact)
	_ = v.RegisterValidation("category", validateCategory)
	_ = v.RegisterValidation("user_id", validateUserID)
	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateGreenScore validates that a score lies in the 0-100 range
func validateGreenScore(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		score := fl.Field().Int()
		return score >= models.MinScore && score <= models.MaxScore
	case reflect.Float32, reflect.Float64:
		score := fl.Field().Float()
		return score >= models.MinScore && score <= models.MaxScore
	default:
		return false
	}
}

// validateEcoImpact validates that an eco impact rating lies in the -5..+5 range
func validateEcoImpact(fl validator.FieldLevel) bool {
	impact := fl.Field().Int()
	return impact >= models.MinEcoImpact && impact <= models.MaxEcoImpact
}

// validateCategory validates that a category is one of the known categories
func validateCategory(fl validator.FieldLevel) bool {
	return models.IsValidCategory(fl.Field().String())
}

// validateUserID validates the demo user identifier format
// Format: "USR" followed by 4 digits, e.g. USR0042
func validateUserID(fl validator.FieldLevel) bool {
	userID := fl.Field().String()
	if userID == "" {
		return false
	}

	matched, _ := regexp.MatchString(`^USR\d{4}$`, userID)
	return matched
}

// validatePositiveAmount validates that an amount is greater than 0
func validatePositiveAmount(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int() > 0
	case reflect.Float32, reflect.Float64:
		return fl.Field().Float() > 0
	default:
		return false
	}
}
