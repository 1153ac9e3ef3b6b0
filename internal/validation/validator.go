package validation

import (
	"math"
	"question-bank/internal/domain"
	"strings"
)

// Validator provides request validation functionality
type Validator struct {
	maxTotalQuestions int
}

// NewValidator creates a new validator instance
func NewValidator(maxTotalQuestions int) *Validator {
	return &Validator{maxTotalQuestions: maxTotalQuestions}
}

var (
	validQuestionTypes = map[string]bool{"mcq": true, "tf": true, "fib": true}
	validDifficulties  = map[string]bool{"basic": true, "intermediate": true, "advanced": true}
	validBloomsLevels  = map[string]bool{"remember": true, "apply": true, "analyze": true}
)

// ValidateGenerationRequest validates a fully resolved generation request.
// It checks the locator, the question total and all three distributions.
func (v *Validator) ValidateGenerationRequest(req *domain.GenerationRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Locator.TenantID) == "" {
		errors = append(errors, domain.NewMissingFieldError("tenant_id"))
	}
	if strings.TrimSpace(req.Locator.FilterKey) == "" {
		errors = append(errors, domain.NewMissingFieldError("filter_key"))
	}
	if strings.TrimSpace(req.Locator.FilterValue) == "" {
		errors = append(errors, domain.NewMissingFieldError("filter_value"))
	}

	if req.TotalQuestions < 0 || req.TotalQuestions > v.maxTotalQuestions {
		errors = append(errors, domain.NewOutOfRangeError("total_questions", req.TotalQuestions, 0, v.maxTotalQuestions))
	}

	errors = append(errors, validateDistribution("question_type_distribution", req.TypeDistribution, validQuestionTypes)...)
	errors = append(errors, validateDistribution("difficulty_distribution", req.DifficultyDistribution, validDifficulties)...)
	errors = append(errors, validateDistribution("blooms_taxonomy_distribution", req.BloomsDistribution, validBloomsLevels)...)

	return errors
}

// validateDistribution checks keys, value ranges and that fractions sum to
// 1.0 within tolerance.
func validateDistribution(field string, dist domain.Distribution, validKeys map[string]bool) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if len(dist) == 0 {
		errors = append(errors, domain.NewMissingFieldError(field))
		return errors
	}

	for key, fraction := range dist {
		if !validKeys[key] {
			errors = append(errors, domain.NewInvalidFormatError(field, "unknown key: "+key))
		}
		if fraction < 0 || fraction > 1 {
			errors = append(errors, domain.NewInvalidFormatError(field, "fraction for "+key+" must be between 0 and 1"))
		}
	}

	if math.Abs(dist.Sum()-1.0) > domain.DistributionTolerance {
		errors = append(errors, domain.NewInvalidFormatError(field, "fractions must sum to 1.0"))
	}

	return errors
}
