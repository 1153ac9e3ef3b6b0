package validation

import (
	"testing"

	"question-bank/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() *domain.GenerationRequest {
	return &domain.GenerationRequest{
		SessionID: "01HSESSION000000000000TEST",
		SourceID:  "src-1",
		Locator: domain.ContentLocator{
			TenantID:    "cx2201",
			FilterKey:   "toc_level_1_title",
			FilterValue: "56330_ch10_ptg01",
		},
		TotalQuestions:         10,
		TypeDistribution:       domain.Distribution{"mcq": 0.4, "tf": 0.3, "fib": 0.3},
		DifficultyDistribution: domain.Distribution{"basic": 0.3, "intermediate": 0.3, "advanced": 0.4},
		BloomsDistribution:     domain.Distribution{"remember": 0.3, "apply": 0.4, "analyze": 0.3},
	}
}

func TestValidateGenerationRequest(t *testing.T) {
	v := NewValidator(50)

	t.Run("ValidRequest", func(t *testing.T) {
		assert.Empty(t, v.ValidateGenerationRequest(validRequest()))
	})

	t.Run("ZeroTotalIsValid", func(t *testing.T) {
		req := validRequest()
		req.TotalQuestions = 0
		assert.Empty(t, v.ValidateGenerationRequest(req))
	})

	t.Run("MissingLocatorFields", func(t *testing.T) {
		req := validRequest()
		req.Locator.TenantID = " "
		req.Locator.FilterValue = ""
		errs := v.ValidateGenerationRequest(req)
		require.Len(t, errs, 2)
		assert.Equal(t, "tenant_id", errs[0].Field)
		assert.Equal(t, "filter_value", errs[1].Field)
	})

	t.Run("TotalOutOfRange", func(t *testing.T) {
		req := validRequest()
		req.TotalQuestions = 51
		errs := v.ValidateGenerationRequest(req)
		require.Len(t, errs, 1)
		assert.Equal(t, "total_questions", errs[0].Field)

		req.TotalQuestions = -1
		assert.Len(t, v.ValidateGenerationRequest(req), 1)
	})

	t.Run("DistributionDoesNotSumToOne", func(t *testing.T) {
		req := validRequest()
		req.TypeDistribution = domain.Distribution{"mcq": 0.5, "tf": 0.3, "fib": 0.3}
		errs := v.ValidateGenerationRequest(req)
		require.Len(t, errs, 1)
		assert.Equal(t, "question_type_distribution", errs[0].Field)
		assert.Contains(t, errs[0].Message, "sum to 1.0")
	})

	t.Run("SumWithinToleranceAccepted", func(t *testing.T) {
		req := validRequest()
		req.TypeDistribution = domain.Distribution{"mcq": 0.4, "tf": 0.3, "fib": 0.3000000001}
		assert.Empty(t, v.ValidateGenerationRequest(req))
	})

	t.Run("UnknownDistributionKey", func(t *testing.T) {
		req := validRequest()
		req.BloomsDistribution = domain.Distribution{"remember": 0.5, "create": 0.5}
		errs := v.ValidateGenerationRequest(req)
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0].Message, "unknown key: create")
	})

	t.Run("NegativeFraction", func(t *testing.T) {
		req := validRequest()
		req.DifficultyDistribution = domain.Distribution{"basic": -0.2, "intermediate": 0.6, "advanced": 0.6}
		errs := v.ValidateGenerationRequest(req)
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0].Message, "between 0 and 1")
	})

	t.Run("MissingDistribution", func(t *testing.T) {
		req := validRequest()
		req.TypeDistribution = nil
		errs := v.ValidateGenerationRequest(req)
		require.Len(t, errs, 1)
		assert.Equal(t, "question_type_distribution", errs[0].Field)
	})
}
