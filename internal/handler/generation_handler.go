package handler

import (
	"question-bank/internal/config"
	"question-bank/internal/domain"
	"question-bank/internal/dto"
	"question-bank/internal/logger"
	"question-bank/internal/util"
	"question-bank/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GenerationHandler handles question generation HTTP requests
type GenerationHandler struct {
	service   domain.GenerationService
	validator *validation.Validator
	defaults  config.GenerationConfig
}

// NewGenerationHandler creates a new GenerationHandler instance
func NewGenerationHandler(service domain.GenerationService, validator *validation.Validator, defaults config.GenerationConfig) *GenerationHandler {
	return &GenerationHandler{
		service:   service,
		validator: validator,
		defaults:  defaults,
	}
}

// GenerateQuestions godoc
// @Summary Generate questions from a content source
// @Description Generates MCQ, true/false and fill-in-the-blank questions concurrently from one shared content summary
// @Tags generation
// @Accept json
// @Produce json
// @Param sourceId path string true "Content Source ID"
// @Param request body dto.GenerationRequest false "Generation parameters; omitted fields use configured defaults"
// @Success 200 {object} dto.GenerationResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /question-bank/sources/{sourceId}/questions/generate [post]
func (h *GenerationHandler) GenerateQuestions(c *fiber.Ctx) error {
	var body dto.GenerationRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return domain.NewInvalidInputError("request body is not valid JSON")
		}
	}

	req := h.resolveRequest(c.Params("sourceId"), &body)
	if validationErrs := h.validator.ValidateGenerationRequest(req); len(validationErrs) > 0 {
		return validationErrs
	}

	logger.Get().Info("Generation request accepted",
		zap.String("session_id", req.SessionID),
		zap.String("source_id", req.SourceID),
		zap.Int("total_questions", req.TotalQuestions),
	)

	result, err := h.service.Generate(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(toGenerationResponse(req, result))
}

// resolveRequest merges the request body with configured defaults into a
// fully resolved generation request.
func (h *GenerationHandler) resolveRequest(sourceID string, body *dto.GenerationRequest) *domain.GenerationRequest {
	req := &domain.GenerationRequest{
		SessionID: body.SessionID,
		SourceID:  sourceID,
		Locator: domain.ContentLocator{
			TenantID:    body.TenantID,
			FilterKey:   body.FilterKey,
			FilterValue: body.FilterValue,
		},
		TotalQuestions:         h.defaults.DefaultTotalQuestions,
		TypeDistribution:       domain.Distribution(body.QuestionTypeDistribution),
		DifficultyDistribution: domain.Distribution(body.DifficultyDistribution),
		BloomsDistribution:     domain.Distribution(body.BloomsTaxonomyDistribution),
	}

	if req.SessionID == "" {
		req.SessionID = util.NewULID()
	}
	if req.Locator.TenantID == "" {
		req.Locator.TenantID = h.defaults.DefaultTenantID
	}
	if req.Locator.FilterKey == "" {
		req.Locator.FilterKey = h.defaults.DefaultFilterKey
	}
	if req.Locator.FilterValue == "" {
		req.Locator.FilterValue = h.defaults.DefaultFilterValue
	}
	if body.TotalQuestions != nil {
		req.TotalQuestions = *body.TotalQuestions
	}
	if len(req.TypeDistribution) == 0 {
		req.TypeDistribution = h.defaults.DefaultTypeDist
	}
	if len(req.DifficultyDistribution) == 0 {
		req.DifficultyDistribution = h.defaults.DefaultDifficultyDist
	}
	if len(req.BloomsDistribution) == 0 {
		req.BloomsDistribution = h.defaults.DefaultBloomsDist
	}
	return req
}

func toGenerationResponse(req *domain.GenerationRequest, result *domain.AggregateResult) dto.GenerationResponse {
	batches := make([]dto.QuestionBatchResponse, len(result.Batches))
	for i, batch := range result.Batches {
		questions := make([]dto.QuestionResponse, len(batch.Questions))
		for j, q := range batch.Questions {
			questions[j] = dto.QuestionResponse{
				QuestionType: string(q.Type),
				Question:     q.Question,
				Answer:       q.Answer,
				IsTrue:       q.IsTrue,
				Explanation:  q.Explanation,
				Options:      q.Options(),
				Distractors:  q.Distractors,
				Difficulty:   string(q.Difficulty),
				BloomsLevel:  string(q.BloomsLevel),
			}
		}
		batches[i] = dto.QuestionBatchResponse{
			QuestionType: string(batch.Type),
			Questions:    questions,
			DurationMS:   batch.Duration.Milliseconds(),
			Success:      batch.Success,
			Error:        batch.Error,
		}
	}

	return dto.GenerationResponse{
		Status:             string(result.Status),
		Message:            statusMessage(result),
		SessionID:          req.SessionID,
		SourceID:           req.SourceID,
		QuestionsGenerated: result.QuestionCount(),
		Batches:            batches,
		Timings: dto.TimingsResponse{
			SummaryDurationMS:    result.SummaryDuration.Milliseconds(),
			GenerationDurationMS: result.GenerationDuration.Milliseconds(),
			TotalDurationMS:      result.TotalDuration.Milliseconds(),
		},
	}
}

func statusMessage(result *domain.AggregateResult) string {
	switch result.Status {
	case domain.StatusSuccess:
		return "All question batches generated successfully"
	case domain.StatusPartial:
		return "Some question batches failed"
	default:
		return "All question batches failed"
	}
}
