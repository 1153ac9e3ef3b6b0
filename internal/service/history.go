package service

import (
	"context"
	"time"

	"question-bank/internal/domain"
	"question-bank/internal/logger"
	"question-bank/internal/util"

	"go.uber.org/zap"
)

// generationHistoryService writes a trace record per generation request.
// Persistence is best-effort: a failed write is logged and the request is
// never affected.
type generationHistoryService struct {
	repo domain.GenerationHistoryRepository
}

// NewGenerationHistoryService creates the history recorder. repo may be
// nil when no database is configured; records are then logged only.
func NewGenerationHistoryService(repo domain.GenerationHistoryRepository) domain.GenerationHistoryService {
	return &generationHistoryService{repo: repo}
}

func (s *generationHistoryService) RecordGeneration(ctx context.Context, req *domain.GenerationRequest, result *domain.AggregateResult, genErr error) {
	l := logger.Get()
	record := &domain.GenerationRecord{
		ID:                     util.NewULID(),
		SessionID:              req.SessionID,
		SourceID:               req.SourceID,
		TenantID:               req.Locator.TenantID,
		FilterKey:              req.Locator.FilterKey,
		FilterValue:            req.Locator.FilterValue,
		TotalQuestions:         req.TotalQuestions,
		TypeDistribution:       req.TypeDistribution,
		DifficultyDistribution: req.DifficultyDistribution,
		BloomsDistribution:     req.BloomsDistribution,
		RequestedAt:            time.Now().UTC(),
	}
	if result != nil {
		record.Status = string(result.Status)
		record.QuestionsGenerated = result.QuestionCount()
		record.SummaryDurationMS = result.SummaryDuration.Milliseconds()
		record.GenerationDurationMS = result.GenerationDuration.Milliseconds()
		record.TotalDurationMS = result.TotalDuration.Milliseconds()
	} else {
		record.Status = string(domain.StatusFailure)
	}
	if genErr != nil {
		record.ErrorMessage = genErr.Error()
	}

	if s.repo == nil {
		l.Info("Generation history repository not configured, skipping persistence",
			zap.String("session_id", record.SessionID),
			zap.String("status", record.Status),
		)
		return
	}

	if err := s.repo.SaveRecord(ctx, record); err != nil {
		l.Error("Failed to save generation record",
			zap.String("session_id", record.SessionID),
			zap.Error(err),
		)
		return
	}
	l.Debug("Generation record saved",
		zap.String("record_id", record.ID),
		zap.String("session_id", record.SessionID),
	)
}
