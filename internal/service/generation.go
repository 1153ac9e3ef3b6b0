package service

import (
	"context"
	"sync"
	"time"

	"question-bank/internal/domain"
	"question-bank/internal/logger"

	"go.uber.org/zap"
)

// generationService orchestrates one generation request: it allocates
// per-type counts, produces the shared content summary once, fans the
// generators out concurrently and joins their batches.
type generationService struct {
	summaries  domain.SummaryProvider
	generators map[domain.QuestionType]domain.QuestionGenerator
	history    domain.GenerationHistoryService
}

// NewGenerationService wires the orchestrator. history may be nil, in
// which case no record is written.
func NewGenerationService(summaries domain.SummaryProvider, generators []domain.QuestionGenerator, history domain.GenerationHistoryService) domain.GenerationService {
	byType := make(map[domain.QuestionType]domain.QuestionGenerator, len(generators))
	for _, g := range generators {
		byType[g.Type()] = g
	}
	return &generationService{
		summaries:  summaries,
		generators: byType,
		history:    history,
	}
}

func (s *generationService) Generate(ctx context.Context, req *domain.GenerationRequest) (*domain.AggregateResult, error) {
	start := time.Now()
	l := logger.Get()
	l.Info("Starting question generation",
		zap.String("session_id", req.SessionID),
		zap.String("source_id", req.SourceID),
		zap.Int("total_questions", req.TotalQuestions),
	)

	counts := AllocateTypeCounts(req.TotalQuestions, req.TypeDistribution)

	// Types with a zero share are never dispatched; canonical order here
	// fixes the order of the result batches.
	dispatched := make([]domain.QuestionType, 0, len(domain.QuestionTypeOrder))
	for _, qt := range domain.QuestionTypeOrder {
		if counts[qt] > 0 {
			if _, ok := s.generators[qt]; !ok {
				return nil, domain.NewInternalError("no generator registered for question type", nil).
					WithContext("question_type", string(qt))
			}
			dispatched = append(dispatched, qt)
		}
	}

	if len(dispatched) == 0 {
		result := &domain.AggregateResult{
			Status:        domain.StatusSuccess,
			Batches:       []domain.QuestionBatch{},
			TotalDuration: time.Since(start),
		}
		s.record(ctx, req, result, nil)
		return result, nil
	}

	summary, err := s.summaries.Produce(ctx, req.Locator, req.DifficultyDistribution, req.BloomsDistribution)
	if err != nil {
		l.Error("Content summary failed, aborting generation",
			zap.String("session_id", req.SessionID),
			zap.Error(err),
		)
		s.record(ctx, req, nil, err)
		return nil, err
	}
	l.Info("Content summary ready",
		zap.String("session_id", req.SessionID),
		zap.Duration("summary_duration", summary.Duration),
	)

	genStart := time.Now()
	batches := s.fanOut(ctx, req, dispatched, counts, summary)
	genDuration := time.Since(genStart)

	result := &domain.AggregateResult{
		Status:             aggregateStatus(batches),
		Batches:            batches,
		SummaryDuration:    summary.Duration,
		GenerationDuration: genDuration,
		TotalDuration:      time.Since(start),
	}

	l.Info("Question generation finished",
		zap.String("session_id", req.SessionID),
		zap.String("status", string(result.Status)),
		zap.Int("questions_generated", result.QuestionCount()),
		zap.Duration("total_duration", result.TotalDuration),
	)
	s.record(ctx, req, result, nil)
	return result, nil
}

// fanOut runs one goroutine per dispatched type and joins them all; a
// failing generator yields a failed batch instead of cancelling its
// siblings. Each goroutine writes only its own slot, so the batch slice
// needs no lock and stays in canonical order.
func (s *generationService) fanOut(ctx context.Context, req *domain.GenerationRequest, dispatched []domain.QuestionType, counts map[domain.QuestionType]int, summary *domain.ContentSummary) []domain.QuestionBatch {
	batches := make([]domain.QuestionBatch, len(dispatched))

	var wg sync.WaitGroup
	for i, qt := range dispatched {
		wg.Add(1)
		go func(slot int, qt domain.QuestionType) {
			defer wg.Done()
			batchStart := time.Now()
			questions, err := s.generators[qt].Generate(ctx, req.Locator, counts[qt], req.DifficultyDistribution, req.BloomsDistribution, summary)
			batch := domain.QuestionBatch{
				Type:     qt,
				Duration: time.Since(batchStart),
			}
			if err != nil {
				logger.Get().Error("Generator failed",
					zap.String("session_id", req.SessionID),
					zap.String("question_type", string(qt)),
					zap.Error(err),
				)
				batch.Error = err.Error()
			} else {
				batch.Success = true
				batch.Questions = questions
			}
			batches[slot] = batch
		}(i, qt)
	}
	wg.Wait()

	return batches
}

func aggregateStatus(batches []domain.QuestionBatch) domain.GenerationStatus {
	var succeeded int
	for _, b := range batches {
		if b.Success {
			succeeded++
		}
	}
	switch succeeded {
	case len(batches):
		return domain.StatusSuccess
	case 0:
		return domain.StatusFailure
	default:
		return domain.StatusPartial
	}
}

func (s *generationService) record(ctx context.Context, req *domain.GenerationRequest, result *domain.AggregateResult, genErr error) {
	if s.history == nil {
		return
	}
	s.history.RecordGeneration(ctx, req, result, genErr)
}
