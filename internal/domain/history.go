package domain

import (
	"context"
	"time"
)

// GenerationRecord is the persisted trace of one generation request,
// written after the response is assembled regardless of outcome.
type GenerationRecord struct {
	ID                     string
	SessionID              string
	SourceID               string
	TenantID               string
	FilterKey              string
	FilterValue            string
	TotalQuestions         int
	TypeDistribution       Distribution
	DifficultyDistribution Distribution
	BloomsDistribution     Distribution
	Status                 string
	ErrorMessage           string
	QuestionsGenerated     int
	SummaryDurationMS      int64
	GenerationDurationMS   int64
	TotalDurationMS        int64
	RequestedAt            time.Time
}

// GenerationHistoryRepository persists generation records.
type GenerationHistoryRepository interface {
	SaveRecord(ctx context.Context, record *GenerationRecord) error
}

// GenerationHistoryService records the outcome of generation requests.
// Recording is best-effort: implementations log failures and never
// propagate them to the caller.
type GenerationHistoryService interface {
	RecordGeneration(ctx context.Context, req *GenerationRequest, result *AggregateResult, genErr error)
}
