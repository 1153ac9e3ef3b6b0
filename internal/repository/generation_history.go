package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"question-bank/internal/domain"
	"question-bank/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// sqlxGenerationHistoryRepository persists generation traces using sqlx.
type sqlxGenerationHistoryRepository struct {
	db *sqlx.DB
}

// NewSQLXGenerationHistoryRepository creates a new instance of sqlxGenerationHistoryRepository.
func NewSQLXGenerationHistoryRepository(db *sqlx.DB) domain.GenerationHistoryRepository {
	return &sqlxGenerationHistoryRepository{db: db}
}

// SaveRecord inserts a generation record.
func (r *sqlxGenerationHistoryRepository) SaveRecord(ctx context.Context, record *domain.GenerationRecord) error {
	model := toGenerationRecordModel(record)
	model.CreatedAt = time.Now()

	query := `INSERT INTO generation_history (id, session_id, source_id, tenant_id, filter_key, filter_value,
	          total_questions, type_distribution, difficulty_distribution, blooms_distribution,
	          status, error_message, questions_generated, summary_duration_ms, generation_duration_ms,
	          total_duration_ms, requested_at, created_at)
	          VALUES (:id, :session_id, :source_id, :tenant_id, :filter_key, :filter_value,
	          :total_questions, :type_distribution, :difficulty_distribution, :blooms_distribution,
	          :status, :error_message, :questions_generated, :summary_duration_ms, :generation_duration_ms,
	          :total_duration_ms, :requested_at, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, model); err != nil {
		return fmt.Errorf("failed to save generation record: %w", err)
	}
	return nil
}

func toGenerationRecordModel(record *domain.GenerationRecord) *models.GenerationRecord {
	model := &models.GenerationRecord{
		ID:                     record.ID,
		SessionID:              record.SessionID,
		SourceID:               record.SourceID,
		TenantID:               record.TenantID,
		FilterKey:              record.FilterKey,
		FilterValue:            record.FilterValue,
		TotalQuestions:         record.TotalQuestions,
		TypeDistribution:       models.DistributionMap(record.TypeDistribution),
		DifficultyDistribution: models.DistributionMap(record.DifficultyDistribution),
		BloomsDistribution:     models.DistributionMap(record.BloomsDistribution),
		Status:                 record.Status,
		QuestionsGenerated:     record.QuestionsGenerated,
		SummaryDurationMS:      record.SummaryDurationMS,
		GenerationDurationMS:   record.GenerationDurationMS,
		TotalDurationMS:        record.TotalDurationMS,
		RequestedAt:            record.RequestedAt,
	}
	if record.ErrorMessage != "" {
		model.ErrorMessage = sql.NullString{String: record.ErrorMessage, Valid: true}
	}
	return model
}
