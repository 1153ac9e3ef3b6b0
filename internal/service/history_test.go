package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"question-bank/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHistoryRepo struct {
	records []*domain.GenerationRecord
	err     error
}

func (r *stubHistoryRepo) SaveRecord(ctx context.Context, record *domain.GenerationRecord) error {
	r.records = append(r.records, record)
	return r.err
}

func TestGenerationHistoryService_RecordGeneration(t *testing.T) {
	req := newTestRequest(10)

	t.Run("SavesFullRecord", func(t *testing.T) {
		repo := &stubHistoryRepo{}
		svc := NewGenerationHistoryService(repo)

		result := &domain.AggregateResult{
			Status: domain.StatusPartial,
			Batches: []domain.QuestionBatch{
				{Type: domain.QuestionTypeMCQ, Success: true, Questions: make([]domain.Question, 4)},
				{Type: domain.QuestionTypeTrueFalse, Success: false, Error: "model offline"},
			},
			SummaryDuration:    1500 * time.Millisecond,
			GenerationDuration: 4 * time.Second,
			TotalDuration:      6 * time.Second,
		}
		svc.RecordGeneration(context.Background(), req, result, nil)

		require.Len(t, repo.records, 1)
		record := repo.records[0]
		assert.NotEmpty(t, record.ID)
		assert.Equal(t, req.SessionID, record.SessionID)
		assert.Equal(t, req.Locator.TenantID, record.TenantID)
		assert.Equal(t, string(domain.StatusPartial), record.Status)
		assert.Equal(t, 4, record.QuestionsGenerated)
		assert.Equal(t, int64(1500), record.SummaryDurationMS)
		assert.Equal(t, int64(4000), record.GenerationDurationMS)
		assert.Equal(t, int64(6000), record.TotalDurationMS)
		assert.False(t, record.RequestedAt.IsZero())
	})

	t.Run("NilResultRecordsFailure", func(t *testing.T) {
		repo := &stubHistoryRepo{}
		svc := NewGenerationHistoryService(repo)

		svc.RecordGeneration(context.Background(), req, nil, errors.New("engine timeout"))

		require.Len(t, repo.records, 1)
		assert.Equal(t, string(domain.StatusFailure), repo.records[0].Status)
		assert.Equal(t, "engine timeout", repo.records[0].ErrorMessage)
		assert.Equal(t, 0, repo.records[0].QuestionsGenerated)
	})

	t.Run("RepositoryErrorSwallowed", func(t *testing.T) {
		repo := &stubHistoryRepo{err: errors.New("ORA-12541: no listener")}
		svc := NewGenerationHistoryService(repo)

		assert.NotPanics(t, func() {
			svc.RecordGeneration(context.Background(), req, &domain.AggregateResult{Status: domain.StatusSuccess}, nil)
		})
	})

	t.Run("NilRepositorySkipsPersistence", func(t *testing.T) {
		svc := NewGenerationHistoryService(nil)
		assert.NotPanics(t, func() {
			svc.RecordGeneration(context.Background(), req, &domain.AggregateResult{Status: domain.StatusSuccess}, nil)
		})
	})
}
