package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"question-bank/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupHistoryTestDB creates a new sqlx.DB instance and sqlmock for history repository testing.
func setupHistoryTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	return sqlxDB, mock
}

func sampleRecord() *domain.GenerationRecord {
	return &domain.GenerationRecord{
		ID:                     "01HREC0000000000000000TEST",
		SessionID:              "01HSESSION000000000000TEST",
		SourceID:               "src-1",
		TenantID:               "cx2201",
		FilterKey:              "toc_level_1_title",
		FilterValue:            "56330_ch10_ptg01",
		TotalQuestions:         10,
		TypeDistribution:       domain.Distribution{"mcq": 0.4, "tf": 0.3, "fib": 0.3},
		DifficultyDistribution: domain.Distribution{"basic": 0.3, "intermediate": 0.3, "advanced": 0.4},
		BloomsDistribution:     domain.Distribution{"remember": 0.3, "apply": 0.4, "analyze": 0.3},
		Status:                 "partial",
		ErrorMessage:           "",
		QuestionsGenerated:     7,
		SummaryDurationMS:      1500,
		GenerationDurationMS:   4200,
		TotalDurationMS:        5900,
		RequestedAt:            time.Now().UTC(),
	}
}

func TestSQLXGenerationHistoryRepository_SaveRecord(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock := setupHistoryTestDB(t)
		defer db.Close()
		repo := NewSQLXGenerationHistoryRepository(db)

		mock.ExpectExec(`INSERT INTO generation_history`).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.SaveRecord(context.Background(), sampleRecord())
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DatabaseError", func(t *testing.T) {
		db, mock := setupHistoryTestDB(t)
		defer db.Close()
		repo := NewSQLXGenerationHistoryRepository(db)

		mock.ExpectExec(`INSERT INTO generation_history`).
			WillReturnError(errors.New("ORA-12541: TNS no listener"))

		err := repo.SaveRecord(context.Background(), sampleRecord())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to save generation record")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestToGenerationRecordModel(t *testing.T) {
	record := sampleRecord()
	record.ErrorMessage = "tf batch failed"

	model := toGenerationRecordModel(record)
	assert.Equal(t, record.ID, model.ID)
	assert.Equal(t, record.SessionID, model.SessionID)
	assert.Equal(t, record.TenantID, model.TenantID)
	assert.Equal(t, record.TotalQuestions, model.TotalQuestions)
	assert.InDelta(t, 0.4, model.TypeDistribution["mcq"], 1e-9)
	assert.True(t, model.ErrorMessage.Valid)
	assert.Equal(t, "tf batch failed", model.ErrorMessage.String)

	record.ErrorMessage = ""
	model = toGenerationRecordModel(record)
	assert.False(t, model.ErrorMessage.Valid)
}
