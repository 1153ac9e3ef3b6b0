package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// DistributionMap stores a category->fraction distribution as a JSON
// string column.
type DistributionMap map[string]float64

// Value implements the driver.Valuer interface
func (d DistributionMap) Value() (driver.Value, error) {
	if d == nil {
		return "{}", nil
	}
	jsonData, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (d *DistributionMap) Scan(value interface{}) error {
	if value == nil {
		*d = DistributionMap{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("DistributionMap Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*d = DistributionMap{}
		return nil
	}
	return json.Unmarshal(bytesToParse, d)
}

// GenerationRecord is the database model for one generation request trace.
type GenerationRecord struct {
	ID                     string          `db:"id"`
	SessionID              string          `db:"session_id"`
	SourceID               string          `db:"source_id"`
	TenantID               string          `db:"tenant_id"`
	FilterKey              string          `db:"filter_key"`
	FilterValue            string          `db:"filter_value"`
	TotalQuestions         int             `db:"total_questions"`
	TypeDistribution       DistributionMap `db:"type_distribution"`
	DifficultyDistribution DistributionMap `db:"difficulty_distribution"`
	BloomsDistribution     DistributionMap `db:"blooms_distribution"`
	Status                 string          `db:"status"`
	ErrorMessage           sql.NullString  `db:"error_message"`
	QuestionsGenerated     int             `db:"questions_generated"`
	SummaryDurationMS      int64           `db:"summary_duration_ms"`
	GenerationDurationMS   int64           `db:"generation_duration_ms"`
	TotalDurationMS        int64           `db:"total_duration_ms"`
	RequestedAt            time.Time       `db:"requested_at"`
	CreatedAt              time.Time       `db:"created_at"`
}
