package dto

// GenerationRequest is the request body for question generation. All
// fields are optional; omitted ones fall back to configured defaults.
// @Description Request body for generating questions from a content source
type GenerationRequest struct {
	SessionID                  string             `json:"session_id,omitempty"`
	TenantID                   string             `json:"tenant_id,omitempty"`
	FilterKey                  string             `json:"filter_key,omitempty"`
	FilterValue                string             `json:"filter_value,omitempty"`
	TotalQuestions             *int               `json:"total_questions,omitempty"`
	QuestionTypeDistribution   map[string]float64 `json:"question_type_distribution,omitempty"`
	DifficultyDistribution     map[string]float64 `json:"difficulty_distribution,omitempty"`
	BloomsTaxonomyDistribution map[string]float64 `json:"blooms_taxonomy_distribution,omitempty"`
}

// QuestionResponse represents a single generated question
type QuestionResponse struct {
	QuestionType string   `json:"question_type"`
	Question     string   `json:"question"`
	Answer       string   `json:"answer,omitempty"`
	IsTrue       *bool    `json:"is_true,omitempty"`
	Explanation  string   `json:"explanation,omitempty"`
	Options      []string `json:"options,omitempty"`
	Distractors  []string `json:"distractors,omitempty"`
	Difficulty   string   `json:"difficulty,omitempty"`
	BloomsLevel  string   `json:"blooms_level,omitempty"`
}

// QuestionBatchResponse represents the outcome of one question type
type QuestionBatchResponse struct {
	QuestionType string             `json:"question_type"`
	Questions    []QuestionResponse `json:"questions"`
	DurationMS   int64              `json:"duration_ms"`
	Success      bool               `json:"success"`
	Error        string             `json:"error,omitempty"`
}

// TimingsResponse carries the structured timing diagnostics of one request
type TimingsResponse struct {
	SummaryDurationMS    int64 `json:"summary_duration_ms"`
	GenerationDurationMS int64 `json:"generation_duration_ms"`
	TotalDurationMS      int64 `json:"total_duration_ms"`
}

// GenerationResponse is the aggregate result of one generation request
// @Description Generated question batches with per-type outcomes and timings
type GenerationResponse struct {
	Status             string                  `json:"status"`
	Message            string                  `json:"message"`
	SessionID          string                  `json:"session_id"`
	SourceID           string                  `json:"source_id"`
	QuestionsGenerated int                     `json:"questions_generated"`
	Batches            []QuestionBatchResponse `json:"batches"`
	Timings            TimingsResponse         `json:"timings"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
