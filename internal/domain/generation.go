package domain

import (
	"math"
	"time"
)

// DistributionTolerance is the floating tolerance allowed when checking
// that a distribution's fractions sum to 1.0.
const DistributionTolerance = 1e-6

// Distribution maps a categorical key (question type, difficulty, Bloom's
// level) to its fraction of the total. A valid distribution has
// non-negative values summing to 1.0 within DistributionTolerance.
type Distribution map[string]float64

// Sum returns the total of all fractions in the distribution.
func (d Distribution) Sum() float64 {
	var total float64
	for _, v := range d {
		total += v
	}
	return total
}

// SumsToOne reports whether the fractions sum to 1.0 within tolerance.
func (d Distribution) SumsToOne() bool {
	return math.Abs(d.Sum()-1.0) <= DistributionTolerance
}

// ContentLocator selects the corpus slice to summarize and question:
// a tenant plus a metadata filter (e.g. toc_level_1_title = chapter id).
type ContentLocator struct {
	TenantID    string
	FilterKey   string
	FilterValue string
}

// GenerationRequest is a fully resolved request to generate questions.
// Defaults have already been applied at the transport boundary; the
// orchestrator treats every field as explicit.
type GenerationRequest struct {
	SessionID              string
	SourceID               string
	Locator                ContentLocator
	TotalQuestions         int
	TypeDistribution       Distribution
	DifficultyDistribution Distribution
	BloomsDistribution     Distribution
}

// ContentSummary is the shared generation context produced once per
// request. It is immutable after creation: workers receive it read-only
// and must never modify it.
type ContentSummary struct {
	Text     string
	Duration time.Duration
}

// QuestionBatch is the outcome of one generator invocation. Exactly one
// batch exists per dispatched question type; a failed invocation yields a
// batch with Success=false and Error set instead of aborting the request.
type QuestionBatch struct {
	Type      QuestionType
	Questions []Question
	Duration  time.Duration
	Success   bool
	Error     string
}

// GenerationStatus is the overall outcome of an aggregate generation.
type GenerationStatus string

const (
	// StatusSuccess means every dispatched generator succeeded.
	StatusSuccess GenerationStatus = "success"
	// StatusPartial means at least one generator succeeded and at least one failed.
	StatusPartial GenerationStatus = "partial"
	// StatusFailure means every dispatched generator failed.
	StatusFailure GenerationStatus = "failure"
)

// AggregateResult is the terminal artifact of one generation request.
// Batches are always in canonical type order (mcq, tf, fib). Timing fields
// are structured diagnostics callers can assert on.
type AggregateResult struct {
	Status             GenerationStatus
	Batches            []QuestionBatch
	SummaryDuration    time.Duration
	GenerationDuration time.Duration
	TotalDuration      time.Duration
}

// QuestionCount returns the number of questions across all successful batches.
func (r *AggregateResult) QuestionCount() int {
	var n int
	for _, b := range r.Batches {
		n += len(b.Questions)
	}
	return n
}
