package domain

import "context"

// SummaryProvider produces the shared content summary for one request.
// The call blocks for as long as the underlying content engine takes
// (typically tens of seconds). It fails with CodeContentUnavailable when
// the locator resolves to no content and CodeUpstreamError when the
// engine errors or times out. Retries, if any, belong to implementations.
type SummaryProvider interface {
	Produce(ctx context.Context, locator ContentLocator, difficultyDist, bloomsDist Distribution) (*ContentSummary, error)
}

// QuestionGenerator generates questions of a single type.
//
// When summary is non-nil the generator must use it verbatim and skip any
// internal summary generation. When summary is nil the generator produces
// its own, preserving standalone usability. The generator never mutates
// the summary. Failures are reported as CodeGenerationError.
type QuestionGenerator interface {
	Type() QuestionType
	Generate(ctx context.Context, locator ContentLocator, count int, difficultyDist, bloomsDist Distribution, summary *ContentSummary) ([]Question, error)
}

// GenerationService is the orchestrating entry point: it computes per-type
// counts, produces the shared summary once, fans the generators out
// concurrently and joins their batches into one AggregateResult.
type GenerationService interface {
	Generate(ctx context.Context, req *GenerationRequest) (*AggregateResult, error)
}
