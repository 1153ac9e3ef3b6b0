// Package questiongen contains the LLM-backed question generators. Each
// generator covers one question type and shares the same contract: it
// consumes a pre-generated content summary when one is supplied, or
// produces its own when invoked standalone.
package questiongen

import (
	"context"
	"time"

	"question-bank/internal/domain"
	"question-bank/internal/logger"
	"question-bank/internal/util"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

// LLMClient is the slice of the langchaingo client the generators need.
// *ollama.LLM satisfies it.
type LLMClient interface {
	Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error)
}

// questionTag is a (difficulty, blooms) assignment for one question slot.
type questionTag struct {
	Difficulty domain.Difficulty
	Blooms     domain.BloomsLevel
}

var difficultyOrder = []string{
	string(domain.DifficultyBasic),
	string(domain.DifficultyIntermediate),
	string(domain.DifficultyAdvanced),
}

var bloomsOrder = []string{
	string(domain.BloomsRemember),
	string(domain.BloomsApply),
	string(domain.BloomsAnalyze),
}

// buildTagSequence expands the difficulty and Bloom's distributions into a
// deterministic per-question assignment: count is first apportioned across
// difficulties, then each difficulty's share across Bloom's levels. The
// parser later assigns tags to parsed questions by position.
func buildTagSequence(count int, difficultyDist, bloomsDist domain.Distribution) []questionTag {
	tags := make([]questionTag, 0, count)
	perDifficulty := util.Apportion(count, difficultyOrder, difficultyDist)
	for _, diff := range difficultyOrder {
		perBlooms := util.Apportion(perDifficulty[diff], bloomsOrder, bloomsDist)
		for _, blooms := range bloomsOrder {
			for i := 0; i < perBlooms[blooms]; i++ {
				tags = append(tags, questionTag{
					Difficulty: domain.Difficulty(diff),
					Blooms:     domain.BloomsLevel(blooms),
				})
			}
		}
	}
	return tags
}

// base carries the collaborators shared by the three generators.
type base struct {
	llm       LLMClient
	summaries domain.SummaryProvider
	timeout   time.Duration
}

func (b *base) callLLM(ctx context.Context, prompt string) (string, error) {
	if b.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}
	return b.llm.Call(ctx, prompt, llms.WithTemperature(0.1))
}

// resolveSummary returns the supplied summary unchanged, or generates one
// when the generator is used standalone. The supplied summary is never
// modified.
func (b *base) resolveSummary(ctx context.Context, questionType domain.QuestionType, locator domain.ContentLocator, difficultyDist, bloomsDist domain.Distribution, summary *domain.ContentSummary) (*domain.ContentSummary, error) {
	if summary != nil {
		return summary, nil
	}
	logger.Get().Warn("No content summary provided, generating a standalone one",
		zap.String("question_type", string(questionType)),
		zap.String("filter_value", locator.FilterValue),
	)
	return b.summaries.Produce(ctx, locator, difficultyDist, bloomsDist)
}
