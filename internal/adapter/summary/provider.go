package summary

import (
	"context"
	"fmt"
	"strings"
	"time"

	"question-bank/internal/domain"
	"question-bank/internal/logger"
	"question-bank/internal/util"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

// LLMClient is the narrow slice of the langchaingo client the provider
// needs. *ollama.LLM satisfies it.
type LLMClient interface {
	Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error)
}

// LLMSummaryProvider implements domain.SummaryProvider on top of a
// retrieval-backed LLM. One Produce call issues one blocking content
// query; duration is recorded on the returned summary.
type LLMSummaryProvider struct {
	llm     LLMClient
	timeout time.Duration
}

// NewLLMSummaryProvider creates a summary provider. timeout bounds a
// single content engine call; zero means no explicit bound beyond the
// request context.
func NewLLMSummaryProvider(llm LLMClient, timeout time.Duration) domain.SummaryProvider {
	return &LLMSummaryProvider{llm: llm, timeout: timeout}
}

func (p *LLMSummaryProvider) Produce(ctx context.Context, locator domain.ContentLocator, difficultyDist, bloomsDist domain.Distribution) (*domain.ContentSummary, error) {
	l := logger.Get()
	l.Info("Generating content summary",
		zap.String("tenant_id", locator.TenantID),
		zap.String("filter_key", locator.FilterKey),
		zap.String("filter_value", locator.FilterValue),
	)

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	prompt := buildSummaryPrompt(locator, difficultyDist, bloomsDist)

	start := time.Now()
	response, err := p.llm.Call(ctx, prompt, llms.WithTemperature(0))
	duration := time.Since(start)
	if err != nil {
		l.Error("Content summary request failed",
			zap.Error(err),
			zap.Duration("duration", duration),
		)
		return nil, domain.NewUpstreamError(err)
	}

	text := strings.TrimSpace(response)
	if text == "" {
		l.Warn("Content engine returned an empty summary",
			zap.String("filter_key", locator.FilterKey),
			zap.String("filter_value", locator.FilterValue),
		)
		return nil, domain.NewContentUnavailableError(locator)
	}

	l.Info("Content summary generated",
		zap.Duration("duration", duration),
		zap.Int("length", len(text)),
	)

	return &domain.ContentSummary{Text: text, Duration: duration}, nil
}

func buildSummaryPrompt(locator domain.ContentLocator, difficultyDist, bloomsDist domain.Distribution) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Provide a comprehensive summary of content where %s=%s. Include key concepts, topics, and important details.",
		locator.FilterKey, locator.FilterValue)
	if len(difficultyDist) > 0 {
		fmt.Fprintf(&b, "\nThe summary will seed assessment questions with difficulty mix %s.", util.FormatDistribution(difficultyDist))
	}
	if len(bloomsDist) > 0 {
		fmt.Fprintf(&b, "\nCover material supporting these Bloom's taxonomy levels: %s.", util.FormatDistribution(bloomsDist))
	}
	return b.String()
}
