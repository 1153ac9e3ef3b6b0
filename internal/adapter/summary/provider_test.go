package summary

import (
	"context"
	"errors"
	"testing"
	"time"

	"question-bank/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/tmc/langchaingo/llms"
)

type fakeLLM struct {
	response string
	err      error
	calls    int
	prompts  []string
}

func (f *fakeLLM) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

var testLocator = domain.ContentLocator{
	TenantID:    "cx2201",
	FilterKey:   "toc_level_1_title",
	FilterValue: "56330_ch10_ptg01",
}

func TestLLMSummaryProvider_Produce(t *testing.T) {
	diffDist := domain.Distribution{"advanced": 1.0}
	bloomsDist := domain.Distribution{"analyze": 1.0}

	t.Run("Success", func(t *testing.T) {
		llm := &fakeLLM{response: "Chapter 10 covers market structures."}
		provider := NewLLMSummaryProvider(llm, 10*time.Second)

		summary, err := provider.Produce(context.Background(), testLocator, diffDist, bloomsDist)
		assert.NoError(t, err)
		assert.Equal(t, "Chapter 10 covers market structures.", summary.Text)
		assert.Equal(t, 1, llm.calls)
		assert.Contains(t, llm.prompts[0], "toc_level_1_title=56330_ch10_ptg01")
	})

	t.Run("UpstreamFailure", func(t *testing.T) {
		llm := &fakeLLM{err: errors.New("engine exploded")}
		provider := NewLLMSummaryProvider(llm, 10*time.Second)

		summary, err := provider.Produce(context.Background(), testLocator, diffDist, bloomsDist)
		assert.Nil(t, summary)
		var domainErr *domain.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeUpstreamError, domainErr.Code)
	})

	t.Run("EmptyResponseIsContentUnavailable", func(t *testing.T) {
		llm := &fakeLLM{response: "   \n"}
		provider := NewLLMSummaryProvider(llm, 10*time.Second)

		summary, err := provider.Produce(context.Background(), testLocator, diffDist, bloomsDist)
		assert.Nil(t, summary)
		var domainErr *domain.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeContentUnavailable, domainErr.Code)
	})
}
