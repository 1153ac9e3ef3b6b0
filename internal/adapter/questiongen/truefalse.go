package questiongen

import (
	"context"
	"fmt"
	"strings"
	"time"

	"question-bank/internal/domain"
	"question-bank/internal/logger"

	"go.uber.org/zap"
)

// TrueFalseGenerator generates true/false questions.
type TrueFalseGenerator struct {
	base
}

// NewTrueFalseGenerator creates a true/false question generator.
func NewTrueFalseGenerator(llm LLMClient, summaries domain.SummaryProvider, timeout time.Duration) *TrueFalseGenerator {
	return &TrueFalseGenerator{base: base{llm: llm, summaries: summaries, timeout: timeout}}
}

func (g *TrueFalseGenerator) Type() domain.QuestionType {
	return domain.QuestionTypeTrueFalse
}

func (g *TrueFalseGenerator) Generate(ctx context.Context, locator domain.ContentLocator, count int, difficultyDist, bloomsDist domain.Distribution, summary *domain.ContentSummary) ([]domain.Question, error) {
	if count <= 0 {
		return nil, nil
	}
	l := logger.Get()
	l.Info("Generating true/false questions",
		zap.Int("count", count),
		zap.String("filter_value", locator.FilterValue),
	)

	summary, err := g.resolveSummary(ctx, g.Type(), locator, difficultyDist, bloomsDist, summary)
	if err != nil {
		return nil, domain.NewGenerationError(g.Type(), err)
	}

	tags := buildTagSequence(count, difficultyDist, bloomsDist)
	raw, err := g.callLLM(ctx, buildTrueFalsePrompt(summary.Text, count, tags))
	if err != nil {
		return nil, domain.NewGenerationError(g.Type(), err)
	}

	questions := parseTrueFalse(raw, tags)
	if len(questions) == 0 {
		return nil, domain.NewGenerationError(g.Type(), fmt.Errorf("no questions parsed from response"))
	}

	l.Info("True/false generation complete", zap.Int("parsed", len(questions)), zap.Int("requested", count))
	return questions, nil
}

func buildTrueFalsePrompt(summaryText string, count int, tags []questionTag) string {
	var b strings.Builder
	b.WriteString("You are a professor writing true/false questions for an upper-level university course. The questions will be based on this chapter summary:\n\n")
	b.WriteString(summaryText)
	fmt.Fprintf(&b, "\n\nCreate exactly %d true/false questions following these specific guidelines:\n\n", count)
	b.WriteString(guidelineBlock(domain.QuestionTypeTrueFalse, tags))
	b.WriteString(formattingRules)
	b.WriteString(`
Aim for a roughly even mix of TRUE and FALSE statements. False statements
must be plausible misstatements of the material, not obvious absurdities.

Format each question exactly as follows:
STATEMENT: [A clear statement that is either true or false, appropriate to difficulty and Bloom's level]
ANSWER: [Either "TRUE" or "FALSE" in all caps]
EXPLANATION: [Explanation of why the statement is true or false, with reference to chapter content]
`)
	return b.String()
}

// parseTrueFalse parses STATEMENT blocks. Blocks whose answer is neither
// TRUE nor FALSE are dropped.
func parseTrueFalse(raw string, tags []questionTag) []domain.Question {
	blocks := splitBlocks(raw, "STATEMENT:")
	questions := make([]domain.Question, 0, len(blocks))
	for _, block := range blocks {
		statement := leadingText(block, "ANSWER:")
		answer := strings.ToUpper(section(block, "ANSWER:", "EXPLANATION:"))
		if statement == "" || (answer != "TRUE" && answer != "FALSE") {
			continue
		}
		isTrue := answer == "TRUE"
		q := domain.Question{
			Type:        domain.QuestionTypeTrueFalse,
			Question:    statement,
			IsTrue:      &isTrue,
			Explanation: section(block, "EXPLANATION:"),
		}
		if len(questions) < len(tags) {
			q.Difficulty = tags[len(questions)].Difficulty
			q.BloomsLevel = tags[len(questions)].Blooms
		}
		questions = append(questions, q)
	}
	return questions
}

var _ domain.QuestionGenerator = (*TrueFalseGenerator)(nil)
