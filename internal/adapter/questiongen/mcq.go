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

// MCQGenerator generates multiple-choice questions.
type MCQGenerator struct {
	base
}

// NewMCQGenerator creates a multiple-choice question generator. summaries
// backs the standalone fallback path used when no shared summary is supplied.
func NewMCQGenerator(llm LLMClient, summaries domain.SummaryProvider, timeout time.Duration) *MCQGenerator {
	return &MCQGenerator{base: base{llm: llm, summaries: summaries, timeout: timeout}}
}

func (g *MCQGenerator) Type() domain.QuestionType {
	return domain.QuestionTypeMCQ
}

func (g *MCQGenerator) Generate(ctx context.Context, locator domain.ContentLocator, count int, difficultyDist, bloomsDist domain.Distribution, summary *domain.ContentSummary) ([]domain.Question, error) {
	if count <= 0 {
		return nil, nil
	}
	l := logger.Get()
	l.Info("Generating MCQ questions",
		zap.Int("count", count),
		zap.String("filter_value", locator.FilterValue),
	)

	summary, err := g.resolveSummary(ctx, g.Type(), locator, difficultyDist, bloomsDist, summary)
	if err != nil {
		return nil, domain.NewGenerationError(g.Type(), err)
	}

	tags := buildTagSequence(count, difficultyDist, bloomsDist)
	raw, err := g.callLLM(ctx, buildMCQPrompt(summary.Text, count, tags))
	if err != nil {
		return nil, domain.NewGenerationError(g.Type(), err)
	}

	questions := parseMCQ(raw, tags)
	if len(questions) == 0 {
		return nil, domain.NewGenerationError(g.Type(), fmt.Errorf("no questions parsed from response"))
	}

	l.Info("MCQ generation complete", zap.Int("parsed", len(questions)), zap.Int("requested", count))
	return questions, nil
}

func buildMCQPrompt(summaryText string, count int, tags []questionTag) string {
	var b strings.Builder
	b.WriteString("You are a professor writing sophisticated multiple-choice questions for an upper-level university course. The questions will be based on this chapter summary:\n\n")
	b.WriteString(summaryText)
	fmt.Fprintf(&b, "\n\nCreate exactly %d multiple-choice questions following these specific guidelines:\n\n", count)
	b.WriteString(guidelineBlock(domain.QuestionTypeMCQ, tags))
	b.WriteString(formattingRules)
	b.WriteString(`
Each question should:
1. Match the specified difficulty and Bloom's taxonomy level
2. Present scenarios appropriate to the cognitive level required
3. Use domain-specific terminology accurately
4. Include strong distractors that reflect common misconceptions

Format each question exactly as follows:
QUESTION: [Question text appropriate to difficulty and Bloom's level]
ANSWER: [Correct answer]
EXPLANATION: [Explanation of correct answer and why it demonstrates the required cognitive level]
DISTRACTOR1: [First incorrect option]
DISTRACTOR2: [Second incorrect option]
DISTRACTOR3: [Third incorrect option]
`)
	return b.String()
}

// parseMCQ turns the marker-formatted LLM response into questions,
// assigning difficulty and Bloom's tags by position in the tag sequence.
// Blocks missing an answer are dropped rather than failing the batch.
func parseMCQ(raw string, tags []questionTag) []domain.Question {
	blocks := splitBlocks(raw, "QUESTION:")
	questions := make([]domain.Question, 0, len(blocks))
	for _, block := range blocks {
		q := domain.Question{
			Type:        domain.QuestionTypeMCQ,
			Question:    leadingText(block, "ANSWER:"),
			Answer:      section(block, "ANSWER:", "EXPLANATION:", "DISTRACTOR1:"),
			Explanation: section(block, "EXPLANATION:", "DISTRACTOR1:"),
		}
		for _, marker := range []string{"DISTRACTOR1:", "DISTRACTOR2:", "DISTRACTOR3:"} {
			if d := section(block, marker, "DISTRACTOR1:", "DISTRACTOR2:", "DISTRACTOR3:"); d != "" {
				q.Distractors = append(q.Distractors, d)
			}
		}
		// A usable MCQ needs at least one distractor next to the answer.
		if q.Question == "" || q.Answer == "" || len(q.Distractors) == 0 {
			continue
		}
		if len(questions) < len(tags) {
			q.Difficulty = tags[len(questions)].Difficulty
			q.BloomsLevel = tags[len(questions)].Blooms
		}
		questions = append(questions, q)
	}
	return questions
}

var _ domain.QuestionGenerator = (*MCQGenerator)(nil)
