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

// blankMarker is the run of underscores standing in for the removed term.
const blankMarker = "________"

// FIBGenerator generates fill-in-the-blank questions.
type FIBGenerator struct {
	base
}

// NewFIBGenerator creates a fill-in-the-blank question generator.
func NewFIBGenerator(llm LLMClient, summaries domain.SummaryProvider, timeout time.Duration) *FIBGenerator {
	return &FIBGenerator{base: base{llm: llm, summaries: summaries, timeout: timeout}}
}

func (g *FIBGenerator) Type() domain.QuestionType {
	return domain.QuestionTypeFillInBlank
}

func (g *FIBGenerator) Generate(ctx context.Context, locator domain.ContentLocator, count int, difficultyDist, bloomsDist domain.Distribution, summary *domain.ContentSummary) ([]domain.Question, error) {
	if count <= 0 {
		return nil, nil
	}
	l := logger.Get()
	l.Info("Generating fill-in-the-blank questions",
		zap.Int("count", count),
		zap.String("filter_value", locator.FilterValue),
	)

	summary, err := g.resolveSummary(ctx, g.Type(), locator, difficultyDist, bloomsDist, summary)
	if err != nil {
		return nil, domain.NewGenerationError(g.Type(), err)
	}

	tags := buildTagSequence(count, difficultyDist, bloomsDist)
	raw, err := g.callLLM(ctx, buildFIBPrompt(summary.Text, count, tags))
	if err != nil {
		return nil, domain.NewGenerationError(g.Type(), err)
	}

	questions := parseFIB(raw, tags)
	if len(questions) == 0 {
		return nil, domain.NewGenerationError(g.Type(), fmt.Errorf("no questions parsed from response"))
	}

	l.Info("Fill-in-the-blank generation complete", zap.Int("parsed", len(questions)), zap.Int("requested", count))
	return questions, nil
}

func buildFIBPrompt(summaryText string, count int, tags []questionTag) string {
	var b strings.Builder
	b.WriteString("You are a professor writing fill-in-the-blank questions for an upper-level university course. The questions will be based on this chapter summary:\n\n")
	b.WriteString(summaryText)
	fmt.Fprintf(&b, "\n\nCreate exactly %d fill-in-the-blank questions following these specific guidelines:\n\n", count)
	b.WriteString(guidelineBlock(domain.QuestionTypeFillInBlank, tags))
	b.WriteString(formattingRules)
	b.WriteString(`
Each question should:
1. Take a complete, meaningful sentence from the material and replace one key term with "` + blankMarker + `" (exactly 8 underscores)
2. Have exactly one blank per question
3. Have a single unambiguous answer of one to three words
4. Retain enough context that the answer is determinable from the sentence

Format each question exactly as follows:
QUESTION: [A sentence with one key term replaced by "` + blankMarker + `"]
ANSWER: [The exact term that fills the blank]
EXPLANATION: [Explanation of why this term is correct and where it appears in the material]
`)
	return b.String()
}

// parseFIB parses QUESTION blocks. Blocks whose question text carries no
// blank marker are dropped along with blocks missing an answer.
func parseFIB(raw string, tags []questionTag) []domain.Question {
	blocks := splitBlocks(raw, "QUESTION:")
	questions := make([]domain.Question, 0, len(blocks))
	for _, block := range blocks {
		q := domain.Question{
			Type:        domain.QuestionTypeFillInBlank,
			Question:    leadingText(block, "ANSWER:"),
			Answer:      section(block, "ANSWER:", "EXPLANATION:"),
			Explanation: section(block, "EXPLANATION:"),
		}
		if q.Question == "" || q.Answer == "" || !strings.Contains(q.Question, blankMarker) {
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

var _ domain.QuestionGenerator = (*FIBGenerator)(nil)
