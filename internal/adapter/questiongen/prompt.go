package questiongen

import (
	"fmt"
	"strings"

	"question-bank/internal/domain"
)

func difficultyDescription(d domain.Difficulty) string {
	switch d {
	case domain.DifficultyBasic:
		return "recall of facts and basic understanding of concepts"
	case domain.DifficultyIntermediate:
		return "application of concepts and analysis of relationships"
	case domain.DifficultyAdvanced:
		return "synthesis of multiple concepts and evaluation of complex scenarios"
	default:
		return "appropriate college-level understanding"
	}
}

func bloomsGuidelines(questionType domain.QuestionType, level domain.BloomsLevel) string {
	switch questionType {
	case domain.QuestionTypeMCQ:
		switch level {
		case domain.BloomsRemember:
			return "Focus on direct recall of facts, definitions, and basic concepts. Stem should ask for specific information covered in the material."
		case domain.BloomsApply:
			return "Present a scenario or problem that requires applying learned concepts. Stem should describe a situation where students must use their knowledge."
		case domain.BloomsAnalyze:
			return "Present complex scenarios requiring analysis of multiple variables. Stem should require students to examine, compare, or evaluate information."
		}
	case domain.QuestionTypeTrueFalse:
		switch level {
		case domain.BloomsRemember:
			return "State facts, definitions, or basic concepts clearly. Focus on information directly covered in the material."
		case domain.BloomsApply:
			return "Present statements about applying concepts to situations. Focus on whether procedures or principles are correctly applied."
		case domain.BloomsAnalyze:
			return "Present statements requiring analysis of complex relationships. Focus on evaluations, comparisons, or synthesis of information."
		}
	case domain.QuestionTypeFillInBlank:
		switch level {
		case domain.BloomsRemember:
			return "Remove key terms, definitions, or factual information. Focus on vocabulary, names, dates, and basic concepts."
		case domain.BloomsApply:
			return "Remove answers that require applying formulas or procedures. Focus on results of calculations or applications."
		case domain.BloomsAnalyze:
			return "Remove conclusions, evaluations, or synthesis results. Focus on analytical outcomes or judgments."
		}
	}
	return "appropriate cognitive level thinking"
}

// guidelineBlock renders the per-(difficulty, blooms) instructions for the
// tag sequence: one block per distinct combination, in sequence order.
func guidelineBlock(questionType domain.QuestionType, tags []questionTag) string {
	type combo struct {
		tag   questionTag
		count int
	}
	var combos []combo
	seen := make(map[questionTag]int)
	for _, tag := range tags {
		if idx, ok := seen[tag]; ok {
			combos[idx].count++
			continue
		}
		seen[tag] = len(combos)
		combos = append(combos, combo{tag: tag, count: 1})
	}

	var b strings.Builder
	for _, c := range combos {
		fmt.Fprintf(&b, "For %d questions at %s difficulty and %s Bloom's level:\n",
			c.count, strings.ToUpper(string(c.tag.Difficulty)), strings.ToUpper(string(c.tag.Blooms)))
		fmt.Fprintf(&b, "- Difficulty: %s\n", difficultyDescription(c.tag.Difficulty))
		fmt.Fprintf(&b, "- Bloom's Level Guidelines: %s\n\n", bloomsGuidelines(questionType, c.tag.Blooms))
	}
	return b.String()
}

const formattingRules = `IMPORTANT FORMATTING INSTRUCTIONS:
- Start IMMEDIATELY with your first question using the marker shown below
- DO NOT write ANY introductory text like "Based on the chapter..." or "I'll create..."
- DO NOT include ANY preamble or explanation before the first question
`
