package domain

// QuestionType identifies one of the supported question formats.
type QuestionType string

const (
	QuestionTypeMCQ         QuestionType = "mcq"
	QuestionTypeTrueFalse   QuestionType = "tf"
	QuestionTypeFillInBlank QuestionType = "fib"
)

// QuestionTypeOrder is the canonical ordering used whenever batches are
// assembled or counts are allocated. Aggregate output always follows this
// order regardless of worker completion order.
var QuestionTypeOrder = []QuestionType{QuestionTypeMCQ, QuestionTypeTrueFalse, QuestionTypeFillInBlank}

// IsValid reports whether t is one of the supported question types.
func (t QuestionType) IsValid() bool {
	switch t {
	case QuestionTypeMCQ, QuestionTypeTrueFalse, QuestionTypeFillInBlank:
		return true
	}
	return false
}

// Difficulty is the difficulty level tag attached to a generated question.
type Difficulty string

const (
	DifficultyBasic        Difficulty = "basic"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBasic, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// BloomsLevel is the Bloom's taxonomy level tag attached to a generated question.
type BloomsLevel string

const (
	BloomsRemember BloomsLevel = "remember"
	BloomsApply    BloomsLevel = "apply"
	BloomsAnalyze  BloomsLevel = "analyze"
)

func (b BloomsLevel) IsValid() bool {
	switch b {
	case BloomsRemember, BloomsApply, BloomsAnalyze:
		return true
	}
	return false
}

// Question is a single generated question. The field set depends on Type:
// MCQ uses Question/Answer/Distractors, TrueFalse uses Question (the
// statement) and IsTrue, FillInBlank uses Question (text with a blank
// marker) and Answer (the fill). Difficulty and BloomsLevel are assigned
// programmatically from the request distributions.
type Question struct {
	Type        QuestionType `json:"question_type"`
	Question    string       `json:"question"`
	Answer      string       `json:"answer,omitempty"`
	IsTrue      *bool        `json:"is_true,omitempty"`
	Explanation string       `json:"explanation,omitempty"`
	Distractors []string     `json:"distractors,omitempty"`
	Difficulty  Difficulty   `json:"difficulty"`
	BloomsLevel BloomsLevel  `json:"blooms_level"`
}

// Options returns the full option set for an MCQ question: the correct
// answer followed by its distractors. Empty for other question types.
func (q Question) Options() []string {
	if q.Type != QuestionTypeMCQ || q.Answer == "" {
		return nil
	}
	options := make([]string, 0, len(q.Distractors)+1)
	options = append(options, q.Answer)
	options = append(options, q.Distractors...)
	return options
}
