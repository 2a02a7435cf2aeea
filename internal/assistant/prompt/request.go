package prompt

import (
	"strings"

	"study-buddy/backend/internal/model"
)

// Bounded ranges and budgets that keep request size and latency predictable.
const (
	MaxSummaryChars = 10000

	MinQuizQuestions     = 3
	MaxQuizQuestions     = 15
	DefaultQuizQuestions = 5

	MinFlashcards     = 5
	MaxFlashcards     = 20
	DefaultFlashcards = 10
)

// Request carries the mode-specific parameters for one prompt. Fields a mode
// does not use are ignored.
type Request struct {
	Mode         model.Mode `json:"mode"`
	Topic        string     `json:"topic,omitempty"`
	Difficulty   string     `json:"difficulty,omitempty"`
	Subject      string     `json:"subject,omitempty"`
	Length       string     `json:"length,omitempty"`
	Text         string     `json:"text,omitempty"`
	Count        int        `json:"count,omitempty"`
	QuestionType string     `json:"questionType,omitempty"`
	Question     string     `json:"question,omitempty"`
}

// Tier is an ordered list of allowed values. The first entry is the default.
type Tier []string

var (
	ExplainLevels  = Tier{"Beginner", "Intermediate", "Advanced"}
	Subjects       = Tier{"General", "Mathematics", "Science", "Computer Science", "History", "Literature", "Other"}
	SummaryLengths = Tier{"Brief", "Moderate", "Detailed"}
	QuizLevels     = Tier{"Easy", "Medium", "Hard"}
	QuestionTypes  = Tier{"Multiple Choice", "True/False", "Short Answer", "Mixed"}
)

// Default returns the first value of the tier.
func (t Tier) Default() string { return t[0] }

// Resolve returns the canonical spelling of v, matched case-insensitively.
// An empty v resolves to the default.
func (t Tier) Resolve(v string) (string, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return t.Default(), true
	}
	for _, allowed := range t {
		if strings.EqualFold(v, allowed) {
			return allowed, true
		}
	}
	return "", false
}

// Rank returns the position of v in the tier, or -1.
func (t Tier) Rank(v string) int {
	for i, allowed := range t {
		if strings.EqualFold(v, allowed) {
			return i
		}
	}
	return -1
}
