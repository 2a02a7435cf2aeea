package prompt

import (
	"fmt"
	"strings"

	"study-buddy/backend/internal/apperr"
	"study-buddy/backend/internal/assistant/sanitize"
	"study-buddy/backend/internal/model"
)

// Prompt is a rendered, non-empty instruction string.
type Prompt string

func (p Prompt) String() string { return string(p) }

// Builder renders prompts for every study mode.
type Builder struct{}

// NewBuilder creates a new prompt builder
func NewBuilder() *Builder {
	return &Builder{}
}

// Build validates req and renders the prompt for its mode.
func (b *Builder) Build(req Request) (Prompt, error) {
	req, err := b.Normalize(req)
	if err != nil {
		return "", err
	}

	var p string
	switch req.Mode {
	case model.ModeExplain:
		p = fmt.Sprintf(explainTemplate, req.Topic, req.Difficulty, req.Subject)
	case model.ModeSummarize:
		p = fmt.Sprintf(summarizeTemplate, req.Length, strings.ToLower(req.Length), TruncateRunes(req.Text, MaxSummaryChars))
	case model.ModeQuiz:
		p = fmt.Sprintf(quizTemplate, req.Count, req.QuestionType, req.Topic, req.Difficulty)
	case model.ModeFlashcards:
		p = fmt.Sprintf(flashcardsTemplate, req.Count, req.Topic)
	case model.ModeChat:
		p = fmt.Sprintf(chatTemplate, req.Question)
	}
	return Prompt(p), nil
}

// Normalize cleans the fields req.Mode uses, fills defaults and checks
// required fields, tiers and ranges. Fields the mode ignores are cleared.
func (b *Builder) Normalize(req Request) (Request, error) {
	mode, ok := model.ParseMode(string(req.Mode))
	if !ok {
		return Request{}, apperr.Validation("unknown mode %q", req.Mode)
	}
	out := Request{Mode: mode}

	var err error
	switch mode {
	case model.ModeExplain:
		if out.Topic, err = required("topic", sanitize.Field(req.Topic)); err != nil {
			return Request{}, err
		}
		if out.Difficulty, err = resolve("difficulty", ExplainLevels, req.Difficulty); err != nil {
			return Request{}, err
		}
		if out.Subject, err = resolve("subject", Subjects, req.Subject); err != nil {
			return Request{}, err
		}

	case model.ModeSummarize:
		if out.Text, err = required("text", sanitize.Text(req.Text)); err != nil {
			return Request{}, err
		}
		if out.Length, err = resolve("length", SummaryLengths, req.Length); err != nil {
			return Request{}, err
		}

	case model.ModeQuiz:
		if out.Topic, err = required("topic", sanitize.Field(req.Topic)); err != nil {
			return Request{}, err
		}
		if out.Count, err = bounded("count", req.Count, MinQuizQuestions, MaxQuizQuestions, DefaultQuizQuestions); err != nil {
			return Request{}, err
		}
		if out.QuestionType, err = resolve("questionType", QuestionTypes, req.QuestionType); err != nil {
			return Request{}, err
		}
		if out.Difficulty, err = resolve("difficulty", QuizLevels, req.Difficulty); err != nil {
			return Request{}, err
		}

	case model.ModeFlashcards:
		if out.Topic, err = required("topic", sanitize.Field(req.Topic)); err != nil {
			return Request{}, err
		}
		if out.Count, err = bounded("count", req.Count, MinFlashcards, MaxFlashcards, DefaultFlashcards); err != nil {
			return Request{}, err
		}

	case model.ModeChat:
		if out.Question, err = required("question", sanitize.Text(req.Question)); err != nil {
			return Request{}, err
		}
	}
	return out, nil
}

// TruncateRunes keeps at most max runes of s.
func TruncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == max {
			return s[:i]
		}
		count++
	}
	return s
}

func required(name, v string) (string, error) {
	if v == "" {
		return "", apperr.Validation("%s is required", name)
	}
	return v, nil
}

func resolve(name string, tier Tier, v string) (string, error) {
	canonical, ok := tier.Resolve(v)
	if !ok {
		return "", apperr.Validation("%s must be one of %s", name, strings.Join(tier, ", "))
	}
	return canonical, nil
}

// bounded treats zero as "use the default".
func bounded(name string, v, min, max, def int) (int, error) {
	if v == 0 {
		return def, nil
	}
	if v < min || v > max {
		return 0, apperr.Validation("%s must be between %d and %d", name, min, max)
	}
	return v, nil
}
