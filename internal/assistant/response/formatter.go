package response

import (
	"study-buddy/backend/internal/model"
)

// Formatter shapes raw completion text for display. It holds no state, so
// formatting the same (mode, text) twice yields equal outputs.
type Formatter struct{}

// NewFormatter creates a new Formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Format restructures text according to mode. Explain, summarize and chat
// output pass through verbatim (an empty completion stays empty); flashcards
// are split into cards; quiz output passes through and is additionally parsed
// into questions when it follows the requested record format.
func (f *Formatter) Format(mode model.Mode, text string) model.Output {
	out := model.Output{Mode: mode, Text: text}

	switch mode {
	case model.ModeFlashcards:
		out.Cards = SplitCards(text)
	case model.ModeQuiz:
		out.Questions = ParseQuiz(text)
	}
	return out
}
