package model

import "strings"

// Mode selects the prompt template and the output shape.
type Mode string

const (
	ModeExplain    Mode = "explain"
	ModeSummarize  Mode = "summarize"
	ModeQuiz       Mode = "quiz"
	ModeFlashcards Mode = "flashcards"
	ModeChat       Mode = "chat"
)

// Modes lists every mode in menu order.
var Modes = []Mode{ModeExplain, ModeSummarize, ModeQuiz, ModeFlashcards, ModeChat}

// ParseMode resolves a mode name case-insensitively.
func ParseMode(s string) (Mode, bool) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Modes {
		if m == known {
			return m, true
		}
	}
	return "", false
}

func (m Mode) String() string { return string(m) }

// Title is the human-readable label used in headers and logs.
func (m Mode) Title() string {
	switch m {
	case ModeExplain:
		return "Concept Explainer"
	case ModeSummarize:
		return "Summarizer"
	case ModeQuiz:
		return "Quiz Generator"
	case ModeFlashcards:
		return "Flashcard Creator"
	case ModeChat:
		return "Ask Questions"
	}
	return string(m)
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type ChatTurn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Card is one flashcard. Content is the raw segment; Front and Back are
// filled only when the segment carries FRONT:/BACK: lines.
type Card struct {
	Index   int    `json:"index"`
	Content string `json:"content"`
	Front   string `json:"front,omitempty"`
	Back    string `json:"back,omitempty"`
}

type Option struct {
	Letter string `json:"letter"`
	Text   string `json:"text"`
}

// Question is one parsed quiz record.
type Question struct {
	Number      int      `json:"number"`
	Text        string   `json:"text"`
	Options     []Option `json:"options,omitempty"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation,omitempty"`
}

// Output is the display-ready shape of a completion.
type Output struct {
	Mode      Mode       `json:"mode"`
	Text      string     `json:"text"`
	Cards     []Card     `json:"cards,omitempty"`
	Questions []Question `json:"questions,omitempty"`
}
