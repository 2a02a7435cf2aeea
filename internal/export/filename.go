// Package export names and stores downloadable study artifacts.
package export

import (
	"strings"
	"time"
	"unicode"

	"study-buddy/backend/internal/model"
)

const (
	timestampLayout = "20060102_150405"
	maxTopicRunes   = 80
)

// Filename returns the download name for an artifact of mode. Summaries are
// named by generation time, everything else by topic.
func Filename(mode model.Mode, topic string, at time.Time) string {
	switch mode {
	case model.ModeSummarize:
		return "summary_" + at.Format(timestampLayout) + ".txt"
	case model.ModeExplain:
		return safeTopic(topic) + "_explanation.txt"
	case model.ModeQuiz:
		return safeTopic(topic) + "_quiz.txt"
	case model.ModeFlashcards:
		return safeTopic(topic) + "_flashcards.txt"
	}
	return string(mode) + "_" + at.Format(timestampLayout) + ".txt"
}

// safeTopic replaces characters that are unsafe in filenames or headers.
func safeTopic(topic string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\' || r == ':' || r == '*' || r == '?' ||
			r == '"' || r == '<' || r == '>' || r == '|':
			return '_'
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, strings.TrimSpace(topic))
	cleaned = strings.Trim(cleaned, ". ")

	if runes := []rune(cleaned); len(runes) > maxTopicRunes {
		cleaned = strings.TrimSpace(string(runes[:maxTopicRunes]))
	}
	if cleaned == "" {
		return "untitled"
	}
	return cleaned
}
