package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"study-buddy/backend/internal/assistant/prompt"
	"study-buddy/backend/internal/model"
)

type countRange struct {
	Min     int `json:"min"`
	Max     int `json:"max"`
	Default int `json:"default"`
}

type modeInfo struct {
	Mode    model.Mode             `json:"mode"`
	Title   string                 `json:"title"`
	Options map[string]prompt.Tier `json:"options,omitempty"`
	Count   *countRange            `json:"count,omitempty"`
}

// HandleModes lists the study modes and the values each one accepts, so a
// client can render its selectors without hard-coding them.
func (h *Handler) HandleModes(c *gin.Context) {
	modes := make([]modeInfo, 0, len(model.Modes))
	for _, m := range model.Modes {
		info := modeInfo{Mode: m, Title: m.Title()}
		switch m {
		case model.ModeExplain:
			info.Options = map[string]prompt.Tier{
				"difficulty": prompt.ExplainLevels,
				"subject":    prompt.Subjects,
			}
		case model.ModeSummarize:
			info.Options = map[string]prompt.Tier{"length": prompt.SummaryLengths}
		case model.ModeQuiz:
			info.Options = map[string]prompt.Tier{
				"difficulty":   prompt.QuizLevels,
				"questionType": prompt.QuestionTypes,
			}
			info.Count = &countRange{prompt.MinQuizQuestions, prompt.MaxQuizQuestions, prompt.DefaultQuizQuestions}
		case model.ModeFlashcards:
			info.Count = &countRange{prompt.MinFlashcards, prompt.MaxFlashcards, prompt.DefaultFlashcards}
		}
		modes = append(modes, info)
	}
	c.JSON(http.StatusOK, gin.H{
		"modes":           modes,
		"maxSummaryChars": prompt.MaxSummaryChars,
		"maxUploadBytes":  h.maxUpload,
	})
}
