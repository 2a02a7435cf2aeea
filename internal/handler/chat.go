package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"study-buddy/backend/internal/assistant/prompt"
	"study-buddy/backend/internal/model"
)

// MaxQuestionLength bounds a single chat question.
const MaxQuestionLength = 2000

type ChatRequest struct {
	SessionID string `json:"sessionId,omitempty"`
	Question  string `json:"question" binding:"max=2000"`
}

type ChatResponseDTO struct {
	Response  string           `json:"response"`
	SessionID string           `json:"sessionId"`
	History   []model.ChatTurn `json:"history"`
}

// HandleChat answers a free-form question and records the exchange in the
// caller's session. An empty sessionId starts a new session.
func (h *Handler) HandleChat(c *gin.Context) {
	startTime := time.Now()

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if strings.Contains(err.Error(), "max") {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Question is too long (max 2000 characters)",
				"code":  "QUESTION_TOO_LONG",
			})
			return
		}
		h.invalidRequest(c, err)
		return
	}

	chatReq := prompt.Request{Mode: model.ModeChat, Question: req.Question}
	if _, err := h.assistant.Validate(chatReq); err != nil {
		h.respondError(c, err, nil)
		return
	}

	sessionID, history := h.sessions.GetOrCreate(strings.TrimSpace(req.SessionID))

	res, err := h.assistant.Run(c.Request.Context(), chatReq, history)
	if err != nil {
		h.respondError(c, err, gin.H{
			"sessionId": sessionID,
			"history":   history.Snapshot(),
		})
		return
	}

	h.log.Debug("chat answered", "session", sessionID, "turns", history.Len(), "elapsed", time.Since(startTime))
	c.JSON(http.StatusOK, ChatResponseDTO{
		Response:  res.Output.Text,
		SessionID: sessionID,
		History:   history.Snapshot(),
	})
}

// HandleChatHistory returns the turns recorded for a session.
func (h *Handler) HandleChatHistory(c *gin.Context) {
	id, ok := h.sessionParam(c)
	if !ok {
		return
	}
	history, found := h.sessions.Get(id)
	if !found {
		sessionNotFound(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"sessionId": id,
		"history":   history.Snapshot(),
	})
}

// HandleClearChat empties a session's history. The session id stays valid.
func (h *Handler) HandleClearChat(c *gin.Context) {
	id, ok := h.sessionParam(c)
	if !ok {
		return
	}
	history, found := h.sessions.Get(id)
	if !found {
		sessionNotFound(c)
		return
	}
	history.Clear()
	h.log.Info("chat history cleared", "session", id)
	c.JSON(http.StatusOK, gin.H{
		"sessionId": id,
		"history":   history.Snapshot(),
	})
}

func (h *Handler) sessionParam(c *gin.Context) (string, bool) {
	id := strings.TrimSpace(c.Query("sessionId"))
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "sessionId is required",
			"code":  "INVALID_REQUEST",
		})
		return "", false
	}
	return id, true
}

func sessionNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error": "The specified session was not found",
		"code":  "SESSION_NOT_FOUND",
	})
}
