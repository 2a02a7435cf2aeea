package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"study-buddy/backend/internal/apperr"
	"study-buddy/backend/internal/assistant"
	"study-buddy/backend/internal/export"
	"study-buddy/backend/internal/extract"
	"study-buddy/backend/internal/platform/logger"
	"study-buddy/backend/internal/session"
)

// DefaultMaxUploadBytes caps uploaded study material.
const DefaultMaxUploadBytes = 10 << 20

// Handler serves the study endpoints. It owns the per-client chat sessions.
type Handler struct {
	assistant  *assistant.StudyAssistant
	sessions   *session.Store
	artifacts  *export.ArtifactStore
	extractor  *extract.Extractor
	maxUpload  int64
	modelReady bool
	log        *logger.Logger
}

type Config struct {
	Assistant      *assistant.StudyAssistant
	Sessions       *session.Store
	Artifacts      *export.ArtifactStore
	Extractor      *extract.Extractor
	MaxUploadBytes int64
	// ModelReady is false when no usable completion credential is configured.
	ModelReady bool
	Log        *logger.Logger
}

func New(cfg Config) *Handler {
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = DefaultMaxUploadBytes
	}
	if cfg.Extractor == nil {
		cfg.Extractor = extract.New()
	}
	return &Handler{
		assistant:  cfg.Assistant,
		sessions:   cfg.Sessions,
		artifacts:  cfg.Artifacts,
		extractor:  cfg.Extractor,
		maxUpload:  cfg.MaxUploadBytes,
		modelReady: cfg.ModelReady,
		log:        cfg.Log,
	}
}

// Register mounts every route on r.
func (h *Handler) Register(r gin.IRouter, limit gin.HandlerFunc) {
	r.GET("/health", h.HandleHealth)
	r.GET("/ready", h.HandleReadiness)

	api := r.Group("/api")
	{
		api.GET("/modes", h.HandleModes)
		api.POST("/extract", h.HandleExtract)
		api.GET("/chat/history", h.HandleChatHistory)
		api.DELETE("/chat/history", h.HandleClearChat)
		api.GET("/artifacts/:id/download", h.HandleDownload)

		generate := api.Group("")
		if limit != nil {
			generate.Use(limit)
		}
		generate.POST("/explain", h.HandleExplain)
		generate.POST("/summarize", h.HandleSummarize)
		generate.POST("/quiz", h.HandleQuiz)
		generate.POST("/flashcards", h.HandleFlashcards)
		generate.POST("/chat", h.HandleChat)
	}
}

// statusFor maps an error kind and code onto an HTTP status.
func statusFor(err error) int {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Kind {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindExtraction:
		if appErr.Code == apperr.CodeUnsupported {
			return http.StatusUnsupportedMediaType
		}
		return http.StatusUnprocessableEntity
	case apperr.KindCompletion:
		switch appErr.Code {
		case apperr.CodeRateLimit:
			return http.StatusTooManyRequests
		case apperr.CodeTimeout:
			return http.StatusGatewayTimeout
		}
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// respondError writes the error envelope. Completion failures also carry the
// user-facing text to show in place of the expected output.
func (h *Handler) respondError(c *gin.Context, err error, extra gin.H) {
	code := apperr.CodeOf(err)
	if code == "" {
		code = "INTERNAL_ERROR"
	}
	body := gin.H{
		"error": err.Error(),
		"code":  code,
	}
	if apperr.Is(err, apperr.KindCompletion) {
		body["response"] = assistant.ErrorMessage(err)
		body["fallback"] = true
	}
	for k, v := range extra {
		body[k] = v
	}

	status := statusFor(err)
	if status == http.StatusTooManyRequests {
		c.Header("Retry-After", "60")
	}
	if status >= http.StatusInternalServerError {
		h.log.Error("request failed", "path", c.FullPath(), "code", code, "error", err)
	}
	c.JSON(status, body)
}

func (h *Handler) invalidRequest(c *gin.Context, err error) {
	h.log.Debug("invalid request body", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusBadRequest, gin.H{
		"error": "Invalid request: " + err.Error(),
		"code":  "INVALID_REQUEST",
	})
}
