package handler

import (
	"errors"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"

	"study-buddy/backend/internal/export"
)

// HandleDownload serves a stored artifact as a UTF-8 text attachment.
func (h *Handler) HandleDownload(c *gin.Context) {
	if h.artifacts == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Downloads are not available",
			"code":  "SERVICE_UNAVAILABLE",
		})
		return
	}

	artifact, err := h.artifacts.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, export.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "The specified artifact was not found",
			"code":  "ARTIFACT_NOT_FOUND",
		})
		return
	}
	if err != nil {
		h.respondError(c, err, nil)
		return
	}

	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": artifact.Filename}))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(artifact.Content))
}
