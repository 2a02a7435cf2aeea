package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Model     string `json:"model"`
	Sessions  int    `json:"sessions"`
}

// HandleHealth reports liveness. A missing model credential degrades the
// service but does not make it unhealthy.
func (h *Handler) HandleHealth(c *gin.Context) {
	modelStatus := "unavailable"
	status := "degraded"
	if h.modelReady {
		modelStatus = "ready"
		status = "healthy"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Model:     modelStatus,
		Sessions:  h.sessions.Len(),
	})
}

// HandleReadiness is stricter than health: it fails until a model is usable.
func (h *Handler) HandleReadiness(c *gin.Context) {
	if !h.modelReady {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not_ready",
			"reason": "model_not_configured",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
