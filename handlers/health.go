package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shootbook/utils"
)

type HealthHandler struct {
	Monitor *utils.HealthMonitor // nil when no backing services are monitored
}

// GetHealth handles GET /health.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	if h.Monitor == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}
	status := h.Monitor.Status()
	if !status.Healthy() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "health": status})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "health": status})
}
