package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	startedAt time.Time
}

func NewHealthController() *HealthController {
	return &HealthController{startedAt: time.Now()}
}

func (h *HealthController) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
		"uptime": time.Since(h.startedAt).Round(time.Second).String(),
	})
}
