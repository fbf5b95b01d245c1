package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"testpro/internal/port"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	repo port.TestRepository
	now  func() time.Time
}

// NewHealthHandler creates a new HealthHandler. repo may be nil when the catalog is disabled.
func NewHealthHandler(repo port.TestRepository) *HealthHandler {
	return &HealthHandler{repo: repo, now: time.Now}
}

// Liveness handles GET /api/health
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "OK",
		Timestamp: h.now().UTC().Format(time.RFC3339),
	})
}

// Readiness handles GET /readyz
func (h *HealthHandler) Readiness(c *gin.Context) {
	if h.repo != nil {
		if err := h.repo.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "unavailable", Error: "database not reachable"})
			return
		}
	}
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
