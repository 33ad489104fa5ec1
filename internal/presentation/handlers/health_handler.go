package handlers

import (
	"context"
	"net/http"
	"time"

	"chalee-api/internal/application/dto"

	"github.com/gin-gonic/gin"
)

// Database states reported by the health check
const (
	DatabaseUp          = "up"
	DatabaseUnavailable = "unavailable"
	DatabaseInMemory    = "memory"
)

const pingTimeout = 2 * time.Second

// Pinger checks that a backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health check requests
type HealthHandler struct {
	environment string
	db          Pinger
}

// NewHealthHandler creates a new health handler. db may be nil when posts are
// kept in memory.
func NewHealthHandler(environment string, db Pinger) *HealthHandler {
	return &HealthHandler{environment: environment, db: db}
}

// Health handles GET /health
// @Summary Health check
// @Description Returns the health status of the service and its database
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	status, database := "ok", DatabaseInMemory
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
		defer cancel()

		database = DatabaseUp
		if err := h.db.Ping(ctx); err != nil {
			status, database = "degraded", DatabaseUnavailable
		}
	}

	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:      status,
		Service:     "chalee-api",
		Environment: h.environment,
		Database:    database,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	})
}
