package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/pawshope/internal/domain/repository"
	"github.com/polkiloo/pawshope/internal/server/http/dto"
)

// MetaHandler serves public configuration and health endpoints.
type MetaHandler struct {
	clientID string
	mode     string
	health   repository.HealthChecker
	logger   *slog.Logger
	now      func() time.Time
}

// NewMetaHandler constructs MetaHandler. health may be nil.
func NewMetaHandler(clientID, mode string, health repository.HealthChecker, logger *slog.Logger) *MetaHandler {
	return &MetaHandler{
		clientID: clientID,
		mode:     mode,
		health:   health,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Config handles GET /api/paypal/config.
func (h *MetaHandler) Config(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ConfigResponse{ClientID: h.clientID, Mode: h.mode})
}

// Health handles GET /api/health.
func (h *MetaHandler) Health(c *gin.Context) {
	resp := dto.HealthResponse{
		Status:     "OK",
		Message:    "Paws Hope Backend is running",
		Timestamp:  h.now(),
		PayPalMode: h.mode,
	}
	if h.health != nil {
		if err := h.health.HealthCheck(c.Request.Context()); err != nil {
			h.logger.Warn("ledger health check failed", slog.String("error", err.Error()))
			resp.Status = "DEGRADED"
			resp.Message = "Donation ledger is unavailable"
			c.JSON(http.StatusServiceUnavailable, resp)
			return
		}
	}
	c.JSON(http.StatusOK, resp)
}
