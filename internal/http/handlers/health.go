package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/crm-backend/internal/http/response"
	"github.com/yungbote/crm-backend/internal/platform/apierr"
	"github.com/yungbote/crm-backend/internal/platform/logger"
	"github.com/yungbote/crm-backend/internal/services"
)

// LivenessReader reports when the heartbeat job last ran, if it is recorded.
type LivenessReader interface {
	LastHeartbeat(ctx context.Context) (time.Time, bool, error)
}

type HealthHandler struct {
	log      *logger.Logger
	query    services.QueryService
	liveness LivenessReader
}

func NewHealthHandler(log *logger.Logger, query services.QueryService, liveness LivenessReader) *HealthHandler {
	return &HealthHandler{
		log:      log.With("handler", "HealthHandler"),
		query:    query,
		liveness: liveness,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// GET /api/hello
func (h *HealthHandler) Hello(c *gin.Context) {
	greeting, err := h.query.Hello(c.Request.Context())
	if err != nil {
		h.log.Error("Hello failed", "error", err)
		response.RespondAPIError(c, apierr.New(http.StatusServiceUnavailable, "store_unavailable", err))
		return
	}
	payload := gin.H{"hello": greeting}
	if h.liveness != nil {
		at, ok, err := h.liveness.LastHeartbeat(c.Request.Context())
		switch {
		case err != nil:
			h.log.Warn("Liveness lookup failed", "error", err)
		case ok:
			payload["last_heartbeat"] = at.UTC().Format(time.RFC3339)
		}
	}
	response.RespondOK(c, payload)
}
