package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pathway-infinity/pathway-api/database"
	"github.com/pathway-infinity/pathway-api/internal/dto"
	"github.com/pathway-infinity/pathway-api/internal/service"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// RespondError writes the client-safe message of an AppError with its status.
// Anything else becomes a generic 500. The full error is only logged.
func RespondError(ctx *gin.Context, op string, err error) {
	ae, ok := service.AsAppError(err)
	if !ok {
		log.Error().Err(err).Str("op", op).Msg("Unhandled error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
		return
	}

	status := ae.HTTPStatus()
	evt := log.Warn()
	if status >= http.StatusInternalServerError {
		evt = log.Error()
	}
	evt.Err(err).Str("op", op).Str("kind", string(ae.Kind)).Int("status", status).Msg("Request failed")
	ctx.JSON(status, dto.ErrorResponse{Error: ae.Message})
}

// RespondBindError reports a malformed request body.
func RespondBindError(ctx *gin.Context, op string, err error) {
	log.Warn().Err(err).Str("op", op).Msg("Failed to bind request")
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
}

type HealthController struct {
	db  *gorm.DB
	rdb *database.RedisClient
}

// NewHealthController accepts a nil Redis client when Redis is not configured.
func NewHealthController(db *gorm.DB, rdb *database.RedisClient) *HealthController {
	return &HealthController{db: db, rdb: rdb}
}

// Health godoc
// @Summary Health check
// @Description Reports whether the database and, when configured, Redis are reachable.
// @Tags System
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /healthz [get]
func (h *HealthController) Health(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	resp := dto.HealthResponse{Status: "ok", Database: "ok", Redis: "disabled"}
	if err := database.Ping(pingCtx, h.db); err != nil {
		log.Error().Err(err).Msg("Health: database ping failed")
		resp.Database = "unreachable"
		resp.Status = "degraded"
	}
	if h.rdb != nil {
		resp.Redis = "ok"
		if err := h.rdb.Ping(pingCtx); err != nil {
			log.Error().Err(err).Msg("Health: redis ping failed")
			resp.Redis = "unreachable"
			resp.Status = "degraded"
		}
	}

	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	ctx.JSON(status, resp)
}
