package handler

import (
	"errors"
	"net/http"

	"Library_Demo_Service/internal/library-service/health"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HealthHandler interface {
	DataSourceHealth() gin.HandlerFunc
}

type healthHandler struct {
	logger    Logger
	indicator health.Indicator
}

func (h *healthHandler) DataSourceHealth() gin.HandlerFunc {
	return func(c *gin.Context) {
		res := h.indicator.Health(c.Request.Context())
		if !res.IsUp() {
			h.logger.LoggingError(c, errors.New(res.Details["status"]), "database health check is down", zap.WarnLevel)
			c.JSON(http.StatusServiceUnavailable, res)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

func NewHealthHandler(logger *zap.Logger, indicator health.Indicator) HealthHandler {
	return &healthHandler{
		logger:    NewLogger(logger),
		indicator: indicator,
	}
}
