package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/SscSPs/currency_exchange_app/internal/dto"
	"github.com/SscSPs/currency_exchange_app/internal/middleware"
	"github.com/SscSPs/currency_exchange_app/internal/realtime"
	"github.com/gin-gonic/gin"
)

// RegisterRealtimeRoutes exposes the live feed of committed ingestion runs.
func RegisterRealtimeRoutes(rg *gin.RouterGroup, hub *realtime.Hub) {
	rg.GET("/ws/rates", func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())

		base := domain.NormalizeCurrencyCode(c.Query("base_currency"))
		if base != "" && !domain.IsValidCurrencyCode(base) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "base_currency must be a 3-letter currency code"})
			return
		}

		// The upgrader has already answered the client when this fails.
		if err := realtime.ServeWS(c.Writer, c.Request, hub, base); err != nil {
			logger.Warn("WebSocket upgrade failed", slog.String("error", err.Error()))
		}
	})
}
