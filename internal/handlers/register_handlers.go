package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/currency_exchange_app/cmd/docs"
	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange_app/internal/middleware"
	"github.com/SscSPs/currency_exchange_app/internal/platform/config"
	"github.com/SscSPs/currency_exchange_app/internal/realtime"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	hub *realtime.Hub,
) error {
	if err := RegisterValidators(); err != nil {
		return err
	}

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowedOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.AdminKeyHeader},
			ExposeHeaders:    []string{middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	if err := setupAPIV1Routes(r, cfg, services, hub); err != nil {
		return err
	}

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	hub *realtime.Hub,
) error {
	v1 := r.Group("/api/v1")
	if cfg.RateLimit != "" {
		lim, err := middleware.NewRateLimiter(cfg.RateLimit)
		if err != nil {
			return fmt.Errorf("failed to set up rate limiting: %w", err)
		}
		v1.Use(middleware.RateLimit(lim))
	}

	// Public read API
	RegisterCurrencyRoutes(v1, services.Currency)
	RegisterExchangeRateRoutes(v1, services.ExchangeRate, services.Historical)
	if hub != nil {
		RegisterRealtimeRoutes(v1, hub)
	}

	authed := v1.Group("", middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))
	RegisterFavoriteRoutes(authed, services.Favorite)

	admin := v1.Group("", middleware.AdminKeyMiddleware(cfg.AdminAPIKeyHash))
	RegisterAdminRoutes(admin, services.Currency, services.Ingestion)

	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
