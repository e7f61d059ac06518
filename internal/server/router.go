package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/payitnow/payitnow-api/internal/auth"
	"github.com/payitnow/payitnow-api/internal/config"
	"github.com/payitnow/payitnow-api/internal/handlers"
	"github.com/payitnow/payitnow-api/internal/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Handlers groups the HTTP handlers mounted by NewRouter
type Handlers struct {
	Health      *handlers.HealthHandler
	Messages    *handlers.MessageHandler
	Settlements *handlers.SettlementHandler
	Bridge      *handlers.BridgeHandler
}

// RouterOptions carries the HTTP surface settings taken from config
type RouterOptions struct {
	CORSAllowedOrigins []string
	APIKeys            []string
}

// ErrAPIKeysRequired is returned when a deployed stage is started without API keys
var ErrAPIKeysRequired = errors.New("API_KEYS must be configured for deployed stages")

// NewRouterOptions takes the HTTP surface settings from cfg. Deployed stages do not
// serve /api/v1 without API keys; local and test stages only warn in NewRouter.
func NewRouterOptions(cfg *config.Config) (RouterOptions, error) {
	if cfg.IsDeployed() && !auth.NewAPIKeyValidator(cfg.APIKeys).Enabled() {
		return RouterOptions{}, fmt.Errorf("%w (stage %s)", ErrAPIKeysRequired, cfg.Stage)
	}
	return RouterOptions{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		APIKeys:            cfg.APIKeys,
	}, nil
}

// NewHandlers builds the HTTP handlers on top of the App services. The caller owns
// limiter and must Close it on shutdown.
func (a *App) NewHandlers(limiter *middleware.RateLimiter) Handlers {
	return Handlers{
		Health:      handlers.NewHealthHandler(a.Pool, a.logger.Named("health")),
		Messages:    handlers.NewMessageHandler(a.Engine, limiter, a.logger.Named("messages")),
		Settlements: handlers.NewSettlementHandler(a.Settlement, a.logger.Named("settlements")),
		Bridge:      handlers.NewBridgeHandler(a.Wallets, a.Bridge, a.logger.Named("bridge")),
	}
}

// NewRouter mounts every route
func NewRouter(opts RouterOptions, h Handlers, log *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(configureCORS(opts.CORSAllowedOrigins))
	router.Use(middleware.CorrelationIDMiddleware())
	router.Use(middleware.RequestLogger(log))

	router.GET("/health", h.Health.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	validator := auth.NewAPIKeyValidator(opts.APIKeys)
	if validator.Enabled() {
		v1.Use(auth.EnsureValidAPIKey(validator, log))
	} else {
		log.Warn("No API keys configured, /api/v1 is unauthenticated")
	}
	{
		v1.POST("/messages", h.Messages.HandleMessage)
		v1.POST("/bridge", h.Bridge.Bridge)

		v1.GET("/settlements/:tx_id", h.Settlements.GetSettlement)
		v1.GET("/users/:user_id/settlements", h.Settlements.ListUserSettlements)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handlers.ErrorResponse{Error: "route not found"})
	})

	return router
}

func configureCORS(origins []string) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	switch {
	case len(origins) == 0:
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	case containsWildcard(origins):
		corsConfig.AllowAllOrigins = true
	default:
		corsConfig.AllowOrigins = origins
	}

	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", auth.APIKeyHeader, middleware.CorrelationIDHeader}
	corsConfig.ExposeHeaders = []string{
		"X-RateLimit-Limit",
		"X-RateLimit-Remaining",
		"X-RateLimit-Reset",
		"Retry-After",
		middleware.CorrelationIDHeader,
	}

	return cors.New(corsConfig)
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if strings.TrimSpace(o) == "*" {
			return true
		}
	}
	return false
}
