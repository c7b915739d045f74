package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/comitanigiacomo/kanso-habit-tracker/docs"
	"github.com/comitanigiacomo/kanso-habit-tracker/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/kanso-habit-tracker/internal/config"
	"github.com/comitanigiacomo/kanso-habit-tracker/internal/observability"
)

// StoragePinger reports whether the backing store is reachable.
type StoragePinger interface {
	PingContext(ctx context.Context) error
}

type RouterDependencies struct {
	HabitHandler      *HabitHandler
	CompletionHandler *CompletionHandler
	AnalyticsHandler  *AnalyticsHandler
	AdminHandler      *AdminHandler

	// Storage is nil for the in-memory store.
	Storage   StoragePinger
	Redis     *redis.Client
	RateLimit config.RateLimitConfig
	Metrics   *observability.Metrics
	StartTime time.Time
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	if deps.Metrics != nil {
		router.Use(deps.Metrics.GinMiddleware())
	}

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, PATCH, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	if deps.Redis != nil && deps.RateLimit.Limit > 0 {
		router.Use(middleware.RateLimiter(deps.Redis, deps.RateLimit, "/health", "/metrics"))
	}

	router.GET("/health", func(c *gin.Context) {
		ctx := c.Request.Context()

		storageStatus := "in-memory"
		if deps.Storage != nil {
			storageStatus = "connected"
			if err := deps.Storage.PingContext(ctx); err != nil {
				storageStatus = "unreachable"
			}
		}

		redisStatus := "disabled"
		if deps.Redis != nil {
			redisStatus = "connected"
			if err := deps.Redis.Ping(ctx).Err(); err != nil {
				redisStatus = "unreachable"
			}
		}

		statusCode := http.StatusOK
		if storageStatus == "unreachable" || redisStatus == "unreachable" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, gin.H{
			"status":   http.StatusText(statusCode),
			"database": storageStatus,
			"redis":    redisStatus,
			"uptime":   time.Since(deps.StartTime).String(),
		})
	})

	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiV1 := router.Group("/api/v1")
	{
		deps.HabitHandler.RegisterRoutes(apiV1)
		deps.CompletionHandler.RegisterRoutes(apiV1)
		deps.AnalyticsHandler.RegisterRoutes(apiV1)
		deps.AdminHandler.RegisterRoutes(apiV1)
	}

	return router
}
