package app

import (
	"bitwise74/visitor-api/app/root"
	"bitwise74/visitor-api/app/scene"
	"bitwise74/visitor-api/app/visitor"
	"bitwise74/visitor-api/internal"
	"bitwise74/visitor-api/pkg/middleware"
	"time"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var cacheStore = persist.NewMemoryStore(time.Minute)

type RouterConfig struct {
	CORSOrigins       []string
	StaticDir         string
	RateLimit         int
	StatsSecret       string
	SceneCacheSeconds int
}

// NewRouter wires every route on a fresh gin engine. Dependencies are built
// by the caller so tests can hand in an in-memory store.
func NewRouter(d *internal.Deps, cfg RouterConfig) *gin.Engine {
	router := gin.New()
	started := time.Now()

	if len(cfg.CORSOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "HEAD", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	router.Use(
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				return fields
			},
		}),
	)

	rateLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RequestsPerSecond: cfg.RateLimit,
		Burst:             cfg.RateLimit * 2,
	})

	m := router.Group("/api", rateLimiter, middleware.BodySizeLimiter(1<<20))
	{
		// HEAD /api/heartbeat		-> Used to check if the server is alive
		m.HEAD("/heartbeat", root.Heartbeat(started))

		// POST /api/log-visitor	-> Records a page view
		m.POST("/log-visitor", func(c *gin.Context) { visitor.VisitorLog(c, d) })

		// GET /api/visitor-stats	-> Returns every recorded visit, newest first
		m.GET("/visitor-stats", middleware.NewBearerGuard(cfg.StatsSecret), func(c *gin.Context) { visitor.VisitorStats(c, d) })

		// GET /api/scene		-> Returns the background scene for a viewport
		m.GET("/scene", cacheFor(cfg.SceneCacheSeconds), scene.SceneDescribe)
	}

	// GET /metrics			-> Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// GET *			-> Static files, index.html for anything else
	router.NoRoute(root.StaticFallback(cfg.StaticDir))

	return router
}

func cacheFor(sec int) gin.HandlerFunc {
	if sec <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	return cache.CacheByRequestURI(cacheStore, time.Second*time.Duration(sec))
}
