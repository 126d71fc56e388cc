package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"promptdeck/internal/config"
	"promptdeck/internal/feed"
	"promptdeck/internal/identity"
	"promptdeck/internal/ws"
)

// SetupRoutes configures all application routes and middleware.
func SetupRoutes(router *gin.Engine, cfg config.Config, feedSvc *feed.Service, store *identity.Store, hub *ws.Hub) {

	// --- Dependencies ---
	env := &Env{Feed: feedSvc, Identity: store}

	// --- Middleware ---
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(SecurityHeadersMiddleware())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", DeviceHeader, "X-Admin-Token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// --- Rate Limiter Setup ---
	limiter := NewIPRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	go func() {
		for {
			time.Sleep(10 * time.Minute)
			limiter.Sweep()
		}
	}()

	// --- API Routes ---

	api := router.Group("/api")
	{
		api.GET("/feed/trending", RateLimitMiddleware(limiter), env.GetTrendingFeed)
		api.GET("/feed/profile", RateLimitMiddleware(limiter), env.GetProfileFeed)
		api.GET("/nav/replies", env.ResolveRepliesRoute)
		api.POST("/session", env.CreateSession)
		api.DELETE("/session/:device", AdminAuthMiddleware(cfg.AdminToken), env.DeleteSession)
	}

	// --- WebSocket Route ---

	router.GET("/ws", func(c *gin.Context) {
		ws.ServeWs(hub, c.Writer, c.Request)
	})
}
