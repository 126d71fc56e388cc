package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"promptdeck/internal/config"
	"promptdeck/internal/db"
	"promptdeck/internal/feed"
	"promptdeck/internal/identity"
	routes "promptdeck/internal/http"
	"promptdeck/internal/models"
	"promptdeck/internal/upstream"
	"promptdeck/internal/ws"
)

func main() {
	// Load .env first. Not finding one is fine; production sets env vars
	// directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// 1. Initialize Database
	database, err := db.Init(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// 2. Run Migrations
	log.Println("Running database migrations...")
	if err := database.AutoMigrate(&models.Session{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations complete.")

	// 3. Upstream client + feed pipeline
	client := upstream.NewClient(cfg.UpstreamURL, cfg.UpstreamTimeout)
	prompts, err := feed.NewCachedPromptFetcher(client, cfg.PromptCacheSize)
	if err != nil {
		log.Fatalf("Failed to build prompt cache: %v", err)
	}
	feedSvc := feed.NewService(client, prompts)
	store := identity.NewStore(database)

	// 4. WebSocket hub + trending refresher
	hub := ws.NewHub()
	go hub.Run()

	refreshCtx, stopRefresh := context.WithCancel(context.Background())
	defer stopRefresh()
	refresher := feed.NewRefresher(feedSvc, hub.Broadcast, cfg.RefreshInterval)
	go refresher.Run(refreshCtx)

	// 5. Router + routes
	router := gin.New()
	routes.SetupRoutes(router, cfg, feedSvc, store, hub)

	// 6. Start Server with Graceful Shutdown
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Server listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")
	stopRefresh()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
