package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glowdesk/salon-manager/internal/assistant"
	"github.com/glowdesk/salon-manager/internal/config"
	"github.com/glowdesk/salon-manager/internal/export"
	"github.com/glowdesk/salon-manager/internal/middleware"
	"github.com/glowdesk/salon-manager/internal/mirror"
	"github.com/glowdesk/salon-manager/internal/notify"
	"github.com/glowdesk/salon-manager/internal/registry"
	"github.com/glowdesk/salon-manager/internal/routes"
	"github.com/glowdesk/salon-manager/internal/store"
	"github.com/glowdesk/salon-manager/internal/syncer"
)

func main() {

	cfg := config.Load()

	adapter, err := newAdapter(cfg)
	if err != nil {
		log.Fatalf("failed to open storage: %v", err)
	}

	notifier := notify.New()
	mirrorClient := mirror.New(cfg.MirrorURL)
	pusher := store.NewPusher(mirrorClient)
	tables := registry.New(adapter, notifier, pusher)

	orchestrator := syncer.New(mirrorClient, adapter, notifier)

	// Pull the mirror exactly once per process; later pulls are manual.
	go orchestrator.PullOnce(context.Background())

	backup := export.NewBackup(cfg.S3Region, cfg.S3Bucket, cfg.S3AccessKey, cfg.S3SecretKey)
	aiClient := assistant.New(cfg.AssistantURL, cfg.AssistantKey)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, tables, orchestrator, backup, aiClient, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

func newAdapter(cfg *config.Config) (store.Adapter, error) {
	switch cfg.StorageDriver {
	case "redis":
		return store.NewRedis(cfg.RedisURL)
	case "postgres":
		return store.NewGorm(cfg.PostgresURL)
	default:
		return store.NewFile(cfg.DataDir)
	}
}
