package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"study-buddy/backend/internal/assistant"
	"study-buddy/backend/internal/assistant/prompt"
	"study-buddy/backend/internal/assistant/response"
	"study-buddy/backend/internal/config"
	"study-buddy/backend/internal/db"
	"study-buddy/backend/internal/export"
	"study-buddy/backend/internal/extract"
	"study-buddy/backend/internal/handler"
	"study-buddy/backend/internal/middleware"
	"study-buddy/backend/internal/platform/logger"
	"study-buddy/backend/internal/session"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	log.Info("starting study buddy", "env", cfg.Env, "provider", cfg.Provider)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database, err := db.Open(cfg.Database)
	if err != nil {
		log.Fatal("failed to open database", "path", cfg.Database, "error", err)
	}
	defer database.Close()
	artifacts := export.NewArtifactStore(database)

	client, ready := assistant.NewCompletionClient(ctx, cfg, log)
	if !ready {
		log.Warn("study actions will return a configuration error until a model is configured")
	}
	studyAssistant := assistant.NewStudyAssistant(
		client,
		prompt.NewBuilder(),
		response.NewFormatter(),
		log.With("component", "assistant"),
		assistant.WithTimeout(cfg.CompletionTimeout),
	)

	sessions := session.NewStore(cfg.SessionTTL)
	go sessions.RunJanitor(ctx, time.Minute, func(removed int) {
		log.Info("pruned idle chat sessions", "removed", removed, "remaining", sessions.Len())
	})
	go purgeArtifacts(ctx, artifacts, cfg.ArtifactTTL, log)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log.With("component", "http")))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.AllowedOrigins, cfg.IsProduction()))

	ipLimiter := middleware.NewIPRateLimiter(rate.Limit(cfg.RatePerSecond), cfg.RateBurst)
	dailyQuota := middleware.NewDailyQuota(cfg.DailyQuota, log)
	log.Info("rate limiting enabled", "per_second", cfg.RatePerSecond, "burst", cfg.RateBurst, "daily_quota", cfg.DailyQuota)

	h := handler.New(handler.Config{
		Assistant:      studyAssistant,
		Sessions:       sessions,
		Artifacts:      artifacts,
		Extractor:      extract.New(),
		MaxUploadBytes: cfg.MaxUploadBytes,
		ModelReady:     ready,
		Log:            log.With("component", "handler"),
	})
	h.Register(r, middleware.RateLimitMiddleware(ipLimiter, dailyQuota))

	if cfg.IsProduction() {
		r.Static("/assets", "/app/static/assets")

		r.NoRoute(func(c *gin.Context) {
			if strings.HasPrefix(c.Request.URL.Path, "/api") {
				c.JSON(http.StatusNotFound, gin.H{"error": "Not found", "code": "NOT_FOUND"})
				return
			}
			c.File("/app/static/index.html")
		})
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server ready", "port", cfg.Port, "allowed_origins", cfg.AllowedOrigins)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}

// purgeArtifacts drops downloadable outputs older than ttl once an hour.
func purgeArtifacts(ctx context.Context, store *export.ArtifactStore, ttl time.Duration, log *logger.Logger) {
	if ttl <= 0 {
		return
	}
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := store.DeleteOlderThan(ctx, time.Now().Add(-ttl))
			if err != nil {
				log.Warn("failed to purge artifacts", "error", err)
				continue
			}
			if n > 0 {
				log.Info("purged old artifacts", "removed", n)
			}
		}
	}
}
