package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/notmobil/backend/ai/gemini"
	"github.com/notmobil/backend/api"
	"github.com/notmobil/backend/cache"
	cacheredis "github.com/notmobil/backend/cache/redis"
	"github.com/notmobil/backend/config"
	"github.com/notmobil/backend/service"
	"github.com/notmobil/backend/store/memory"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.DevMode {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	log := logrus.WithField("component", "main")

	ctx := context.Background()

	noteStore := memory.NewMemoryNoteStore(memory.SeedUsers())

	var summaryCache cache.SummaryCache
	if cfg.RedisEndpoint != "" {
		redisCache, err := cacheredis.NewRedisSummaryCache(ctx, cfg.DevMode, cfg.RedisEndpoint)
		if err != nil {
			log.Fatalf("Failed to create redis summary cache: %v", err)
		}
		summaryCache = redisCache
	}

	gateway := gemini.NewGeminiClient(cfg.GeminiAPIKey)
	if cfg.GeminiAPIKey != "" {
		log.Info("Gemini gateway configured")
	} else {
		log.Warn("GEMINI_API_KEY not set, summaries use the fallback algorithm unless a request supplies a key")
	}

	svc := service.NewService(
		noteStore,
		summaryCache,
		gateway,
		[]byte(cfg.JWTSecret),
		cfg.AITimeout,
		cfg.AIRateLimit,
		cfg.AIRateBurst,
	)

	notesAPI := api.NewNotesAPI(svc)

	shutdownCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: notesAPI.Router(),
	}

	go func() {
		<-shutdownCtx.Done()
		log.Info("Server shutting down...")
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(timeoutCtx); err != nil {
			log.Errorf("Shutdown error: %v", err)
		}
	}()

	log.Infof("Starting server on port %s", cfg.Port)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server failed: %v", err)
	}
}
