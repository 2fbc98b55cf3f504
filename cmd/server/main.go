package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mcqlab/quiz-portal/internal/attempt"
	"github.com/mcqlab/quiz-portal/internal/config"
	"github.com/mcqlab/quiz-portal/internal/database"
	"github.com/mcqlab/quiz-portal/internal/handler"
	"github.com/mcqlab/quiz-portal/internal/logger"
	"github.com/mcqlab/quiz-portal/internal/router"
	"github.com/mcqlab/quiz-portal/internal/service"
	"github.com/mcqlab/quiz-portal/internal/upstream"
	"github.com/mcqlab/quiz-portal/internal/validator"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("upstream", cfg.UpstreamBaseURL).
		Msg("Starting Quiz Portal")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to Redis (optional quiz cache) ────────────────────────
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		var err error
		rdb, err = database.NewRedisClient(ctx, cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
	} else {
		log.Info().Msg("Redis not configured, quiz cache disabled")
	}

	// ─── Upstream Quiz Backend Client ──────────────────────────────────
	up := upstream.NewClient(cfg.UpstreamBaseURL, cfg.UpstreamTimeout, log)

	// ─── Attempt Session Store ─────────────────────────────────────────
	store := attempt.NewStore(cfg.AttemptTTL, log)

	sweepCtx, sweepCancel := context.WithCancel(context.Background())
	go store.Sweep(sweepCtx)

	// ─── Initialize Services ───────────────────────────────────────────
	quizService := service.NewQuizService(up, rdb, cfg.QuizCacheTTL, log)
	attemptService := service.NewAttemptService(quizService, store, up, cfg.QuizPageSize, log)
	resultService := service.NewResultService(up, cfg.QuizPageSize, log)
	dashboardService := service.NewDashboardService(up, cfg.RecentResultsLimit, log)

	// ─── Initialize Handlers ───────────────────────────────────────────
	handlers := &router.Handlers{
		Quiz:      handler.NewQuizHandler(quizService),
		Attempt:   handler.NewAttemptHandler(attemptService),
		Result:    handler.NewResultHandler(resultService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// Attempt sessions are in-memory and deliberately not persisted; the
	// sweep goroutine just needs to stop.
	sweepCancel()

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
