package main

import (
	"context"
	"net/http"
	"os"
	ossignal "os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"triagelock/adapters/llm"
	"triagelock/adapters/memory"
	"triagelock/adapters/postgres"
	"triagelock/app"
	"triagelock/domain/schema"
	"triagelock/domain/signal"
	"triagelock/internal"
	"triagelock/internal/config"
	"triagelock/ports"
	"triagelock/ui"
)

func main() {
	_ = godotenv.Load()
	logger := internal.NewDefaultLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("[Main] Configuration error: %v", err)
		os.Exit(1)
	}

	registry := schema.DefaultRegistry()
	matcher := signal.NewMatcher(signal.DefaultKeywordSets(), signal.Thresholds{
		MinBestHits:    cfg.Matcher.MinBestHits,
		DominanceRatio: cfg.Matcher.DominanceRatio,
	})

	gen, err := llm.New(cfg.LLM, logger)
	if err != nil {
		logger.Error("[Main] LLM setup error: %v", err)
		os.Exit(1)
	}

	var (
		sessions ports.SessionRepository
		history  ports.HistoryRepository
	)
	if cfg.Database.URL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		db, err := postgres.Connect(ctx, cfg.Database.URL)
		cancel()
		if err != nil {
			logger.Error("[Main] Database connection error: %v", err)
			os.Exit(1)
		}
		defer db.Close()
		sessions = postgres.NewSessionRepository(db)
		history = postgres.NewHistoryRepository(db)
		logger.Info("[Main] Using PostgreSQL persistence")
	} else {
		store := memory.NewStore()
		sessions = store
		history = store
		logger.Info("[Main] Using in-memory persistence")
	}

	service := app.NewTriageService(registry, matcher, gen, sessions, history, logger)
	server := ui.NewServer(service, cfg, logger)

	ctx, stop := ossignal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("[Main] Server error: %v", err)
		os.Exit(1)
	}
}
