package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yourname/fittracker/internal"
	"github.com/yourname/fittracker/internal/api"
	"github.com/yourname/fittracker/internal/clock"
	"github.com/yourname/fittracker/internal/config"
	"github.com/yourname/fittracker/internal/service"
	"github.com/yourname/fittracker/internal/storage"
)

type application struct {
	logger  internal.Logger
	tracker *service.Tracker
}

func (a *application) Logger() internal.Logger   { return a.logger }
func (a *application) Tracker() *service.Tracker { return a.tracker }

func main() {
	cfg := config.Load()

	logger, err := internal.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	loc, err := cfg.Location()
	if err != nil {
		logger.Fatalf("invalid timezone: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, err := storage.NewStateRepository(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("failed to init %s storage: %v", cfg.StorageBackend, err)
	}
	defer repo.Close()

	app := &application{
		logger:  logger,
		tracker: service.NewTracker(repo, clock.System{}, loc, logger),
	}

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           api.NewRouter(app),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Infof("Server running on %s (storage=%s, timezone=%s)", cfg.HTTPAddr, cfg.StorageBackend, loc)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("graceful shutdown failed: %v", err)
	}
}
