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

	"go.uber.org/zap"

	"github.com/safar/loja/internal/config"
	"github.com/safar/loja/internal/database"
	"github.com/safar/loja/internal/httpapi"
	"github.com/safar/loja/internal/logger"
	"github.com/safar/loja/internal/metrics"
	"github.com/safar/loja/internal/store"
	"github.com/safar/loja/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Load config: %v", err)
	}

	lg, err := logger.Init(&cfg.Log)
	if err != nil {
		log.Fatalf("Init logger: %v", err)
	}
	defer lg.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewConnection(ctx, &cfg.Database)
	if err != nil {
		lg.Fatal("connect to database", zap.Error(err))
	}
	defer db.Close()

	lg.Info("connected to database")

	if cfg.Database.MigrateOnStart {
		n, err := database.Migrate(ctx, db, migrations.FS, "up")
		if err != nil {
			lg.Fatal("run migrations", zap.Error(err))
		}
		lg.Info("migrations applied", zap.Int("count", n))
	}

	m := metrics.New(cfg.Metrics.Prefix)
	st := store.New(db, store.WithMetrics(m))

	api := httpapi.NewServer(st,
		httpapi.WithMetrics(m),
		httpapi.WithHealthCheck(db),
		httpapi.WithLogger(lg),
	)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      api.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		lg.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	lg.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		lg.Error("graceful shutdown", zap.Error(err))
	}
}
