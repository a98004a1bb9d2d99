package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	fundhandler "fundtrack/internal/fund/handler"
	fundservice "fundtrack/internal/fund/service"
	fundstore "fundtrack/internal/fund/store"
	httpapi "fundtrack/internal/http"
	"fundtrack/internal/platform/config"
	"fundtrack/internal/platform/httpserver"
	"fundtrack/internal/platform/logger"
	"fundtrack/internal/platform/metrics"
	"fundtrack/internal/platform/postgres"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal/fund.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	db, err := postgres.New(cfg.Database)
	if err != nil {
		log.Error("failed to connect to postgres", "error", err)
		os.Exit(1)
	}

	var store fundservice.Store
	var health httpapi.HealthChecker
	if db != nil {
		defer db.Close()
		pg := fundstore.NewPostgresStore(db.DB)
		if err := pg.EnsureSchema(context.Background()); err != nil {
			log.Error("failed to ensure fund schema", "error", err)
			os.Exit(1)
		}
		store = pg
		health = db
		log.Info("using postgres store")
	} else {
		store = fundstore.NewMemoryStore()
		log.Warn("DATABASE_URL not set, using in-memory store")
	}

	m := metrics.New()
	service := fundservice.New(store, log, m)
	handler := fundhandler.New(service, log)
	router := httpapi.NewRouter(handler, log, m, health)

	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting fundtrack", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
	log.Info("fundtrack stopped")
}
