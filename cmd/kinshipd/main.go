// Command kinshipd is the kinship graph server daemon.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kinshiphq/kinship/internal/api"
	"github.com/kinshiphq/kinship/internal/config"
	"github.com/kinshiphq/kinship/internal/db"
	"github.com/kinshiphq/kinship/internal/db/migrations"
	"github.com/kinshiphq/kinship/internal/dbpool"
	"github.com/kinshiphq/kinship/internal/service"
	"github.com/kinshiphq/kinship/internal/store"
)

// version is set at build time via -ldflags.
var version = "dev"

const shutdownTimeout = 30 * time.Second

func main() {
	log := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("loading configuration")
	}

	configureLogger(log, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := dbpool.NewPool(ctx, cfg.DatabaseURL.Value())
	if err != nil {
		log.WithError(err).Fatal("connecting to database")
	}
	defer pool.Close()

	if err := db.RunMigrations(ctx, pool, log, migrations.FS); err != nil {
		log.WithError(err).Fatal("running migrations")
	}

	base := store.Base{Pool: pool, Log: log}
	edges := store.NewEdgeStore(base)
	persons := store.NewPersonStore(base)

	svc := service.NewKinshipService(edges, persons, service.Limits{
		DepthCeiling:  cfg.MaxDiscoveryDepth,
		PathHops:      cfg.MaxPathHops,
		ResultCap:     cfg.DiscoveryResultCap,
		EnrichWorkers: cfg.EnrichWorkers,
	}, log)

	router := api.NewRouter(&api.RouterDeps{
		Log:         log,
		Pool:        pool,
		Kinship:     svc,
		Levels:      svc,
		CORSOrigins: cfg.CORSOrigins,
		Version:     version,
		MaxDepth:    cfg.MaxDiscoveryDepth,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(logrus.Fields{"addr": cfg.Addr(), "version": version}).Info("kinshipd listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server error")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("shutdown error")
	}

	log.Info("kinshipd stopped")
}

// configureLogger applies the configured level and format.
func configureLogger(log *logrus.Logger, cfg *config.Config) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if cfg.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
}
