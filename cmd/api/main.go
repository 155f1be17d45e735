package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-sales-api/infrastructure/database/postgres"
	"github.com/vfg2006/retail-sales-api/infrastructure/repository"
	"github.com/vfg2006/retail-sales-api/internal/api"
	"github.com/vfg2006/retail-sales-api/internal/config"
	"github.com/vfg2006/retail-sales-api/internal/scheduler"
	"github.com/vfg2006/retail-sales-api/internal/usecases/browsing"
	"github.com/vfg2006/retail-sales-api/internal/usecases/faceting"
	"github.com/vfg2006/retail-sales-api/internal/usecases/ingesting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, falling back to info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	salesRepo := repository.NewSalesRepository(pgConn)

	if err := salesRepo.EnsureSchema(ctx); err != nil {
		logrus.WithError(err).Fatal("failed to prepare sales schema")
	}

	facetService := faceting.NewService(salesRepo, cfg.FacetCache.TTL)
	browseService := browsing.NewService(salesRepo)

	loader := ingesting.NewService(salesRepo, cfg).
		WithCacheInvalidation(facetService)

	if cfg.Dataset.LoadOnStartup {
		count, err := loader.LoadOnStartup(ctx)
		if err != nil {
			logrus.WithError(err).Error("startup dataset load failed, serving whatever the store holds")
		} else {
			logrus.WithField("records", count).Info("sales store ready")
		}
	}

	refreshService := scheduler.NewDatasetRefreshService(loader, cfg)
	if err := refreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("failed to start dataset refresh scheduler")
	}

	server, err := api.New(cfg, salesRepo, browseService, facetService, loader)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("failed to ping PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
