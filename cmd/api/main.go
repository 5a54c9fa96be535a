package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"

	"github.com/RanaNomiRana/AFA-backend/internal/api"
	"github.com/RanaNomiRana/AFA-backend/internal/api/handlers"
	"github.com/RanaNomiRana/AFA-backend/internal/config"
	"github.com/RanaNomiRana/AFA-backend/internal/domain/services"
	grpctriage "github.com/RanaNomiRana/AFA-backend/internal/grpc/triage"
	"github.com/RanaNomiRana/AFA-backend/internal/infrastructure/cache"
	"github.com/RanaNomiRana/AFA-backend/internal/infrastructure/database"
	"github.com/RanaNomiRana/AFA-backend/internal/infrastructure/database/repository"
	"github.com/RanaNomiRana/AFA-backend/internal/infrastructure/device"
	"github.com/RanaNomiRana/AFA-backend/internal/streaming"
	"github.com/RanaNomiRana/AFA-backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadDefault()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	var log *logger.Logger
	if cfg.App.Environment == "production" {
		log = logger.NewProduction()
	} else {
		log = logger.NewDevelopment()
	}
	logger.SetGlobal(log)

	log.Info().
		Str("app", cfg.App.Name).
		Str("env", cfg.App.Environment).
		Str("version", cfg.App.Version).
		Msg("starting AFA backend")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Infrastructure
	db, err := database.NewPostgres(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to PostgreSQL")
	}
	defer db.Close()

	redisCache, err := cache.NewRedis(ctx, cfg.Redis, log)
	if err != nil {
		log.Warn().Err(err).Msg("failed to connect to Redis, continuing without cache and rate limiting")
		redisCache = nil
	} else {
		defer redisCache.Close()
	}

	repos := repository.NewRepositories(db.Pool())
	if err := repos.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure database schema")
	}

	var natsPublisher *streaming.NATSPublisher
	if cfg.NATS.Enabled {
		natsPublisher, err = streaming.NewNATSPublisher(ctx, cfg.NATS, log)
		if err != nil {
			log.Warn().Err(err).Msg("failed to connect to NATS, continuing without event streaming")
			natsPublisher = nil
		} else {
			defer natsPublisher.Close()
		}
	}

	adb := device.NewADBProvider(cfg.Device, log)

	// Domain services
	parser := services.NewFieldParser(log)
	normalizer := services.NewNormalizer(log)
	classifier := services.NewClassifier(log)

	var publisher services.EventPublisher
	if natsPublisher != nil {
		publisher = natsPublisher
	}
	var invalidator services.ViewInvalidator
	var viewCache services.ViewCache
	if redisCache != nil {
		invalidator = redisCache
		viewCache = redisCache
	}

	ingestService := services.NewIngestService(adb, repos, parser, normalizer, classifier, publisher, invalidator, log)
	queryService := services.NewQueryService(repos, classifier, log)
	analyticsService := services.NewAnalyticsService(repos, viewCache, cfg.Analytics.TopContacts, cfg.Analytics.CacheTTL, log)

	// HTTP API
	h := handlers.NewHandlers(handlers.Dependencies{
		Ingest:    ingestService,
		Query:     queryService,
		Analytics: analyticsService,
		Resolver:  adb,
		Cache:     redisCache,
		DB:        db,
		Logger:    log,
	})

	router := api.NewRouter(*cfg, h, redisCache, log)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.HTTPPort),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info().Str("addr", httpServer.Addr).Msg("starting HTTP server")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// gRPC health endpoint
	grpcListener, err := net.Listen("tcp", fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.GRPCPort))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create gRPC listener")
	}

	grpcServer := grpc.NewServer()
	grpctriage.RegisterHealthServer(ctx, grpcServer, db, redisCache)

	go func() {
		log.Info().Str("addr", grpcListener.Addr().String()).Msg("starting gRPC server")
		if err := grpcServer.Serve(grpcListener); err != nil {
			log.Fatal().Err(err).Msg("gRPC server failed")
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	grpcServer.GracefulStop()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("shutdown complete")
}
