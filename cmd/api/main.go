package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/Ashis-Mishra07/genAi-sub000/internal/adapter/repo"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/cache"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/http/handlers"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/http/httpapi"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/infra"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/infra/credentials"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/infra/geoip"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/middleware"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/pipeline"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Postgres only stores attempt traces; without it the service still runs.
	var attempts *repo.AttemptRepositoryPG
	var recorder pipeline.TraceRecorder
	if cfg.DatabaseURL != "" {
		pool, err := infra.NewDBPool(ctx, cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("api: db connection failed")
		}
		defer pool.Close()
		runner := infra.NewSQLRunner(pool, logger)
		attempts = repo.NewAttemptRepository(runner)
		creds := credentials.NewStore(runner)
		if err := attempts.EnsureSchema(ctx); err != nil {
			logger.Fatal().Err(err).Msg("api: ensure schema failed")
		}
		if err := creds.EnsureSchema(ctx); err != nil {
			logger.Fatal().Err(err).Msg("api: ensure schema failed")
		}
		if filled, err := creds.FillMissing(ctx, cfg); err != nil {
			logger.Warn().Err(err).Msg("api: failed to load stored provider keys")
		} else if len(filled) > 0 {
			logger.Info().Strs("providers", filled).Msg("api: provider keys loaded from store")
		}
		recorder = attempts
	} else {
		logger.Warn().Msg("api: DATABASE_URL not set, attempt traces are not persisted")
	}

	studio, err := pipeline.NewFromConfig(cfg, &logger, recorder)
	if err != nil {
		logger.Fatal().Err(err).Msg("api: failed to build pipeline")
	}

	app := handlers.NewApp(studio, &logger)
	if attempts != nil {
		app.Attempts = attempts
		app.Stats = attempts
	}
	if cfg.RedisURL != "" {
		artifactCache, err := cache.Open(ctx, cfg.RedisURL, cfg.ArtifactCacheTTL)
		if err != nil {
			logger.Warn().Err(err).Msg("api: redis unavailable, artifact cache disabled")
		} else {
			defer artifactCache.Close()
			app.Cache = artifactCache
		}
	}

	var lookup middleware.CountryLookup
	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("api: geoip disabled")
	} else if resolver != nil {
		defer resolver.Close()
		lookup = resolver.Lookup
	}

	router := httpapi.NewRouter(app, httpapi.Options{
		Logger:          logger,
		CORSOrigins:     cfg.CORSOrigins,
		RateLimitPerMin: cfg.RateLimitPerMin,
		DefaultLocale:   "en",
		CountryLookup:   lookup,
	})
	server := infra.NewHTTPServer(cfg, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info().
			Str("addr", server.Addr()).
			Strs("backends", studio.Dispatcher().Order()).
			Strs("vision_models", studio.VisionModels()).
			Msg("api: listening")
		return server.Start()
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("api: server stopped with error")
		os.Exit(1)
	}
	logger.Info().Msg("api: server stopped")
}
