package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/ruralroots/directory-api/internal/api"
	"github.com/ruralroots/directory-api/internal/core/domain"
	"github.com/ruralroots/directory-api/internal/core/ports"
	"github.com/ruralroots/directory-api/internal/core/service"
	"github.com/ruralroots/directory-api/internal/infrastructure/config"
	mongodb "github.com/ruralroots/directory-api/internal/infrastructure/db/mongo"
	redisdb "github.com/ruralroots/directory-api/internal/infrastructure/db/redis"
	"github.com/ruralroots/directory-api/internal/infrastructure/memory"
	"github.com/ruralroots/directory-api/internal/seed"
	"github.com/ruralroots/directory-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET environment variable is required")
	}

	ctx := context.Background()

	persist, cleanup, err := newSnapshotStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.StoreBackend).Msg("failed to initialise snapshot store")
	}
	defer cleanup()

	initial := loadOrSeed(ctx, persist, log)
	store := service.NewStore(initial, persist, service.PlaintextVerifier, cfg.JWTSecret, 24*time.Hour, log)

	e := api.NewRouter(store, persist, cfg.JWTSecret, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("backend", cfg.StoreBackend).Msg("directory API listening")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// newSnapshotStore selects the persistence backend from configuration.
func newSnapshotStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (ports.SnapshotStore, func(), error) {
	switch cfg.StoreBackend {
	case "redis":
		client, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return nil, nil, err
		}
		return redisdb.NewSnapshotStore(client, cfg.SnapshotKey), func() { _ = client.Close() }, nil
	case "mongo":
		client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, nil, err
		}
		return mongodb.NewSnapshotStore(db, cfg.SnapshotKey), func() { _ = client.Disconnect(context.Background()) }, nil
	case "memory":
		log.Warn().Msg("memory backend selected: state will not survive a restart")
		return memory.New(), func() {}, nil
	default:
		return nil, nil, errors.New("unknown STORE_BACKEND: " + cfg.StoreBackend)
	}
}

// loadOrSeed returns the persisted snapshot, writing and using the seed
// dataset when the store is empty. A load failure falls back to the seed
// without aborting: the API stays usable in memory-only mode.
func loadOrSeed(ctx context.Context, persist ports.SnapshotStore, log zerolog.Logger) *domain.Snapshot {
	snap, err := persist.Load(ctx)
	switch {
	case err == nil:
		log.Info().Int("users", len(snap.Users)).Int("farms", len(snap.Farms)).Int("jobs", len(snap.Jobs)).Msg("snapshot loaded")
		return snap
	case errors.Is(err, ports.ErrSnapshotNotFound):
		log.Info().Msg("no snapshot found, seeding sample dataset")
	default:
		log.Error().Err(err).Msg("snapshot load failed, starting from seed dataset")
	}

	seeded := seed.Snapshot()
	if err := persist.Save(ctx, seeded); err != nil {
		log.Error().Err(err).Msg("failed to persist seed snapshot, continuing in memory")
	}
	return seeded
}
