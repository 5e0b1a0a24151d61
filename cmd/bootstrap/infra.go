package bootstrap

import (
	"context"
	"log/slog"

	"ifuut-api/internal/infra/cache"
	"ifuut-api/internal/infra/events"
	"ifuut-api/internal/infra/metrics"
	"ifuut-api/internal/infra/storage"
	"ifuut-api/internal/pkg/clock"
	"ifuut-api/internal/pkg/config"
	"ifuut-api/internal/pkg/password"
	"ifuut-api/internal/usecase/commands"
	"ifuut-api/internal/usecase/queries"
	"ifuut-api/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		NewImageStorage,
		NewCountsCache,
		NewEventPublisher,
		fx.Annotate(
			metrics.New,
			fx.As(fx.Self()),
			fx.As(new(shared.Metrics)),
		),
		clock.NewRealClock,
		fx.Annotate(
			password.NewDefaultHasher,
			fx.As(new(commands.PasswordHasher)),
		),
	),
)

type StorageResult struct {
	fx.Out

	Images    shared.ImageStorage
	URLs      queries.URLResolver
	MediaRoot string `name:"mediaRoot"`
}

// NewImageStorage picks S3 when configured, otherwise the local media root served by the router.
func NewImageStorage(cfg config.Config) (StorageResult, error) {
	if cfg.Storage.Backend == "s3" {
		client, err := storage.NewS3Client(context.Background(), cfg.Storage)
		if err != nil {
			return StorageResult{}, err
		}
		s := storage.NewS3Storage(client, cfg.Storage)
		slog.Info("image storage ready", "backend", "s3", "bucket", cfg.Storage.S3Bucket)
		return StorageResult{Images: s, URLs: s}, nil
	}

	s, err := storage.NewLocalStorage(cfg.Storage.MediaRoot, cfg.Storage.MediaURL)
	if err != nil {
		return StorageResult{}, err
	}
	slog.Info("image storage ready", "backend", "local", "root", s.Root())
	return StorageResult{Images: s, URLs: s, MediaRoot: s.Root()}, nil
}

type CacheResult struct {
	fx.Out

	Cache       queries.CountsCache
	Invalidator shared.CountsInvalidator
}

// NewCountsCache falls back to a no-op cache when REDIS_URL is unset.
func NewCountsCache(lc fx.Lifecycle, cfg config.Config) (CacheResult, error) {
	if cfg.Cache.RedisURL == "" {
		return CacheResult{Cache: cache.NoopCountsCache{}, Invalidator: cache.NoopCountsCache{}}, nil
	}
	opts, err := redis.ParseURL(cfg.Cache.RedisURL)
	if err != nil {
		return CacheResult{}, err
	}
	client := redis.NewClient(opts)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	c := cache.NewRedisCountsCache(client, cfg.Cache.KeyPrefix, cfg.Cache.CountersTTL)
	return CacheResult{Cache: c, Invalidator: c}, nil
}

// NewEventPublisher connects to RabbitMQ when AMQP_URL is set; otherwise events are only logged.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) (shared.EventPublisher, error) {
	if cfg.Events.AMQPURL == "" {
		return events.LogPublisher{}, nil
	}
	p, err := events.DialAMQP(cfg.Events.AMQPURL, cfg.Events.Exchange)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return p.Close()
		},
	})
	return p, nil
}
