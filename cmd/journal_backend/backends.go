package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/daily_journal_app/internal/adapters/storage"
	portsrepo "github.com/SscSPs/daily_journal_app/internal/core/ports/repositories"
	rediscache "github.com/SscSPs/daily_journal_app/internal/repositories/cache/redis"
	"github.com/SscSPs/daily_journal_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/daily_journal_app/internal/repositories/memory"
	"github.com/SscSPs/daily_journal_app/internal/platform/config"
	"github.com/SscSPs/daily_journal_app/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/afero"
	"github.com/ulule/limiter/v3"
	limitermemory "github.com/ulule/limiter/v3/drivers/store/memory"
	limiterredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

// backends holds everything main opened and must release.
type backends struct {
	Repos       portsrepo.RepositoryProvider
	AuthLimiter *limiter.Limiter

	pool        *pgxpool.Pool
	redisClient *redis.Client
}

func (b *backends) Close() {
	database.ClosePgxPool(b.pool)
	if b.redisClient != nil {
		if err := b.redisClient.Close(); err != nil {
			slog.Error("Failed to close redis client", slog.String("error", err.Error()))
		}
	}
}

// setupBackends picks the user/entry store, the session store, the attachment
// storage and the login limiter store from configuration.
func setupBackends(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*backends, error) {
	b := &backends{}

	switch cfg.DBDriver {
	case config.DBDriverMemory:
		logger.Warn("Using in-memory user and entry storage. Data is lost on restart.")
		b.Repos = memory.NewRepositoryProvider()
	default:
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database pool: %w", err)
		}
		b.pool = pool
		b.Repos = pgsql.NewRepositoryProvider(pool)
	}

	if cfg.SessionStore == config.SessionStoreRedis || cfg.RedisURL != "" {
		client, err := database.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			b.Close()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		b.redisClient = client
	}

	if cfg.SessionStore == config.SessionStoreRedis {
		b.Repos.SessionStore = rediscache.NewSessionStore(b.redisClient)
	} else {
		b.Repos.SessionStore = memory.NewSessionStore()
	}

	objectStorage, err := newObjectStorage(ctx, cfg)
	if err != nil {
		b.Close()
		return nil, err
	}
	b.Repos.Storage = objectStorage

	authLimiter, err := newAuthLimiter(cfg, b.redisClient)
	if err != nil {
		b.Close()
		return nil, err
	}
	b.AuthLimiter = authLimiter

	logger.Info("Backends ready",
		slog.String("db_driver", cfg.DBDriver),
		slog.String("session_store", cfg.SessionStore),
		slog.String("upload_driver", cfg.UploadDriver))
	return b, nil
}

func newObjectStorage(ctx context.Context, cfg *config.Config) (portsrepo.ObjectStorage, error) {
	switch cfg.UploadDriver {
	case config.UploadDriverS3:
		s3Storage, err := storage.NewS3Storage(ctx, storage.S3Options{
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			Prefix:    cfg.S3Prefix,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to set up s3 storage: %w", err)
		}
		return s3Storage, nil
	case config.UploadDriverCloudinary:
		cld, err := storage.NewCloudinaryStorage(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.CloudinaryFolder)
		if err != nil {
			return nil, fmt.Errorf("failed to set up cloudinary storage: %w", err)
		}
		return cld, nil
	default:
		local, err := storage.NewLocalStorage(afero.NewOsFs(), cfg.UploadDir)
		if err != nil {
			return nil, err
		}
		return local, nil
	}
}

// newAuthLimiter shares counters through Redis when a client is available.
func newAuthLimiter(cfg *config.Config, client *redis.Client) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(cfg.LoginRateLimit)
	if err != nil {
		return nil, fmt.Errorf("invalid LOGIN_RATE_LIMIT %q: %w", cfg.LoginRateLimit, err)
	}

	if client == nil {
		return limiter.New(limitermemory.NewStore(), rate), nil
	}

	store, err := limiterredis.NewStoreWithOptions(client, limiter.StoreOptions{
		Prefix:   "journal_auth_limiter",
		MaxRetry: 3,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create redis limiter store: %w", err)
	}
	return limiter.New(store, rate), nil
}
