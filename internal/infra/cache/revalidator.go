// Package cache implements the rendered-page cache invalidation on Redis.
package cache

import (
	"context"
	"log/slog"

	"evently/config"
	domainerrors "evently/internal/domain/errors"
	"evently/internal/domain/lifecycle"
	"evently/internal/domain/service"
	"evently/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// pageKeyPrefix namespaces the cached rendered pages, keyed by logical path.
const pageKeyPrefix = "page:"

const scanBatchSize = 100

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// pageRevalidator implements service.PageRevalidator on Redis. Mutations drop
// the affected cache entries; the presentation layer re-renders on next read.
type pageRevalidator struct {
	client *redis.Client
	logger *slog.Logger
}

// NewPageRevalidator creates the Redis client for page invalidation and binds
// it to the application lifecycle.
func NewPageRevalidator(params Params) (service.PageRevalidator, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		return nil, domainerrors.ErrConfiguration.WrapMessage("redis connection settings are required")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return &pageRevalidator{
		client: client,
		logger: params.Logger,
	}, nil
}

// Revalidate drops the cache entry for one logical path.
func (r *pageRevalidator) Revalidate(ctx context.Context, path string) error {
	if err := r.client.Del(ctx, pageKeyPrefix+path).Err(); err != nil {
		return errors.Wrap(err, "failed to invalidate cached page")
	}

	if r.logger != nil {
		r.logger.LogAttrs(ctx, slog.LevelDebug, "Cached page invalidated",
			slog.String("path", path),
		)
	}

	return nil
}

// RevalidateAll drops every cached page by scanning the page namespace.
func (r *pageRevalidator) RevalidateAll(ctx context.Context) error {
	iter := r.client.Scan(ctx, 0, pageKeyPrefix+"*", scanBatchSize).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return errors.Wrap(err, "failed to scan cached pages")
	}

	if len(keys) > 0 {
		if err := r.client.Del(ctx, keys...).Err(); err != nil {
			return errors.Wrap(err, "failed to invalidate cached pages")
		}
	}

	if r.logger != nil {
		r.logger.LogAttrs(ctx, slog.LevelDebug, "All cached pages invalidated",
			slog.Int("count", len(keys)),
		)
	}

	return nil
}
