package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/lexicon/internal/config"
	"github.com/dmitrymomot/lexicon/internal/server"
	"github.com/dmitrymomot/lexicon/pkg/db"
	"github.com/dmitrymomot/lexicon/pkg/i18n"
	"github.com/dmitrymomot/lexicon/pkg/redis"
	"github.com/dmitrymomot/lexicon/pkg/storage"
)

// runtime holds the resolver and the connections it was built on.
type runtime struct {
	resolver *i18n.Resolver
	source   i18n.Source
	checks   server.Checks
	closers  []func(context.Context) error
}

// buildRuntime connects the configured source and cache and creates the
// resolver.
func buildRuntime(ctx context.Context, cfg *config.Config, log *slog.Logger) (_ *runtime, err error) {
	rt := &runtime{checks: make(server.Checks)}
	defer func() {
		if err != nil {
			_ = rt.close(context.Background())
		}
	}()

	switch cfg.I18n.Source {
	case config.SourceDir:
		if _, statErr := os.Stat(cfg.I18n.Dir); statErr != nil {
			return nil, fmt.Errorf("translations directory: %w", statErr)
		}
		rt.source = i18n.NewDirSource(os.DirFS(cfg.I18n.Dir))
	case config.SourceS3:
		src, err := storage.New(cfg.Storage)
		if err != nil {
			return nil, err
		}
		rt.source = src
	case config.SourcePostgres:
		pool, err := rt.openDB(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		rt.source = db.NewSource(pool)
	default:
		return nil, fmt.Errorf("%w: unknown source %q", config.ErrInvalidConfig, cfg.I18n.Source)
	}
	rt.checks["source"] = func(ctx context.Context) error {
		_, err := rt.source.Locales(ctx)
		return err
	}

	opts := []i18n.Option{
		i18n.WithSource(rt.source),
		i18n.WithFallbackLocale(cfg.I18n.FallbackLocale),
		i18n.WithLogger(log),
		i18n.WithMissingKeyHandler(func(locale, key string) {
			log.Debug("missing translation", slog.String("locale", locale), slog.String("key", key))
		}),
	}

	if cfg.Redis.Enabled() {
		client, err := redis.Open(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		rt.closers = append(rt.closers, closeRedis(client))
		rt.checks["redis"] = redis.Healthcheck(client)
		opts = append(opts, i18n.WithCache(i18n.NewRedisCache(client,
			i18n.WithRedisPrefix(cfg.I18n.CachePrefix),
			i18n.WithRedisTTL(cfg.I18n.CacheTTL),
		)))
	}

	rt.resolver, err = i18n.New(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (rt *runtime) openDB(ctx context.Context, cfg db.Config) (*pgxpool.Pool, error) {
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	rt.closers = append(rt.closers, func(context.Context) error {
		pool.Close()
		return nil
	})
	rt.checks["postgres"] = db.Healthcheck(pool)
	return pool, nil
}

func (rt *runtime) close(ctx context.Context) error {
	var errs []error
	for i := len(rt.closers) - 1; i >= 0; i-- {
		if err := rt.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	rt.closers = nil
	return errors.Join(errs...)
}

func closeRedis(client goredis.UniversalClient) func(context.Context) error {
	return func(context.Context) error {
		return client.Close()
	}
}
