// Package wiring turns a config.Config into live adapters.
package wiring

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/MaximeSarrato/crafty/config"
	"github.com/MaximeSarrato/crafty/internal/adapters/secondary/eventbroker"
	badgerrepo "github.com/MaximeSarrato/crafty/internal/adapters/secondary/repository/badger"
	"github.com/MaximeSarrato/crafty/internal/adapters/secondary/repository/memory"
	neo4jrepo "github.com/MaximeSarrato/crafty/internal/adapters/secondary/repository/neo4j"
	pgrepo "github.com/MaximeSarrato/crafty/internal/adapters/secondary/repository/postgres"
	redisrepo "github.com/MaximeSarrato/crafty/internal/adapters/secondary/repository/redis"
	"github.com/MaximeSarrato/crafty/internal/core/ports"
)

// Infra holds the driven adapters. Close releases them in reverse order of creation.
type Infra struct {
	Messages  ports.MessageRepository
	Followees ports.FolloweesRepository
	Publisher ports.EventPublisher

	closers []func() error
}

func (i *Infra) Close() error {
	var errs []error
	for k := len(i.closers) - 1; k >= 0; k-- {
		errs = append(errs, i.closers[k]())
	}
	return errors.Join(errs...)
}

func (i *Infra) onClose(f func() error) {
	i.closers = append(i.closers, f)
}

// Build connects only to the backends cfg selects. On error, whatever was
// opened is closed before returning.
func Build(ctx context.Context, cfg *config.Config) (_ *Infra, err error) {
	infra := &Infra{}
	defer func() {
		if err != nil {
			_ = infra.Close()
		}
	}()

	var (
		pool *pgxpool.Pool
		bdb  *badger.DB
	)

	if cfg.UsesStore(config.StorePostgres) {
		if pool, err = connectPostgres(ctx, cfg.DBUrl); err != nil {
			return nil, err
		}
		infra.onClose(func() error { pool.Close(); return nil })
	}

	if cfg.UsesStore(config.StoreBadger) {
		if bdb, err = badgerrepo.Open(cfg.BadgerPath); err != nil {
			return nil, err
		}
		infra.onClose(bdb.Close)
		slog.Info("✅ Opened Badger", "path", cfg.BadgerPath)
	}

	switch cfg.MessageStore {
	case config.StorePostgres:
		infra.Messages = pgrepo.NewMessageRepository(pool)
	case config.StoreBadger:
		infra.Messages = badgerrepo.NewMessageRepository(bdb)
	case config.StoreMemory:
		infra.Messages = memory.NewMessageRepository()
	default:
		return nil, fmt.Errorf("%w: message store %q", config.ErrInvalidConfig, cfg.MessageStore)
	}

	switch cfg.FolloweeStore {
	case config.StorePostgres:
		infra.Followees = pgrepo.NewFolloweesRepository(pool)
	case config.StoreBadger:
		infra.Followees = badgerrepo.NewFolloweesRepository(bdb)
	case config.StoreNeo4j:
		repo, closeFn, err := connectNeo4j(ctx, cfg)
		if err != nil {
			return nil, err
		}
		infra.onClose(closeFn)
		infra.Followees = repo
	case config.StoreRedis:
		client, err := connectRedis(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, err
		}
		infra.onClose(client.Close)
		infra.Followees = redisrepo.NewFolloweesRepository(client)
	case config.StoreMemory:
		infra.Followees = memory.NewFolloweesRepository()
	default:
		return nil, fmt.Errorf("%w: followee store %q", config.ErrInvalidConfig, cfg.FolloweeStore)
	}

	if cfg.NatsURL == "" {
		infra.Publisher = eventbroker.NopPublisher{}
	} else {
		broker, err := eventbroker.NewNatsBroker(ctx, cfg.NatsURL)
		if err != nil {
			return nil, err
		}
		infra.onClose(broker.Close)
		infra.Publisher = broker
		slog.Info("✅ Connected to NATS", "stream", eventbroker.StreamName)
	}

	return infra, nil
}

func connectPostgres(ctx context.Context, url string) (*pgxpool.Pool, error) {
	dbConfig, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse DB config: %w", err)
	}
	// SQL spans
	dbConfig.ConnConfig.Tracer = otelpgx.NewTracer()

	pool, err := pgxpool.NewWithConfig(ctx, dbConfig)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if err := pgrepo.EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	slog.Info("✅ Connected to Postgres")
	return pool, nil
}

func connectNeo4j(ctx context.Context, cfg *config.Config) (*neo4jrepo.FolloweesRepository, func() error, error) {
	driver, err := neo4j.NewDriverWithContext(cfg.Neo4jURI, neo4j.BasicAuth(cfg.Neo4jUser, cfg.Neo4jPassword, ""))
	if err != nil {
		return nil, nil, fmt.Errorf("neo4j driver: %w", err)
	}
	closeFn := func() error { return driver.Close(context.Background()) }

	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = closeFn()
		return nil, nil, fmt.Errorf("neo4j connectivity: %w", err)
	}

	repo := neo4jrepo.NewFolloweesRepository(driver)
	if err := repo.EnsureSchema(ctx); err != nil {
		_ = closeFn()
		return nil, nil, err
	}
	slog.Info("✅ Connected to Neo4j")
	return repo, closeFn, nil
}

func connectRedis(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := redisotel.InstrumentTracing(client); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis tracing: %w", err)
	}
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	slog.Info("✅ Connected to Redis", "addr", addr)
	return client, nil
}
