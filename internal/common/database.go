package common

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "modernc.org/sqlite"

	"github.com/codemarcinu/pantry-tracker/gen/ent"
	"github.com/codemarcinu/pantry-tracker/internal/repository"
)

// DBResult bundles the opened database handles with their teardown.
type DBResult struct {
	Client  *ent.Client
	Pool    *pgxpool.Pool // nil for in-memory runs
	Cleanup func()
}

// InitDatabase opens either the configured Postgres database or, when
// inmem is set, a throwaway in-process SQLite database with the schema
// created. The in-memory mode exists for one-shot batch runs and local
// experiments that should not touch a real database.
func InitDatabase(ctx context.Context, cfg *Config, inmem bool, logger *slog.Logger) (*DBResult, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if inmem {
		db, err := sql.Open("sqlite", "file:pantry?mode=memory&cache=shared&_pragma=foreign_keys(1)")
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		// cache=shared needs a single connection or ent sees partial state
		db.SetMaxOpenConns(1)

		drv := entsql.OpenDB(dialect.SQLite, db)
		client := ent.NewClient(ent.Driver(drv))
		if err := client.Schema.Create(ctx); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("create sqlite schema: %w", err)
		}
		logger.Info("database ready", "driver", "sqlite", "mode", "in-memory")
		return &DBResult{
			Client: client,
			Cleanup: func() {
				if err := client.Close(); err != nil {
					logger.Error("close sqlite client", "error", err)
				}
			},
		}, nil
	}

	dbCfg := repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}
	client, pool, err := repository.Open(ctx, dbCfg, logger)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	logger.Info("database ready", "driver", "postgres")
	return &DBResult{
		Client: client,
		Pool:   pool,
		Cleanup: func() {
			repository.Close(client, pool, logger)
		},
	}, nil
}
