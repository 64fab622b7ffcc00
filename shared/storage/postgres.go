package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"quickcourt/infras/otel"
	"quickcourt/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	queryGetEntry = `SELECT value FROM kv_entries WHERE key = $1`
	queryPutEntry = `INSERT INTO kv_entries (key, value, updated_at) VALUES ($1, $2::jsonb, NOW())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
)

// DB is the part of *sqlx.DB the postgres backend needs.
type DB interface {
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type postgresStore struct {
	db   DB
	otel otel.Otel
}

func NewPostgres(db DB, otel otel.Otel) Store {
	return &postgresStore{db: db, otel: otel}
}

func (p *postgresStore) Get(ctx context.Context, key string) (value []byte, err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".postgres.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		otelKeyAttribute:               key,
		constant.OtelQueryAttributeKey: queryGetEntry,
	})

	var raw string
	if err = p.db.GetContext(ctx, &raw, queryGetEntry, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		log.Error().Err(err).Str("key", key).Msg("failed to select kv entry")

		return nil, fmt.Errorf("failed to select kv entry: %w", err)
	}

	return []byte(raw), nil
}

func (p *postgresStore) Set(ctx context.Context, key string, value []byte) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".postgres.Set")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		otelKeyAttribute:               key,
		constant.OtelQueryAttributeKey: queryPutEntry,
	})

	// jsonb is bound as text; a []byte argument would be sent as bytea.
	if _, err = p.db.ExecContext(ctx, queryPutEntry, key, string(value)); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to upsert kv entry")

		return fmt.Errorf("failed to upsert kv entry: %w", err)
	}

	return nil
}
