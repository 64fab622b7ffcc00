package storage

import (
	"context"
	"errors"
	"fmt"

	"quickcourt/infras/otel"
	"quickcourt/shared/constant"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type redisStore struct {
	client goRedis.Cmdable
	otel   otel.Otel
}

func NewRedis(client goRedis.Cmdable, otel otel.Otel) Store {
	return &redisStore{client: client, otel: otel}
}

func (r *redisStore) Get(ctx context.Context, key string) (value []byte, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".redis.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelKeyAttribute, key)

	value, err = r.client.Get(ctx, key).Bytes()
	if errors.Is(err, goRedis.Nil) {
		return nil, ErrNotFound
	}

	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to get value from redis")

		return nil, fmt.Errorf("failed to get value from redis: %w", err)
	}

	return value, nil
}

func (r *redisStore) Set(ctx context.Context, key string, value []byte) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".redis.Set")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelKeyAttribute, key)

	if err = r.client.Set(ctx, key, value, 0).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to set value in redis")

		return fmt.Errorf("failed to set value in redis: %w", err)
	}

	return nil
}
