package storage

//go:generate go run go.uber.org/mock/mockgen -source=./storage.go -destination=./mocks/storage_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"quickcourt/config"
	"quickcourt/infras/otel"
	"quickcourt/infras/postgres"
	"quickcourt/infras/redis"
	"quickcourt/infras/s3"
	"quickcourt/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	otelKeyAttribute = "storage.key"
	keySeparator     = ":"
)

var (
	ErrNotFound      = errors.New("storage: key not found")
	ErrUnknownDriver = errors.New("storage: unknown driver")
)

// Store is a string-keyed byte store. Values written by this module are JSON.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// GetJSON decodes the value at key into dst. It reports false with a nil
// error when the key does not exist.
func GetJSON(ctx context.Context, store Store, key string, dst any) (bool, error) {
	raw, err := store.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	if err = json.Unmarshal(raw, dst); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to unmarshal stored value")

		return false, fmt.Errorf("failed to unmarshal value of %s: %w", key, err)
	}

	return true, nil
}

func SetJSON(ctx context.Context, store Store, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to marshal value")

		return fmt.Errorf("failed to marshal value of %s: %w", key, err)
	}

	return store.Set(ctx, key, raw)
}

// Key joins parts with the key separator, e.g. Key("reviews", "f1") = "reviews:f1".
func Key(parts ...string) string {
	return strings.Join(parts, keySeparator)
}

type prefixed struct {
	store  Store
	prefix string
}

// WithPrefix namespaces every key of store under prefix.
func WithPrefix(store Store, prefix string) Store {
	if prefix == constant.Empty {
		return store
	}

	return &prefixed{store: store, prefix: prefix}
}

func (p *prefixed) Get(ctx context.Context, key string) ([]byte, error) {
	return p.store.Get(ctx, Key(p.prefix, key)) //nolint:wrapcheck
}

func (p *prefixed) Set(ctx context.Context, key string, value []byte) error {
	return p.store.Set(ctx, Key(p.prefix, key), value) //nolint:wrapcheck
}

// New builds the backend selected by STORAGE_DRIVER and namespaces it under
// STORAGE_KEY_PREFIX. Only the client of the selected backend is connected.
func New(config *config.Config, otel otel.Otel) (Store, error) {
	driver := config.Storage.Driver

	log.Info().Str("driver", driver).Str("key_prefix", config.Storage.KeyPrefix).Msg("Initializing storage")

	store, err := open(config, otel, driver)
	if err != nil {
		return nil, err
	}

	return WithPrefix(store, config.Storage.KeyPrefix), nil
}

func open(config *config.Config, otel otel.Otel, driver string) (Store, error) {
	switch driver {
	case constant.StorageDriverMemory:
		return NewMemory(), nil
	case constant.StorageDriverFile, constant.Empty:
		return NewFile(config.Storage.File.Path, otel), nil
	case constant.StorageDriverRedis:
		client, err := redis.New(config)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		return NewRedis(client, otel), nil
	case constant.StorageDriverPostgres:
		conn, err := postgres.New(config)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		return NewPostgres(conn.Write, otel), nil
	case constant.StorageDriverS3:
		client, err := s3.New(config, otel)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		return NewS3(client, config.Storage.S3.Bucket, config.Storage.S3.Directory, otel), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, driver)
	}
}
