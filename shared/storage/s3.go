package storage

import (
	"context"
	"errors"
	"path"

	"quickcourt/infras/otel"
	"quickcourt/infras/s3"
	"quickcourt/shared/constant"
)

type s3Store struct {
	client    s3.S3
	bucket    string
	directory string
	otel      otel.Otel
}

// NewS3 stores each key as <directory>/<key>.json in bucket.
func NewS3(client s3.S3, bucket, directory string, otel otel.Otel) Store {
	return &s3Store{client: client, bucket: bucket, directory: directory, otel: otel}
}

func (s *s3Store) objectKey(key string) string {
	return path.Join(s.directory, key+".json")
}

func (s *s3Store) Get(ctx context.Context, key string) (value []byte, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".s3.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelKeyAttribute, key)

	value, err = s.client.GetObject(ctx, s.bucket, s.objectKey(key))
	if errors.Is(err, s3.ErrObjectNotFound) {
		return nil, ErrNotFound
	}

	return value, err //nolint:wrapcheck
}

func (s *s3Store) Set(ctx context.Context, key string, value []byte) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".s3.Set")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelKeyAttribute, key)

	return s.client.PutObject(ctx, s.bucket, s.objectKey(key), constant.ContentTypeJSON, value) //nolint:wrapcheck
}
