package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"quickcourt/infras/otel"
	"quickcourt/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	fileDirPerm  = 0o755
	fileDataPerm = 0o600
)

// fileStore keeps every key in a single JSON object on disk. Writes go to a
// temp file that is renamed over the document.
type fileStore struct {
	mu   sync.Mutex
	path string
	otel otel.Otel
}

func NewFile(path string, otel otel.Otel) Store {
	return &fileStore{path: path, otel: otel}
}

func (f *fileStore) Get(ctx context.Context, key string) (value []byte, err error) {
	_, scope := f.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".file.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelKeyAttribute, key)

	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return nil, err
	}

	raw, ok := doc[key]
	if !ok {
		return nil, ErrNotFound
	}

	return raw, nil
}

func (f *fileStore) Set(ctx context.Context, key string, value []byte) (err error) {
	_, scope := f.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".file.Set")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelKeyAttribute, key)

	if !json.Valid(value) {
		return fmt.Errorf("failed to write %s: value is not valid JSON", key)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return err
	}

	doc[key] = json.RawMessage(value)

	return f.save(doc)
}

func (f *fileStore) load() (map[string]json.RawMessage, error) {
	doc := make(map[string]json.RawMessage)

	raw, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return doc, nil
	}

	if err != nil {
		log.Error().Err(err).Str("path", f.path).Msg("failed to read storage file")

		return nil, fmt.Errorf("failed to read storage file: %w", err)
	}

	if len(raw) == 0 {
		return doc, nil
	}

	if err = json.Unmarshal(raw, &doc); err != nil {
		log.Error().Err(err).Str("path", f.path).Msg("failed to decode storage file")

		return nil, fmt.Errorf("failed to decode storage file: %w", err)
	}

	return doc, nil
}

func (f *fileStore) save(doc map[string]json.RawMessage) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode storage file: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err = os.MkdirAll(dir, fileDirPerm); err != nil {
		log.Error().Err(err).Str("dir", dir).Msg("failed to create storage directory")

		return fmt.Errorf("failed to create storage directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	defer os.Remove(tmp.Name()) //nolint:errcheck

	if _, err = tmp.Write(raw); err != nil {
		tmp.Close()

		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err = os.Chmod(tmp.Name(), fileDataPerm); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}

	if err = os.Rename(tmp.Name(), f.path); err != nil {
		log.Error().Err(err).Str("path", f.path).Msg("failed to replace storage file")

		return fmt.Errorf("failed to replace storage file: %w", err)
	}

	return nil
}
