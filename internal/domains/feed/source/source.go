package source

//go:generate go run go.uber.org/mock/mockgen -source=./source.go -destination=../mocks/source_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"quickcourt/config"
	"quickcourt/infras/otel"
	"quickcourt/infras/s3"
	"quickcourt/internal/domains/feed/model"
	"quickcourt/shared/constant"

	"github.com/rs/zerolog/log"
)

var (
	ErrUnknownSource    = errors.New("unknown feed source")
	ErrUnexpectedStatus = errors.New("unexpected feed response status")
)

const httpTimeout = 15 * time.Second

// Source fetches the approved-facility feed.
type Source interface {
	Name() string
	Fetch(ctx context.Context) (model.Document, error)
}

type staticSource struct{}

// NewStatic is a feed with nothing in it. The catalog stays at the embedded seed.
func NewStatic() Source {
	return staticSource{}
}

func (staticSource) Name() string {
	return constant.FeedSourceStatic
}

func (staticSource) Fetch(_ context.Context) (model.Document, error) {
	return model.Document{}, nil
}

type httpSource struct {
	url    string
	client *http.Client
	otel   otel.Otel
}

func NewHTTP(url string, client *http.Client, otel otel.Otel) Source {
	if client == nil {
		client = &http.Client{Timeout: httpTimeout}
	}

	return &httpSource{
		url:    url,
		client: client,
		otel:   otel,
	}
}

func (s *httpSource) Name() string {
	return constant.FeedSourceHTTP
}

func (s *httpSource) Fetch(ctx context.Context) (doc model.Document, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".feed.http.Fetch")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("feed.url", s.url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return doc, fmt.Errorf("failed to build feed request: %w", err)
	}

	req.Header.Set("Accept", constant.ContentTypeJSON)

	resp, err := s.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("url", s.url).Msg("failed to fetch feed")

		return doc, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Error().Int("status", resp.StatusCode).Str("url", s.url).Msg("feed responded with unexpected status")

		return doc, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return doc, fmt.Errorf("failed to read feed body: %w", err)
	}

	return decode(body)
}

type s3Source struct {
	client s3.S3
	bucket string
	key    string
}

func NewS3(client s3.S3, bucket, key string) Source {
	return &s3Source{
		client: client,
		bucket: bucket,
		key:    key,
	}
}

func (s *s3Source) Name() string {
	return constant.FeedSourceS3
}

// Fetch treats a missing object as an empty feed.
func (s *s3Source) Fetch(ctx context.Context) (model.Document, error) {
	body, err := s.client.GetObject(ctx, s.bucket, s.key)
	if errors.Is(err, s3.ErrObjectNotFound) {
		log.Warn().Str("bucket", s.bucket).Str("key", s.key).Msg("feed object not found, treating feed as empty")

		return model.Document{}, nil
	}

	if err != nil {
		return model.Document{}, fmt.Errorf("failed to fetch feed object: %w", err)
	}

	return decode(body)
}

func decode(body []byte) (model.Document, error) {
	var doc model.Document

	if err := json.Unmarshal(body, &doc); err != nil {
		log.Error().Err(err).Msg("failed to decode feed document")

		return doc, fmt.Errorf("failed to decode feed document: %w", err)
	}

	return doc, nil
}

// New selects the source named by FEED_SOURCE. The S3 client is built only when needed.
func New(cfg *config.Config, otel otel.Otel) (Source, error) {
	switch cfg.Feed.Source {
	case "", constant.FeedSourceStatic:
		return NewStatic(), nil
	case constant.FeedSourceHTTP:
		return NewHTTP(cfg.Feed.URL, nil, otel), nil
	case constant.FeedSourceS3:
		client, err := s3.New(cfg, otel)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		return NewS3(client, cfg.Feed.Bucket, cfg.Feed.Key), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownSource, cfg.Feed.Source)
	}
}
