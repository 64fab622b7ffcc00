package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"quickcourt/infras/otel"
	catalogModel "quickcourt/internal/domains/catalog/model"
	"quickcourt/internal/domains/feed/model"
	"quickcourt/internal/domains/feed/model/dto"
	"quickcourt/internal/domains/feed/source"
	"quickcourt/internal/state"
	"quickcourt/shared/constant"
	"quickcourt/shared/failure"
	"quickcourt/shared/timezone"

	"github.com/rs/zerolog/log"
)

// Subscriber receives the diff of every completed refresh, empty or not.
type Subscriber interface {
	Name() string
	OnDiff(ctx context.Context, diff model.Diff)
}

type Refresher interface {
	Refresh(ctx context.Context) (model.Diff, error)
	IsRefreshing() bool
	ApprovedFacilities(ctx context.Context) []catalogModel.Facility
	Status(ctx context.Context) dto.StatusResponse
	Subscribe(subscriber Subscriber)
}

type refresherImpl struct {
	refreshing atomic.Bool

	mu              sync.RWMutex
	approved        []catalogModel.Facility
	lastRefreshedAt time.Time
	lastError       string
	subscribers     []Subscriber

	state  *state.State
	source source.Source
	otel   otel.Otel
}

func New(state *state.State, source source.Source, otel otel.Otel) Refresher {
	return &refresherImpl{
		state:  state,
		source: source,
		otel:   otel,
	}
}

func (r *refresherImpl) Subscribe(subscriber Subscriber) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.subscribers = append(r.subscribers, subscriber)
}

func (r *refresherImpl) IsRefreshing() bool {
	return r.refreshing.Load()
}

// Refresh re-reads the feed and installs seed plus feed as the new catalog.
// A call made while another refresh runs fails with a conflict and changes nothing.
func (r *refresherImpl) Refresh(ctx context.Context) (diff model.Diff, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".feed.Refresh")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !r.refreshing.CompareAndSwap(false, true) {
		return diff, failure.RefreshInProgress
	}
	defer r.refreshing.Store(false)

	doc, err := r.source.Fetch(ctx)
	if err != nil {
		log.Error().Err(err).Str("source", r.source.Name()).Msg("failed to refresh catalog")
		r.recordError(err)

		return diff, fmt.Errorf("failed to refresh catalog: %w", err)
	}

	seedFacilities, seedCourts := r.state.SeedCatalog()
	next := model.Merge(seedFacilities, seedCourts, doc)
	approved := model.Approved(seedFacilities, doc, next)
	previous := r.state.ReplaceCatalog(next)
	diff = model.ComputeDiff(previous, next)

	r.mu.Lock()
	r.approved = approved
	r.lastRefreshedAt = timezone.Now()
	r.lastError = ""
	subscribers := slices.Clone(r.subscribers)
	r.mu.Unlock()

	scope.SetAttributes(map[string]any{
		"feed.approved": len(approved),
		"feed.added":    len(diff.Added),
		"feed.removed":  len(diff.Removed),
	})

	for _, subscriber := range subscribers {
		subscriber.OnDiff(ctx, diff)
	}

	return diff, nil
}

func (r *refresherImpl) recordError(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastError = err.Error()
}

// ApprovedFacilities returns the feed as of the last successful refresh.
func (r *refresherImpl) ApprovedFacilities(_ context.Context) []catalogModel.Facility {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.approved)
}

func (r *refresherImpl) Status(_ context.Context) dto.StatusResponse {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return dto.StatusResponse{
		Source:                 r.source.Name(),
		IsRefreshing:           r.refreshing.Load(),
		LastKnownApprovedCount: len(r.approved),
		CatalogSize:            r.state.Catalog().Len(),
		LastRefreshedAt:        dto.FormatTime(r.lastRefreshedAt),
		LastError:              r.lastError,
	}
}
