package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"quickcourt/infras/otel"
	"quickcourt/internal/domains/booking/model"
	"quickcourt/shared/constant"
	"quickcourt/shared/storage"

	"github.com/rs/zerolog/log"
)

// Booking is the persisted collection of confirmed booking records.
type Booking interface {
	List(ctx context.Context) ([]model.Booking, error)
	Append(ctx context.Context, booking model.Booking) error
}

// Flow holds in-progress booking flows for the session.
type Flow interface {
	Get(ctx context.Context, id string) (model.Flow, bool)
	Save(ctx context.Context, flow model.Flow)
}

type repositoryImpl struct {
	mu    sync.Mutex
	store storage.Store
	otel  otel.Otel
}

func New(store storage.Store, otel otel.Otel) Booking {
	return &repositoryImpl{
		store: store,
		otel:  otel,
	}
}

func (r *repositoryImpl) List(ctx context.Context) (bookings []model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.List")
	defer scope.End()
	defer scope.TraceIfError(err)

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load(ctx)
}

// Append reads, extends and writes back the collection. The write has
// completed when Append returns nil.
func (r *repositoryImpl) Append(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Append")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("booking.id", booking.ID)

	r.mu.Lock()
	defer r.mu.Unlock()

	bookings, err := r.load(ctx)
	if err != nil {
		return err
	}

	bookings = append(bookings, booking)

	if err = storage.SetJSON(ctx, r.store, model.KeyBookings, bookings); err != nil {
		log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to write bookings")

		return fmt.Errorf("failed to write bookings: %w", err)
	}

	return nil
}

func (r *repositoryImpl) load(ctx context.Context) ([]model.Booking, error) {
	var bookings []model.Booking

	if _, err := storage.GetJSON(ctx, r.store, model.KeyBookings, &bookings); err != nil {
		log.Error().Err(err).Msg("failed to read bookings")

		return nil, fmt.Errorf("failed to read bookings: %w", err)
	}

	if bookings == nil {
		bookings = []model.Booking{}
	}

	return bookings, nil
}

type flowRepositoryImpl struct {
	mu    sync.RWMutex
	flows map[string]model.Flow
	order []string
	limit int
}

const defaultFlowLimit = 1000

// NewFlow keeps at most limit flows, forgetting the oldest first.
func NewFlow(limit int) Flow {
	if limit <= 0 {
		limit = defaultFlowLimit
	}

	return &flowRepositoryImpl{
		flows: make(map[string]model.Flow),
		limit: limit,
	}
}

func (r *flowRepositoryImpl) Get(_ context.Context, id string) (model.Flow, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	flow, ok := r.flows[id]

	return flow, ok
}

func (r *flowRepositoryImpl) Save(_ context.Context, flow model.Flow) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.flows[flow.ID]; !exists {
		r.order = append(r.order, flow.ID)
	}

	r.flows[flow.ID] = flow

	for len(r.order) > r.limit {
		oldest := r.order[0]
		r.order = slices.Delete(r.order, 0, 1)
		delete(r.flows, oldest)
	}
}
