package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sync"

	"quickcourt/infras/otel"
	"quickcourt/internal/domains/review/model"
	"quickcourt/internal/state"
	"quickcourt/shared/constant"
	"quickcourt/shared/storage"

	"github.com/rs/zerolog/log"
)

const keyReviews = "reviews"

type Review interface {
	// UserReviews returns the reviews submitted for a facility, most recent first.
	UserReviews(ctx context.Context, facilityID string) ([]model.Review, error)
	Prepend(ctx context.Context, review model.Review) error
	Seeded(ctx context.Context, facilityID string) []model.Review
}

type repositoryImpl struct {
	mu    sync.Mutex
	store storage.Store
	state *state.State
	otel  otel.Otel
}

func New(store storage.Store, state *state.State, otel otel.Otel) Review {
	return &repositoryImpl{
		store: store,
		state: state,
		otel:  otel,
	}
}

func key(facilityID string) string {
	return storage.Key(keyReviews, facilityID)
}

func (r *repositoryImpl) UserReviews(ctx context.Context, facilityID string) (reviews []model.Review, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".review.UserReviews")
	defer scope.End()
	defer scope.TraceIfError(err)

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load(ctx, facilityID)
}

func (r *repositoryImpl) Prepend(ctx context.Context, review model.Review) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".review.Prepend")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		"review.id":          review.ID,
		"review.facility_id": review.FacilityID,
	})

	r.mu.Lock()
	defer r.mu.Unlock()

	reviews, err := r.load(ctx, review.FacilityID)
	if err != nil {
		return err
	}

	if err = storage.SetJSON(ctx, r.store, key(review.FacilityID), model.Prepend(review, reviews)); err != nil {
		log.Error().Err(err).Str("facility_id", review.FacilityID).Msg("failed to write reviews")

		return fmt.Errorf("failed to write reviews: %w", err)
	}

	return nil
}

func (r *repositoryImpl) Seeded(ctx context.Context, facilityID string) []model.Review {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".review.Seeded")
	defer scope.End()

	return r.state.SeededReviews(facilityID)
}

func (r *repositoryImpl) load(ctx context.Context, facilityID string) ([]model.Review, error) {
	var reviews []model.Review

	if _, err := storage.GetJSON(ctx, r.store, key(facilityID), &reviews); err != nil {
		log.Error().Err(err).Str("facility_id", facilityID).Msg("failed to read reviews")

		return nil, fmt.Errorf("failed to read reviews: %w", err)
	}

	for i := range reviews {
		reviews[i].Provenance = model.ProvenanceUser
	}

	return reviews, nil
}
