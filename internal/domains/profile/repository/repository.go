package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"quickcourt/infras/otel"
	"quickcourt/internal/domains/profile/model"
	"quickcourt/shared/constant"
	"quickcourt/shared/storage"

	"github.com/rs/zerolog/log"
)

type Profile interface {
	Get(ctx context.Context, userID string) (model.Profile, bool, error)
	Save(ctx context.Context, profile model.Profile) error
}

type repositoryImpl struct {
	store storage.Store
	otel  otel.Otel
}

func New(store storage.Store, otel otel.Otel) Profile {
	return &repositoryImpl{
		store: store,
		otel:  otel,
	}
}

func key(userID string) string {
	return storage.Key(model.KeyPrefix, userID)
}

func (r *repositoryImpl) Get(ctx context.Context, userID string) (profile model.Profile, found bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".profile.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	found, err = storage.GetJSON(ctx, r.store, key(userID), &profile)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to read profile")

		return profile, false, fmt.Errorf("failed to read profile: %w", err)
	}

	return profile, found, nil
}

func (r *repositoryImpl) Save(ctx context.Context, profile model.Profile) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".profile.Save")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = storage.SetJSON(ctx, r.store, key(profile.UserID), profile); err != nil {
		log.Error().Err(err).Str("user_id", profile.UserID).Msg("failed to write profile")

		return fmt.Errorf("failed to write profile: %w", err)
	}

	return nil
}
