package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Profile=MockProfileService

import (
	"context"
	"fmt"
	"sync"

	"quickcourt/infras/otel"
	"quickcourt/internal/domains/profile/model"
	"quickcourt/internal/domains/profile/model/dto"
	"quickcourt/internal/domains/profile/repository"
	"quickcourt/shared/constant"
	"quickcourt/shared/failure"
	"quickcourt/shared/timezone"
	"quickcourt/shared/validator"

	"github.com/rs/zerolog/log"
)

type Profile interface {
	Get(ctx context.Context, identity model.Identity) (dto.ProfileResponse, error)
	Update(ctx context.Context, identity model.Identity, req dto.UpdateProfileRequest) (dto.ProfileResponse, error)
}

type serviceImpl struct {
	mu   sync.Mutex
	repo repository.Profile
	otel otel.Otel
}

func New(repo repository.Profile, otel otel.Otel) Profile {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) load(ctx context.Context, identity model.Identity) (model.Profile, error) {
	profile, found, err := s.repo.Get(ctx, identity.UserID)
	if err != nil {
		return profile, failure.Persistence(err) //nolint:wrapcheck
	}

	if !found {
		return model.Default(identity), nil
	}

	// email belongs to the identity provider
	profile.Email = identity.Email

	return profile, nil
}

func (s *serviceImpl) Get(ctx context.Context, identity model.Identity) (res dto.ProfileResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".profile.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	profile, err := s.load(ctx, identity)
	if err != nil {
		return res, err
	}

	res.FromModel(profile)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, identity model.Identity, req dto.UpdateProfileRequest) (res dto.ProfileResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".profile.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.IsEmpty() {
		return res, failure.BadRequestFromString("profile update cannot be empty") // nolint:wrapcheck
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	profile, err := s.load(ctx, identity)
	if err != nil {
		return res, err
	}

	profile = req.Apply(profile)
	profile.UpdatedAt = timezone.Now()

	if err = s.repo.Save(ctx, profile); err != nil {
		log.Error().Err(err).Str("user_id", identity.UserID).Msg("failed to save profile")

		return res, failure.Persistence(fmt.Errorf("failed to save profile: %w", err)) //nolint:wrapcheck
	}

	log.Info().Str("user_id", identity.UserID).Msg("profile updated")

	res.FromModel(profile)

	return res, nil
}
