package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Review=MockReviewService

import (
	"context"
	"fmt"

	"quickcourt/infras/otel"
	catalogService "quickcourt/internal/domains/catalog/service"
	"quickcourt/internal/domains/review/model"
	"quickcourt/internal/domains/review/model/dto"
	"quickcourt/internal/domains/review/repository"
	"quickcourt/shared/constant"
	"quickcourt/shared/failure"
	"quickcourt/shared/timezone"
	"quickcourt/shared/validator"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Review interface {
	Submit(ctx context.Context, facilityID string, req dto.SubmitReviewRequest) (dto.ReviewResponse, error)
	List(ctx context.Context, facilityID string) ([]dto.ReviewResponse, error)
	Aggregate(ctx context.Context, facilityID string) (dto.AggregateResponse, error)
}

type serviceImpl struct {
	repo    repository.Review
	catalog catalogService.Catalog
	otel    otel.Otel
}

func New(repo repository.Review, catalog catalogService.Catalog, otel otel.Otel) Review {
	return &serviceImpl{
		repo:    repo,
		catalog: catalog,
		otel:    otel,
	}
}

// Submit stores a user review in front of the facility's earlier ones.
// Nothing is written when validation fails.
func (s *serviceImpl) Submit(ctx context.Context, facilityID string, req dto.SubmitReviewRequest) (res dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".review.Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.catalog.Find(ctx, facilityID); err != nil {
		return res, err //nolint:wrapcheck
	}

	req.Normalize()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	id, err := uuid.NewV7()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate review id")

		return res, fmt.Errorf("failed to generate review id: %w", err)
	}

	review := model.Review{
		ID:         model.IDPrefix + id.String(),
		FacilityID: facilityID,
		UserName:   req.UserName,
		Rating:     req.Rating,
		Comment:    req.Comment,
		CreatedAt:  timezone.Now(),
		Provenance: model.ProvenanceUser,
	}

	if err = s.repo.Prepend(ctx, review); err != nil {
		log.Error().Err(err).Str("facility_id", facilityID).Msg("failed to persist review")

		return res, failure.Persistence(fmt.Errorf("failed to persist review: %w", err)) //nolint:wrapcheck
	}

	log.Info().Str("review_id", review.ID).Str("facility_id", facilityID).Int("rating", review.Rating).Msg("review submitted")

	res.FromModel(review)

	return res, nil
}

func (s *serviceImpl) visible(ctx context.Context, facilityID string) ([]model.Review, error) {
	if _, err := s.catalog.Find(ctx, facilityID); err != nil {
		return nil, err //nolint:wrapcheck
	}

	user, err := s.repo.UserReviews(ctx, facilityID)
	if err != nil {
		log.Error().Err(err).Str("facility_id", facilityID).Msg("failed to load reviews")

		return nil, failure.Persistence(fmt.Errorf("failed to load reviews: %w", err)) //nolint:wrapcheck
	}

	return model.Merge(user, s.repo.Seeded(ctx, facilityID)), nil
}

func (s *serviceImpl) List(ctx context.Context, facilityID string) (res []dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".review.List")
	defer scope.End()
	defer scope.TraceIfError(err)

	reviews, err := s.visible(ctx, facilityID)
	if err != nil {
		return nil, err
	}

	return dto.ReviewsFromModels(reviews), nil
}

func (s *serviceImpl) Aggregate(ctx context.Context, facilityID string) (res dto.AggregateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".review.Aggregate")
	defer scope.End()
	defer scope.TraceIfError(err)

	reviews, err := s.visible(ctx, facilityID)
	if err != nil {
		return res, err
	}

	res.FromModel(model.Summarize(reviews))

	return res, nil
}
