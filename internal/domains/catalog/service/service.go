package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Catalog=MockCatalogService

import (
	"context"

	"quickcourt/infras/otel"
	"quickcourt/internal/domains/catalog/model"
	"quickcourt/internal/domains/catalog/model/dto"
	"quickcourt/internal/domains/catalog/repository"
	"quickcourt/shared/constant"
	"quickcourt/shared/failure"
	"quickcourt/shared/validator"
)

type Catalog interface {
	Snapshot(ctx context.Context) model.Snapshot
	Find(ctx context.Context, id string) (model.Facility, error)
	List(ctx context.Context) []model.Facility
	CourtsOf(ctx context.Context, facilityID string) ([]model.Court, error)
	Filter(ctx context.Context, req dto.FilterRequest) ([]model.Facility, error)
	Sports(ctx context.Context, req dto.SportsRequest) ([]string, error)
}

type serviceImpl struct {
	repo repository.Catalog
	otel otel.Otel
}

func New(repo repository.Catalog, otel otel.Otel) Catalog {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Snapshot(ctx context.Context) model.Snapshot {
	return s.repo.Snapshot(ctx)
}

func (s *serviceImpl) Find(ctx context.Context, id string) (facility model.Facility, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".catalog.Find")
	defer scope.End()
	defer scope.TraceIfError(err)

	facility, ok := s.repo.Snapshot(ctx).Find(id)
	if !ok {
		return facility, failure.NotFound("facility not found") // nolint:wrapcheck
	}

	return facility, nil
}

func (s *serviceImpl) List(ctx context.Context) []model.Facility {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".catalog.List")
	defer scope.End()

	return s.repo.Snapshot(ctx).Facilities()
}

func (s *serviceImpl) CourtsOf(ctx context.Context, facilityID string) (courts []model.Court, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".catalog.CourtsOf")
	defer scope.End()
	defer scope.TraceIfError(err)

	snap := s.repo.Snapshot(ctx)
	if _, ok := snap.Find(facilityID); !ok {
		return nil, failure.NotFound("facility not found") // nolint:wrapcheck
	}

	return snap.CourtsOf(facilityID), nil
}

// Filter applies every predicate of req. Results keep catalog order.
func (s *serviceImpl) Filter(ctx context.Context, req dto.FilterRequest) (facilities []model.Facility, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".catalog.Filter")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return nil, err //nolint:wrapcheck
	}

	filter := req.ToModel()
	snap := s.repo.Snapshot(ctx)

	facilities = []model.Facility{}

	for _, facility := range snap.Facilities() {
		if filter.Matches(facility, snap.CourtsOf(facility.ID)) {
			facilities = append(facilities, facility)
		}
	}

	scope.SetAttribute("catalog.matches", len(facilities))

	return facilities, nil
}

// Sports lists the sports of facilities admitted by the category, in first-seen order.
func (s *serviceImpl) Sports(ctx context.Context, req dto.SportsRequest) (sports []string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".catalog.Sports")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return nil, err //nolint:wrapcheck
	}

	category := model.Category(req.Category)
	snap := s.repo.Snapshot(ctx)
	seen := make(map[string]struct{})
	sports = []string{}

	for _, facility := range snap.Facilities() {
		if !category.Admits(snap.CourtsOf(facility.ID)) {
			continue
		}

		for _, sport := range facility.Sports {
			if _, ok := seen[sport]; ok {
				continue
			}

			seen[sport] = struct{}{}
			sports = append(sports, sport)
		}
	}

	return sports, nil
}
