package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"fmt"
	"sync"
	"time"

	"quickcourt/config"
	"quickcourt/infras/otel"
	"quickcourt/internal/domains/booking/model"
	"quickcourt/internal/domains/booking/model/dto"
	"quickcourt/internal/domains/booking/repository"
	catalogService "quickcourt/internal/domains/catalog/service"
	"quickcourt/shared/constant"
	"quickcourt/shared/failure"
	"quickcourt/shared/timezone"
	"quickcourt/shared/validator"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Booking interface {
	Start(ctx context.Context, facilityID string) (dto.FlowResponse, error)
	Get(ctx context.Context, flowID string) (dto.FlowResponse, error)
	UpdateSelection(ctx context.Context, flowID string, req dto.UpdateSelectionRequest) (dto.FlowResponse, error)
	Proceed(ctx context.Context, flowID string) (dto.FlowResponse, error)
	Back(ctx context.Context, flowID string) (dto.FlowResponse, error)
	Confirm(ctx context.Context, flowID string, req dto.ConfirmRequest) (dto.BookingResponse, error)
	Abort(ctx context.Context, flowID string) error
	Quote(ctx context.Context, flowID string) (dto.QuoteResponse, error)
	Bookings(ctx context.Context) ([]dto.BookingResponse, error)
}

type serviceImpl struct {
	mu      sync.Mutex
	repo    repository.Booking
	flows   repository.Flow
	catalog catalogService.Catalog
	cfg     *config.Config
	otel    otel.Otel
	now     func() time.Time
}

func New(repo repository.Booking, flows repository.Flow, catalog catalogService.Catalog, cfg *config.Config, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:    repo,
		flows:   flows,
		catalog: catalog,
		cfg:     cfg,
		otel:    otel,
		now:     timezone.Now,
	}
}

func (s *serviceImpl) bounds(ctx context.Context) model.Bounds {
	return model.Bounds{
		Catalog:     s.catalog.Snapshot(ctx),
		Today:       timezone.DateOf(s.now()),
		HorizonDays: s.cfg.App.BookingHorizonDays,
	}
}

func (s *serviceImpl) response(ctx context.Context, flow model.Flow) dto.FlowResponse {
	var res dto.FlowResponse
	res.FromModel(flow)

	if flow.State.Terminal() {
		return res
	}

	if quote, err := flow.Quote(s.catalog.Snapshot(ctx)); err == nil {
		res.Quote = &dto.QuoteResponse{}
		res.Quote.FromModel(quote)
	}

	return res
}

func (s *serviceImpl) find(ctx context.Context, flowID string) (model.Flow, error) {
	flow, ok := s.flows.Get(ctx, flowID)
	if !ok {
		return flow, failure.NotFound("booking flow not found") // nolint:wrapcheck
	}

	return flow, nil
}

func (s *serviceImpl) Start(ctx context.Context, facilityID string) (res dto.FlowResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Start")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.catalog.Find(ctx, facilityID); err != nil {
		return res, err //nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	flow := model.NewFlow(uuid.NewString(), facilityID, user, s.now())

	s.flows.Save(ctx, flow)

	log.Info().Str("flow_id", flow.ID).Str("facility_id", facilityID).Msg("booking flow started")

	return s.response(ctx, flow), nil
}

func (s *serviceImpl) Get(ctx context.Context, flowID string) (res dto.FlowResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	flow, err := s.find(ctx, flowID)
	if err != nil {
		return res, err
	}

	return s.response(ctx, flow), nil
}

func (s *serviceImpl) UpdateSelection(ctx context.Context, flowID string, req dto.UpdateSelectionRequest) (res dto.FlowResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.UpdateSelection")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	patch, err := req.ToPatch()
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	return s.transition(ctx, flowID, func(flow model.Flow) (model.Flow, error) {
		return flow.ApplySelection(patch, s.bounds(ctx), s.now())
	})
}

func (s *serviceImpl) Proceed(ctx context.Context, flowID string) (res dto.FlowResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Proceed")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.transition(ctx, flowID, func(flow model.Flow) (model.Flow, error) {
		return flow.Proceed(s.now())
	})
}

func (s *serviceImpl) Back(ctx context.Context, flowID string) (res dto.FlowResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Back")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.transition(ctx, flowID, func(flow model.Flow) (model.Flow, error) {
		return flow.Back(s.now())
	})
}

func (s *serviceImpl) Abort(ctx context.Context, flowID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Abort")
	defer scope.End()
	defer scope.TraceIfError(err)

	_, err = s.transition(ctx, flowID, func(flow model.Flow) (model.Flow, error) {
		return flow.Abort(s.now())
	})

	return err
}

// transition applies step to the stored flow and saves the result only when step succeeds.
func (s *serviceImpl) transition(ctx context.Context, flowID string, step func(model.Flow) (model.Flow, error)) (res dto.FlowResponse, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	flow, err := s.find(ctx, flowID)
	if err != nil {
		return res, err
	}

	next, err := step(flow)
	if err != nil {
		return res, err
	}

	s.flows.Save(ctx, next)

	return s.response(ctx, next), nil
}

// Confirm prices the selection against the current catalog, stores the booking
// and only then marks the flow confirmed.
func (s *serviceImpl) Confirm(ctx context.Context, flowID string, req dto.ConfirmRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Confirm")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	flow, err := s.find(ctx, flowID)
	if err != nil {
		return res, err
	}

	bounds := s.bounds(ctx)

	if err = flow.CheckConfirmable(bounds); err != nil {
		return res, err //nolint:wrapcheck
	}

	quote, err := flow.Quote(bounds.Catalog)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	now := s.now()
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking := model.Booking{
		ID:          uuid.NewString(),
		FacilityID:  flow.FacilityID,
		CourtID:     flow.Selection.CourtID,
		UserID:      user,
		Date:        flow.Selection.Date,
		TimeSlot:    flow.Selection.TimeSlot,
		Duration:    flow.Selection.Duration,
		PersonCount: flow.Selection.PersonCount,
		TotalPrice:  quote.Total,
		Status:      model.StatusPending,
		UserDetails: req.ToModel(),
		CreatedAt:   now,
	}

	if err = s.repo.Append(ctx, booking); err != nil {
		log.Error().Err(err).Str("flow_id", flowID).Msg("failed to persist booking")

		return res, failure.Persistence(fmt.Errorf("failed to persist booking: %w", err)) //nolint:wrapcheck
	}

	s.flows.Save(ctx, flow.Confirmed(booking.ID, now))

	log.Info().
		Str("booking_id", booking.ID).
		Str("facility_id", booking.FacilityID).
		Str("total", booking.TotalPrice.String()).
		Msg("booking submitted")

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Quote(ctx context.Context, flowID string) (res dto.QuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Quote")
	defer scope.End()
	defer scope.TraceIfError(err)

	flow, err := s.find(ctx, flowID)
	if err != nil {
		return res, err
	}

	quote, err := flow.Quote(s.catalog.Snapshot(ctx))
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	res.FromModel(quote)

	return res, nil
}

func (s *serviceImpl) Bookings(ctx context.Context) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Bookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookings, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list bookings")

		return nil, failure.Persistence(fmt.Errorf("failed to list bookings: %w", err)) //nolint:wrapcheck
	}

	return dto.BookingsFromModels(bookings), nil
}
