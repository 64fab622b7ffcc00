package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"quickcourt/config"
	"quickcourt/infras/otel/mocks"
	bookingMocks "quickcourt/internal/domains/booking/mocks"
	"quickcourt/internal/domains/booking/model"
	"quickcourt/internal/domains/booking/model/dto"
	"quickcourt/internal/domains/booking/repository"
	"quickcourt/internal/domains/booking/service"
	catalogMocks "quickcourt/internal/domains/catalog/mocks"
	catalogModel "quickcourt/internal/domains/catalog/model"
	"quickcourt/shared/failure"
	"quickcourt/shared/timezone"
)

func ptr[T any](v T) *T {
	return &v
}

type fixture struct {
	svc   service.Booking
	repo  *bookingMocks.MockBooking
	flows repository.Flow
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	snapshot := catalogModel.NewSnapshot(
		[]catalogModel.Facility{{ID: "f1", Name: "SportZone Arena", PricePerHour: decimal.NewFromInt(20)}},
		[]catalogModel.Court{{ID: "c1", FacilityID: "f1", PricePerHour: decimal.NewFromInt(30)}},
	)

	catalog := catalogMocks.NewMockCatalogService(ctrl)
	catalog.EXPECT().Snapshot(gomock.Any()).Return(snapshot).AnyTimes()
	catalog.EXPECT().Find(gomock.Any(), "f1").Return(snapshot.Facilities()[0], nil).AnyTimes()
	catalog.EXPECT().Find(gomock.Any(), gomock.Not("f1")).Return(catalogModel.Facility{}, failure.NotFound("facility not found")).AnyTimes()

	cfg := &config.Config{}
	cfg.App.BookingHorizonDays = 14

	repo := bookingMocks.NewMockBooking(ctrl)
	flows := repository.NewFlow(0)

	return fixture{
		svc:   service.New(repo, flows, catalog, cfg, mocks.NewOtel()),
		repo:  repo,
		flows: flows,
	}
}

func tomorrow() string {
	return timezone.DateOf(timezone.Now()).AddDays(1).String()
}

// reviewing drives a fresh flow to the contact form with court c1 for two hours.
func (f fixture) reviewing(t *testing.T) string {
	t.Helper()

	ctx := context.Background()

	flow, err := f.svc.Start(ctx, "f1")
	require.NoError(t, err)

	_, err = f.svc.UpdateSelection(ctx, flow.ID, dto.UpdateSelectionRequest{
		CourtID:  ptr("c1"),
		Date:     ptr(tomorrow()),
		TimeSlot: ptr("18:00"),
		Duration: ptr(2),
	})
	require.NoError(t, err)

	res, err := f.svc.Proceed(ctx, flow.ID)
	require.NoError(t, err)
	require.Equal(t, string(model.FlowReviewingForm), res.State)

	return flow.ID
}

var validDetails = dto.ConfirmRequest{
	Email:   "player@example.com",
	Phone:   "+62 812 0000 0000",
	Address: "Jl. Sudirman 1",
}

func TestBookingService_Start(t *testing.T) {
	f := newFixture(t)

	res, err := f.svc.Start(context.Background(), "f1")
	require.NoError(t, err)
	assert.Equal(t, string(model.FlowBrowsing), res.State)
	require.NotNil(t, res.Quote)
	assert.True(t, res.Quote.Total.Equal(decimal.NewFromInt(20)), "defaults price one hour at the facility rate")

	_, err = f.svc.Start(context.Background(), "missing")
	assert.True(t, failure.IsNotFound(err))
}

func TestBookingService_ProceedRequiresSelection(t *testing.T) {
	tests := []struct {
		name string
		req  dto.UpdateSelectionRequest
	}{
		{name: "missing court", req: dto.UpdateSelectionRequest{Date: ptr(tomorrow()), TimeSlot: ptr("18:00")}},
		{name: "missing date", req: dto.UpdateSelectionRequest{CourtID: ptr("c1"), TimeSlot: ptr("18:00")}},
		{name: "missing time", req: dto.UpdateSelectionRequest{CourtID: ptr("c1"), Date: ptr(tomorrow())}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()

			flow, err := f.svc.Start(ctx, "f1")
			require.NoError(t, err)

			before, err := f.svc.UpdateSelection(ctx, flow.ID, tt.req)
			require.NoError(t, err)

			_, err = f.svc.Proceed(ctx, flow.ID)
			assert.True(t, failure.IsValidation(err))
			assert.Contains(t, err.Error(), "please select")

			after, err := f.svc.Get(ctx, flow.ID)
			require.NoError(t, err)
			assert.Equal(t, before, after)

			_, err = f.svc.Confirm(ctx, flow.ID, validDetails)
			assert.True(t, failure.IsValidation(err), "no booking without the contact form")
		})
	}
}

func TestBookingService_Confirm(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	flowID := f.reviewing(t)

	var stored model.Booking

	f.repo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b model.Booking) error {
		stored = b

		flow, ok := f.flows.Get(ctx, flowID)
		require.True(t, ok)
		assert.Equal(t, model.FlowReviewingForm, flow.State, "flow is confirmed only after the write")

		return nil
	})

	res, err := f.svc.Confirm(ctx, flowID, validDetails)
	require.NoError(t, err)

	assert.Equal(t, stored.ID, res.ID)
	assert.Equal(t, string(model.StatusPending), res.Status)
	assert.True(t, res.TotalPrice.Equal(decimal.NewFromInt(60)))
	assert.Equal(t, "c1", stored.CourtID)
	assert.Equal(t, tomorrow(), stored.Date.String())
	assert.Equal(t, "player@example.com", stored.UserDetails.Email)

	flow, err := f.svc.Get(ctx, flowID)
	require.NoError(t, err)
	assert.Equal(t, string(model.FlowConfirmed), flow.State)
	assert.Equal(t, stored.ID, flow.BookingID)

	_, err = f.svc.Confirm(ctx, flowID, validDetails)
	assert.True(t, failure.IsValidation(err), "a confirmed flow cannot book twice")
}

func TestBookingService_ConfirmRechecksBookingWindow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	flowID := f.reviewing(t)

	later := timezone.Now().AddDate(0, 0, 3)
	service.SetClock(f.svc, func() time.Time { return later })

	_, err := f.svc.Confirm(ctx, flowID, validDetails)
	require.Error(t, err)
	assert.True(t, failure.IsValidation(err))
	assert.Contains(t, err.Error(), "booking window")

	flow, err := f.svc.Get(ctx, flowID)
	require.NoError(t, err)
	assert.Equal(t, string(model.FlowReviewingForm), flow.State, "a stale date leaves the form open")
	assert.Empty(t, flow.BookingID)

	_, err = f.svc.Back(ctx, flowID)
	require.NoError(t, err)

	_, err = f.svc.UpdateSelection(ctx, flowID, dto.UpdateSelectionRequest{
		Date: ptr(timezone.DateOf(later).AddDays(1).String()),
	})
	require.NoError(t, err)

	_, err = f.svc.Proceed(ctx, flowID)
	require.NoError(t, err)

	f.repo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

	res, err := f.svc.Confirm(ctx, flowID, validDetails)
	require.NoError(t, err)
	assert.Equal(t, timezone.DateOf(later).AddDays(1).String(), res.Date)
}

func TestBookingService_ConfirmPersistenceFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	flowID := f.reviewing(t)

	f.repo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	_, err := f.svc.Confirm(ctx, flowID, validDetails)
	assert.True(t, failure.IsPersistence(err))

	flow, err := f.svc.Get(ctx, flowID)
	require.NoError(t, err)
	assert.Equal(t, string(model.FlowReviewingForm), flow.State)
	assert.Empty(t, flow.BookingID)

	f.repo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

	_, err = f.svc.Confirm(ctx, flowID, validDetails)
	assert.NoError(t, err, "the user can retry after a failed write")
}

func TestBookingService_ConfirmValidatesDetails(t *testing.T) {
	tests := []struct {
		name string
		req  dto.ConfirmRequest
	}{
		{name: "bad email", req: dto.ConfirmRequest{Email: "nope", Phone: "1", Address: "a"}},
		{name: "blank phone", req: dto.ConfirmRequest{Email: "a@b.co", Phone: "   ", Address: "a"}},
		{name: "missing address", req: dto.ConfirmRequest{Email: "a@b.co", Phone: "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			flowID := f.reviewing(t)

			_, err := f.svc.Confirm(context.Background(), flowID, tt.req)
			assert.True(t, failure.IsValidation(err))

			flow, err := f.svc.Get(context.Background(), flowID)
			require.NoError(t, err)
			assert.Equal(t, string(model.FlowReviewingForm), flow.State)
		})
	}
}

func TestBookingService_BackAndAbort(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	flowID := f.reviewing(t)

	res, err := f.svc.Back(ctx, flowID)
	require.NoError(t, err)
	assert.Equal(t, string(model.FlowSelecting), res.State)
	assert.Equal(t, "18:00", res.Selection.TimeSlot)

	require.NoError(t, f.svc.Abort(ctx, flowID))

	_, err = f.svc.Proceed(ctx, flowID)
	assert.True(t, failure.IsValidation(err))

	_, err = f.svc.Get(ctx, "unknown")
	assert.True(t, failure.IsNotFound(err))
}

func TestBookingService_Quote(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	flow, err := f.svc.Start(ctx, "f1")
	require.NoError(t, err)

	_, err = f.svc.UpdateSelection(ctx, flow.ID, dto.UpdateSelectionRequest{Duration: ptr(3)})
	require.NoError(t, err)

	quote, err := f.svc.Quote(ctx, flow.ID)
	require.NoError(t, err)
	assert.True(t, quote.Total.Equal(decimal.NewFromInt(60)))
	assert.Equal(t, 3, quote.Hours)
}

func TestBookingService_Bookings(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().List(gomock.Any()).Return([]model.Booking{{ID: "b1", Status: model.StatusPending}}, nil)

	res, err := f.svc.Bookings(context.Background())
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "b1", res[0].ID)

	f.repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("boom"))

	_, err = f.svc.Bookings(context.Background())
	assert.True(t, failure.IsPersistence(err))
}
