package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"quickcourt/infras/otel/mocks"
	"quickcourt/internal/domains/booking/model"
	"quickcourt/internal/domains/booking/repository"
	"quickcourt/shared/storage"
	storageMocks "quickcourt/shared/storage/mocks"
	"quickcourt/shared/timezone"
)

func TestBookingRepository_AppendKeepsOrder(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	repo := repository.New(store, mocks.NewOtel())

	bookings, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, bookings)

	date, err := timezone.ParseDate("2024-06-03")
	require.NoError(t, err)

	for _, id := range []string{"b1", "b2", "b3"} {
		require.NoError(t, repo.Append(ctx, model.Booking{
			ID:         id,
			FacilityID: "f1",
			Date:       date,
			TotalPrice: decimal.NewFromInt(60),
			Status:     model.StatusPending,
			CreatedAt:  time.Now(),
		}))
	}

	bookings, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 3)
	assert.Equal(t, "b1", bookings[0].ID)
	assert.Equal(t, "b3", bookings[2].ID)
	assert.Equal(t, "2024-06-03", bookings[0].Date.String())
	assert.True(t, bookings[0].TotalPrice.Equal(decimal.NewFromInt(60)))

	raw, err := store.Get(ctx, model.KeyBookings)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"date":"2024-06-03"`)
}

func TestBookingRepository_AppendWriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := storageMocks.NewMockStore(ctrl)
	repo := repository.New(mockStore, mocks.NewOtel())

	mockStore.EXPECT().Get(gomock.Any(), model.KeyBookings).Return(nil, storage.ErrNotFound)
	mockStore.EXPECT().Set(gomock.Any(), model.KeyBookings, gomock.Any()).Return(errors.New("disk full"))

	err := repo.Append(context.Background(), model.Booking{ID: "b1"})
	assert.Error(t, err)
}

func TestBookingRepository_ReadFailureSkipsWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := storageMocks.NewMockStore(ctrl)
	repo := repository.New(mockStore, mocks.NewOtel())

	mockStore.EXPECT().Get(gomock.Any(), model.KeyBookings).Return(nil, errors.New("timeout"))

	assert.Error(t, repo.Append(context.Background(), model.Booking{ID: "b1"}))
}

func TestFlowRepository(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewFlow(2)

	for _, id := range []string{"a", "b", "c"} {
		repo.Save(ctx, model.Flow{ID: id})
	}

	_, ok := repo.Get(ctx, "a")
	assert.False(t, ok, "oldest flow is evicted past the limit")

	flow, ok := repo.Get(ctx, "c")
	assert.True(t, ok)
	assert.Equal(t, "c", flow.ID)

	repo.Save(ctx, model.Flow{ID: "b", State: model.FlowAborted})

	flow, ok = repo.Get(ctx, "b")
	assert.True(t, ok)
	assert.Equal(t, model.FlowAborted, flow.State)
}
