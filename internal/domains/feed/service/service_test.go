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

	"quickcourt/infras/otel/mocks"
	catalogModel "quickcourt/internal/domains/catalog/model"
	feedMocks "quickcourt/internal/domains/feed/mocks"
	"quickcourt/internal/domains/feed/model"
	"quickcourt/internal/domains/feed/service"
	"quickcourt/internal/domains/feed/subscriber"
	notificationService "quickcourt/internal/domains/notification/service"
	"quickcourt/internal/state"
	"quickcourt/shared/failure"
)

func seedState() *state.State {
	return state.New(state.Seed{
		Facilities: []catalogModel.Facility{
			{ID: "f1", Name: "SportZone Arena", PricePerHour: decimal.NewFromInt(20)},
			{ID: "f2", Name: "Green Field", PricePerHour: decimal.NewFromInt(45)},
		},
	})
}

func feedOf(facilities ...catalogModel.Facility) model.Document {
	return model.Document{Facilities: facilities}
}

var smashHub = catalogModel.Facility{ID: "f7", Name: "Smash Hub", Location: "Kemang", PricePerHour: decimal.NewFromInt(35)}

func TestRefresher_IdempotentRefreshNotifiesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	src := feedMocks.NewMockSource(ctrl)
	src.EXPECT().Name().Return("mock").AnyTimes()
	src.EXPECT().Fetch(gomock.Any()).Return(feedOf(smashHub), nil).Times(2)

	center := notificationService.NewWithDuration(time.Hour, mocks.NewOtel())
	defer center.Close()

	st := seedState()
	refresher := service.New(st, src, mocks.NewOtel())
	refresher.Subscribe(subscriber.NewNotifier(center))

	diff, err := refresher.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"f7"}, diff.Added)

	active := center.Active(ctx)
	require.Len(t, active, 1)
	assert.Equal(t, "New facility available", active[0].Title)
	assert.Equal(t, "Smash Hub in Kemang", active[0].Message)

	diff, err = refresher.Refresh(ctx)
	require.NoError(t, err)
	assert.True(t, diff.IsEmpty())
	assert.Len(t, center.Active(ctx), 1, "an unchanged feed emits nothing")

	assert.Equal(t, 3, st.Catalog().Len())
	assert.Equal(t, 1, refresher.Status(ctx).LastKnownApprovedCount)
	assert.Len(t, refresher.ApprovedFacilities(ctx), 1)
}

func TestRefresher_DropsUnbookableFeedEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	freeCourt := catalogModel.Facility{ID: "f9", Name: "Free Court", Location: "Kemang", PricePerHour: decimal.NewFromInt(-5)}
	overrated := catalogModel.Facility{ID: "f10", Name: "Hype Arena", PricePerHour: decimal.NewFromInt(30), Rating: 9}

	src := feedMocks.NewMockSource(ctrl)
	src.EXPECT().Name().Return("mock").AnyTimes()
	src.EXPECT().Fetch(gomock.Any()).Return(feedOf(smashHub, freeCourt, overrated), nil)

	center := notificationService.NewWithDuration(time.Hour, mocks.NewOtel())
	defer center.Close()

	st := seedState()
	refresher := service.New(st, src, mocks.NewOtel())
	refresher.Subscribe(subscriber.NewNotifier(center))

	diff, err := refresher.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"f7"}, diff.Added)

	_, ok := st.Catalog().Find("f9")
	assert.False(t, ok, "a negative rate never reaches the catalog")

	_, ok = st.Catalog().Find("f10")
	assert.False(t, ok, "rating outside 0..5")

	assert.Len(t, center.Active(ctx), 1)
	assert.Equal(t, 1, refresher.Status(ctx).LastKnownApprovedCount)
}

func TestRefresher_ConcurrentTriggerIsRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	entered := make(chan struct{})
	release := make(chan struct{})

	src := feedMocks.NewMockSource(ctrl)
	src.EXPECT().Name().Return("mock").AnyTimes()
	src.EXPECT().Fetch(gomock.Any()).DoAndReturn(func(context.Context) (model.Document, error) {
		close(entered)
		<-release

		return feedOf(smashHub), nil
	}).Times(1)

	sub := feedMocks.NewMockSubscriber(ctrl)
	sub.EXPECT().OnDiff(gomock.Any(), gomock.Any()).Times(1)

	refresher := service.New(seedState(), src, mocks.NewOtel())
	refresher.Subscribe(sub)

	done := make(chan error, 1)

	go func() {
		_, err := refresher.Refresh(ctx)
		done <- err
	}()

	<-entered
	assert.True(t, refresher.IsRefreshing())
	assert.True(t, refresher.Status(ctx).IsRefreshing)

	_, err := refresher.Refresh(ctx)
	assert.ErrorIs(t, err, failure.RefreshInProgress)
	assert.Equal(t, 409, failure.GetCode(err))

	close(release)
	require.NoError(t, <-done)
	assert.False(t, refresher.IsRefreshing())
}

func TestRefresher_FailureKeepsCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	src := feedMocks.NewMockSource(ctrl)
	src.EXPECT().Name().Return("mock").AnyTimes()
	gomock.InOrder(
		src.EXPECT().Fetch(gomock.Any()).Return(feedOf(smashHub), nil),
		src.EXPECT().Fetch(gomock.Any()).Return(model.Document{}, errors.New("feed down")),
	)

	sub := feedMocks.NewMockSubscriber(ctrl)
	sub.EXPECT().OnDiff(gomock.Any(), gomock.Any()).Times(1)

	st := seedState()
	refresher := service.New(st, src, mocks.NewOtel())
	refresher.Subscribe(sub)

	_, err := refresher.Refresh(ctx)
	require.NoError(t, err)

	_, err = refresher.Refresh(ctx)
	require.Error(t, err)

	assert.False(t, refresher.IsRefreshing())
	assert.Equal(t, 3, st.Catalog().Len())

	status := refresher.Status(ctx)
	assert.Equal(t, "feed down", status.LastError)
	assert.Equal(t, 1, status.LastKnownApprovedCount)
	assert.NotEmpty(t, status.LastRefreshedAt)
}

func TestRefresher_RemovedFacility(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	src := feedMocks.NewMockSource(ctrl)
	src.EXPECT().Name().Return("mock").AnyTimes()
	gomock.InOrder(
		src.EXPECT().Fetch(gomock.Any()).Return(feedOf(smashHub), nil),
		src.EXPECT().Fetch(gomock.Any()).Return(feedOf(), nil),
	)

	var diffs []model.Diff

	sub := feedMocks.NewMockSubscriber(ctrl)
	sub.EXPECT().OnDiff(gomock.Any(), gomock.Any()).Do(func(_ context.Context, d model.Diff) {
		diffs = append(diffs, d)
	}).Times(2)

	refresher := service.New(seedState(), src, mocks.NewOtel())
	refresher.Subscribe(sub)

	_, err := refresher.Refresh(ctx)
	require.NoError(t, err)
	_, err = refresher.Refresh(ctx)
	require.NoError(t, err)

	require.Len(t, diffs, 2)
	assert.Equal(t, []string{"f7"}, diffs[1].Removed)
	assert.Empty(t, diffs[1].Added)
}
