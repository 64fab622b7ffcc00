package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickcourt/config"
	"quickcourt/infras/otel/mocks"
	"quickcourt/internal/domains/notification/model"
	"quickcourt/internal/domains/notification/service"
	"quickcourt/shared/failure"
)

func TestCenter_PushAndExpire(t *testing.T) {
	center := service.NewWithDuration(50*time.Millisecond, mocks.NewOtel())
	defer center.Close()

	ctx := context.Background()

	n := center.Push(ctx, model.Draft{Title: "New facility available", Message: "Smash Hub in Kemang"})
	assert.Equal(t, model.TypeInfo, n.Type)
	assert.Equal(t, 50*time.Millisecond, n.Duration)
	assert.Len(t, center.Active(ctx), 1)

	assert.Eventually(t, func() bool {
		return len(center.Active(ctx)) == 0
	}, time.Second, 10*time.Millisecond)
}

func TestCenter_ExpiryRemovesOnlyItsOwn(t *testing.T) {
	center := service.NewWithDuration(200*time.Millisecond, mocks.NewOtel())
	defer center.Close()

	ctx := context.Background()

	first := center.Push(ctx, model.Draft{Type: model.TypeSuccess, Title: "first"})

	time.Sleep(100 * time.Millisecond)

	second := center.Push(ctx, model.Draft{Type: model.TypeWarning, Title: "second"})

	assert.Eventually(t, func() bool {
		active := center.Active(ctx)

		return len(active) == 1 && active[0].ID == second.ID
	}, time.Second, 5*time.Millisecond)

	assert.NotEqual(t, first.ID, second.ID)

	assert.Eventually(t, func() bool {
		return len(center.Active(ctx)) == 0
	}, time.Second, 10*time.Millisecond)
}

func TestCenter_Dismiss(t *testing.T) {
	center := service.NewWithDuration(time.Hour, mocks.NewOtel())
	defer center.Close()

	ctx := context.Background()

	a := center.Push(ctx, model.Draft{Title: "a"})
	b := center.Push(ctx, model.Draft{Title: "b"})
	c := center.Push(ctx, model.Draft{Title: "c"})

	require.NoError(t, center.Dismiss(ctx, b.ID))

	active := center.Active(ctx)
	require.Len(t, active, 2)
	assert.Equal(t, a.ID, active[0].ID)
	assert.Equal(t, c.ID, active[1].ID)

	err := center.Dismiss(ctx, b.ID)
	assert.True(t, failure.IsNotFound(err))
}

func TestCenter_DurationFromConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.NotificationDurationMs = 1500

	center := service.New(cfg, mocks.NewOtel())
	defer center.Close()

	n := center.Push(context.Background(), model.Draft{Type: model.TypeError, Title: "x"})
	assert.Equal(t, 1500*time.Millisecond, n.Duration)

	cfg.App.NotificationDurationMs = 0

	fallback := service.New(cfg, mocks.NewOtel())
	defer fallback.Close()

	assert.Equal(t, 5*time.Second, fallback.Push(context.Background(), model.Draft{}).Duration)
}

func TestCenter_Close(t *testing.T) {
	center := service.NewWithDuration(time.Hour, mocks.NewOtel())
	ctx := context.Background()

	center.Push(ctx, model.Draft{Title: "a"})
	center.Close()

	assert.Empty(t, center.Active(ctx))
}
