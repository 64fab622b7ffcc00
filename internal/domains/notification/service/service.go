package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Center=MockCenter

import (
	"context"
	"slices"
	"sync"
	"time"

	"quickcourt/config"
	"quickcourt/infras/otel"
	"quickcourt/internal/domains/notification/model"
	"quickcourt/shared/constant"
	"quickcourt/shared/failure"
	"quickcourt/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Center holds the notifications currently on display. Each one removes itself
// once its duration has passed.
type Center interface {
	Push(ctx context.Context, draft model.Draft) model.Notification
	Dismiss(ctx context.Context, id string) error
	Active(ctx context.Context) []model.Notification
	Close()
}

type entry struct {
	notification model.Notification
	timer        *time.Timer
}

type centerImpl struct {
	mu       sync.Mutex
	active   map[string]entry
	order    []string
	duration time.Duration
	otel     otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Center {
	millis := cfg.App.NotificationDurationMs
	if millis <= 0 {
		millis = constant.DefaultNotificationMillis
	}

	return newCenter(time.Duration(millis)*time.Millisecond, otel)
}

// NewWithDuration builds a center whose notifications expire after d.
func NewWithDuration(d time.Duration, otel otel.Otel) Center {
	return newCenter(d, otel)
}

func newCenter(d time.Duration, otel otel.Otel) *centerImpl {
	return &centerImpl{
		active:   make(map[string]entry),
		duration: d,
		otel:     otel,
	}
}

func (c *centerImpl) Push(ctx context.Context, draft model.Draft) model.Notification {
	_, scope := c.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".notification.Push")
	defer scope.End()

	if draft.Type == "" {
		draft.Type = model.TypeInfo
	}

	n := model.Notification{
		ID:        uuid.NewString(),
		Type:      draft.Type,
		Title:     draft.Title,
		Message:   draft.Message,
		Duration:  c.duration,
		CreatedAt: timezone.Now(),
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.active[n.ID] = entry{
		notification: n,
		timer:        time.AfterFunc(c.duration, func() { c.expire(n.ID) }),
	}
	c.order = append(c.order, n.ID)

	scope.SetAttribute("notification.id", n.ID)
	log.Debug().Str("notification_id", n.ID).Str("type", string(n.Type)).Str("title", n.Title).Msg("notification pushed")

	return n
}

func (c *centerImpl) expire(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.active[id]; ok {
		c.remove(id)
		log.Debug().Str("notification_id", id).Msg("notification expired")
	}
}

// remove expects c.mu to be held.
func (c *centerImpl) remove(id string) {
	delete(c.active, id)
	c.order = slices.DeleteFunc(c.order, func(v string) bool { return v == id })
}

func (c *centerImpl) Dismiss(ctx context.Context, id string) (err error) {
	_, scope := c.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".notification.Dismiss")
	defer scope.End()
	defer scope.TraceIfError(err)

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.active[id]
	if !ok {
		return failure.NotFound("notification not found") // nolint:wrapcheck
	}

	e.timer.Stop()
	c.remove(id)

	return nil
}

// Active lists live notifications, oldest first.
func (c *centerImpl) Active(ctx context.Context) []model.Notification {
	_, scope := c.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".notification.Active")
	defer scope.End()

	c.mu.Lock()
	defer c.mu.Unlock()

	res := make([]model.Notification, 0, len(c.order))
	for _, id := range c.order {
		res = append(res, c.active[id].notification)
	}

	return res
}

// Close stops every pending timer and clears the center.
func (c *centerImpl) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for id, e := range c.active {
		e.timer.Stop()
		delete(c.active, id)
	}

	c.order = nil
}
