package trigger

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"quickcourt/internal/domains/feed/model/dto"
	"quickcourt/internal/domains/feed/service"
	"quickcourt/shared/failure"

	"github.com/rs/zerolog/log"
)

// Poller refreshes the catalog on a fixed interval until its context ends.
type Poller struct {
	refresher service.Refresher
	interval  time.Duration
}

func NewPoller(refresher service.Refresher, interval time.Duration) *Poller {
	return &Poller{
		refresher: refresher,
		interval:  interval,
	}
}

// Run blocks until ctx is cancelled. A non-positive interval disables polling.
func (p *Poller) Run(ctx context.Context) error {
	if p.interval <= 0 {
		log.Info().Msg("feed polling disabled")

		return nil
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	log.Info().Dur("interval", p.interval).Msg("feed polling started")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("feed polling stopped")

			return nil
		case <-ticker.C:
			_ = refresh(ctx, p.refresher, "poll")
		}
	}
}

func refresh(ctx context.Context, refresher service.Refresher, trigger string) error {
	_, err := refresher.Refresh(ctx)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, failure.RefreshInProgress):
		log.Debug().Str("trigger", trigger).Msg("refresh skipped, another one is running")

		return nil
	default:
		log.Error().Err(err).Str("trigger", trigger).Msg("triggered refresh failed")

		return err
	}
}

// Consumer delivers broker messages to handler until ctx ends.
type Consumer interface {
	Consume(ctx context.Context, handler func(ctx context.Context, payload []byte) error) error
}

// Push runs one refresh per message delivered by a broker.
type Push struct {
	refresher service.Refresher
	consumer  Consumer
	name      string
}

func NewPush(refresher service.Refresher, consumer Consumer, name string) *Push {
	return &Push{
		refresher: refresher,
		consumer:  consumer,
		name:      name,
	}
}

// Run blocks until ctx is cancelled. A nil Push has no broker and returns at once.
func (p *Push) Run(ctx context.Context) error {
	if p == nil {
		log.Info().Msg("feed push trigger disabled")

		return nil
	}

	log.Info().Str("driver", p.name).Msg("feed push trigger started")

	return p.consumer.Consume(ctx, p.Handle) //nolint:wrapcheck
}

// Handle accepts any payload. A JSON event body is only used for logging.
func (p *Push) Handle(ctx context.Context, payload []byte) error {
	var event dto.PushEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		log.Debug().Err(err).Str("driver", p.name).Msg("push payload is not an event document")
	}

	log.Info().Str("driver", p.name).Str("facility_id", event.FacilityID).Str("reason", event.Reason).Msg("push refresh requested")

	return refresh(ctx, p.refresher, p.name)
}
