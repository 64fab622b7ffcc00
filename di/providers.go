package di

import (
	"fmt"
	"time"

	"quickcourt/config"
	"quickcourt/infras/kafka"
	"quickcourt/infras/otel"
	"quickcourt/infras/rabbitmq"
	bookingRepository "quickcourt/internal/domains/booking/repository"
	feedService "quickcourt/internal/domains/feed/service"
	"quickcourt/internal/domains/feed/source"
	"quickcourt/internal/domains/feed/subscriber"
	"quickcourt/internal/domains/feed/trigger"
	notificationService "quickcourt/internal/domains/notification/service"
	"quickcourt/internal/state"
	"quickcourt/shared/constant"
	"quickcourt/transport/http"

	"github.com/rs/zerolog/log"
)

// Runtime is everything cmd/app runs side by side.
type Runtime struct {
	HTTP   *http.HTTP
	Poller *trigger.Poller
	Push   *trigger.Push
	Center notificationService.Center
	Otel   otel.Otel
}

func provideFlowRepository() bookingRepository.Flow {
	return bookingRepository.NewFlow(0)
}

func provideRefresher(state *state.State, src source.Source, center notificationService.Center, otel otel.Otel) feedService.Refresher {
	refresher := feedService.New(state, src, otel)

	refresher.Subscribe(subscriber.NewLogger())
	refresher.Subscribe(subscriber.NewNotifier(center))

	return refresher
}

func providePoller(cfg *config.Config, refresher feedService.Refresher) *trigger.Poller {
	return trigger.NewPoller(refresher, time.Duration(cfg.App.RefreshIntervalSeconds)*time.Second)
}

// providePush connects the broker named by FEED_PUSH_DRIVER. Without one the
// returned trigger is nil.
func providePush(cfg *config.Config, refresher feedService.Refresher) (*trigger.Push, func(), error) {
	switch cfg.Feed.PushDriver {
	case constant.Empty:
		return nil, func() {}, nil
	case constant.FeedPushKafka:
		consumer, err := kafka.NewConsumer(cfg, cfg.Feed.Topic)
		if err != nil {
			return nil, nil, err //nolint:wrapcheck
		}

		return trigger.NewPush(refresher, consumer, constant.FeedPushKafka), func() {}, nil
	case constant.FeedPushRabbitMQ:
		consumer, err := rabbitmq.NewConsumer(cfg, cfg.Feed.Queue, cfg.Feed.Bindings)
		if err != nil {
			return nil, nil, err //nolint:wrapcheck
		}

		cleanup := func() {
			if err := consumer.Close(); err != nil {
				log.Error().Err(err).Msg("failed to close RabbitMQ consumer")
			}
		}

		return trigger.NewPush(refresher, consumer, constant.FeedPushRabbitMQ), cleanup, nil
	default:
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownPushDriver, cfg.Feed.PushDriver)
	}
}
