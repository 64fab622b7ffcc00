package rabbitmq

import (
	"context"
	"errors"
	"fmt"

	"quickcourt/config"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

const (
	exchangeKind  = "topic"
	prefetchCount = 10
)

var ErrDeliveriesClosed = errors.New("rabbitmq deliveries channel closed")

type Consumer struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	queue    string
}

// NewConsumer declares a durable topic exchange and queue and binds the queue with keys.
func NewConsumer(config *config.Config, queue string, keys []string) (*Consumer, error) {
	conn, err := amqp.Dial(config.RabbitMQ.URL)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to RabbitMQ")

		return nil, fmt.Errorf("failed to dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	exchange := config.RabbitMQ.Exchange

	if err = ch.ExchangeDeclare(exchange, exchangeKind, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()

		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()

		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	for _, key := range keys {
		if err = ch.QueueBind(q.Name, key, exchange, false, nil); err != nil {
			_ = ch.Close()
			_ = conn.Close()

			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	if err = ch.Qos(prefetchCount, 0, false); err != nil {
		log.Warn().Err(err).Msg("Failed to set RabbitMQ QoS")
	}

	log.Info().Str("exchange", exchange).Str("queue", q.Name).Strs("keys", keys).Msg("Connected to RabbitMQ")

	return &Consumer{
		conn:     conn,
		ch:       ch,
		exchange: exchange,
		queue:    q.Name,
	}, nil
}

// Consume acks each delivery the handler accepts and rejects the rest without requeue.
// It returns nil once ctx is cancelled.
func (c *Consumer) Consume(ctx context.Context, handler func(ctx context.Context, payload []byte) error) error {
	deliveries, err := c.ch.ConsumeWithContext(ctx, c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to consume queue: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			log.Info().Str("queue", c.queue).Msg("Consumer context done.")

			return nil
		case d, ok := <-deliveries:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}

				return ErrDeliveriesClosed
			}

			if err := handler(ctx, d.Body); err != nil {
				log.Error().Err(err).Str("queue", c.queue).Str("routing_key", d.RoutingKey).Msg("Failed to handle RabbitMQ message.")

				_ = d.Nack(false, false)

				continue
			}

			_ = d.Ack(false)
		}
	}
}

func (c *Consumer) Close() error {
	if c.ch != nil {
		_ = c.ch.Close()
	}

	if c.conn != nil {
		return c.conn.Close() //nolint:wrapcheck
	}

	return nil
}
