package kafka

import (
	"context"
	"errors"
	"fmt"

	"quickcourt/config"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

var ErrEmptyTopic = errors.New("kafka topic cannot be empty")

type Consumer struct {
	config *config.Config
	dialer *kafkaGo.Dialer
	topic  string
}

func NewConsumer(config *config.Config, topic string) (*Consumer, error) {
	if topic == "" {
		log.Error().Msg("Topic name cannot be empty when creating Kafka consumer")

		return nil, ErrEmptyTopic
	}

	dialer := &kafkaGo.Dialer{
		DualStack: true,
	}

	if config.Kafka.SASL.Username != "" {
		dialer.SASLMechanism = plain.Mechanism{
			Username: config.Kafka.SASL.Username,
			Password: config.Kafka.SASL.Password,
		}
	}

	log.Info().Strs("brokers", config.Kafka.Brokers).Str("topic", topic).Msg("Kafka consumer initialized")

	return &Consumer{
		config: config,
		dialer: dialer,
		topic:  topic,
	}, nil
}

func (k *Consumer) reader() *kafkaGo.Reader {
	return kafkaGo.NewReader(kafkaGo.ReaderConfig{
		Brokers:     k.config.Kafka.Brokers,
		Topic:       k.topic,
		GroupID:     k.config.Kafka.ConsumerGroup,
		Dialer:      k.dialer,
		StartOffset: kafkaGo.LastOffset,
	})
}

// Consume hands each message to handler in order and commits it whatever the
// handler returns. It returns nil once ctx is cancelled.
func (k *Consumer) Consume(ctx context.Context, handler func(ctx context.Context, payload []byte) error) error {
	reader := k.reader()

	defer func() {
		if err := reader.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close Kafka reader.")
		}
	}()

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info().Str("topic", k.topic).Msg("Consumer context done.")

				return nil
			}

			log.Error().Err(err).Str("topic", k.topic).Msg("Failed to read message from Kafka.")

			return fmt.Errorf("failed to read message from kafka: %w", err)
		}

		log.Info().Str("topic", k.topic).Str("key", string(msg.Key)).Int64("offset", msg.Offset).Msg("Received message from Kafka.")

		if err = handler(ctx, msg.Value); err != nil {
			log.Error().Err(err).Str("topic", k.topic).Int64("offset", msg.Offset).Msg("Failed to handle Kafka message.")
		}

		if err = reader.CommitMessages(ctx, msg); err != nil && ctx.Err() == nil {
			log.Error().Err(err).Str("topic", k.topic).Msg("Failed to commit Kafka message.")
		}
	}
}
