package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher sends rental approval events to RabbitMQ. Each publish dials a
// fresh connection so a broker restart never leaves the service holding a
// dead channel; rental traffic is low enough that this costs nothing.
type Publisher struct {
	url string
	log *zap.Logger
}

func NewPublisher(url string, log *zap.Logger) *Publisher {
	return &Publisher{
		url: url,
		log: log.With(zap.String("component", "queue")),
	}
}

// PublishRentalRequested publishes a RentalRequestedEvent to the queue for
// its kind ("rental.rent" or "rental.borrow"). Errors are logged and
// returned so callers can treat the queue as best-effort.
func (p *Publisher) PublishRentalRequested(ctx context.Context, kind string, event RentalRequestedEvent) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.log.Error("Failed to dial broker", zap.Error(err))
		return fmt.Errorf("dial broker: %w", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		p.log.Error("Failed to open channel", zap.Error(err))
		return fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	queueName := "rental." + kind

	// Idempotent declare; durable so requests survive broker restarts
	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		p.log.Error("Failed to declare queue",
			zap.Error(err),
			zap.String("queue", queueName),
		)
		return fmt.Errorf("declare queue %s: %w", queueName, err)
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal rental event: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", queueName, false, false, pub); err != nil {
		p.log.Error("Failed to publish rental event",
			zap.Error(err),
			zap.String("queue", queueName),
			zap.String("request_id", event.RequestID),
		)
		return fmt.Errorf("publish to %s: %w", queueName, err)
	}

	p.log.Info("Rental event published",
		zap.String("queue", queueName),
		zap.String("request_id", event.RequestID),
	)

	return nil
}
