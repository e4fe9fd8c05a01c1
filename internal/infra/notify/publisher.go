// Package notify delivers reservation confirmation events. Delivery is
// best-effort: failures are logged and returned, and callers are expected
// to ignore them rather than fail the request that produced the event.
package notify

import (
	"context"
	"log/slog"
	"time"

	"reserva-api/internal/pkg/config"

	amqp "github.com/rabbitmq/amqp091-go"
)

type Publisher interface {
	Publish(ctx context.Context, topic string, payload []byte) error
}

// AMQPPublisher publishes events to a durable RabbitMQ queue. A connection
// is dialed per publish; event volume is one message per reservation write,
// so connection churn is not a concern here.
type AMQPPublisher struct {
	url   string
	queue string
}

func NewAMQPPublisher(cfg config.AMQPConfig) *AMQPPublisher {
	return &AMQPPublisher{
		url:   cfg.URL,
		queue: cfg.Queue,
	}
}

func (p *AMQPPublisher) Publish(ctx context.Context, topic string, payload []byte) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		slog.Warn("rabbitmq dial failed", "error", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		slog.Warn("rabbitmq channel open failed", "error", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Idempotent; durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		slog.Warn("rabbitmq queue declare failed", "queue", p.queue, "error", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Type:         topic,
		Body:         payload,
	}

	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, pub); err != nil {
		slog.Warn("rabbitmq publish failed", "queue", p.queue, "error", err)
		return err
	}

	return nil
}

// LogPublisher is the simulated delivery channel used when no broker is
// configured: the event is only written to the structured log.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, topic string, payload []byte) error {
	p.logger.Info("notification", "topic", topic, "payload", string(payload))
	return nil
}
