// Package service holds the best-effort event publisher. Errors are
// logged and returned so request handlers can ignore broker failures
// without interrupting the main flow.
package service

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/fitcore/gym-management/internal/queue"
)

// Publisher sends domain events to RabbitMQ. A nil Publisher or one
// built with an empty URL turns every publish into a no-op, which is
// how deployments without a broker run.
type Publisher struct {
	url string
	log *zap.Logger
}

func NewPublisher(url string, log *zap.Logger) *Publisher {
	return &Publisher{url: url, log: log}
}

// PublishUserRegistered fires a user-registered event.
func (p *Publisher) PublishUserRegistered(ctx context.Context, ev queue.UserRegisteredEvent) error {
	return p.publish(ctx, queue.UserRegisteredQueue, ev)
}

// PublishSubscriptionAssigned fires a subscription-assigned event.
func (p *Publisher) PublishSubscriptionAssigned(ctx context.Context, ev queue.SubscriptionAssignedEvent) error {
	return p.publish(ctx, queue.SubscriptionAssignedQueue, ev)
}

// publish dials per message. Event volume here is a trickle (sign-ups
// and subscription assignments), so a pooled channel is not worth the
// reconnect bookkeeping.
func (p *Publisher) publish(ctx context.Context, queueName string, event any) error {
	if p == nil || p.url == "" {
		return nil
	}
	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.log.Warn("event publish dial failed", zap.String("queue", queueName), zap.Error(err))
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.log.Warn("event publish channel failed", zap.String("queue", queueName), zap.Error(err))
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		p.log.Warn("event queue declare failed", zap.String("queue", queueName), zap.Error(err))
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.log.Warn("event marshal failed", zap.String("queue", queueName), zap.Error(err))
		return err
	}

	err = ch.PublishWithContext(ctx, "", queueName, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		p.log.Warn("event publish failed", zap.String("queue", queueName), zap.Error(err))
		return err
	}
	return nil
}
