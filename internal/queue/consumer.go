package queue

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// StartConsumer connects to the broker, declares both durable queues
// and logs each event as it arrives. It runs a reconnect loop with
// exponential backoff and never returns under normal operation, so
// callers start it on its own goroutine. Failed messages are rejected
// without requeue to avoid tight redelivery loops.
func StartConsumer(url string, log *zap.Logger) {
	backoff := time.Second
	for {
		conn, err := amqp.Dial(url)
		if err != nil {
			log.Warn("event consumer dial failed", zap.Error(err), zap.Duration("retry_in", backoff))
			time.Sleep(backoff)
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		if err := consumeLoop(conn, log); err != nil {
			log.Warn("event consumer loop ended", zap.Error(err))
			_ = conn.Close()
			time.Sleep(2 * time.Second)
		}
	}
}

func consumeLoop(conn *amqp.Connection, log *zap.Logger) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		log.Warn("set qos failed", zap.Error(err))
	}

	for _, name := range []string{UserRegisteredQueue, SubscriptionAssignedQueue} {
		if _, err := ch.QueueDeclare(name, true, false, false, false, nil); err != nil {
			return fmt.Errorf("queue declare %s: %w", name, err)
		}
	}

	users, err := ch.Consume(UserRegisteredQueue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume %s: %w", UserRegisteredQueue, err)
	}
	subs, err := ch.Consume(SubscriptionAssignedQueue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume %s: %w", SubscriptionAssignedQueue, err)
	}

	for {
		select {
		case d, ok := <-users:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			ack(d, handleUserRegistered(d.Body, log))
		case d, ok := <-subs:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			ack(d, handleSubscriptionAssigned(d.Body, log))
		}
	}
}

func ack(d amqp.Delivery, err error) {
	if err != nil {
		_ = d.Nack(false, false)
		return
	}
	_ = d.Ack(false)
}

func handleUserRegistered(body []byte, log *zap.Logger) error {
	var ev UserRegisteredEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	log.Info("user registered",
		zap.String("user_id", ev.UserID),
		zap.String("email", ev.Email),
		zap.String("role", ev.Role),
		zap.String("method", ev.Method))
	return nil
}

func handleSubscriptionAssigned(body []byte, log *zap.Logger) error {
	var ev SubscriptionAssignedEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	log.Info("subscription assigned",
		zap.String("subscription_id", ev.SubscriptionID),
		zap.String("customer_id", ev.CustomerID),
		zap.String("plan", ev.PlanName),
		zap.String("assigned_by", ev.AssignedBy))
	return nil
}
