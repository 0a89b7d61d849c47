// Package rabbitmq publishes order lifecycle events to a RabbitMQ queue.
// Consumers drive buyer and baker notifications; the lifecycle engine never
// depends on delivery, so publishing stays best-effort.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"crumbsy/internal/core/ports"

	amqp "github.com/streadway/amqp"
)

const orderEventsQueue = "order_events"

// Publisher implements ports.EventPublisher on top of a RabbitMQ channel.
type Publisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// NewPublisher connects to RabbitMQ and declares the durable order events
// queue.
func NewPublisher(url string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		orderEventsQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare %s queue: %w", orderEventsQueue, err)
	}

	return &Publisher{
		conn:    conn,
		channel: ch,
	}, nil
}

// PublishOrderEvent publishes a lifecycle event as a persistent JSON message
// on the order events queue.
func (p *Publisher) PublishOrderEvent(_ context.Context, event ports.OrderEvent) error {
	if p.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	err = p.channel.Publish(
		"",               // default exchange
		orderEventsQueue, // routing key
		false,            // mandatory
		false,            // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		})
	if err != nil {
		return fmt.Errorf("failed to publish order event: %w", err)
	}

	return nil
}

// Close closes the RabbitMQ channel and connection.
func (p *Publisher) Close() error {
	var errs []error
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("errors occurred during publisher close: %v", errs)
	}
	return nil
}
