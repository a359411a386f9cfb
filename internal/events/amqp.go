package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const (
	exchangeName   = "mesapos.orders"
	publishTimeout = 10 * time.Second
)

// AMQPPublisher emits order events to a RabbitMQ topic exchange.
type AMQPPublisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	logger  *slog.Logger
}

// NewAMQPPublisher dials the broker and declares the orders exchange.
func NewAMQPPublisher(url string, logger *slog.Logger) (*AMQPPublisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := channel.ExchangeDeclare(exchangeName, "topic", true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &AMQPPublisher{conn: conn, channel: channel, logger: logger}, nil
}

// Close releases the channel and connection.
func (p *AMQPPublisher) Close() error {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

func (p *AMQPPublisher) OrderCreated(ctx context.Context, event OrderEvent) error {
	return p.publish(ctx, "order.created", event)
}

func (p *AMQPPublisher) OrderConfirmed(ctx context.Context, event OrderEvent) error {
	return p.publish(ctx, "order.confirmed", event)
}

func (p *AMQPPublisher) OrderStatusChanged(ctx context.Context, event OrderEvent) error {
	return p.publish(ctx, "order.status."+strings.ToLower(string(event.Status)), event)
}

func (p *AMQPPublisher) publish(ctx context.Context, routingKey string, event OrderEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(ctx, exchangeName, routingKey, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
	if err != nil {
		p.logger.Error("publish order event failed",
			slog.String("routing_key", routingKey),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("publish event: %w", err)
	}

	return nil
}
