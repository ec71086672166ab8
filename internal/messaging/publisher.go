// Package messaging publishes project lifecycle events to RabbitMQ so that
// downstream consumers (fulfillment, CRM sync) can react to confirmed
// projects without polling the API.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"legacy-server/internal/service"
)

type rabbitMQProjectPublisher struct {
	conn      *amqp.Connection
	channel   *amqp.Channel
	queueName string
	logger    *zap.Logger
}

var _ service.ProjectEventPublisher = (*rabbitMQProjectPublisher)(nil)

// NewRabbitMQProjectPublisher opens a channel on the given connection and
// declares the durable events queue. Queue parameters must match the
// consumer's declaration.
func NewRabbitMQProjectPublisher(conn *amqp.Connection, queueName string, logger *zap.Logger) (*rabbitMQProjectPublisher, error) {
	if conn == nil {
		return nil, fmt.Errorf("rabbitmq connection is nil")
	}

	ch, err := conn.Channel()
	if err != nil {
		logger.Error("Failed to open a channel for project events", zap.Error(err))
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		_ = ch.Close()
		logger.Error("Failed to declare project events queue", zap.String("queue", queueName), zap.Error(err))
		return nil, fmt.Errorf("failed to declare queue '%s': %w", queueName, err)
	}

	logger.Info("Project events queue declared", zap.String("queue", queueName))

	return &rabbitMQProjectPublisher{
		conn:      conn,
		channel:   ch,
		queueName: queueName,
		logger:    logger.Named("ProjectEventPublisher"),
	}, nil
}

// PublishProjectCompleted sends the event as a persistent JSON message to the
// events queue via the default exchange.
func (p *rabbitMQProjectPublisher) PublishProjectCompleted(ctx context.Context, event service.ProjectCompletedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("Failed to marshal project completed event", zap.Error(err), zap.String("projectID", event.ProjectID))
		return fmt.Errorf("failed to marshal project completed event: %w", err)
	}

	err = p.channel.PublishWithContext(ctx,
		"",          // exchange (default)
		p.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		p.logger.Error("Failed to publish project completed event",
			zap.Error(err),
			zap.String("queue", p.queueName),
			zap.String("projectID", event.ProjectID),
		)
		return fmt.Errorf("failed to publish to queue '%s': %w", p.queueName, err)
	}

	p.logger.Debug("Published project completed event",
		zap.String("queue", p.queueName),
		zap.String("projectID", event.ProjectID),
	)
	return nil
}

// Close releases the publisher's channel. The underlying connection is owned
// by the caller.
func (p *rabbitMQProjectPublisher) Close() error {
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			p.logger.Warn("Failed to close project events channel", zap.Error(err))
			return err
		}
	}
	return nil
}
