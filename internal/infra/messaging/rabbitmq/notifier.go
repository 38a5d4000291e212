// Package rabbitmq publishes terminal job watch outcomes to a RabbitMQ topic exchange.
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/claimwatch/internal/jobwatch"
	"github.com/gabapcia/claimwatch/internal/pkg/resilience/retry"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	routingKeyPrefix = "jobwatch."
	messageType      = "jobwatch.outcome"
	contentType      = "application/json"
)

// publisher is the subset of *amqp.Channel used to publish.
type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type notifier struct {
	conn     *amqp.Connection
	channel  publisher
	closer   func() error
	exchange string
	retry    retry.Retry
}

var _ jobwatch.OutcomeNotifier = (*notifier)(nil)

// RoutingKey returns the routing key an outcome is published with, e.g. "jobwatch.done".
func RoutingKey(phase jobwatch.Phase) string {
	return routingKeyPrefix + string(phase)
}

// NotifyOutcome publishes s as a persistent JSON message routed by its phase.
func (n *notifier) NotifyOutcome(ctx context.Context, s jobwatch.Session) error {
	body, err := json.Marshal(s)
	if err != nil {
		return err
	}

	msg := amqp.Publishing{
		ContentType:  contentType,
		DeliveryMode: amqp.Persistent,
		MessageId:    s.ID,
		Type:         messageType,
		Timestamp:    s.UpdatedAt,
		Body:         body,
	}

	err = n.retry.Execute(ctx, func() error {
		return n.channel.PublishWithContext(ctx, n.exchange, RoutingKey(s.Phase), false, false, msg)
	})
	if err != nil {
		return fmt.Errorf("publish %s outcome of job %s: %w", s.Phase, s.JobID, err)
	}
	return nil
}

// Close closes the channel and then the connection.
func (n *notifier) Close() error {
	var errs []error
	if n.closer != nil {
		errs = append(errs, n.closer())
	}
	if n.conn != nil {
		errs = append(errs, n.conn.Close())
	}
	return errors.Join(errs...)
}

type config struct {
	publishAttempts uint
	publishDelay    time.Duration
}

type Option func(*config)

// WithPublishRetry sets how many times a publish is attempted and the base
// backoff between attempts. Default: 3 attempts from 100ms.
func WithPublishRetry(attempts uint, delay time.Duration) Option {
	return func(c *config) {
		c.publishAttempts = attempts
		c.publishDelay = delay
	}
}

func newNotifier(channel publisher, exchange string, opts ...Option) *notifier {
	cfg := config{
		publishAttempts: 3,
		publishDelay:    100 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &notifier{
		channel:  channel,
		exchange: exchange,
		retry: retry.New(
			retry.WithAttempts(cfg.publishAttempts),
			retry.WithBackoff(cfg.publishDelay, 10*cfg.publishDelay),
		),
	}
}

// NewNotifier dials url, opens a channel and declares exchange as a durable
// topic exchange.
func NewNotifier(url, exchange string, opts ...Option) (*notifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	n := newNotifier(channel, exchange, opts...)
	n.conn = conn
	n.closer = channel.Close
	return n, nil
}
