package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/muhammadheryan/vastu-shakti/model"
	"github.com/muhammadheryan/vastu-shakti/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// HandlerFunc processes one queued notification.
type HandlerFunc func(ctx context.Context, n *model.Notification) error

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	timeout time.Duration
}

func NewConsumer(host string, port int, user, password string, timeout time.Duration) (*Consumer, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Consumer{conn: conn, channel: channel, timeout: timeout}, nil
}

// Start consumes until ctx is done or the channel closes. Every delivery is acked after a
// single attempt, so a failed notification is logged and dropped rather than retried.
func (c *Consumer) Start(ctx context.Context, handle HandlerFunc) (<-chan struct{}, error) {
	// Set QoS to 1 - process one message at a time
	if err := c.channel.Qos(1, 0, false); err != nil {
		return nil, err
	}

	msgs, err := c.channel.Consume(
		NotificationQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}

				hctx, cancel := context.WithTimeout(ctx, c.timeout)
				if err := process(hctx, msg.Body, handle); err != nil {
					logger.Error("[Consumer] failed to process notification", zap.String("error", err.Error()))
				}
				cancel()

				if err := msg.Ack(false); err != nil {
					logger.Error("[Consumer] failed to ack message", zap.String("error", err.Error()))
				}
			}
		}
	}()

	return done, nil
}

func process(ctx context.Context, body []byte, handle HandlerFunc) error {
	var n model.Notification
	if err := json.Unmarshal(body, &n); err != nil {
		return fmt.Errorf("unmarshal notification: %w", err)
	}
	if err := handle(ctx, &n); err != nil {
		return fmt.Errorf("handle %s notification: %w", n.Kind, err)
	}
	return nil
}

func (c *Consumer) Close() error {
	return closeAll(c.conn, c.channel)
}
