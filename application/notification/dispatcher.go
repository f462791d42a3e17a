package notification

import (
	"context"
	"sync"
	"time"

	"github.com/muhammadheryan/vastu-shakti/model"
	"github.com/muhammadheryan/vastu-shakti/utils/logger"
	"github.com/muhammadheryan/vastu-shakti/utils/metrics"
	"go.uber.org/zap"
)

// Dispatcher hands notifications off without blocking the caller. Failures are logged, never returned.
type Dispatcher interface {
	Dispatch(n *model.Notification)
}

type AsyncDispatcher struct {
	sender  Sender
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewDispatcher(sender Sender, timeout time.Duration) *AsyncDispatcher {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &AsyncDispatcher{sender: sender, timeout: timeout}
}

func (d *AsyncDispatcher) Dispatch(n *model.Notification) {
	if n == nil {
		return
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				metrics.RecordNotification(string(n.Kind), false)
				logger.Error("[Dispatch] panic while sending notification", zap.Any("panic", r), zap.String("kind", string(n.Kind)))
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		if err := d.sender.Send(ctx, n); err != nil {
			metrics.RecordNotification(string(n.Kind), false)
			logger.Error("[Dispatch] failed to send notification", zap.String("kind", string(n.Kind)), zap.String("error", err.Error()))
			return
		}
		metrics.RecordNotification(string(n.Kind), true)
		logger.Info("[Dispatch] notification sent", zap.String("kind", string(n.Kind)))
	}()
}

// Wait blocks until in-flight sends finish or ctx is done.
func (d *AsyncDispatcher) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
