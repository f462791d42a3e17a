package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/muhammadheryan/vastu-shakti/application/notification"
	"github.com/muhammadheryan/vastu-shakti/cmd/config"
	"github.com/muhammadheryan/vastu-shakti/model"
	"github.com/muhammadheryan/vastu-shakti/thirdparty/mailer"
	"github.com/muhammadheryan/vastu-shakti/thirdparty/rabbitmq"
	"github.com/muhammadheryan/vastu-shakti/utils/logger"
	"github.com/muhammadheryan/vastu-shakti/utils/metrics"
	"go.uber.org/zap"
)

// notifier drains the notification queue and sends the emails.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, cfg.Email.SendTimeout)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	sender := notification.NewEmailSender(notification.NewRenderer(cfg.Business), mailer.NewSMTPMailer(cfg.Email))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	done, err := consumer.Start(ctx, func(ctx context.Context, n *model.Notification) error {
		err := sender.Send(ctx, n)
		metrics.RecordNotification(string(n.Kind), err == nil)
		return err
	})
	if err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}

	logger.Info("Notifier running", zap.String("queue", rabbitmq.NotificationQueue))

	select {
	case <-ctx.Done():
		logger.Info("Shutting down notifier")
	case <-done:
		logger.Warn("notification channel closed")
	}
	<-done
}
