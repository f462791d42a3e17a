package rabbitmq

import (
	"fmt"

	"github.com/rabbitmq/amqp091-go"
)

const (
	NotificationExchange   = "notification_exchange"
	NotificationQueue      = "notification_queue"
	NotificationRoutingKey = "notification"
)

// dial opens a channel and declares the notification topology. Publisher and consumer
// both declare it so either side may start first.
func dial(host string, port int, user, password string) (*amqp091.Connection, *amqp091.Channel, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	err = channel.ExchangeDeclare(
		NotificationExchange, // name
		"direct",             // type
		true,                 // durable
		false,                // auto-delete
		false,                // internal
		false,                // no-wait
		nil,                  // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}

	_, err = channel.QueueDeclare(
		NotificationQueue, // name
		true,              // durable
		false,             // auto-delete
		false,             // exclusive
		false,             // no-wait
		nil,               // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}

	err = channel.QueueBind(NotificationQueue, NotificationRoutingKey, NotificationExchange, false, nil)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}

	return conn, channel, nil
}

func closeAll(conn *amqp091.Connection, channel *amqp091.Channel) error {
	if channel != nil {
		channel.Close()
	}
	if conn != nil {
		conn.Close()
	}
	return nil
}
