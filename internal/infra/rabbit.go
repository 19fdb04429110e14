// README: RabbitMQ connection and channel setup for booking events.
package infra

import (
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Rabbit holds an AMQP connection and a single channel. The service publishes
// booking.created events and consumes driver assignments; one channel is
// enough for that traffic.
type Rabbit struct {
	Conn    *amqp.Connection
	Channel *amqp.Channel
}

func NewRabbit(url string) (*Rabbit, error) {
	conn, err := amqp.DialConfig(url, amqp.Config{Heartbeat: 10 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}
	return &Rabbit{Conn: conn, Channel: ch}, nil
}

func (r *Rabbit) Close() {
	_ = r.Channel.Close()
	_ = r.Conn.Close()
}
