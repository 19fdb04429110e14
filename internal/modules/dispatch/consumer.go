// README: Consumes driver assignments and fills them into booking records.
package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"bettercommute/internal/infra"
	"bettercommute/internal/types"
)

// AssignmentMessage is sent by the dispatch process once a driver accepts.
type AssignmentMessage struct {
	BookingID    string `json:"booking_id"`
	DriverName   string `json:"driver_name"`
	DriverMobile string `json:"driver_mobile"`
}

// AssignmentStore applies an assignment to the booking record.
// booking.Store satisfies it.
type AssignmentStore interface {
	AssignDriver(ctx context.Context, id types.ID, name, mobile string) error
}

var errEmptyAssignment = errors.New("assignment missing booking id")

// Consumer applies driver assignments from the dispatch queue.
type Consumer struct {
	rabbit   *infra.Rabbit
	queue    string
	exchange string
	store    AssignmentStore
	log      *zap.Logger
}

func NewConsumer(rabbit *infra.Rabbit, queue, exchange string, store AssignmentStore, log *zap.Logger) *Consumer {
	return &Consumer{rabbit: rabbit, queue: queue, exchange: exchange, store: store, log: log}
}

// Run declares and binds the assignment queue, then processes messages until
// the context is cancelled or the delivery channel closes.
func (c *Consumer) Run(ctx context.Context) error {
	q, err := c.rabbit.Channel.QueueDeclare(
		c.queue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare queue %q: %w", c.queue, err)
	}
	if err := c.rabbit.Channel.QueueBind(q.Name, "booking.assigned", c.exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue %q: %w", c.queue, err)
	}

	msgs, err := c.rabbit.Channel.Consume(
		q.Name,
		"",    // consumer tag
		true,  // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("consume %q: %w", c.queue, err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return errors.New("assignment delivery channel closed")
			}
			if err := c.handle(ctx, d.Body); err != nil {
				c.log.Warn("dropping assignment message", zap.Error(err))
			}
		}
	}
}

func (c *Consumer) handle(ctx context.Context, body []byte) error {
	var msg AssignmentMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return fmt.Errorf("decode assignment: %w", err)
	}
	if msg.BookingID == "" {
		return errEmptyAssignment
	}
	if err := c.store.AssignDriver(ctx, types.ID(msg.BookingID), msg.DriverName, msg.DriverMobile); err != nil {
		return fmt.Errorf("assign driver to %s: %w", msg.BookingID, err)
	}
	c.log.Info("driver assigned",
		zap.String("booking_id", msg.BookingID),
		zap.String("driver_name", msg.DriverName),
	)
	return nil
}
