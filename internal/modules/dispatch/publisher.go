// README: Publishes booking.created events to the dispatch exchange.
package dispatch

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"bettercommute/internal/infra"
	"bettercommute/internal/modules/booking"
)

const createdRoutingKey = "booking.created"

// BookingCreatedMessage is the wire shape consumed by the dispatch process.
type BookingCreatedMessage struct {
	BookingID   string  `json:"booking_id"`
	UserID      string  `json:"user_id"`
	FromLat     float64 `json:"from_lat"`
	FromLng     float64 `json:"from_lng"`
	ToLat       float64 `json:"to_lat"`
	ToLng       float64 `json:"to_lng"`
	VehicleTier string  `json:"vehicle_tier"`
	DistanceKm  float64 `json:"distance_km"`
	TotalPrice  int64   `json:"total_price"`
	CreatedAtMs int64   `json:"created_at_ms"`
}

// Publisher emits booking lifecycle events on a topic exchange.
type Publisher struct {
	rabbit   *infra.Rabbit
	exchange string
}

func NewPublisher(rabbit *infra.Rabbit, exchange string) (*Publisher, error) {
	err := rabbit.Channel.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("declare exchange %q: %w", exchange, err)
	}
	return &Publisher{rabbit: rabbit, exchange: exchange}, nil
}

// PublishBookingCreated announces a freshly persisted booking so a driver can
// be assigned to it.
func (p *Publisher) PublishBookingCreated(ctx context.Context, b booking.Booking) error {
	msg := BookingCreatedMessage{
		BookingID:   string(b.ID),
		UserID:      string(b.UserID),
		FromLat:     b.From.Lat,
		FromLng:     b.From.Lng,
		ToLat:       b.To.Lat,
		ToLng:       b.To.Lng,
		VehicleTier: b.VehicleTier,
		DistanceKm:  b.DistanceKm,
		TotalPrice:  b.TotalPrice,
		CreatedAtMs: b.CreatedAt.UnixMilli(),
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return p.rabbit.Channel.PublishWithContext(ctx,
		p.exchange,
		createdRoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}
