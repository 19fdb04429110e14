// README: Booking service: creation, history reads, and the created-event publish.
package booking

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"bettercommute/internal/maps"
	"bettercommute/internal/modules/catalog"
	"bettercommute/internal/types"
)

var (
	ErrNotFound  = errors.New("booking not found")
	ErrForbidden = errors.New("booking belongs to another user")
)

// Publisher announces a created booking to the downstream dispatch process.
type Publisher interface {
	PublishBookingCreated(ctx context.Context, b Booking) error
}

// BookingStore is the persistence surface the service needs. *Store satisfies it.
type BookingStore interface {
	Create(ctx context.Context, b *Booking) (types.ID, error)
	Get(ctx context.Context, id types.ID) (*Booking, error)
	ListByUser(ctx context.Context, userID types.ID) ([]Booking, error)
}

type Service struct {
	store     BookingStore
	publisher Publisher
	log       *zap.Logger
	now       func() time.Time
}

func NewService(store BookingStore, publisher Publisher, log *zap.Logger) *Service {
	return &Service{store: store, publisher: publisher, log: log, now: time.Now}
}

// CreateCommand carries the validated inputs for a booking. The trip session
// guarantees all of them are present before Create is invocable.
type CreateCommand struct {
	UserID     types.ID
	From       types.Point
	To         types.Point
	Tier       catalog.VehicleTier
	Estimate   maps.RouteEstimate
	TotalPrice int64
}

// Create assembles and persists the booking, then announces it for dispatch.
// A publish failure does not fail the creation; the booking simply waits
// longer for a driver.
func (s *Service) Create(ctx context.Context, cmd CreateCommand) (types.ID, error) {
	b := Build(cmd.UserID, cmd.From, cmd.To, cmd.Tier, cmd.Estimate, cmd.TotalPrice, s.now().UTC())
	id, err := s.store.Create(ctx, &b)
	if err != nil {
		return "", err
	}

	if s.publisher != nil {
		if err := s.publisher.PublishBookingCreated(ctx, b); err != nil {
			s.log.Warn("booking.created publish failed",
				zap.String("booking_id", string(id)),
				zap.Error(err),
			)
		}
	}
	return id, nil
}

// Get returns a booking, refusing to serve records owned by another user.
func (s *Service) Get(ctx context.Context, userID, id types.ID) (*Booking, error) {
	b, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrForbidden
	}
	return b, nil
}

// ListByUser returns the user's booking history, newest first.
func (s *Service) ListByUser(ctx context.Context, userID types.ID) ([]Booking, error) {
	return s.store.ListByUser(ctx, userID)
}
