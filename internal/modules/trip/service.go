// README: Trip service orchestrates place resolution, routing, tier choice, and confirmation.
package trip

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"bettercommute/internal/maps"
	"bettercommute/internal/modules/booking"
	"bettercommute/internal/modules/catalog"
	"bettercommute/internal/modules/pricing"
	"bettercommute/internal/types"
)

var (
	// ErrPlaceNotFound means the selected prediction could not be resolved
	// to a coordinate.
	ErrPlaceNotFound = errors.New("place not found")
	// ErrInvalidState means the operation is not legal in the session's
	// current state, e.g. selecting a tier before a route is computed.
	ErrInvalidState = errors.New("invalid session state")
	// ErrNotConfirmable means confirmation was attempted without all four
	// required inputs present.
	ErrNotConfirmable = errors.New("trip is not confirmable")
)

// PlaceResolver resolves a place ID to a coordinate. maps.PlacesService satisfies it.
type PlaceResolver interface {
	Resolve(ctx context.Context, placeID string) (types.Point, bool)
}

// RouteProvider computes a route estimate. maps.RouteService satisfies it.
// It never fails; the empty estimate is its fallback.
type RouteProvider interface {
	Route(ctx context.Context, origin, destination types.Point) maps.RouteEstimate
}

// TierProvider looks up vehicle tiers. catalog.Service satisfies it.
type TierProvider interface {
	Get(ctx context.Context, name string) (catalog.VehicleTier, error)
}

// BookingCreator persists a confirmed trip. booking.Service satisfies it.
type BookingCreator interface {
	Create(ctx context.Context, cmd booking.CreateCommand) (types.ID, error)
}

type Service struct {
	store    SessionStore
	places   PlaceResolver
	routes   RouteProvider
	tiers    TierProvider
	bookings BookingCreator
	log      *zap.Logger
}

func NewService(store SessionStore, places PlaceResolver, routes RouteProvider, tiers TierProvider, bookings BookingCreator, log *zap.Logger) *Service {
	return &Service{
		store:    store,
		places:   places,
		routes:   routes,
		tiers:    tiers,
		bookings: bookings,
		log:      log,
	}
}

// Get returns the user's current session, a fresh empty one if none exists.
func (s *Service) Get(ctx context.Context, userID types.ID) (*Session, error) {
	sess, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		sess = NewSession(userID)
	}
	return sess, nil
}

// SetOrigin resolves the place and records it as the trip origin, then
// recomputes the route if the destination is already set.
func (s *Service) SetOrigin(ctx context.Context, userID types.ID, placeID, label string) (*Session, error) {
	return s.setEndpoint(ctx, userID, placeID, label, func(sess *Session, e Endpoint) int {
		return sess.SetOrigin(e)
	})
}

// SetDestination resolves the place and records it as the trip destination,
// then recomputes the route if the origin is already set.
func (s *Service) SetDestination(ctx context.Context, userID types.ID, placeID, label string) (*Session, error) {
	return s.setEndpoint(ctx, userID, placeID, label, func(sess *Session, e Endpoint) int {
		return sess.SetDestination(e)
	})
}

func (s *Service) setEndpoint(ctx context.Context, userID types.ID, placeID, label string, apply func(*Session, Endpoint) int) (*Session, error) {
	point, ok := s.places.Resolve(ctx, placeID)
	if !ok {
		return nil, ErrPlaceNotFound
	}

	sess, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	gen := apply(sess, Endpoint{Label: label, Point: point})
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, err
	}

	if sess.Origin == nil || sess.Destination == nil {
		return sess, nil
	}

	// The route lookup never errors; a failed lookup attaches the empty
	// estimate and still moves the machine to route_computed. The session is
	// reloaded before attaching so a lookup superseded by a concurrent
	// endpoint change is discarded via the generation counter.
	est := s.routes.Route(ctx, sess.Origin.Point, sess.Destination.Point)
	current, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return sess, nil
	}
	if !current.AttachRoute(est, gen) {
		s.log.Debug("discarding superseded route estimate",
			zap.String("user_id", string(userID)),
			zap.Int("gen", gen),
		)
		return current, nil
	}
	if err := s.store.Save(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

// SelectTier records the chosen vehicle tier on the session.
func (s *Service) SelectTier(ctx context.Context, userID types.ID, name string) (*Session, error) {
	sess, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if sess == nil || sess.Route == nil {
		return nil, ErrInvalidState
	}
	tier, err := s.tiers.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	sess.SelectTier(tier)
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Confirm prices the trip and creates the booking, then clears the session.
// A persistence failure leaves the session untouched so the user can retry.
func (s *Service) Confirm(ctx context.Context, userID types.ID) (types.ID, error) {
	sess, err := s.store.Load(ctx, userID)
	if err != nil {
		return "", err
	}
	if sess == nil || !sess.Confirmable() {
		return "", ErrNotConfirmable
	}

	total := pricing.Quote(sess.Tier.PricePerKm, sess.Route.DistanceKm)
	id, err := s.bookings.Create(ctx, booking.CreateCommand{
		UserID:     userID,
		From:       sess.Origin.Point,
		To:         sess.Destination.Point,
		Tier:       *sess.Tier,
		Estimate:   *sess.Route,
		TotalPrice: total,
	})
	if err != nil {
		return "", err
	}

	if err := s.store.Clear(ctx, userID); err != nil {
		// The booking exists; a stale session only lingers until its TTL.
		s.log.Warn("failed to clear trip session after confirm",
			zap.String("user_id", string(userID)),
			zap.Error(err),
		)
	}
	return id, nil
}

// Reset discards the user's session.
func (s *Service) Reset(ctx context.Context, userID types.ID) error {
	return s.store.Clear(ctx, userID)
}
