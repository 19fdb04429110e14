// README: Trip session state machine: origin -> destination -> route -> tier -> confirmable.
package trip

import (
	"bettercommute/internal/maps"
	"bettercommute/internal/modules/catalog"
	"bettercommute/internal/types"
)

type Status string

const (
	StatusNoOrigin       Status = "no_origin"
	StatusOriginSet      Status = "origin_set"
	StatusDestinationSet Status = "destination_set"
	StatusRouteComputed  Status = "route_computed"
	// Tier selection requires a computed route and endpoint changes clear the
	// tier, so a selected tier always means the session is confirmable.
	StatusConfirmable Status = "confirmable"
)

// Endpoint is a resolved place: the label the user picked plus its coordinate.
type Endpoint struct {
	Label string      `json:"label"`
	Point types.Point `json:"point"`
}

// Session holds one user's in-progress trip request. It replaces the implicit
// per-screen state of the mobile client with an explicit object: every
// mutation goes through a method that enforces the legal transitions, and the
// route generation counter makes superseded directions lookups detectable.
type Session struct {
	UserID      types.ID             `json:"user_id"`
	Origin      *Endpoint            `json:"origin,omitempty"`
	Destination *Endpoint            `json:"destination,omitempty"`
	Route       *maps.RouteEstimate  `json:"route,omitempty"`
	Tier        *catalog.VehicleTier `json:"tier,omitempty"`
	RouteGen    int                  `json:"route_gen"`
}

func NewSession(userID types.ID) *Session {
	return &Session{UserID: userID}
}

// Status derives the machine state from which fields are present. Confirmable
// requires tier selected on top of a computed route; a computed route (even
// the empty fallback) requires both endpoints.
func (s *Session) Status() Status {
	switch {
	case s.Origin == nil:
		return StatusNoOrigin
	case s.Destination == nil:
		return StatusOriginSet
	case s.Route == nil:
		return StatusDestinationSet
	case s.Tier == nil:
		return StatusRouteComputed
	default:
		return StatusConfirmable
	}
}

// Confirmable reports whether every input required to create a booking is
// simultaneously present.
func (s *Session) Confirmable() bool {
	return s.Origin != nil && s.Destination != nil && s.Route != nil && s.Tier != nil
}

// SetOrigin records a new origin. Changing either endpoint invalidates the
// route and the tier selection: a stale price must never be submitted against
// updated endpoints. The returned generation identifies the route lookup that
// may now be started.
func (s *Session) SetOrigin(e Endpoint) int {
	s.Origin = &e
	return s.invalidateRoute()
}

// SetDestination records a new destination with the same cascading
// invalidation as SetOrigin.
func (s *Session) SetDestination(e Endpoint) int {
	s.Destination = &e
	return s.invalidateRoute()
}

// AttachRoute installs a completed route estimate. It is rejected when gen no
// longer matches the session's counter (the lookup was superseded by an
// endpoint change) or when an endpoint is missing. The empty fallback
// estimate attaches like any other: a failed directions lookup still moves
// the machine forward.
func (s *Session) AttachRoute(est maps.RouteEstimate, gen int) bool {
	if gen != s.RouteGen || s.Origin == nil || s.Destination == nil {
		return false
	}
	s.Route = &est
	return true
}

// SelectTier records the chosen vehicle tier. Legal only once a route has
// been computed.
func (s *Session) SelectTier(t catalog.VehicleTier) bool {
	if s.Route == nil {
		return false
	}
	s.Tier = &t
	return true
}

func (s *Session) invalidateRoute() int {
	s.Route = nil
	s.Tier = nil
	s.RouteGen++
	return s.RouteGen
}
