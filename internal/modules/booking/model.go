// README: Booking record and the pure assembly step that builds it.
package booking

import (
	"time"

	"bettercommute/internal/maps"
	"bettercommute/internal/modules/catalog"
	"bettercommute/internal/types"
)

// Booking is the persisted record of a confirmed trip request. It is created
// exactly once and never mutated by the client; only the dispatch process
// fills in the driver fields later.
type Booking struct {
	ID           types.ID
	UserID       types.ID
	From         types.Point
	To           types.Point
	VehicleTier  string
	DistanceKm   float64
	PricePerKm   float64
	TotalPrice   int64
	DriverName   string
	DriverMobile string
	CreatedAt    time.Time
}

// Build assembles a Booking from already-validated inputs. Presence of the
// endpoints, estimate, and tier is enforced by the trip session state machine
// before this is reachable; Build does not re-validate. The ID is left unset
// for the store to assign, and the driver fields stay empty until dispatch
// assigns a driver.
func Build(userID types.ID, from, to types.Point, tier catalog.VehicleTier, est maps.RouteEstimate, totalPrice int64, now time.Time) Booking {
	return Booking{
		UserID:      userID,
		From:        from,
		To:          to,
		VehicleTier: tier.Name,
		DistanceKm:  est.DistanceKm,
		PricePerKm:  tier.PricePerKm,
		TotalPrice:  totalPrice,
		CreatedAt:   now,
	}
}
