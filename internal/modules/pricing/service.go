// README: Trip pricing: total = rate * distance, rounded to whole currency units.
package pricing

import "math"

// Quote computes the total price for a trip from a tier's per-kilometre rate
// and a route distance in kilometres. The product is rounded to the nearest
// whole currency unit; exact .5 boundaries round away from zero (math.Round).
//
// Inputs are trusted to be non-negative: rates come from the catalog and
// distances from the directions adapter. A zero distance quotes zero, which
// is what the no-route fallback estimate produces for every tier.
func Quote(pricePerKm, distanceKm float64) int64 {
	return int64(math.Round(pricePerKm * distanceKm))
}
