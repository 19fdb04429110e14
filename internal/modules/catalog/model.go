// README: Vehicle tier definition sourced from the catalog.
package catalog

// VehicleTier is a named vehicle category with a per-kilometre price rate and
// an image reference for the client. Immutable once fetched.
type VehicleTier struct {
	Name       string  `json:"name"`
	PricePerKm float64 `json:"price_per_km"`
	ImageURL   string  `json:"image_url"`
}
