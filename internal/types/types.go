// README: Common value objects shared across modules.
package types

// ID identifies a user, booking, or other entity.
type ID string

// Point is a latitude/longitude pair in decimal degrees. Values outside the
// valid geographic range are carried as-is; callers that care must validate.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
