// README: Booking store backed by PostgreSQL.
package booking

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bettercommute/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Create assigns an ID and persists the booking, returning the assigned ID.
func (s *Store) Create(ctx context.Context, b *Booking) (types.ID, error) {
	id := types.ID(uuid.NewString())
	_, err := s.db.Exec(ctx, `
		INSERT INTO bookings (
			id, user_id, from_lat, from_lng, to_lat, to_lng,
			vehicle_tier, distance_km, price_per_km, total_price,
			driver_name, driver_mobile, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10,
			$11, $12, $13
		)`,
		string(id),
		string(b.UserID),
		b.From.Lat, b.From.Lng,
		b.To.Lat, b.To.Lng,
		b.VehicleTier,
		b.DistanceKm,
		b.PricePerKm,
		b.TotalPrice,
		b.DriverName,
		b.DriverMobile,
		b.CreatedAt,
	)
	if err != nil {
		return "", err
	}
	b.ID = id
	return id, nil
}

// Get returns a single booking by ID.
func (s *Store) Get(ctx context.Context, id types.ID) (*Booking, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, user_id, from_lat, from_lng, to_lat, to_lng,
		       vehicle_tier, distance_km, price_per_km, total_price,
		       driver_name, driver_mobile, created_at
		FROM bookings
		WHERE id = $1`, string(id),
	)
	return scanBooking(row)
}

// ListByUser returns the user's bookings newest first. Ties on the creation
// instant are broken by ID so the ordering is stable across reads.
func (s *Store) ListByUser(ctx context.Context, userID types.ID) ([]Booking, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, from_lat, from_lng, to_lat, to_lng,
		       vehicle_tier, distance_km, price_per_km, total_price,
		       driver_name, driver_mobile, created_at
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC, id`, string(userID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

// AssignDriver fills in the driver fields on a booking. Only the dispatch
// consumer calls this; there is no client-facing update path.
func (s *Store) AssignDriver(ctx context.Context, id types.ID, name, mobile string) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE bookings
		SET driver_name = $1, driver_mobile = $2
		WHERE id = $3`,
		name, mobile, string(id),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	err := row.Scan(
		&b.ID, &b.UserID,
		&b.From.Lat, &b.From.Lng,
		&b.To.Lat, &b.To.Lng,
		&b.VehicleTier,
		&b.DistanceKm,
		&b.PricePerKm,
		&b.TotalPrice,
		&b.DriverName,
		&b.DriverMobile,
		&b.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}
