// README: Catalog store backed by PostgreSQL with a Redis read-through cache.
package catalog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const cacheKey = "catalog:tiers"

type Store struct {
	db       *pgxpool.Pool
	redis    *redis.Client
	cacheTTL time.Duration
}

func NewStore(db *pgxpool.Pool, redis *redis.Client, cacheTTL time.Duration) *Store {
	return &Store{db: db, redis: redis, cacheTTL: cacheTTL}
}

// List returns all tiers ordered by price rate ascending. The Redis cache is
// consulted first; a cache miss or a cache failure falls through to Postgres.
func (s *Store) List(ctx context.Context) ([]VehicleTier, error) {
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var tiers []VehicleTier
			if err := json.Unmarshal([]byte(cached), &tiers); err == nil {
				return tiers, nil
			}
		}
	}

	rows, err := s.db.Query(ctx, `
		SELECT name, price_per_km, image_url
		FROM vehicle_tiers
		ORDER BY price_per_km, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tiers []VehicleTier
	for rows.Next() {
		var t VehicleTier
		if err := rows.Scan(&t.Name, &t.PricePerKm, &t.ImageURL); err != nil {
			return nil, err
		}
		tiers = append(tiers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if s.redis != nil && len(tiers) > 0 {
		if payload, err := json.Marshal(tiers); err == nil {
			// Cache write failures are non-fatal; next read goes to Postgres.
			_ = s.redis.Set(ctx, cacheKey, payload, s.cacheTTL).Err()
		}
	}
	return tiers, nil
}
