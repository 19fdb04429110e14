// README: Catalog service serves vehicle tiers with an empty-list fallback.
package catalog

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

var ErrTierNotFound = errors.New("vehicle tier not found")

// TierSource lists the tier catalog. *Store satisfies it.
type TierSource interface {
	List(ctx context.Context) ([]VehicleTier, error)
}

type Service struct {
	store TierSource
	log   *zap.Logger
}

func NewService(store TierSource, log *zap.Logger) *Service {
	return &Service{store: store, log: log}
}

// List returns the available tiers. A catalog failure yields an empty set,
// never an error: the client simply has nothing to pick and the user retries.
func (s *Service) List(ctx context.Context) []VehicleTier {
	tiers, err := s.store.List(ctx)
	if err != nil {
		s.log.Warn("catalog lookup failed", zap.Error(err))
		return []VehicleTier{}
	}
	return tiers
}

// Get returns the tier with the given name.
func (s *Service) Get(ctx context.Context, name string) (VehicleTier, error) {
	tiers, err := s.store.List(ctx)
	if err != nil {
		return VehicleTier{}, err
	}
	for _, t := range tiers {
		if t.Name == name {
			return t, nil
		}
	}
	return VehicleTier{}, ErrTierNotFound
}
