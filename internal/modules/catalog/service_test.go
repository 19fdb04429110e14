// README: Catalog service tests (empty-set fallback, tier lookup).
package catalog

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

type stubSource struct {
	tiers []VehicleTier
	err   error
}

func (s *stubSource) List(_ context.Context) ([]VehicleTier, error) {
	return s.tiers, s.err
}

func TestList_ReturnsTiers(t *testing.T) {
	svc := NewService(&stubSource{tiers: []VehicleTier{
		{Name: "economy", PricePerKm: 2.5},
		{Name: "premium", PricePerKm: 4},
	}}, zap.NewNop())

	tiers := svc.List(context.Background())
	if len(tiers) != 2 {
		t.Fatalf("got %d tiers, want 2", len(tiers))
	}
}

func TestList_FailureYieldsEmptySet(t *testing.T) {
	svc := NewService(&stubSource{err: errors.New("db down")}, zap.NewNop())

	tiers := svc.List(context.Background())
	if tiers == nil {
		t.Fatal("fallback must be an empty slice, not nil")
	}
	if len(tiers) != 0 {
		t.Fatalf("got %d tiers, want 0", len(tiers))
	}
}

func TestGet(t *testing.T) {
	svc := NewService(&stubSource{tiers: []VehicleTier{
		{Name: "economy", PricePerKm: 2.5},
	}}, zap.NewNop())

	tier, err := svc.Get(context.Background(), "economy")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if tier.PricePerKm != 2.5 {
		t.Errorf("PricePerKm = %v, want 2.5", tier.PricePerKm)
	}

	if _, err := svc.Get(context.Background(), "luxury"); !errors.Is(err, ErrTierNotFound) {
		t.Fatalf("err = %v, want ErrTierNotFound", err)
	}
}

func TestGet_SourceFailurePropagates(t *testing.T) {
	srcErr := errors.New("db down")
	svc := NewService(&stubSource{err: srcErr}, zap.NewNop())
	if _, err := svc.Get(context.Background(), "economy"); !errors.Is(err, srcErr) {
		t.Fatalf("err = %v, want source error", err)
	}
}
