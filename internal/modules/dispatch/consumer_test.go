// README: Dispatch consumer message handling tests.
package dispatch

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"bettercommute/internal/types"
)

type memAssignments struct {
	assigned map[types.ID][2]string
	err      error
}

func (m *memAssignments) AssignDriver(_ context.Context, id types.ID, name, mobile string) error {
	if m.err != nil {
		return m.err
	}
	if m.assigned == nil {
		m.assigned = map[types.ID][2]string{}
	}
	m.assigned[id] = [2]string{name, mobile}
	return nil
}

func newTestConsumer(store AssignmentStore) *Consumer {
	return &Consumer{store: store, log: zap.NewNop()}
}

func TestHandle_AppliesAssignment(t *testing.T) {
	store := &memAssignments{}
	c := newTestConsumer(store)

	body := []byte(`{"booking_id":"b1","driver_name":"Alex Chen","driver_mobile":"0912345678"}`)
	if err := c.handle(context.Background(), body); err != nil {
		t.Fatalf("handle: %v", err)
	}
	got, ok := store.assigned["b1"]
	if !ok {
		t.Fatal("assignment not applied")
	}
	if got[0] != "Alex Chen" || got[1] != "0912345678" {
		t.Errorf("assigned = %v", got)
	}
}

func TestHandle_RejectsMalformedJSON(t *testing.T) {
	c := newTestConsumer(&memAssignments{})
	if err := c.handle(context.Background(), []byte("{not json")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestHandle_RejectsMissingBookingID(t *testing.T) {
	store := &memAssignments{}
	c := newTestConsumer(store)
	if err := c.handle(context.Background(), []byte(`{"driver_name":"Alex Chen"}`)); err == nil {
		t.Fatal("expected error for missing booking id")
	}
	if len(store.assigned) != 0 {
		t.Fatal("no assignment should be applied")
	}
}

func TestHandle_StoreErrorPropagates(t *testing.T) {
	c := newTestConsumer(&memAssignments{err: errors.New("unknown booking")})
	body := []byte(`{"booking_id":"b1","driver_name":"Alex Chen"}`)
	if err := c.handle(context.Background(), body); err == nil {
		t.Fatal("expected store error")
	}
}
