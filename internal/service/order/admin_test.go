package order

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/antt-creator/beyondthetrenchesproject/internal/entity"
	"github.com/antt-creator/beyondthetrenchesproject/pkg/errorbank"
)

const goodToken = "valid-session"

// fakeIdentity accepts exactly one token.
type fakeIdentity struct{}

func (fakeIdentity) Verify(ctx context.Context, token string) (string, error) {
	if token == goodToken {
		return "admin@example.com", nil
	}
	return "", errorbank.Unauthorized("session expired or unknown")
}

func newTestAdmin(r Repository) *Admin {
	return NewAdmin(AdminParams{
		Repository: r,
		Identity:   fakeIdentity{},
		Config:     testConfig(),
		Logger:     zap.NewNop(),
	})
}

func seedOrders(t *testing.T, fake *fakeRepo, n int) []entity.Order {
	t.Helper()
	svc := newTestService(fake)
	for i := 0; i < n; i++ {
		if _, err := svc.Submit(context.Background(), validRequest()); err != nil {
			t.Fatalf("seed submit failed: %v", err)
		}
	}
	return fake.orders
}

func TestAdminListRequiresSession(t *testing.T) {
	fake := newFakeRepo()
	seedOrders(t, fake, 2)
	admin := newTestAdmin(fake)

	before := fake.listCalls
	orders, err := admin.List(context.Background(), "forged")
	wantKind(t, err, errorbank.KindUnauthorized)
	if orders != nil {
		t.Errorf("unauthenticated list must return no data, got %d orders", len(orders))
	}
	if fake.listCalls != before {
		t.Error("repository must not be touched for an invalid session")
	}
}

func TestAdminListDescendingByDate(t *testing.T) {
	fake := newFakeRepo()
	seedOrders(t, fake, 5)
	admin := newTestAdmin(fake)

	orders, err := admin.List(context.Background(), goodToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 5 {
		t.Fatalf("orders = %d, want 5", len(orders))
	}
	for i := 1; i < len(orders); i++ {
		if orders[i-1].Date.Before(orders[i].Date) {
			t.Fatalf("orders not descending at %d: %v before %v", i, orders[i-1].Date, orders[i].Date)
		}
	}
}

func TestAdminToggleRoundTrip(t *testing.T) {
	fake := newFakeRepo()
	seeded := seedOrders(t, fake, 1)
	admin := newTestAdmin(fake)
	id := seeded[0].ID

	orders, err := admin.ToggleStatus(context.Background(), goodToken, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := findOrder(t, orders, id).Status; got != entity.StatusConfirmed {
		t.Errorf("status after first toggle = %q, want Confirmed", got)
	}

	orders, err = admin.ToggleStatus(context.Background(), goodToken, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := findOrder(t, orders, id).Status; got != entity.StatusPending {
		t.Errorf("status after second toggle = %q, want Pending", got)
	}
}

func TestAdminToggleRefetchesAuthoritativeList(t *testing.T) {
	fake := newFakeRepo()
	seeded := seedOrders(t, fake, 3)
	admin := newTestAdmin(fake)

	before := fake.listCalls
	orders, err := admin.ToggleStatus(context.Background(), goodToken, seeded[1].ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fake.listCalls != before+1 {
		t.Error("toggle must re-fetch the list after the update")
	}
	if len(orders) != 3 {
		t.Errorf("refreshed list = %d orders, want 3", len(orders))
	}
}

func TestAdminToggleUnknownID(t *testing.T) {
	fake := newFakeRepo()
	admin := newTestAdmin(fake)

	_, err := admin.ToggleStatus(context.Background(), goodToken, "missing-id")
	wantKind(t, err, errorbank.KindNotFound)
}

func TestAdminToggleRequiresSession(t *testing.T) {
	fake := newFakeRepo()
	seeded := seedOrders(t, fake, 1)
	admin := newTestAdmin(fake)

	_, err := admin.ToggleStatus(context.Background(), "", seeded[0].ID)
	wantKind(t, err, errorbank.KindUnauthorized)

	if fake.orders[0].Status != entity.StatusPending {
		t.Error("status must not change for an unauthenticated toggle")
	}
}

func TestUpdateStatusIdempotent(t *testing.T) {
	fake := newFakeRepo()
	seeded := seedOrders(t, fake, 1)
	id := seeded[0].ID

	for i := 0; i < 2; i++ {
		if err := fake.UpdateStatus(context.Background(), id, entity.StatusConfirmed); err != nil {
			t.Fatalf("update %d failed: %v", i, err)
		}
	}
	if fake.orders[0].Status != entity.StatusConfirmed {
		t.Errorf("status = %q, want Confirmed", fake.orders[0].Status)
	}
}

func findOrder(t *testing.T, orders []entity.Order, id string) entity.Order {
	t.Helper()
	for _, o := range orders {
		if o.ID == id {
			return o
		}
	}
	t.Fatalf("order %s not in list", id)
	return entity.Order{}
}
