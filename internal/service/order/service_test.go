package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/antt-creator/beyondthetrenchesproject/internal/cache"
	"github.com/antt-creator/beyondthetrenchesproject/internal/config"
	"github.com/antt-creator/beyondthetrenchesproject/internal/dto"
	"github.com/antt-creator/beyondthetrenchesproject/internal/entity"
	repo "github.com/antt-creator/beyondthetrenchesproject/internal/repository/order"
	"github.com/antt-creator/beyondthetrenchesproject/pkg/errorbank"
)

// fakeRepo emulates the store: it assigns id, date, and the Pending status on
// create, and lists newest-first like the real repository contract.
type fakeRepo struct {
	mu          sync.Mutex
	seq         int
	orders      []entity.Order
	createErr   error
	createCalls int
	listCalls   int

	// blockCreate, when set, makes Create wait until released.
	blockCreate chan struct{}
	entered     chan struct{}
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{}
}

func (f *fakeRepo) Create(ctx context.Context, order *entity.Order) error {
	f.mu.Lock()
	f.createCalls++
	f.seq++
	seq := f.seq
	blocked := f.blockCreate
	entered := f.entered
	f.mu.Unlock()

	if blocked != nil {
		if entered != nil {
			close(entered)
		}
		<-blocked
	}

	if f.createErr != nil {
		return f.createErr
	}

	order.ID = fmt.Sprintf("00000000-0000-0000-0000-%012d", seq)
	order.Date = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(seq) * time.Minute)
	order.Status = entity.StatusPending

	f.mu.Lock()
	f.orders = append(f.orders, *order)
	f.mu.Unlock()
	return nil
}

func (f *fakeRepo) List(ctx context.Context) ([]entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	out := make([]entity.Order, len(f.orders))
	copy(out, f.orders)
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].Date.After(out[i].Date) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, o := range f.orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.orders {
		if f.orders[i].ID == id {
			f.orders[i].Status = status
			return nil
		}
	}
	return repo.ErrNotFound
}

// memStore is an in-memory cache.Store for tests.
type memStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (m *memStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.data[key]; ok {
		return v, nil
	}
	return nil, cache.ErrCacheMiss
}

func (m *memStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func testConfig() config.Config {
	return config.Config{
		Orders: config.Orders{SubmissionTTL: time.Hour},
		Admin:  config.Admin{SessionTTL: time.Hour},
	}
}

func newTestService(r Repository) *Service {
	return NewService(Params{
		Repository: r,
		Cache:      newMemStore(),
		Config:     testConfig(),
		Logger:     zap.NewNop(),
	})
}

func wantKind(t *testing.T, err error, kind errorbank.Kind) *errorbank.AppError {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", kind)
	}
	appErr := errorbank.From(err)
	if appErr.Kind() != kind {
		t.Fatalf("kind = %s, want %s (err: %v)", appErr.Kind(), kind, err)
	}
	return appErr
}

func TestSubmitPersistsWithPendingStatus(t *testing.T) {
	for _, paymentType := range []string{entity.PaymentPrepaid, entity.PaymentCOD} {
		t.Run(paymentType, func(t *testing.T) {
			fake := newFakeRepo()
			svc := newTestService(fake)

			req := validRequest()
			req.PaymentType = paymentType

			confirmation, err := svc.Submit(context.Background(), req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if confirmation.Order.ID == "" {
				t.Error("expected a generated order id")
			}
			if confirmation.Order.Status != entity.StatusPending {
				t.Errorf("status = %q, want Pending", confirmation.Order.Status)
			}
			if fake.createCalls != 1 {
				t.Errorf("create calls = %d, want 1", fake.createCalls)
			}
		})
	}
}

func TestSubmitScenarioAnnLee(t *testing.T) {
	fake := newFakeRepo()
	svc := newTestService(fake)

	confirmation, err := svc.Submit(context.Background(), dto.CreateOrderRequest{
		Name:        "Ann Lee",
		Phone:       "+12345678",
		Address:     "1 Main St, City",
		Qty:         2,
		PaymentType: "COD",
		Country:     "US",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored := fake.orders[0]
	if stored.Name != "Ann Lee" || stored.Phone != "+12345678" || stored.Qty != 2 {
		t.Errorf("stored fields mismatch: %+v", stored)
	}
	if stored.Status != entity.StatusPending {
		t.Errorf("status = %q, want Pending", stored.Status)
	}
	if confirmation.Order.ID == "" {
		t.Error("expected a generated order id")
	}
	if confirmation.Currency != "USD" || confirmation.Total != 30 {
		t.Errorf("confirmation total = %s %d, want USD 30", confirmation.Currency, confirmation.Total)
	}
}

func TestSubmitComputesShippingInTotal(t *testing.T) {
	fake := newFakeRepo()
	svc := newTestService(fake)

	req := validRequest()
	req.Country = "TH"
	req.Qty = 2

	confirmation, err := svc.Submit(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if confirmation.Currency != "THB" || confirmation.Total != 750 {
		t.Errorf("total = %s %d, want THB 750", confirmation.Currency, confirmation.Total)
	}
	// The display total is never persisted; only raw fields are.
	if fake.orders[0].Qty != 2 {
		t.Errorf("stored qty = %d, want 2", fake.orders[0].Qty)
	}
}

func TestSubmitInvalidSkipsRepository(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.CreateOrderRequest)
		field  string
	}{
		{"short name", func(r *dto.CreateOrderRequest) { r.Name = "A" }, "name"},
		{"zero qty", func(r *dto.CreateOrderRequest) { r.Qty = 0 }, "qty"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fake := newFakeRepo()
			svc := newTestService(fake)

			req := validRequest()
			tc.mutate(&req)

			_, err := svc.Submit(context.Background(), req)
			appErr := wantKind(t, err, errorbank.KindUnprocessableEntity)
			if _, ok := appErr.Details()[tc.field]; !ok {
				t.Errorf("expected %q field error, details: %v", tc.field, appErr.Details())
			}
			if fake.createCalls != 0 {
				t.Errorf("create calls = %d, want 0", fake.createCalls)
			}
		})
	}
}

func TestSubmitSurfacesPersistenceDetail(t *testing.T) {
	fake := newFakeRepo()
	fake.createErr = errors.New("connection refused")
	svc := newTestService(fake)

	_, err := svc.Submit(context.Background(), validRequest())
	wantKind(t, err, errorbank.KindInternal)
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("error should carry the underlying detail, got: %v", err)
	}
}

func TestSubmitUnconfiguredStore(t *testing.T) {
	fake := newFakeRepo()
	fake.createErr = repo.ErrNotConfigured
	svc := newTestService(fake)

	_, err := svc.Submit(context.Background(), validRequest())
	wantKind(t, err, errorbank.KindUnavailable)
}

func TestSubmitRejectsTokenInFlight(t *testing.T) {
	fake := newFakeRepo()
	fake.blockCreate = make(chan struct{})
	fake.entered = make(chan struct{})
	svc := newTestService(fake)

	req := validRequest()
	req.SubmissionToken = "form-1"

	firstDone := make(chan error, 1)
	go func() {
		_, err := svc.Submit(context.Background(), req)
		firstDone <- err
	}()

	<-fake.entered

	_, err := svc.Submit(context.Background(), req)
	wantKind(t, err, errorbank.KindConflict)

	close(fake.blockCreate)
	if err := <-firstDone; err != nil {
		t.Fatalf("first submission should succeed: %v", err)
	}
	if fake.createCalls != 1 {
		t.Errorf("create calls = %d, want 1", fake.createCalls)
	}
}

func TestSubmitRejectsTokenReplayAfterSuccess(t *testing.T) {
	fake := newFakeRepo()
	svc := newTestService(fake)

	req := validRequest()
	req.SubmissionToken = "form-2"

	confirmation, err := svc.Submit(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.Submit(context.Background(), req)
	appErr := wantKind(t, err, errorbank.KindConflict)
	if got := appErr.Details()["orderId"]; got != confirmation.Order.ID {
		t.Errorf("conflict should reference the accepted order, got %v", got)
	}
	if fake.createCalls != 1 {
		t.Errorf("create calls = %d, want 1", fake.createCalls)
	}
}

func TestSubmitRetryAllowedAfterFailure(t *testing.T) {
	fake := newFakeRepo()
	fake.createErr = errors.New("store down")
	svc := newTestService(fake)

	req := validRequest()
	req.SubmissionToken = "form-3"

	if _, err := svc.Submit(context.Background(), req); err == nil {
		t.Fatal("expected failure")
	}

	fake.createErr = nil
	if _, err := svc.Submit(context.Background(), req); err != nil {
		t.Fatalf("explicit retry after failure should pass: %v", err)
	}
}
