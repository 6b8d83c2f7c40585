package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/antt-creator/beyondthetrenchesproject/internal/cache"
	"github.com/antt-creator/beyondthetrenchesproject/internal/config"
	"github.com/antt-creator/beyondthetrenchesproject/pkg/errorbank"
)

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

func newTestService(email, password string) *Service {
	return NewService(Params{
		Config: config.Config{
			Admin: config.Admin{Email: email, Password: password, SessionTTL: time.Hour},
		},
		Cache:  newMemStore(),
		Logger: zap.NewNop(),
	})
}

func wantKind(t *testing.T, err error, kind errorbank.Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", kind)
	}
	if got := errorbank.From(err).Kind(); got != kind {
		t.Fatalf("kind = %s, want %s (err: %v)", got, kind, err)
	}
}

func TestLoginVerifyLogout(t *testing.T) {
	svc := newTestService("admin@example.com", "s3cret")
	ctx := context.Background()

	token, err := svc.Login(ctx, "admin@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected a session token")
	}

	email, err := svc.Verify(ctx, token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if email != "admin@example.com" {
		t.Errorf("email = %q", email)
	}

	if err := svc.Logout(ctx, token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	_, err = svc.Verify(ctx, token)
	wantKind(t, err, errorbank.KindUnauthorized)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newTestService("admin@example.com", "s3cret")
	ctx := context.Background()

	if _, err := svc.Login(ctx, "admin@example.com", "wrong"); err == nil {
		t.Fatal("expected rejection")
	} else {
		wantKind(t, err, errorbank.KindUnauthorized)
	}

	_, err := svc.Login(ctx, "someone@else.com", "s3cret")
	wantKind(t, err, errorbank.KindUnauthorized)
}

func TestLoginUnconfigured(t *testing.T) {
	svc := newTestService("", "")
	_, err := svc.Login(context.Background(), "admin@example.com", "s3cret")
	wantKind(t, err, errorbank.KindUnavailable)
}

func TestVerifyRejectsEmptyAndUnknownTokens(t *testing.T) {
	svc := newTestService("admin@example.com", "s3cret")
	ctx := context.Background()

	_, err := svc.Verify(ctx, "")
	wantKind(t, err, errorbank.KindUnauthorized)

	_, err = svc.Verify(ctx, "deadbeef")
	wantKind(t, err, errorbank.KindUnauthorized)
}

func TestLogoutUnknownTokenIsNoop(t *testing.T) {
	svc := newTestService("admin@example.com", "s3cret")
	if err := svc.Logout(context.Background(), "unknown"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Logout(context.Background(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
