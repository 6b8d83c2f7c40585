package auth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/antt-creator/beyondthetrenchesproject/internal/cache"
	"github.com/antt-creator/beyondthetrenchesproject/internal/config"
	"github.com/antt-creator/beyondthetrenchesproject/pkg/errorbank"
)

const sessionKeyPrefix = "admin:session:"

// Service is the identity gate for the admin surface. Sessions are opaque
// random tokens stored in the cache with a TTL; expiry is handled by the
// store, not by the service.
type Service struct {
	email      string
	password   string
	sessionTTL time.Duration
	sessions   cache.Store
	logger     *zap.Logger
}

// Params defines dependencies for constructing Service.
type Params struct {
	fx.In

	Config config.Config
	Cache  cache.Store
	Logger *zap.Logger
}

// NewService wires the identity gate.
func NewService(p Params) *Service {
	return &Service{
		email:      p.Config.Admin.Email,
		password:   p.Config.Admin.Password,
		sessionTTL: p.Config.Admin.SessionTTL,
		sessions:   p.Cache,
		logger:     p.Logger,
	}
}

func (s *Service) configured() bool {
	return s.email != "" && s.password != ""
}

// Login checks the supplied credentials and mints a session token. Both
// fields are compared in constant time regardless of which one mismatches.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	if !s.configured() {
		return "", errorbank.Unavailable("admin authentication not configured")
	}

	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.email))
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password))
	if emailOK&passwordOK != 1 {
		s.logger.Warn("admin login rejected", zap.String("email", email))
		return "", errorbank.Unauthorized("invalid credentials")
	}

	token, err := newToken()
	if err != nil {
		return "", errorbank.Internal("failed to mint session token", errorbank.WithCause(err))
	}

	if err := s.sessions.Set(ctx, sessionKeyPrefix+token, []byte(s.email), s.sessionTTL); err != nil {
		return "", errorbank.Internal("failed to store session", errorbank.WithCause(err))
	}

	s.logger.Info("admin session opened", zap.String("email", s.email))
	return token, nil
}

// Verify resolves a session token to the administrator it belongs to. A
// missing or expired session yields an unauthorized error and nothing else.
func (s *Service) Verify(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", errorbank.Unauthorized("authentication required")
	}
	email, err := s.sessions.Get(ctx, sessionKeyPrefix+token)
	if errors.Is(err, cache.ErrCacheMiss) {
		return "", errorbank.Unauthorized("session expired or unknown")
	}
	if err != nil {
		return "", errorbank.Internal("failed to read session", errorbank.WithCause(err))
	}
	return string(email), nil
}

// Logout invalidates the session. Unknown tokens are a no-op.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionKeyPrefix+token); err != nil {
		return errorbank.Internal("failed to delete session", errorbank.WithCause(err))
	}
	return nil
}

func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
