package order

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/antt-creator/beyondthetrenchesproject/internal/config"
	"github.com/antt-creator/beyondthetrenchesproject/internal/entity"
	"github.com/antt-creator/beyondthetrenchesproject/internal/messaging"
	repo "github.com/antt-creator/beyondthetrenchesproject/internal/repository/order"
	"github.com/antt-creator/beyondthetrenchesproject/pkg/errorbank"
)

// Identity gates admin operations. Verify returns the authenticated
// administrator for a session token, or an unauthorized error.
type Identity interface {
	Verify(ctx context.Context, token string) (string, error)
}

// Admin runs the status-management workflow. Every operation re-checks the
// session before touching order data; nothing is fetched for an invalid actor.
type Admin struct {
	repo      Repository
	identity  Identity
	logger    *zap.Logger
	publisher messaging.Client
	messaging messagingConfig
}

// AdminParams defines dependencies for constructing Admin.
type AdminParams struct {
	fx.In

	Repository Repository
	Identity   Identity
	Config     config.Config
	Logger     *zap.Logger
	Publisher  messaging.Client
}

// NewAdmin wires the admin status workflow.
func NewAdmin(p AdminParams) *Admin {
	return &Admin{
		repo:      p.Repository,
		identity:  p.Identity,
		logger:    p.Logger,
		publisher: p.Publisher,
		messaging: messagingConfig{
			enabled: p.Config.Messaging.Enabled,
			topic:   p.Config.Messaging.Kafka.Topic,
		},
	}
}

// List returns every order, newest first. Unauthorized actors get no data.
func (a *Admin) List(ctx context.Context, token string) ([]entity.Order, error) {
	ctx, span := serviceTracer.Start(ctx, "OrderAdmin.List")
	defer span.End()

	if _, err := a.identity.Verify(ctx, token); err != nil {
		span.SetStatus(codes.Error, "unauthorized")
		return nil, err
	}

	orders, err := a.repo.List(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		a.logger.Error("order list fetch failed", zap.Error(err))
		if errors.Is(err, repo.ErrNotConfigured) {
			return nil, errorbank.Unavailable("order store not configured")
		}
		return nil, errorbank.Internal("failed to list orders", errorbank.WithCause(err))
	}
	return orders, nil
}

// ToggleStatus flips an order between Pending and Confirmed, then re-fetches
// the full list so the caller renders the authoritative store state rather
// than an optimistic local mutation.
func (a *Admin) ToggleStatus(ctx context.Context, token, id string) ([]entity.Order, error) {
	ctx, span := serviceTracer.Start(ctx, "OrderAdmin.ToggleStatus", trace.WithAttributes(attribute.String("order.id", id)))
	defer span.End()

	admin, err := a.identity.Verify(ctx, token)
	if err != nil {
		span.SetStatus(codes.Error, "unauthorized")
		return nil, err
	}

	current, err := a.repo.GetByID(ctx, id)
	if err != nil {
		return nil, a.persistenceError(span, "load order for toggle", err)
	}

	next := entity.ToggledStatus(current.Status)
	if err := a.repo.UpdateStatus(ctx, id, next); err != nil {
		return nil, a.persistenceError(span, "update order status", err)
	}

	a.logger.Info("order status toggled",
		zap.String("id", id),
		zap.String("from", current.Status),
		zap.String("to", next),
		zap.String("admin", admin),
	)

	current.Status = next
	publishEvent(ctx, a.publisher, a.logger, a.messaging.enabled, newOrderEvent(EventOrderStatusChanged, current))

	return a.List(ctx, token)
}

// Refresh re-runs the listing on demand.
func (a *Admin) Refresh(ctx context.Context, token string) ([]entity.Order, error) {
	return a.List(ctx, token)
}

func (a *Admin) persistenceError(span trace.Span, action string, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, action)
	a.logger.Error(action+" failed", zap.Error(err))
	switch {
	case errors.Is(err, repo.ErrNotFound):
		return errorbank.NotFound("order not found")
	case errors.Is(err, repo.ErrNotConfigured):
		return errorbank.Unavailable("order store not configured")
	default:
		return errorbank.Internal("failed to "+action, errorbank.WithCause(err))
	}
}
