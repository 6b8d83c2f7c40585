package order

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/antt-creator/beyondthetrenchesproject/internal/config"
	"github.com/antt-creator/beyondthetrenchesproject/internal/database"
	"github.com/antt-creator/beyondthetrenchesproject/internal/entity"
)

var repoTracer = otel.Tracer("github.com/antt-creator/beyondthetrenchesproject/repository/order")

// ErrNotFound is returned when an order is missing.
var ErrNotFound = errors.New("order not found")

// ErrNotConfigured is returned by every operation when no store DSN was
// supplied at startup.
var ErrNotConfigured = errors.New("order store not configured")

// Repository encapsulates read/write access for orders.
type Repository struct {
	configured bool
	writer     *bun.DB
	reader     *bun.DB
	opTimeout  time.Duration
}

// NewRepository wires a repository backed by configured database connections.
func NewRepository(conns *database.Connections, cfg config.Config) *Repository {
	return &Repository{
		configured: conns.Configured,
		writer:     conns.Writer,
		reader:     conns.Reader,
		opTimeout:  cfg.Database.OpTimeout,
	}
}

// Create persists a new order using the write connection. The store assigns
// id, date, and the Pending status; the model is refreshed from RETURNING.
func (r *Repository) Create(ctx context.Context, order *entity.Order) error {
	if order == nil {
		return errors.New("nil order")
	}
	if !r.configured {
		return ErrNotConfigured
	}
	ctx, span := repoTracer.Start(ctx, "OrderRepository.Create", trace.WithAttributes(attribute.String("order.country", order.Country)))
	defer span.End()

	ctx, cancel := r.bound(ctx)
	defer cancel()

	_, err := r.writer.NewInsert().Model(order).
		ExcludeColumn("id", "date", "status").
		Returning("id, date, status").
		Exec(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
	}
	return err
}

// List fetches all orders sorted by submission time, newest first.
func (r *Repository) List(ctx context.Context) ([]entity.Order, error) {
	if !r.configured {
		return nil, ErrNotConfigured
	}
	ctx, span := repoTracer.Start(ctx, "OrderRepository.List")
	defer span.End()

	ctx, cancel := r.bound(ctx)
	defer cancel()

	var orders []entity.Order
	err := r.reader.NewSelect().Model(&orders).OrderExpr(`"date" DESC`).Scan(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return orders, nil
}

// GetByID fetches a single order by primary key.
func (r *Repository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	if !r.configured {
		return nil, ErrNotConfigured
	}
	ctx, span := repoTracer.Start(ctx, "OrderRepository.GetByID", trace.WithAttributes(attribute.String("order.id", id)))
	defer span.End()

	ctx, cancel := r.bound(ctx)
	defer cancel()

	order := new(entity.Order)
	err := r.reader.NewSelect().Model(order).Where("id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		span.SetStatus(codes.Error, "not found")
		return nil, ErrNotFound
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return order, nil
}

// UpdateStatus sets the status of a single order. Idempotent: writing the
// current status is a no-op at the data level. ErrNotFound when id is unknown.
func (r *Repository) UpdateStatus(ctx context.Context, id, status string) error {
	if !r.configured {
		return ErrNotConfigured
	}
	ctx, span := repoTracer.Start(ctx, "OrderRepository.UpdateStatus", trace.WithAttributes(
		attribute.String("order.id", id),
		attribute.String("order.status", status),
	))
	defer span.End()

	ctx, cancel := r.bound(ctx)
	defer cancel()

	res, err := r.writer.NewUpdate().Model((*entity.Order)(nil)).
		Set("status = ?", status).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "update failed")
		return err
	}
	affected, err := res.RowsAffected()
	if err == nil && affected == 0 {
		span.SetStatus(codes.Error, "not found")
		return ErrNotFound
	}
	return nil
}

// bound caps a store call so a stalled network hop cannot block a workflow
// instance indefinitely.
func (r *Repository) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.opTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.opTimeout)
}
