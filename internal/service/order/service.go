package order

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/antt-creator/beyondthetrenchesproject/internal/cache"
	"github.com/antt-creator/beyondthetrenchesproject/internal/catalog"
	"github.com/antt-creator/beyondthetrenchesproject/internal/config"
	"github.com/antt-creator/beyondthetrenchesproject/internal/dto"
	"github.com/antt-creator/beyondthetrenchesproject/internal/entity"
	"github.com/antt-creator/beyondthetrenchesproject/internal/messaging"
	repo "github.com/antt-creator/beyondthetrenchesproject/internal/repository/order"
	"github.com/antt-creator/beyondthetrenchesproject/pkg/errorbank"
)

var serviceTracer = otel.Tracer("github.com/antt-creator/beyondthetrenchesproject/service/order")

// Repository is the persistence boundary the order workflows write through.
type Repository interface {
	Create(ctx context.Context, order *entity.Order) error
	List(ctx context.Context) ([]entity.Order, error)
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

const submissionKeyPrefix = "orders:submission:"

// Confirmation is returned to the submitter after a successful intake. Total
// is computed for display only and never persisted.
type Confirmation struct {
	Order    *entity.Order
	Currency string
	Total    int64
}

// Service runs the order intake workflow: validate, guard against duplicate
// submissions, persist, emit the created event.
type Service struct {
	repo          Repository
	cache         cache.Store
	submissionTTL time.Duration
	logger        *zap.Logger
	publisher     messaging.Client
	messaging     messagingConfig

	// inflight holds submission tokens currently in the Submitting state.
	inflight sync.Map
}

// messagingConfig contains messaging specific knobs we care about.
type messagingConfig struct {
	enabled bool
	topic   string
}

// Params defines dependencies for constructing Service.
type Params struct {
	fx.In

	Repository Repository
	Cache      cache.Store
	Config     config.Config
	Logger     *zap.Logger
	Publisher  messaging.Client
}

// NewService wires a new Service instance.
func NewService(p Params) *Service {
	return &Service{
		repo:          p.Repository,
		cache:         p.Cache,
		submissionTTL: p.Config.Orders.SubmissionTTL,
		logger:        p.Logger,
		publisher:     p.Publisher,
		messaging: messagingConfig{
			enabled: p.Config.Messaging.Enabled,
			topic:   p.Config.Messaging.Kafka.Topic,
		},
	}
}

// Submit runs one intake attempt. The submission token, when present, drives
// an explicit Idle -> Submitting -> Done state machine: a token already in
// flight or already completed is rejected with a conflict instead of risking
// a duplicate insert.
func (s *Service) Submit(ctx context.Context, req dto.CreateOrderRequest) (*Confirmation, error) {
	ctx, span := serviceTracer.Start(ctx, "OrderService.Submit", trace.WithAttributes(
		attribute.String("order.country", req.Country),
	))
	defer span.End()

	validated, err := ValidateCreate(req)
	if err != nil {
		var fields FieldErrors
		if errors.As(err, &fields) {
			return nil, errorbank.Unprocessable("order validation failed", errorbank.WithDetails(fields.Details()))
		}
		return nil, errorbank.BadRequest("invalid order payload", errorbank.WithCause(err))
	}

	if token := validated.SubmissionToken; token != "" {
		release, err := s.acquireSubmission(ctx, token)
		if err != nil {
			return nil, err
		}
		defer release()
	}

	country, _ := catalog.Lookup(validated.Country)

	order := &entity.Order{
		Name:        validated.Name,
		Phone:       validated.Phone,
		Address:     validated.Address,
		Qty:         validated.Qty,
		PaymentType: validated.PaymentType,
		ReceiptURL:  validated.ReceiptURL,
		Notes:       validated.Notes,
		Country:     validated.Country,
	}

	if err := s.repo.Create(ctx, order); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		if errors.Is(err, repo.ErrNotConfigured) {
			return nil, errorbank.Unavailable("order store not configured")
		}
		return nil, errorbank.Internal("failed to create order", errorbank.WithCause(err))
	}

	if token := validated.SubmissionToken; token != "" {
		s.markSubmissionDone(ctx, token, order.ID)
	}

	s.logger.Info("order received",
		zap.String("id", order.ID),
		zap.String("country", order.Country),
		zap.Int("qty", order.Qty),
		zap.String("paymentType", order.PaymentType),
	)

	publishEvent(ctx, s.publisher, s.logger, s.messaging.enabled, newOrderEvent(EventOrderCreated, order))

	return &Confirmation{
		Order:    order,
		Currency: country.Currency,
		Total:    country.Total(order.Qty),
	}, nil
}

// acquireSubmission moves a token from Idle to Submitting, rejecting tokens
// that are already Submitting or Done. The returned release func transitions
// the in-process state back out of Submitting.
func (s *Service) acquireSubmission(ctx context.Context, token string) (func(), error) {
	if _, loaded := s.inflight.LoadOrStore(token, struct{}{}); loaded {
		return nil, errorbank.Conflict("a submission with this token is already in progress")
	}
	release := func() { s.inflight.Delete(token) }

	if s.cache != nil {
		orderID, err := s.cache.Get(ctx, submissionKeyPrefix+token)
		if err == nil {
			release()
			return nil, errorbank.Conflict("this submission was already accepted",
				errorbank.WithDetail("orderId", string(orderID)))
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warn("submission dedup read failed", zap.Error(err))
		}
	}

	return release, nil
}

// markSubmissionDone remembers a completed token so replays are rejected for
// the configured retention window.
func (s *Service) markSubmissionDone(ctx context.Context, token, orderID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, submissionKeyPrefix+token, []byte(orderID), s.submissionTTL); err != nil {
		s.logger.Warn("submission dedup write failed", zap.Error(err))
	}
}
