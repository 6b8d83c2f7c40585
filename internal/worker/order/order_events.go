package order

import (
	"context"
	"encoding/json"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/antt-creator/beyondthetrenchesproject/internal/config"
	"github.com/antt-creator/beyondthetrenchesproject/internal/messaging"
	ordersvc "github.com/antt-creator/beyondthetrenchesproject/internal/service/order"
	"github.com/antt-creator/beyondthetrenchesproject/internal/worker"
)

var workerTracer = otel.Tracer("github.com/antt-creator/beyondthetrenchesproject/worker/order")

// Module registers order-related worker handlers.
var Module = fx.Module("worker_order",
	fx.Provide(
		fx.Annotate(
			NewOrderEventHandler,
			fx.ResultTags(`group:"worker.handlers"`),
		),
	),
)

// NewOrderEventHandler sets up a worker handler for order lifecycle events.
// This is the hand-off point to fulfilment: new orders and status flips are
// surfaced to the operational log for follow-up.
func NewOrderEventHandler(logger *zap.Logger, cfg config.Config) worker.HandlerRegistration {
	handler := func(ctx context.Context, msg messaging.Message) error {
		ctx, span := workerTracer.Start(ctx, "worker.orders.process", trace.WithAttributes(
			attribute.String("messaging.topic", msg.Topic),
		))
		defer span.End()

		var event ordersvc.OrderEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			logger.Error("failed to decode order event", zap.Error(err))

			span.RecordError(err)
			span.SetStatus(codes.Error, "decode error")
			return err
		}

		switch event.Type {
		case ordersvc.EventOrderCreated:
			logger.Info("new order awaiting fulfilment",
				zap.String("id", event.ID),
				zap.String("country", event.Country),
				zap.Int("qty", event.Qty),
				zap.String("paymentType", event.PaymentType),
			)
		case ordersvc.EventOrderStatusChanged:
			logger.Info("order status changed",
				zap.String("id", event.ID),
				zap.String("status", event.Status),
			)
		default:
			logger.Warn("unknown order event type", zap.String("type", event.Type))
		}

		return nil
	}

	return worker.HandlerRegistration{
		Topic:   cfg.Messaging.Kafka.Topic,
		Handler: handler,
	}
}
