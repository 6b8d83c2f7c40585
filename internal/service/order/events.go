package order

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/antt-creator/beyondthetrenchesproject/internal/entity"
	"github.com/antt-creator/beyondthetrenchesproject/internal/messaging"
)

// Event types emitted on the order lifecycle topic.
const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)

// OrderEvent is the envelope published for order lifecycle changes. The
// receipt image is deliberately excluded to keep events small.
type OrderEvent struct {
	Type        string    `json:"type"`
	ID          string    `json:"id"`
	Country     string    `json:"country"`
	Qty         int       `json:"qty"`
	PaymentType string    `json:"paymentType"`
	Status      string    `json:"status"`
	Date        time.Time `json:"date"`
}

func newOrderEvent(eventType string, order *entity.Order) OrderEvent {
	return OrderEvent{
		Type:        eventType,
		ID:          order.ID,
		Country:     order.Country,
		Qty:         order.Qty,
		PaymentType: order.PaymentType,
		Status:      order.Status,
		Date:        order.Date,
	}
}

// publishEvent emits an order event best-effort; publish failures are logged
// and never fail the originating workflow.
func publishEvent(ctx context.Context, publisher messaging.Client, logger *zap.Logger, enabled bool, event OrderEvent) {
	if !enabled || publisher == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		if logger != nil {
			logger.Error("marshal order event", zap.String("type", event.Type), zap.Error(err))
		}
		return
	}
	key := []byte(fmt.Sprintf("order-%s", event.ID))
	if err := publisher.Publish(ctx, key, payload); err != nil {
		if logger != nil {
			logger.Error("publish order event", zap.String("type", event.Type), zap.Error(err))
		}
	}
}
