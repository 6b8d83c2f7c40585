package dto

import (
	"time"

	"github.com/antt-creator/beyondthetrenchesproject/internal/entity"
)

// CreateOrderRequest is the storefront order submission payload.
type CreateOrderRequest struct {
	Name            string `json:"name" form:"name"`
	Phone           string `json:"phone" form:"phone"`
	Address         string `json:"address" form:"address"`
	Qty             int    `json:"qty" form:"qty"`
	PaymentType     string `json:"paymentType" form:"paymentType"`
	ReceiptURL      string `json:"receiptUrl,omitempty" form:"receiptUrl"`
	Notes           string `json:"notes,omitempty" form:"notes"`
	Country         string `json:"country" form:"country"`
	SubmissionToken string `json:"submissionToken,omitempty" form:"submissionToken"`
}

// OrderResponse represents an order as exposed via transport layers.
type OrderResponse struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	Qty         int       `json:"qty"`
	PaymentType string    `json:"paymentType"`
	Status      string    `json:"status"`
	ReceiptURL  string    `json:"receiptUrl,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	Country     string    `json:"country"`
}

// FromOrder maps a persisted order onto its transport representation.
func FromOrder(order entity.Order) OrderResponse {
	return OrderResponse{
		ID:          order.ID,
		Date:        order.Date,
		Name:        order.Name,
		Phone:       order.Phone,
		Address:     order.Address,
		Qty:         order.Qty,
		PaymentType: order.PaymentType,
		Status:      order.Status,
		ReceiptURL:  order.ReceiptURL,
		Notes:       order.Notes,
		Country:     order.Country,
	}
}

// FromOrders maps a list of orders preserving input order.
func FromOrders(orders []entity.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
