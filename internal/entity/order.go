package entity

import (
	"time"

	"github.com/uptrace/bun"
)

// Order statuses. Pending is the server-side default at creation; admins flip
// between the two, nothing else ever mutates a persisted order.
const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
)

// Payment methods as stored. "CashOnDelivery" is accepted on input and
// normalized to PaymentCOD before persistence.
const (
	PaymentPrepaid = "Prepaid"
	PaymentCOD     = "COD"
)

// Order represents a book pre-order stored in the relational database.
// Column names follow the store's existing "orders" relation, which uses
// camelCase identifiers for the payment and receipt fields.
type Order struct {
	bun.BaseModel `bun:"table:orders"`

	ID          string    `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	Date        time.Time `bun:"date,nullzero,notnull,default:now()"`
	Name        string    `bun:"name"`
	Phone       string    `bun:"phone"`
	Address     string    `bun:"address"`
	Qty         int       `bun:"qty"`
	PaymentType string    `bun:"paymentType"`
	Status      string    `bun:"status,nullzero,notnull,default:'Pending'"`
	ReceiptURL  string    `bun:"receiptUrl,nullzero"`
	Notes       string    `bun:"notes,nullzero"`
	Country     string    `bun:"country"`
}

// ToggledStatus returns the opposite admin status.
func ToggledStatus(status string) string {
	if status == StatusConfirmed {
		return StatusPending
	}
	return StatusConfirmed
}
