package models

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "PENDING"
	OrderStatusPaid    OrderStatus = "PAID"
	OrderStatusFailed  OrderStatus = "FAILED"
)

// Order is a local projection of a gateway order. The gateway owns the
// lifecycle; rows here exist for diagnostics and reporting only.
type Order struct {
	ID               string      `json:"order_id" gorm:"primaryKey"`
	CustomerID       string      `json:"customer_id"`
	CustomerEmail    string      `json:"customer_email"`
	CustomerPhone    string      `json:"customer_phone"`
	CustomerName     string      `json:"customer_name"`
	Amount           float64     `json:"amount"`
	Currency         string      `json:"currency"`
	Status           OrderStatus `json:"status"`
	PaymentSessionID string      `json:"payment_session_id"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// ProcessedEvent records a webhook (order, event type) pair that has already
// triggered notifications. A second delivery of the same pair is acknowledged
// without dispatching anything again.
type ProcessedEvent struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	OrderID     string    `json:"order_id" gorm:"index:idx_order_event,unique"`
	EventType   string    `json:"event_type" gorm:"index:idx_order_event,unique"`
	ProcessedAt time.Time `json:"processed_at"`
}

func (e *ProcessedEvent) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}

	return
}

const orderSuffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// NewOrderID builds a gateway order identifier in the ORDER_<millis>_<alnum>
// shape the payment-verify page expects. Uniqueness rests on the timestamp
// plus a 9-character random suffix.
func NewOrderID(now time.Time) string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = orderSuffixAlphabet[rand.Intn(len(orderSuffixAlphabet))]
	}
	return fmt.Sprintf("ORDER_%d_%s", now.UnixMilli(), suffix)
}

func NewCustomerID(now time.Time) string {
	return fmt.Sprintf("CUST_%d", now.UnixMilli())
}
