package models

import "time"

const (
	OrderCreatedEventTopic     = "orders.created"
	PaymentSucceededEventTopic = "payments.succeeded"
	PaymentFailedEventTopic    = "payments.failed"
)

type OrderCreatedEvent struct {
	OrderID       string    `json:"order_id"`
	CustomerID    string    `json:"customer_id"`
	CustomerEmail string    `json:"customer_email"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	CreatedAt     time.Time `json:"created_at"`
}

type PaymentSucceededEvent struct {
	OrderID       string    `json:"order_id"`
	Amount        float64   `json:"amount"`
	CustomerEmail string    `json:"customer_email"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type PaymentFailedEvent struct {
	OrderID    string    `json:"order_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
