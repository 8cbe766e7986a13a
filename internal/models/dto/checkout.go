package dto

import "strings"

// CreateOrderRequest is the optional caller body for order initiation. Every
// field has a configured fallback; nothing here is validated beyond trimming.
type CreateOrderRequest struct {
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
	CustomerName  string `json:"customer_name"`
}

func (r *CreateOrderRequest) Sanitize() {
	r.CustomerEmail = strings.TrimSpace(r.CustomerEmail)
	r.CustomerPhone = strings.TrimSpace(r.CustomerPhone)
	r.CustomerName = strings.TrimSpace(r.CustomerName)
}

type CreateOrderResponse struct {
	Success          bool   `json:"success"`
	OrderID          string `json:"order_id"`
	PaymentSessionID string `json:"payment_session_id"`
	Message          string `json:"message"`
}

type VerifyPaymentRequest struct {
	OrderID string `json:"order_id"`
}

type VerifyPaymentResponse struct {
	Success       bool    `json:"success"`
	OrderID       string  `json:"order_id"`
	PaymentStatus string  `json:"payment_status"`
	OrderAmount   float64 `json:"order_amount"`
	OrderCurrency string  `json:"order_currency"`
}
