package models

// Webhook event types delivered by the gateway.
const (
	WebhookTypePaymentSuccess = "PAYMENT_SUCCESS_WEBHOOK"
	WebhookTypePaymentFailed  = "PAYMENT_FAILED_WEBHOOK"
)

// Header names carrying the webhook signature material.
const (
	WebhookSignatureHeader = "x-webhook-signature"
	WebhookTimestampHeader = "x-webhook-timestamp"
)

type WebhookOrder struct {
	OrderID     string  `json:"order_id"`
	OrderAmount float64 `json:"order_amount"`
}

type WebhookPayment struct {
	PaymentStatus string `json:"payment_status"`
}

type WebhookCustomer struct {
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
	CustomerName  string `json:"customer_name"`
}

type WebhookData struct {
	Order           WebhookOrder    `json:"order"`
	Payment         WebhookPayment  `json:"payment"`
	CustomerDetails WebhookCustomer `json:"customer_details"`
}

// WebhookEvent is one gateway-side state transition notification. Delivery is
// at-least-once; deduplication happens against the ProcessedEvent store.
type WebhookEvent struct {
	Type string      `json:"type"`
	Data WebhookData `json:"data"`
}
