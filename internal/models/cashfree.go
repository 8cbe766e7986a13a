package models

import "encoding/json"

// Wire types for the Cashfree PG orders API (x-api-version 2023-08-01).

type CashfreeCustomerDetails struct {
	CustomerID    string `json:"customer_id"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email"`
	CustomerName  string `json:"customer_name"`
}

type CashfreeOrderMeta struct {
	ReturnURL string `json:"return_url"`
	NotifyURL string `json:"notify_url,omitempty"`
}

type CashfreeOrderRequest struct {
	OrderID         string                  `json:"order_id"`
	OrderAmount     float64                 `json:"order_amount"`
	OrderCurrency   string                  `json:"order_currency"`
	CustomerDetails CashfreeCustomerDetails `json:"customer_details"`
	OrderMeta       CashfreeOrderMeta       `json:"order_meta"`
	OrderNote       string                  `json:"order_note"`
}

// CashfreeOrderResponse covers both the order-creation response and the
// order-lookup response; the fields absent from one are zero in the other.
// Raw keeps the untouched gateway payload for error passthrough.
type CashfreeOrderResponse struct {
	OrderID          string          `json:"order_id"`
	OrderStatus      string          `json:"order_status"`
	OrderAmount      float64         `json:"order_amount"`
	OrderCurrency    string          `json:"order_currency"`
	PaymentSessionID string          `json:"payment_session_id"`
	Message          string          `json:"message"`
	Raw              json.RawMessage `json:"-"`
}
