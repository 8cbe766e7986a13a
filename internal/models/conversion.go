package models

// ClientContext carries browser-side matching hints forwarded to the
// marketing API alongside hashed identifiers.
type ClientContext struct {
	IPAddress      string
	UserAgent      string
	FBP            string
	FBC            string
	EventSourceURL string
	TestEventCode  string
}

// PurchaseConversion is the payload handed to the conversion dispatcher when
// a payment succeeds. Email and phone travel raw here; the dispatcher hashes
// them before transmission.
type PurchaseConversion struct {
	OrderID string
	Amount  float64
	Email   string
	Phone   string
	Client  ClientContext
}
