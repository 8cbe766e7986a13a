package dto

// PixelEventRequest is the browser-supplied part of a conversion event. All
// fields are optional; identifiers are hashed before leaving the service.
type PixelEventRequest struct {
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	FBP            string `json:"fbp"`
	FBC            string `json:"fbc"`
	EventSourceURL string `json:"event_source_url"`
	OrderID        string `json:"order_id"`
	TestEventCode  string `json:"test_event_code"`
}
