package dto

// EbookEmailRequest keeps the camelCase keys the storefront already sends.
type EbookEmailRequest struct {
	CustomerEmail string `json:"customerEmail"`
	CustomerName  string `json:"customerName"`
	OrderID       string `json:"orderId"`
}
