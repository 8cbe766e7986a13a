package models

import "encoding/json"

// UpstreamError carries a third-party API's raw error payload so handlers can
// forward it to the caller verbatim for diagnostics.
type UpstreamError struct {
	Message string
	Raw     json.RawMessage
}

func (e *UpstreamError) Error() string {
	return e.Message
}
