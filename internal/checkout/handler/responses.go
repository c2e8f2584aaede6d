package handler

import (
	"time"

	"labdesk/internal/checkout"
)

// CheckoutResponse is the HTTP response for a successful POST /checkout.
type CheckoutResponse struct {
	Receipt     string    `json:"receipt"`
	Hours       int       `json:"hours"`
	Notices     []string  `json:"notices"`
	ProcessedAt time.Time `json:"processed_at"`
}

// FromResult converts a pipeline result to an HTTP response.
func FromResult(result *checkout.Result) *CheckoutResponse {
	notices := result.Notices
	if notices == nil {
		notices = []string{}
	}
	return &CheckoutResponse{
		Receipt:     result.Receipt,
		Hours:       result.Hours,
		Notices:     notices,
		ProcessedAt: result.ProcessedAt,
	}
}
