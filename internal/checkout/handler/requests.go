package handler

import (
	"labdesk/internal/checkout"
	derrors "labdesk/pkg/domain-errors"
)

// CheckoutRequest is the HTTP request body for POST /checkout.
//
// Only transport-level shape is enforced here; the syntactic field checks
// belong to the checkout pipeline so the reported reason follows its fixed
// evaluation order. Fields pass through untrimmed for the same reason: a UID
// with whitespace must reach the validator, not get cleaned up in transit.
type CheckoutRequest struct {
	RequesterUID string `json:"requester_uid"`
	AssetID      string `json:"asset_id"`
	Hours        int    `json:"hours"`
}

// Validate implements httputil.Validatable.
func (r *CheckoutRequest) Validate() error {
	if r == nil {
		return derrors.New(derrors.CodeBadRequest, "request body is required")
	}
	return nil
}

// ToDomain builds the pipeline request.
func (r *CheckoutRequest) ToDomain() *checkout.Request {
	return &checkout.Request{
		RequesterUID: r.RequesterUID,
		AssetID:      r.AssetID,
		Hours:        r.Hours,
	}
}
