package domain

import (
	derrors "labdesk/pkg/domain-errors"
)

// MaxBorrowCount is the borrowing capacity per requester. The registry refuses
// to increment past it even if an eligibility check was skipped upstream.
const MaxBorrowCount = 2

// Requester is a student allowed to borrow lab assets. Fine amount and borrow
// count drive the eligibility policy; both are mutated only through registry
// operations, never by direct field writes outside seeding.
type Requester struct {
	UID         string
	Name        string
	FineAmount  int
	BorrowCount int
}

// VerifyEligibility gates a checkout on the requester's standing. The fine
// check strictly precedes the capacity check: a requester with both violations
// reports the outstanding fine.
func (r *Requester) VerifyEligibility() error {
	if r.FineAmount > 0 {
		return derrors.New(derrors.CodePolicyViolation, "outstanding dues detected for this requester")
	}
	if r.BorrowCount >= MaxBorrowCount {
		return derrors.New(derrors.CodePolicyViolation, "maximum borrowing capacity reached")
	}
	return nil
}
