package domain

import (
	"strings"

	derrors "labdesk/pkg/domain-errors"
)

const (
	// MaxSecurityLevel is the top security tier; assets at this tier require
	// a cleared requester.
	MaxSecurityLevel = 3

	// ClearancePrefix marks requester UIDs cleared for top-tier assets.
	ClearancePrefix = "KRG"
)

// Asset is a borrowable lab resource. The Available flag is the sole source of
// truth for "can be checked out now"; it flips false through the registry's
// MarkBorrowed and nowhere else.
type Asset struct {
	ID            string
	Name          string
	Available     bool
	SecurityLevel int
}

// VerifyAccess gates a checkout on asset state and clearance. The availability
// check strictly precedes the clearance check, so an unavailable top-tier
// asset reports the conflict, not the missing clearance.
func (a *Asset) VerifyAccess(requesterUID string) error {
	if !a.Available {
		return derrors.New(derrors.CodeConflict, "requested asset is currently issued")
	}
	if a.SecurityLevel == MaxSecurityLevel && !strings.HasPrefix(requesterUID, ClearancePrefix) {
		return derrors.New(derrors.CodeForbidden, "high security clearance required for this asset")
	}
	return nil
}
