package checkout

import (
	"fmt"
	"strings"

	"labdesk/internal/domain"
)

// Post-policy adjustment rules. This is pure domain logic - no I/O, no side
// effects beyond mutating the request in place and reporting notices.

// Notice texts surfaced to the caller and mirrored as audit events.
var (
	noticeMaxDuration      = fmt.Sprintf("notice: you have selected the maximum allowable duration of %d hours", MaxHours)
	noticeCableRestriction = fmt.Sprintf("restriction applied: cable usage limited to %d hours", CableMaxHours)
)

// cableNameMarker flags assets subject to the clamp by display name.
const cableNameMarker = "Cable"

// adjustment describes what the rules did to a request.
type adjustment struct {
	MaxDurationSelected bool
	CableClamped        bool
	Notices             []string
}

// applyAdjustments runs the advisory and clamp rules in fixed order:
//  1. Max-duration advisory - side-effect-free, notice only.
//  2. Cable clamp - assets named "...Cable..." requested for more than
//     CableMaxHours have their duration clamped in place.
//
// The advisory evaluates the requested duration before any clamp.
func applyAdjustments(req *Request, asset *domain.Asset) adjustment {
	var adj adjustment

	if req.Hours == MaxHours {
		adj.MaxDurationSelected = true
		adj.Notices = append(adj.Notices, noticeMaxDuration)
	}

	if strings.Contains(asset.Name, cableNameMarker) && req.Hours > CableMaxHours {
		req.Hours = CableMaxHours
		adj.CableClamped = true
		adj.Notices = append(adj.Notices, noticeCableRestriction)
	}

	return adj
}
