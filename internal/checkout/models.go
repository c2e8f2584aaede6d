package checkout

import "time"

// Duration bounds in hours for a single checkout.
const (
	MinHours = 1
	MaxHours = 6

	// CableMaxHours caps requests for cable-type assets.
	CableMaxHours = 3
)

// Requester UID length bounds.
const (
	minUIDLen = 8
	maxUIDLen = 12
)

// AssetIDPrefix is the mandatory prefix for asset identifiers; the remainder
// must be decimal digits.
const AssetIDPrefix = "LAB-"

// receiptPrefix heads every receipt identifier.
const receiptPrefix = "RECEIPT"

// Request is one checkout attempt. It is transient and mutable: the duration
// may be reduced by policy before it is embedded anywhere downstream.
type Request struct {
	RequesterUID string
	AssetID      string
	Hours        int
}

// Result is the outcome of a successful checkout. Hours carries the effective
// duration after any adjustment; Notices carries informational messages raised
// along the way.
type Result struct {
	Receipt     string
	Hours       int
	Notices     []string
	ProcessedAt time.Time
}
