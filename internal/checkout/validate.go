package checkout

import (
	"strings"

	derrors "labdesk/pkg/domain-errors"
)

// Syntactic checks on raw request fields. No entity lookup happens here; each
// check fails fast with a validation error and a human-readable reason.

func validateUID(uid string) error {
	if uid == "" || len(uid) < minUIDLen || len(uid) > maxUIDLen || strings.Contains(uid, " ") {
		return derrors.New(derrors.CodeValidation, "requester UID does not meet the required format")
	}
	return nil
}

func validateAssetID(assetID string) error {
	if assetID == "" || !strings.HasPrefix(assetID, AssetIDPrefix) {
		return derrors.New(derrors.CodeValidation, "asset ID must begin with "+AssetIDPrefix)
	}
	digits := assetID[len(AssetIDPrefix):]
	// An empty suffix must fail explicitly; the loop below would vacuously
	// pass it.
	if digits == "" {
		return derrors.New(derrors.CodeValidation, "asset ID must contain digits after the prefix")
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return derrors.New(derrors.CodeValidation, "asset ID must contain only digits after the prefix")
		}
	}
	return nil
}

func validateHours(hours int) error {
	if hours < MinHours || hours > MaxHours {
		return derrors.Newf(derrors.CodeValidation, "requested duration must be between %d and %d hours", MinHours, MaxHours)
	}
	return nil
}

// validateRequest runs the syntactic checks in fixed order: UID, asset ID,
// duration. The first failing check aborts; there is no partial validation
// report.
func validateRequest(req *Request) error {
	if req == nil {
		return derrors.New(derrors.CodeBadRequest, "checkout request is required")
	}
	if err := validateUID(req.RequesterUID); err != nil {
		return err
	}
	if err := validateAssetID(req.AssetID); err != nil {
		return err
	}
	return validateHours(req.Hours)
}
