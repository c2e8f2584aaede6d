package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	derrors "labdesk/pkg/domain-errors"
)

func TestVerifyEligibility(t *testing.T) {
	t.Run("clean requester passes", func(t *testing.T) {
		r := &Requester{UID: "KRG11771", Name: "Arnav"}
		assert.NoError(t, r.VerifyEligibility())
	})

	t.Run("outstanding fine blocks checkout", func(t *testing.T) {
		r := &Requester{UID: "ABC15456", Name: "richa", FineAmount: 100}
		err := r.VerifyEligibility()
		require.Error(t, err)
		assert.True(t, derrors.HasCode(err, derrors.CodePolicyViolation))
	})

	t.Run("capacity blocks checkout at the limit", func(t *testing.T) {
		r := &Requester{UID: "KRG88999", Name: "tarun", BorrowCount: MaxBorrowCount}
		err := r.VerifyEligibility()
		require.Error(t, err)
		assert.True(t, derrors.HasCode(err, derrors.CodePolicyViolation))
	})

	t.Run("fine check precedes capacity check", func(t *testing.T) {
		r := &Requester{UID: "ABC15456", FineAmount: 50, BorrowCount: MaxBorrowCount}
		err := r.VerifyEligibility()
		require.Error(t, err)
		assert.Contains(t, derrors.Message(err), "dues")
	})

	t.Run("one below capacity passes", func(t *testing.T) {
		r := &Requester{UID: "KRG11771", BorrowCount: MaxBorrowCount - 1}
		assert.NoError(t, r.VerifyEligibility())
	})
}
