package derrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeOf(t *testing.T) {
	t.Run("returns code of a domain error", func(t *testing.T) {
		err := New(CodeNotFound, "asset LAB-999 not registered")
		assert.Equal(t, CodeNotFound, CodeOf(err))
	})

	t.Run("walks wrap chains built with fmt.Errorf", func(t *testing.T) {
		inner := New(CodeConflict, "asset already allocated")
		outer := fmt.Errorf("commit step: %w", inner)
		assert.Equal(t, CodeConflict, CodeOf(outer))
	})

	t.Run("non-domain errors report internal", func(t *testing.T) {
		assert.Equal(t, CodeInternal, CodeOf(errors.New("boom")))
	})
}

func TestWrap(t *testing.T) {
	t.Run("keeps the cause reachable", func(t *testing.T) {
		cause := errors.New("redis: connection refused")
		err := Wrap(cause, CodeInternal, "notification sink unavailable")
		require.Error(t, err)
		assert.True(t, errors.Is(err, cause))
		assert.Equal(t, CodeInternal, CodeOf(err))
	})

	t.Run("nil cause yields nil", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, CodeInternal, "ignored"))
	})
}

func TestHasCode(t *testing.T) {
	err := New(CodePolicyViolation, "outstanding dues detected")
	assert.True(t, HasCode(err, CodePolicyViolation))
	assert.False(t, HasCode(err, CodeConflict))
	assert.False(t, HasCode(nil, CodePolicyViolation))
	assert.True(t, Is(err, CodePolicyViolation))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "maximum borrowing capacity reached",
		Message(New(CodePolicyViolation, "maximum borrowing capacity reached")))
	assert.Equal(t, "plain", Message(errors.New("plain")))
	assert.Equal(t, "", Message(nil))
}
