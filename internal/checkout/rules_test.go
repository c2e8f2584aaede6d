package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labdesk/internal/domain"
)

func TestApplyAdjustments(t *testing.T) {
	cable := &domain.Asset{ID: "LAB-101", Name: "HDMI Cable", Available: true, SecurityLevel: 1}
	scope := &domain.Asset{ID: "LAB-102", Name: "Oscilloscope", Available: true, SecurityLevel: 3}

	t.Run("cable requested past the cap is clamped in place", func(t *testing.T) {
		req := &Request{RequesterUID: "KRG11771", AssetID: cable.ID, Hours: 5}
		adj := applyAdjustments(req, cable)

		assert.Equal(t, CableMaxHours, req.Hours)
		assert.True(t, adj.CableClamped)
		require.Len(t, adj.Notices, 1)
		assert.Contains(t, adj.Notices[0], "restriction")
	})

	t.Run("cable at or under the cap is untouched", func(t *testing.T) {
		req := &Request{RequesterUID: "KRG11771", AssetID: cable.ID, Hours: 3}
		adj := applyAdjustments(req, cable)

		assert.Equal(t, 3, req.Hours)
		assert.False(t, adj.CableClamped)
		assert.Empty(t, adj.Notices)
	})

	t.Run("non-cable asset is unaffected by the clamp", func(t *testing.T) {
		req := &Request{RequesterUID: "KRG11771", AssetID: scope.ID, Hours: 5}
		adj := applyAdjustments(req, scope)

		assert.Equal(t, 5, req.Hours)
		assert.False(t, adj.CableClamped)
		assert.Empty(t, adj.Notices)
	})

	t.Run("maximum duration raises the advisory only", func(t *testing.T) {
		req := &Request{RequesterUID: "KRG11771", AssetID: scope.ID, Hours: MaxHours}
		adj := applyAdjustments(req, scope)

		assert.Equal(t, MaxHours, req.Hours)
		assert.True(t, adj.MaxDurationSelected)
		require.Len(t, adj.Notices, 1)
		assert.Contains(t, adj.Notices[0], "maximum allowable duration")
	})

	t.Run("maximum duration on a cable raises advisory then clamps", func(t *testing.T) {
		req := &Request{RequesterUID: "KRG11771", AssetID: cable.ID, Hours: MaxHours}
		adj := applyAdjustments(req, cable)

		assert.Equal(t, CableMaxHours, req.Hours)
		assert.True(t, adj.MaxDurationSelected)
		assert.True(t, adj.CableClamped)
		assert.Len(t, adj.Notices, 2)
	})
}
