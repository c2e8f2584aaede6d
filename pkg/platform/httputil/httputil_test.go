package httputil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	derrors "labdesk/pkg/domain-errors"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation maps to 400", derrors.New(derrors.CodeValidation, "bad uid"), http.StatusBadRequest, "validation"},
		{"not_found maps to 404", derrors.New(derrors.CodeNotFound, "no asset"), http.StatusNotFound, "not_found"},
		{"policy_violation maps to 422", derrors.New(derrors.CodePolicyViolation, "dues"), http.StatusUnprocessableEntity, "policy_violation"},
		{"conflict maps to 409", derrors.New(derrors.CodeConflict, "issued"), http.StatusConflict, "conflict"},
		{"forbidden maps to 403", derrors.New(derrors.CodeForbidden, "clearance"), http.StatusForbidden, "forbidden"},
		{"internal maps to 500 and hides detail", derrors.New(derrors.CodeInternal, "pipeline exploded"), http.StatusInternalServerError, "internal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), tt.wantCode)
			if tt.wantStatus == http.StatusInternalServerError {
				assert.NotContains(t, rec.Body.String(), "exploded")
			}
		})
	}
}

type echoRequest struct {
	Value string `json:"value"`
}

func (r *echoRequest) Validate() error {
	if r.Value == "" {
		return derrors.New(derrors.CodeValidation, "value is required")
	}
	return nil
}

func TestDecodeAndPrepare(t *testing.T) {
	t.Run("decodes and validates a good body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"value":"ok"}`))

		decoded, ok := DecodeAndPrepare[echoRequest](rec, req, nil, req.Context(), "req-1")
		require.True(t, ok)
		assert.Equal(t, "ok", decoded.Value)
	})

	t.Run("rejects malformed JSON with 400", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))

		_, ok := DecodeAndPrepare[echoRequest](rec, req, nil, req.Context(), "req-2")
		require.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects a body that fails validation", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"value":""}`))

		_, ok := DecodeAndPrepare[echoRequest](rec, req, nil, req.Context(), "req-3")
		require.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "value is required")
	})
}
