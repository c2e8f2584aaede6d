package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labdesk/internal/checkout"
	derrors "labdesk/pkg/domain-errors"
)

type stubService struct {
	result *checkout.Result
	err    error
	got    *checkout.Request
}

func (s *stubService) ProcessCheckout(_ context.Context, req *checkout.Request) (*checkout.Result, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func newTestRouter(service Service) chi.Router {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	r := chi.NewRouter()
	New(service, logger).Register(r)
	return r
}

func TestHandleCheckout(t *testing.T) {
	t.Run("success returns 201 with receipt and notices", func(t *testing.T) {
		service := &stubService{result: &checkout.Result{
			Receipt: "RECEIPT-20250312-LAB-101-KRG11771",
			Hours:   3,
			Notices: []string{"restriction applied: cable usage limited to 3 hours"},
		}}
		r := newTestRouter(service)

		body := `{"requester_uid":"KRG11771","asset_id":"LAB-101","hours":5}`
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(body)))

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp CheckoutResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "RECEIPT-20250312-LAB-101-KRG11771", resp.Receipt)
		assert.Equal(t, 3, resp.Hours)
		assert.Len(t, resp.Notices, 1)

		require.NotNil(t, service.got)
		assert.Equal(t, 5, service.got.Hours)
	})

	t.Run("pipeline failures map by taxonomy code", func(t *testing.T) {
		tests := []struct {
			name       string
			err        error
			wantStatus int
		}{
			{"validation", derrors.New(derrors.CodeValidation, "asset ID must begin with LAB-"), http.StatusBadRequest},
			{"missing entity", derrors.New(derrors.CodeNotFound, "no requester registered"), http.StatusNotFound},
			{"policy violation", derrors.New(derrors.CodePolicyViolation, "outstanding dues"), http.StatusUnprocessableEntity},
			{"conflict", derrors.New(derrors.CodeConflict, "asset already allocated"), http.StatusConflict},
			{"clearance", derrors.New(derrors.CodeForbidden, "clearance required"), http.StatusForbidden},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				r := newTestRouter(&stubService{err: tt.err})

				body := `{"requester_uid":"KRG11771","asset_id":"LAB-101","hours":2}`
				rec := httptest.NewRecorder()
				r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(body)))

				assert.Equal(t, tt.wantStatus, rec.Code)
			})
		}
	})

	t.Run("malformed JSON body returns 400 without reaching the service", func(t *testing.T) {
		service := &stubService{}
		r := newTestRouter(service)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader("{not json")))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Nil(t, service.got)
	})

	t.Run("raw fields pass through untrimmed", func(t *testing.T) {
		service := &stubService{result: &checkout.Result{Receipt: "r"}}
		r := newTestRouter(service)

		body := `{"requester_uid":"KRG 11771","asset_id":"LAB-101","hours":2}`
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(body)))

		require.NotNil(t, service.got)
		assert.Equal(t, "KRG 11771", service.got.RequesterUID)
	})
}
