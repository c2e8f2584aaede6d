package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"labdesk/internal/checkout"
	"labdesk/pkg/platform/httputil"
	"labdesk/pkg/requestcontext"
)

// Service defines the interface for checkout operations.
type Service interface {
	ProcessCheckout(ctx context.Context, req *checkout.Request) (*checkout.Result, error)
}

// Handler wires the checkout endpoint to the checkout service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a checkout handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts checkout endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/checkout", h.HandleCheckout)
}

// HandleCheckout handles POST /checkout requests.
func (h *Handler) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[CheckoutRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.ProcessCheckout(ctx, req.ToDomain())
	if err != nil {
		// The pipeline already audited and logged the rejection.
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "checkout handled",
		"request_id", requestID,
		"requester_uid", req.RequesterUID,
		"asset_id", req.AssetID,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusCreated, FromResult(result))
}
