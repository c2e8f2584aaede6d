package checkout

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"labdesk/internal/checkout/metrics"
	"labdesk/internal/domain"
	derrors "labdesk/pkg/domain-errors"
	"labdesk/pkg/platform/audit"
	"labdesk/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Registry,Notifier

// Registry resolves entities and owns the two commit-time mutations. The
// service never mutates availability or borrow counts directly.
type Registry interface {
	GetAsset(ctx context.Context, assetID string) (*domain.Asset, error)
	GetRequester(ctx context.Context, uid string) (*domain.Requester, error)
	MarkBorrowed(ctx context.Context, assetID string) error
	IncrementBorrowCount(ctx context.Context, uid string) error
}

// Notifier receives informational messages and failure records. It has no
// return value and no effect on control flow.
type Notifier interface {
	Emit(ctx context.Context, event audit.Event)
}

// Service orchestrates the checkout pipeline: validate, resolve, policy,
// adjust, commit, receipt. One request is fully processed before the next;
// every failure aborts immediately and is reported back tagged with its
// taxonomy code.
type Service struct {
	registry Registry
	notifier Notifier
	logger   *slog.Logger
	metrics  *metrics.Metrics
	tracer   trace.Tracer
}

// NewService constructs the checkout service with its dependencies.
func NewService(registry Registry, notifier Notifier, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		registry: registry,
		notifier: notifier,
		logger:   logger,
		metrics:  m,
		tracer:   otel.Tracer("labdesk/checkout"),
	}
}

// ProcessCheckout runs one request through the pipeline and returns the
// receipt on success. The request's Hours field may be clamped in place by the
// cable rule before the receipt is produced.
func (s *Service) ProcessCheckout(ctx context.Context, req *Request) (*Result, error) {
	start := time.Now()
	defer func() {
		s.metrics.ObserveProcessLatency(time.Since(start))
	}()

	ctx, span := s.tracer.Start(ctx, "checkout.process")
	defer span.End()

	if err := validateRequest(req); err != nil {
		return nil, s.reject(ctx, req, err)
	}
	span.SetAttributes(
		attribute.String("checkout.requester_uid", req.RequesterUID),
		attribute.String("checkout.asset_id", req.AssetID),
		attribute.Int("checkout.hours_requested", req.Hours),
	)

	// Requester resolves before the asset, so a request where both are
	// unknown reports the requester as missing.
	requester, err := s.registry.GetRequester(ctx, req.RequesterUID)
	if err != nil {
		return nil, s.reject(ctx, req, err)
	}
	asset, err := s.registry.GetAsset(ctx, req.AssetID)
	if err != nil {
		return nil, s.reject(ctx, req, err)
	}

	// Policy predicates run against the original request values.
	if err := requester.VerifyEligibility(); err != nil {
		return nil, s.reject(ctx, req, err)
	}
	if err := asset.VerifyAccess(req.RequesterUID); err != nil {
		return nil, s.reject(ctx, req, err)
	}

	adj := applyAdjustments(req, asset)
	if adj.MaxDurationSelected {
		s.notifier.Emit(ctx, audit.Event{
			RequesterUID: req.RequesterUID,
			AssetID:      req.AssetID,
			Action:       audit.ActionMaxDurationSelected,
			Hours:        MaxHours,
			RequestID:    requestcontext.RequestID(ctx),
		})
	}
	if adj.CableClamped {
		s.metrics.IncrementAdjustments()
		s.notifier.Emit(ctx, audit.Event{
			RequesterUID: req.RequesterUID,
			AssetID:      req.AssetID,
			Action:       audit.ActionDurationRestricted,
			Hours:        req.Hours,
			RequestID:    requestcontext.RequestID(ctx),
		})
	}

	// Commit. MarkBorrowed is the atomic check-and-set; the count increment
	// cannot fail after a passing eligibility check unless a concurrent
	// request won the race, in which case the request is rejected like any
	// other policy failure.
	if err := s.registry.MarkBorrowed(ctx, req.AssetID); err != nil {
		return nil, s.reject(ctx, req, err)
	}
	if err := s.registry.IncrementBorrowCount(ctx, req.RequesterUID); err != nil {
		return nil, s.reject(ctx, req, err)
	}

	now := requestcontext.Now(ctx)
	receipt := fmt.Sprintf("%s-%s-%s-%s", receiptPrefix, now.Format("20060102"), req.AssetID, req.RequesterUID)

	s.notifier.Emit(ctx, audit.Event{
		RequesterUID: req.RequesterUID,
		AssetID:      req.AssetID,
		Action:       audit.ActionCheckoutSucceeded,
		Decision:     "approved",
		Hours:        req.Hours,
		RequestID:    requestcontext.RequestID(ctx),
	})
	s.metrics.IncrementOutcome("success", "")

	if s.logger != nil {
		s.logger.InfoContext(ctx, "checkout approved",
			"request_id", requestcontext.RequestID(ctx),
			"requester_uid", req.RequesterUID,
			"asset_id", req.AssetID,
			"hours", req.Hours,
			"receipt", receipt,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}

	return &Result{
		Receipt:     receipt,
		Hours:       req.Hours,
		Notices:     adj.Notices,
		ProcessedAt: now,
	}, nil
}

// reject reports a failed request: audit record, metrics, log. The error is
// returned unchanged so callers can branch on its taxonomy code.
func (s *Service) reject(ctx context.Context, req *Request, err error) error {
	code := derrors.CodeOf(err)

	event := audit.Event{
		Action:    audit.ActionCheckoutRejected,
		Decision:  "rejected",
		Reason:    string(code),
		RequestID: requestcontext.RequestID(ctx),
	}
	if req != nil {
		event.RequesterUID = req.RequesterUID
		event.AssetID = req.AssetID
	}
	s.notifier.Emit(ctx, event)
	s.metrics.IncrementOutcome("rejected", string(code))

	if s.logger != nil {
		s.logger.WarnContext(ctx, "checkout rejected",
			"request_id", requestcontext.RequestID(ctx),
			"requester_uid", event.RequesterUID,
			"asset_id", event.AssetID,
			"code", code,
			"error", err,
		)
	}
	return err
}
