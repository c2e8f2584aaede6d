package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Store is an append-only sink for audit events. Implementations: in-memory
// (tests, local runs) and Kafka (deployments with a broker).
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByRequester(ctx context.Context, uid string) ([]Event, error)
}

// Publisher captures structured audit events. It stamps defaults (ID,
// category, timestamp) and hands off to the configured store so tests can
// swap sinks easily.
type Publisher struct {
	store  Store
	logger *slog.Logger
}

// Option configures the Publisher.
type Option func(*Publisher)

// WithLogger sets a logger for emission failures.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

// NewPublisher creates a publisher over the given sink.
func NewPublisher(store Store, opts ...Option) *Publisher {
	p := &Publisher{store: store}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Emit appends an audit event. Failures are logged and counted but never
// returned: the notification hook must not mask or alter the checkout result.
func (p *Publisher) Emit(ctx context.Context, event Event) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Category == "" {
		event.Category = event.Action.Category()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	if err := p.store.Append(ctx, event); err != nil {
		emitFailures.Inc()
		if p.logger != nil {
			p.logger.WarnContext(ctx, "audit emission failed",
				"action", event.Action,
				"requester_uid", event.RequesterUID,
				"asset_id", event.AssetID,
				"error", err,
			)
		}
		return
	}
	eventsEmitted.WithLabelValues(string(event.Category)).Inc()
}
