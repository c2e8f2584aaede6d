package audit

import (
	"context"
	"log/slog"
)

// Worker consumes audit events from a channel and appends them to a sink. It
// keeps emission off the checkout path: the pipeline writes to the inbox and
// moves on.
type Worker struct {
	store  Store
	inbox  chan Event
	logger *slog.Logger
}

// NewWorker creates a worker with a buffered inbox of the given size.
func NewWorker(store Store, buffer int, logger *slog.Logger) *Worker {
	if buffer <= 0 {
		buffer = 256
	}
	return &Worker{
		store:  store,
		inbox:  make(chan Event, buffer),
		logger: logger,
	}
}

// Enqueue offers an event to the worker without blocking. Events are dropped
// when the inbox is full; the notification hook is lossy by contract.
func (w *Worker) Enqueue(event Event) {
	select {
	case w.inbox <- event:
	default:
		workerDropped.Inc()
		if w.logger != nil {
			w.logger.Warn("audit inbox full, event dropped",
				"action", event.Action,
				"requester_uid", event.RequesterUID,
			)
		}
	}
}

// Run drains the inbox until the context is canceled. Append failures are
// logged and the worker keeps going; a broken sink must not stop the service.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			if err := w.store.Append(ctx, event); err != nil {
				emitFailures.Inc()
				if w.logger != nil {
					w.logger.WarnContext(ctx, "audit append failed",
						"action", event.Action,
						"error", err,
					)
				}
			}
		}
	}
}

// Append implements Store by enqueuing without blocking, so a Publisher can
// sit directly in front of the worker.
func (w *Worker) Append(_ context.Context, event Event) error {
	w.Enqueue(event)
	return nil
}

// ListByRequester delegates to the underlying sink. Events still in the inbox
// are not visible yet.
func (w *Worker) ListByRequester(ctx context.Context, uid string) ([]Event, error) {
	return w.store.ListByRequester(ctx, uid)
}
