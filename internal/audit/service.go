package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"loandraft/pkg/requestcontext"
)

// Store persists audit events. Implementations live under store/; reads go
// through the concrete stores, the recorder only ever appends.
type Store interface {
	Append(ctx context.Context, event Event) error
}

// Sink receives serialized events for out-of-process consumers, typically
// the Kafka publisher. It may be nil when no broker is configured.
type Sink interface {
	Publish(ctx context.Context, key string, value []byte) error
}

// Recorder captures audit events. Recording is strictly best-effort: a
// failing store or sink is logged and never surfaces to the caller, so the
// submission pipeline cannot be taken down by its own audit trail.
type Recorder struct {
	store  Store
	sink   Sink
	logger *slog.Logger
}

func NewRecorder(store Store, sink Sink, logger *slog.Logger) *Recorder {
	return &Recorder{store: store, sink: sink, logger: logger}
}

func (r *Recorder) Record(ctx context.Context, event Event) {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	if event.RequestID == "" {
		event.RequestID = requestcontext.RequestID(ctx)
	}

	if err := r.store.Append(ctx, event); err != nil {
		r.logger.ErrorContext(ctx, "audit append failed",
			"action", event.Action,
			"table", event.Table,
			"error", err,
		)
	}

	if r.sink == nil {
		return
	}
	value, err := marshalEvent(event)
	if err != nil {
		r.logger.ErrorContext(ctx, "audit marshal failed", "action", event.Action, "error", err)
		return
	}
	if err := r.sink.Publish(ctx, event.ID.String(), value); err != nil {
		r.logger.ErrorContext(ctx, "audit publish failed",
			"action", event.Action,
			"error", err,
		)
	}
}
