// Package telemetry records operational events for handled submissions.
package telemetry

import (
	"context"
	"time"

	"github.com/solboost/boostgate/internal/storage"
)

// Emitter appends submission events to the journal store.
type Emitter struct {
	store storage.TelemetryStore
	clock func() time.Time
}

// NewEmitter creates a new telemetry emitter.
func NewEmitter(store storage.TelemetryStore) *Emitter {
	return &Emitter{store: store, clock: time.Now}
}

// Emit records a submission event. It is a no-op when the store is nil.
func (e *Emitter) Emit(ctx context.Context, event storage.SubmissionEvent) error {
	if e == nil || e.store == nil {
		return nil
	}
	if event.Timestamp.IsZero() {
		if e.clock == nil {
			event.Timestamp = time.Now().UTC()
		} else {
			event.Timestamp = e.clock().UTC()
		}
	}
	return e.store.AppendSubmissionEvent(ctx, event)
}
