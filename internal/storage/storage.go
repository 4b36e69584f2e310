// Package storage defines the persistence boundary for operational telemetry.
package storage

import (
	"context"
	"time"
)

// SubmissionEvent records one handled address submission for the audit
// journal. The journal is observational only: nothing reads it back into
// ledger state.
type SubmissionEvent struct {
	UserID    string
	Status    string
	Sequence  int
	Timestamp time.Time
}

// TelemetryStore appends operational telemetry events.
type TelemetryStore interface {
	AppendSubmissionEvent(ctx context.Context, event SubmissionEvent) error
}
