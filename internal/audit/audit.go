// Package audit records admin-surface mutations. Events are emitted from
// services after a successful write; publishing is fire-and-forget so a sink
// outage never fails the mutation it describes.
package audit

import (
	"context"
	"log/slog"
	"time"
)

// Event captures one admin action. Keep it transport-agnostic so sinks can
// fan out.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Entity    string    `json:"entity"`
	EntityID  string    `json:"entity_id"`
	Action    string    `json:"action"`
	RequestID string    `json:"request_id,omitempty"`
}

// Actions recorded on the admin surface.
const (
	ActionCreated    = "created"
	ActionUpdated    = "updated"
	ActionDeleted    = "deleted"
	ActionBulkImport = "bulk_imported"
)

// Publisher delivers audit events to a sink.
type Publisher interface {
	Emit(ctx context.Context, event Event)
}

// LogPublisher writes audit events to the structured log. It is the default
// sink when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher creates a log-backed publisher.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Emit(ctx context.Context, event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	p.logger.InfoContext(ctx, "audit event",
		"entity", event.Entity,
		"entity_id", event.EntityID,
		"action", event.Action,
		"request_id", event.RequestID,
	)
}

// Nop discards all events. Useful in tests that don't assert on auditing.
type Nop struct{}

func (Nop) Emit(context.Context, Event) {}
