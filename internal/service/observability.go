package service

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// OperationEvent records one executed service operation against a
// maintenance task.
type OperationEvent struct {
	Operation     string
	MaintenanceID string
	Duration      time.Duration
	Err           error
}

// OperationObserver receives service operation events.
type OperationObserver interface {
	Observe(ctx context.Context, event OperationEvent)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) Observe(context.Context, OperationEvent) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes operation events to the provided writer.
func NewLogObserver(w io.Writer) OperationObserver {
	if w == nil {
		return NoopObserver{}
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logObserver) Observe(ctx context.Context, event OperationEvent) {
	attrs := []any{
		"operation", event.Operation,
		"maintenance_id", event.MaintenanceID,
		"duration_ms", event.Duration.Milliseconds(),
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "maintenance_operation", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "maintenance_operation", attrs...)
}
