package logger

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// ContextLogger decorates log entries with per-request identifiers: the
// authenticated user ID the auth middleware stores in the request context,
// and the trace ID when a span is recording.
type ContextLogger struct {
	base *zap.Logger
}

func NewContextLogger(base *zap.Logger) *ContextLogger {
	return &ContextLogger{base: base}
}

// WithContext returns the base logger extended with whichever request
// identifiers are present in ctx.
func (cl *ContextLogger) WithContext(ctx context.Context) *zap.Logger {
	fields := make([]zap.Field, 0, 2)

	if id, ok := ctx.Value("user_id").(string); ok && id != "" {
		fields = append(fields, zap.String("user_id", id))
	}

	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		fields = append(fields, zap.String("trace_id", sc.TraceID().String()))
	}

	if len(fields) == 0 {
		return cl.base
	}
	return cl.base.With(fields...)
}
