package obs

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// TraceID extracts the OpenTelemetry trace identifier from ctx if a valid span is present.
func TraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	span := trace.SpanContextFromContext(ctx)
	if span.IsValid() {
		return span.TraceID().String()
	}
	return ""
}
