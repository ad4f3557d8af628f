package obs_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.opentelemetry.io/otel/trace"

	"github.com/noah-isme/delivery-cost/internal/obs"
)

func TestNewLoggerLevelAndFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := obs.NewLogger(&buf, "json", "warn")
	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info event should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, `"message":"shown"`) {
		t.Fatalf("expected json warn event, got %s", out)
	}

	buf.Reset()
	console := obs.NewLogger(&buf, "console", "bogus")
	console.Info().Msg("hello")
	if strings.Contains(buf.String(), `"message"`) || !strings.Contains(buf.String(), "hello") {
		t.Fatalf("expected console output at info fallback level, got %s", buf.String())
	}
}

func TestQuoteMetricsReuseRegistered(t *testing.T) {
	registry := prometheus.NewRegistry()
	first := obs.NewQuoteMetrics("toko", registry)
	second := obs.NewQuoteMetrics("toko", registry)

	second.ObserveAccepted(480, false)
	second.ObserveAccepted(400, true)
	second.ObserveRejected("invalid_size")

	if got := testutil.ToFloat64(first.Total.WithLabelValues("ok")); got != 2 {
		t.Fatalf("expected 2 accepted quotes, got %v", got)
	}
	if got := testutil.ToFloat64(first.Total.WithLabelValues("invalid_size")); got != 1 {
		t.Fatalf("expected 1 rejected quote, got %v", got)
	}
	if got := testutil.ToFloat64(first.MinimumApplied); got != 1 {
		t.Fatalf("expected minimum counter 1, got %v", got)
	}

	var nilMetrics *obs.QuoteMetrics
	nilMetrics.ObserveAccepted(400, true)
	nilMetrics.ObserveRejected("invalid_size")
}

func TestTraceID(t *testing.T) {
	if id := obs.TraceID(context.Background()); id != "" {
		t.Fatalf("expected empty trace id, got %q", id)
	}
	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: traceID,
		SpanID:  spanID,
	}))
	if id := obs.TraceID(ctx); id != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Fatalf("unexpected trace id %q", id)
	}
}
