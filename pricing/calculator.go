package pricing

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/noah-isme/delivery-cost/internal/config"
	"github.com/noah-isme/delivery-cost/internal/obs"
)

var calculatorNopLogger = zerolog.Nop()

// Calculator quotes delivery prices and records each outcome in logs and metrics.
// Configure it with the With* methods before first use; afterwards it is safe for
// concurrent use. Instrumentation never changes the computed result.
type Calculator struct {
	logger  *zerolog.Logger
	metrics *obs.QuoteMetrics
}

// NewCalculator returns a Calculator without logging or metrics.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// NewCalculatorFromEnv builds a Calculator whose logger and metrics are configured
// from the environment. Metrics are registered on reg, or the default registerer
// when reg is nil.
func NewCalculatorFromEnv(reg prometheus.Registerer) (*Calculator, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return newCalculatorFromConfig(cfg, os.Stdout, reg), nil
}

func newCalculatorFromConfig(cfg *config.Config, w io.Writer, reg prometheus.Registerer) *Calculator {
	logger := obs.NewLogger(w, cfg.LogFormat, cfg.LogLevel).With().
		Str("component", "pricing").
		Str("env", cfg.AppEnv).
		Logger()
	return NewCalculator().WithLogger(logger).WithMetrics(cfg.MetricsNamespace, reg)
}

// WithLogger configures the logger used for quote events.
func (c *Calculator) WithLogger(logger zerolog.Logger) *Calculator {
	c.logger = &logger
	return c
}

// WithMetrics registers quote collectors under namespace on reg.
func (c *Calculator) WithMetrics(namespace string, reg prometheus.Registerer) *Calculator {
	c.metrics = obs.NewQuoteMetrics(namespace, reg)
	return c
}

// Quote validates in and returns its price breakdown.
func (c *Calculator) Quote(ctx context.Context, in Input) (Breakdown, error) {
	b, err := Explain(in)
	if err != nil {
		c.recordRejected(ctx, err)
		return Breakdown{}, err
	}
	c.recordAccepted(ctx, in, b)
	return b, nil
}

// QuoteValues is Quote over loosely typed values, see InputFromValues.
func (c *Calculator) QuoteValues(ctx context.Context, values map[string]any) (Breakdown, error) {
	return c.Quote(ctx, InputFromValues(values))
}

func (c *Calculator) recordAccepted(ctx context.Context, in Input, b Breakdown) {
	c.metrics.ObserveAccepted(b.Total, b.MinimumApplied)

	evt := c.loggerFor(ctx).Debug().
		Float64("distance_km", *in.Distance).
		Str("size", string(*in.Size)).
		Bool("fragile", *in.Fragile).
		Str("workload", b.Workload.String()).
		Int64("subtotal", b.Subtotal).
		Int64("total", b.Total).
		Bool("minimum_applied", b.MinimumApplied)
	if traceID := obs.TraceID(ctx); traceID != "" {
		evt = evt.Str("trace_id", traceID)
	}
	evt.Msg("delivery_quote")
}

func (c *Calculator) recordRejected(ctx context.Context, err error) {
	reason := KindOf(err).String()
	c.metrics.ObserveRejected(reason)

	evt := c.loggerFor(ctx).Info().Str("reason", reason).Err(err)
	if traceID := obs.TraceID(ctx); traceID != "" {
		evt = evt.Str("trace_id", traceID)
	}
	evt.Msg("delivery_quote_rejected")
}

func (c *Calculator) loggerFor(ctx context.Context) *zerolog.Logger {
	if ctx != nil {
		if ctxLogger := zerolog.Ctx(ctx); ctxLogger != nil && ctxLogger.GetLevel() != zerolog.Disabled {
			return ctxLogger
		}
	}
	if c.logger == nil {
		return &calculatorNopLogger
	}
	return c.logger
}
