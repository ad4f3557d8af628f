package obs

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// QuoteMetrics groups Prometheus collectors for delivery quotes.
type QuoteMetrics struct {
	// Total counts quote outcomes by result ("ok" or the rejection kind).
	Total *prometheus.CounterVec
	// Cost records the distribution of quoted prices.
	Cost prometheus.Histogram
	// MinimumApplied counts quotes clamped to the minimum price.
	MinimumApplied prometheus.Counter
}

// NewQuoteMetrics registers and returns quote collectors. Collectors already
// registered on reg are reused.
func NewQuoteMetrics(namespace string, reg prometheus.Registerer) *QuoteMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &QuoteMetrics{
		Total: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "delivery_quotes_total",
			Help:      "Count of delivery quote outcomes.",
		}, []string{"result"}),
		Cost: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "delivery_quote_cost",
			Help:      "Distribution of quoted delivery prices.",
			Buckets:   []float64{400, 500, 640, 800, 1000, 1280, 1600},
		}),
		MinimumApplied: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "delivery_quote_minimum_applied_total",
			Help:      "Number of quotes raised to the minimum delivery price.",
		}),
	}

	mustRegisterCollector(reg, m.Total, func(existing prometheus.Collector) {
		if v, ok := existing.(*prometheus.CounterVec); ok {
			m.Total = v
		}
	})
	mustRegisterCollector(reg, m.Cost, func(existing prometheus.Collector) {
		if v, ok := existing.(prometheus.Histogram); ok {
			m.Cost = v
		}
	})
	mustRegisterCollector(reg, m.MinimumApplied, func(existing prometheus.Collector) {
		if v, ok := existing.(prometheus.Counter); ok {
			m.MinimumApplied = v
		}
	})
	return m
}

// ObserveAccepted records a successful quote.
func (m *QuoteMetrics) ObserveAccepted(cost int64, minimumApplied bool) {
	if m == nil {
		return
	}
	m.Total.WithLabelValues("ok").Inc()
	m.Cost.Observe(float64(cost))
	if minimumApplied {
		m.MinimumApplied.Inc()
	}
}

// ObserveRejected records a quote refused for reason.
func (m *QuoteMetrics) ObserveRejected(reason string) {
	if m == nil {
		return
	}
	m.Total.WithLabelValues(reason).Inc()
}

func mustRegisterCollector(reg prometheus.Registerer, collector prometheus.Collector, reuse func(prometheus.Collector)) {
	if err := reg.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if reuse != nil {
				reuse(are.ExistingCollector)
			}
			return
		}
		panic(fmt.Errorf("register quote metric: %w", err))
	}
}
