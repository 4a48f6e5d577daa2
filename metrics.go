package main

import (
	"github.com/9seconds/geochain/geolib"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "geochain"

// metricsLogger counts chain events per provider and passes them
// further to a wrapped logger.
type metricsLogger struct {
	logger geolib.Logger

	attempts *prometheus.CounterVec
	errors   *prometheus.CounterVec
	resolved *prometheus.CounterVec
	skipped  *prometheus.CounterVec
}

func (m *metricsLogger) LocateAttempt(ip geolib.IP, name string) {
	m.attempts.WithLabelValues(name).Inc()
	m.logger.LocateAttempt(ip, name)
}

func (m *metricsLogger) LocateError(ip geolib.IP, name string, err error) {
	m.errors.WithLabelValues(name).Inc()
	m.logger.LocateError(ip, name, err)
}

func (m *metricsLogger) LocateResolved(ip geolib.IP, name string) {
	m.resolved.WithLabelValues(name).Inc()
	m.logger.LocateResolved(ip, name)
}

func (m *metricsLogger) ProviderSkipped(name string, err error) {
	m.skipped.WithLabelValues(name).Inc()
	m.logger.ProviderSkipped(name, err)
}

func newMetricsLogger(registry prometheus.Registerer, logger geolib.Logger) *metricsLogger {
	factory := promauto.With(registry)
	labels := []string{"provider"}

	return &metricsLogger{
		logger: logger,
		attempts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "locate_attempts_total",
			Help:      "The total number of requests to providers.",
		}, labels),
		errors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "locate_errors_total",
			Help:      "The total number of provider requests without usable result.",
		}, labels),
		resolved: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "locate_resolved_total",
			Help:      "The total number of locations resolved by providers.",
		}, labels),
		skipped: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "provider_skipped_total",
			Help:      "The total number of providers skipped because of configuration errors.",
		}, labels),
	}
}
