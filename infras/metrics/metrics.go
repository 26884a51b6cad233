package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "rental"

// Metrics holds the collectors exported on /metrics.
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal         *prometheus.CounterVec
	ReservationsCreated   prometheus.Counter
	ReservationConflicts  *prometheus.CounterVec
	StoreRetries          *prometheus.CounterVec
	StoreUnavailable      prometheus.Counter
	NotificationFailures  prometheus.Counter
	BookingTxDuration     prometheus.Histogram
	AvailabilityCacheHits *prometheus.CounterVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"route", "code", "method"},
		),
		ReservationsCreated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reservations_created_total",
				Help:      "Reservations committed by the booking coordinator",
			},
		),
		ReservationConflicts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reservation_conflicts_total",
				Help:      "Booking attempts rejected because the dates overlap an active reservation",
			},
			[]string{"source"},
		),
		StoreRetries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reservation_store_retries_total",
				Help:      "Booking transactions retried after a transient store fault",
			},
			[]string{"operation"},
		),
		StoreUnavailable: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reservation_store_unavailable_total",
				Help:      "Booking transactions that exhausted their retries",
			},
		),
		NotificationFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reservation_notification_failures_total",
				Help:      "Reservation notifications that could not be published",
			},
		),
		BookingTxDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "booking_tx_seconds",
				Help:      "Duration of booking transactions including retries",
				Buckets:   prometheus.DefBuckets,
			},
		),
		AvailabilityCacheHits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "availability_cache_lookups_total",
				Help:      "Availability calendar cache lookups by result",
			},
			[]string{"result"},
		),
	}

	registry.MustRegister(
		m.RequestsTotal,
		m.ReservationsCreated,
		m.ReservationConflicts,
		m.StoreRetries,
		m.StoreUnavailable,
		m.NotificationFailures,
		m.BookingTxDuration,
		m.AvailabilityCacheHits,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
