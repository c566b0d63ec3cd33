package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// singleton instance
	instance *Metrics
	once     sync.Once
)

// Metrics holds Prometheus metrics of the notification sync and the
// dashboard API.
type Metrics struct {
	// Sync client metrics
	FetchesTotal          prometheus.Counter
	FetchFailuresTotal    prometheus.Counter
	StaleResultsDiscarded prometheus.Counter
	ChangeEventsTotal     *prometheus.CounterVec
	ActiveSessions        prometheus.Gauge
	SubscribeRetriesTotal prometheus.Counter

	// Listener metrics
	ListenerReconnectsTotal prometheus.Counter
	ListenerSubscribers     prometheus.Gauge

	// API metrics
	APIRequestsTotal   *prometheus.CounterVec
	APIRequestDuration *prometheus.HistogramVec
	StreamsActive      prometheus.Gauge
}

// GetMetrics returns the metrics singleton
func GetMetrics() *Metrics {
	once.Do(func() {
		instance = newMetrics()
	})
	return instance
}

func newMetrics() *Metrics {
	m := &Metrics{}

	m.FetchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fleet_notify_fetches_total",
		Help: "Total number of notification fetches issued",
	})
	m.FetchFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fleet_notify_fetch_failures_total",
		Help: "Total number of notification fetches that failed",
	})
	m.StaleResultsDiscarded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fleet_notify_stale_results_discarded_total",
		Help: "Total number of fetch completions discarded as stale",
	})
	m.ChangeEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fleet_notify_change_events_total",
			Help: "Total number of change events delivered to sync sessions",
		},
		[]string{"type"},
	)
	m.ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "fleet_notify_active_sessions",
		Help: "Number of active sync sessions",
	})
	m.SubscribeRetriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fleet_notify_subscribe_retries_total",
		Help: "Total number of failed subscription attempts",
	})

	m.ListenerReconnectsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fleet_notify_listener_reconnects_total",
		Help: "Total number of change listener reconnects",
	})
	m.ListenerSubscribers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "fleet_notify_listener_subscribers",
		Help: "Number of change feed subscribers",
	})

	m.APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fleet_notify_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status"},
	)
	m.APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fleet_notify_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	m.StreamsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "fleet_notify_streams_active",
		Help: "Number of open notification streams",
	})

	return m
}
