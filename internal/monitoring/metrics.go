package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Analysis run metrics
	analysesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analyzer_runs_total",
			Help: "Total number of analysis runs",
		},
		[]string{"symbol", "status"},
	)

	analysisDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "analyzer_run_duration_seconds",
			Help:    "Distribution of analysis run durations",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"symbol"},
	)

	// Detection metrics
	eventsDetected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analyzer_events_detected_total",
			Help: "Total number of pattern events detected",
		},
		[]string{"symbol", "kind"},
	)

	// Market data metrics
	lastRSI = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "analyzer_last_rsi",
			Help: "Latest RSI reading per symbol",
		},
		[]string{"symbol"},
	)

	seriesLength = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "analyzer_series_length",
			Help: "Number of observations in the last analyzed series",
		},
		[]string{"symbol"},
	)
)

func init() {
	prometheus.MustRegister(analysesTotal)
	prometheus.MustRegister(analysisDuration)
	prometheus.MustRegister(eventsDetected)
	prometheus.MustRegister(lastRSI)
	prometheus.MustRegister(seriesLength)
}

// MetricsHandler handles the Prometheus metrics endpoint.
type MetricsHandler struct{}

// NewMetricsHandler creates a new metrics handler.
func NewMetricsHandler() *MetricsHandler {
	return &MetricsHandler{}
}

// ServeHTTP serves the Prometheus metrics endpoint.
func (m *MetricsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// RecordAnalysis records one analysis run outcome.
func RecordAnalysis(symbol, status string, durationSeconds float64) {
	analysesTotal.WithLabelValues(symbol, status).Inc()
	analysisDuration.WithLabelValues(symbol).Observe(durationSeconds)
}

// RecordEvent counts one detected pattern event.
func RecordEvent(symbol, kind string) {
	eventsDetected.WithLabelValues(symbol, kind).Inc()
}

// UpdateRSI publishes the latest RSI reading.
func UpdateRSI(symbol string, value float64) {
	lastRSI.WithLabelValues(symbol).Set(value)
}

// UpdateSeriesLength publishes the observation count of the last run.
func UpdateSeriesLength(symbol string, length int) {
	seriesLength.WithLabelValues(symbol).Set(float64(length))
}
