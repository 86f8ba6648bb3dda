package convert

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Metrics holds the Prometheus metrics for conversions
type Metrics struct {
	conversionsTotal      *prometheus.CounterVec
	conversionDuration    *prometheus.HistogramVec
	checksumFailuresTotal prometheus.Counter
	bytesWrittenTotal     prometheus.Counter
}

// NewMetrics creates the conversion metrics and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		conversionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tinyprs_conversions_total",
				Help: "Total number of preset conversions",
			},
			[]string{"direction", "status"},
		),
		conversionDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tinyprs_conversion_duration_seconds",
				Help:    "Preset conversion duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"direction"},
		),
		checksumFailuresTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "tinyprs_checksum_failures_total",
				Help: "Total number of records rejected for a checksum mismatch",
			},
		),
		bytesWrittenTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "tinyprs_bytes_written_total",
				Help: "Total number of bytes written to output files",
			},
		),
	}
}

// RecordConversion records the outcome of one conversion
func (m *Metrics) RecordConversion(direction Direction, success bool, duration time.Duration) {
	status := statusSuccess
	if !success {
		status = statusError
	}
	m.conversionsTotal.WithLabelValues(string(direction), status).Inc()
	m.conversionDuration.WithLabelValues(string(direction)).Observe(duration.Seconds())
}

// RecordChecksumFailure counts a record rejected by checksum verification
func (m *Metrics) RecordChecksumFailure() {
	m.checksumFailuresTotal.Inc()
}

// RecordBytesWritten adds n to the written byte count
func (m *Metrics) RecordBytesWritten(n int) {
	m.bytesWrittenTotal.Add(float64(n))
}

// WriteTextfile writes everything g gathers to path in the node exporter
// textfile format
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
