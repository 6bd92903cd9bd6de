package monitoring

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusCollector struct {
	videosStored     prometheus.Gauge
	operationsTotal  *prometheus.CounterVec
	requestsTotal    *prometheus.CounterVec
	requestDurations *prometheus.HistogramVec
}

// NewPrometheusCollector registers the videohub metrics with reg.
// Pass prometheus.DefaultRegisterer to expose them on the default handler.
func NewPrometheusCollector(reg prometheus.Registerer) *PrometheusCollector {
	factory := promauto.With(reg)

	return &PrometheusCollector{
		videosStored: factory.NewGauge(prometheus.GaugeOpts{
			Name: "videohub_videos_stored",
			Help: "Number of videos currently held in the store",
		}),

		operationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "videohub_video_operations_total",
			Help: "Store operations by operation and outcome",
		}, []string{"operation", "outcome"}),

		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "videohub_http_requests_total",
			Help: "HTTP requests by method, route and status code",
		}, []string{"method", "route", "status"}),

		requestDurations: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "videohub_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"method", "route"}),
	}
}

func (p *PrometheusCollector) RecordOperation(operation, outcome string) {
	p.operationsTotal.WithLabelValues(operation, outcome).Inc()
}

func (p *PrometheusCollector) SetVideoCount(count int) {
	p.videosStored.Set(float64(count))
}

func (p *PrometheusCollector) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	p.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	p.requestDurations.WithLabelValues(method, route).Observe(duration.Seconds())
}
