package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusCollector struct {
	// Counters
	requestsTotal     *prometheus.CounterVec
	signupsTotal      prometheus.Counter
	signinsTotal      *prometheus.CounterVec
	postsCreatedTotal prometheus.Counter
	messagesSentTotal prometheus.Counter
	donationsAmount   prometheus.Counter

	// Histograms
	requestDuration *prometheus.HistogramVec

	// Gauges
	connectionsPending prometheus.Gauge
}

func NewPrometheusCollector() *PrometheusCollector {
	return &PrometheusCollector{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "alumninet_http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),

		signupsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "alumninet_signups_total",
			Help: "Total number of successful signups",
		}),

		signinsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "alumninet_signins_total",
			Help: "Total number of signin attempts",
		}, []string{"result"}),

		postsCreatedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "alumninet_posts_created_total",
			Help: "Total number of posts created",
		}),

		messagesSentTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "alumninet_messages_sent_total",
			Help: "Total number of direct messages sent",
		}),

		donationsAmount: promauto.NewCounter(prometheus.CounterOpts{
			Name: "alumninet_donations_amount_total",
			Help: "Total donation amount recorded",
		}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "alumninet_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		}, []string{"method", "path"}),

		connectionsPending: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "alumninet_connections_pending",
			Help: "Number of connection requests awaiting a decision",
		}),
	}
}

func (p *PrometheusCollector) RecordRequest(method, path, status string, duration time.Duration) {
	p.requestsTotal.WithLabelValues(method, path, status).Inc()
	p.requestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (p *PrometheusCollector) RecordSignup() {
	p.signupsTotal.Inc()
}

func (p *PrometheusCollector) RecordSignin(success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	p.signinsTotal.WithLabelValues(result).Inc()
}

func (p *PrometheusCollector) RecordPostCreated() {
	p.postsCreatedTotal.Inc()
}

func (p *PrometheusCollector) RecordMessageSent() {
	p.messagesSentTotal.Inc()
}

func (p *PrometheusCollector) RecordDonation(amount float64) {
	p.donationsAmount.Add(amount)
}

func (p *PrometheusCollector) RecordConnectionRequested() {
	p.connectionsPending.Inc()
}

func (p *PrometheusCollector) RecordConnectionResolved() {
	p.connectionsPending.Dec()
}
