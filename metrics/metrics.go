package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kova98/redditgrow.api/enums"
)

const namespace = "redditgrow"

// Metrics is nil-safe: a nil *Metrics records nothing.
type Metrics struct {
	registry         *prometheus.Registry
	analyses         *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	oauthExchanges   *prometheus.CounterVec
	requests         *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Post analyses by the stage they ended in.",
		}, []string{"stage"}),
		upstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Latency of calls to the Reddit API.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint", "code"}),
		oauthExchanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "oauth_exchanges_total",
			Help:      "Reddit OAuth code exchanges by result.",
		}, []string{"result"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Handled API requests.",
		}, []string{"method", "path", "code"}),
	}

	m.registry.MustRegister(
		m.analyses,
		m.upstreamDuration,
		m.oauthExchanges,
		m.requests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveAnalysis(stage enums.Stage) {
	if m == nil {
		return
	}
	m.analyses.WithLabelValues(string(stage)).Inc()
}

// ObserveUpstream records a Reddit API call. code is 0 when no response arrived.
func (m *Metrics) ObserveUpstream(endpoint string, code int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.upstreamDuration.WithLabelValues(endpoint, codeLabel(code)).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveOAuthExchange(success bool) {
	if m == nil {
		return
	}
	result := "failure"
	if success {
		result = "success"
	}
	m.oauthExchanges.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveRequest(method, path string, code int) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, path, codeLabel(code)).Inc()
}

func codeLabel(code int) string {
	if code == 0 {
		return "error"
	}
	return strconv.Itoa(code)
}
