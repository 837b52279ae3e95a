package request

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/thrasher-corp/binancespot/log"
)

const metricsNamespace = "binancespot"

type metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	usage    *prometheus.GaugeVec
}

// WithMetrics registers request collectors on reg. Collectors are labelled
// with the requester name so several requesters may share a registry.
func WithMetrics(reg prometheus.Registerer) RequesterOption {
	return func(r *Requester) {
		r.registerer = reg
	}
}

// WithUsageHeaders records the numeric value of every response header
// starting with one of the supplied prefixes as a usage gauge when metrics
// are enabled
func WithUsageHeaders(prefixes ...string) RequesterOption {
	return func(r *Requester) {
		for _, p := range prefixes {
			r.usageHeaders = append(r.usageHeaders, http.CanonicalHeaderKey(p))
		}
	}
}

func newMetrics(name string, reg prometheus.Registerer) (*metrics, error) {
	constLabels := prometheus.Labels{"requester": name}
	m := &metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   metricsNamespace,
			Name:        "http_requests_total",
			Help:        "HTTP requests sent by endpoint and status code, code 0 is a transport failure",
			ConstLabels: constLabels,
		}, []string{"endpoint", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   metricsNamespace,
			Name:        "http_request_duration_seconds",
			Help:        "HTTP round trip duration by endpoint",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"endpoint"}),
		usage: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   metricsNamespace,
			Name:        "rate_limit_usage",
			Help:        "Last reported rate limit usage by response header",
			ConstLabels: constLabels,
		}, []string{"header"}),
	}
	for _, c := range []prometheus.Collector{m.requests, m.duration, m.usage} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *metrics) observe(endpoint string, code int, d time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(endpoint, strconv.Itoa(code)).Inc()
	m.duration.WithLabelValues(endpoint).Observe(d.Seconds())
}

func (m *metrics) observeUsage(h http.Header, prefixes []string) {
	if m == nil || len(prefixes) == 0 {
		return
	}
	for k, v := range h {
		if len(v) == 0 || !hasAnyPrefix(k, prefixes) {
			continue
		}
		f, err := strconv.ParseFloat(v[0], 64)
		if err != nil {
			log.Warnf(log.RequestSys, "unable to parse usage header %s value %q: %v", k, v[0], err)
			continue
		}
		m.usage.WithLabelValues(k).Set(f)
	}
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
