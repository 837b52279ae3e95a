package request

import (
	"net/http"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	r, err := New("metrics", new(http.Client), WithMetrics(reg), WithUsageHeaders("X-MBX-USED-WEIGHT-"))
	require.NoError(t, err)
	require.NotNil(t, r.metrics)

	_, err = New("metrics", new(http.Client), WithMetrics(reg))
	require.Error(t, err, "duplicate collectors must fail registration")

	require.NoError(t, r.SendPayload(request(t, testURL, nil, nil)))
	var httpErr *HTTPError
	require.ErrorAs(t, r.SendPayload(request(t, testURL+"/error", nil, nil)), &httpErr)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.metrics.requests.WithLabelValues("/", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.metrics.requests.WithLabelValues("/error", "429")))
	assert.Equal(t, 7.0, testutil.ToFloat64(r.metrics.usage.WithLabelValues("X-Mbx-Used-Weight-1m")))

	err = testutil.CollectAndCompare(r.metrics.usage, strings.NewReader(`
# HELP binancespot_rate_limit_usage Last reported rate limit usage by response header
# TYPE binancespot_rate_limit_usage gauge
binancespot_rate_limit_usage{header="X-Mbx-Used-Weight-1m",requester="metrics"} 7
`))
	assert.NoError(t, err)
}

func TestMetricsNil(t *testing.T) {
	t.Parallel()
	var m *metrics
	m.observe("/", 200, 0)
	m.observeUsage(http.Header{"X-Mbx-Used-Weight-1m": []string{"1"}}, []string{"X-Mbx-Used-Weight-"})
	assert.False(t, hasAnyPrefix("Content-Type", []string{"X-Mbx-"}))
	assert.True(t, hasAnyPrefix("X-Mbx-Order-Count-10s", []string{"X-Mbx-Used-Weight-", "X-Mbx-Order-Count-"}))
}
