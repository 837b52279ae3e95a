package request

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestNewRateLimit(t *testing.T) {
	t.Parallel()
	require.Equal(t, rate.Inf, NewRateLimit(0, 0).Limit())
	require.Equal(t, 1, NewRateLimit(0, 0).Burst())
	require.Equal(t, 0.5, float64(NewRateLimit(time.Second*2, 1).Limit()))
	require.Equal(t, 0.5, float64(NewRateLimit(time.Second*10, 5).Limit()))
	require.Equal(t, rate.Inf, NewRateLimit(time.Second*2, 0).Limit())
	require.Equal(t, rate.Inf, NewRateLimit(0, 69).Limit())
}

func TestWithLimiter(t *testing.T) {
	t.Parallel()
	r, err := New("test", new(http.Client), WithLimiter(NewRateLimit(time.Hour, 1)))
	require.NoError(t, err)

	require.NoError(t, r.waitForLimiter(t.Context()), "first request consumes the burst")
	err = r.waitForLimiter(WithDelayNotAllowed(t.Context()))
	require.ErrorIs(t, err, ErrDelayNotAllowed)

	err = r.SendPayload(WithDelayNotAllowed(t.Context()), func() (*Item, error) {
		t.Fatal("generate must not be called when the limiter rejects")
		return nil, nil
	})
	assert.ErrorIs(t, err, ErrDelayNotAllowed)

	unlimited, err := New("test", new(http.Client))
	require.NoError(t, err)
	assert.NoError(t, unlimited.waitForLimiter(WithDelayNotAllowed(t.Context())))
}
