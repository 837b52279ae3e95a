package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Selector struct {
	Symbol string `url:"symbol,omitempty"`
}

type testParams struct {
	Symbol    string  `url:"symbol"`
	Interval  string  `url:"interval"`
	StartTime *int64  `url:"startTime,omitempty"`
	Limit     *uint16 `url:"limit,omitempty"`
	Ignored   string  `url:"-"`
}

type testEmbedded struct {
	Kind string `url:"type"`
	Selector
	Window string `url:"windowSize,omitempty"`
}

func TestEncodeQuery(t *testing.T) {
	t.Parallel()
	limit := uint16(2)
	for name, tc := range map[string]struct {
		params   any
		expected string
	}{
		"nil":               {params: nil, expected: ""},
		"nil pointer":       {params: (*testParams)(nil), expected: ""},
		"declaration order": {params: &testParams{Symbol: "BTCUSDT", Interval: "1m", Limit: &limit, Ignored: "x"}, expected: "symbol=BTCUSDT&interval=1m&limit=2"},
		"value struct":      {params: testParams{Symbol: "ETHBTC", Interval: "1h"}, expected: "symbol=ETHBTC&interval=1h"},
		"embedded in place": {params: testEmbedded{Kind: "MINI", Selector: Selector{Symbol: "BNBBTC"}, Window: "1d"}, expected: "type=MINI&symbol=BNBBTC&windowSize=1d"},
		"all omitted":       {params: &Selector{}, expected: ""},
		"escaping":          {params: &Selector{Symbol: `["A","B"]`}, expected: "symbol=%5B%22A%22%2C%22B%22%5D"},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := EncodeQuery(tc.params)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}

	_, err := EncodeQuery(42)
	assert.Error(t, err, "non struct parameters should not encode")
}

func TestJoinErrors(t *testing.T) {
	t.Parallel()
	errSentinel := errors.New("sentinel")
	assert.NoError(t, JoinErrors(errSentinel, nil))
	inner := errors.New("inner")
	err := JoinErrors(errSentinel, inner)
	assert.ErrorIs(t, err, errSentinel)
	assert.ErrorIs(t, err, inner)
}
