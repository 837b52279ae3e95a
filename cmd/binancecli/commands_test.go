package main

import (
	"bytes"
	"errors"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thrasher-corp/binancespot/encoding/json"
	"github.com/thrasher-corp/binancespot/exchanges/binance"
	"github.com/thrasher-corp/binancespot/exchanges/mock"
)

var serverURL string

func TestMain(m *testing.M) {
	s, err := mock.NewVCRServer(filepath.Join("..", "..", "exchanges", "binance", "testdata", "http.json"))
	if err != nil {
		log.Fatalf("mock server error: %s", err)
	}
	serverURL = s.URL
	code := m.Run()
	s.Close()
	os.Exit(code)
}

// runApp runs the cli against the mock server. The cli keeps its flag values
// in package variables so tests using it cannot run in parallel.
func runApp(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	app := newApp()
	var out, errOut bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &errOut
	err = app.Run(append([]string{"binancecli", "--baseurl", serverURL, "--nocolour"}, args...))
	return out.String(), errOut.String(), err
}

func TestPing(t *testing.T) {
	out, errOut, err := runApp(t, "ping")
	require.NoError(t, err)
	assert.Equal(t, "{}\n", out)
	assert.Equal(t, "used weight 1M: 1\n", errOut)
}

func TestCommands(t *testing.T) {
	for name, tc := range map[string]struct {
		args     []string
		contains string
	}{
		"time":             {args: []string{"time"}, contains: `"serverTime"`},
		"exchange info":    {args: []string{"exchangeinfo", "--symbol", "bnbbtc", "--showpermissionsets=false"}, contains: `"BNBBTC"`},
		"depth":            {args: []string{"depth", "--symbol", "btcusdt", "--limit", "5"}, contains: `"lastUpdateId": 1027024`},
		"trades":           {args: []string{"trades", "--symbol", "BTCUSDT", "--limit", "1"}, contains: `"isBuyerMaker"`},
		"historical":       {args: []string{"historicaltrades", "--symbol", "BTCUSDT", "--limit", "1", "--fromid", "28457"}, contains: `"id"`},
		"aggregate trades": {args: []string{"aggtrades", "--symbol", "BTCUSDT", "--start", "1498793709153", "--end", "1498793709163"}, contains: `"a"`},
		"klines":           {args: []string{"klines", "--symbol", "BTCUSDT", "--interval", "1m", "--limit", "2"}, contains: `"openTime": 1499040000000`},
		"ui klines":        {args: []string{"uiklines", "--symbol", "btcusdt", "--interval", "1d", "--timezone", "8", "--limit", "1"}, contains: `"tradeCount"`},
		"average price":    {args: []string{"avgprice", "--symbol", "BTCUSDT"}, contains: `"mins": 5`},
		"ticker all":       {args: []string{"ticker24hr"}, contains: `"priceChange"`},
		"ticker mini":      {args: []string{"ticker24hr", "--type", "mini", "--symbol", "BNBBTC"}, contains: `"openPrice"`},
		"ticker symbols":   {args: []string{"ticker24hr", "--type", "FULL", "--symbols", "BNBBTC,BTCUSDT"}, contains: `"weightedAvgPrice"`},
		"trading day":      {args: []string{"tradingday", "--symbol", "BTCUSDT", "--timezone", "8"}, contains: `"BTCUSDT"`},
		"rolling window":   {args: []string{"rollingticker", "--type", "MINI", "--symbol", "BNBBTC", "--windowsize", "1h"}, contains: `"BNBBTC"`},
		"price":            {args: []string{"price", "--symbol", "LTCBTC"}, contains: `"symbol": "LTCBTC"`},
		"all prices":       {args: []string{"price"}, contains: `"ETHBTC"`},
		"book ticker":      {args: []string{"bookticker", "--symbols", "LTCBTC,ETHBTC"}, contains: `"bidPrice"`},
	} {
		t.Run(name, func(t *testing.T) {
			out, _, err := runApp(t, tc.args...)
			require.NoError(t, err)
			assert.True(t, json.Valid([]byte(out)), "output must be valid JSON")
			assert.Contains(t, out, tc.contains)
		})
	}
}

func TestYAMLOutput(t *testing.T) {
	out, _, err := runApp(t, "--format", "yaml", "depth", "--symbol", "BTCUSDT", "--limit", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "lastUpdateId: 1027024\n")
}

func TestCommandAPIErrors(t *testing.T) {
	_, errOut, err := runApp(t, "avgprice", "--symbol", "NOPE")
	var apiErr *binance.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, binance.ErrCodeBadSymbol, apiErr.Code)
	assert.Contains(t, errOut, "code -1121:")

	_, errOut, err = runApp(t, "avgprice", "--symbol", "LIMITED")
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, errOut, "retry after 30s")
}

func TestCommandInputErrors(t *testing.T) {
	for name, tc := range map[string]struct {
		args []string
		err  error
	}{
		"format":           {args: []string{"--format", "xml", "ping"}, err: errUnsupportedFormat},
		"ticker type":      {args: []string{"ticker24hr", "--type", "medium"}, err: errInvalidTickerType},
		"start after end":  {args: []string{"aggtrades", "--symbol", "BTCUSDT", "--start", "2", "--end", "1"}, err: errStartAfterEnd},
		"bad time":         {args: []string{"klines", "--symbol", "BTCUSDT", "--interval", "1m", "--start", "yesterday"}, err: errInvalidTime},
		"bad interval":     {args: []string{"klines", "--symbol", "BTCUSDT", "--interval", "7m"}},
		"missing symbol":   {args: []string{"depth"}},
		"missing interval": {args: []string{"klines", "--symbol", "BTCUSDT"}},
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := runApp(t, tc.args...)
			require.Error(t, err)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
			}
			var apiErr *binance.APIError
			assert.False(t, errors.As(err, &apiErr), "input errors must not reach the exchange")
		})
	}
}

func TestParseTime(t *testing.T) {
	t.Parallel()
	want := time.Date(2017, 7, 1, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{"1498867200000", "2017-07-01T00:00:00Z", "2017-07-01 00:00:00", "2017-07-01"} {
		got, err := parseTime(in)
		require.NoErrorf(t, err, "input %s", in)
		assert.Truef(t, want.Equal(got.Time()), "input %s: got %s", in, got)
	}

	got, err := parseTime("")
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	_, err = parseTime("01/07/2017")
	assert.ErrorIs(t, err, errInvalidTime)
}
