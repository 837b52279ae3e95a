package mock

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchURLVals(t *testing.T) {
	t.Parallel()
	btc := url.Values{"symbol": {"BTCUSDT"}}
	both := url.Values{"symbol": {"BTCUSDT", "ETHBTC"}}
	for name, tc := range map[string]struct {
		recorded, received url.Values
		match              bool
	}{
		"recorded key missing":   {recorded: btc, received: url.Values{}},
		"unexpected key":         {recorded: url.Values{}, received: btc},
		"different keys":         {recorded: btc, received: url.Values{"limit": {"5"}}},
		"different value":        {recorded: btc, received: url.Values{"symbol": {"ETHBTC"}}},
		"repeated key reordered": {recorded: both, received: url.Values{"symbol": {"ETHBTC", "BTCUSDT"}}},
		"extra param":            {recorded: btc, received: url.Values{"symbol": {"BTCUSDT"}, "limit": {"5"}}},
		"nil and empty":          {recorded: url.Values{}, received: nil, match: true},
		"same single value":      {recorded: btc, received: url.Values{"symbol": {"BTCUSDT"}}, match: true},
		"same repeated key":      {recorded: both, received: both, match: true},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.match, MatchURLVals(tc.recorded, tc.received))
		})
	}
}
