package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/thrasher-corp/binancespot/exchanges/binance"
	"github.com/thrasher-corp/binancespot/types"
	"github.com/urfave/cli/v2"
)

const simpleTimeFormat = "2006-01-02 15:04:05"

var (
	errInvalidTime       = errors.New("invalid time supplied")
	errInvalidTickerType = errors.New("invalid ticker type supplied")
	errStartAfterEnd     = errors.New("start cannot be after end")
)

var commonUsage = map[string]string{
	"symbol":     "the symbol to query, e.g. BTCUSDT",
	"symbols":    "a comma separated list of symbols, cannot be combined with symbol",
	"limit":      "the number of results to return",
	"fromid":     "the trade ID to start from",
	"start":      "the start time as unix milliseconds, RFC3339 or " + simpleTimeFormat,
	"end":        "the end time as unix milliseconds, RFC3339 or " + simpleTimeFormat,
	"interval":   "the kline interval, e.g. 1m, 4h, 1d, 1M",
	"timezone":   "the time zone for interval boundaries, e.g. 8 or -1:00",
	"type":       "the ticker type, FULL or MINI",
	"windowsize": "the rolling window, 1m-59m, 1h-23h or 1d-7d",
}

// SymbolSelector selects one, several or all symbols
type SymbolSelector struct {
	Symbol  string   `cli:"symbol"`
	Symbols []string `cli:"symbols"`
}

func (s SymbolSelector) convert() binance.SymbolOrSymbols {
	sel := binance.SymbolOrSymbols{Symbol: strings.ToUpper(s.Symbol)}
	for _, sym := range s.Symbols {
		sel.Symbols = append(sel.Symbols, strings.ToUpper(strings.TrimSpace(sym)))
	}
	return sel
}

// ExchangeInfoParams holds exchange info parameters
type ExchangeInfoParams struct {
	SymbolSelector
	Permissions        []string `cli:"permissions"`
	ShowPermissionSets *bool    `cli:"showpermissionsets"`
	Status             string   `cli:"status"`
}

// DepthParams holds order book and recent trade parameters
type DepthParams struct {
	Symbol string  `cli:"symbol,required"`
	Limit  *uint64 `cli:"limit"`
}

// HistoricalTradesParams holds older trade parameters
type HistoricalTradesParams struct {
	Symbol string  `cli:"symbol,required"`
	Limit  *uint64 `cli:"limit"`
	FromID *int64  `cli:"fromid"`
}

// AggTradesParams holds aggregate trade parameters
type AggTradesParams struct {
	Symbol string  `cli:"symbol,required"`
	FromID *int64  `cli:"fromid"`
	Start  string  `cli:"start"`
	End    string  `cli:"end"`
	Limit  *uint64 `cli:"limit"`
}

// KlineParams holds kline parameters
type KlineParams struct {
	Symbol   string  `cli:"symbol,required"`
	Interval string  `cli:"interval,required"`
	Start    string  `cli:"start"`
	End      string  `cli:"end"`
	TimeZone string  `cli:"timezone"`
	Limit    *uint64 `cli:"limit"`
}

// AvgPriceParams holds average price parameters
type AvgPriceParams struct {
	Symbol string `cli:"symbol,required"`
}

// TickerParams holds 24 hour ticker parameters
type TickerParams struct {
	Type string `cli:"type"`
	SymbolSelector
}

// TradingDayParams holds trading day ticker parameters
type TradingDayParams struct {
	Type string `cli:"type"`
	SymbolSelector
	TimeZone string `cli:"timezone"`
}

// RollingTickerParams holds rolling window ticker parameters
type RollingTickerParams struct {
	Type string `cli:"type"`
	SymbolSelector
	WindowSize string `cli:"windowsize"`
}

var pingCommand = &cli.Command{
	Name:   "ping",
	Usage:  "tests connectivity to the REST API",
	Action: ping,
}

var serverTimeCommand = &cli.Command{
	Name:   "time",
	Usage:  "gets the server time",
	Action: getServerTime,
}

var exchangeInfoCommand = &cli.Command{
	Name:  "exchangeinfo",
	Usage: "gets trading rules and symbol information",
	Flags: FlagsFromStruct(&ExchangeInfoParams{}, mergeUsage(map[string]string{
		"permissions":        "a comma separated list of permissions to filter by",
		"showpermissionsets": "whether to return permission sets",
		"status":             "filter symbols by trading status, e.g. TRADING",
	})),
	Action: getExchangeInfo,
}

var depthCommand = &cli.Command{
	Name:      "depth",
	Usage:     "gets order book depth",
	ArgsUsage: "--symbol <symbol> [--limit <levels>]",
	Flags:     FlagsFromStruct(&DepthParams{}, commonUsage),
	Action:    getOrderBook,
}

var tradesCommand = &cli.Command{
	Name:   "trades",
	Usage:  "gets recent trades",
	Flags:  FlagsFromStruct(&DepthParams{}, commonUsage),
	Action: getRecentTrades,
}

var historicalTradesCommand = &cli.Command{
	Name:   "historicaltrades",
	Usage:  "gets older trades",
	Flags:  FlagsFromStruct(&HistoricalTradesParams{}, commonUsage),
	Action: getOlderTrades,
}

var aggTradesCommand = &cli.Command{
	Name:   "aggtrades",
	Usage:  "gets compressed aggregate trades",
	Flags:  FlagsFromStruct(&AggTradesParams{}, commonUsage),
	Action: getAggregateTrades,
}

var klinesCommand = &cli.Command{
	Name:   "klines",
	Usage:  "gets klines",
	Flags:  FlagsFromStruct(&KlineParams{}, commonUsage),
	Action: getKlines,
}

var uiKlinesCommand = &cli.Command{
	Name:   "uiklines",
	Usage:  "gets klines modified for presentation",
	Flags:  FlagsFromStruct(&KlineParams{}, commonUsage),
	Action: getUIKlines,
}

var avgPriceCommand = &cli.Command{
	Name:   "avgprice",
	Usage:  "gets the current average price",
	Flags:  FlagsFromStruct(&AvgPriceParams{}, commonUsage),
	Action: getCurrentAveragePrice,
}

var ticker24hrCommand = &cli.Command{
	Name:   "ticker24hr",
	Usage:  "gets 24 hour rolling window price change statistics",
	Flags:  FlagsFromStruct(&TickerParams{}, commonUsage),
	Action: getTicker24hr,
}

var tradingDayCommand = &cli.Command{
	Name:   "tradingday",
	Usage:  "gets price change statistics for the current trading day",
	Flags:  FlagsFromStruct(&TradingDayParams{}, commonUsage),
	Action: getTradingDayTicker,
}

var rollingTickerCommand = &cli.Command{
	Name:   "rollingticker",
	Usage:  "gets price change statistics over a custom window",
	Flags:  FlagsFromStruct(&RollingTickerParams{}, commonUsage),
	Action: getRollingWindowTicker,
}

var priceCommand = &cli.Command{
	Name:   "price",
	Usage:  "gets the latest price for one, several or all symbols",
	Flags:  FlagsFromStruct(&SymbolSelector{}, commonUsage),
	Action: getSymbolPriceTicker,
}

var bookTickerCommand = &cli.Command{
	Name:   "bookticker",
	Usage:  "gets the best bid and ask for one, several or all symbols",
	Flags:  FlagsFromStruct(&SymbolSelector{}, commonUsage),
	Action: getOrderBookTicker,
}

func mergeUsage(extra map[string]string) map[string]string {
	m := make(map[string]string, len(commonUsage)+len(extra))
	for k, v := range commonUsage {
		m[k] = v
	}
	for k, v := range extra {
		m[k] = v
	}
	return m
}

func ping(c *cli.Context) error {
	resp, err := exch.TestConnectivity(c.Context)
	return render(c, resp, err)
}

func getServerTime(c *cli.Context) error {
	resp, err := exch.GetServerTime(c.Context)
	return render(c, resp, err)
}

func getExchangeInfo(c *cli.Context) error {
	var p ExchangeInfoParams
	if err := unmarshalCLIFields(c, &p); err != nil {
		return err
	}
	sel := p.convert()
	params := &binance.GetExchangeInfoParams{
		Symbol:             sel.Symbol,
		Symbols:            sel.Symbols,
		ShowPermissionSets: p.ShowPermissionSets,
		SymbolStatus:       binance.SymbolStatus(strings.ToUpper(p.Status)),
	}
	for _, perm := range p.Permissions {
		params.Permissions = append(params.Permissions, binance.AccountPermission(strings.ToUpper(strings.TrimSpace(perm))))
	}
	resp, err := exch.GetExchangeInfo(c.Context, params)
	return render(c, resp, err)
}

func getOrderBook(c *cli.Context) error {
	var p DepthParams
	if err := unmarshalCLIFields(c, &p); err != nil {
		return err
	}
	resp, err := exch.GetOrderBook(c.Context, binance.GetOrderBookParams{
		Symbol: strings.ToUpper(p.Symbol),
		Limit:  p.Limit,
	})
	return render(c, resp, err)
}

func getRecentTrades(c *cli.Context) error {
	var p DepthParams
	if err := unmarshalCLIFields(c, &p); err != nil {
		return err
	}
	resp, err := exch.GetRecentTrades(c.Context, binance.GetRecentTradesParams{
		Symbol: strings.ToUpper(p.Symbol),
		Limit:  p.Limit,
	})
	return render(c, resp, err)
}

func getOlderTrades(c *cli.Context) error {
	var p HistoricalTradesParams
	if err := unmarshalCLIFields(c, &p); err != nil {
		return err
	}
	resp, err := exch.GetOlderTrades(c.Context, binance.GetOlderTradesParams{
		Symbol: strings.ToUpper(p.Symbol),
		Limit:  p.Limit,
		FromID: p.FromID,
	})
	return render(c, resp, err)
}

func getAggregateTrades(c *cli.Context) error {
	var p AggTradesParams
	if err := unmarshalCLIFields(c, &p); err != nil {
		return err
	}
	start, end, err := parseTimeRange(p.Start, p.End)
	if err != nil {
		return err
	}
	resp, err := exch.GetAggregateTrades(c.Context, binance.GetAggregateTradesParams{
		Symbol:    strings.ToUpper(p.Symbol),
		FromID:    p.FromID,
		StartTime: start,
		EndTime:   end,
		Limit:     p.Limit,
	})
	return render(c, resp, err)
}

func klineParams(c *cli.Context) (binance.GetKlineListParams, error) {
	var p KlineParams
	if err := unmarshalCLIFields(c, &p); err != nil {
		return binance.GetKlineListParams{}, err
	}
	interval, err := binance.ParseKlineInterval(p.Interval)
	if err != nil {
		return binance.GetKlineListParams{}, err
	}
	start, end, err := parseTimeRange(p.Start, p.End)
	if err != nil {
		return binance.GetKlineListParams{}, err
	}
	return binance.GetKlineListParams{
		Symbol:    strings.ToUpper(p.Symbol),
		Interval:  interval,
		StartTime: start,
		EndTime:   end,
		TimeZone:  p.TimeZone,
		Limit:     p.Limit,
	}, nil
}

func getKlines(c *cli.Context) error {
	params, err := klineParams(c)
	if err != nil {
		return err
	}
	resp, err := exch.GetKlines(c.Context, params)
	return render(c, resp, err)
}

func getUIKlines(c *cli.Context) error {
	params, err := klineParams(c)
	if err != nil {
		return err
	}
	resp, err := exch.GetUIKlines(c.Context, params)
	return render(c, resp, err)
}

func getCurrentAveragePrice(c *cli.Context) error {
	var p AvgPriceParams
	if err := unmarshalCLIFields(c, &p); err != nil {
		return err
	}
	resp, err := exch.GetCurrentAveragePrice(c.Context, binance.GetCurrentAveragePriceParams{Symbol: strings.ToUpper(p.Symbol)})
	return render(c, resp, err)
}

func getTicker24hr(c *cli.Context) error {
	var p TickerParams
	if err := unmarshalCLIFields(c, &p); err != nil {
		return err
	}
	t, err := parseTickerType(p.Type)
	if err != nil {
		return err
	}
	resp, err := exch.GetTickerPriceChangeStatistics(c.Context, &binance.GetTickerPriceChangeStatisticsParams{
		Type:            t,
		SymbolOrSymbols: p.convert(),
	})
	return render(c, resp, err)
}

func getTradingDayTicker(c *cli.Context) error {
	var p TradingDayParams
	if err := unmarshalCLIFields(c, &p); err != nil {
		return err
	}
	t, err := parseTickerType(p.Type)
	if err != nil {
		return err
	}
	resp, err := exch.GetTradingDayTicker(c.Context, &binance.GetTradingDayTickerParams{
		Type:            t,
		SymbolOrSymbols: p.convert(),
		TimeZone:        p.TimeZone,
	})
	return render(c, resp, err)
}

func getRollingWindowTicker(c *cli.Context) error {
	var p RollingTickerParams
	if err := unmarshalCLIFields(c, &p); err != nil {
		return err
	}
	t, err := parseTickerType(p.Type)
	if err != nil {
		return err
	}
	resp, err := exch.GetRollingWindowTicker(c.Context, &binance.GetRollingWindowTickerParams{
		Type:            t,
		SymbolOrSymbols: p.convert(),
		WindowSize:      p.WindowSize,
	})
	return render(c, resp, err)
}

func getSymbolPriceTicker(c *cli.Context) error {
	var p SymbolSelector
	if err := unmarshalCLIFields(c, &p); err != nil {
		return err
	}
	sel := p.convert()
	resp, err := exch.GetSymbolPriceTicker(c.Context, &sel)
	return render(c, resp, err)
}

func getOrderBookTicker(c *cli.Context) error {
	var p SymbolSelector
	if err := unmarshalCLIFields(c, &p); err != nil {
		return err
	}
	sel := p.convert()
	resp, err := exch.GetOrderBookTicker(c.Context, &sel)
	return render(c, resp, err)
}

// parseTickerType accepts FULL, MINI or empty for the exchange default
func parseTickerType(s string) (binance.TickerType, error) {
	switch t := binance.TickerType(strings.ToUpper(s)); t {
	case "", binance.TickerTypeFull, binance.TickerTypeMini:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", errInvalidTickerType, s)
}

// parseTime accepts unix milliseconds, RFC3339 or simpleTimeFormat in UTC.
// An empty string is the zero time, which is omitted from requests.
func parseTime(s string) (types.Time, error) {
	if s == "" {
		return types.Time{}, nil
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return types.NewTime(time.UnixMilli(ms)), nil
	}
	for _, layout := range []string{time.RFC3339Nano, simpleTimeFormat, time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return types.NewTime(t), nil
		}
	}
	return types.Time{}, fmt.Errorf("%w: %q", errInvalidTime, s)
}

func parseTimeRange(start, end string) (s, e types.Time, err error) {
	if s, err = parseTime(start); err != nil {
		return s, e, fmt.Errorf("start: %w", err)
	}
	if e, err = parseTime(end); err != nil {
		return s, e, fmt.Errorf("end: %w", err)
	}
	if !s.IsZero() && !e.IsZero() && e.Time().Before(s.Time()) {
		return s, e, errStartAfterEnd
	}
	return s, e, nil
}
