package binance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/buger/jsonparser"
	"github.com/thrasher-corp/binancespot/common"
	"github.com/thrasher-corp/binancespot/common/crypto"
	"github.com/thrasher-corp/binancespot/exchanges/request"
	"github.com/thrasher-corp/binancespot/log"
)

// Name is the exchange name used for the requester and logging
const Name = "Binance"

const defaultUserAgent = "binancespot"

var (
	errInvalidBaseURL  = errors.New("invalid base URL")
	errNegativeTimeout = errors.New("timeout cannot be negative")
)

// Config holds everything needed to construct an Exchange
type Config struct {
	// BaseURL defaults to APIURL
	BaseURL string
	// APIKey and APISecret are held for authenticated endpoints, none of the
	// implemented endpoints send them
	APIKey    crypto.SensitiveString
	APISecret crypto.SensitiveString
	// HTTPClient defaults to a new client using Timeout
	HTTPClient    *http.Client
	Timeout       time.Duration
	Verbose       bool
	HTTPDebugging bool
}

// Exchange is a spot market data client. It is immutable after New and safe
// for concurrent use.
type Exchange struct {
	baseURL       string
	apiKey        crypto.SensitiveString
	apiSecret     crypto.SensitiveString
	verbose       bool
	httpDebugging bool
	requester     *request.Requester
}

// New returns an Exchange for cfg. Requester options such as a limiter or
// metrics registry are applied to the underlying requester.
func New(cfg Config, opts ...request.RequesterOption) (*Exchange, error) {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = APIURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", errInvalidBaseURL, cfg.BaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w %q: scheme and host required", errInvalidBaseURL, cfg.BaseURL)
	}
	if cfg.Timeout < 0 {
		return nil, errNegativeTimeout
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	opts = append([]request.RequesterOption{
		request.WithUserAgent(defaultUserAgent),
		request.WithUsageHeaders(UsedWeightHeaderPrefix, OrderCountHeaderPrefix),
	}, opts...)
	r, err := request.New(Name, client, opts...)
	if err != nil {
		return nil, err
	}

	if cfg.Verbose {
		log.Debugf(log.ExchangeSys, "%s client using base URL %s, API key set: %t", Name, baseURL, !cfg.APIKey.IsEmpty())
	}

	return &Exchange{
		baseURL:       baseURL,
		apiKey:        cfg.APIKey,
		apiSecret:     cfg.APISecret,
		verbose:       cfg.Verbose,
		httpDebugging: cfg.HTTPDebugging,
		requester:     r,
	}, nil
}

// BaseURL returns the base URL requests are sent to
func (e *Exchange) BaseURL() string {
	return e.baseURL
}

// HasCredentials reports whether an API key and secret were configured
func (e *Exchange) HasCredentials() bool {
	return !e.apiKey.IsEmpty() && !e.apiSecret.IsEmpty()
}

// TestConnectivity tests connectivity to the REST API
func (e *Exchange) TestConnectivity(ctx context.Context) (*Response[TestConnectivity], error) {
	return get[TestConnectivity](ctx, e, PathPing, nil)
}

// GetServerTime returns the current server time
func (e *Exchange) GetServerTime(ctx context.Context) (*Response[ServerTime], error) {
	return get[ServerTime](ctx, e, PathTime, nil)
}

// GetExchangeInfo returns trading rules and symbol information, params may
// be nil to return every symbol
func (e *Exchange) GetExchangeInfo(ctx context.Context, params *GetExchangeInfoParams) (*Response[ExchangeInfo], error) {
	return get[ExchangeInfo](ctx, e, PathExchangeInfo, params)
}

// GetOrderBook returns order book depth
func (e *Exchange) GetOrderBook(ctx context.Context, params GetOrderBookParams) (*Response[OrderBook], error) {
	return get[OrderBook](ctx, e, PathDepth, params)
}

// GetRecentTrades returns the most recent trades
func (e *Exchange) GetRecentTrades(ctx context.Context, params GetRecentTradesParams) (*Response[[]RecentTrade], error) {
	return get[[]RecentTrade](ctx, e, PathTrades, params)
}

// GetOlderTrades returns older trades starting from params.FromID
func (e *Exchange) GetOlderTrades(ctx context.Context, params GetOlderTradesParams) (*Response[[]RecentTrade], error) {
	return get[[]RecentTrade](ctx, e, PathHistoricalTrades, params)
}

// GetAggregateTrades returns compressed aggregate trades. If StartTime and
// EndTime are both set they must be within an hour of each other. With no
// FromID or time bounds the most recent trades are returned.
func (e *Exchange) GetAggregateTrades(ctx context.Context, params GetAggregateTradesParams) (*Response[[]AggregateTrade], error) {
	return get[[]AggregateTrade](ctx, e, PathAggTrades, params)
}

// GetKlines returns klines for a symbol, uniquely identified by open time.
// The most recent klines are returned when no time bounds are set.
func (e *Exchange) GetKlines(ctx context.Context, params GetKlineListParams) (*Response[[]Kline], error) {
	return get[[]Kline](ctx, e, PathKlines, params)
}

// GetUIKlines returns klines modified for candlestick chart presentation
func (e *Exchange) GetUIKlines(ctx context.Context, params GetKlineListParams) (*Response[[]Kline], error) {
	return get[[]Kline](ctx, e, PathUIKlines, params)
}

// GetCurrentAveragePrice returns the current average price for a symbol
func (e *Exchange) GetCurrentAveragePrice(ctx context.Context, params GetCurrentAveragePriceParams) (*Response[CurrentAveragePrice], error) {
	return get[CurrentAveragePrice](ctx, e, PathAvgPrice, params)
}

// GetTickerPriceChangeStatistics returns 24 hour rolling window price change
// statistics. params may be nil to return FULL tickers for every symbol.
func (e *Exchange) GetTickerPriceChangeStatistics(ctx context.Context, params *GetTickerPriceChangeStatisticsParams) (*Response[TickerPriceChangeStatistic], error) {
	return get[TickerPriceChangeStatistic](ctx, e, PathTicker24hr, params)
}

// GetTradingDayTicker returns price change statistics for the current
// trading day. A symbol selector is required by the exchange.
func (e *Exchange) GetTradingDayTicker(ctx context.Context, params *GetTradingDayTickerParams) (*Response[TickerPriceChangeStatistic], error) {
	return get[TickerPriceChangeStatistic](ctx, e, PathTickerTradingDay, params)
}

// GetRollingWindowTicker returns price change statistics over a custom
// window. A symbol selector is required by the exchange.
func (e *Exchange) GetRollingWindowTicker(ctx context.Context, params *GetRollingWindowTickerParams) (*Response[TickerPriceChangeStatistic], error) {
	return get[TickerPriceChangeStatistic](ctx, e, PathTicker, params)
}

// GetSymbolPriceTicker returns the latest price for one, several or all
// symbols
func (e *Exchange) GetSymbolPriceTicker(ctx context.Context, params *GetSymbolTickerParams) (*Response[OneOrMany[SymbolPrice]], error) {
	return get[OneOrMany[SymbolPrice]](ctx, e, PathTickerPrice, params)
}

// GetOrderBookTicker returns the best bid and ask for one, several or all
// symbols
func (e *Exchange) GetOrderBookTicker(ctx context.Context, params *GetSymbolTickerParams) (*Response[OneOrMany[BookTicker]], error) {
	return get[OneOrMany[BookTicker]](ctx, e, PathTickerBook, params)
}

// get sends an unauthenticated GET request and wraps the decoded result with
// the response headers
func get[T any](ctx context.Context, e *Exchange, path Path, params any) (*Response[T], error) {
	resp := &Response[T]{}
	headers, err := e.SendHTTPRequest(ctx, path, params, &resp.Result)
	if err != nil {
		return nil, err
	}
	resp.Headers = headers
	return resp, nil
}

// SendHTTPRequest sends an unauthenticated GET request to path with params
// encoded as the query string and decodes the body into result. Non 2xx
// responses carrying an error envelope are returned as *APIError.
func (e *Exchange) SendHTTPRequest(ctx context.Context, path Path, params, result any) (Headers, error) {
	query, err := common.EncodeQuery(params)
	if err != nil {
		return Headers{}, fmt.Errorf("%s %s: %w", Name, path, common.JoinErrors(ErrEncodeQuery, err))
	}
	endpoint := e.baseURL + path.String()
	if query != "" {
		endpoint += "?" + query
	}

	respHeaders := http.Header{}
	err = e.requester.SendPayload(ctx, func() (*request.Item, error) {
		return &request.Item{
			Method:         http.MethodGet,
			Path:           endpoint,
			Endpoint:       path.String(),
			Result:         result,
			HeaderResponse: &respHeaders,
			Verbose:        e.verbose,
			HTTPDebugging:  e.httpDebugging,
		}, nil
	})
	headers := parseHeaders(respHeaders)
	if err != nil {
		var httpErr *request.HTTPError
		if errors.As(err, &httpErr) {
			if apiErr := parseAPIError(httpErr, headers); apiErr != nil {
				return headers, apiErr
			}
		}
		return headers, err
	}
	return headers, nil
}

// parseAPIError decodes the {"code":...,"msg":...} error envelope, returning
// nil when the body is not one
func parseAPIError(httpErr *request.HTTPError, headers Headers) *APIError {
	code, err := jsonparser.GetInt(httpErr.Body, "code")
	if err != nil || code < math.MinInt16 || code > math.MaxInt16 {
		return nil
	}
	msg, err := jsonparser.GetString(httpErr.Body, "msg")
	if err != nil {
		return nil
	}
	return &APIError{
		StatusCode: httpErr.StatusCode,
		Code:       ErrorCode(code),
		Message:    msg,
		RetryAfter: headers.RetryAfter,
	}
}
