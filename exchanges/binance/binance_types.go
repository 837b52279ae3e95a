package binance

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/buger/jsonparser"
	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/binancespot/encoding/json"
	"github.com/thrasher-corp/binancespot/exchanges/request"
	"github.com/thrasher-corp/binancespot/types"
)

var (
	errArity            = errors.New("unexpected number of elements")
	errAmbiguousTicker  = errors.New("ticker shape is ambiguous")
	errMixedTickerList  = errors.New("ticker list mixes mini and full elements")
	errUnexpectedTicker = errors.New("ticker payload is neither an object nor an array")
)

// Response pairs a decoded payload with response header metadata
type Response[T any] struct {
	Result  T
	Headers Headers
}

// Headers holds the rate limit metadata returned with every response
type Headers struct {
	// RetryAfter is the back off hint in seconds, nil when the header is absent
	RetryAfter *uint64
	// UsedWeight is keyed by interval number and letter, e.g. 1M for one minute
	UsedWeight map[string]uint64
	// OrderCount is keyed the same way as UsedWeight
	OrderCount map[string]uint64
}

func parseHeaders(h http.Header) Headers {
	var out Headers
	if secs, ok := request.RetryAfter(h); ok {
		out.RetryAfter = &secs
	}
	weightPrefix := http.CanonicalHeaderKey(UsedWeightHeaderPrefix)
	countPrefix := http.CanonicalHeaderKey(OrderCountHeaderPrefix)
	for k, v := range h {
		if len(v) == 0 {
			continue
		}
		switch {
		case strings.HasPrefix(k, weightPrefix):
			out.UsedWeight = addUsage(out.UsedWeight, k[len(weightPrefix):], v[0])
		case strings.HasPrefix(k, countPrefix):
			out.OrderCount = addUsage(out.OrderCount, k[len(countPrefix):], v[0])
		}
	}
	return out
}

func addUsage(m map[string]uint64, interval, value string) map[string]uint64 {
	n, err := strconv.ParseUint(strings.TrimSpace(value), 10, 64)
	if err != nil || interval == "" {
		return m
	}
	if m == nil {
		m = make(map[string]uint64)
	}
	m[strings.ToUpper(interval)] = n
	return m
}

// Symbols is a list of symbols sent as a JSON array query value, e.g.
// symbols=["BTCUSDT","BNBBTC"]
type Symbols []string

// EncodeValues implements query.Encoder
func (s Symbols) EncodeValues(key string, v *url.Values) error {
	return encodeJSONList(key, v, s)
}

// Permissions is a list of account permissions sent as a JSON array query value
type Permissions []AccountPermission

// EncodeValues implements query.Encoder
func (p Permissions) EncodeValues(key string, v *url.Values) error {
	return encodeJSONList(key, v, p)
}

func encodeJSONList[T ~string](key string, v *url.Values, list []T) error {
	if len(list) == 0 {
		return nil
	}
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	v.Set(key, string(b))
	return nil
}

// TestConnectivity is the empty ping response
type TestConnectivity struct{}

// ServerTime is the exchange clock
type ServerTime struct {
	ServerTime types.Time `json:"serverTime"`
}

// GetExchangeInfoParams filters the exchange info response. Symbol, Symbols
// and SymbolStatus are mutually exclusive on the exchange side.
type GetExchangeInfoParams struct {
	Symbol             string       `url:"symbol,omitempty"`
	Symbols            Symbols      `url:"symbols,omitempty"`
	Permissions        Permissions  `url:"permissions,omitempty"`
	ShowPermissionSets *bool        `url:"showPermissionSets,omitempty"`
	SymbolStatus       SymbolStatus `url:"symbolStatus,omitempty"`
}

// ExchangeInfo holds trading rules and symbol information
type ExchangeInfo struct {
	Timezone        string       `json:"timezone"`
	ServerTime      types.Time   `json:"serverTime"`
	RateLimits      []RateLimit  `json:"rateLimits"`
	ExchangeFilters []Filter     `json:"exchangeFilters"`
	Symbols         []SymbolInfo `json:"symbols"`
	// SORs is nil when smart order routing is unavailable
	SORs []SOR `json:"sors,omitempty"`
}

// RateLimit is an exchange enforced request or order limit
type RateLimit struct {
	RateLimitType RateLimiter       `json:"rateLimitType"`
	Interval      RateLimitInterval `json:"interval"`
	IntervalNum   uint64            `json:"intervalNum"`
	Limit         uint64            `json:"limit"`
}

// SymbolInfo holds the trading rules of a single symbol
type SymbolInfo struct {
	Symbol             string       `json:"symbol"`
	Status             SymbolStatus `json:"status"`
	BaseAsset          string       `json:"baseAsset"`
	BaseAssetPrecision uint8        `json:"baseAssetPrecision"`
	QuoteAsset         string       `json:"quoteAsset"`
	// QuotePrecision is deprecated in favour of QuoteAssetPrecision
	QuotePrecision                  uint8               `json:"quotePrecision"`
	QuoteAssetPrecision             uint8               `json:"quoteAssetPrecision"`
	BaseCommissionPrecision         uint8               `json:"baseCommissionPrecision"`
	QuoteCommissionPrecision        uint8               `json:"quoteCommissionPrecision"`
	OrderTypes                      []OrderType         `json:"orderTypes"`
	IcebergAllowed                  bool                `json:"icebergAllowed"`
	OCOAllowed                      bool                `json:"ocoAllowed"`
	OTOAllowed                      bool                `json:"otoAllowed"`
	QuoteOrderQtyMarketAllowed      bool                `json:"quoteOrderQtyMarketAllowed"`
	AllowTrailingStop               bool                `json:"allowTrailingStop"`
	CancelReplaceAllowed            bool                `json:"cancelReplaceAllowed"`
	AmendAllowed                    bool                `json:"amendAllowed"`
	IsSpotTradingAllowed            bool                `json:"isSpotTradingAllowed"`
	IsMarginTradingAllowed          bool                `json:"isMarginTradingAllowed"`
	Filters                         []Filter            `json:"filters"`
	Permissions                     []AccountPermission `json:"permissions"`
	PermissionSets                  [][]string          `json:"permissionSets"`
	DefaultSelfTradePreventionMode  STPMode             `json:"defaultSelfTradePreventionMode"`
	AllowedSelfTradePreventionModes []STPMode           `json:"allowedSelfTradePreventionModes"`
}

// Filter is a symbol or exchange filter. Only the fields relevant to
// FilterType are populated, the rest stay invalid or nil.
type Filter struct {
	FilterType FilterType `json:"filterType"`

	// PRICE_FILTER
	MinPrice decimal.NullDecimal `json:"minPrice"`
	MaxPrice decimal.NullDecimal `json:"maxPrice"`
	TickSize decimal.NullDecimal `json:"tickSize"`

	// PERCENT_PRICE and PERCENT_PRICE_BY_SIDE
	MultiplierUp      decimal.NullDecimal `json:"multiplierUp"`
	MultiplierDown    decimal.NullDecimal `json:"multiplierDown"`
	BidMultiplierUp   decimal.NullDecimal `json:"bidMultiplierUp"`
	BidMultiplierDown decimal.NullDecimal `json:"bidMultiplierDown"`
	AskMultiplierUp   decimal.NullDecimal `json:"askMultiplierUp"`
	AskMultiplierDown decimal.NullDecimal `json:"askMultiplierDown"`
	AvgPriceMins      *int64              `json:"avgPriceMins,omitempty"`

	// LOT_SIZE and MARKET_LOT_SIZE
	MinQty   decimal.NullDecimal `json:"minQty"`
	MaxQty   decimal.NullDecimal `json:"maxQty"`
	StepSize decimal.NullDecimal `json:"stepSize"`

	// MIN_NOTIONAL and NOTIONAL
	MinNotional      decimal.NullDecimal `json:"minNotional"`
	MaxNotional      decimal.NullDecimal `json:"maxNotional"`
	ApplyToMarket    *bool               `json:"applyToMarket,omitempty"`
	ApplyMinToMarket *bool               `json:"applyMinToMarket,omitempty"`
	ApplyMaxToMarket *bool               `json:"applyMaxToMarket,omitempty"`

	// ICEBERG_PARTS
	Limit *int64 `json:"limit,omitempty"`

	// MAX_NUM_* and EXCHANGE_MAX_NUM_*
	MaxNumOrders        *int64 `json:"maxNumOrders,omitempty"`
	MaxNumAlgoOrders    *int64 `json:"maxNumAlgoOrders,omitempty"`
	MaxNumIcebergOrders *int64 `json:"maxNumIcebergOrders,omitempty"`

	// MAX_POSITION
	MaxPosition decimal.NullDecimal `json:"maxPosition"`

	// TRAILING_DELTA
	MinTrailingAboveDelta *int64 `json:"minTrailingAboveDelta,omitempty"`
	MaxTrailingAboveDelta *int64 `json:"maxTrailingAboveDelta,omitempty"`
	MinTrailingBelowDelta *int64 `json:"minTrailingBelowDelta,omitempty"`
	MaxTrailingBelowDelta *int64 `json:"maxTrailingBelowDelta,omitempty"`
}

// SOR lists the symbols a base asset can be smart order routed across
type SOR struct {
	BaseAsset string   `json:"baseAsset"`
	Symbols   []string `json:"symbols"`
}

// GetOrderBookParams requests order book depth
type GetOrderBookParams struct {
	Symbol string `url:"symbol"`
	// Limit defaults to 100, at most 5000 levels are returned
	Limit *uint64 `url:"limit,omitempty"`
}

// OrderBook is a depth snapshot
type OrderBook struct {
	LastUpdateID int64        `json:"lastUpdateId"`
	Bids         []OrderLevel `json:"bids"`
	Asks         []OrderLevel `json:"asks"`
}

// Order level positions
const (
	OrderLevelPrice = iota
	OrderLevelQuantity
	orderLevelArity
)

// OrderLevel is a [price, quantity] book level
type OrderLevel [orderLevelArity]decimal.Decimal

// Price returns the level price
func (o OrderLevel) Price() decimal.Decimal {
	return o[OrderLevelPrice]
}

// Quantity returns the quantity resting at the level price
func (o OrderLevel) Quantity() decimal.Decimal {
	return o[OrderLevelQuantity]
}

// UnmarshalJSON decodes a two element array, any other arity is an error
func (o *OrderLevel) UnmarshalJSON(data []byte) error {
	raw, err := positional(data, orderLevelArity)
	if err != nil {
		return err
	}
	for i := range raw {
		if err := json.Unmarshal(raw[i], &o[i]); err != nil {
			return &json.IndexError{Index: i, Err: err}
		}
	}
	return nil
}

// positional splits a JSON array into exactly arity raw elements. An arity
// mismatch reports the first missing or surplus index.
func positional(data []byte, arity int) ([]json.RawMessage, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if len(raw) != arity {
		return nil, &json.IndexError{
			Index: min(len(raw), arity),
			Err:   fmt.Errorf("%w: got %d want %d", errArity, len(raw), arity),
		}
	}
	return raw, nil
}

// GetRecentTradesParams requests the most recent trades
type GetRecentTradesParams struct {
	Symbol string `url:"symbol"`
	// Limit defaults to 500, maximum 1000
	Limit *uint64 `url:"limit,omitempty"`
}

// GetOlderTradesParams requests historical trades
type GetOlderTradesParams struct {
	Symbol string  `url:"symbol"`
	Limit  *uint64 `url:"limit,omitempty"`
	// FromID is the trade ID to fetch from, the most recent trades are
	// returned when unset
	FromID *int64 `url:"fromId,omitempty"`
}

// RecentTrade is a single trade
type RecentTrade struct {
	ID           int64           `json:"id"`
	Price        decimal.Decimal `json:"price"`
	Qty          decimal.Decimal `json:"qty"`
	QuoteQty     decimal.Decimal `json:"quoteQty"`
	Time         types.Time      `json:"time"`
	IsBuyerMaker bool            `json:"isBuyerMaker"`
	IsBestMatch  bool            `json:"isBestMatch"`
}

// GetAggregateTradesParams requests compressed aggregate trades. Bounds are
// inclusive.
type GetAggregateTradesParams struct {
	Symbol    string     `url:"symbol"`
	FromID    *int64     `url:"fromId,omitempty"`
	StartTime types.Time `url:"startTime,omitempty"`
	EndTime   types.Time `url:"endTime,omitempty"`
	Limit     *uint64    `url:"limit,omitempty"`
}

// AggregateTrade holds trades filled at the same time, price and side
type AggregateTrade struct {
	ID           int64           `json:"a"`
	Price        decimal.Decimal `json:"p"`
	Qty          decimal.Decimal `json:"q"`
	FirstTradeID int64           `json:"f"`
	LastTradeID  int64           `json:"l"`
	Time         types.Time      `json:"T"`
	IsBuyerMaker bool            `json:"m"`
	IsBestMatch  bool            `json:"M"`
}

// GetKlineListParams requests klines or UI klines. TimeZone accepts hours
// and minutes (-1:00, 05:45) or hours only (0, 8) within [-12:00, +14:00]
// and shifts interval boundaries, start and end times are always UTC.
type GetKlineListParams struct {
	Symbol    string        `url:"symbol"`
	Interval  KlineInterval `url:"interval"`
	StartTime types.Time    `url:"startTime,omitempty"`
	EndTime   types.Time    `url:"endTime,omitempty"`
	TimeZone  string        `url:"timeZone,omitempty"`
	// Limit defaults to 500, maximum 1000
	Limit *uint64 `url:"limit,omitempty"`
}

// Kline positions
const (
	KlineOpenTime = iota
	KlineOpen
	KlineHigh
	KlineLow
	KlineClose
	KlineVolume
	KlineCloseTime
	KlineQuoteAssetVolume
	KlineTradeCount
	KlineTakerBuyBaseAssetVolume
	KlineTakerBuyQuoteAssetVolume
	KlineIgnore
	klineArity
)

// Kline is a candlestick decoded from its 12 element array form
type Kline struct {
	OpenTime                 types.Time      `json:"openTime"`
	Open                     decimal.Decimal `json:"open"`
	High                     decimal.Decimal `json:"high"`
	Low                      decimal.Decimal `json:"low"`
	Close                    decimal.Decimal `json:"close"`
	Volume                   decimal.Decimal `json:"volume"`
	CloseTime                types.Time      `json:"closeTime"`
	QuoteAssetVolume         decimal.Decimal `json:"quoteAssetVolume"`
	TradeCount               uint64          `json:"tradeCount"`
	TakerBuyBaseAssetVolume  decimal.Decimal `json:"takerBuyBaseAssetVolume"`
	TakerBuyQuoteAssetVolume decimal.Decimal `json:"takerBuyQuoteAssetVolume"`
	// Ignore is deprecated and unused by the exchange
	Ignore string `json:"-"`
}

// UnmarshalJSON decodes the positional kline array
func (k *Kline) UnmarshalJSON(data []byte) error {
	raw, err := positional(data, klineArity)
	if err != nil {
		return err
	}
	targets := [klineArity]any{
		KlineOpenTime:                 &k.OpenTime,
		KlineOpen:                     &k.Open,
		KlineHigh:                     &k.High,
		KlineLow:                      &k.Low,
		KlineClose:                    &k.Close,
		KlineVolume:                   &k.Volume,
		KlineCloseTime:                &k.CloseTime,
		KlineQuoteAssetVolume:         &k.QuoteAssetVolume,
		KlineTradeCount:               &k.TradeCount,
		KlineTakerBuyBaseAssetVolume:  &k.TakerBuyBaseAssetVolume,
		KlineTakerBuyQuoteAssetVolume: &k.TakerBuyQuoteAssetVolume,
		KlineIgnore:                   &k.Ignore,
	}
	for i, target := range targets {
		if err := json.Unmarshal(raw[i], target); err != nil {
			return &json.IndexError{Index: i, Err: err}
		}
	}
	return nil
}

// GetCurrentAveragePriceParams requests the average price of a symbol
type GetCurrentAveragePriceParams struct {
	Symbol string `url:"symbol"`
}

// CurrentAveragePrice is the average price over the last Mins minutes
type CurrentAveragePrice struct {
	Mins      uint64          `json:"mins"`
	Price     decimal.Decimal `json:"price"`
	CloseTime types.Time      `json:"closeTime"`
}

// SymbolOrSymbols selects tickers. Symbol and Symbols cannot be combined,
// all symbols are returned when neither is set.
type SymbolOrSymbols struct {
	Symbol  string  `url:"symbol,omitempty"`
	Symbols Symbols `url:"symbols,omitempty"`
}

// GetTickerPriceChangeStatisticsParams requests 24 hour rolling window
// statistics. An empty Type leaves the exchange default of FULL.
type GetTickerPriceChangeStatisticsParams struct {
	Type TickerType `url:"type,omitempty"`
	SymbolOrSymbols
}

// NewMiniTickerParams returns params for the MINI ticker shape
func NewMiniTickerParams(sel SymbolOrSymbols) *GetTickerPriceChangeStatisticsParams {
	return &GetTickerPriceChangeStatisticsParams{Type: TickerTypeMini, SymbolOrSymbols: sel}
}

// NewFullTickerParams returns params for the FULL ticker shape
func NewFullTickerParams(sel SymbolOrSymbols) *GetTickerPriceChangeStatisticsParams {
	return &GetTickerPriceChangeStatisticsParams{Type: TickerTypeFull, SymbolOrSymbols: sel}
}

// GetTradingDayTickerParams requests statistics for the current trading day
type GetTradingDayTickerParams struct {
	Type TickerType `url:"type,omitempty"`
	SymbolOrSymbols
	TimeZone string `url:"timeZone,omitempty"`
}

// GetRollingWindowTickerParams requests statistics over a custom window.
// WindowSize is 1m-59m, 1h-23h or 1d-7d and defaults to 1d.
type GetRollingWindowTickerParams struct {
	Type TickerType `url:"type,omitempty"`
	SymbolOrSymbols
	WindowSize string `url:"windowSize,omitempty"`
}

// TickerPriceChangeStatisticFull is the FULL ticker shape. The fields marked
// as 24 hour only are invalid for trading day and rolling window tickers.
type TickerPriceChangeStatisticFull struct {
	Symbol             string          `json:"symbol"`
	PriceChange        decimal.Decimal `json:"priceChange"`
	PriceChangePercent decimal.Decimal `json:"priceChangePercent"`
	WeightedAvgPrice   decimal.Decimal `json:"weightedAvgPrice"`
	// 24 hour only
	PrevClosePrice decimal.NullDecimal `json:"prevClosePrice"`
	LastPrice      decimal.Decimal     `json:"lastPrice"`
	// 24 hour only
	LastQty  decimal.NullDecimal `json:"lastQty"`
	BidPrice decimal.NullDecimal `json:"bidPrice"`
	BidQty   decimal.NullDecimal `json:"bidQty"`
	AskPrice decimal.NullDecimal `json:"askPrice"`
	AskQty   decimal.NullDecimal `json:"askQty"`

	OpenPrice   decimal.Decimal `json:"openPrice"`
	HighPrice   decimal.Decimal `json:"highPrice"`
	LowPrice    decimal.Decimal `json:"lowPrice"`
	Volume      decimal.Decimal `json:"volume"`
	QuoteVolume decimal.Decimal `json:"quoteVolume"`
	OpenTime    types.Time      `json:"openTime"`
	CloseTime   types.Time      `json:"closeTime"`
	FirstID     int64           `json:"firstId"`
	LastID      int64           `json:"lastId"`
	Count       uint64          `json:"count"`
}

// TickerPriceChangeStatisticMini is the MINI ticker shape
type TickerPriceChangeStatisticMini struct {
	Symbol      string          `json:"symbol"`
	OpenPrice   decimal.Decimal `json:"openPrice"`
	HighPrice   decimal.Decimal `json:"highPrice"`
	LowPrice    decimal.Decimal `json:"lowPrice"`
	LastPrice   decimal.Decimal `json:"lastPrice"`
	Volume      decimal.Decimal `json:"volume"`
	QuoteVolume decimal.Decimal `json:"quoteVolume"`
	OpenTime    types.Time      `json:"openTime"`
	CloseTime   types.Time      `json:"closeTime"`
	FirstID     int64           `json:"firstId"`
	LastID      int64           `json:"lastId"`
	Count       uint64          `json:"count"`
}

// TickerShape identifies which of the four ticker payload shapes was decoded
type TickerShape uint8

// TickerShape values
const (
	TickerShapeMiniElement TickerShape = iota + 1
	TickerShapeMiniList
	TickerShapeFullElement
	TickerShapeFullList
)

// String implements fmt.Stringer
func (s TickerShape) String() string {
	switch s {
	case TickerShapeMiniElement:
		return "MiniElement"
	case TickerShapeMiniList:
		return "MiniList"
	case TickerShapeFullElement:
		return "FullElement"
	case TickerShapeFullList:
		return "FullList"
	}
	return "Unknown"
}

// IsList reports whether the payload was an array
func (s TickerShape) IsList() bool {
	return s == TickerShapeMiniList || s == TickerShapeFullList
}

// fullOnlyTickerKeys are present in every FULL ticker and absent from MINI
var fullOnlyTickerKeys = []string{"priceChange", "priceChangePercent", "weightedAvgPrice"}

// TickerPriceChangeStatistic is a ticker response of any shape. Element
// shapes hold exactly one entry in Mini or Full.
type TickerPriceChangeStatistic struct {
	Shape TickerShape
	Mini  []TickerPriceChangeStatisticMini
	Full  []TickerPriceChangeStatisticFull
}

// UnmarshalJSON selects the shape from the payload structure. Objects are
// elements and arrays are lists. An object with all full only keys is FULL,
// with none is MINI, anything in between is rejected. An empty array is
// treated as a FULL list.
func (t *TickerPriceChangeStatistic) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return errUnexpectedTicker
	}
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	switch data[0] {
	case '{':
		full, err := isFullTicker(data)
		if err != nil {
			return err
		}
		if full {
			t.Shape = TickerShapeFullElement
			t.Full = make([]TickerPriceChangeStatisticFull, 1)
			return json.Decode(data, &t.Full[0])
		}
		t.Shape = TickerShapeMiniElement
		t.Mini = make([]TickerPriceChangeStatisticMini, 1)
		return json.Decode(data, &t.Mini[0])
	case '[':
		return t.unmarshalList(data)
	}
	return fmt.Errorf("%w: %q", errUnexpectedTicker, data[0])
}

func (t *TickerPriceChangeStatistic) unmarshalList(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	t.Shape = TickerShapeFullList
	if len(raw) == 0 {
		t.Full = []TickerPriceChangeStatisticFull{}
		return nil
	}
	first, err := isFullTicker(raw[0])
	if err != nil {
		return &json.IndexError{Index: 0, Err: err}
	}
	if first {
		t.Full = make([]TickerPriceChangeStatisticFull, len(raw))
	} else {
		t.Shape = TickerShapeMiniList
		t.Mini = make([]TickerPriceChangeStatisticMini, len(raw))
	}
	for i := range raw {
		full, err := isFullTicker(raw[i])
		if err != nil {
			return &json.IndexError{Index: i, Err: err}
		}
		if full != first {
			return &json.IndexError{Index: i, Err: errMixedTickerList}
		}
		if first {
			err = json.Decode(raw[i], &t.Full[i])
		} else {
			err = json.Decode(raw[i], &t.Mini[i])
		}
		if err != nil {
			return &json.IndexError{Index: i, Err: err}
		}
	}
	return nil
}

// isFullTicker counts the full only keys of a ticker object
func isFullTicker(data []byte) (bool, error) {
	var n int
	for _, key := range fullOnlyTickerKeys {
		if _, _, _, err := jsonparser.Get(data, key); err == nil {
			n++
		}
	}
	switch n {
	case 0:
		return false, nil
	case len(fullOnlyTickerKeys):
		return true, nil
	}
	return false, fmt.Errorf("%w: %d of %d full ticker keys present", errAmbiguousTicker, n, len(fullOnlyTickerKeys))
}

// MarshalJSON encodes the ticker in its wire shape
func (t TickerPriceChangeStatistic) MarshalJSON() ([]byte, error) {
	switch t.Shape {
	case TickerShapeMiniElement:
		if len(t.Mini) == 1 {
			return json.Marshal(t.Mini[0])
		}
	case TickerShapeFullElement:
		if len(t.Full) == 1 {
			return json.Marshal(t.Full[0])
		}
	case TickerShapeMiniList:
		return json.Marshal(t.Mini)
	case TickerShapeFullList:
		return json.Marshal(t.Full)
	}
	return []byte("null"), nil
}

// GetSymbolTickerParams selects symbols for the price and book tickers
type GetSymbolTickerParams = SymbolOrSymbols

// SymbolPrice is the latest price of a symbol
type SymbolPrice struct {
	Symbol string          `json:"symbol"`
	Price  decimal.Decimal `json:"price"`
}

// BookTicker is the best bid and ask of a symbol
type BookTicker struct {
	Symbol   string          `json:"symbol"`
	BidPrice decimal.Decimal `json:"bidPrice"`
	BidQty   decimal.Decimal `json:"bidQty"`
	AskPrice decimal.Decimal `json:"askPrice"`
	AskQty   decimal.Decimal `json:"askQty"`
}

// OneOrMany decodes either a single object or an array of objects into a
// list, as returned by endpoints where a single symbol yields an object
type OneOrMany[T any] []T

// UnmarshalJSON implements json.Unmarshaler
func (o *OneOrMany[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var v T
		if err := json.Decode(data, &v); err != nil {
			return err
		}
		*o = OneOrMany[T]{v}
		return nil
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	list := make(OneOrMany[T], len(raw))
	for i := range raw {
		if err := json.Decode(raw[i], &list[i]); err != nil {
			return &json.IndexError{Index: i, Err: err}
		}
	}
	*o = list
	return nil
}
