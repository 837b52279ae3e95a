package binance

// Base URLs
const (
	// APIURL is the production REST endpoint
	APIURL    = "https://api.binance.com"
	APIURL1   = "https://api1.binance.com"
	APIURL2   = "https://api2.binance.com"
	APIURL3   = "https://api3.binance.com"
	APIURL4   = "https://api4.binance.com"
	APIGCPURL = "https://api-gcp.binance.com"
	// APIDataURL only serves public market data
	APIDataURL = "https://data-api.binance.vision"

	// Stream endpoints are declared for completeness, streaming is not implemented
	StreamDataURL1 = "wss://data-stream.binance.vision:9443"
	StreamDataURL2 = "wss://data-stream.binance.vision:443"
)

// Headers
const (
	// APIKeyHeader carries the API key on authenticated requests. No
	// implemented endpoint requires it.
	APIKeyHeader           = "X-MBX-APIKEY"
	UsedWeightHeaderPrefix = "X-MBX-USED-WEIGHT-"
	OrderCountHeaderPrefix = "X-MBX-ORDER-COUNT-"
)

// Path is a REST endpoint path relative to the base URL
type Path string

// General endpoints
const (
	PathPing         Path = "/api/v3/ping"
	PathTime         Path = "/api/v3/time"
	PathExchangeInfo Path = "/api/v3/exchangeInfo"
)

// Market data endpoints
const (
	PathDepth            Path = "/api/v3/depth"
	PathTrades           Path = "/api/v3/trades"
	PathHistoricalTrades Path = "/api/v3/historicalTrades"
	PathAggTrades        Path = "/api/v3/aggTrades"
	PathKlines           Path = "/api/v3/klines"
	PathUIKlines         Path = "/api/v3/uiKlines"
	PathAvgPrice         Path = "/api/v3/avgPrice"
	PathTicker24hr       Path = "/api/v3/ticker/24hr"
	PathTickerTradingDay Path = "/api/v3/ticker/tradingDay"
	PathTickerPrice      Path = "/api/v3/ticker/price"
	PathTickerBook       Path = "/api/v3/ticker/bookTicker"
	PathTicker           Path = "/api/v3/ticker"
)

// Trading endpoints, declared but not wired to any client method
const (
	PathOrder                  Path = "/api/v3/order"
	PathOrderTest              Path = "/api/v3/order/test"
	PathOpenOrders             Path = "/api/v3/openOrders"
	PathOrderCancelReplace     Path = "/api/v3/order/cancelReplace"
	PathOrderAmendKeepPriority Path = "/api/v3/order/amend/keepPriority"
	PathOrderListOCO           Path = "/api/v3/orderList/oco"
	PathOrderListOTO           Path = "/api/v3/orderList/oto"
	PathOrderListOTOCO         Path = "/api/v3/orderList/otoco"
	PathOrderList              Path = "/api/v3/orderList"
	PathSOROrder               Path = "/api/v3/sor/order"
	PathSOROrderTest           Path = "/api/v3/sor/order/test"
	PathRateLimitOrder         Path = "/api/v3/rateLimit/order"
)

// String returns the path
func (p Path) String() string {
	return string(p)
}
