package binance

import (
	"errors"
	"fmt"
	"time"

	"github.com/thrasher-corp/binancespot/encoding/json"
)

var errUnknownEnumValue = errors.New("unknown enum value")

// unmarshalEnum decodes a JSON string into target, rejecting tokens outside valid
func unmarshalEnum[T ~string](data []byte, target *T, valid []T) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%T: %w", *target, err)
	}
	for _, v := range valid {
		if string(v) == s {
			*target = v
			return nil
		}
	}
	return fmt.Errorf("%w %q for %T", errUnknownEnumValue, s, *target)
}

// SymbolStatus is the trading status of a symbol
type SymbolStatus string

// SymbolStatus values
const (
	SymbolStatusTrading  SymbolStatus = "TRADING"
	SymbolStatusEndOfDay SymbolStatus = "END_OF_DAY"
	SymbolStatusHalt     SymbolStatus = "HALT"
	SymbolStatusBreak    SymbolStatus = "BREAK"
)

var symbolStatuses = []SymbolStatus{SymbolStatusTrading, SymbolStatusEndOfDay, SymbolStatusHalt, SymbolStatusBreak}

// UnmarshalJSON implements json.Unmarshaler
func (s *SymbolStatus) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, s, symbolStatuses)
}

// OrderStatus is the status of an order
type OrderStatus string

// OrderStatus values
const (
	OrderStatusNew             OrderStatus = "NEW"
	OrderStatusPendingNew      OrderStatus = "PENDING_NEW"
	OrderStatusPartiallyFilled OrderStatus = "PARTIALLY_FILLED"
	OrderStatusFilled          OrderStatus = "FILLED"
	OrderStatusCanceled        OrderStatus = "CANCELED"
	OrderStatusPendingCancel   OrderStatus = "PENDING_CANCEL"
	OrderStatusRejected        OrderStatus = "REJECTED"
	OrderStatusExpired         OrderStatus = "EXPIRED"
	OrderStatusExpiredInMatch  OrderStatus = "EXPIRED_IN_MATCH"
)

var orderStatuses = []OrderStatus{
	OrderStatusNew, OrderStatusPendingNew, OrderStatusPartiallyFilled, OrderStatusFilled, OrderStatusCanceled,
	OrderStatusPendingCancel, OrderStatusRejected, OrderStatusExpired, OrderStatusExpiredInMatch,
}

// UnmarshalJSON implements json.Unmarshaler
func (s *OrderStatus) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, s, orderStatuses)
}

// OrderListStatus is the list status type of an order list
type OrderListStatus string

// OrderListStatus values
const (
	OrderListStatusResponse    OrderListStatus = "RESPONSE"
	OrderListStatusExecStarted OrderListStatus = "EXEC_STARTED"
	OrderListStatusUpdated     OrderListStatus = "UPDATED"
	OrderListStatusAllDone     OrderListStatus = "ALL_DONE"
)

var orderListStatuses = []OrderListStatus{OrderListStatusResponse, OrderListStatusExecStarted, OrderListStatusUpdated, OrderListStatusAllDone}

// UnmarshalJSON implements json.Unmarshaler
func (s *OrderListStatus) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, s, orderListStatuses)
}

// OrderListOrderStatus is the list order status of an order list
type OrderListOrderStatus string

// OrderListOrderStatus values
const (
	OrderListOrderStatusExecuting OrderListOrderStatus = "EXECUTING"
	OrderListOrderStatusAllDone   OrderListOrderStatus = "ALL_DONE"
	OrderListOrderStatusReject    OrderListOrderStatus = "REJECT"
)

var orderListOrderStatuses = []OrderListOrderStatus{OrderListOrderStatusExecuting, OrderListOrderStatusAllDone, OrderListOrderStatusReject}

// UnmarshalJSON implements json.Unmarshaler
func (s *OrderListOrderStatus) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, s, orderListOrderStatuses)
}

// ContingencyType of an order list
type ContingencyType string

// ContingencyType values
const (
	ContingencyTypeOCO ContingencyType = "OCO"
	ContingencyTypeOTO ContingencyType = "OTO"
)

var contingencyTypes = []ContingencyType{ContingencyTypeOCO, ContingencyTypeOTO}

// UnmarshalJSON implements json.Unmarshaler
func (c *ContingencyType) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, c, contingencyTypes)
}

// AllocationType of an order allocation
type AllocationType string

// AllocationTypeSOR is the only allocation type
const AllocationTypeSOR AllocationType = "SOR"

// UnmarshalJSON implements json.Unmarshaler
func (a *AllocationType) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, a, []AllocationType{AllocationTypeSOR})
}

// OrderType is an order type
type OrderType string

// OrderType values
const (
	OrderTypeLimit           OrderType = "LIMIT"
	OrderTypeMarket          OrderType = "MARKET"
	OrderTypeStopLoss        OrderType = "STOP_LOSS"
	OrderTypeStopLossLimit   OrderType = "STOP_LOSS_LIMIT"
	OrderTypeTakeProfit      OrderType = "TAKE_PROFIT"
	OrderTypeTakeProfitLimit OrderType = "TAKE_PROFIT_LIMIT"
	OrderTypeLimitMaker      OrderType = "LIMIT_MAKER"
)

var orderTypes = []OrderType{
	OrderTypeLimit, OrderTypeMarket, OrderTypeStopLoss, OrderTypeStopLossLimit,
	OrderTypeTakeProfit, OrderTypeTakeProfitLimit, OrderTypeLimitMaker,
}

// UnmarshalJSON implements json.Unmarshaler
func (o *OrderType) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, o, orderTypes)
}

// OrderResponseType selects how much detail an order response carries
type OrderResponseType string

// OrderResponseType values
const (
	OrderResponseTypeAck    OrderResponseType = "ACK"
	OrderResponseTypeResult OrderResponseType = "RESULT"
	OrderResponseTypeFull   OrderResponseType = "FULL"
)

var orderResponseTypes = []OrderResponseType{OrderResponseTypeAck, OrderResponseTypeResult, OrderResponseTypeFull}

// UnmarshalJSON implements json.Unmarshaler
func (o *OrderResponseType) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, o, orderResponseTypes)
}

// WorkingFloor is where an order is working
type WorkingFloor string

// WorkingFloor values
const (
	WorkingFloorExchange WorkingFloor = "EXCHANGE"
	WorkingFloorSOR      WorkingFloor = "SOR"
)

var workingFloors = []WorkingFloor{WorkingFloorExchange, WorkingFloorSOR}

// UnmarshalJSON implements json.Unmarshaler
func (w *WorkingFloor) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, w, workingFloors)
}

// OrderSide is the side of an order
type OrderSide string

// OrderSide values
const (
	OrderSideBuy  OrderSide = "BUY"
	OrderSideSell OrderSide = "SELL"
)

var orderSides = []OrderSide{OrderSideBuy, OrderSideSell}

// UnmarshalJSON implements json.Unmarshaler
func (o *OrderSide) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, o, orderSides)
}

// TimeInForce governs how long an order remains active
type TimeInForce string

// TimeInForce values
const (
	TimeInForceGTC TimeInForce = "GTC"
	TimeInForceIOC TimeInForce = "IOC"
	TimeInForceFOK TimeInForce = "FOK"
)

var timeInForces = []TimeInForce{TimeInForceGTC, TimeInForceIOC, TimeInForceFOK}

// UnmarshalJSON implements json.Unmarshaler
func (t *TimeInForce) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, t, timeInForces)
}

// RateLimiter is the kind of an exchange rate limit
type RateLimiter string

// RateLimiter values
const (
	RateLimiterRequestWeight RateLimiter = "REQUEST_WEIGHT"
	RateLimiterOrders        RateLimiter = "ORDERS"
	RateLimiterRawRequests   RateLimiter = "RAW_REQUESTS"
)

var rateLimiters = []RateLimiter{RateLimiterRequestWeight, RateLimiterOrders, RateLimiterRawRequests}

// UnmarshalJSON implements json.Unmarshaler
func (r *RateLimiter) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, r, rateLimiters)
}

// RateLimitInterval is the unit of a rate limit window
type RateLimitInterval string

// RateLimitInterval values
const (
	RateLimitIntervalSecond RateLimitInterval = "SECOND"
	RateLimitIntervalMinute RateLimitInterval = "MINUTE"
	RateLimitIntervalDay    RateLimitInterval = "DAY"
)

var rateLimitIntervals = []RateLimitInterval{RateLimitIntervalSecond, RateLimitIntervalMinute, RateLimitIntervalDay}

// UnmarshalJSON implements json.Unmarshaler
func (r *RateLimitInterval) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, r, rateLimitIntervals)
}

// Duration returns the length of one interval unit
func (r RateLimitInterval) Duration() time.Duration {
	switch r {
	case RateLimitIntervalSecond:
		return time.Second
	case RateLimitIntervalMinute:
		return time.Minute
	case RateLimitIntervalDay:
		return time.Hour * 24
	}
	return 0
}

// KlineInterval is the bucket length of a kline
type KlineInterval string

// KlineInterval values
const (
	KlineInterval1s  KlineInterval = "1s"
	KlineInterval1m  KlineInterval = "1m"
	KlineInterval3m  KlineInterval = "3m"
	KlineInterval5m  KlineInterval = "5m"
	KlineInterval15m KlineInterval = "15m"
	KlineInterval30m KlineInterval = "30m"
	KlineInterval1h  KlineInterval = "1h"
	KlineInterval2h  KlineInterval = "2h"
	KlineInterval4h  KlineInterval = "4h"
	KlineInterval6h  KlineInterval = "6h"
	KlineInterval8h  KlineInterval = "8h"
	KlineInterval12h KlineInterval = "12h"
	KlineInterval1d  KlineInterval = "1d"
	KlineInterval3d  KlineInterval = "3d"
	KlineInterval1w  KlineInterval = "1w"
	KlineInterval1M  KlineInterval = "1M"
)

var klineIntervals = map[KlineInterval]time.Duration{
	KlineInterval1s:  time.Second,
	KlineInterval1m:  time.Minute,
	KlineInterval3m:  time.Minute * 3,
	KlineInterval5m:  time.Minute * 5,
	KlineInterval15m: time.Minute * 15,
	KlineInterval30m: time.Minute * 30,
	KlineInterval1h:  time.Hour,
	KlineInterval2h:  time.Hour * 2,
	KlineInterval4h:  time.Hour * 4,
	KlineInterval6h:  time.Hour * 6,
	KlineInterval8h:  time.Hour * 8,
	KlineInterval12h: time.Hour * 12,
	KlineInterval1d:  time.Hour * 24,
	KlineInterval3d:  time.Hour * 24 * 3,
	KlineInterval1w:  time.Hour * 24 * 7,
	// Calendar months vary, 30 days is used as an approximation
	KlineInterval1M: time.Hour * 24 * 30,
}

// KlineIntervals returns every interval in ascending order
func KlineIntervals() []KlineInterval {
	return []KlineInterval{
		KlineInterval1s, KlineInterval1m, KlineInterval3m, KlineInterval5m, KlineInterval15m, KlineInterval30m,
		KlineInterval1h, KlineInterval2h, KlineInterval4h, KlineInterval6h, KlineInterval8h, KlineInterval12h,
		KlineInterval1d, KlineInterval3d, KlineInterval1w, KlineInterval1M,
	}
}

// ParseKlineInterval returns the interval for a wire token
func ParseKlineInterval(s string) (KlineInterval, error) {
	k := KlineInterval(s)
	if _, ok := klineIntervals[k]; !ok {
		return "", fmt.Errorf("%w %q for %T", errUnknownEnumValue, s, k)
	}
	return k, nil
}

// String returns the wire token, e.g. 1m
func (k KlineInterval) String() string {
	return string(k)
}

// Duration returns the bucket length
func (k KlineInterval) Duration() time.Duration {
	return klineIntervals[k]
}

// UnmarshalJSON implements json.Unmarshaler
func (k *KlineInterval) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, k, KlineIntervals())
}

// STPMode is a self trade prevention mode
type STPMode string

// STPMode values
const (
	STPModeNone        STPMode = "NONE"
	STPModeExpireMaker STPMode = "EXPIRE_MAKER"
	STPModeExpireTaker STPMode = "EXPIRE_TAKER"
	STPModeExpireBoth  STPMode = "EXPIRE_BOTH"
	STPModeDecrement   STPMode = "DECREMENT"
)

var stpModes = []STPMode{STPModeNone, STPModeExpireMaker, STPModeExpireTaker, STPModeExpireBoth, STPModeDecrement}

// UnmarshalJSON implements json.Unmarshaler
func (s *STPMode) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, s, stpModes)
}

// SecurityType is the security requirement of an endpoint
type SecurityType string

// SecurityType values
const (
	SecurityTypeNone       SecurityType = "NONE"
	SecurityTypeTrade      SecurityType = "TRADE"
	SecurityTypeUserData   SecurityType = "USER_DATA"
	SecurityTypeUserStream SecurityType = "USER_STREAM"
)

var securityTypes = []SecurityType{SecurityTypeNone, SecurityTypeTrade, SecurityTypeUserData, SecurityTypeUserStream}

// UnmarshalJSON implements json.Unmarshaler
func (s *SecurityType) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, s, securityTypes)
}

// TickerType selects the ticker response detail
type TickerType string

// TickerType values
const (
	TickerTypeFull TickerType = "FULL"
	TickerTypeMini TickerType = "MINI"
)

var tickerTypes = []TickerType{TickerTypeFull, TickerTypeMini}

// UnmarshalJSON implements json.Unmarshaler
func (t *TickerType) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, t, tickerTypes)
}

// FilterType names a symbol or exchange filter. The exchange adds filters
// over time so decoding accepts any token; the known names are listed here.
type FilterType string

// FilterType values
const (
	FilterTypePrice                       FilterType = "PRICE_FILTER"
	FilterTypePercentPrice                FilterType = "PERCENT_PRICE"
	FilterTypePercentPriceBySide          FilterType = "PERCENT_PRICE_BY_SIDE"
	FilterTypeLotSize                     FilterType = "LOT_SIZE"
	FilterTypeMinNotional                 FilterType = "MIN_NOTIONAL"
	FilterTypeNotional                    FilterType = "NOTIONAL"
	FilterTypeIcebergParts                FilterType = "ICEBERG_PARTS"
	FilterTypeMarketLotSize               FilterType = "MARKET_LOT_SIZE"
	FilterTypeMaxNumOrders                FilterType = "MAX_NUM_ORDERS"
	FilterTypeMaxNumAlgoOrders            FilterType = "MAX_NUM_ALGO_ORDERS"
	FilterTypeMaxNumIcebergOrders         FilterType = "MAX_NUM_ICEBERG_ORDERS"
	FilterTypeMaxPosition                 FilterType = "MAX_POSITION"
	FilterTypeTrailingDelta               FilterType = "TRAILING_DELTA"
	FilterTypeExchangeMaxNumOrders        FilterType = "EXCHANGE_MAX_NUM_ORDERS"
	FilterTypeExchangeMaxNumAlgoOrders    FilterType = "EXCHANGE_MAX_NUM_ALGO_ORDERS"
	FilterTypeExchangeMaxNumIcebergOrders FilterType = "EXCHANGE_MAX_NUM_ICEBERG_ORDERS"
)

// AccountPermission is a permission required to trade a symbol. The exchange
// adds trading groups over time so decoding accepts any token.
type AccountPermission string

// AccountPermission values
const (
	AccountPermissionSpot      AccountPermission = "SPOT"
	AccountPermissionMargin    AccountPermission = "MARGIN"
	AccountPermissionLeveraged AccountPermission = "LEVERAGED"
	AccountPermissionTRDGRP002 AccountPermission = "TRD_GRP_002"
	AccountPermissionTRDGRP003 AccountPermission = "TRD_GRP_003"
	AccountPermissionTRDGRP004 AccountPermission = "TRD_GRP_004"
	AccountPermissionTRDGRP005 AccountPermission = "TRD_GRP_005"
	AccountPermissionTRDGRP006 AccountPermission = "TRD_GRP_006"
)
