package binance

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrorCode is an exchange reported error code
type ErrorCode int16

// Error codes, the values are fixed by the exchange
const (
	// 10xx - General Server or Network issues
	ErrCodeUnknown                 ErrorCode = -1000
	ErrCodeDisconnected            ErrorCode = -1001
	ErrCodeUnauthorized            ErrorCode = -1002
	ErrCodeTooManyRequests         ErrorCode = -1003
	ErrCodeUnexpectedResp          ErrorCode = -1006
	ErrCodeTimeout                 ErrorCode = -1007
	ErrCodeServerBusy              ErrorCode = -1008
	ErrCodeErrorMsgReceived        ErrorCode = -1010
	ErrCodeInvalidMessage          ErrorCode = -1013
	ErrCodeUnknownOrderComposition ErrorCode = -1014
	ErrCodeTooManyOrders           ErrorCode = -1015
	ErrCodeServiceShuttingDown     ErrorCode = -1016
	ErrCodeUnsupportedOperation    ErrorCode = -1020
	ErrCodeInvalidTimestamp        ErrorCode = -1021
	ErrCodeInvalidSignature        ErrorCode = -1022
	ErrCodeCompIDInUse             ErrorCode = -1033
	ErrCodeTooManyConnections      ErrorCode = -1034
	ErrCodeLoggedOut               ErrorCode = -1035

	// 11xx - Request issues
	ErrCodeIllegalChars                   ErrorCode = -1100
	ErrCodeTooManyParameters              ErrorCode = -1101
	ErrCodeMandatoryParamEmptyOrMalformed ErrorCode = -1102
	ErrCodeUnknownParam                   ErrorCode = -1103
	ErrCodeUnreadParameters               ErrorCode = -1104
	ErrCodeParamEmpty                     ErrorCode = -1105
	ErrCodeParamNotRequired               ErrorCode = -1106
	ErrCodeParamOverflow                  ErrorCode = -1108
	ErrCodeBadPrecision                   ErrorCode = -1111
	ErrCodeNoDepth                        ErrorCode = -1112
	ErrCodeTIFNotRequired                 ErrorCode = -1114
	ErrCodeInvalidTIF                     ErrorCode = -1115
	ErrCodeInvalidOrderType               ErrorCode = -1116
	ErrCodeInvalidSide                    ErrorCode = -1117
	ErrCodeEmptyNewClOrdID                ErrorCode = -1118
	ErrCodeEmptyOrgClOrdID                ErrorCode = -1119
	ErrCodeBadInterval                    ErrorCode = -1120
	ErrCodeBadSymbol                      ErrorCode = -1121
	ErrCodeInvalidSymbolStatus            ErrorCode = -1122
	ErrCodeInvalidListenKey               ErrorCode = -1125
	ErrCodeMoreThanXXHours                ErrorCode = -1127
	ErrCodeOptionalParamsBadCombo         ErrorCode = -1128
	ErrCodeInvalidParameter               ErrorCode = -1130
	ErrCodeBadStrategyType                ErrorCode = -1134
	ErrCodeInvalidJSON                    ErrorCode = -1135
	ErrCodeInvalidTickerType              ErrorCode = -1139
	ErrCodeInvalidCancelRestrictions      ErrorCode = -1145
	ErrCodeDuplicateSymbols               ErrorCode = -1151
	ErrCodeInvalidSBEHeader               ErrorCode = -1152
	ErrCodeUnsupportedSchemaID            ErrorCode = -1153
	ErrCodeSBEDisabled                    ErrorCode = -1155
	ErrCodeOCOOrderTypeRejected           ErrorCode = -1158
	ErrCodeOCOIcebergQtyTimeInForce       ErrorCode = -1160
	ErrCodeDeprecatedSchema               ErrorCode = -1161
	ErrCodeBuyOCOLimitMustBeBelow         ErrorCode = -1165
	ErrCodeSellOCOLimitMustBeAbove        ErrorCode = -1166
	ErrCodeBothOCOOrdersCannotBeLimit     ErrorCode = -1168
	ErrCodeInvalidTagNumber               ErrorCode = -1169
	ErrCodeTagNotDefinedInMessage         ErrorCode = -1170
	ErrCodeTagAppearsMoreThanOnce         ErrorCode = -1171
	ErrCodeTagOutOfOrder                  ErrorCode = -1172
	ErrCodeGroupFieldsOutOfOrder          ErrorCode = -1173
	ErrCodeInvalidComponent               ErrorCode = -1174
	ErrCodeResetSeqNumSupport             ErrorCode = -1175
	ErrCodeAlreadyLoggedIn                ErrorCode = -1176
	ErrCodeGarbledMessage                 ErrorCode = -1177
	ErrCodeBadSenderCompID                ErrorCode = -1178
	ErrCodeBadSeqNum                      ErrorCode = -1179
	ErrCodeExpectedLogon                  ErrorCode = -1180
	ErrCodeTooManyMessages                ErrorCode = -1181
	ErrCodeParamsBadCombo                 ErrorCode = -1182
	ErrCodeNotAllowedInDropCopySessions   ErrorCode = -1183
	ErrCodeDropCopySessionNotAllowed      ErrorCode = -1184
	ErrCodeDropCopySessionRequired        ErrorCode = -1185
	ErrCodeNotAllowedInOrderEntrySessions ErrorCode = -1186
	ErrCodeNotAllowedInMarketDataSessions ErrorCode = -1187
	ErrCodeIncorrectNumInGroupCount       ErrorCode = -1188
	ErrCodeDuplicateEntriesInAGroup       ErrorCode = -1189
	ErrCodeInvalidRequestID               ErrorCode = -1190
	ErrCodeTooManySubscriptions           ErrorCode = -1191
	ErrCodeInvalidTimeUnit                ErrorCode = -1194
	ErrCodeBuyOCOStopLossMustBeAbove      ErrorCode = -1196
	ErrCodeSellOCOStopLossMustBeBelow     ErrorCode = -1197
	ErrCodeBuyOCOTakeProfitMustBeBelow    ErrorCode = -1198
	ErrCodeSellOCOTakeProfitMustBeAbove   ErrorCode = -1199

	// 20xx - Processing issues
	ErrCodeNewOrderRejected                  ErrorCode = -2010
	ErrCodeCancelRejected                    ErrorCode = -2011
	ErrCodeNoSuchOrder                       ErrorCode = -2013
	ErrCodeBadAPIKeyFmt                      ErrorCode = -2014
	ErrCodeRejectedMBXKey                    ErrorCode = -2015
	ErrCodeNoTradingWindow                   ErrorCode = -2016
	ErrCodeOrderCancelReplacePartiallyFailed ErrorCode = -2021
	ErrCodeOrderCancelReplaceFailed          ErrorCode = -2022
	ErrCodeOrderArchived                     ErrorCode = -2026
	ErrCodeOrderAmendRejected                ErrorCode = -2038
	ErrCodeClientOrderIDInvalid              ErrorCode = -2039
)

var errorCodeMessages = map[ErrorCode]string{
	ErrCodeUnknown:                 "An unknown error occurred while processing the request.",
	ErrCodeDisconnected:            "Internal error; unable to process your request. Please try again.",
	ErrCodeUnauthorized:            "You are not authorized to execute this request.",
	ErrCodeTooManyRequests:         "Too many requests queued.",
	ErrCodeUnexpectedResp:          "An unexpected response was received from the message bus. Execution status unknown.",
	ErrCodeTimeout:                 "Timeout waiting for response from backend server. Send status unknown; execution status unknown.",
	ErrCodeServerBusy:              "Server is currently overloaded with other requests. Please try again in a few minutes.",
	ErrCodeErrorMsgReceived:        "This code is sent when an error has been returned by the matching engine.",
	ErrCodeInvalidMessage:          "The request is rejected by the API. (i.e. The request didn't reach the Matching Engine.)",
	ErrCodeUnknownOrderComposition: "Unsupported order combination.",
	ErrCodeTooManyOrders:           "Too many new orders.",
	ErrCodeServiceShuttingDown:     "This service is no longer available.",
	ErrCodeUnsupportedOperation:    "This operation is not supported.",
	ErrCodeInvalidTimestamp:        "Timestamp for this request is outside of the recvWindow.",
	ErrCodeInvalidSignature:        "Signature for this request is not valid.",
	ErrCodeCompIDInUse:             "SenderCompId(49) is currently in use. Concurrent use of the same SenderCompId within one account is not allowed.",
	ErrCodeTooManyConnections:      "Too many concurrent connections.",
	ErrCodeLoggedOut:               "Please send Logout<5> message to close the session.",

	ErrCodeIllegalChars:                   "Illegal characters found in a parameter.",
	ErrCodeTooManyParameters:              "Too many parameters sent for this endpoint.",
	ErrCodeMandatoryParamEmptyOrMalformed: "A mandatory parameter was not sent, was empty/null, or malformed.",
	ErrCodeUnknownParam:                   "An unknown parameter was sent.",
	ErrCodeUnreadParameters:               "Not all sent parameters were read.",
	ErrCodeParamEmpty:                     "A parameter was empty.",
	ErrCodeParamNotRequired:               "A parameter was sent when not required.",
	ErrCodeParamOverflow:                  "Parameter overflowed.",
	ErrCodeBadPrecision:                   "Parameter has too much precision.",
	ErrCodeNoDepth:                        "No orders on book for symbol.",
	ErrCodeTIFNotRequired:                 "TimeInForce parameter sent when not required.",
	ErrCodeInvalidTIF:                     "Invalid timeInForce.",
	ErrCodeInvalidOrderType:               "Invalid orderType.",
	ErrCodeInvalidSide:                    "Invalid side.",
	ErrCodeEmptyNewClOrdID:                "New client order ID was empty.",
	ErrCodeEmptyOrgClOrdID:                "Original client order ID was empty.",
	ErrCodeBadInterval:                    "Invalid interval.",
	ErrCodeBadSymbol:                      "Invalid symbol.",
	ErrCodeInvalidSymbolStatus:            "Invalid symbolStatus.",
	ErrCodeInvalidListenKey:               "This listenKey does not exist.",
	ErrCodeMoreThanXXHours:                "Lookup interval is too big.",
	ErrCodeOptionalParamsBadCombo:         "Combination of optional parameters invalid.",
	ErrCodeInvalidParameter:               "Invalid data sent for a parameter.",
	ErrCodeBadStrategyType:                "strategyType was less than 1000000.",
	ErrCodeInvalidJSON:                    "Invalid JSON Request",
	ErrCodeInvalidTickerType:              "Invalid ticker type.",
	ErrCodeInvalidCancelRestrictions:      "cancelRestrictions has to be either ONLY_NEW or ONLY_PARTIALLY_FILLED.",
	ErrCodeDuplicateSymbols:               "Symbol is present multiple times in the list.",
	ErrCodeInvalidSBEHeader:               "Invalid X-MBX-SBE header; expected <SCHEMA_ID>:<VERSION>.",
	ErrCodeUnsupportedSchemaID:            "Unsupported SBE schema ID or version specified in the X-MBX-SBE header.",
	ErrCodeSBEDisabled:                    "SBE is not enabled.",
	ErrCodeOCOOrderTypeRejected:           "Order type not supported in OCO.",
	ErrCodeOCOIcebergQtyTimeInForce:       "Parameter is not supported if aboveTimeInForce/belowTimeInForce is not GTC.",
	ErrCodeDeprecatedSchema:               "Unable to encode the response in the requested SBE schema.",
	ErrCodeBuyOCOLimitMustBeBelow:         "A limit order in a buy OCO must be below.",
	ErrCodeSellOCOLimitMustBeAbove:        "A limit order in a sell OCO must be above.",
	ErrCodeBothOCOOrdersCannotBeLimit:     "At least one OCO order must be contingent.",
	ErrCodeInvalidTagNumber:               "Invalid tag number.",
	ErrCodeTagNotDefinedInMessage:         "Tag not defined for this message type.",
	ErrCodeTagAppearsMoreThanOnce:         "Tag appears more than once.",
	ErrCodeTagOutOfOrder:                  "Tag specified out of required order.",
	ErrCodeGroupFieldsOutOfOrder:          "Repeating group fields out of order.",
	ErrCodeInvalidComponent:               "Component is incorrectly populated on order.",
	ErrCodeResetSeqNumSupport:             "Continuation of sequence numbers to new session is currently unsupported. Sequence numbers must be reset for each new session.",
	ErrCodeAlreadyLoggedIn:                "Logon<A> should only be sent once.",
	ErrCodeGarbledMessage:                 "CheckSum(10) contains an incorrect value.",
	ErrCodeBadSenderCompID:                "SenderCompId(49) contains an incorrect value. The SenderCompID value should not change throughout the lifetime of a session.",
	ErrCodeBadSeqNum:                      "MsgSeqNum(34) contains an unexpected value.",
	ErrCodeExpectedLogon:                  "Logon<A> must be the first message in the session.",
	ErrCodeTooManyMessages:                "Too many messages.",
	ErrCodeParamsBadCombo:                 "Conflicting fields.",
	ErrCodeNotAllowedInDropCopySessions:   "Requested operation is not allowed in DropCopy sessions.",
	ErrCodeDropCopySessionNotAllowed:      "DropCopy sessions are not supported on this server. Please reconnect to a drop copy server.",
	ErrCodeDropCopySessionRequired:        "Only DropCopy sessions are supported on this server. Either reconnect to order entry server or send DropCopyFlag (9406) field.",
	ErrCodeNotAllowedInOrderEntrySessions: "Requested operation is not allowed in order entry sessions.",
	ErrCodeNotAllowedInMarketDataSessions: "Requested operation is not allowed in market data sessions.",
	ErrCodeIncorrectNumInGroupCount:       "Incorrect NumInGroup count for repeating group.",
	ErrCodeDuplicateEntriesInAGroup:       "Group contains duplicate entries.",
	ErrCodeInvalidRequestID:               "MDReqID (262) contains a subscription request id that is already in use on this connection.",
	ErrCodeTooManySubscriptions:           "Too many subscriptions.",
	ErrCodeInvalidTimeUnit:                "Invalid value for time unit; expected either MICROSECOND or MILLISECOND.",
	ErrCodeBuyOCOStopLossMustBeAbove:      "A stop loss order in a buy OCO must be above.",
	ErrCodeSellOCOStopLossMustBeBelow:     "A stop loss order in a sell OCO must be below.",
	ErrCodeBuyOCOTakeProfitMustBeBelow:    "A take profit order in a buy OCO must be below.",
	ErrCodeSellOCOTakeProfitMustBeAbove:   "A take profit order in a sell OCO must be above.",

	ErrCodeNewOrderRejected:                  "NEW_ORDER_REJECTED",
	ErrCodeCancelRejected:                    "CANCEL_REJECTED",
	ErrCodeNoSuchOrder:                       "Order does not exist.",
	ErrCodeBadAPIKeyFmt:                      "API-key format invalid.",
	ErrCodeRejectedMBXKey:                    "Invalid API-key, IP, or permissions for action.",
	ErrCodeNoTradingWindow:                   "No trading window could be found for the symbol. Try ticker/24hrs instead.",
	ErrCodeOrderCancelReplacePartiallyFailed: "Either the cancellation of the order failed or the new order placement failed but not both.",
	ErrCodeOrderCancelReplaceFailed:          "Both the cancellation of the order failed and the new order placement failed.",
	ErrCodeOrderArchived:                     "Order was canceled or expired with no executed qty over 90 days ago and has been archived.",
	ErrCodeOrderAmendRejected:                "This code is sent when an error has been returned by the matching engine.",
	ErrCodeClientOrderIDInvalid:              "Client order ID is not correct for this order ID.",
}

var (
	// ErrEncodeQuery is returned when request parameters cannot be encoded
	ErrEncodeQuery = errors.New("cannot encode query parameters")

	errUnknownErrorCode = errors.New("unknown error code")
)

// Known reports whether the code is part of the documented catalog
func (c ErrorCode) Known() bool {
	_, ok := errorCodeMessages[c]
	return ok
}

// Message returns the documented meaning of the code
func (c ErrorCode) Message() string {
	if m, ok := errorCodeMessages[c]; ok {
		return m
	}
	return "undocumented error code"
}

// String implements fmt.Stringer
func (c ErrorCode) String() string {
	return strconv.Itoa(int(c)) + " " + c.Message()
}

// UnmarshalJSON decodes a code and rejects values outside the catalog
func (c *ErrorCode) UnmarshalJSON(data []byte) error {
	v, err := strconv.ParseInt(string(data), 10, 16)
	if err != nil {
		return fmt.Errorf("error code %s: %w", data, err)
	}
	code := ErrorCode(v)
	if !code.Known() {
		return fmt.Errorf("%w: %d", errUnknownErrorCode, v)
	}
	*c = code
	return nil
}

// APIError is an exchange reported error decoded from a non 2xx response
type APIError struct {
	StatusCode int
	Code       ErrorCode
	Message    string
	// RetryAfter is the Retry-After hint in seconds, nil when absent
	RetryAfter *uint64
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("binance API error: HTTP %d code %d: %s", e.StatusCode, e.Code, e.Message)
}

// Is allows errors.Is to match on an ErrorCode
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	return ok && t.Code == e.Code
}
