package model

import (
	"strings"
)

type SocketRequest struct {
	Id     string         `json:"id"`
	Method string         `json:"method"`
	Params map[string]any `json:"params"`
}

type Error struct {
	Code    int64  `json:"code"`
	Message string `json:"msg"`
}

const BinanceErrorInvalidAPIKeyOrPermissions = "binance_error_invalid_api_key_or_permissions"
const BinanceErrorFilterNotional = "binance_error_filter_notional"

func (e *Error) GetMessage() string {
	if strings.Contains(e.Message, "Invalid API-key, IP, or permissions for action") {
		return BinanceErrorInvalidAPIKeyOrPermissions
	}

	if strings.Contains(e.Message, "Filter failure: NOTIONAL") {
		return BinanceErrorFilterNotional
	}

	return e.Message
}

type Balance struct {
	Asset  string  `json:"asset"`
	Free   float64 `json:"free,string"`
	Locked float64 `json:"locked,string"`
}

type AccountStatus struct {
	Balances []Balance `json:"balances"`
}

type AccountStatusResponse struct {
	Id     string        `json:"id"`
	Status int64         `json:"status"`
	Result AccountStatus `json:"result"`
	Error  *Error        `json:"error"`
}

type BinanceOrderResponse struct {
	Id     string       `json:"id"`
	Status int64        `json:"status"`
	Result BinanceOrder `json:"result"`
	Error  *Error       `json:"error"`
}
