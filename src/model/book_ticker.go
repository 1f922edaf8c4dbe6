package model

import (
	"strconv"
)

// BookTicker is the best bid/ask quote for a symbol. Prices and quantities
// stay decimal strings as Binance quotes them, the ask-quantity string
// defines the lot-size precision used for order sizing.
type BookTicker struct {
	Symbol   string `json:"symbol"`
	BidPrice string `json:"bidPrice"`
	BidQty   string `json:"bidQty"`
	AskPrice string `json:"askPrice"`
	AskQty   string `json:"askQty"`
}

func (t *BookTicker) GetAskPrice() float64 {
	value, _ := strconv.ParseFloat(t.AskPrice, 64)

	return value
}

type BookTickerResponse struct {
	Id     string     `json:"id"`
	Status int64      `json:"status"`
	Result BookTicker `json:"result"`
	Error  *Error     `json:"error"`
}
