package exchange

import (
	"gitlab.com/open-soft/go-trading-webhook/src/client"
	"gitlab.com/open-soft/go-trading-webhook/src/model"
	"gitlab.com/open-soft/go-trading-webhook/src/utils"
	"log"
	"strconv"
	"strings"
)

type OrderExecutorInterface interface {
	ExecuteBuy(symbol string, amount string)
	ExecuteSell(symbol string)
}

type CallbackManagerInterface interface {
	BuyOrder(order model.BinanceOrder, bot model.Bot, details string)
	SellOrder(order model.BinanceOrder, bot model.Bot, details string)
}

// OrderExecutor turns one webhook command into at most one market order.
// Every failure is terminal for that command: the outcome is logged and
// nothing is retried, the webhook response has already been sent.
type OrderExecutor struct {
	CurrentBot      *model.Bot
	BalanceService  BalanceServiceInterface
	Binance         client.ExchangeAPIInterface
	Formatter       *utils.Formatter
	CallbackManager CallbackManagerInterface

	// MinQuoteBalance gates buys, BalanceBuffer is held back against
	// precision and fee shortfalls when spending the full balance.
	MinQuoteBalance float64
	BalanceBuffer   float64
}

const QuoteAsset = "USDT"

func (e *OrderExecutor) ExecuteBuy(symbol string, amount string) {
	usdtBalance, err := e.BalanceService.GetAssetBalance(QuoteAsset, false)
	if err != nil {
		log.Printf("[%s] Buy balance fetch: %s", symbol, err.Error())
		return
	}

	if usdtBalance <= e.MinQuoteBalance {
		log.Printf("[%s] Can not buy: balance %.2f %s is not above %.2f", symbol, usdtBalance, QuoteAsset, e.MinQuoteBalance)
		return
	}

	spendable := usdtBalance - e.BalanceBuffer

	if len(amount) > 0 {
		requested, err := strconv.ParseFloat(amount, 64)
		if err != nil {
			log.Printf("[%s] Invalid amount '%s', spending full balance", symbol, amount)
		} else if requested < usdtBalance {
			spendable = requested
		}
	}

	ticker, err := e.Binance.GetBookTicker(symbol)
	if err != nil {
		log.Printf("[%s] Buy ticker fetch: %s", symbol, err.Error())
		return
	}

	askPrice := ticker.GetAskPrice()
	if askPrice <= 0 {
		log.Printf("[%s] Can not buy: invalid ask price '%s'", symbol, ticker.AskPrice)
		return
	}

	quantity := e.Formatter.QuantizeQuantity(spendable/askPrice, ticker.AskQty)
	log.Printf("[%s] Buying, spendable %s %f, quantity %f", symbol, QuoteAsset, spendable, quantity)

	order, err := e.Binance.MarketBuy(symbol, quantity)
	if err != nil {
		log.Printf("[%s] Market buy: %s", symbol, err.Error())
		return
	}

	e.BalanceService.InvalidateBalanceCache(QuoteAsset)
	log.Printf("[%s] Market buy placed: id %d, qty %f, status %s", symbol, order.OrderId, order.OrigQty, order.Status)
	e.CallbackManager.BuyOrder(order, *e.CurrentBot, order.Status)
}

func (e *OrderExecutor) ExecuteSell(symbol string) {
	// leveraged tokens trade against USDT while the position asset keeps
	// the plain name, so the pair suffix is stripped for the balance lookup
	baseAsset := strings.TrimSuffix(symbol, QuoteAsset)

	available, err := e.BalanceService.GetAssetBalance(baseAsset, false)
	if err != nil {
		log.Printf("[%s] Sell balance fetch: %s", symbol, err.Error())
		return
	}

	ticker, err := e.Binance.GetBookTicker(symbol)
	if err != nil {
		log.Printf("[%s] Sell ticker fetch: %s", symbol, err.Error())
		return
	}

	quantity := e.Formatter.QuantizeQuantity(available, ticker.AskQty)
	if quantity == 0.00 {
		log.Printf("[%s] Can not sell: no %s available", symbol, baseAsset)
		return
	}

	log.Printf("[%s] Selling, available %s %f, quantity %f", symbol, baseAsset, available, quantity)

	order, err := e.Binance.MarketSell(symbol, quantity)
	if err != nil {
		log.Printf("[%s] Market sell: %s", symbol, err.Error())
		return
	}

	e.BalanceService.InvalidateBalanceCache(baseAsset)
	log.Printf("[%s] Market sell placed: id %d, qty %f, status %s", symbol, order.OrderId, order.OrigQty, order.Status)
	e.CallbackManager.SellOrder(order, *e.CurrentBot, order.Status)
}
