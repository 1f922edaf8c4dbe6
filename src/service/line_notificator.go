package service

import (
	"fmt"
	"gitlab.com/open-soft/go-trading-webhook/src/client"
	"gitlab.com/open-soft/go-trading-webhook/src/model"
	"log"
	"net/url"
)

const LineNotifyUrl = "https://notify-api.line.me/api/notify"

// LineNotificator pushes order confirmations to LINE Notify. It stays
// disabled when no token is configured, the trade flow does not depend on it.
type LineNotificator struct {
	HttpClient client.HttpClientInterface
	NotifyUrl  string
	Token      string
}

func (l *LineNotificator) IsEnabled() bool {
	return len(l.Token) > 0
}

func (l *LineNotificator) BuyOrder(order model.BinanceOrder, bot model.Bot, details string) {
	if !l.IsEnabled() {
		return
	}

	err := l.SendMessage(fmt.Sprintf(
		"[bot %s] BUY %s, quantity %f: %s",
		bot.BotUuid,
		order.Symbol,
		order.OrigQty,
		details,
	))
	if err == nil {
		log.Printf("[%s] LINE BUY notification sent", order.Symbol)
	} else {
		log.Printf("[%s] LINE BUY notification failed: %s", order.Symbol, err.Error())
	}
}

func (l *LineNotificator) SellOrder(order model.BinanceOrder, bot model.Bot, details string) {
	if !l.IsEnabled() {
		return
	}

	err := l.SendMessage(fmt.Sprintf(
		"[bot %s] SELL %s, quantity %f: %s",
		bot.BotUuid,
		order.Symbol,
		order.OrigQty,
		details,
	))
	if err == nil {
		log.Printf("[%s] LINE SELL notification sent", order.Symbol)
	} else {
		log.Printf("[%s] LINE SELL notification failed: %s", order.Symbol, err.Error())
	}
}

func (l *LineNotificator) SendMessage(text string) error {
	params := url.Values{}
	params.Set("message", text)

	_, err := l.HttpClient.PostForm(l.getNotifyUrl(), params, map[string]string{
		"Authorization": fmt.Sprintf("Bearer %s", l.Token),
	})

	return err
}

func (l *LineNotificator) getNotifyUrl() string {
	if len(l.NotifyUrl) > 0 {
		return l.NotifyUrl
	}

	return LineNotifyUrl
}
