package controller

import (
	"encoding/json"
	"fmt"
	"gitlab.com/open-soft/go-trading-webhook/src/model"
	"gitlab.com/open-soft/go-trading-webhook/src/repository"
	"gitlab.com/open-soft/go-trading-webhook/src/service/exchange"
	"net/http"
)

// BotController serves the status endpoint. Unlike the order flow it reads
// through the caches: balance and bot snapshots up to a minute old are fine
// for monitoring and keep status polling off the exchange API.
type BotController struct {
	CurrentBot     *model.Bot
	BotRepository  repository.BotRepositoryInterface
	BalanceService exchange.BalanceServiceInterface
}

func (b *BotController) GetStatusAction(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if req.Method != "GET" {
		http.Error(w, "Only GET method is allowed", http.StatusMethodNotAllowed)

		return
	}

	botUuid := req.URL.Query().Get("botUuid")

	if botUuid != b.CurrentBot.BotUuid {
		http.Error(w, "Forbidden", http.StatusForbidden)

		return
	}

	bot := b.BotRepository.GetCurrentBotCached(b.CurrentBot.Id)

	quoteBalance, err := b.BalanceService.GetAssetBalance(exchange.QuoteAsset, true)
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)

		return
	}

	encoded, _ := json.Marshal(model.BotStatus{
		Bot:          bot,
		QuoteAsset:   exchange.QuoteAsset,
		QuoteBalance: quoteBalance,
	})
	fmt.Fprintf(w, string(encoded))
}
