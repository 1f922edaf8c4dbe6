package controller

import (
	"gitlab.com/open-soft/go-trading-webhook/src/service"
	"gitlab.com/open-soft/go-trading-webhook/src/service/exchange"
	"io"
	"log"
	"net/http"
)

// WebhookController accepts alert webhooks and dispatches trade commands
// without awaiting them: the caller always gets an empty 200 as soon as the
// body is read, order success or failure never reaches the HTTP response.
type WebhookController struct {
	CommandParser *service.CommandParser
	OrderExecutor exchange.OrderExecutorInterface
}

func (c *WebhookController) PostWebhookAction(w http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		log.Println(err)
		w.WriteHeader(http.StatusOK)
		return
	}

	text := string(body)
	log.Printf("hook %s", text)

	command := c.CommandParser.Parse(text)

	if command != nil {
		if command.IsBuy() {
			go c.OrderExecutor.ExecuteBuy(command.Symbol, command.Amount)
		} else if command.IsSell() {
			go c.OrderExecutor.ExecuteSell(command.Symbol)
		}
	}

	w.WriteHeader(http.StatusOK)
}
