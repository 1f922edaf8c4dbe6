package service

import (
	"gitlab.com/open-soft/go-trading-webhook/src/model"
	"strings"
)

// CommandParser turns a freeform webhook body into a trade command.
// Classification is a plain case-sensitive substring match, "buy" wins over
// "sell" when a body contains both. Symbol and amount extraction replicate
// the literal split-on-first-token semantics of the alert format: the symbol
// is everything after the first colon, the amount everything after the
// "amount:" token, trimmed.
type CommandParser struct {
}

func (p *CommandParser) Parse(body string) *model.Command {
	operation := ""

	if strings.Contains(body, "buy") {
		operation = model.CommandOperationBuy
	} else if strings.Contains(body, "sell") {
		operation = model.CommandOperationSell
	}

	if len(operation) == 0 {
		return nil
	}

	return &model.Command{
		Operation: operation,
		Symbol:    p.parseSymbol(body),
		Amount:    p.parseAmount(body),
	}
}

func (p *CommandParser) parseSymbol(body string) string {
	split := strings.SplitN(body, ":", 2)
	if len(split) < 2 {
		return ""
	}

	return split[1]
}

func (p *CommandParser) parseAmount(body string) string {
	split := strings.SplitN(body, "amount:", 2)
	if len(split) < 2 {
		return ""
	}

	return strings.TrimSpace(split[1])
}
