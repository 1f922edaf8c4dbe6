package model

const CommandOperationBuy = "BUY"
const CommandOperationSell = "SELL"

// Command is derived from a single webhook body and discarded after dispatch.
// Symbol keeps the raw text after the first colon, Amount the raw text after
// the "amount:" token. Neither is validated here: an absent symbol is passed
// through to the exchange and rejected there.
type Command struct {
	Operation string
	Symbol    string
	Amount    string
}

func (c *Command) IsBuy() bool {
	return c.Operation == CommandOperationBuy
}

func (c *Command) IsSell() bool {
	return c.Operation == CommandOperationSell
}

func (c *Command) HasAmount() bool {
	return len(c.Amount) > 0
}
