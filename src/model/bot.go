package model

type Bot struct {
	Id      int64  `json:"id"`
	BotUuid string `json:"botUuid"`
}

type BotStatus struct {
	Bot          Bot     `json:"bot"`
	QuoteAsset   string  `json:"quoteAsset"`
	QuoteBalance float64 `json:"quoteBalance"`
}
