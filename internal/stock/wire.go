package stock

import "github.com/shopspring/decimal"

// stockRecord is one entry of the /stock/symbol listing.
type stockRecord struct {
	Symbol        string `json:"symbol"`
	Description   string `json:"description"`
	DisplaySymbol string `json:"displaySymbol"`
	Type          string `json:"type"`
	Currency      string `json:"currency"`
	MIC           string `json:"mic"`
}

// quoteRecord is the /quote payload. Symbol is not reliably present and is
// never trusted.
type quoteRecord struct {
	Symbol        string          `json:"symbol"`
	Current       decimal.Decimal `json:"c"`
	Change        decimal.Decimal `json:"d"`
	ChangePercent decimal.Decimal `json:"dp"`
	High          decimal.Decimal `json:"h"`
	Low           decimal.Decimal `json:"l"`
	Open          decimal.Decimal `json:"o"`
	PreviousClose decimal.Decimal `json:"pc"`
	Time          int64           `json:"t"`
}
