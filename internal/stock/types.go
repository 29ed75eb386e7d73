package stock

import (
	"maps"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Stock identifies a tradable security from the exchange listing.
type Stock struct {
	Ticker        string `json:"ticker"`
	Name          string `json:"name"`
	DisplayTicker string `json:"display_ticker"`
	Type          string `json:"type"`
	Currency      string `json:"currency"`
	Exchange      string `json:"exchange"`
}

// StockQuote is a point-in-time quote for one ticker.
type StockQuote struct {
	Ticker        string          `json:"ticker"`
	Current       decimal.Decimal `json:"current"`
	Change        decimal.Decimal `json:"change"`
	ChangePercent decimal.Decimal `json:"change_percent"`
	High          decimal.Decimal `json:"high"`
	Low           decimal.Decimal `json:"low"`
	Open          decimal.Decimal `json:"open"`
	PreviousClose decimal.Decimal `json:"previous_close"`
	// Timestamp is the quote time reported by the API, zero when absent.
	Timestamp time.Time `json:"timestamp"`
}

// Set holds stocks keyed by ticker.
type Set map[string]Stock

// Tickers returns the tickers in ascending order.
func (s Set) Tickers() []string {
	return slices.Sorted(maps.Keys(s))
}

func (s Set) Contains(ticker string) bool {
	_, ok := s[ticker]
	return ok
}

func (s Set) Equal(other Set) bool {
	return maps.Equal(s, other)
}
