package storage

import (
	"time"

	"github.com/shopspring/decimal"
)

type StockRecord struct {
	Ticker    string    `gorm:"primaryKey" json:"ticker"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name          string `json:"name"`
	DisplayTicker string `json:"display_ticker"`
	Type          string `json:"type"`
	Currency      string `json:"currency"`
	Exchange      string `json:"exchange"`
}

func (StockRecord) TableName() string { return "stocks" }

type QuoteSnapshot struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Ticker        string          `gorm:"index;not null" json:"ticker"`
	Current       decimal.Decimal `gorm:"type:text" json:"current"`
	Change        decimal.Decimal `gorm:"type:text" json:"change"`
	ChangePercent decimal.Decimal `gorm:"type:text" json:"change_percent"`
	High          decimal.Decimal `gorm:"type:text" json:"high"`
	Low           decimal.Decimal `gorm:"type:text" json:"low"`
	Open          decimal.Decimal `gorm:"type:text" json:"open"`
	PreviousClose decimal.Decimal `gorm:"type:text" json:"previous_close"`
	QuotedAt      time.Time       `json:"quoted_at"`
}

// FetchLog records stock set loads and terminated quote subscriptions.
type FetchLog struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Kind   string `gorm:"index;not null" json:"kind"` // stock_set, quote_subscription
	Ticker string `json:"ticker"`
	Count  int    `json:"count"`
	Error  string `json:"error"`
}

const (
	KindStockSet          = "stock_set"
	KindQuoteSubscription = "quote_subscription"
)
