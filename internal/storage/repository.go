package storage

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/camuig/stock-tracker/internal/stock"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Stocks

// SaveStockSet upserts every stock of the set.
func (r *Repository) SaveStockSet(set stock.Set) error {
	if len(set) == 0 {
		return nil
	}
	records := make([]StockRecord, 0, len(set))
	for _, ticker := range set.Tickers() {
		s := set[ticker]
		records = append(records, StockRecord{
			Ticker:        s.Ticker,
			Name:          s.Name,
			DisplayTicker: s.DisplayTicker,
			Type:          s.Type,
			Currency:      s.Currency,
			Exchange:      s.Exchange,
		})
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "ticker"}},
		DoUpdates: clause.AssignmentColumns([]string{"updated_at", "name", "display_ticker", "type", "currency", "exchange"}),
	}).CreateInBatches(records, 200).Error
	if err != nil {
		return fmt.Errorf("save stock set: %w", err)
	}
	return nil
}

func (r *Repository) GetStocks() ([]StockRecord, error) {
	var stocks []StockRecord
	err := r.db.Order("ticker ASC").Find(&stocks).Error
	return stocks, err
}

// Quotes

func (r *Repository) SaveQuote(q stock.StockQuote) error {
	snapshot := &QuoteSnapshot{
		Ticker:        q.Ticker,
		Current:       q.Current,
		Change:        q.Change,
		ChangePercent: q.ChangePercent,
		High:          q.High,
		Low:           q.Low,
		Open:          q.Open,
		PreviousClose: q.PreviousClose,
		QuotedAt:      q.Timestamp,
	}
	return r.db.Create(snapshot).Error
}

func (r *Repository) GetRecentQuotes(ticker string, limit int) ([]QuoteSnapshot, error) {
	var quotes []QuoteSnapshot
	err := r.db.Where("ticker = ?", ticker).
		Order("id DESC").Limit(limit).Find(&quotes).Error
	return quotes, err
}

// GetLatestQuotes returns the newest snapshot of every ticker.
func (r *Repository) GetLatestQuotes() ([]QuoteSnapshot, error) {
	var quotes []QuoteSnapshot
	latest := r.db.Model(&QuoteSnapshot{}).Select("MAX(id)").Group("ticker")
	err := r.db.Where("id IN (?)", latest).Order("ticker ASC").Find(&quotes).Error
	return quotes, err
}

// Fetch logs

func (r *Repository) SaveFetchLog(log *FetchLog) error {
	return r.db.Create(log).Error
}

func (r *Repository) GetRecentFetchLogs(limit int) ([]FetchLog, error) {
	var logs []FetchLog
	err := r.db.Order("id DESC").Limit(limit).Find(&logs).Error
	return logs, err
}
