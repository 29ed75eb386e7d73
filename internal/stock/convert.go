package stock

import (
	"strings"
	"time"
)

func convertStockSet(records []stockRecord) Set {
	set := make(Set, len(records))
	for _, rec := range records {
		ticker := strings.TrimSpace(rec.Symbol)
		if ticker == "" {
			continue
		}
		display := rec.DisplaySymbol
		if display == "" {
			display = ticker
		}
		set[ticker] = Stock{
			Ticker:        ticker,
			Name:          rec.Description,
			DisplayTicker: display,
			Type:          rec.Type,
			Currency:      rec.Currency,
			Exchange:      rec.MIC,
		}
	}
	return set
}

// convertStockQuote builds the quote for the requested ticker; rec.Symbol is ignored.
func convertStockQuote(ticker string, rec quoteRecord) StockQuote {
	var ts time.Time
	if rec.Time > 0 {
		ts = time.Unix(rec.Time, 0).UTC()
	}
	return StockQuote{
		Ticker:        ticker,
		Current:       rec.Current,
		Change:        rec.Change,
		ChangePercent: rec.ChangePercent,
		High:          rec.High,
		Low:           rec.Low,
		Open:          rec.Open,
		PreviousClose: rec.PreviousClose,
		Timestamp:     ts,
	}
}
