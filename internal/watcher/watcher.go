package watcher

import (
	"context"
	"fmt"
	"iter"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/camuig/stock-tracker/internal/logger"
	"github.com/camuig/stock-tracker/internal/stock"
	"github.com/camuig/stock-tracker/internal/storage"
)

// Source is the stock repository as seen by the watcher.
type Source interface {
	StockSet(ctx context.Context) (stock.Set, error)
	Quotes(ctx context.Context, ticker string) iter.Seq2[stock.StockQuote, error]
}

type Journal interface {
	SaveStockSet(set stock.Set) error
	SaveQuote(q stock.StockQuote) error
	SaveFetchLog(log *storage.FetchLog) error
}

type Notifier interface {
	NotifyStockSet(count int)
	NotifySubscriptionFailed(ticker string, ticks int, err error)
}

type Config struct {
	// Tickers to watch; empty means the whole stock set up to MaxTickers.
	Tickers    []string
	MaxTickers int
	// ResubscribeDelay is the pause before a failed subscription or stock set
	// load is retried. Zero disables retries.
	ResubscribeDelay time.Duration
}

// Watcher loads the stock set once and keeps one quote subscription per
// watched ticker, journaling every quote.
type Watcher struct {
	source   Source
	journal  Journal
	notifier Notifier
	config   Config
	logger   *logger.Logger
}

func NewWatcher(source Source, journal Journal, notifier Notifier, cfg Config, log *logger.Logger) *Watcher {
	return &Watcher{
		source:   source,
		journal:  journal,
		notifier: notifier,
		config:   cfg,
		logger:   log.With("component", "watcher"),
	}
}

// Run blocks until ctx is done, or until the stock set cannot be loaded and
// retries are disabled.
func (w *Watcher) Run(ctx context.Context) error {
	set, err := w.loadStockSet(ctx)
	if err != nil {
		return err
	}

	tickers := w.selectTickers(set)
	if len(tickers) == 0 {
		w.logger.Warn("no tickers to watch")
		<-ctx.Done()
		return nil
	}
	w.logger.Info("watching tickers", "count", len(tickers), "tickers", tickers)

	g, gctx := errgroup.WithContext(ctx)
	for _, ticker := range tickers {
		g.Go(func() error {
			w.watchTicker(gctx, ticker)
			return nil
		})
	}
	return g.Wait()
}

func (w *Watcher) loadStockSet(ctx context.Context) (stock.Set, error) {
	for {
		set, err := w.source.StockSet(ctx)
		if err == nil {
			w.logger.Info("stock set loaded", "count", len(set))
			if err := w.journal.SaveStockSet(set); err != nil {
				w.logger.Error("save stock set", "error", err)
			}
			w.saveFetchLog(&storage.FetchLog{Kind: storage.KindStockSet, Count: len(set)})
			w.notifier.NotifyStockSet(len(set))
			return set, nil
		}

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		w.logger.Error("load stock set", "error", err)
		w.saveFetchLog(&storage.FetchLog{Kind: storage.KindStockSet, Error: err.Error()})
		if w.config.ResubscribeDelay <= 0 {
			return nil, fmt.Errorf("load stock set: %w", err)
		}
		if !sleep(ctx, w.config.ResubscribeDelay) {
			return nil, ctx.Err()
		}
	}
}

// selectTickers keeps configured tickers that exist in the set, or falls back
// to the first MaxTickers tickers of the set.
func (w *Watcher) selectTickers(set stock.Set) []string {
	if len(w.config.Tickers) > 0 {
		seen := make(map[string]struct{}, len(w.config.Tickers))
		out := make([]string, 0, len(w.config.Tickers))
		for _, t := range w.config.Tickers {
			if _, dup := seen[t]; dup {
				continue
			}
			seen[t] = struct{}{}
			if !set.Contains(t) {
				w.logger.Warn("ticker not in stock set, skipping", "ticker", t)
				continue
			}
			out = append(out, t)
		}
		return out
	}

	all := set.Tickers()
	if w.config.MaxTickers > 0 && len(all) > w.config.MaxTickers {
		all = all[:w.config.MaxTickers]
	}
	return all
}

func (w *Watcher) watchTicker(ctx context.Context, ticker string) {
	log := w.logger.With("ticker", ticker)
	defer func() {
		if r := recover(); r != nil {
			log.Error("panic in quote subscription", "panic", fmt.Sprint(r))
			w.notifier.NotifySubscriptionFailed(ticker, 0, fmt.Errorf("panic: %v", r))
		}
	}()

	for {
		ticks, err := w.consume(ctx, ticker)
		if ctx.Err() != nil {
			log.Info("quote subscription stopped", "ticks", ticks)
			return
		}
		if err != nil {
			log.Error("quote subscription failed", "ticks", ticks, "error", err)
			w.saveFetchLog(&storage.FetchLog{Kind: storage.KindQuoteSubscription, Ticker: ticker, Count: ticks, Error: err.Error()})
			w.notifier.NotifySubscriptionFailed(ticker, ticks, err)
		}
		if w.config.ResubscribeDelay <= 0 {
			return
		}
		log.Info("resubscribing", "delay", w.config.ResubscribeDelay)
		if !sleep(ctx, w.config.ResubscribeDelay) {
			return
		}
	}
}

func (w *Watcher) consume(ctx context.Context, ticker string) (int, error) {
	ticks := 0
	for q, err := range w.source.Quotes(ctx, ticker) {
		if err != nil {
			return ticks, err
		}
		ticks++
		if err := w.journal.SaveQuote(q); err != nil {
			w.logger.Error("save quote", "ticker", ticker, "error", err)
		}
	}
	return ticks, nil
}

func (w *Watcher) saveFetchLog(log *storage.FetchLog) {
	if err := w.journal.SaveFetchLog(log); err != nil {
		w.logger.Error("save fetch log", "error", err)
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
