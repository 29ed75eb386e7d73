package stock

import (
	"context"
	"fmt"
	"iter"
	"net/http"
	"time"

	"github.com/camuig/stock-tracker/internal/logger"
)

// API is the HTTP client adapter the repository reads from. Implementations
// return the raw response; status and body are judged here.
//
//go:generate mockgen -package=stock_test -destination=mock_api_test.go -source=repository.go
type API interface {
	RequestStockListContent(ctx context.Context) (*http.Response, error)
	RequestStockQuote(ctx context.Context, ticker string) (*http.Response, error)
}

// State is the lifecycle of one quote subscription.
type State string

const (
	StateIdle     State = "idle"
	StateTicking  State = "ticking"
	StateEmitting State = "emitting"
	StateFailed   State = "failed"
)

type Repository struct {
	api    API
	poller *Poller
	logger *logger.Logger
}

type Option func(*Repository)

// WithInterval sets the quote polling period.
func WithInterval(interval time.Duration) Option {
	return func(r *Repository) {
		r.poller = NewPoller(interval)
	}
}

func WithPoller(p *Poller) Option {
	return func(r *Repository) {
		if p != nil {
			r.poller = p
		}
	}
}

func NewRepository(api API, log *logger.Logger, opts ...Option) *Repository {
	r := &Repository{
		api:    api,
		poller: NewPoller(DefaultInterval),
		logger: log,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Repository) Interval() time.Duration {
	return r.poller.Interval()
}

// StockSet performs a single stock list request. It neither caches nor retries.
func (r *Repository) StockSet(ctx context.Context) (Set, error) {
	resp, err := r.api.RequestStockListContent(ctx)
	if err != nil {
		r.logTransportError(ctx, "stock list", err)
		return nil, fmt.Errorf("request stock list: %w", err)
	}

	records, err := unpack[[]stockRecord](r.logger, resp)
	if err != nil {
		return nil, fmt.Errorf("stock list: %w", err)
	}

	return convertStockSet(records), nil
}

// Quote performs a single quote request for ticker.
func (r *Repository) Quote(ctx context.Context, ticker string) (StockQuote, error) {
	resp, err := r.api.RequestStockQuote(ctx, ticker)
	if err != nil {
		r.logTransportError(ctx, "quote", err, "ticker", ticker)
		return StockQuote{}, fmt.Errorf("request quote %s: %w", ticker, err)
	}

	rec, err := unpack[quoteRecord](r.logger, resp)
	if err != nil {
		return StockQuote{}, fmt.Errorf("quote %s: %w", ticker, err)
	}

	return convertStockQuote(ticker, rec), nil
}

// Quotes returns a lazy sequence with one quote per poll tick. Every range
// starts its own cadence and its own requests. The first failed tick is yielded
// as an error and ends the sequence; cancelling ctx or leaving the loop stops
// it before the next tick.
func (r *Repository) Quotes(ctx context.Context, ticker string) iter.Seq2[StockQuote, error] {
	return func(yield func(StockQuote, error) bool) {
		log := r.logger.With("ticker", ticker)
		log.Debug("quote subscription started", "state", StateTicking, "interval", r.poller.Interval())

		for tick := range r.poller.Ticks(ctx) {
			q, err := r.Quote(ctx, ticker)
			if err != nil {
				if ctx.Err() != nil {
					log.Debug("quote subscription cancelled mid-tick", "tick", tick, "state", StateIdle)
					return
				}
				log.Debug("quote subscription terminated", "tick", tick, "state", StateFailed, "error", err)
				yield(StockQuote{}, err)
				return
			}

			log.Debug("quote received", "tick", tick, "state", StateEmitting, "price", q.Current)
			if !yield(q, nil) {
				log.Debug("quote subscription stopped", "tick", tick, "state", StateIdle)
				return
			}
		}
		log.Debug("quote subscription stopped", "state", StateIdle)
	}
}

// logTransportError reports a failed request at the same level as unpack. A
// cancelled ctx is a shutdown, not a failure.
func (r *Repository) logTransportError(ctx context.Context, request string, err error, args ...any) {
	if ctx.Err() != nil {
		return
	}
	r.logger.Info("can't perform request", append([]any{"request", request, "error", err}, args...)...)
}
