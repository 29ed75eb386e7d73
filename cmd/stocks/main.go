package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/camuig/stock-tracker/internal/api"
	"github.com/camuig/stock-tracker/internal/config"
	"github.com/camuig/stock-tracker/internal/logger"
	"github.com/camuig/stock-tracker/internal/stock"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	asJSON := flag.Bool("json", false, "print the stock set as JSON")
	quoteTicker := flag.String("quote", "", "also fetch one quote for this ticker")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)

	ctx, cancel := context.WithTimeout(context.Background(), 2*cfg.APITimeout()+5*time.Second)
	defer cancel()

	client := api.NewClient(cfg.API.Token,
		api.WithBaseURL(cfg.API.BaseURL),
		api.WithExchange(cfg.API.Exchange),
		api.WithHTTPClient(&http.Client{Timeout: cfg.APITimeout()}),
		api.WithHeader(http.Header{"User-Agent": []string{cfg.API.UserAgent}}),
	)
	repo := stock.NewRepository(client, log)

	set, err := repo.StockSet(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "stock set error: %v\n", err)
		os.Exit(1)
	}

	if *asJSON {
		stocks := make([]stock.Stock, 0, len(set))
		for _, t := range set.Tickers() {
			stocks = append(stocks, set[t])
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(stocks); err != nil {
			fmt.Fprintf(os.Stderr, "encode error: %v\n", err)
			os.Exit(1)
		}
	} else {
		fmt.Printf("Found %d stock(s) on %s:\n\n", len(set), cfg.API.Exchange)
		for _, t := range set.Tickers() {
			s := set[t]
			fmt.Printf("  %-10s %-6s %s\n", s.DisplayTicker, s.Currency, s.Name)
		}
		fmt.Println()
	}

	if *quoteTicker == "" {
		return
	}

	q, err := repo.Quote(ctx, *quoteTicker)
	if err != nil {
		fmt.Fprintf(os.Stderr, "quote error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s: %s (%s, %s%%) high %s low %s\n",
		q.Ticker, q.Current, q.Change, q.ChangePercent, q.High, q.Low)
}
