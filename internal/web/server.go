package web

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/camuig/stock-tracker/internal/config"
	"github.com/camuig/stock-tracker/internal/logger"
	"github.com/camuig/stock-tracker/internal/storage"
)

// Store is the read side of the journal.
type Store interface {
	GetStocks() ([]storage.StockRecord, error)
	GetRecentQuotes(ticker string, limit int) ([]storage.QuoteSnapshot, error)
	GetLatestQuotes() ([]storage.QuoteSnapshot, error)
	GetRecentFetchLogs(limit int) ([]storage.FetchLog, error)
}

type Server struct {
	httpServer *http.Server
	repo       Store
	config     *config.Config
	logger     *logger.Logger
}

func NewServer(repo Store, cfg *config.Config, log *logger.Logger) *Server {
	s := &Server{
		repo:   repo,
		config: cfg,
		logger: log,
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Web.Port),
		Handler:      s.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	return s
}

// Routes builds the router; exposed for tests.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if len(s.config.Web.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.config.Web.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
	}

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/stocks", s.handleStocks)
		r.Get("/quotes/latest", s.handleLatestQuotes)
		r.Get("/quotes/{ticker}", s.handleQuotes)
		r.Get("/fetch-logs", s.handleFetchLogs)
	})

	return r
}

func (s *Server) Start() error {
	s.logger.Info("web server starting", "port", s.config.Web.Port)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("web server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
