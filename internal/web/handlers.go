package web

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

type listResponse[T any] struct {
	Data  []T `json:"data"`
	Count int `json:"count"`
}

func list[T any](items []T) listResponse[T] {
	if items == nil {
		items = []T{}
	}
	return listResponse[T]{Data: items, Count: len(items)}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStocks(w http.ResponseWriter, r *http.Request) {
	stocks, err := s.repo.GetStocks()
	if err != nil {
		s.internalError(w, "get stocks", err)
		return
	}
	s.writeJSON(w, http.StatusOK, list(stocks))
}

func (s *Server) handleLatestQuotes(w http.ResponseWriter, r *http.Request) {
	quotes, err := s.repo.GetLatestQuotes()
	if err != nil {
		s.internalError(w, "get latest quotes", err)
		return
	}
	s.writeJSON(w, http.StatusOK, list(quotes))
}

func (s *Server) handleQuotes(w http.ResponseWriter, r *http.Request) {
	ticker := strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "ticker")))
	if ticker == "" {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "ticker is required"})
		return
	}

	limit, ok := parseLimit(r)
	if !ok {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "limit must be a positive integer"})
		return
	}

	quotes, err := s.repo.GetRecentQuotes(ticker, limit)
	if err != nil {
		s.internalError(w, "get recent quotes", err)
		return
	}
	if len(quotes) == 0 {
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: "no quotes for " + ticker})
		return
	}
	s.writeJSON(w, http.StatusOK, list(quotes))
}

func (s *Server) handleFetchLogs(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(r)
	if !ok {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "limit must be a positive integer"})
		return
	}

	logs, err := s.repo.GetRecentFetchLogs(limit)
	if err != nil {
		s.internalError(w, "get fetch logs", err)
		return
	}
	s.writeJSON(w, http.StatusOK, list(logs))
}

// parseLimit reads ?limit=, defaulting to defaultLimit and capping at maxLimit.
func parseLimit(r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultLimit, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, false
	}
	return min(n, maxLimit), true
}

func (s *Server) internalError(w http.ResponseWriter, op string, err error) {
	s.logger.Error(op, "error", err)
	s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}
