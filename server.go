package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/kova98/redditgrow.api/data"
	"github.com/kova98/redditgrow.api/handlers"
	"github.com/kova98/redditgrow.api/metrics"
)

type authenticator interface {
	GetUser(ctx context.Context, authHeader string) handlers.Result
}

type server struct {
	auth    authenticator
	metrics *metrics.Metrics
}

func newServer(m *metrics.Metrics) *server {
	return &server{metrics: m}
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, DELETE")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *server) private(handler handlers.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result := s.auth.GetUser(r.Context(), r.Header.Get("Authorization"))
		if result.Code != http.StatusOK {
			slog.Debug("unauthorized request", "path", r.URL.Path)
			s.metrics.ObserveRequest(r.Method, r.Pattern, result.Code)
			writeResult(w, result)
			return
		}

		user := result.Body.(data.User)
		ctx := handlers.WithUser(r.Context(), user)

		s.public(handler)(w, r.WithContext(ctx))
	}
}

func (s *server) public(handler handlers.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ts := time.Now()
		res := handler(w, r)
		elapsedMs := time.Since(ts).Milliseconds()
		slog.Debug("req", "method", r.Method, "path", r.URL.Path, "code", res.Code, "elapsed", elapsedMs)
		s.metrics.ObserveRequest(r.Method, r.Pattern, res.Code)
		writeResult(w, res)
	}
}

func writeResult(w http.ResponseWriter, res handlers.Result) {
	if res.Code == http.StatusInternalServerError && res.Error != nil {
		slog.Error("internal error", "error", res.Error.Error())
	}
	if res.Code == http.StatusNoContent {
		w.WriteHeader(res.Code)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.Code)
	if res.Body != nil {
		if err := json.NewEncoder(w).Encode(res.Body); err != nil {
			slog.Error("failed to encode response", "error", err)
		}
	}
}
