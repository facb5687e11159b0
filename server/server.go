// Package server exposes the scrape pipeline as an HTTP event trigger.
// POST /scrape takes the invocation event and responds with the
// invocation result, mirroring the result's status code on the wire.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/gaurav-prasanna/docscrape/core"
)

const requestTimeout = 60 * time.Second

// Runner is the subset of the pipeline the server needs.
type Runner interface {
	Run(ctx context.Context, event core.Event) core.Result
}

// New builds the HTTP router around the given pipeline.
func New(runner Runner, log *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/health", handleHealth)
	r.Post("/scrape", handleScrape(runner, log))

	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}

// handleScrape decodes the event, runs the pipeline, and writes the
// result. A body that fails to decode gets the same client-error shape
// as a missing URL.
func handleScrape(runner Runner, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var event core.Event
		if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
			writeResult(w, log, core.Result{
				StatusCode: http.StatusBadRequest,
				Body:       "invalid request body",
			})
			return
		}

		result := runner.Run(r.Context(), event)
		writeResult(w, log, result)
	}
}

func writeResult(w http.ResponseWriter, log *zap.Logger, result core.Result) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(result.StatusCode)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		log.Error("writing response", zap.Error(err))
	}
}
