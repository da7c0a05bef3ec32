package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 5 * time.Second

// NewRouter wires the REST routes.
func NewRouter(logger *slog.Logger, uGame uGame) http.Handler {
	h := newHandlers(logger, uGame)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/ping", h.ping)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/move", h.suggestMove)
		r.Get("/score", h.getScore)

		r.Post("/games", h.createGame)
		r.Route("/games/{id}", func(r chi.Router) {
			r.Get("/", h.getGame)
			r.Delete("/", h.deleteGame)
			r.Post("/turns", h.makeTurn)
			r.Post("/restart", h.restartGame)
		})
	})

	return r
}

// Start serves the REST API on port until ctx is canceled.
func Start(ctx context.Context, logger *slog.Logger, uGame uGame, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      NewRouter(logger, uGame),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shut down HTTP server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
