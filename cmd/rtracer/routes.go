package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/rtracer/pkg/ctxstore"
	"github.com/dmitrymomot/rtracer/pkg/httpserver"
	"github.com/dmitrymomot/rtracer/pkg/logger"
	"github.com/dmitrymomot/rtracer/pkg/requestid"
)

const maxFanOut = 32

// newRouter expects tracer.Middleware to be installed around it.
func newRouter(tracer *requestid.Tracer, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Get("/", echoHandler(tracer, log))
	r.Get("/fanout", fanOutHandler(tracer, log))
	return r
}

// echoHandler returns the request id in the response header and body.
func echoHandler(tracer *requestid.Tracer, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := tracer.FromContext(r.Context())
		w.Header().Set(tracer.HeaderName(), id)
		log.InfoContext(r.Context(), "echo")
		_, _ = fmt.Fprintln(w, id)
	}
}

// fanOutHandler spreads ?n= workers over a group, a future and a timer;
// every one of them logs with the request id and reports what it saw.
func fanOutHandler(tracer *requestid.Tracer, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		n, err := strconv.Atoi(r.URL.Query().Get("n"))
		if err != nil || n < 1 {
			n = 4
		}
		n = min(n, maxFanOut)

		seen := make([]string, n)
		g, _ := ctxstore.NewGroup(ctx)
		g.SetLimit(8)
		for i := range n {
			g.Go(func(ctx context.Context) error {
				seen[i] = tracer.FromContext(ctx)
				log.DebugContext(ctx, "worker done", logger.Hop(1), slog.Int("worker", i))
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			log.ErrorContext(ctx, "fan-out failed", logger.Error(err))
			http.Error(w, "fan-out failed", http.StatusInternalServerError)
			return
		}

		summary := ctxstore.Async(ctx, seen, func(ctx context.Context, ids []string) (string, error) {
			self := tracer.FromContext(ctx)
			for _, id := range ids {
				if id != self {
					return "", fmt.Errorf("worker saw %q, want %q", id, self)
				}
			}
			return self, nil
		})
		id, err := summary.Await()
		if err != nil {
			log.ErrorContext(ctx, "scope mismatch", logger.Error(err))
			http.Error(w, "scope mismatch", http.StatusInternalServerError)
			return
		}

		start := time.Now()
		ctxstore.AfterFunc(ctx, 10*time.Millisecond, func(ctx context.Context) {
			log.InfoContext(ctx, "deferred audit", logger.Hop(2), logger.Duration(time.Since(start)))
		})

		w.Header().Set(tracer.HeaderName(), id)
		_, _ = fmt.Fprintf(w, "%s %d\n", id, n)
	}
}
