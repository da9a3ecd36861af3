package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/rtracer/pkg/logger"
)

// HealthCheckHandler serves liveness and readiness probes.
//
//   - Without checks it always answers 200 "ALIVE".
//   - With checks it runs each one with the request context and answers 200
//     "READY", or 503 "NOT_READY" on the first failure.
//
// Failures are logged with the request context, so a tracer's extractor
// stamps the probe's request id on the log line.
func HealthCheckHandler(log *slog.Logger, checks ...func(context.Context) error) http.HandlerFunc {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		for _, check := range checks {
			if err := check(ctx); err != nil {
				log.ErrorContext(ctx, "readiness check failed", logger.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("NOT_READY"))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		if len(checks) == 0 {
			_, _ = w.Write([]byte("ALIVE"))
			return
		}
		_, _ = w.Write([]byte("READY"))
	}
}
