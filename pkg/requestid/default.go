package requestid

import (
	"context"
	"net/http"
	"sync"

	"github.com/dmitrymomot/rtracer/pkg/logger"
)

var (
	defaultOnce   sync.Once
	defaultTracer *Tracer
)

// Default returns the process-wide tracer used by the package-level helpers.
// Its namespace name carries a random suffix generated at first use.
func Default() *Tracer {
	defaultOnce.Do(func() { defaultTracer = New() })
	return defaultTracer
}

// Middleware builds net/http middleware that shares the Default tracer's
// namespace, so FromContext and ID see the ids it assigns.
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware(requestid.WithHeaderName("X-Correlation-Id")))
func Middleware(opts ...Option) func(http.Handler) http.Handler {
	all := make([]Option, 0, len(opts)+1)
	all = append(all, WithNamespace(Default().Namespace()))
	all = append(all, opts...)
	return New(all...).Middleware
}

// ID reads the current request id through the Default tracer.
func ID(ctx context.Context) (string, bool) {
	return Default().ID(ctx)
}

// FromContext reads the current request id through the Default tracer.
func FromContext(ctx context.Context) string {
	return Default().FromContext(ctx)
}

// LoggerExtractor is Default().LoggerExtractor().
func LoggerExtractor() logger.ContextExtractor {
	return Default().LoggerExtractor()
}
