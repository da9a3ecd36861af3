package requestid

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/rtracer/pkg/logger"
)

// LoggerExtractor returns a logger.ContextExtractor adding "request_id" to
// records logged with a request context.
func (t *Tracer) LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id := t.FromContext(ctx); id != "" {
			return logger.RequestID(id), true
		}
		return slog.Attr{}, false
	}
}
