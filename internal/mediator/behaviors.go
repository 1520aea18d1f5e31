package mediator

import (
	"context"
	"time"

	"github.com/yungbote/personservice-backend/internal/platform/logger"
)

// LoggingBehavior logs each request with its correlation id and outcome.
func LoggingBehavior(baseLog *logger.Logger) Behavior {
	log := baseLog.With("behavior", "Logging")
	return func(ctx context.Context, name string, req any, next Next) (any, error) {
		l := log.WithContext(ctx)
		l.Debug("Handling request", "request", name)
		start := time.Now()
		out, err := next(ctx)
		if err != nil {
			l.Warn("Request failed", "request", name, "outcome", Outcome(err), "duration_ms", time.Since(start).Milliseconds(), "error", err)
			return out, err
		}
		l.Debug("Handled request", "request", name, "duration_ms", time.Since(start).Milliseconds())
		return out, nil
	}
}
