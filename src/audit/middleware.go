package audit

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/opskit/kubeagent/src/agent"
)

// previewMax caps stored argument and result text; file reads and writes
// can carry up to 1 MiB through a dispatch.
const previewMax = 2000

// Middleware records every tool dispatch to log. Recording failures are
// logged and never affect the dispatch result.
func Middleware(log *Log, sessionID string, logger *slog.Logger) agent.Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "audit")

	return func(tool agent.Tool, next agent.Handler) agent.Handler {
		return func(ctx context.Context, raw json.RawMessage) (string, error) {
			start := time.Now()
			result, err := next(ctx, raw)

			entry := &Entry{
				SessionID:  sessionID,
				ToolName:   tool.GetName(),
				Input:      preview(string(raw)),
				Output:     preview(result),
				DurationMs: time.Since(start).Milliseconds(),
			}
			if err != nil {
				entry.Error = err.Error()
			}

			// the record still lands when the turn was cancelled mid-dispatch
			if recErr := log.Record(context.WithoutCancel(ctx), entry); recErr != nil {
				logger.Warn("audit record failed", "tool", entry.ToolName, "error", recErr)
			}
			return result, err
		}
	}
}

func preview(s string) string {
	runes := []rune(s)
	if len(runes) <= previewMax {
		return s
	}
	return string(runes[:previewMax]) + "... (truncated)"
}
