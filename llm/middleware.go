package llm

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// TraceMiddleware returns a Middleware that logs every request and response
// through the given zap logger. The project name is attached to every entry
// so traces from different runs can be told apart.
func TraceMiddleware(logger *zap.Logger, project string) Middleware {
	return func(ctx context.Context, req Request, next func(context.Context, Request) (*Response, error)) (*Response, error) {
		start := time.Now()
		logger.Info("llm request",
			zap.String("project", project),
			zap.String("provider", req.Provider),
			zap.String("model", req.Model),
			zap.Int("messages", len(req.Messages)),
			zap.Int("tools", len(req.Tools)),
		)

		resp, err := next(ctx, req)
		elapsed := time.Since(start)

		if err != nil {
			logger.Warn("llm request failed",
				zap.String("project", project),
				zap.String("provider", req.Provider),
				zap.Duration("elapsed", elapsed),
				zap.Bool("retryable", IsRetryable(err)),
				zap.Error(err),
			)
			return nil, err
		}

		logger.Info("llm response",
			zap.String("project", project),
			zap.String("provider", resp.Provider),
			zap.String("model", resp.Model),
			zap.String("finish_reason", resp.FinishReason.Reason),
			zap.Int("tool_calls", len(resp.ToolCalls())),
			zap.Int("total_tokens", resp.Usage.TotalTokens),
			zap.Duration("elapsed", elapsed),
		)
		return resp, nil
	}
}
