package llm

import (
	"context"

	"github.com/Jayani-123/tasbot/internal/core"
	"github.com/Jayani-123/tasbot/pkg/retry"
)

// retryProvider retries Chat only. Models is a listing call made from
// interactive commands; failing fast there is fine.
type retryProvider struct {
	inner   core.AIProvider
	retrier *retry.Retrier
}

func withRetry(inner core.AIProvider, retrier *retry.Retrier) core.AIProvider {
	return &retryProvider{inner: inner, retrier: retrier}
}

func (r *retryProvider) Chat(ctx context.Context, history []core.Message, tools []core.Tool) (core.Message, error) {
	var msg core.Message
	err := r.retrier.Do(ctx, func() error {
		var chatErr error
		msg, chatErr = r.inner.Chat(ctx, history, tools)
		return chatErr
	})
	return msg, err
}

func (r *retryProvider) Models(ctx context.Context) ([]core.Model, error) {
	return r.inner.Models(ctx)
}
