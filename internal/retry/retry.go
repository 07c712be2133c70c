// Package retry runs operations with a bounded number of attempts and a fixed delay
// between them, retrying only errors a classifier accepts.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/jbeshir/newsdesk/internal/domain"
)

// ErrAttemptsExhausted is wrapped into the error returned once every attempt failed
// with a retryable error.
var ErrAttemptsExhausted = errors.New("retry attempts exhausted")

type Config struct {
	MaxAttempts int
	Delay       time.Duration
}

// ErrorClassifier reports whether err is transient and worth another attempt.
type ErrorClassifier func(err error) bool

type Retrier struct {
	config      Config
	isRetryable ErrorClassifier

	// OnRetry, if set, is called before each wait with the failed attempt number.
	OnRetry func(operation string, attempt int, err error)
}

func NewRetrier(config Config, classifier ErrorClassifier) *Retrier {
	if config.MaxAttempts < 1 {
		config.MaxAttempts = 1
	}
	return &Retrier{
		config:      config,
		isRetryable: classifier,
	}
}

// Do runs fn until it succeeds, returns a non-retryable error, the attempts run out,
// or ctx is done. Non-retryable errors are returned unwrapped.
func (r *Retrier) Do(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	logger := domain.LoggerFromContext(ctx)

	attempt := 0
	var lastErr error
	_, err := backoff.Retry(ctx,
		func() (struct{}, error) {
			attempt++
			lastErr = fn(ctx)
			if lastErr != nil && (r.isRetryable == nil || !r.isRetryable(lastErr)) {
				return struct{}{}, backoff.Permanent(lastErr)
			}
			return struct{}{}, lastErr
		},
		backoff.WithBackOff(backoff.NewConstantBackOff(r.config.Delay)),
		backoff.WithMaxTries(uint(r.config.MaxAttempts)),
		backoff.WithMaxElapsedTime(0),
		backoff.WithNotify(func(err error, next time.Duration) {
			logger.WarnContext(ctx, "operation attempt failed, retrying",
				"operation", operation,
				"attempt", attempt,
				"max_attempts", r.config.MaxAttempts,
				"retry_delay_ms", next.Milliseconds(),
				"error", err)
			if r.OnRetry != nil {
				r.OnRetry(operation, attempt, err)
			}
		}),
	)
	if err == nil {
		if attempt > 1 {
			logger.InfoContext(ctx, "operation succeeded after retry",
				"operation", operation, "attempt", attempt)
		}
		return nil
	}

	var permanent *backoff.PermanentError
	if errors.As(err, &permanent) {
		return permanent.Unwrap()
	}
	if attempt < r.config.MaxAttempts && ctx.Err() != nil {
		return fmt.Errorf("retry cancelled after attempt %d: %w (last error: %w)", attempt, err, lastErr)
	}

	logger.ErrorContext(ctx, "operation failed permanently",
		"operation", operation, "attempts", attempt, "error", lastErr)
	return fmt.Errorf("%s: %w after %d attempts: %w", operation, ErrAttemptsExhausted, attempt, lastErr)
}
