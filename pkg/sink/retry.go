package sink

import (
	"context"
	"errors"
	"time"
)

// RetryableError wraps an error to indicate it should trigger a retry.
// Sinks wrap transient backend failures (connection resets, timeouts,
// throttling) with this type so that [Retry] knows to attempt again.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

func retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

// Retry executes fn up to attempts times with exponential backoff.
// It only retries errors wrapped with [RetryableError]; other errors are
// returned immediately. The delay doubles after each failed attempt.
// Returns the last error if all attempts fail, or ctx.Err() if cancelled.
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	attempts = max(attempts, 1)
	var lastErr error

	for i := range attempts {
		if err := fn(); err == nil {
			return nil
		} else if lastErr = err; !isRetryable(err) {
			return err
		}

		if i < attempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				delay *= 2
			}
		}
	}
	return lastErr
}

func isRetryable(err error) bool {
	return errors.As(err, new(*RetryableError))
}

type retrying struct {
	Sink
	attempts int
	delay    time.Duration
}

// Retrying wraps s so that Save retries retryable failures. With attempts
// below 2 s is returned unchanged.
func Retrying(s Sink, attempts int, delay time.Duration) Sink {
	if attempts < 2 {
		return s
	}
	return &retrying{Sink: s, attempts: attempts, delay: delay}
}

func (r *retrying) Save(ctx context.Context, name string, data []byte) error {
	return Retry(ctx, r.attempts, r.delay, func() error {
		return r.Sink.Save(ctx, name, data)
	})
}
