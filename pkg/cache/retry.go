package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ErrNetwork marks connection failures of a remote cache backend. Only
// errors wrapping it are retried.
var ErrNetwork = errors.New("network error")

// backoff retries an operation with doubling delays.
type backoff struct {
	attempts int
	delay    time.Duration
}

var defaultBackoff = backoff{attempts: 3, delay: 200 * time.Millisecond}

// do runs fn until it succeeds, fails with a non-network error, the
// attempts run out, or ctx ends. The last error is returned.
func (b backoff) do(ctx context.Context, fn func() error) error {
	delay := b.delay
	var err error
	for i := 0; i < b.attempts; i++ {
		if err = fn(); err == nil || !errors.Is(err, ErrNetwork) {
			return err
		}
		if i == b.attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay *= 2
		}
	}
	return err
}

// transient wraps connection-level failures with ErrNetwork. Redis replies
// (wrong type, OOM) and context errors are returned as is.
func transient(err error) error {
	if err == nil {
		return nil
	}
	var reply goredis.Error
	if errors.As(err, &reply) {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrNetwork, err)
}
