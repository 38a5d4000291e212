// Package retry provides a configurable retry mechanism for operations that may fail temporarily.
// It wraps the retry-go package from Avast and exposes a simple interface with functional
// options for customizing retry behavior.
//
// Exponential backoff is the default strategy. A fixed delay can be selected with
// WithFixedDelay, and WithAttempts(0) retries until the operation succeeds, returns
// an error wrapped with Unrecoverable, or the context is done.
//
// Basic usage:
//
//	r := retry.New()
//	err := r.Execute(ctx, func() error {
//	    return someOperation()
//	})
//
// Polling until a condition holds:
//
//	r := retry.New(
//	    retry.WithAttempts(0),
//	    retry.WithFixedDelay(2*time.Second),
//	)
//	err := r.Execute(ctx, func() error {
//	    if !ready() {
//	        return errNotReady
//	    }
//	    return nil
//	})
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry defines the interface for retry operations.
type Retry interface {
	// Execute runs operation, retrying it according to the configured parameters
	// while it returns an error.
	//
	// Retrying stops early when operation returns an error wrapped with
	// Unrecoverable, or when ctx is canceled or times out.
	//
	// Execute returns nil if the operation succeeds within the configured
	// number of attempts, or an error if all attempts fail or the context is done.
	Execute(ctx context.Context, operation func() error) error
}

// DelayStrategy selects how the wait between two attempts is computed.
type DelayStrategy uint8

const (
	// DelayBackoff doubles the delay after every attempt, capped by the max delay.
	DelayBackoff DelayStrategy = iota

	// DelayFixed waits the base delay between every attempt.
	DelayFixed
)

// OnRetryFunc is invoked after a failed attempt, before waiting for the next one.
// attempt is zero based.
type OnRetryFunc func(attempt uint, err error)

// config holds internal settings for the retry mechanism.
type config struct {
	attempts    uint          // maximum number of attempts, 0 means unlimited
	delay       time.Duration // base delay between retry attempts
	maxDelay    time.Duration // maximum delay between retry attempts
	lastErrOnly bool          // whether to return only the last error
	strategy    DelayStrategy // how delays grow between attempts
	onRetry     OnRetryFunc   // optional hook called on every failed attempt
}

// Option defines a functional option for configuring the retry mechanism.
// Options are applied in the order they are provided to New().
type Option func(*config)

// retrier implements the Retry interface using the retry-go package.
type retrier struct {
	cfg config
}

// Compile-time assertion that retrier implements Retry interface
var _ Retry = (*retrier)(nil)

// New creates and returns a Retry implementation configured with
// the provided options. If no options are given, default values are used.
//
// Default configuration:
//   - attempts:    3 (1 initial attempt + 2 retries)
//   - delay:       1 second (base delay, will increase with exponential backoff)
//   - maxDelay:    5 seconds (maximum delay between retries)
//   - lastErrOnly: true (only the last error is returned)
//   - strategy:    DelayBackoff
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       1 * time.Second,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
		strategy:    DelayBackoff,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

// delayType maps the configured strategy to a retry-go DelayTypeFunc.
func (r *retrier) delayType() retry.DelayTypeFunc {
	if r.cfg.strategy == DelayFixed {
		return retry.FixedDelay
	}

	return retry.BackOffDelay
}

// Execute implements the Retry interface.
//
// The operation is first attempted immediately. If it fails, it is retried
// after the configured delay, up to the configured number of attempts.
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	options := []retry.Option{
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(r.delayType()),
		retry.LastErrorOnly(r.cfg.lastErrOnly),
		retry.Context(ctx),
	}

	if r.cfg.onRetry != nil {
		onRetry := r.cfg.onRetry
		options = append(options, retry.OnRetry(func(n uint, err error) {
			onRetry(n, err)
		}))
	}

	return retry.Do(operation, options...)
}

// Unrecoverable wraps err so that Execute stops retrying and returns it.
// The original error stays reachable through errors.Is and errors.As.
func Unrecoverable(err error) error {
	return retry.Unrecoverable(err)
}

// WithAttempts sets the maximum number of attempts (including the initial attempt).
// Zero means retry until the operation succeeds or is stopped.
// Default: 3 (1 initial attempt + 2 retries).
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base delay between retry attempts.
// With exponential backoff, subsequent delays will increase.
// Default: 1 second.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay sets the maximum delay between retry attempts.
// Zero disables the cap.
// Default: 5 seconds.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithFixedDelay waits exactly d between every attempt.
func WithFixedDelay(d time.Duration) Option {
	return func(c *config) {
		c.strategy = DelayFixed
		c.delay = d
		c.maxDelay = 0
	}
}

// WithBackoff grows the delay exponentially from base up to max.
func WithBackoff(base, max time.Duration) Option {
	return func(c *config) {
		c.strategy = DelayBackoff
		c.delay = base
		c.maxDelay = max
	}
}

// WithLastErrorOnly sets whether to return only the last error.
// When false, all errors from all attempts are combined.
// Default: true.
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}

// WithOnRetry registers a hook called after every failed attempt.
func WithOnRetry(f OnRetryFunc) Option {
	return func(c *config) {
		c.onRetry = f
	}
}
