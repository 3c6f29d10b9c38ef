// Package retry runs operations against infrastructure with capped exponential backoff.
//
// Only transient failures are retried: errors explicitly marked with NewRetryableError, or
// errors whose message carries a network/timeout signature. Everything else is attempted
// once. Whatever the outcome, a failed WithRetry returns a *RetryableError describing the
// attempts made, so callers can still reach the cause through errors.Is / errors.As.
package retry

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

const (
	DefaultInitialDelay = 1000 * time.Millisecond
	DefaultMaxDelay     = 30000 * time.Millisecond
	DefaultMaxAttempts  = 3

	maxLoggedErrorLen = 200
)

var ErrInvalidConfig = errors.New("retry: invalid configuration")

// transientSignatures are matched case-insensitively against error messages.
var transientSignatures = []string{
	"econnreset",
	"etimedout",
	"enotfound",
	"econnrefused",
	"timeout",
	"network",
	"temporary",
}

type Config struct {
	InitialDelay time.Duration
	MaxDelay     time.Duration
	MaxAttempts  int
}

func DefaultConfig() Config {
	return Config{InitialDelay: DefaultInitialDelay, MaxDelay: DefaultMaxDelay, MaxAttempts: DefaultMaxAttempts}
}

// RetryableError wraps a failure. With Attempts == 0 it is a marker set by the caller
// ("this may be retried"); a policy returns it with Attempts > 0 once it gave up.
type RetryableError struct {
	Err       error
	Operation string
	Attempts  int
	Transient bool
}

func NewRetryableError(err error) *RetryableError {
	return &RetryableError{Err: err, Transient: true}
}

func (e *RetryableError) Error() string {
	if e.Attempts == 0 {
		return fmt.Sprintf("retryable: %v", e.Err)
	}
	return fmt.Sprintf("%s failed after %d attempt(s): %v", e.Operation, e.Attempts, e.Err)
}

func (e *RetryableError) Unwrap() error { return e.Err }

// Exhausted reports whether the policy gave up on a transient failure.
func (e *RetryableError) Exhausted() bool { return e.Attempts > 0 && e.Transient }

// IsRetryable classifies err. A *RetryableError already produced by a policy is terminal.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var re *RetryableError
	if errors.As(err, &re) {
		return re.Attempts == 0
	}
	msg := strings.ToLower(err.Error())
	for _, sig := range transientSignatures {
		if strings.Contains(msg, sig) {
			return true
		}
	}
	return false
}

// Sleeper waits for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// Observer is notified of every failed attempt.
type Observer func(operation string, attempt int, retryable bool)

type Option func(*Policy)

func WithSleeper(s Sleeper) Option {
	return func(p *Policy) {
		if s != nil {
			p.sleep = s
		}
	}
}

func WithObserver(o Observer) Option {
	return func(p *Policy) {
		if o != nil {
			p.observers = append(p.observers, o)
		}
	}
}

type Policy struct {
	cfg       Config
	logger    zerolog.Logger
	sleep     Sleeper
	observers []Observer
}

// NewPolicy validates cfg. Non-positive values fall back to the defaults with a warning;
// a MaxDelay below InitialDelay is rejected.
func NewPolicy(cfg Config, logger zerolog.Logger, opts ...Option) (*Policy, error) {
	if cfg.InitialDelay <= 0 {
		logger.Warn().Dur("initial_delay", cfg.InitialDelay).Dur("default", DefaultInitialDelay).
			Msg("invalid retry initial delay, using default")
		cfg.InitialDelay = DefaultInitialDelay
	}
	if cfg.MaxDelay <= 0 {
		logger.Warn().Dur("max_delay", cfg.MaxDelay).Dur("default", DefaultMaxDelay).
			Msg("invalid retry max delay, using default")
		cfg.MaxDelay = DefaultMaxDelay
	}
	if cfg.MaxAttempts < 1 {
		logger.Warn().Int("max_attempts", cfg.MaxAttempts).Int("default", DefaultMaxAttempts).
			Msg("invalid retry max attempts, using default")
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.MaxDelay < cfg.InitialDelay {
		return nil, fmt.Errorf("%w: max delay %s is below initial delay %s", ErrInvalidConfig, cfg.MaxDelay, cfg.InitialDelay)
	}

	p := &Policy{cfg: cfg, logger: logger, sleep: sleepContext}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

func (p *Policy) Config() Config { return p.cfg }

// Delay is the wait after failed attempt n (1-based): min(initial * 2^(n-1), max).
func (p *Policy) Delay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := float64(p.cfg.InitialDelay) * math.Pow(2, float64(attempt-1))
	if d >= float64(p.cfg.MaxDelay) {
		return p.cfg.MaxDelay
	}
	return time.Duration(d)
}

// WithRetry runs fn until it succeeds, fails with a non-retryable error, or the attempts
// are used up.
func (p *Policy) WithRetry(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	var lastErr error
	for attempt := 1; attempt <= p.cfg.MaxAttempts; attempt++ {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		lastErr = err
		retryable := IsRetryable(err)
		p.notify(operation, attempt, retryable)

		if !retryable {
			p.logger.Error().Str("operation", operation).Int("attempt", attempt).
				Str("error", truncate(err.Error())).Msg("non-retryable failure")
			return &RetryableError{Err: err, Operation: operation, Attempts: attempt, Transient: false}
		}
		if attempt == p.cfg.MaxAttempts {
			break
		}

		delay := p.Delay(attempt)
		p.logger.Warn().Str("operation", operation).Int("attempt", attempt).Int("max_attempts", p.cfg.MaxAttempts).
			Dur("delay", delay).Str("error", truncate(err.Error())).Msg("retrying after failure")
		if sErr := p.sleep(ctx, delay); sErr != nil {
			return &RetryableError{Err: errors.Join(err, sErr), Operation: operation, Attempts: attempt, Transient: false}
		}
	}

	p.logger.Error().Str("operation", operation).Int("attempts", p.cfg.MaxAttempts).
		Str("error", truncate(lastErr.Error())).Msg("retries exhausted")
	return &RetryableError{Err: lastErr, Operation: operation, Attempts: p.cfg.MaxAttempts, Transient: true}
}

// Do is WithRetry for operations returning a value.
func Do[T any](ctx context.Context, p *Policy, operation string, fn func(ctx context.Context) (T, error)) (T, error) {
	var out T
	err := p.WithRetry(ctx, operation, func(ctx context.Context) error {
		v, err := fn(ctx)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func (p *Policy) notify(operation string, attempt int, retryable bool) {
	for _, o := range p.observers {
		o(operation, attempt, retryable)
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func truncate(s string) string {
	if len(s) <= maxLoggedErrorLen {
		return s
	}
	cut := maxLoggedErrorLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
