package retry

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sleepRecorder struct {
	delays []time.Duration
}

func (r *sleepRecorder) sleep(_ context.Context, d time.Duration) error {
	r.delays = append(r.delays, d)
	return nil
}

func newTestPolicy(t *testing.T, cfg Config, logs *bytes.Buffer) (*Policy, *sleepRecorder) {
	t.Helper()
	rec := &sleepRecorder{}
	logger := zerolog.Nop()
	if logs != nil {
		logger = zerolog.New(logs)
	}
	p, err := NewPolicy(cfg, logger, WithSleeper(rec.sleep))
	require.NoError(t, err)
	return p, rec
}

func TestNewPolicy_Validation(t *testing.T) {
	t.Run("invalid values fall back to defaults", func(t *testing.T) {
		var logs bytes.Buffer
		p, err := NewPolicy(Config{InitialDelay: -1, MaxDelay: 0, MaxAttempts: 0}, zerolog.New(&logs))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), p.Config())
		assert.Equal(t, 3, strings.Count(logs.String(), `"level":"warn"`))
	})

	t.Run("max below initial is fatal", func(t *testing.T) {
		_, err := NewPolicy(Config{InitialDelay: time.Second, MaxDelay: 500 * time.Millisecond, MaxAttempts: 2}, zerolog.Nop())
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("defaulted initial above explicit max is fatal", func(t *testing.T) {
		_, err := NewPolicy(Config{InitialDelay: 0, MaxDelay: 10 * time.Millisecond, MaxAttempts: 2}, zerolog.Nop())
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestPolicy_Delay(t *testing.T) {
	p, _ := newTestPolicy(t, Config{InitialDelay: 100 * time.Millisecond, MaxDelay: time.Second, MaxAttempts: 10}, nil)

	want := []time.Duration{100, 200, 400, 800, 1000, 1000}
	prev := time.Duration(0)
	for i, w := range want {
		got := p.Delay(i + 1)
		assert.Equal(t, w*time.Millisecond, got, "attempt %d", i+1)
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}
}

func TestIsRetryable(t *testing.T) {
	retryable := []error{
		errors.New("read tcp: ECONNRESET"),
		errors.New("dial: econnrefused"),
		errors.New("Network timeout"),
		errors.New("temporary failure in name resolution"),
		fmt.Errorf("save: %w", errors.New("ETIMEDOUT")),
		NewRetryableError(errors.New("throttled")),
	}
	for _, err := range retryable {
		assert.Truef(t, IsRetryable(err), "%v", err)
	}

	terminal := []error{
		nil,
		errors.New("validation failed"),
		context.Canceled,
		&RetryableError{Err: errors.New("network down"), Operation: "inner", Attempts: 3, Transient: true},
	}
	for _, err := range terminal {
		assert.Falsef(t, IsRetryable(err), "%v", err)
	}
}

func TestWithRetry_SucceedsOnAttemptK(t *testing.T) {
	p, rec := newTestPolicy(t, Config{InitialDelay: 10 * time.Millisecond, MaxDelay: time.Second, MaxAttempts: 5}, nil)

	calls := 0
	got, err := Do(context.Background(), p, "load", func(context.Context) (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("ECONNRESET")
		}
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []time.Duration{10 * time.Millisecond, 20 * time.Millisecond}, rec.delays)
}

func TestWithRetry_NonRetryableAttemptedOnce(t *testing.T) {
	var logs bytes.Buffer
	p, rec := newTestPolicy(t, Config{InitialDelay: 10 * time.Millisecond, MaxDelay: time.Second, MaxAttempts: 5}, &logs)

	cause := errors.New("invalid status transition")
	calls := 0
	err := p.WithRetry(context.Background(), "save", func(context.Context) error {
		calls++
		return cause
	})

	assert.Equal(t, 1, calls)
	assert.Empty(t, rec.delays)
	var re *RetryableError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, 1, re.Attempts)
	assert.False(t, re.Exhausted())
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, logs.String(), `"level":"error"`)
	assert.NotContains(t, logs.String(), `"level":"warn"`)
}

func TestWithRetry_NetworkTimeoutExhausts(t *testing.T) {
	var logs bytes.Buffer
	p, rec := newTestPolicy(t, Config{InitialDelay: 100 * time.Millisecond, MaxDelay: 150 * time.Millisecond, MaxAttempts: 2}, &logs)

	calls := 0
	err := p.WithRetry(context.Background(), "publish", func(context.Context) error {
		calls++
		return errors.New("Network timeout")
	})

	assert.Equal(t, 2, calls)
	var re *RetryableError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, 2, re.Attempts)
	assert.True(t, re.Exhausted())
	assert.EqualError(t, re.Err, "Network timeout")

	assert.Equal(t, []time.Duration{100 * time.Millisecond}, rec.delays)
	assert.Equal(t, 150*time.Millisecond, p.Delay(2))
	assert.GreaterOrEqual(t, p.Delay(2), p.Delay(1))

	assert.Equal(t, 1, strings.Count(logs.String(), `"level":"warn"`))
	assert.Equal(t, 1, strings.Count(logs.String(), `"level":"error"`))
}

func TestWithRetry_NestedPolicyDoesNotRetryAgain(t *testing.T) {
	inner, _ := newTestPolicy(t, Config{InitialDelay: time.Millisecond, MaxDelay: time.Millisecond, MaxAttempts: 2}, nil)
	outer, _ := newTestPolicy(t, Config{InitialDelay: time.Millisecond, MaxDelay: time.Millisecond, MaxAttempts: 3}, nil)

	calls := 0
	err := outer.WithRetry(context.Background(), "outer", func(ctx context.Context) error {
		return inner.WithRetry(ctx, "inner", func(context.Context) error {
			calls++
			return errors.New("ETIMEDOUT")
		})
	})
	require.Error(t, err)
	assert.Equal(t, 2, calls)
}

func TestWithRetry_ContextCancelledDuringBackoff(t *testing.T) {
	p, err := NewPolicy(Config{InitialDelay: time.Hour, MaxDelay: time.Hour, MaxAttempts: 3}, zerolog.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err = p.WithRetry(ctx, "load", func(context.Context) error {
		calls++
		cancel()
		return errors.New("network unreachable")
	})

	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWithRetry_ObserverAndTruncation(t *testing.T) {
	var logs bytes.Buffer
	var seen []bool
	p, err := NewPolicy(Config{InitialDelay: time.Millisecond, MaxDelay: time.Millisecond, MaxAttempts: 2}, zerolog.New(&logs),
		WithSleeper(func(context.Context, time.Duration) error { return nil }),
		WithObserver(func(_ string, _ int, retryable bool) { seen = append(seen, retryable) }),
	)
	require.NoError(t, err)

	long := "timeout " + strings.Repeat("x", 500)
	_ = p.WithRetry(context.Background(), "op", func(context.Context) error { return errors.New(long) })

	assert.Equal(t, []bool{true, true}, seen)
	assert.NotContains(t, logs.String(), long)
	assert.Contains(t, logs.String(), long[:maxLoggedErrorLen]+"...")
}

func TestTruncate_StopsOnRuneBoundary(t *testing.T) {
	s := "a" + strings.Repeat("é", 150)
	got := truncate(s)

	assert.True(t, utf8.ValidString(got))
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.Equal(t, s[:maxLoggedErrorLen-1]+"...", got)
	assert.Equal(t, "short", truncate("short"))
}
