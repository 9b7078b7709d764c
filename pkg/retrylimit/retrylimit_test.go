package retrylimit

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statusError struct {
	code int
}

func (e *statusError) Error() string   { return "http error" }
func (e *statusError) StatusCode() int { return e.code }

func TestWithRetryMaxSucceedsAfterFailures(t *testing.T) {
	lim := NewAdaptiveLimiter(100, 1, 100, 1, 0.5)

	calls := 0
	err := WithRetryMax(context.Background(), func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	}, lim, 5)

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestWithRetryMaxExhaustsAttempts(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	err := WithRetryMax(context.Background(), func() error {
		calls++
		return boom
	}, nil, 3)

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, calls)
}

func TestWithRetryMaxStopsOnFatalError(t *testing.T) {
	inner := errors.New("bad request")
	calls := 0
	err := WithRetryMax(context.Background(), func() error {
		calls++
		return &FatalError{Err: inner}
	}, nil, 5)

	assert.Equal(t, 1, calls)

	var fatal *FatalError
	require.ErrorAs(t, err, &fatal)
	assert.ErrorIs(t, err, inner)
}

func TestWithRetryMaxHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WithRetryMax(ctx, func() error {
		t.Fatal("fn should not run after cancellation")
		return nil
	}, nil, 3)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestAdaptiveLimiterBacksOffAndRecovers(t *testing.T) {
	lim := NewAdaptiveLimiter(8, 1, 10, 1, 0.5)
	require.InDelta(t, 8, lim.CurrentLimit(), 0.01)

	lim.RateLimited()
	assert.InDelta(t, 4, lim.CurrentLimit(), 0.01)

	lim.RateLimited()
	assert.InDelta(t, 2, lim.CurrentLimit(), 0.01)

	// Success right after a failure is held back; the limit must not climb.
	lim.Success()
	assert.InDelta(t, 2, lim.CurrentLimit(), 0.01)
}

func TestAdaptiveLimiterClampsToBounds(t *testing.T) {
	lim := NewAdaptiveLimiter(2, 1, 3, 5, 0.1)

	lim.RateLimited()
	assert.InDelta(t, 1, lim.CurrentLimit(), 0.01)

	lim.RateLimited()
	assert.InDelta(t, 1, lim.CurrentLimit(), 0.01)
}

func TestClassifyHTTPErrors(t *testing.T) {
	assert.True(t, isRateLimitError(&statusError{code: 429}))
	assert.False(t, isRateLimitError(&statusError{code: 503}))
	assert.True(t, isServerError(&statusError{code: 503}))
	assert.False(t, isServerError(&statusError{code: 404}))
	assert.False(t, isServerError(errors.New("plain")))
}
