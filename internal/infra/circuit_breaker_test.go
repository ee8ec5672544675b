package infra

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreakerTripsAfterConsecutiveFailures(t *testing.T) {
	b := NewBreaker(BreakerConfig{FailureThreshold: 3, SuccessThreshold: 1, OpenTimeout: time.Hour})
	boom := errors.New("boom")

	for i := 0; i < 3; i++ {
		err := b.Execute(func() error { return boom })
		assert.ErrorIs(t, err, boom)
	}
	assert.Equal(t, BreakerOpen, b.State())

	// Fast-fail while open — the function never runs
	called := false
	err := b.Execute(func() error { called = true; return nil })
	assert.ErrorIs(t, err, ErrBreakerOpen)
	assert.False(t, called)
}

func TestBreakerSuccessResetsFailureCount(t *testing.T) {
	b := NewBreaker(BreakerConfig{FailureThreshold: 3, SuccessThreshold: 1, OpenTimeout: time.Hour})
	boom := errors.New("boom")

	for i := 0; i < 2; i++ {
		_ = b.Execute(func() error { return boom })
	}
	require.NoError(t, b.Execute(func() error { return nil }))

	// Two more failures are not enough to trip after the reset
	for i := 0; i < 2; i++ {
		_ = b.Execute(func() error { return boom })
	}
	assert.Equal(t, BreakerClosed, b.State())
}

func TestBreakerRecoversThroughHalfOpen(t *testing.T) {
	b := NewBreaker(BreakerConfig{FailureThreshold: 1, SuccessThreshold: 2, OpenTimeout: 10 * time.Millisecond})

	_ = b.Execute(func() error { return errors.New("boom") })
	require.Equal(t, BreakerOpen, b.State())

	time.Sleep(20 * time.Millisecond)

	// Two probe successes close the breaker again
	require.NoError(t, b.Execute(func() error { return nil }))
	require.NoError(t, b.Execute(func() error { return nil }))
	assert.Equal(t, BreakerClosed, b.State())
}
