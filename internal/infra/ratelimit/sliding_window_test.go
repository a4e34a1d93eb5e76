package ratelimit

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	domainerrors "ethos/internal/domain/errors"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestLimiter(t *testing.T, window time.Duration, maxRequests int) (*SlidingWindowLimiter, *clockwork.FakeClock) {
	t.Helper()

	clock := clockwork.NewFakeClockAt(epoch)
	l, err := New(window, maxRequests, time.Minute, clock, nil)
	require.NoError(t, err)
	t.Cleanup(l.Stop)

	return l, clock
}

func TestCheckLimit_AdmitsUpToMaxThenRejects(t *testing.T) {
	t.Parallel()

	l, _ := newTestLimiter(t, time.Second, 3)

	for _, want := range []int{2, 1, 0} {
		res := l.CheckLimit("caller")
		assert.True(t, res.Allowed)
		assert.Equal(t, want, res.Remaining)
		assert.Equal(t, epoch.Add(time.Second), res.ResetTime)
	}

	res := l.CheckLimit("caller")
	assert.False(t, res.Allowed)
	assert.Equal(t, 0, res.Remaining)
	assert.Equal(t, epoch.Add(time.Second), res.ResetTime)
}

func TestCheckLimit_RejectionDoesNotConsumeSlot(t *testing.T) {
	t.Parallel()

	l, clock := newTestLimiter(t, time.Second, 1)

	assert.True(t, l.CheckLimit("caller").Allowed)
	for range 5 {
		assert.False(t, l.CheckLimit("caller").Allowed)
	}

	clock.Advance(time.Second)
	assert.True(t, l.CheckLimit("caller").Allowed)
}

func TestCheckLimit_WindowSlides(t *testing.T) {
	t.Parallel()

	l, clock := newTestLimiter(t, time.Second, 3)

	require.True(t, l.CheckLimit("caller").Allowed)
	clock.Advance(400 * time.Millisecond)
	require.True(t, l.CheckLimit("caller").Allowed)
	clock.Advance(400 * time.Millisecond)
	require.True(t, l.CheckLimit("caller").Allowed)

	res := l.CheckLimit("caller")
	assert.False(t, res.Allowed)
	assert.Equal(t, epoch.Add(time.Second), res.ResetTime)

	// t=999ms: the first request is still inside the window.
	clock.Advance(199 * time.Millisecond)
	assert.False(t, l.CheckLimit("caller").Allowed)

	// t=1000ms: the first request leaves the window, exactly one slot opens.
	clock.Advance(time.Millisecond)
	res = l.CheckLimit("caller")
	assert.True(t, res.Allowed)
	assert.Equal(t, 0, res.Remaining)
	assert.Equal(t, epoch.Add(2*time.Second), res.ResetTime)

	res = l.CheckLimit("caller")
	assert.False(t, res.Allowed)
	assert.Equal(t, epoch.Add(1400*time.Millisecond), res.ResetTime)
}

func TestCheckLimit_FullWindowElapsedRestoresCapacity(t *testing.T) {
	t.Parallel()

	l, clock := newTestLimiter(t, time.Second, 3)

	for range 3 {
		l.CheckLimit("caller")
	}
	require.False(t, l.CheckLimit("caller").Allowed)

	clock.Advance(1100 * time.Millisecond)

	res := l.CheckLimit("caller")
	assert.True(t, res.Allowed)
	assert.Equal(t, 2, res.Remaining)
}

func TestCheckLimit_IdentifiersAreIsolated(t *testing.T) {
	t.Parallel()

	l, _ := newTestLimiter(t, time.Second, 2)

	l.CheckLimit("a")
	l.CheckLimit("a")
	require.False(t, l.CheckLimit("a").Allowed)

	res := l.CheckLimit("b")
	assert.True(t, res.Allowed)
	assert.Equal(t, 1, res.Remaining)
}

func TestResetLimit(t *testing.T) {
	t.Parallel()

	l, _ := newTestLimiter(t, time.Second, 3)

	for range 3 {
		l.CheckLimit("caller")
	}
	require.False(t, l.CheckLimit("caller").Allowed)

	l.ResetLimit("caller")
	l.ResetLimit("caller")
	l.ResetLimit("never-seen")

	res := l.CheckLimit("caller")
	assert.True(t, res.Allowed)
	assert.Equal(t, 2, res.Remaining)
}

func TestCheckLimit_ZeroMaxRejectsEverything(t *testing.T) {
	t.Parallel()

	l, _ := newTestLimiter(t, time.Second, 0)

	res := l.CheckLimit("caller")
	assert.False(t, res.Allowed)
	assert.Equal(t, 0, res.Remaining)
	assert.Equal(t, epoch.Add(time.Second), res.ResetTime)
	assert.Equal(t, 0, l.size())
	assert.Equal(t, 0, l.Limit())
}

func TestNew_RejectsInvalidConfiguration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		window          time.Duration
		maxRequests     int
		cleanupInterval time.Duration
	}{
		{"zero window", 0, 10, time.Minute},
		{"negative window", -time.Second, 10, time.Minute},
		{"negative max", time.Second, -1, time.Minute},
		{"zero cleanup interval", time.Second, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l, err := New(tt.window, tt.maxRequests, tt.cleanupInterval, clockwork.NewFakeClock(), nil)

			assert.Nil(t, l)
			assert.ErrorIs(t, err, domainerrors.ErrConfiguration)
		})
	}
}

func TestSweep_RemovesOnlyEmptyRecords(t *testing.T) {
	t.Parallel()

	l, clock := newTestLimiter(t, time.Second, 5)

	l.CheckLimit("stale")
	clock.Advance(600 * time.Millisecond)
	l.CheckLimit("active")
	clock.Advance(500 * time.Millisecond)

	l.sweep()

	assert.Equal(t, 1, l.size())
	res := l.CheckLimit("active")
	assert.Equal(t, 3, res.Remaining)
}

func TestSweep_RunsOnCleanupInterval(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClockAt(epoch)
	l, err := New(time.Second, 5, time.Second, clock, nil)
	require.NoError(t, err)
	t.Cleanup(l.Stop)

	for i := range 10 {
		l.CheckLimit(fmt.Sprintf("caller-%d", i))
	}
	require.Equal(t, 10, l.size())

	assert.Eventually(t, func() bool {
		clock.Advance(time.Second)

		return l.size() == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestStop_IsIdempotent(t *testing.T) {
	t.Parallel()

	l, err := New(time.Second, 1, time.Second, clockwork.NewFakeClock(), nil)
	require.NoError(t, err)

	l.Stop()
	l.Stop()

	assert.True(t, l.CheckLimit("caller").Allowed)
}

func TestCheckLimit_ConcurrentCallersNeverExceedMax(t *testing.T) {
	t.Parallel()

	const maxRequests = 50

	l, _ := newTestLimiter(t, time.Minute, maxRequests)

	var (
		wg      sync.WaitGroup
		allowed atomic.Int64
	)
	for range 200 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.CheckLimit("shared").Allowed {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(maxRequests), allowed.Load())
}
