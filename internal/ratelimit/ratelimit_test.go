package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyedRateLimiter_Allow(t *testing.T) {
	tests := []struct {
		name     string
		rps      float64
		burst    int
		calls    int
		wantPass int
	}{
		{name: "burst allows initial requests", rps: 1, burst: 3, calls: 3, wantPass: 3},
		{name: "exceeding burst blocks", rps: 1, burst: 2, calls: 5, wantPass: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl := New(tt.rps, tt.burst, 0)
			defer rl.Stop()

			passed := 0
			for i := 0; i < tt.calls; i++ {
				if rl.Allow("10.0.0.1") {
					passed++
				}
			}
			assert.Equal(t, tt.wantPass, passed)
		})
	}
}

func TestKeyedRateLimiter_KeysAreIndependent(t *testing.T) {
	rl := New(0.001, 1, 0)
	defer rl.Stop()

	assert.True(t, rl.Allow("a"))
	assert.False(t, rl.Allow("a"))
	assert.True(t, rl.Allow("b"))
	assert.Equal(t, 2, rl.Len())
}

func TestKeyedRateLimiter_SweepDropsIdleKeys(t *testing.T) {
	rl := New(1, 1, time.Hour)
	defer rl.Stop()

	base := time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return base }
	rl.Allow("old")

	rl.now = func() time.Time { return base.Add(90 * time.Minute) }
	rl.Allow("fresh")
	rl.sweep()

	assert.Equal(t, 1, rl.Len())
	rl.mu.Lock()
	_, ok := rl.entries["fresh"]
	rl.mu.Unlock()
	assert.True(t, ok)
}

func TestKeyedRateLimiter_StopIsIdempotent(t *testing.T) {
	rl := New(1, 1, time.Minute)
	rl.Stop()
	rl.Stop()
}
