package contact

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterPerClient(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, 2)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.Allow("a"))
	assert.True(t, rl.Allow("a"))
	assert.False(t, rl.Allow("a"), "burst exhausted")
	assert.True(t, rl.Allow("b"), "other clients unaffected")

	now = now.Add(time.Minute)
	assert.True(t, rl.Allow("a"), "token refilled after a minute")
}

func TestRateLimiterPrune(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(5, 3)
	rl.now = func() time.Time { return now }

	rl.Allow("old")
	now = now.Add(15 * time.Minute)
	rl.Allow("fresh")

	assert.Equal(t, 1, rl.Prune(10*time.Minute))
	assert.Equal(t, 1, rl.Len())
}
