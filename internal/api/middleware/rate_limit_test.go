package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRateLimiterCheck(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		allowed, remaining, _ := rl.Check("1.2.3.4")
		require.True(t, allowed)
		require.Equal(t, 2-i, remaining)
	}

	allowed, remaining, resetTime := rl.Check("1.2.3.4")
	require.False(t, allowed)
	require.Equal(t, 0, remaining)
	require.True(t, resetTime.After(time.Now()))
}

// 不同 IP 各自計額
func TestRateLimiterPerIP(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)

	allowed, _, _ := rl.Check("1.2.3.4")
	require.True(t, allowed)
	allowed, _, _ = rl.Check("1.2.3.4")
	require.False(t, allowed)

	allowed, _, _ = rl.Check("5.6.7.8")
	require.True(t, allowed)
}

func TestRateLimiterWindowSlides(t *testing.T) {
	rl := NewRateLimiter(1, 30*time.Millisecond)

	allowed, _, _ := rl.Check("1.2.3.4")
	require.True(t, allowed)
	allowed, _, _ = rl.Check("1.2.3.4")
	require.False(t, allowed)

	time.Sleep(50 * time.Millisecond)

	allowed, _, _ = rl.Check("1.2.3.4")
	require.True(t, allowed)
}
