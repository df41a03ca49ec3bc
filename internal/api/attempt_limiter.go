package api

import (
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

// attemptLimiter remembers recent failed logins per key inside a sliding window.
type attemptLimiter struct {
	mu       sync.Mutex
	failures map[string][]time.Time
}

func newAttemptLimiter() *attemptLimiter {
	return &attemptLimiter{failures: make(map[string][]time.Time)}
}

func (limiter *attemptLimiter) blocked(key string, now time.Time, limit int, window time.Duration) bool {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	return len(limiter.recentLocked(key, now, window)) >= limit
}

func (limiter *attemptLimiter) recordFailure(key string, now time.Time, window time.Duration) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	limiter.failures[key] = append(limiter.recentLocked(key, now, window), now)
}

func (limiter *attemptLimiter) clear(key string) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	delete(limiter.failures, key)
}

func (limiter *attemptLimiter) recentLocked(key string, now time.Time, window time.Duration) []time.Time {
	threshold := now.Add(-window)
	kept := limiter.failures[key][:0]
	for _, at := range limiter.failures[key] {
		if at.After(threshold) {
			kept = append(kept, at)
		}
	}
	if len(kept) == 0 {
		delete(limiter.failures, key)
		return nil
	}
	limiter.failures[key] = kept
	return kept
}

// loginLimiterKey scopes failures to the client address and the attempted email.
func loginLimiterKey(c *fiber.Ctx, email string) string {
	address := strings.TrimSpace(c.IP())
	if address == "" {
		address = "unknown"
	}
	return address + "|" + strings.ToLower(strings.TrimSpace(email))
}
