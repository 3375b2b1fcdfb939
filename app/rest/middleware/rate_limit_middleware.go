package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// RateLimiter applies per-IP limits, stricter on the auth endpoints where
// the remote provider would otherwise absorb the abuse.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter() *RateLimiter {
	rl := &RateLimiter{visitors: make(map[string]*visitor)}
	go rl.cleanupVisitors()
	return rl
}

func (rl *RateLimiter) RateLimit() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			path := c.Request().URL.Path

			var limit rate.Limit
			var burst int
			switch {
			case strings.HasPrefix(path, "/auth/signin"):
				limit = rate.Every(10 * time.Second)
				burst = 6
			case strings.HasPrefix(path, "/auth/register"):
				limit = rate.Every(30 * time.Second)
				burst = 3
			default:
				limit = rate.Every(time.Second)
				burst = 30
			}

			if !rl.allow(ip+":"+bucketFor(path), limit, burst) {
				return c.String(http.StatusTooManyRequests,
					"Demasiados intentos. Espera unos minutos antes de intentar nuevamente.")
			}
			return next(c)
		}
	}
}

// bucketFor keeps the auth endpoints on their own counters so browsing the
// site cannot consume a login budget and vice versa.
func bucketFor(path string) string {
	switch {
	case strings.HasPrefix(path, "/auth/signin"):
		return "signin"
	case strings.HasPrefix(path, "/auth/register"):
		return "register"
	default:
		return "general"
	}
}

func (rl *RateLimiter) allow(key string, limit rate.Limit, burst int) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(limit, burst)}
		rl.visitors[key] = v
	}
	v.lastSeen = time.Now()
	return v.limiter.Allow()
}

func (rl *RateLimiter) cleanupVisitors() {
	for {
		time.Sleep(time.Minute)

		rl.mu.Lock()
		for key, v := range rl.visitors {
			if time.Since(v.lastSeen) > 10*time.Minute {
				delete(rl.visitors, key)
			}
		}
		rl.mu.Unlock()
	}
}
