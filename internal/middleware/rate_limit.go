package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// RateLimit enforces a per-IP allowance of events per window on a
// route. Limiter state lives in process memory; stale entries are swept
// lazily on access.
func RateLimit(events int, window time.Duration) echo.MiddlewareFunc {
	type entry struct {
		limiter  *rate.Limiter
		lastSeen time.Time
	}

	var (
		mu          sync.Mutex
		visitors    = make(map[string]*entry)
		lastCleanup = time.Now()
	)

	limit := rate.Every(window / time.Duration(events))

	allow := func(ip string) bool {
		mu.Lock()
		defer mu.Unlock()

		now := time.Now()
		if now.Sub(lastCleanup) > window {
			for key, v := range visitors {
				if now.Sub(v.lastSeen) > window {
					delete(visitors, key)
				}
			}
			lastCleanup = now
		}

		v, ok := visitors[ip]
		if !ok {
			v = &entry{limiter: rate.NewLimiter(limit, events)}
			visitors[ip] = v
		}
		v.lastSeen = now

		return v.limiter.Allow()
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !allow(c.RealIP()) {
				return c.JSON(http.StatusTooManyRequests, map[string]string{
					"error": "Too many requests, please try again later",
				})
			}
			return next(c)
		}
	}
}
