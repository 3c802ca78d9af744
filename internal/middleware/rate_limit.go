package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"complaint-management/pkg/response"
)

const defaultMaxClients = 10000

// RateLimit applies a token bucket per client IP. Buckets live in an LRU so
// the number of tracked clients stays bounded.
func (m Middleware) RateLimit(perMinute, burst, maxClients int) gin.HandlerFunc {
	if perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if burst <= 0 {
		burst = 1
	}
	if maxClients <= 0 {
		maxClients = defaultMaxClients
	}

	limiters, err := lru.New[string, *rate.Limiter](maxClients)
	if err != nil {
		// only returned for a non-positive size, excluded above
		panic(err)
	}
	every := rate.Every(time.Minute / time.Duration(perMinute))

	return response.Wrap(func(c *gin.Context) error {
		ip := c.ClientIP()
		if ip == "" {
			ip = "unknown"
		}

		lim := rate.NewLimiter(every, burst)
		if prev, ok, _ := limiters.PeekOrAdd(ip, lim); ok {
			lim = prev
		}
		if !lim.Allow() {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: client %s throttled on %s", ip, c.FullPath())
			return errTooManyRequests
		}
		return nil
	})
}
