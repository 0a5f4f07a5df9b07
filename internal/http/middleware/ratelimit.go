package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"

	"fintrack/internal/logger"

	"github.com/gin-gonic/gin"
)

// RateLimit gates every request through the limiter, keyed by client identity.
// Over-limit requests get 429 before any handler runs. A limiter failure is a
// server error, not a silent pass.
func RateLimit(l Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := clientKey(c)

		out, err := l.Allow(c.Request.Context(), key)
		if err != nil {
			logger.Error("rate limiter unavailable", "key", key, "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(out.Limit))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(out.Remaining, 10))

		if !out.Allowed {
			RLBlocked.WithLabelValues(c.FullPath()).Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "too many requests, please try again later"})
			return
		}

		RLRequests.WithLabelValues(c.FullPath()).Inc()

		c.Next()
	}
}

// clientKey derives the limiter key: first X-Forwarded-For hop when present,
// otherwise the peer address.
func clientKey(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return host
}
