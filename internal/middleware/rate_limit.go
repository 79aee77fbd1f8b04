package middleware

import (
	"math"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/BruksfildServices01/flatmate-finder/internal/httperr"
	"github.com/BruksfildServices01/flatmate-finder/internal/metrics"
	"github.com/BruksfildServices01/flatmate-finder/internal/ratelimit"
)

const MessageRateLimited = "Too many requests from this IP, please try again later."

// RateLimit counts requests per client IP. When the limiter backend fails
// the request is let through and the failure logged, at most a few times
// per interval.
func RateLimit(limiter ratelimit.Limiter, m *metrics.Metrics, log *zap.Logger) gin.HandlerFunc {
	failures := &rate.Sometimes{First: 3, Interval: 10 * time.Second}

	return func(c *gin.Context) {
		res, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			failures.Do(func() {
				log.Warn("rate limiter unavailable, allowing request", zap.Error(err))
			})
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(res.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))

		if !res.Allowed {
			if m != nil {
				m.RateLimited.Inc()
			}
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(res.ResetIn.Seconds()))))
			httperr.Respond(c, &httperr.Error{Kind: httperr.KindTooManyRequests, Message: MessageRateLimited})
			return
		}

		c.Next()
	}
}
