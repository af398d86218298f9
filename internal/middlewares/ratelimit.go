package middlewares

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/esophai/internal/logger"
)

// rateLimitPrefix namespaces the counters in Redis.
const rateLimitPrefix = "esophai:rl"

// RateLimitMiddleware allows at most limit requests per client IP in each
// fixed window. Requests over the limit get 429 with Retry-After.
// A nil client, a non-positive limit or a Redis failure lets every request through.
func RateLimitMiddleware(rdb *redis.Client, limit int, window time.Duration) func(http.Handler) http.Handler {
	if rdb == nil || limit <= 0 || window <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := rateLimitKey(r, window)

			count, ttl, err := hit(r.Context(), rdb, key, window)
			if err != nil {
				logger.Log.Warnw("rate limiter unavailable", "key", key, "err", err)
				next.ServeHTTP(w, r)
				return
			}

			remaining := int64(limit) - count
			if remaining < 0 {
				remaining = 0
			}
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if count > int64(limit) {
				secs := int(ttl.Round(time.Second) / time.Second)
				if secs < 1 {
					secs = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(secs))
				logger.Log.Infow("rate limit exceeded", "key", key, "count", count)
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// hit increments the window counter and returns it with the time left in the window.
func hit(ctx context.Context, rdb *redis.Client, key string, window time.Duration) (int64, time.Duration, error) {
	var (
		incr *redis.IntCmd
		ttl  *redis.DurationCmd
	)
	_, err := rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, window)
		ttl = pipe.PTTL(ctx, key)
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return incr.Val(), ttl.Val(), nil
}

func rateLimitKey(r *http.Request, window time.Duration) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil || ip == "" {
		ip = r.RemoteAddr
	}
	if ip == "" {
		ip = "unknown"
	}
	slot := time.Now().UnixNano() / int64(window)
	return fmt.Sprintf("%s:%s:%s:%d", rateLimitPrefix, r.URL.Path, ip, slot)
}
