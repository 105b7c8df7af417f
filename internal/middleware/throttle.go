package middleware

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

// Throttle limits per defaults: 10 attempts per minute per client IP.
const (
	throttleLimit  = 10
	throttleWindow = time.Minute
)

// LoginThrottle counts requests per client IP in Redis and rejects with
// 429 once the limit is exceeded. With a nil client throttling is
// disabled and requests pass through, so the server stays usable
// without Redis.
func LoginThrottle(client *redis.Client) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if client == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := "throttle:login:" + clientIP(r)

			// INCR and EXPIRE NX go in one pipeline so the counter can
			// never end up without a TTL, which would throttle the IP
			// forever.
			ctx := r.Context()
			pipe := client.Pipeline()
			incr := pipe.Incr(ctx, key)
			pipe.ExpireNX(ctx, key, throttleWindow)
			if _, err := pipe.Exec(ctx); err != nil {
				// Redis being down must not lock everyone out.
				slog.Warn("login throttle unavailable", "error", err)
				next.ServeHTTP(w, r)
				return
			}
			count := incr.Val()

			if count > throttleLimit {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", fmt.Sprintf("%d", int(throttleWindow.Seconds())))
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte(`{"error":"too many login attempts, try again later"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP extracts the remote IP, dropping the port when present.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
