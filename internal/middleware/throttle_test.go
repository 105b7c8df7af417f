// Integration tests for the login throttle. Skipped when Redis is not
// reachable.
package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
)

func testRedis(t *testing.T) *redis.Client {
	t.Helper()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		t.Skipf("skipping: redis not available: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestLoginThrottleLimitsAndExpires(t *testing.T) {
	client := testRedis(t)

	// httptest requests carry RemoteAddr 192.0.2.1:1234.
	key := "throttle:login:192.0.2.1"
	ctx := context.Background()
	client.Del(ctx, key)
	t.Cleanup(func() { client.Del(ctx, key) })

	h := LoginThrottle(client)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < throttleLimit; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/usuarios/login", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("attempt %d: status %d, want 200", i+1, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/usuarios/login", nil))
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("over limit: status %d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header")
	}

	// The counter must always carry a TTL, otherwise the IP would stay
	// throttled after the window.
	ttl, err := client.TTL(ctx, key).Result()
	if err != nil {
		t.Fatalf("TTL: %v", err)
	}
	if ttl <= 0 || ttl > throttleWindow {
		t.Errorf("counter TTL = %v, want within (0, %v]", ttl, throttleWindow)
	}
}

func TestLoginThrottleKeepsExistingTTL(t *testing.T) {
	client := testRedis(t)

	key := "throttle:login:192.0.2.1"
	ctx := context.Background()
	client.Del(ctx, key)
	t.Cleanup(func() { client.Del(ctx, key) })

	h := LoginThrottle(client)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/usuarios/login", nil))
	first, err := client.TTL(ctx, key).Result()
	if err != nil {
		t.Fatalf("TTL: %v", err)
	}

	// Later attempts must not push the window forward.
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/usuarios/login", nil))
	second, err := client.TTL(ctx, key).Result()
	if err != nil {
		t.Fatalf("TTL: %v", err)
	}
	if second > first {
		t.Errorf("TTL grew from %v to %v, window must be fixed", first, second)
	}
}
