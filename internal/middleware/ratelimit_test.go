// SPDX-License-Identifier: MIT
package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func rateLimitedRequest(t *testing.T, mw gin.HandlerFunc, path, remoteAddr string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", path, nil)
	c.Request.RemoteAddr = remoteAddr
	mw(c)
	return w
}

func TestRateLimitAllowed(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(5, time.Minute)
	defer limiter.Stop()

	w := rateLimitedRequest(t, RateLimitMiddleware(limiter), "/en/example-lp", "10.0.0.1:1234")
	if w.Code == 429 {
		t.Error("Expected request to be allowed")
	}
	if w.Header().Get("X-RateLimit-Remaining") != "4" {
		t.Errorf("Expected X-RateLimit-Remaining: 4, got %s", w.Header().Get("X-RateLimit-Remaining"))
	}
}

func TestRateLimitExceeded(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(2, time.Minute)
	defer limiter.Stop()
	middleware := RateLimitMiddleware(limiter)

	for i := 0; i < 2; i++ {
		if w := rateLimitedRequest(t, middleware, "/de/example-lp", "10.0.0.1:1234"); w.Code == 429 {
			t.Errorf("Request %d should be allowed", i+1)
		}
	}

	w3 := rateLimitedRequest(t, middleware, "/de/privacy", "10.0.0.1:1234")
	if w3.Code != 429 {
		t.Errorf("Third request should be rate limited, got %d", w3.Code)
	}
	if w3.Header().Get("X-RateLimit-Limit") != "2" {
		t.Errorf("Expected X-RateLimit-Limit: 2, got %s", w3.Header().Get("X-RateLimit-Limit"))
	}
	if w3.Header().Get("Retry-After") != "60" {
		t.Errorf("Expected Retry-After: 60, got %s", w3.Header().Get("Retry-After"))
	}

	// other clients have their own bucket
	if w := rateLimitedRequest(t, middleware, "/de/privacy", "10.0.0.2:1234"); w.Code == 429 {
		t.Error("A different client should not be rate limited")
	}
}

func TestRateLimitOnlyListedPaths(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(1, time.Minute)
	defer limiter.Stop()
	middleware := RateLimitMiddleware(limiter, "/theme.css")

	for i := 0; i < 3; i++ {
		if w := rateLimitedRequest(t, middleware, "/healthz", "10.0.0.1:1234"); w.Code == 429 {
			t.Error("Unlisted path should not be rate limited")
		}
	}
}

func forwardedRequest(t *testing.T, mw gin.HandlerFunc, proxies []string, remoteAddr, forwarded string) int {
	t.Helper()
	w := httptest.NewRecorder()
	c, engine := gin.CreateTestContext(w)
	if err := engine.SetTrustedProxies(proxies); err != nil {
		t.Fatal(err)
	}
	c.Request = httptest.NewRequest("GET", "/en", nil)
	c.Request.RemoteAddr = remoteAddr
	c.Request.Header.Set("X-Forwarded-For", forwarded)
	mw(c)
	return w.Code
}

func TestRateLimitForwardedForFromTrustedProxy(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(1, time.Minute)
	defer limiter.Stop()
	middleware := RateLimitMiddleware(limiter)
	proxies := []string{"127.0.0.1"}

	forwardedRequest(t, middleware, proxies, "127.0.0.1:1", "203.0.113.7")
	if code := forwardedRequest(t, middleware, proxies, "127.0.0.1:1", "203.0.113.7"); code != 429 {
		t.Errorf("Expected second request from 203.0.113.7 to be limited, got %d", code)
	}
	if code := forwardedRequest(t, middleware, proxies, "127.0.0.1:1", "203.0.113.8"); code == 429 {
		t.Error("Expected 203.0.113.8 to be allowed")
	}
}

func TestRateLimitIgnoresSpoofedForwardedFor(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(1, time.Minute)
	defer limiter.Stop()
	middleware := RateLimitMiddleware(limiter)

	forwardedRequest(t, middleware, nil, "198.51.100.4:5000", "203.0.113.1")
	if code := forwardedRequest(t, middleware, nil, "198.51.100.4:5000", "203.0.113.2"); code != 429 {
		t.Errorf("Expected a fresh X-Forwarded-For not to reset the bucket, got %d", code)
	}
}

func TestRateLimiterEvictsIdleBuckets(t *testing.T) {
	limiter := NewRateLimiter(1, time.Minute)
	defer limiter.Stop()

	limiter.Allow("10.0.0.1")
	limiter.evict(time.Now().Add(20 * time.Minute))

	limiter.mu.RLock()
	defer limiter.mu.RUnlock()
	if len(limiter.buckets) != 0 {
		t.Errorf("Expected idle bucket to be evicted, %d left", len(limiter.buckets))
	}
}
