package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRateLimiter(t *testing.T) {
	t.Run("Allows Within Burst", func(t *testing.T) {
		rl := newRateLimiter(600)
		for i := 0; i < 10; i++ {
			if !rl.allow("10.0.0.1") {
				t.Fatalf("request %d unexpectedly limited", i)
			}
		}
	})

	t.Run("Blocks Beyond Burst", func(t *testing.T) {
		rl := newRateLimiter(60)
		for i := 0; i < 6; i++ {
			rl.allow("10.0.0.2")
		}
		if rl.allow("10.0.0.2") {
			t.Error("expected limiter to block after burst exhausted")
		}
	})

	t.Run("Keys Are Independent", func(t *testing.T) {
		rl := newRateLimiter(60)
		for i := 0; i < 10; i++ {
			rl.allow("10.0.0.3")
		}
		if !rl.allow("10.0.0.4") {
			t.Error("a saturated key must not affect other keys")
		}
	})

	t.Run("Minimum Burst Of One", func(t *testing.T) {
		rl := newRateLimiter(5)
		if !rl.allow("10.0.0.5") {
			t.Error("first request must pass even for tiny limits")
		}
	})
}

func TestClientIP(t *testing.T) {
	t.Run("X-Forwarded-For Wins", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", nil)
		r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
		r.Header.Set("X-Real-IP", "203.0.113.8")
		if got := clientIP(r); got != "203.0.113.7" {
			t.Errorf("expected 203.0.113.7, got %s", got)
		}
	})

	t.Run("X-Real-IP Fallback", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", nil)
		r.Header.Set("X-Real-IP", "203.0.113.8")
		if got := clientIP(r); got != "203.0.113.8" {
			t.Errorf("expected 203.0.113.8, got %s", got)
		}
	})

	t.Run("RemoteAddr Fallback", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", nil)
		r.RemoteAddr = "192.0.2.1:4242"
		if got := clientIP(r); got != "192.0.2.1" {
			t.Errorf("expected 192.0.2.1, got %s", got)
		}
	})
}
