package mw

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MrSnakeDoc/brainstorm/internal/logger"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestMatchHost(t *testing.T) {
	tests := []struct {
		host, pattern string
		want          bool
	}{
		{host: "brainstorm.example", pattern: "brainstorm.example", want: true},
		{host: "brainstorm.example:8080", pattern: "brainstorm.example", want: true},
		{host: "localhost:8080", pattern: "localhost:8080", want: true},
		{host: "localhost:9090", pattern: "localhost:8080", want: false},
		{host: "api.example.com", pattern: "*.example.com", want: true},
		{host: "api.example.com:443", pattern: "*.example.com", want: true},
		{host: "example.com", pattern: "*.example.com", want: false},
		{host: "evilexample.com", pattern: "*.example.com", want: false},
		{host: "other.example", pattern: "brainstorm.example", want: false},
	}
	for _, tt := range tests {
		if got := matchHost(tt.host, tt.pattern); got != tt.want {
			t.Errorf("matchHost(%q, %q) = %v, want %v", tt.host, tt.pattern, got, tt.want)
		}
	}
}

func TestEnforceHost(t *testing.T) {
	h := EnforceHost([]string{"Brainstorm.Example"}, logger.Nop())(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Host = "brainstorm.example:8080"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("allowed host got %d", rec.Code)
	}

	req.Host = "other.example"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("foreign host got %d, want 403", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestAllowOnlyCIDRS(t *testing.T) {
	h := AllowOnlyCIDRS([]string{"10.0.0.0/8"}, true, logger.Nop())(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "10.1.2.3")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("allowed ip got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("foreign ip got %d, want 403", rec.Code)
	}
}

func TestLimiterRefill(t *testing.T) {
	l := newLimiter(RateLimitConfig{Burst: 2, RefillPerIPPerMin: 60})
	now := time.Now()

	for i := 0; i < 2; i++ {
		if ok, _, _ := l.allow("a", now); !ok {
			t.Fatalf("request %d should pass", i)
		}
	}
	ok, _, retry := l.allow("a", now)
	if ok {
		t.Fatal("third request should be limited")
	}
	if retry != 1 {
		t.Errorf("retry = %d, want 1", retry)
	}
	if ok, _, _ := l.allow("b", now); !ok {
		t.Error("other clients have their own bucket")
	}
	if ok, _, _ := l.allow("a", now.Add(time.Second)); !ok {
		t.Error("one token should be back after a second")
	}
}

func TestLimiterSweep(t *testing.T) {
	l := newLimiter(RateLimitConfig{Burst: 1, RefillPerIPPerMin: 1, IdleTTL: time.Minute, SweepInterval: time.Second})
	now := time.Now()
	l.allow("a", now)
	l.sweepMaybe(now.Add(2 * time.Minute))
	if len(l.buckets) != 0 {
		t.Errorf("idle bucket not swept, %d left", len(l.buckets))
	}
}

func TestRateLimitHeaders(t *testing.T) {
	h := RateLimit(RateLimitConfig{Burst: 1, RefillPerIPPerMin: 1})(okHandler)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("first request got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request got %d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" || rec.Header().Get("X-RateLimit-Remaining") != "0" {
		t.Errorf("missing rate limit headers: %v", rec.Header())
	}
}
