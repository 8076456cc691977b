package utils

import (
	"net/http/httptest"
	"testing"
)

func TestIPMatcher(t *testing.T) {
	m := NewIPMatcher([]string{"10.0.0.0/8", " 192.168.1.7 ", "2001:db8::/32", "garbage", ""})

	tests := []struct {
		ip   string
		want bool
	}{
		{ip: "10.20.30.40", want: true},
		{ip: "192.168.1.7", want: true},
		{ip: "192.168.1.8", want: false},
		{ip: "::ffff:10.0.0.1", want: true},
		{ip: "2001:db8::1", want: true},
		{ip: "2001:db9::1", want: false},
		{ip: "not-an-ip", want: false},
	}
	for _, tt := range tests {
		if got := m.Allow(tt.ip); got != tt.want {
			t.Errorf("Allow(%q) = %v, want %v", tt.ip, got, tt.want)
		}
	}

	if m.IsEmpty() {
		t.Error("IsEmpty() = true for a populated matcher")
	}
	if !NewIPMatcher([]string{"nope"}).IsEmpty() {
		t.Error("IsEmpty() = false with only invalid entries")
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		trustProxy bool
		want       string
	}{
		{name: "remote addr", want: "192.0.2.1"},
		{name: "proxy headers ignored", headers: map[string]string{"X-Forwarded-For": "203.0.113.9"}, want: "192.0.2.1"},
		{name: "cloudflare first", headers: map[string]string{"CF-Connecting-IP": "198.51.100.2", "X-Forwarded-For": "203.0.113.9"}, trustProxy: true, want: "198.51.100.2"},
		{name: "left-most forwarded", headers: map[string]string{"X-Forwarded-For": " 203.0.113.9 , 10.0.0.1"}, trustProxy: true, want: "203.0.113.9"},
		{name: "real ip", headers: map[string]string{"X-Real-IP": "[2001:db8::5]:443"}, trustProxy: true, want: "2001:db8::5"},
		{name: "no headers with trust", trustProxy: true, want: "192.0.2.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			if got := ClientIP(r, tt.trustProxy); got != tt.want {
				t.Errorf("ClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
