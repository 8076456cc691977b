package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MrSnakeDoc/brainstorm/internal/logger"
)

func validOptions() ConnectOptions {
	return ConnectOptions{
		Addr:           "127.0.0.1:1",
		DialTimeout:    50 * time.Millisecond,
		ReadTimeout:    50 * time.Millisecond,
		WriteTimeout:   50 * time.Millisecond,
		PoolSize:       1,
		ConnectTimeout: 200 * time.Millisecond,
		RetryInterval:  20 * time.Millisecond,
		MaxWait:        50 * time.Millisecond,
		PingTimeout:    50 * time.Millisecond,
		WarnThreshold:  1,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ConnectOptions)
	}{
		{name: "missing addr", mutate: func(o *ConnectOptions) { o.Addr = "" }},
		{name: "zero connect timeout", mutate: func(o *ConnectOptions) { o.ConnectTimeout = 0 }},
		{name: "zero retry interval", mutate: func(o *ConnectOptions) { o.RetryInterval = 0 }},
		{name: "zero max wait", mutate: func(o *ConnectOptions) { o.MaxWait = 0 }},
		{name: "zero ping timeout", mutate: func(o *ConnectOptions) { o.PingTimeout = 0 }},
		{name: "negative warn threshold", mutate: func(o *ConnectOptions) { o.WarnThreshold = -1 }},
	}

	if err := validOptions().validate(); err != nil {
		t.Fatalf("validate() on valid options: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := validOptions()
			tt.mutate(&opts)
			if err := opts.validate(); err == nil {
				t.Error("validate() should have failed")
			}
		})
	}
}

func TestBackoffCaps(t *testing.T) {
	b := backoff{next: time.Second, max: 3 * time.Second}
	want := []time.Duration{time.Second, 2 * time.Second, 3 * time.Second, 3 * time.Second}
	for i, w := range want {
		if got := b.wait(); got != w {
			t.Errorf("wait() #%d = %v, want %v", i, got, w)
		}
	}
}

func TestConnectGivesUp(t *testing.T) {
	start := time.Now()
	client, err := Connect(context.Background(), validOptions(), logger.Nop())
	if err == nil {
		t.Fatal("Connect() to a closed port should fail")
	}
	if client != nil {
		t.Error("Connect() should not return a client on failure")
	}
	if time.Since(start) > 2*time.Second {
		t.Errorf("Connect() took %v, ConnectTimeout not honoured", time.Since(start))
	}
}

func TestConnectInvalidOptions(t *testing.T) {
	opts := validOptions()
	opts.Addr = ""
	_, err := Connect(context.Background(), opts, logger.Nop())
	if !errors.Is(err, errMissingAddr) {
		t.Errorf("Connect() error = %v, want errMissingAddr", err)
	}
}
