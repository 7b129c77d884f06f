package cache

import (
	"context"
	"testing"
	"time"
)

func TestResponseCacheDisabledWhenUnconfigured(t *testing.T) {
	if rc := NewResponseCache("", time.Minute); rc != nil {
		t.Fatalf("expected nil cache when addr is empty")
	}
	if rc := NewResponseCache("localhost:6379", 0); rc != nil {
		t.Fatalf("expected nil cache when ttl is not positive")
	}
}

func TestResponseCacheNilReceiverIsSafe(t *testing.T) {
	var rc *ResponseCache
	ctx := context.Background()

	// nil 接收者：Get 永远未命中，Set 是空操作，均不能 panic
	if _, ok := rc.Get(ctx, "resp:beststories:20"); ok {
		t.Fatalf("nil cache should never hit")
	}
	rc.Set(ctx, "resp:beststories:20", []byte("{}"))
}
