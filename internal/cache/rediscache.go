package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// ResponseCache 基于 Redis 的已渲染响应缓存，可选组件。
// 与 TimedCache 不同，它只缓存 API 层输出的字节串；REDIS_ADDR 未配置时
// 构造函数返回 nil，所有方法对 nil 接收者安全，直接退化为未命中。
type ResponseCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewResponseCache(addr string, ttl time.Duration) *ResponseCache {
	if addr == "" || ttl <= 0 {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("warn: redis ping failed: %v", err)
	}

	return &ResponseCache{rdb: rdb, ttl: ttl}
}

func (c *ResponseCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	bs, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return bs, true
}

// Set 写入失败只影响下次命中率，不向调用方冒错
func (c *ResponseCache) Set(ctx context.Context, key string, value []byte) {
	if c == nil || c.rdb == nil {
		return
	}
	_ = c.rdb.Set(ctx, key, value, c.ttl).Err()
}
