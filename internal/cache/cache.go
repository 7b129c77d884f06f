package cache

import (
	"sync"
	"time"
)

// entry 单个缓存条目；过期后在读取时被惰性清除
type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// TimedCache 进程内的带 TTL 缓存。
// 只按时间过期，不做 LRU / 容量淘汰：key 空间有限（排行榜一个 key，
// item 按 ID 一个 key），靠自然过期即可控制内存。
// Get / Set 可被多个 goroutine 并发调用。
type TimedCache[V any] struct {
	mu    sync.Mutex
	items map[string]entry[V]
	now   func() time.Time // 方便测试注入时间
}

func New[V any]() *TimedCache[V] {
	return &TimedCache[V]{
		items: make(map[string]entry[V]),
		now:   time.Now,
	}
}

// Get 命中且未过期时返回值；过期条目等同未命中，并顺手删除
func (c *TimedCache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	if c.now().After(e.expiresAt) {
		delete(c.items, key)
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set 无条件覆盖旧值并重置过期时间
func (c *TimedCache[V]) Set(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = entry[V]{
		value:     value,
		expiresAt: c.now().Add(ttl),
	}
}

// Len 返回当前条目数，含已过期但尚未被读到的条目
func (c *TimedCache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
