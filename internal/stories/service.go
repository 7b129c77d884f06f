package stories

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/hnhub/beststories/internal/cache"
	"github.com/hnhub/beststories/internal/hackernews"
)

const (
	bestIDsKey = "ids:best"

	DefaultCacheTTL    = 5 * time.Minute
	DefaultConcurrency = 10
)

// Gateway 抽象上游数据源，测试里用假实现替换
type Gateway interface {
	BestStoryIDs(ctx context.Context) ([]int, error)
	Item(ctx context.Context, id int) (*hackernews.Item, error)
}

// Service 读穿两级缓存的聚合器：排行榜 ID 列表一级、单条 item 一级。
// 两个缓存由调用方构建后传入，进程内所有请求共享同一份。
//
// 错误语义是不对称的：排行榜拉取失败对整个 GetBest 是致命的；
// 单条 item 失败只让结果变短，绝不冒错。
type Service struct {
	gw          Gateway
	idsCache    *cache.TimedCache[[]int]
	itemCache   *cache.TimedCache[Story]
	ttl         time.Duration
	concurrency int

	// 排行榜 key 上的并发未命中只放行一次上游调用；
	// item 级不做去重，重复拉取是幂等覆盖，代价可接受
	sf singleflight.Group
}

func NewService(gw Gateway, idsCache *cache.TimedCache[[]int], itemCache *cache.TimedCache[Story], ttl time.Duration, concurrency int) *Service {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Service{
		gw:          gw,
		idsCache:    idsCache,
		itemCache:   itemCache,
		ttl:         ttl,
		concurrency: concurrency,
	}
}

// GetBest 返回按 score 降序排列的前 n 条故事。
// n 由调用方保证为正数且有上界；结果长度可能小于 n（item 缺失被静默丢弃），
// 排行榜为空或 n 截断为 0 时返回空切片而非错误。
func (s *Service) GetBest(ctx context.Context, n int) ([]Story, error) {
	ids, err := s.bestIDs(ctx)
	if err != nil {
		return nil, err
	}

	if n > len(ids) {
		n = len(ids)
	}
	if n <= 0 {
		return []Story{}, nil
	}
	// 截断保持上游排名顺序，这是拉取顺序而非最终排序
	ids = ids[:n]

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		sem     = make(chan struct{}, s.concurrency)
		results = make([]Story, 0, len(ids))
	)

	for _, id := range ids {
		wg.Add(1)
		sem <- struct{}{}
		go func(id int) {
			defer wg.Done()
			defer func() { <-sem }()

			st, ok := s.resolve(ctx, id)
			if !ok {
				return
			}
			mu.Lock()
			results = append(results, st)
			mu.Unlock()
		}(id)
	}
	wg.Wait()

	sort.Slice(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results, nil
}

// bestIDs 读穿排行榜缓存；未命中时经 singleflight 拉取并写回
func (s *Service) bestIDs(ctx context.Context) ([]int, error) {
	if ids, ok := s.idsCache.Get(bestIDsKey); ok {
		return ids, nil
	}

	v, err, _ := s.sf.Do(bestIDsKey, func() (any, error) {
		// 拿到执行权后再查一次，前一个 flight 可能刚写回
		if ids, ok := s.idsCache.Get(bestIDsKey); ok {
			return ids, nil
		}
		ids, err := s.gw.BestStoryIDs(ctx)
		if err != nil {
			return nil, fmt.Errorf("best ids: %w", err)
		}
		s.idsCache.Set(bestIDsKey, ids, s.ttl)
		return ids, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]int), nil
}

// resolve 单条 item 的读穿解析。
// 传输错误、null 载荷、已删除 / dead、非 story 类型统一按缺失处理，
// 只有规范化成功才写缓存。
func (s *Service) resolve(ctx context.Context, id int) (Story, bool) {
	key := fmt.Sprintf("item:%d", id)
	if st, ok := s.itemCache.Get(key); ok {
		return st, true
	}

	it, err := s.gw.Item(ctx, id)
	if err != nil {
		log.Printf("stories: fetch item %d: %v", id, err)
		return Story{}, false
	}
	if it == nil || it.Deleted || it.Dead {
		return Story{}, false
	}
	if it.Type != "" && it.Type != "story" {
		return Story{}, false
	}

	st := normalize(it)
	s.itemCache.Set(key, st, s.ttl)
	return st, true
}
