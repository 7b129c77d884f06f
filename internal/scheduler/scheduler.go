package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/hnhub/beststories/internal/stories"
)

// Lister 预热器对聚合服务的最小依赖
type Lister interface {
	GetBest(ctx context.Context, n int) ([]stories.Story, error)
}

// Warmer 周期性地把排行榜和前 count 条 item 拉进缓存，
// 让绝大多数请求走缓存命中路径而不是首次读穿。
type Warmer struct {
	cron  *cron.Cron
	svc   Lister
	count int
}

// New spec 为空时不注册定时任务，只保留 RunOnce 手动触发能力
func New(spec string, svc Lister, count int) (*Warmer, error) {
	c := cron.New()
	w := &Warmer{
		cron:  c,
		svc:   svc,
		count: count,
	}

	if spec != "" {
		if _, err := c.AddFunc(spec, w.runOnce); err != nil {
			return nil, err
		}
	}
	return w, nil
}

func (w *Warmer) Start() {
	w.cron.Start()
	// 延迟执行首轮预热，避免与启动后的首批请求争抢上游带宽
	const startupDelay = 15 * time.Second
	time.AfterFunc(startupDelay, func() {
		go w.runOnce()
	})
}

func (w *Warmer) Stop() {
	w.cron.Stop()
}

// RunOnce 对外暴露的单次执行入口，方便手动触发预热
func (w *Warmer) RunOnce() {
	w.runOnce()
}

func (w *Warmer) runOnce() {
	log.Println("start warm job...")

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	list, err := w.svc.GetBest(ctx, w.count)
	if err != nil {
		log.Printf("warm error: %v", err)
		return
	}
	log.Printf("warm job done, cached=%d stories", len(list))
}
