package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/hnhub/beststories/internal/cache"
	"github.com/hnhub/beststories/internal/config"
	"github.com/hnhub/beststories/internal/hackernews"
	"github.com/hnhub/beststories/internal/stories"
)

// 一个仅执行一次聚合的命令行入口：把前 n 条故事以 JSON 输出到 stdout，
// 适合不起服务时手动验证上游连通性与聚合结果
func main() {
	n := flag.Int("n", 20, "number of stories to fetch")
	flag.Parse()

	cfg := config.Load()

	client := hackernews.NewClient(cfg.HNBaseURL, cfg.HNTimeout, cfg.HNItemTimeout)
	idsCache := cache.New[[]int]()
	itemCache := cache.New[stories.Story]()
	svc := stories.NewService(client, idsCache, itemCache, cfg.CacheTTL, cfg.FetchConcurrency)

	count := *n
	if count <= 0 {
		count = cfg.DefaultStories
	}
	if count > cfg.MaxStories {
		count = cfg.MaxStories
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	list, err := svc.GetBest(ctx, count)
	if err != nil {
		log.Fatalf("fetch best stories failed: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(list); err != nil {
		log.Fatalf("encode output failed: %v", err)
	}
}
