package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/hnhub/beststories/internal/api"
	"github.com/hnhub/beststories/internal/cache"
	"github.com/hnhub/beststories/internal/config"
	"github.com/hnhub/beststories/internal/hackernews"
	"github.com/hnhub/beststories/internal/scheduler"
	"github.com/hnhub/beststories/internal/stories"
)

func main() {
	cfg := config.Load()

	client := hackernews.NewClient(cfg.HNBaseURL, cfg.HNTimeout, cfg.HNItemTimeout)

	// 两级缓存在这里显式构建：排行榜与单条 item 各一份，由聚合服务共享，
	// 进程内所有请求（含预热任务）命中同一份缓存
	idsCache := cache.New[[]int]()
	itemCache := cache.New[stories.Story]()
	svc := stories.NewService(client, idsCache, itemCache, cfg.CacheTTL, cfg.FetchConcurrency)

	// REDIS_ADDR 未配置时为 nil，响应缓存自动关闭
	respCache := cache.NewResponseCache(cfg.RedisAddr, cfg.ResponseCacheTTL)

	warmer, err := scheduler.New(cfg.WarmCronSpec, svc, cfg.WarmCount)
	if err != nil {
		log.Fatalf("init warmer failed: %v", err)
	}
	warmer.Start()

	// API
	r := gin.Default()
	// 若配置了全局访问密码，则启用 Basic Auth 保护（/health 仍然免认证）
	if cfg.BasicAuthUser != "" && cfg.BasicAuthPass != "" {
		r.Use(api.BasicAuthMiddleware(cfg.BasicAuthUser, cfg.BasicAuthPass))
	}

	apiServer := api.NewServer(svc, respCache, cfg)
	apiServer.RegisterRoutes(r)

	addr := ":" + cfg.AppPort
	log.Printf("starting api server at %s ...", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server exit: %v", err)
	}
}
