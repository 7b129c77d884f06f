package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hnhub/beststories/internal/cache"
	"github.com/hnhub/beststories/internal/config"
	"github.com/hnhub/beststories/internal/stories"
)

// StoryLister 路由层对聚合服务的最小依赖
type StoryLister interface {
	GetBest(ctx context.Context, n int) ([]stories.Story, error)
}

type Server struct {
	svc  StoryLister
	resp *cache.ResponseCache // 可为 nil，即关闭响应缓存
	cfg  *config.Config
}

func NewServer(svc StoryLister, resp *cache.ResponseCache, cfg *config.Config) *Server {
	return &Server{svc: svc, resp: resp, cfg: cfg}
}

func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", s.health)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/beststories", s.bestStories)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// bestStories 解析并约束 n：缺省用 DEFAULT_STORIES，超过 MAX_STORIES 截到上限，
// 非法或非正数直接 400。聚合层信任这里给出的 n。
func (s *Server) bestStories(c *gin.Context) {
	nStr := c.DefaultQuery("n", strconv.Itoa(s.cfg.DefaultStories))
	n, err := strconv.Atoi(nStr)
	if err != nil || n <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    "bad_request",
			"message": "n must be a positive integer",
		})
		return
	}
	if n > s.cfg.MaxStories {
		n = s.cfg.MaxStories
	}

	cacheKey := fmt.Sprintf("resp:beststories:%d", n)
	if bs, ok := s.resp.Get(c.Request.Context(), cacheKey); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", bs)
		return
	}

	list, err := s.svc.GetBest(c.Request.Context(), n)
	if err != nil {
		// 排行榜不可用是这条接口唯一会整体失败的情形
		c.JSON(http.StatusBadGateway, gin.H{
			"code":    "upstream_error",
			"message": "best story list unavailable",
		})
		return
	}

	payload := gin.H{
		"code":    "ok",
		"message": "success",
		"data":    list,
	}
	if bs, err := json.Marshal(payload); err == nil {
		s.resp.Set(c.Request.Context(), cacheKey, bs)
		c.Data(http.StatusOK, "application/json; charset=utf-8", bs)
		return
	}
	c.JSON(http.StatusOK, payload)
}
