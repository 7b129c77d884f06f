package hackernews

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultBaseURL 官方 Firebase API 地址
	DefaultBaseURL = "https://hacker-news.firebaseio.com/v0"

	maxResponseBytes = 1 << 20 // 1MB
)

// Item /item/{id}.json 的原始载荷
type Item struct {
	ID          int    `json:"id"`
	Type        string `json:"type"`
	By          string `json:"by"`
	Time        int64  `json:"time"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	Score       int    `json:"score"`
	Descendants int    `json:"descendants"`
	Deleted     bool   `json:"deleted"`
	Dead        bool   `json:"dead"`
}

// Client Hacker News 官方 API 的只读客户端。
// 排行榜与单条 item 用独立的 http.Client，超时各自配置；
// 重试策略不在这里做，上游失败即向调用方返回。
type Client struct {
	baseURL    string
	listClient *http.Client
	itemClient *http.Client
}

func NewClient(baseURL string, listTimeout, itemTimeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		listClient: &http.Client{Timeout: listTimeout},
		itemClient: &http.Client{Timeout: itemTimeout},
	}
}

// BestStoryIDs 拉取 beststories 排行榜，顺序即上游排名
func (c *Client) BestStoryIDs(ctx context.Context) ([]int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/beststories.json", nil)
	if err != nil {
		return nil, fmt.Errorf("hackernews: build best ids request: %w", err)
	}

	resp, err := c.listClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hackernews: fetch best ids: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("hackernews: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("hackernews: read best ids: %w", err)
	}

	var ids []int
	if err := json.Unmarshal(body, &ids); err != nil {
		return nil, fmt.Errorf("hackernews: unmarshal best ids: %w", err)
	}
	return ids, nil
}

// Item 拉取单条 item。上游用字面量 null 表示条目不存在，
// 这不是传输错误，此时返回 (nil, nil)。
func (c *Client) Item(ctx context.Context, id int) (*Item, error) {
	url := fmt.Sprintf("%s/item/%d.json", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("hackernews: build item %d request: %w", id, err)
	}

	resp, err := c.itemClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hackernews: fetch item %d: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("hackernews: item %d status %d", id, resp.StatusCode)
	}

	// 解码到指针：载荷为 null 时 it 保持 nil
	var it *Item
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&it); err != nil {
		return nil, fmt.Errorf("hackernews: unmarshal item %d: %w", id, err)
	}
	return it, nil
}
