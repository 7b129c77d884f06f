package stories

import (
	"time"

	"github.com/hnhub/beststories/internal/hackernews"
)

// Story 对外输出的规范化结构。
// 字段名刻意与上游区分：url -> uri，by -> postedBy，descendants -> commentCount；
// time 从 Unix 秒统一转成 UTC 绝对时间。
type Story struct {
	Title        string    `json:"title"`
	URI          string    `json:"uri"`
	PostedBy     string    `json:"postedBy"`
	Time         time.Time `json:"time"`
	Score        int       `json:"score"`
	CommentCount int       `json:"commentCount"`
}

// normalize 缺失的字符串字段解码后即为空串，score / commentCount 原样透传，
// 负数与零都是合法值
func normalize(it *hackernews.Item) Story {
	return Story{
		Title:        it.Title,
		URI:          it.URL,
		PostedBy:     it.By,
		Time:         time.Unix(it.Time, 0).UTC(),
		Score:        it.Score,
		CommentCount: it.Descendants,
	}
}
