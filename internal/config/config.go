package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppPort       string
	BasicAuthUser string
	BasicAuthPass string

	HNBaseURL     string
	HNTimeout     time.Duration
	HNItemTimeout time.Duration

	CacheTTL         time.Duration
	MaxStories       int
	DefaultStories   int
	FetchConcurrency int

	RedisAddr        string
	ResponseCacheTTL time.Duration

	WarmCronSpec string
	WarmCount    int
}

func Load() *Config {
	cfg := &Config{
		AppPort:       getEnv("APP_PORT", "9000"),
		BasicAuthUser: getEnv("APP_BASIC_USER", ""),
		BasicAuthPass: getEnv("APP_BASIC_PASS", ""),

		HNBaseURL:     getEnv("HN_BASE_URL", "https://hacker-news.firebaseio.com/v0"),
		HNTimeout:     getEnvDuration("HN_TIMEOUT", 10*time.Second),
		HNItemTimeout: getEnvDuration("HN_ITEM_TIMEOUT", 5*time.Second),

		CacheTTL:         getEnvDuration("CACHE_TTL", 5*time.Minute),
		MaxStories:       getEnvInt("MAX_STORIES", 500),
		DefaultStories:   getEnvInt("DEFAULT_STORIES", 20),
		FetchConcurrency: getEnvInt("FETCH_CONCURRENCY", 10),

		RedisAddr:        getEnv("REDIS_ADDR", ""),
		ResponseCacheTTL: getEnvDuration("RESPONSE_CACHE_TTL", 30*time.Second),

		// WARM_CRON_SPEC 置空可关闭预热
		WarmCronSpec: getEnv("WARM_CRON_SPEC", "*/5 * * * *"),
		WarmCount:    getEnvInt("WARM_COUNT", 50),
	}

	log.Printf("config loaded: port=%s ttl=%s max=%d warm=%q", cfg.AppPort, cfg.CacheTTL, cfg.MaxStories, cfg.WarmCronSpec)
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("warn: invalid int for %s, using default %d", key, def)
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("warn: invalid duration for %s, using default %s", key, def)
	}
	return def
}
