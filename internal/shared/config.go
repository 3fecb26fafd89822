package shared

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppEnv       string
	HTTPAddr     string
	MetricsAddr  string
	ScrapeBase   string
	Workers      int // batch size of the concurrent page sweep
	RPS          int // client-side outbound rate limit
	ReqTimeout   time.Duration
	BatchTimeout time.Duration
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	return Config{
		AppEnv:       env("APP_ENV", "prod"),
		HTTPAddr:     env("HTTP_ADDR", ":8080"),
		MetricsAddr:  env("METRICS_ADDR", ":9100"),
		ScrapeBase:   env("SCRAPE_BASE_URL", "https://www.lendingtree.com"),
		Workers:      atoi("SCRAPE_WORKERS", 8),
		RPS:          atoi("SCRAPE_RPS", 5),
		ReqTimeout:   time.Duration(atoi("REQUEST_TIMEOUT_SECONDS", 15)) * time.Second,
		BatchTimeout: time.Duration(atoi("BATCH_TIMEOUT_SECONDS", 15)) * time.Second,
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
