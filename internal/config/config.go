package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	HTTPAddr  string
	PublicURL string

	// SheetsAPIURL is the Apps Script endpoint in front of the records
	// spreadsheet. An empty value is the sole trigger for demo mode.
	SheetsAPIURL string

	DBDriver string
	DBDSN    string

	// SessionBackend selects where the session slot lives: sql|redis|memory.
	SessionBackend string
	RedisAddr      string

	AuthSecret string
	SessionTTL time.Duration

	// DemoDelay keeps the loading state visible before the demo record is
	// substituted when no endpoint is configured.
	DemoDelay time.Duration

	CORSOrigins []string
}

func FromEnv() Config {
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Config{
		HTTPAddr:       addr,
		PublicURL:      os.Getenv("PUBLIC_URL"),
		SheetsAPIURL:   os.Getenv("SHEETS_API_URL"),
		DBDriver:       envOr("DB_DRIVER", "sqlite"),
		DBDSN:          envOr("DB_DSN", ""),
		SessionBackend: envOr("SESSION_BACKEND", "sql"),
		RedisAddr:      envOr("REDIS_ADDR", "localhost:6379"),
		AuthSecret:     envOr("AUTH_HMAC_SECRET", "supersecret-dev-key"),
		SessionTTL:     durationOr("SESSION_TTL", 8*time.Hour),
		DemoDelay:      msOr("DEMO_DELAY_MS", 800*time.Millisecond),
		CORSOrigins:    csvOr("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173"),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func durationOr(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func msOr(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return time.Duration(n) * time.Millisecond
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
