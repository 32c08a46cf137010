package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8090"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	TablesFile     string        // path to the routing tables YAML (optional, empty = built-in tables only)
	ReloadInterval time.Duration // interval to reload the tables file (default: 24h)
	GCInterval     time.Duration // interval to run garbage collection (default: 24h)
	GCThreshold    time.Duration // delete shortcuts disabled longer than this (default: 720h)

	// Native gateway (the platform side of the bridge)
	GatewayURL     string        // base URL of the native gateway (ex: http://127.0.0.1:8091)
	GatewayTimeout time.Duration // per-call timeout for gateway requests (default: 3s)

	// Policy constants for shortcut materialization
	VideoMaxBytes     int64         // reject video shortcuts above this size (default: 50MB)
	InlineMaxBytes    int64         // ceiling for inline byte payloads (default: 1MB)
	ClipboardCooldown time.Duration // suppress repeat clipboard suggestions within this window (default: 1h)

	// Redis
	RedisAddr             string        // ex: "localhost:6379"
	RedisUser             string        // optional
	RedisPassword         string        // optional
	RedisPasswordRequired bool          // true => require password, false => allow empty password
	RedisDB               int           // Redis DB number
	RedisDT               time.Duration // Redis dial timeout (ex: 5s)
	RedisRT               time.Duration // Redis read timeout (ex: 3s)
	RedisWT               time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait          time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout      time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize         int           // Redis connection pool size
	RedisConnectTimeout   time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval    time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold    int           // warn after this many attempts

	AllowedHosts []string // optional, restrict access to specific Host headers
	AllowedCIDRS []string // optional, restrict access to specific IPs (e.g. "127.0.0.1, ::1")
	TrustProxy   bool     // true => trust X-Forwarded-For headers
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("PINDROP_LISTEN_PORT", ":8090"),
		ShutdownTimeout: mustDuration("PINDROP_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("PINDROP_LOG_LEVEL", "info"),
		PrettyLog: mustBool("PINDROP_PRETTY_LOG", true),

		// Routing tables
		TablesFile:     getenv("PINDROP_TABLES_FILE", ""), // Optional, empty = built-in tables
		ReloadInterval: mustDuration("PINDROP_RELOAD_TABLES_INTERVAL", 24*time.Hour),
		GCInterval:     mustDuration("PINDROP_GC_INTERVAL", 24*time.Hour),
		GCThreshold:    mustDuration("PINDROP_GC_THRESHOLD", 30*24*time.Hour),

		// Native gateway
		GatewayURL:     requireEnv("PINDROP_GATEWAY_URL"),
		GatewayTimeout: mustDuration("PINDROP_GATEWAY_TIMEOUT", 3*time.Second),

		// Materialization policy
		VideoMaxBytes:     getenvInt64("PINDROP_VIDEO_MAX_BYTES", 50*1024*1024),
		InlineMaxBytes:    getenvInt64("PINDROP_INLINE_MAX_BYTES", 1*1024*1024),
		ClipboardCooldown: mustDuration("PINDROP_CLIPBOARD_COOLDOWN", time.Hour),

		// Redis settings
		RedisAddr:             requireEnv("PINDROP_REDIS_ADDR"),
		RedisUser:             getenv("PINDROP_REDIS_USERNAME", "default"),
		RedisPasswordRequired: mustBool("PINDROP_REDIS_PASSWORD_REQUIRED", false),
		RedisPassword:         getenv("PINDROP_REDIS_PASSWORD", ""),
		RedisDB:               getenvInt("PINDROP_REDIS_DB", 0),
		RedisDT:               mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:               mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:               mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:          mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:      mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:         getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout:   mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:    mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:    getenvInt("REDIS_WARN_THRESHOLD", 3),

		// Access restrictions (local daemon: defaults are permissive)
		AllowedHosts: splitAndTrim(getenv("PINDROP_ALLOWED_HOSTS", "")),
		AllowedCIDRS: splitAndTrim(getenv("PINDROP_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("PINDROP_TRUST_PROXY", false),
	}

	// Validate Redis password configuration
	if cfg.RedisPasswordRequired && cfg.RedisPassword == "" {
		panic("❌ FATAL: PINDROP_REDIS_PASSWORD is required when PINDROP_REDIS_PASSWORD_REQUIRED=true")
	}

	if cfg.VideoMaxBytes <= 0 {
		panic(fmt.Sprintf("❌ FATAL: PINDROP_VIDEO_MAX_BYTES must be > 0, got %d", cfg.VideoMaxBytes))
	}
	if cfg.InlineMaxBytes <= 0 {
		panic(fmt.Sprintf("❌ FATAL: PINDROP_INLINE_MAX_BYTES must be > 0, got %d", cfg.InlineMaxBytes))
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		cfgCopy.RedisPassword = "***REDACTED***"
		if cfg.RedisUser != "" {
			cfgCopy.RedisUser = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getenvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
