package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPageSize = 100
	maxPageSizeCap  = 1000
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	// Dictionary
	WordlistFile             string        // path to a .txt or .yaml word list (empty = embedded list)
	DictionaryReloadInterval time.Duration // interval to reload the word list (0 = disabled)

	// Generation
	DefaultPageSize int // page size used when a request omits it
	MaxPageSize     int // upper bound for pageSize, clamped to 1000

	// Availability
	AvailabilityProvider   string        // "mock" | "dns"
	AvailabilityMaxDomains int           // max domains per check request
	MockLatency            time.Duration // simulated latency per domain for the mock provider
	DNSResolver            string        // ex: "1.1.1.1:53"
	DNSTimeout             time.Duration // timeout per DNS query

	// Redis (optional, empty address = in-memory favorites)
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
	AllowedCIDRS []string // optional, restrict access to specific IP (e.g. "1.2.3.4, 5.6.7.8")
	TrustProxy   bool     // true => trust X-Forwarded-For headers (e.g. cloudflared)

	RateLimitBurst  int // tokens available at once per client on the heavy endpoints
	RateLimitPerMin int // refill rate per client
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("BRAINSTORM_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("BRAINSTORM_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("BRAINSTORM_LOG_LEVEL", "info"),
		PrettyLog: mustBool("BRAINSTORM_PRETTY_LOG", true),

		// Dictionary
		WordlistFile:             getenv("BRAINSTORM_WORDLIST_FILE", ""),
		DictionaryReloadInterval: mustDuration("BRAINSTORM_DICTIONARY_RELOAD_INTERVAL", 0),

		// Generation
		DefaultPageSize: getenvInt("BRAINSTORM_DEFAULT_PAGE_SIZE", defaultPageSize),
		MaxPageSize:     getenvInt("BRAINSTORM_MAX_PAGE_SIZE", maxPageSizeCap),

		// Availability
		AvailabilityProvider:   strings.ToLower(getenv("BRAINSTORM_AVAILABILITY_PROVIDER", "mock")),
		AvailabilityMaxDomains: getenvInt("BRAINSTORM_AVAILABILITY_MAX_DOMAINS", 1000),
		MockLatency:            mustDuration("BRAINSTORM_MOCK_LATENCY", 0),
		DNSResolver:            getenv("BRAINSTORM_DNS_RESOLVER", "1.1.1.1:53"),
		DNSTimeout:             mustDuration("BRAINSTORM_DNS_TIMEOUT", 2*time.Second),

		// Redis settings
		RedisAddr:             getenv("BRAINSTORM_REDIS_ADDR", ""),
		RedisUser:             getenv("BRAINSTORM_REDIS_USERNAME", "default"),
		RedisPasswordRequired: mustBool("BRAINSTORM_REDIS_PASSWORD_REQUIRED", false),
		RedisPassword:         getenv("BRAINSTORM_REDIS_PASSWORD", ""),
		RedisDB:               getenvInt("BRAINSTORM_REDIS_DB", 0),
		RedisDT:               mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:               mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:               mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:          mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:      mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:         getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout:   mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:    mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:    getenvInt("REDIS_WARN_THRESHOLD", 3),

		// Access restrictions
		AllowedHosts: splitAndTrim(getenv("BRAINSTORM_ALLOWED_HOSTS", "")),
		AllowedCIDRS: splitAndTrim(getenv("BRAINSTORM_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("BRAINSTORM_TRUST_PROXY", false),

		RateLimitBurst:  getenvInt("BRAINSTORM_RATE_LIMIT_BURST", 30),
		RateLimitPerMin: getenvInt("BRAINSTORM_RATE_LIMIT_PER_MIN", 120),
	}

	cfg.validate()

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

// RedisEnabled reports whether favorites should be persisted in Redis.
func (c *Config) RedisEnabled() bool { return c.RedisAddr != "" }

func (c *Config) validate() {
	if c.MaxPageSize <= 0 || c.MaxPageSize > maxPageSizeCap {
		c.MaxPageSize = maxPageSizeCap
	}
	if c.DefaultPageSize <= 0 {
		c.DefaultPageSize = defaultPageSize
	}
	if c.DefaultPageSize > c.MaxPageSize {
		c.DefaultPageSize = c.MaxPageSize
	}
	if c.DictionaryReloadInterval < 0 {
		panic(fmt.Sprintf("❌ FATAL: BRAINSTORM_DICTIONARY_RELOAD_INTERVAL must not be negative, got %s", c.DictionaryReloadInterval))
	}

	switch c.AvailabilityProvider {
	case "mock", "dns":
	default:
		panic(fmt.Sprintf("❌ FATAL: BRAINSTORM_AVAILABILITY_PROVIDER must be mock or dns, got %q", c.AvailabilityProvider))
	}

	// Validate Redis password configuration
	if c.RedisEnabled() && c.RedisPasswordRequired && c.RedisPassword == "" {
		panic("❌ FATAL: BRAINSTORM_REDIS_PASSWORD is required when BRAINSTORM_REDIS_PASSWORD_REQUIRED=true")
	}
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
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
