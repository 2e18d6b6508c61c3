package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Supported search providers.
const (
	SearchProviderTavily = "tavily"
	SearchProviderBrave  = "brave"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// SearchConfig holds credentials and endpoints for the web search providers.
type SearchConfig struct {
	Provider      string
	TavilyAPIKey  string
	BraveAPIKey   string
	TavilyBaseURL string
	BraveBaseURL  string
	Timeout       time.Duration
}

// Config aggregates application-wide configuration values.
type Config struct {
	Port          string
	AllowedOrigin string
	Env           string
	LogLevel      string
	ModelCommand  []string
	Search        SearchConfig
	RateLimitAsk  RateLimitConfig
}

// Load reads configuration from environment variables and applies sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "8000"),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:5173"),
		Env:           getEnv("APP_ENV", "local"),
		LogLevel:      os.Getenv("LOG_LEVEL"),
		ModelCommand:  strings.Fields(getEnv("MODEL_COMMAND", "ollama run llama3.1:8b")),
		Search: SearchConfig{
			Provider:      strings.ToLower(strings.TrimSpace(getEnv("SEARCH_PROVIDER", SearchProviderTavily))),
			TavilyAPIKey:  os.Getenv("TAVILY_API_KEY"),
			BraveAPIKey:   os.Getenv("BRAVE_API_KEY"),
			TavilyBaseURL: getEnv("TAVILY_BASE_URL", "https://api.tavily.com"),
			BraveBaseURL:  getEnv("BRAVE_BASE_URL", "https://api.search.brave.com"),
			Timeout:       parseDuration(getEnv("SEARCH_TIMEOUT", "0s")),
		},
	}

	switch cfg.Search.Provider {
	case SearchProviderTavily, SearchProviderBrave:
	default:
		return nil, fmt.Errorf("invalid SEARCH_PROVIDER value: %q", cfg.Search.Provider)
	}

	if raw := os.Getenv("RATE_LIMIT_ASK"); raw != "" {
		rl, err := parseRateLimit(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT_ASK value: %w", err)
		}
		cfg.RateLimitAsk = rl
	}

	return cfg, nil
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

// parseDuration returns zero (no timeout) for unparsable or negative input.
func parseDuration(input string) time.Duration {
	d, err := time.ParseDuration(input)
	if err != nil || d < 0 {
		return 0
	}
	return d
}
