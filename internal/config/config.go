package config

import (
	"os"
	"path/filepath"
	"strconv"
)

const (
	AppName    = "Oversetter"
	AppVersion = "1.0.0"
	AppRepo    = "https://github.com/CICEROsandbox/oversetter"
)

// OversetterUserAgent identifies feed requests from this service
var OversetterUserAgent = "Mozilla/5.0 (compatible; " + AppName + "/" + AppVersion + "; +" + AppRepo + ")"

// Chrome headers for TLS fingerprinting (must match azuretls Chrome profile version)
const (
	ChromeUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/135.0.0.0 Safari/537.36"
	ChromeSecChUa   = `"Google Chrome";v="135", "Chromium";v="135", "Not-A.Brand";v="8"`
)

type Config struct {
	Addr      string
	StaticDir string
	LogLevel  string

	AIProvider    string
	AIKey         string
	AIBaseURL     string
	AIModel       string
	AIMaxTokens   int64
	AITemperature float64

	RateLimit   float64
	ChunkRunes  int
	MaxExamples int

	ReferenceCSV string
	FeedURL      string
	ProxyURL     string
}

func Load() Config {
	return Config{
		Addr:      envStr("OVERSETTER_ADDR", ":8080"),
		StaticDir: filepath.Clean(envStr("OVERSETTER_STATIC_DIR", detectStaticDir())),
		LogLevel:  envStr("OVERSETTER_LOG_LEVEL", "info"),

		AIProvider:    envStr("OVERSETTER_AI_PROVIDER", "anthropic"),
		AIKey:         apiKey(),
		AIBaseURL:     os.Getenv("OVERSETTER_AI_BASE_URL"),
		AIModel:       envStr("OVERSETTER_AI_MODEL", "claude-3-opus-20240229"),
		AIMaxTokens:   envInt64("OVERSETTER_MAX_TOKENS", 1000),
		AITemperature: envFloat("OVERSETTER_TEMPERATURE", 0),

		RateLimit:   envFloat("OVERSETTER_RATE_LIMIT", 10),
		ChunkRunes:  envInt("OVERSETTER_CHUNK_RUNES", 4000),
		MaxExamples: envInt("OVERSETTER_MAX_EXAMPLES", 3),

		ReferenceCSV: os.Getenv("OVERSETTER_REFERENCE_CSV"),
		FeedURL:      os.Getenv("OVERSETTER_FEED_URL"),
		ProxyURL:     os.Getenv("OVERSETTER_PROXY_URL"),
	}
}

// apiKey resolves the model API key once at startup. An explicit
// OVERSETTER_AI_KEY wins over the provider-native variables.
func apiKey() string {
	for _, name := range []string{"OVERSETTER_AI_KEY", "ANTHROPIC_API_KEY", "OPENAI_API_KEY"} {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func detectStaticDir() string {
	candidates := []string{
		"./frontend/dist",
		"../frontend/dist",
	}
	for _, candidate := range candidates {
		indexPath := filepath.Join(candidate, "index.html")
		if info, err := os.Stat(indexPath); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return "./frontend/dist"
}
