package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Provider names accepted by MITRA_PROVIDER.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config holds all application configuration.
// Values are loaded from environment variables with sensible defaults.
type Config struct {
	// Server
	Port        int
	LogLevel    string
	AppName     string
	CORSOrigins []string
	FrontendDir string

	// Mitra remote providers
	Provider      string
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string
	GeminiAPIKey  string
	GeminiModel   string
	MitraTimeout  time.Duration

	// HTTP client
	HTTPTimeout time.Duration

	// Resilience
	MaxRetries     int
	InitialBackoff time.Duration
	MaxConcurrency int

	// Cache
	CacheTTL      time.Duration // zero disables the Mitra reply cache
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Observability
	OTLPEndpoint string
}

// Load reads configuration from environment variables with defaults.
func Load() *Config {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Port:        v.GetInt("PORT"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		AppName:     v.GetString("APP_NAME"),
		CORSOrigins: splitList(v.GetString("CORS_ORIGINS")),
		FrontendDir: v.GetString("FRONTEND_DIR"),

		Provider:      strings.ToLower(strings.TrimSpace(v.GetString("MITRA_PROVIDER"))),
		OpenAIAPIKey:  v.GetString("OPENAI_API_KEY"),
		OpenAIModel:   v.GetString("OPENAI_MODEL"),
		OpenAIBaseURL: v.GetString("OPENAI_BASE_URL"),
		GeminiAPIKey:  v.GetString("GEMINI_API_KEY"),
		GeminiModel:   v.GetString("GEMINI_MODEL"),
		MitraTimeout:  v.GetDuration("MITRA_TIMEOUT"),

		HTTPTimeout: v.GetDuration("HTTP_TIMEOUT"),

		MaxRetries:     v.GetInt("MITRA_MAX_RETRIES"),
		InitialBackoff: v.GetDuration("INITIAL_BACKOFF"),
		MaxConcurrency: v.GetInt("MAX_CONCURRENCY"),

		CacheTTL:      v.GetDuration("CACHE_TTL"),
		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		RedisDB:       v.GetInt("REDIS_DB"),

		OTLPEndpoint: v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}

	if cfg.Provider != ProviderGemini {
		cfg.Provider = ProviderOpenAI
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"*"}
	}
	return cfg
}

// RemoteEnabled reports whether the selected provider has a credential.
func (c *Config) RemoteEnabled() bool {
	if c.Provider == ProviderGemini {
		return c.GeminiAPIKey != ""
	}
	return c.OpenAIAPIKey != ""
}

// ReplyCacheEnabled reports whether remote Mitra replies may be memoised.
func (c *Config) ReplyCacheEnabled() bool {
	return c.CacheTTL > 0
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", 8080)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("APP_NAME", "MeMetrics SuperApp")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("FRONTEND_DIR", "frontend")

	v.SetDefault("MITRA_PROVIDER", ProviderOpenAI)
	v.SetDefault("OPENAI_API_KEY", "")
	v.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	v.SetDefault("OPENAI_BASE_URL", "https://api.openai.com/v1")
	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	v.SetDefault("MITRA_TIMEOUT", 20*time.Second)

	v.SetDefault("HTTP_TIMEOUT", 30*time.Second)

	v.SetDefault("MITRA_MAX_RETRIES", 0)
	v.SetDefault("INITIAL_BACKOFF", 100*time.Millisecond)
	v.SetDefault("MAX_CONCURRENCY", 50)

	v.SetDefault("CACHE_TTL", time.Duration(0))
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "")
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
