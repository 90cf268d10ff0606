package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultGenerationBackends is the backend order used when
// GENERATION_BACKENDS is unset. The text terminal is always appended.
var DefaultGenerationBackends = []string{"pollinations", "qwen", "gemini-brief", "mockup"}

// DefaultVisionModels is the vision model order used when VISION_MODELS is
// unset.
var DefaultVisionModels = []string{
	"gemini:gemini-2.0-flash",
	"gemini:gemini-1.5-flash",
	"openrouter:qwen/qwen2.5-vl-72b-instruct:free",
	"openrouter:meta-llama/llama-3.2-11b-vision-instruct:free",
}

var (
	knownBackends       = map[string]bool{"pollinations": true, "qwen": true, "gemini-brief": true, "mockup": true}
	knownVisionProvider = map[string]bool{"gemini": true, "openrouter": true}
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv           string
	LogLevel         string
	Port             string
	DatabaseURL      string
	DBMaxConns       int
	RedisURL         string
	GeoIPDBPath      string
	CORSOrigins      []string
	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
	RateLimitPerMin  int
	ArtifactCacheTTL time.Duration
	ArtifactDir      string

	PollinationsBaseURL string
	PollinationsModel   string
	QwenAPIKey          string
	QwenBaseURL         string
	QwenModel           string
	GeminiAPIKey        string
	GeminiBaseURL       string
	GeminiBriefModel    string
	OpenRouterAPIKey    string
	OpenRouterBaseURL   string

	GenerationBackends []string
	BackendTimeout     time.Duration
	VisionModels       []string
	VisionBackoff      time.Duration
	VisionTimeout      time.Duration
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:           getEnv("APP_ENV", "development"),
		LogLevel:         os.Getenv("LOG_LEVEL"),
		Port:             getEnv("PORT", "8080"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		DBMaxConns:       getEnvInt("DB_MAX_CONNS", 8),
		RedisURL:         os.Getenv("REDIS_URL"),
		GeoIPDBPath:      os.Getenv("GEOIP_DB_PATH"),
		CORSOrigins:      getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		HTTPReadTimeout:  time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout: time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 120)),
		HTTPIdleTimeout:  time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:  getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
		ArtifactCacheTTL: time.Second * time.Duration(getEnvInt("ARTIFACT_CACHE_TTL_SECONDS", 3600)),
		ArtifactDir:      getEnv("ARTIFACT_DIR", "./artifacts"),

		PollinationsBaseURL: getEnv("POLLINATIONS_BASE_URL", "https://image.pollinations.ai"),
		PollinationsModel:   getEnv("POLLINATIONS_MODEL", "flux"),
		QwenAPIKey:          os.Getenv("QWEN_API_KEY"),
		QwenBaseURL:         getEnv("QWEN_BASE_URL", "https://dashscope-intl.aliyuncs.com/api/v1"),
		QwenModel:           getEnv("QWEN_MODEL", "qwen-image-plus"),
		GeminiAPIKey:        os.Getenv("GEMINI_API_KEY"),
		GeminiBaseURL:       getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		GeminiBriefModel:    getEnv("GEMINI_BRIEF_MODEL", "gemini-2.0-flash"),
		OpenRouterAPIKey:    os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterBaseURL:   getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),

		GenerationBackends: getEnvList("GENERATION_BACKENDS", DefaultGenerationBackends),
		BackendTimeout:     time.Second * time.Duration(getEnvInt("BACKEND_TIMEOUT_SECONDS", 45)),
		VisionModels:       getEnvList("VISION_MODELS", DefaultVisionModels),
		VisionBackoff:      time.Millisecond * time.Duration(getEnvInt("VISION_BACKOFF_MS", 2000)),
		VisionTimeout:      time.Second * time.Duration(getEnvInt("VISION_TIMEOUT_SECONDS", 30)),
	}

	for i, name := range cfg.GenerationBackends {
		name = strings.ToLower(name)
		if !knownBackends[name] {
			return nil, fmt.Errorf("GENERATION_BACKENDS contains unknown backend %q", name)
		}
		cfg.GenerationBackends[i] = name
	}
	for _, entry := range cfg.VisionModels {
		provider, model, ok := strings.Cut(entry, ":")
		if !ok || strings.TrimSpace(model) == "" {
			return nil, fmt.Errorf("VISION_MODELS entry %q must look like provider:model", entry)
		}
		if !knownVisionProvider[strings.ToLower(strings.TrimSpace(provider))] {
			return nil, fmt.Errorf("VISION_MODELS entry %q names unknown provider %q", entry, provider)
		}
	}
	if cfg.RateLimitPerMin <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}
	if cfg.DBMaxConns <= 0 {
		return nil, fmt.Errorf("DB_MAX_CONNS must be positive")
	}
	if cfg.VisionBackoff < 0 {
		return nil, fmt.Errorf("VISION_BACKOFF_MS must not be negative")
	}

	return cfg, nil
}

// VisionModelList joins the configured vision models back into the
// comma separated form.
func (c *Config) VisionModelList() string {
	return strings.Join(c.VisionModels, ",")
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return append([]string(nil), fallback...)
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
