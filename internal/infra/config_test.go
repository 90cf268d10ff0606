package infra

import (
	"strings"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "GENERATION_BACKENDS", "VISION_MODELS", "VISION_BACKOFF_MS", "DATABASE_URL", "REDIS_URL", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port = %q, want 8080", cfg.Port)
	}
	if strings.Join(cfg.GenerationBackends, ",") != "pollinations,qwen,gemini-brief,mockup" {
		t.Fatalf("GenerationBackends = %#v", cfg.GenerationBackends)
	}
	if len(cfg.VisionModels) != len(DefaultVisionModels) {
		t.Fatalf("VisionModels = %#v", cfg.VisionModels)
	}
	if cfg.VisionBackoff != 2*time.Second {
		t.Fatalf("VisionBackoff = %s, want 2s", cfg.VisionBackoff)
	}
	if cfg.DatabaseURL != "" || cfg.RedisURL != "" {
		t.Fatalf("optional stores should default to empty")
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Fatalf("CORSOrigins = %#v", cfg.CORSOrigins)
	}
}

func TestLoadConfigDefaultsAreNotShared(t *testing.T) {
	t.Setenv("GENERATION_BACKENDS", "")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	cfg.GenerationBackends[0] = "mutated"
	if DefaultGenerationBackends[0] != "pollinations" {
		t.Fatalf("LoadConfig must copy the default backend list")
	}
}

func TestLoadConfigCustomOrders(t *testing.T) {
	t.Setenv("GENERATION_BACKENDS", " Mockup , pollinations ")
	t.Setenv("VISION_MODELS", "openrouter:meta-llama/llama-3.2-11b-vision-instruct:free,gemini:gemini-2.0-flash")
	t.Setenv("VISION_BACKOFF_MS", "250")
	t.Setenv("BACKEND_TIMEOUT_SECONDS", "5")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if strings.Join(cfg.GenerationBackends, ",") != "mockup,pollinations" {
		t.Fatalf("GenerationBackends = %#v", cfg.GenerationBackends)
	}
	if cfg.VisionModels[0] != "openrouter:meta-llama/llama-3.2-11b-vision-instruct:free" {
		t.Fatalf("VisionModels = %#v", cfg.VisionModels)
	}
	if cfg.VisionBackoff != 250*time.Millisecond {
		t.Fatalf("VisionBackoff = %s", cfg.VisionBackoff)
	}
	if cfg.BackendTimeout != 5*time.Second {
		t.Fatalf("BackendTimeout = %s", cfg.BackendTimeout)
	}
	if cfg.VisionModelList() != strings.Join(cfg.VisionModels, ",") {
		t.Fatalf("VisionModelList mismatch")
	}
}

func TestLoadConfigRejectsUnknownNames(t *testing.T) {
	t.Setenv("GENERATION_BACKENDS", "pollinations,dalle")
	if _, err := LoadConfig(); err == nil || !strings.Contains(err.Error(), "dalle") {
		t.Fatalf("expected unknown backend error, got %v", err)
	}

	t.Setenv("GENERATION_BACKENDS", "")
	t.Setenv("VISION_MODELS", "claude:vision")
	if _, err := LoadConfig(); err == nil || !strings.Contains(err.Error(), "claude") {
		t.Fatalf("expected unknown provider error, got %v", err)
	}

	t.Setenv("VISION_MODELS", "gemini")
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected malformed vision model error")
	}
}

func TestLoadConfigRejectsNonPositiveRateLimit(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_MINUTE", "0")
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected rate limit validation error")
	}
}

func TestLoadConfigDBMaxConns(t *testing.T) {
	t.Setenv("DB_MAX_CONNS", "")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.DBMaxConns != 8 {
		t.Fatalf("DBMaxConns = %d, want 8", cfg.DBMaxConns)
	}

	t.Setenv("DB_MAX_CONNS", "0")
	if _, err := LoadConfig(); err == nil || !strings.Contains(err.Error(), "DB_MAX_CONNS") {
		t.Fatalf("err = %v, want DB_MAX_CONNS error", err)
	}
}
