package config

import (
	"reflect"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"APP_HOST", "APP_PORT", "DATABASE_DSN", "RATE_LIMIT_PER_MINUTE", "GEMINI_MODEL",
		"GENERATION_LIMITER", "GENERATION_SLOTS", "REDIS_HOST", "REDIS_PORT", "CORS_ALLOW_ORIGINS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.AppURL != "127.0.0.1:8000" {
		t.Errorf("unexpected AppURL %q", cfg.AppURL)
	}
	if cfg.DatabaseDSN != "taskplanner.db" {
		t.Errorf("unexpected DatabaseDSN %q", cfg.DatabaseDSN)
	}
	if cfg.GeminiModel != "gemini-2.0-flash-exp" {
		t.Errorf("unexpected GeminiModel %q", cfg.GeminiModel)
	}
	if cfg.GenerationLimiter != LimiterRedis || cfg.GenerationSlots != 4 {
		t.Errorf("unexpected limiter settings %q/%d", cfg.GenerationLimiter, cfg.GenerationSlots)
	}
	if cfg.RedisAddr != "127.0.0.1:6379" {
		t.Errorf("unexpected RedisAddr %q", cfg.RedisAddr)
	}
	if !reflect.DeepEqual(cfg.CORSAllowOrigins, []string{"*"}) {
		t.Errorf("unexpected CORS origins %v", cfg.CORSAllowOrigins)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_HOST", "0.0.0.0")
	t.Setenv("APP_PORT", "9000")
	t.Setenv("GENERATION_LIMITER", "LOCAL")
	t.Setenv("GENERATION_SLOTS", "7")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("GEMINI_API_KEY", "secret")

	cfg := Load()

	if cfg.AppURL != "0.0.0.0:9000" {
		t.Errorf("unexpected AppURL %q", cfg.AppURL)
	}
	if cfg.GenerationLimiter != LimiterLocal || cfg.GenerationSlots != 7 {
		t.Errorf("unexpected limiter settings %q/%d", cfg.GenerationLimiter, cfg.GenerationSlots)
	}
	if cfg.GeminiAPIKey != "secret" {
		t.Errorf("expected api key to be read")
	}
	want := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(cfg.CORSAllowOrigins, want) {
		t.Errorf("expected %v, got %v", want, cfg.CORSAllowOrigins)
	}
}
