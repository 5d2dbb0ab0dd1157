package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

const (
	LimiterRedis = "redis"
	LimiterLocal = "local"
)

type Config struct {
	AppURL                 string
	DatabaseDSN            string
	RateLimit              int
	ShutdownTimeoutSeconds int
	GeminiAPIKey           string
	GeminiModel            string
	GenerationLimiter      string
	GenerationSlots        int
	RedisAddr              string
	RedisGenerationKey     string
	CORSAllowOrigins       []string
}

func Load() Config {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8000")
	redisHost := getEnv("REDIS_HOST", "127.0.0.1")
	redisPort := getEnv("REDIS_PORT", "6379")

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		DatabaseDSN:            getEnv("DATABASE_DSN", "taskplanner.db"),
		RateLimit:              getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60),
		ShutdownTimeoutSeconds: getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20),
		GeminiAPIKey:           os.Getenv("GEMINI_API_KEY"),
		GeminiModel:            getEnv("GEMINI_MODEL", "gemini-2.0-flash-exp"),
		GenerationLimiter:      strings.ToLower(getEnv("GENERATION_LIMITER", LimiterRedis)),
		GenerationSlots:        getEnvAsInt("GENERATION_SLOTS", 4),
		RedisAddr:              fmt.Sprintf("%s:%s", redisHost, redisPort),
		RedisGenerationKey:     getEnv("REDIS_GENERATION_KEY", "plan_generation_tokens"),
		CORSAllowOrigins:       getEnvAsList("CORS_ALLOW_ORIGINS", []string{"*"}),
	}

	validate(cfg)
	return cfg
}

func validate(cfg Config) {
	if cfg.DatabaseDSN == "" {
		log.Fatal("DATABASE_DSN must not be empty")
	}
	if cfg.RateLimit <= 0 {
		log.Fatal("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.ShutdownTimeoutSeconds <= 0 {
		log.Fatal("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0")
	}
	if cfg.GenerationSlots <= 0 {
		log.Fatal("GENERATION_SLOTS must be greater than 0")
	}
	if cfg.GenerationLimiter != LimiterRedis && cfg.GenerationLimiter != LimiterLocal {
		log.Fatalf("GENERATION_LIMITER must be %q or %q", LimiterRedis, LimiterLocal)
	}
	if cfg.GeminiAPIKey == "" {
		log.Println("GEMINI_API_KEY is not set, plan generation will fail")
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid integer value for %s", key)
		}
		return i
	}
	return defaultVal
}

func getEnvAsList(key string, defaultVal []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}

	var items []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultVal
	}
	return items
}
