package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrMissingAPIKey = errors.New("GEMINI_API_KEY (ou GOOGLE_API_KEY) não configurada")

type Config struct {
	App    AppConfig
	Gemini GeminiConfig
	Rhyme  RhymeConfig
}

type AppConfig struct {
	Port               string
	CorsAllowedOrigins []string
	Lambda             bool
}

type GeminiConfig struct {
	APIKey        string
	Model         string
	FallbackModel string
}

type RhymeConfig struct {
	CacheTTL time.Duration
}

// Load reads .env (when present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		Logger.Debug("Arquivo .env não encontrado, usando variáveis do sistema")
	}

	apiKey := getEnv("GEMINI_API_KEY", "")
	if apiKey == "" {
		apiKey = getEnv("GOOGLE_API_KEY", "")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("PORT", "8080"),
			CorsAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
			Lambda:             getEnv("AWS_LAMBDA_FUNCTION_NAME", "") != "",
		},
		Gemini: GeminiConfig{
			APIKey:        apiKey,
			Model:         getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
			FallbackModel: getEnv("GEMINI_FALLBACK_MODEL", "gemini-1.5-flash"),
		},
		Rhyme: RhymeConfig{
			CacheTTL: getEnvAsDuration("RHYME_CACHE_TTL", 30*time.Minute),
		},
	}
}

// Validate reports configuration that makes the service unable to start.
func (c *Config) Validate() error {
	if c.Gemini.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if minutes := getEnvAsInt(key, -1); minutes >= 0 {
		return time.Duration(minutes) * time.Minute
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
