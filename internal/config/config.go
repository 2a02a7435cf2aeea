package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Config stores runtime configuration loaded from environment variables.
type Config struct {
	Env            string
	Port           string
	AllowedOrigins []string

	Provider       string
	GeminiKey      string
	GeminiModel    string
	OpenAIKey      string
	OpenAIEndpoint string
	OpenAIModel    string

	Database          string
	CompletionTimeout time.Duration
	SessionTTL        time.Duration
	ArtifactTTL       time.Duration
	MaxUploadBytes    int64

	RatePerSecond float64
	RateBurst     int
	DailyQuota    int64
}

// Load reads .env.local / .env if present and then the process environment.
func Load() Config {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()

	cfg := Config{
		Env:            os.Getenv("ENV"),
		Port:           getEnv("PORT", "8080"),
		Provider:       strings.ToLower(getEnv("LLM_PROVIDER", ProviderGemini)),
		GeminiKey:      os.Getenv("GEMINI_API_KEY"),
		GeminiModel:    getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		OpenAIEndpoint: getEnv("OPENAI_API_ENDPOINT", "https://api.openai.com/v1"),
		OpenAIModel:    getEnv("OPENAI_MODEL", "gpt-4o-mini"),

		Database:          getEnv("DATABASE_PATH", "./data/studybuddy.db"),
		CompletionTimeout: getDuration("COMPLETION_TIMEOUT", 60*time.Second),
		SessionTTL:        getDuration("SESSION_TTL", 2*time.Hour),
		ArtifactTTL:       getDuration("ARTIFACT_TTL", 24*time.Hour),
		MaxUploadBytes:    int64(getInt("MAX_UPLOAD_BYTES", 10<<20)),

		RatePerSecond: getFloat("RATE_LIMIT_PER_SECOND", 1),
		RateBurst:     getInt("RATE_LIMIT_BURST", 5),
		DailyQuota:    int64(getInt("DAILY_QUOTA", 1000)),
	}

	if extra := os.Getenv("ALLOWED_ORIGINS"); extra != "" {
		for _, origin := range strings.Split(extra, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
			}
		}
	}
	return cfg
}

// IsProduction reports whether ENV selects production mode.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return i
}

func getFloat(key string, fallback float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

// getDuration accepts Go duration strings ("90s") or a bare number of seconds.
func getDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
