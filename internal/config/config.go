package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/medware/medassist/internal/risk"
)

// Config is built once at process start and passed by reference; nothing
// reads the environment after Load returns.
type Config struct {
	Port        string
	DatabaseURL string
	EnableDB    bool

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	EnableRedis   bool

	JWTSecret      string
	AccessTokenTTL time.Duration

	// LLM chat completion (OpenAI-compatible endpoint). When the key is
	// empty the chat service uses the rule-based responder only.
	LLMAPIKey  string
	LLMBaseURL string
	LLMModel   string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	EmailFrom    string

	// Voice/speech service endpoint; empty disables the wrapper.
	VoiceServiceURL string
	VoiceAPIKey     string

	Risk risk.Config

	LogLevel  string
	LogFormat string
}

// Load reads configuration from the environment (and .env if present).
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		EnableDB:    strings.EqualFold(getEnv("ENABLE_DB", "true"), "true"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		EnableRedis:   strings.EqualFold(getEnv("ENABLE_REDIS", "false"), "true"),

		JWTSecret:      getEnv("JWT_SECRET", ""),
		AccessTokenTTL: time.Duration(getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 60)) * time.Minute,

		LLMAPIKey:  os.Getenv("LLM_API_KEY"),
		LLMBaseURL: os.Getenv("LLM_BASE_URL"),
		LLMModel:   getEnv("LLM_MODEL", "gpt-4o-mini"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		EmailFrom:    os.Getenv("EMAIL_FROM"),

		VoiceServiceURL: os.Getenv("VOICE_SERVICE_URL"),
		VoiceAPIKey:     os.Getenv("VOICE_API_KEY"),

		Risk: risk.Config{
			HasTrainedModel:   strings.EqualFold(getEnv("HAS_TRAINED_MODEL", "false"), "true"),
			AlzheimerStrategy: risk.AlzheimerStrategy(getEnv("ALZHEIMER_STRATEGY", string(risk.StrategyBanded))),
			HeartLabelVariant: risk.HeartLabelVariant(getEnv("HEART_LABEL_VARIANT", string(risk.VariantHybrid))),
		},

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}

	if cfg.EmailFrom == "" {
		cfg.EmailFrom = cfg.SMTPUser
	}

	if cfg.EnableDB && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required when ENABLE_DB=true")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	switch cfg.Risk.AlzheimerStrategy {
	case risk.StrategyBanded, risk.StrategyContinuous:
	default:
		return nil, fmt.Errorf("invalid ALZHEIMER_STRATEGY %q", cfg.Risk.AlzheimerStrategy)
	}
	switch cfg.Risk.HeartLabelVariant {
	case risk.VariantHybrid, risk.VariantSimple:
	default:
		return nil, fmt.Errorf("invalid HEART_LABEL_VARIANT %q", cfg.Risk.HeartLabelVariant)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}
