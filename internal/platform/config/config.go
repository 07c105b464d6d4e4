package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"
)

const (
	defaultPort              = "8080"
	defaultChatModel         = "gemini-3-pro-preview"
	defaultInsightModel      = "gemini-3-flash-preview"
	defaultInsightSampleSize = 50
	defaultAIRateLimit       = "20-M"
	defaultCORSOrigins       = "http://localhost:3000"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// AI service
	GeminiAPIKey      string
	ChatModel         string
	InsightModel      string
	InsightSampleSize int
	AIRateLimit       string // ulule formatted rate, e.g. "20-M"

	CORSAllowedOrigins []string
	LoadDemoOnStart    bool
}

// HasAIKey reports whether an API key for the AI service is configured.
func (c *Config) HasAIKey() bool {
	return c.GeminiAPIKey != ""
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("API_KEY", "")
	v.SetDefault("GEMINI_CHAT_MODEL", defaultChatModel)
	v.SetDefault("GEMINI_INSIGHT_MODEL", defaultInsightModel)
	v.SetDefault("INSIGHT_SAMPLE_SIZE", defaultInsightSampleSize)
	v.SetDefault("AI_RATE_LIMIT", defaultAIRateLimit)
	v.SetDefault("CORS_ALLOWED_ORIGINS", defaultCORSOrigins)
	v.SetDefault("LOAD_DEMO_ON_START", true)

	// Environment variables override the defaults (and anything loaded from .env).
	v.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = defaultPort
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = v.GetBool("IS_PRODUCTION")

	cfg.GeminiAPIKey = v.GetString("GEMINI_API_KEY")
	if cfg.GeminiAPIKey == "" {
		cfg.GeminiAPIKey = v.GetString("API_KEY")
	}
	if cfg.GeminiAPIKey == "" {
		log.Println("Warning: GEMINI_API_KEY not set. AI chat and insights will use fallback responses.")
	}

	cfg.ChatModel = v.GetString("GEMINI_CHAT_MODEL")
	if cfg.ChatModel == "" {
		cfg.ChatModel = defaultChatModel
	}
	cfg.InsightModel = v.GetString("GEMINI_INSIGHT_MODEL")
	if cfg.InsightModel == "" {
		cfg.InsightModel = defaultInsightModel
	}

	cfg.InsightSampleSize = v.GetInt("INSIGHT_SAMPLE_SIZE")
	if cfg.InsightSampleSize <= 0 {
		log.Printf("Warning: Invalid value for INSIGHT_SAMPLE_SIZE ('%s'). Defaulting to %d.\n", v.GetString("INSIGHT_SAMPLE_SIZE"), defaultInsightSampleSize)
		cfg.InsightSampleSize = defaultInsightSampleSize
	}

	cfg.AIRateLimit = v.GetString("AI_RATE_LIMIT")
	if _, err := limiter.NewRateFromFormatted(cfg.AIRateLimit); err != nil {
		log.Printf("Warning: Invalid value for AI_RATE_LIMIT ('%s'). Defaulting to %s.\n", cfg.AIRateLimit, defaultAIRateLimit)
		cfg.AIRateLimit = defaultAIRateLimit
	}

	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{defaultCORSOrigins}
	}

	cfg.LoadDemoOnStart = v.GetBool("LOAD_DEMO_ON_START")

	return cfg, nil
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
