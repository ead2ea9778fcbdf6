package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/xavierca1/ligue-outreach/internal/generation"
)

type Config struct {
	Port        string
	DatabaseURL string

	RabbitMQUser string
	RabbitMQPass string
	RabbitMQHost string
	RabbitMQPort string

	LLM generation.ProviderConfig

	MailFrom     string
	ExportDir    string
	FollowUpTick time.Duration
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	godotenv.Load()
	return FromEnv()
}

func FromEnv() (*Config, error) {
	tick, err := time.ParseDuration(getEnv("FOLLOWUP_TICK", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid FOLLOWUP_TICK: %w", err)
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		RabbitMQUser: getEnv("RABBITMQ_USER", "guest"),
		RabbitMQPass: getEnv("RABBITMQ_PASS", "guest"),
		RabbitMQHost: os.Getenv("RABBITMQ_HOST"),
		RabbitMQPort: getEnv("RABBITMQ_PORT", "5672"),

		LLM: generation.ProviderConfig{
			Provider: getEnv("LLM_PROVIDER", generation.ProviderOpenAI),
			Model:    os.Getenv("LLM_MODEL"),
			BaseURL:  os.Getenv("LLM_BASE_URL"),
			APIKey:   os.Getenv("OPENAI_API_KEY"),
		},

		MailFrom:     os.Getenv("MAIL_FROM"),
		ExportDir:    os.Getenv("EXPORT_DIR"),
		FollowUpTick: tick,
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
