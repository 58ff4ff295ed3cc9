package config

import (
	"os"

	"github.com/backfireIBGM/RocketInfo/service"
	"github.com/joho/godotenv"
	openai "github.com/sashabaranov/go-openai"
)

type Config struct {
	Port    string
	GinMode string

	LaunchFeedURL string

	OpenAIAPIKey  string
	OpenAIBaseURL string
	Model         string
}

// Load reads .env (if present) then the process environment. Variables
// already set in the environment win over the file.
func Load(envFile string) (Config, error) {
	envErr := godotenv.Load(envFile)

	cfg := Config{
		Port:          getEnv("PORT", "9000"),
		GinMode:       getEnv("GIN_MODE", "release"),
		LaunchFeedURL: getEnv("ROCKET_LAUNCH_FEED_URL", service.DefaultLaunchFeedURL),
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		Model:         getEnv("OPENAI_MODEL", openai.GPT4o),
	}
	return cfg, envErr
}

// Validate reports a missing API key. Callers log it and keep serving.
func (c Config) Validate() error {
	if c.OpenAIAPIKey == "" {
		return &service.ConfigurationError{Err: service.ErrMissingAPIKey}
	}
	return nil
}

func (c Config) Chat() service.ChatConfig {
	return service.ChatConfig{
		APIKey:  c.OpenAIAPIKey,
		Model:   c.Model,
		BaseURL: c.OpenAIBaseURL,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
