// Package config loads service configuration from the environment (with an
// optional .env file) and an optional yaml tuning file for the engine.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EngineConfig tunes the inference engine and the simulated latency.
type EngineConfig struct {
	Mode               string `yaml:"mode"`
	DiagnosisThreshold int    `yaml:"diagnosis_threshold"`
	DelayMinMS         int    `yaml:"delay_min_ms"`
	DelayMaxMS         int    `yaml:"delay_max_ms"`
}

// Config is the full service configuration.
type Config struct {
	Port          string
	OpenAIKey     string
	OpenAIModel   string
	TelegramToken string
	DoctorChatID  int64
	Engine        EngineConfig
}

// Load reads .env (when present), then the environment, then the optional
// yaml file named by ENGINE_CONFIG. Missing values fall back to defaults.
func Load() (*Config, error) {
	// A missing .env is fine; explicit env vars win anyway.
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   os.Getenv("OPENAI_MODEL"),
		TelegramToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		Engine: EngineConfig{
			Mode:               getEnv("ENGINE_MODE", "basic"),
			DiagnosisThreshold: 2,
			DelayMinMS:         1500,
			DelayMaxMS:         4500,
		},
	}

	if idStr := os.Getenv("DOCTOR_CHAT_ID"); idStr != "" {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid DOCTOR_CHAT_ID: %w", err)
		}
		cfg.DoctorChatID = id
	}

	if path := os.Getenv("ENGINE_CONFIG"); path != "" {
		if err := loadEngineFile(path, &cfg.Engine); err != nil {
			return nil, err
		}
	}

	if cfg.Engine.Mode != "basic" && cfg.Engine.Mode != "clinical" {
		return nil, fmt.Errorf("unknown engine mode %q", cfg.Engine.Mode)
	}
	if cfg.Engine.DiagnosisThreshold < 1 {
		return nil, fmt.Errorf("diagnosis_threshold must be >= 1, got %d", cfg.Engine.DiagnosisThreshold)
	}
	if cfg.Engine.DelayMaxMS < cfg.Engine.DelayMinMS {
		return nil, fmt.Errorf("delay_max_ms (%d) < delay_min_ms (%d)", cfg.Engine.DelayMaxMS, cfg.Engine.DelayMinMS)
	}

	return cfg, nil
}

func loadEngineFile(path string, engine *EngineConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read engine config: %w", err)
	}
	if err := yaml.Unmarshal(data, engine); err != nil {
		return fmt.Errorf("failed to parse engine config: %w", err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
