package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Rules map[string]RuleConfig `yaml:"rules"`
}

// RuleConfig represents configuration for a specific rule
type RuleConfig struct {
	Disabled bool   `yaml:"disabled"`
	Severity string `yaml:"severity"`
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return &Config{Rules: make(map[string]RuleConfig)}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// AICredentials holds the Azure OpenAI connection settings used for
// AI-backed suggestions. All three values must be present for the AI
// path to be attempted.
type AICredentials struct {
	Endpoint   string
	APIKey     string
	Deployment string
}

// Configured reports whether the AI path can be attempted at all.
// Detected before any network call so a missing credential fails fast
// to the deterministic fallback.
func (c AICredentials) Configured() bool {
	return c.Endpoint != "" && c.APIKey != "" && c.Deployment != ""
}

// AICredentialsFromEnv reads Azure OpenAI settings from the environment.
func AICredentialsFromEnv() AICredentials {
	return AICredentials{
		Endpoint:   os.Getenv("AZURE_OPENAI_ENDPOINT"),
		APIKey:     os.Getenv("AZURE_OPENAI_API_KEY"),
		Deployment: os.Getenv("AZURE_OPENAI_DEPLOYMENT"),
	}
}
