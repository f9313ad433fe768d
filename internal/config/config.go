// Package config provides centralized configuration management for the application.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// DefaultModel is the completion model used when OPENROUTER_MODEL is unset.
const DefaultModel = "anthropic/claude-3.5-sonnet"

// Config holds all configuration parameters for the application.
type Config struct {
	GitHub     GitHubConfig
	OpenRouter OpenRouterConfig
}

// GitHubConfig holds GitHub specific configuration.
type GitHubConfig struct {
	Token string
	Owner string
	Repo  string
}

// OpenRouterConfig holds OpenRouter specific configuration.
type OpenRouterConfig struct {
	APIKey string
	Model  string
}

// LoadConfig initializes and loads configuration from environment
// variables, optionally layered over an env-format config file. The
// returned configuration is immutable for the process lifetime.
func LoadConfig(configFile string) (*Config, error) {
	// Initialize Viper for environment variables. The lookup keys are the
	// lowercased variable names so that values read from an env-format
	// config file land on the same keys the environment bindings use;
	// environment variables take precedence over the file.
	v := viper.New()
	v.AutomaticEnv()

	// Map specific environment variables
	v.BindEnv("github_token", "GITHUB_TOKEN")
	v.BindEnv("repo_owner", "REPO_OWNER")
	v.BindEnv("repo_name", "REPO_NAME")
	v.BindEnv("openrouter_api_key", "OPENROUTER_API_KEY")
	v.BindEnv("openrouter_model", "OPENROUTER_MODEL")

	v.SetDefault("openrouter_model", DefaultModel)

	// Layer in an explicit config file (dotenv format) when provided
	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	// Create config structure
	config := &Config{
		GitHub: GitHubConfig{
			Token: v.GetString("github_token"),
			Owner: v.GetString("repo_owner"),
			Repo:  v.GetString("repo_name"),
		},
		OpenRouter: OpenRouterConfig{
			APIKey: v.GetString("openrouter_api_key"),
			Model:  v.GetString("openrouter_model"),
		},
	}

	// Validate configuration
	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// validateConfig ensures that all required configuration values are provided.
func validateConfig(config *Config) error {
	var missingVars []string

	if config.GitHub.Token == "" {
		missingVars = append(missingVars, "GITHUB_TOKEN")
	}
	if config.GitHub.Owner == "" {
		missingVars = append(missingVars, "REPO_OWNER")
	}
	if config.GitHub.Repo == "" {
		missingVars = append(missingVars, "REPO_NAME")
	}

	if len(missingVars) > 0 {
		return fmt.Errorf("missing required environment variables: %v", missingVars)
	}

	return nil
}

// HasOpenRouter reports whether the content rewrite feature is configured.
func (c *Config) HasOpenRouter() bool {
	return c.OpenRouter.APIKey != ""
}

// Repository returns the configured repository in "owner/name" form.
func (c *Config) Repository() string {
	return c.GitHub.Owner + "/" + c.GitHub.Repo
}
