package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port        int    `yaml:"port"`
		MetricsPort int    `yaml:"metrics_port"`
		JWTSecret   string `yaml:"jwt_secret"`
	} `yaml:"server"`

	Database struct {
		Driver string `yaml:"driver"`
		DSN    string `yaml:"dsn"`
	} `yaml:"database"`

	LLM struct {
		Provider    string  `yaml:"provider"` // openai (default) or github
		Model       string  `yaml:"model"`
		BaseURL     string  `yaml:"base_url"`
		Temperature float64 `yaml:"temperature"`
		APIKey      string  `yaml:"-"` // from OPENAI_API_KEY, never from file
	} `yaml:"llm"`

	Tools struct {
		MaxResults int `yaml:"max_results"`
	} `yaml:"tools"`

	Chat struct {
		MaxToolRounds int `yaml:"max_tool_rounds"`
		HistoryLimit  int `yaml:"history_limit"`
	} `yaml:"chat"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.Server.MetricsPort = 9090
	cfg.Database.Driver = "sqlite3"
	cfg.Database.DSN = "maitred.db"
	cfg.LLM.Model = "gpt-4o-mini"
	cfg.LLM.Temperature = 0.1
	cfg.Tools.MaxResults = 100
	cfg.Chat.MaxToolRounds = 5
	cfg.Chat.HistoryLimit = 20
	return cfg
}

// Load reads the configuration file, applying defaults for anything
// the file omits. A missing file is not an error; the defaults apply.
// Secrets come from the environment, never from the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
	if secret := os.Getenv("MAITRED_JWT_SECRET"); secret != "" {
		cfg.Server.JWTSecret = secret
	}

	return cfg, nil
}
