package main

import (
	"fmt"
	"os"
	"time"

	"github.com/blueline/fantasyhockey/go/internal/outbox"
	"gopkg.in/yaml.v3"
)

// Config is the application config file. Database settings stay in the
// environment (see dbconfig); everything else lives here.
type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	NATS struct {
		URL           string `yaml:"url"`
		SubjectPrefix string `yaml:"subject_prefix"`
	} `yaml:"nats"`
	Outbox struct {
		PollIntervalSeconds int   `yaml:"poll_interval_seconds"`
		BatchSize           int32 `yaml:"batch_size"`
		MaxRetries          int   `yaml:"max_retries"`
	} `yaml:"outbox"`
}

func defaultConfig() *Config {
	var cfg Config
	cfg.Server.Port = 8080
	cfg.NATS.SubjectPrefix = "fantasyhockey"
	return &cfg
}

// loadConfig reads the yaml config file, falling back to defaults when the
// file does not exist
func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return defaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func (c *Config) outboxConfig() outbox.Config {
	worker := outbox.DefaultConfig()
	if c.Outbox.PollIntervalSeconds > 0 {
		worker.PollInterval = time.Duration(c.Outbox.PollIntervalSeconds) * time.Second
	}
	if c.Outbox.BatchSize > 0 {
		worker.BatchSize = c.Outbox.BatchSize
	}
	if c.Outbox.MaxRetries > 0 {
		worker.MaxRetries = c.Outbox.MaxRetries
	}
	return worker
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
