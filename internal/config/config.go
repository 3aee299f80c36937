package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPort       = "8080"
	DefaultAPIURL     = "http://localhost:8000/api/v1"
	DefaultAPITimeout = 30 * time.Second
	DefaultViewTTL    = 30 * time.Minute
	DefaultRedisURL   = "redis://localhost:6379/0"
)

type APIConfig struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
}

type ViewConfig struct {
	// Store is "memory" or "redis".
	Store    string        `yaml:"store"`
	TTL      time.Duration `yaml:"ttl"`
	RedisURL string        `yaml:"redis_url"`
}

type Config struct {
	Port     string     `yaml:"port"`
	LogLevel string     `yaml:"log_level"`
	API      APIConfig  `yaml:"api"`
	Views    ViewConfig `yaml:"views"`
}

func defaults() Config {
	return Config{
		Port:     DefaultPort,
		LogLevel: "info",
		API:      APIConfig{URL: DefaultAPIURL, Timeout: DefaultAPITimeout},
		Views:    ViewConfig{Store: "memory", TTL: DefaultViewTTL, RedisURL: DefaultRedisURL},
	}
}

// Load reads the optional YAML file at path (missing file is fine when
// path is empty), then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := defaults()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return cfg, fmt.Errorf("open config: %w", err)
		}
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			return cfg, fmt.Errorf("decode config: %w", err)
		}
	}
	if err := overrideFromEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.validate()
}

func overrideFromEnv(cfg *Config) error {
	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		cfg.LogLevel = lvl
	}
	if u := os.Getenv("API_URL"); u != "" {
		cfg.API.URL = u
	}
	if t := os.Getenv("API_TIMEOUT"); t != "" {
		d, err := time.ParseDuration(t)
		if err != nil {
			return fmt.Errorf("API_TIMEOUT: %w", err)
		}
		cfg.API.Timeout = d
	}
	if s := os.Getenv("VIEW_STORE"); s != "" {
		cfg.Views.Store = s
	}
	if t := os.Getenv("VIEW_TTL"); t != "" {
		d, err := time.ParseDuration(t)
		if err != nil {
			return fmt.Errorf("VIEW_TTL: %w", err)
		}
		cfg.Views.TTL = d
	}
	if u := os.Getenv("REDIS_URL"); u != "" {
		cfg.Views.RedisURL = u
	}
	return nil
}

func (c Config) validate() error {
	switch c.Views.Store {
	case "memory", "redis":
	default:
		return fmt.Errorf("unknown view store %q", c.Views.Store)
	}
	if c.API.URL == "" {
		return fmt.Errorf("api url is empty")
	}
	if c.Views.TTL <= 0 {
		return fmt.Errorf("view ttl must be positive")
	}
	return nil
}
