// Package config loads the serpsim configuration file and applies
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/leofalp/serpsim/core/chat"
	"github.com/leofalp/serpsim/core/research"
)

type Config struct {
	APIKey  string `yaml:"api_key,omitempty"`
	BaseURL string `yaml:"base_url,omitempty"`

	Models    research.Models `yaml:"models"`
	ChatModel string          `yaml:"chat_model"`

	Timeout     time.Duration `yaml:"timeout"`
	MaxRetries  int           `yaml:"max_retries"`
	RateLimit   float64       `yaml:"rate_limit,omitempty"` // requests per second, 0 = unlimited
	ChatHistory int           `yaml:"chat_history,omitempty"`
	RepairJSON  bool          `yaml:"repair_json"`
	Defaults    Defaults      `yaml:"defaults"`

	Log LogConfig `yaml:"log"`
}

// Defaults pre-fill the search flags.
type Defaults struct {
	Market   string `yaml:"market"`
	Device   string `yaml:"device"`
	Language string `yaml:"language"`
}

type LogConfig struct {
	Format string `yaml:"format,omitempty"`
	Level  string `yaml:"level,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Models:     research.DefaultModels(),
		ChatModel:  chat.DefaultModel,
		Timeout:    2 * time.Minute,
		MaxRetries: 2,
		Defaults:   Defaults{Market: "br", Device: "desktop", Language: "pt"},
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "serpsim"), nil
}

// ConfigPath honours SERPSIM_CONFIG before the default location.
func ConfigPath() (string, error) {
	if path := os.Getenv("SERPSIM_CONFIG"); path != "" {
		return path, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config file over the defaults and applies the environment.
// A missing file is not an error.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile is Load for an explicit path.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, cfg.validate()
}

func (c *Config) applyEnv() {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("GEMINI_API_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("SERPSIM_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv("SERPSIM_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

func (c *Config) validate() error {
	if c.Timeout < 0 || c.MaxRetries < 0 || c.RateLimit < 0 || c.ChatHistory < 0 {
		return errors.New("config: timeout, max_retries, rate_limit and chat_history must not be negative")
	}
	if _, ok := research.LookupMarket(c.Defaults.Market); !ok {
		return fmt.Errorf("config: unknown default market %q", c.Defaults.Market)
	}
	return nil
}

// Save writes the config to ConfigPath. The API key is never written.
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	clean := *c
	clean.APIKey = ""
	data, err := yaml.Marshal(&clean)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
