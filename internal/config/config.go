package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const defaultPath = "config.json"

// Config represents runtime configuration for the service.
type Config struct {
	BasicConfig BasicConfig     `json:"basic_config" toml:"basic_config"`
	Provider    ProviderConfig  `json:"provider" toml:"provider"`
	RateLimit   RateLimitConfig `json:"rate_limit" toml:"rate_limit"`
	Redis       RedisConfig     `json:"redis" toml:"redis"`
}

type BasicConfig struct {
	ServerAddress  string   `json:"server_address" toml:"server_address"`
	MaxUploadMB    int64    `json:"max_upload_mb" toml:"max_upload_mb"`
	AllowedOrigins []string `json:"allowed_origins" toml:"allowed_origins"`
}

type ProviderConfig struct {
	Name    string `json:"name" toml:"name"`
	BaseURL string `json:"base_url" toml:"base_url"`
	Model   string `json:"model" toml:"model"`
	APIKey  string `json:"api_key" toml:"api_key"`
}

// RateLimitConfig applies to every rate-limited route, per client address.
type RateLimitConfig struct {
	Requests      int `json:"requests" toml:"requests"`
	WindowSeconds int `json:"window_seconds" toml:"window_seconds"`
}

type RedisConfig struct {
	Enabled  bool   `json:"enabled" toml:"enabled"`
	Host     string `json:"host" toml:"host"`
	Port     int    `json:"port" toml:"port"`
	Username string `json:"username" toml:"username"`
	Password string `json:"password" toml:"password"`
	DB       int    `json:"db" toml:"db"`
}

var supportedProviders = map[string]bool{"openai": true, "claude": true, "gemini": true}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		BasicConfig: BasicConfig{
			ServerAddress:  ":8000",
			MaxUploadMB:    10,
			AllowedOrigins: []string{"*"},
		},
		Provider: ProviderConfig{
			Name:  "openai",
			Model: "gpt-3.5-turbo",
		},
		RateLimit: RateLimitConfig{
			Requests:      5,
			WindowSeconds: 60,
		},
	}
}

// Load reads configuration from the provided path (defaults to config.json).
// A missing default file yields Default(); a missing explicit file is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}

	cfg := Default()
	data, err := os.ReadFile(absPath)
	switch {
	case err == nil:
		if err := decode(absPath, data, cfg); err != nil {
			return nil, err
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("open config %s: %w", absPath, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return fmt.Errorf("decode config: %w", err)
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("decode config: %w", err)
		}
	}
	return nil
}

// ApplyEnv loads .env (when present) and overlays environment variables on the config.
func (c *Config) ApplyEnv() {
	_ = godotenv.Load()

	if addr := os.Getenv("REPLYGEN_ADDR"); addr != "" {
		c.BasicConfig.ServerAddress = addr
	}
	if c.Provider.APIKey == "" {
		c.Provider.APIKey = os.Getenv(strings.ToUpper(c.Provider.Name) + "_API_KEY")
	}
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.BasicConfig.ServerAddress == "" {
		c.BasicConfig.ServerAddress = def.BasicConfig.ServerAddress
	}
	if c.BasicConfig.MaxUploadMB <= 0 {
		c.BasicConfig.MaxUploadMB = def.BasicConfig.MaxUploadMB
	}
	if len(c.BasicConfig.AllowedOrigins) == 0 {
		c.BasicConfig.AllowedOrigins = def.BasicConfig.AllowedOrigins
	}
	c.Provider.Name = strings.ToLower(strings.TrimSpace(c.Provider.Name))
	if c.Provider.Name == "" {
		c.Provider.Name = def.Provider.Name
	}
	if c.Provider.Model == "" {
		c.Provider.Model = def.Provider.Model
	}
	if c.RateLimit.WindowSeconds == 0 {
		c.RateLimit.WindowSeconds = def.RateLimit.WindowSeconds
	}
	if c.RateLimit.Requests == 0 {
		c.RateLimit.Requests = def.RateLimit.Requests
	}
	if c.Redis.Enabled && c.Redis.Port == 0 {
		c.Redis.Port = 6379
	}
}

// Validate reports configuration values the service cannot run with.
func (c *Config) Validate() error {
	if !supportedProviders[c.Provider.Name] {
		return fmt.Errorf("unsupported provider: %s", c.Provider.Name)
	}
	if c.RateLimit.Requests < 0 || c.RateLimit.WindowSeconds < 0 {
		return errors.New("rate_limit values must be positive")
	}
	if c.Redis.Enabled && c.Redis.Host == "" {
		return errors.New("redis.host must be configured when redis is enabled")
	}
	return nil
}

// MaxUploadBytes is the per-file upload limit in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return c.BasicConfig.MaxUploadMB << 20
}
