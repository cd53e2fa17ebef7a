package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bryanwahyu/contract-review/internal/domain/contract"
)

type Config struct {
	Server struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"readTimeout"`
		WriteTimeout    time.Duration `yaml:"writeTimeout"`
		ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
	} `yaml:"server"`

	OpenAI struct {
		APIKey  string `yaml:"apiKey"`
		Model   string `yaml:"model"`
		BaseURL string `yaml:"baseURL"`
	} `yaml:"openai"`

	Upload struct {
		MaxFileBytes    int64 `yaml:"maxFileBytes"`
		MaxRequestBytes int64 `yaml:"maxRequestBytes"`
	} `yaml:"upload"`

	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowedOrigins"`
	} `yaml:"cors"`

	Analysis struct {
		SchemaCheck bool `yaml:"schemaCheck"`
	} `yaml:"analysis"`
}

// Default returns the configuration used when no file or env overrides exist.
func Default() *Config {
	var cfg Config
	cfg.Server.Port = 8080
	cfg.Server.ReadTimeout = 30 * time.Second
	cfg.Server.WriteTimeout = 120 * time.Second
	cfg.Server.ShutdownTimeout = 5 * time.Second
	cfg.Upload.MaxFileBytes = contract.MaxUploadBytes
	cfg.Upload.MaxRequestBytes = 4 * contract.MaxUploadBytes
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.CORS.AllowedOrigins = []string{"*"}
	return &cfg
}

// Load reads the YAML file at path on top of the defaults, then applies env overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.OpenAI.APIKey = v
	}
	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		c.OpenAI.Model = v
	}
	if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
		c.OpenAI.BaseURL = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		c.CORS.AllowedOrigins = splitList(v)
	}
	return nil
}

// Validate checks the settings the server cannot start without.
func (c *Config) Validate() error {
	if c.OpenAI.APIKey == "" {
		return errors.New("openai api key is required (set OPENAI_API_KEY)")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Upload.MaxFileBytes <= 0 {
		return errors.New("upload.maxFileBytes must be positive")
	}
	if c.Upload.MaxRequestBytes < c.Upload.MaxFileBytes {
		return errors.New("upload.maxRequestBytes must not be smaller than upload.maxFileBytes")
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
