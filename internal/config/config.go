package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "DISKSPACE"

// Config holds all application configuration. Nothing here changes which
// volume is queried.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	Query  QueryConfig  `yaml:"query"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string        `yaml:"host" envconfig:"HOST"`
	Port         int           `yaml:"port" envconfig:"PORT"`
	ReadTimeout  time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level   string `yaml:"level" envconfig:"LEVEL"`
	Console bool   `yaml:"console" envconfig:"CONSOLE"`
}

// QueryConfig bounds how long a single capacity query may take.
type QueryConfig struct {
	Timeout time.Duration `yaml:"timeout" envconfig:"TIMEOUT"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Log: LogConfig{
			Level:   "info",
			Console: true,
		},
		Query: QueryConfig{
			Timeout: 10 * time.Second,
		},
	}
}

// Load reads configuration from defaults, then the file, then environment
// variables. Later sources override earlier ones.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// Validate checks that configuration values are usable.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}
	if strings.TrimSpace(c.Server.Host) == "" {
		return fmt.Errorf("server host is required")
	}
	if c.Query.Timeout <= 0 {
		return fmt.Errorf("query timeout must be positive")
	}
	return nil
}

// Address returns the server address in host:port format.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
