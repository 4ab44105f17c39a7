package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the entire service configuration
type Config struct {
	Server ServerConfig `mapstructure:"server"`
}

// ServerConfig contains listener-level settings
type ServerConfig struct {
	// Port the HTTP listener binds to
	Port int `mapstructure:"port"`

	// ReadTimeout is the maximum duration (in seconds) for reading a request
	ReadTimeout int `mapstructure:"read_timeout"`

	// WriteTimeout is the maximum duration (in seconds) for writing a
	// response. ResponderAPI honours client-requested delays, so the default
	// is deliberately generous.
	WriteTimeout int `mapstructure:"write_timeout"`

	// IdleTimeout is the keep-alive idle limit (in seconds)
	IdleTimeout int `mapstructure:"idle_timeout"`

	// ShutdownTimeout bounds graceful shutdown (in seconds)
	ShutdownTimeout int `mapstructure:"shutdown_timeout"`
}

// Load reads configuration from config.yaml and environment variables.
// Environment variables take precedence and must carry the given prefix.
// Example: RESPONDERAPI_SERVER_PORT=9000
func Load(envPrefix string) (*Config, error) {
	v := viper.New()

	// Set config file settings
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	// Enable environment variable override
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 30)
	v.SetDefault("server.write_timeout", 300)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("server.shutdown_timeout", 30)

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// Config file is optional if all values are provided via env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Server.ReadTimeout <= 0 {
		return fmt.Errorf("server.read_timeout must be positive")
	}

	if c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("server.write_timeout must be positive")
	}

	if c.Server.IdleTimeout <= 0 {
		return fmt.Errorf("server.idle_timeout must be positive")
	}

	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive")
	}

	return nil
}
