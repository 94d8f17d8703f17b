package config

import "fmt"

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// GetAddr returns the listen address in host:port form
func (c *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DatabaseConfig holds the embedded sqlite settings
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LoggerConfig holds logging settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// AuthConfig holds the API key guard settings.
// Enabled defaults to false: all mutating endpoints are open unless a
// deployment explicitly turns the guard on and sets a key.
type AuthConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	APIKey  string `mapstructure:"api_key"`
}

// CORSConfig holds the allowed origin list. A single "*" entry allows any
// origin.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// RateLimitConfig holds fixed-window rate limiter settings
type RateLimitConfig struct {
	Requests      int `mapstructure:"requests"`
	WindowSeconds int `mapstructure:"window_seconds"`
}

// ExportConfig holds the directory monthly reports are written to
type ExportConfig struct {
	Dir string `mapstructure:"dir"`
}

// StaticConfig holds the optional frontend build directory served at /
type StaticConfig struct {
	Dir string `mapstructure:"dir"`
}
