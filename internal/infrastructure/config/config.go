package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "github.com/EchoNews615/komibot/internal/shared/config"
)

type Config struct {
	Server    sharedConfig.ServerConfig    `mapstructure:"server"`
	Database  sharedConfig.DatabaseConfig  `mapstructure:"database"`
	Logger    sharedConfig.LoggerConfig    `mapstructure:"logger"`
	Auth      sharedConfig.AuthConfig      `mapstructure:"auth"`
	CORS      sharedConfig.CORSConfig      `mapstructure:"cors"`
	RateLimit sharedConfig.RateLimitConfig `mapstructure:"ratelimit"`
	Export    sharedConfig.ExportConfig    `mapstructure:"export"`
	Static    sharedConfig.StaticConfig    `mapstructure:"static"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from configs/config.yaml and KOMIBOT_*
// environment variables. A missing config file is not an error: every key
// has a default, and deployments may configure entirely via environment.
func Load(env string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../configs")

	viper.SetEnvPrefix("KOMIBOT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		viper.Set("server.mode", env)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 3000)
	viper.SetDefault("server.mode", "debug")

	viper.SetDefault("database.path", "data/mod.db")

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")
	viper.SetDefault("logger.output_path", "stdout")

	// Auth ships disabled; turning it on is an explicit operator decision.
	viper.SetDefault("auth.enabled", false)
	viper.SetDefault("auth.api_key", "")

	viper.SetDefault("cors.allowed_origins", []string{"*"})

	viper.SetDefault("ratelimit.requests", 200)
	viper.SetDefault("ratelimit.window_seconds", 60)

	viper.SetDefault("export.dir", "exports")
	viper.SetDefault("static.dir", "frontend_build")
}
