package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultActivityName is the activity tracked when none is configured
const DefaultActivityName = "League of Legends"

// EnvPrefix is prepended to every environment variable, e.g. JUDGEBOT_DISCORD_TOKEN
const EnvPrefix = "JUDGEBOT"

// Config holds the complete application configuration
type Config struct {
	Discord  DiscordConfig  `mapstructure:"discord"`
	Tracking TrackingConfig `mapstructure:"tracking"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

// DiscordConfig defines gateway credentials and command registration
type DiscordConfig struct {
	Token         string `mapstructure:"token"`
	ApplicationID string `mapstructure:"application_id"`
	GuildID       string `mapstructure:"guild_id"` // registers commands to one guild instead of globally
}

// TrackingConfig defines which activity is tracked
type TrackingConfig struct {
	ActivityName string `mapstructure:"activity_name"`
}

// StorageConfig defines the durable store backend
type StorageConfig struct {
	Type  string      `mapstructure:"type"` // bolt or redis
	Path  string      `mapstructure:"path"`
	Redis RedisConfig `mapstructure:"redis"`
}

// RedisConfig defines the redis connection used when Type is redis
type RedisConfig struct {
	Addr      string `mapstructure:"addr"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

// LoggingConfig defines logger level and output format
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or text
}

// MetricsConfig defines the prometheus endpoint, empty Addr disables it
type MetricsConfig struct {
	Addr string `mapstructure:"addr"`
}

// Storage backends
const (
	StorageBolt  = "bolt"
	StorageRedis = "redis"
)

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// Load reads configuration from defaults, an optional config file, an
// optional .env file and JUDGEBOT_ environment variables, in increasing
// order of precedence.
func Load(configPath string) (*Config, error) {
	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values. Every key needs a default
// so AutomaticEnv can override it during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("discord.token", "")
	v.SetDefault("discord.application_id", "")
	v.SetDefault("discord.guild_id", "")

	v.SetDefault("tracking.activity_name", DefaultActivityName)

	v.SetDefault("storage.type", StorageBolt)
	v.SetDefault("storage.path", "guilty_sinners.db")
	v.SetDefault("storage.redis.addr", "localhost:6379")
	v.SetDefault("storage.redis.password", "")
	v.SetDefault("storage.redis.db", 0)
	v.SetDefault("storage.redis.key_prefix", "judgebot:")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("metrics.addr", "")
}

func validate(cfg *Config) error {
	if strings.TrimSpace(cfg.Tracking.ActivityName) == "" {
		return &ConfigError{Field: "tracking.activity_name", Message: "tracking.activity_name is required"}
	}

	switch cfg.Storage.Type {
	case StorageBolt:
		if cfg.Storage.Path == "" {
			return &ConfigError{Field: "storage.path", Message: "storage.path is required for bolt storage"}
		}
	case StorageRedis:
		if cfg.Storage.Redis.Addr == "" {
			return &ConfigError{Field: "storage.redis.addr", Message: "storage.redis.addr is required for redis storage"}
		}
	default:
		return &ConfigError{Field: "storage.type", Message: fmt.Sprintf("unsupported storage type: %q", cfg.Storage.Type)}
	}

	return nil
}

// RequireToken reports a ConfigError when no gateway token is configured.
// Only commands that connect to the gateway need one.
func (c *Config) RequireToken() error {
	if c.Discord.Token == "" {
		return &ConfigError{Field: "discord.token", Message: "discord.token is required (set JUDGEBOT_DISCORD_TOKEN)"}
	}
	return nil
}
