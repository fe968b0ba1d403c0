package util

import (
	"fmt"
	"time"
	
	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	AllowedOrigins              []string      `mapstructure:"ALLOWED_ORIGINS"`
	DatabaseURL                 string        `mapstructure:"DATABASE_URL"`
	HTTPServerAddress           string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	TokenSecretKey              string        `mapstructure:"TOKEN_SECRET_KEY"`
	RedisServerAddress          string        `mapstructure:"REDIS_SERVER_ADDRESS"`
	NotificationPollInterval    time.Duration `mapstructure:"NOTIFICATION_POLL_INTERVAL"`
	NotificationBufferSize      int           `mapstructure:"NOTIFICATION_BUFFER_SIZE"`
	NotificationRelayChannel    string        `mapstructure:"NOTIFICATION_RELAY_CHANNEL"`
	AsyncDispatch               bool          `mapstructure:"ASYNC_DISPATCH"`
	PickupReminderAfter         time.Duration `mapstructure:"PICKUP_REMINDER_AFTER"`
	PickupReminderCheckInterval time.Duration `mapstructure:"PICKUP_REMINDER_CHECK_INTERVAL"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	
	// Set defaults for non-sensitive config
	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})
	v.SetDefault("HTTP_SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("NOTIFICATION_POLL_INTERVAL", "5s")
	v.SetDefault("NOTIFICATION_BUFFER_SIZE", 16)
	v.SetDefault("NOTIFICATION_RELAY_CHANNEL", "notifications")
	v.SetDefault("ASYNC_DISPATCH", false)
	v.SetDefault("PICKUP_REMINDER_AFTER", "24h")
	v.SetDefault("PICKUP_REMINDER_CHECK_INTERVAL", "1h")
	
	// Prefer environment variables over config file
	v.AutomaticEnv()
	
	// Load config file
	v.SetConfigFile(path)
	v.SetConfigType("env")
	if err = v.ReadInConfig(); err != nil {
		return
	}
	
	// Unmarshal config into struct
	err = v.UnmarshalExact(&config)
	if err != nil {
		return
	}
	
	// Validate required configuration
	err = validateConfig(config)
	return
}

func validateConfig(config Config) error {
	if config.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if len(config.TokenSecretKey) < 32 {
		return fmt.Errorf("TOKEN_SECRET_KEY must be at least 32 characters")
	}
	if config.RedisServerAddress == "" {
		return fmt.Errorf("REDIS_SERVER_ADDRESS is required")
	}
	if config.NotificationPollInterval <= 0 {
		return fmt.Errorf("NOTIFICATION_POLL_INTERVAL must be positive")
	}
	if config.NotificationBufferSize <= 0 {
		return fmt.Errorf("NOTIFICATION_BUFFER_SIZE must be positive")
	}
	if config.PickupReminderCheckInterval <= 0 {
		return fmt.Errorf("PICKUP_REMINDER_CHECK_INTERVAL must be positive")
	}
	
	return nil
}
