package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Telegram credentials.
	BotToken string `mapstructure:"BOT_TOKEN"`
	AdminID  int64  `mapstructure:"ADMIN_ID"`

	// Base working window and slot step.
	BaseStart   string `mapstructure:"BASE_START"`
	BaseEnd     string `mapstructure:"BASE_END"`
	SlotStepMin int    `mapstructure:"SLOT_STEP_MIN"`

	// Rolling window of future dates open for booking.
	BookingHorizonDays int `mapstructure:"BOOKING_HORIZON_DAYS"`

	// Persistence.
	DataFile string `mapstructure:"DATA_FILE"`
	LockFile string `mapstructure:"LOCK_FILE"`

	// Cron spec for the morning digest sent to the admin.
	DigestCron string `mapstructure:"DIGEST_CRON"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("BOT_TOKEN", "")
	viper.SetDefault("ADMIN_ID", 0)
	viper.SetDefault("BASE_START", "08:00")
	viper.SetDefault("BASE_END", "20:00")
	viper.SetDefault("SLOT_STEP_MIN", 30)
	viper.SetDefault("BOOKING_HORIZON_DAYS", 14)
	viper.SetDefault("DATA_FILE", "data.json")
	viper.SetDefault("LOCK_FILE", "bot.lock")
	viper.SetDefault("DIGEST_CRON", "0 8 * * *")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// Validate checks the values a running bot cannot do without.
func (c Config) Validate() error {
	if c.BotToken == "" {
		return fmt.Errorf("BOT_TOKEN is required")
	}
	if c.AdminID == 0 {
		return fmt.Errorf("ADMIN_ID is required")
	}
	if c.SlotStepMin <= 0 {
		return fmt.Errorf("SLOT_STEP_MIN must be positive, got %d", c.SlotStepMin)
	}
	if c.BookingHorizonDays <= 0 {
		return fmt.Errorf("BOOKING_HORIZON_DAYS must be positive, got %d", c.BookingHorizonDays)
	}
	return nil
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
