package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config represents application configuration
type Config struct {
	Book     BookConfig     `mapstructure:"book" yaml:"book"`
	Calendar CalendarConfig `mapstructure:"calendar" yaml:"calendar"`
	Daemon   DaemonConfig   `mapstructure:"daemon" yaml:"daemon"`
}

// BookConfig represents address book storage configuration
type BookConfig struct {
	File              string `mapstructure:"file" yaml:"file"`
	DefaultWindowDays int    `mapstructure:"default_window_days" yaml:"default_window_days"`
}

// CalendarConfig represents day-off calendar configuration
type CalendarConfig struct {
	Type     string `mapstructure:"type" yaml:"type"`           // "weekday" or "isdayoff"
	Country  string `mapstructure:"country" yaml:"country"`     // ISO code for isdayoff.ru (ru, ua, kz, by, us)
	CacheTTL string `mapstructure:"cache_ttl" yaml:"cache_ttl"` // Go duration string
}

// DaemonConfig represents reminder daemon configuration
type DaemonConfig struct {
	DailyTime  string `mapstructure:"daily_time" yaml:"daily_time"` // HH:MM local time
	LogFile    string `mapstructure:"log_file" yaml:"log_file"`
	LogLevel   string `mapstructure:"log_level" yaml:"log_level"`
	SystemTray bool   `mapstructure:"system_tray" yaml:"system_tray"` // Show system tray icon (Windows only)
}

// Default returns the configuration used when no config file exists
func Default() *Config {
	return &Config{
		Book: BookConfig{
			File:              "addressbook.json",
			DefaultWindowDays: 7,
		},
		Calendar: CalendarConfig{
			Type: "weekday",
		},
		Daemon: DaemonConfig{
			DailyTime: "09:00",
			LogLevel:  "info",
		},
	}
}

// Load loads configuration from file. A missing file falls back to
// defaults; a present but malformed file is an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.contact-book-bot")
		v.AddConfigPath("/etc/contact-book-bot")
	}

	v.SetDefault("book.file", "addressbook.json")
	v.SetDefault("book.default_window_days", 7)
	v.SetDefault("calendar.type", "weekday")
	v.SetDefault("daemon.daily_time", "09:00")
	v.SetDefault("daemon.log_level", "info")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && configPath == "" {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Book.File == "" {
		return fmt.Errorf("book.file is required")
	}
	if c.Book.DefaultWindowDays < 0 {
		return fmt.Errorf("book.default_window_days must not be negative")
	}

	switch c.Calendar.Type {
	case "", "weekday":
	case "isdayoff":
		if c.Calendar.Country == "" {
			return fmt.Errorf("calendar.country is required for isdayoff type")
		}
	default:
		return fmt.Errorf("calendar.type must be 'weekday' or 'isdayoff', got '%s'", c.Calendar.Type)
	}

	if c.Daemon.DailyTime != "" {
		if _, _, err := parseDailyTime(c.Daemon.DailyTime); err != nil {
			return fmt.Errorf("daemon.daily_time: %w", err)
		}
	}

	return nil
}

// GetCacheTTL returns the calendar cache TTL duration
func (c *CalendarConfig) GetCacheTTL() time.Duration {
	if c.CacheTTL == "" {
		return 24 * time.Hour
	}
	duration, err := time.ParseDuration(c.CacheTTL)
	if err != nil {
		return 24 * time.Hour
	}
	return duration
}

// GetDailyTime returns the configured daily reminder time.
// Returns hour and minute (0-23, 0-59). Default: 09:00
func (c *DaemonConfig) GetDailyTime() (hour, minute int) {
	hour, minute, err := parseDailyTime(c.DailyTime)
	if err != nil {
		return 9, 0
	}
	return hour, minute
}

func parseDailyTime(value string) (hour, minute int, err error) {
	if value == "" {
		return 9, 0, nil
	}

	var h, m int
	if _, err := fmt.Sscanf(value, "%d:%d", &h, &m); err != nil {
		return 0, 0, fmt.Errorf("expected HH:MM, got %q", value)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0, fmt.Errorf("time %q out of range", value)
	}
	return h, m, nil
}
