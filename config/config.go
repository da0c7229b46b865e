package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// BanquetPro specifics
	Store          StoreConfig
	GoogleCalendar GoogleCalendarConfig
	Cache          CacheConfig
	RateLimit      RateLimitConfig
	Analytics      AnalyticsConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// StoreConfig points at the external banquet data store.
type StoreConfig struct {
	URL         string
	AccessToken string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
	Timezone        string
}

type CacheConfig struct {
	TTL time.Duration
}

type RateLimitConfig struct {
	MutationsPerMin int
}

type AnalyticsConfig struct {
	MonthsBack          int
	UpcomingHorizonDays int
	LeaderboardSize     int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Data store
	cfg.Store.URL = viper.GetString("store.url")
	cfg.Store.AccessToken = viper.GetString("store.access_token")
	if storeURL := viper.GetString("store_url"); storeURL != "" {
		cfg.Store.URL = storeURL
	}
	if storeToken := viper.GetString("store_access_token"); storeToken != "" {
		cfg.Store.AccessToken = storeToken
	}
	if cfg.Store.URL == "" {
		return nil, fmt.Errorf("store.url is required")
	}

	// Google Calendar (optional)
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.Timezone = viper.GetString("google_calendar.timezone")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Caching & rate limiting
	cfg.Cache.TTL = viper.GetDuration("cache.ttl")
	cfg.RateLimit.MutationsPerMin = viper.GetInt("rate_limit.mutations_per_min")

	// Analytics windows
	cfg.Analytics.MonthsBack = viper.GetInt("analytics.months_back")
	cfg.Analytics.UpcomingHorizonDays = viper.GetInt("analytics.upcoming_horizon_days")
	cfg.Analytics.LeaderboardSize = viper.GetInt("analytics.leaderboard_size")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("google_calendar.timezone", "UTC")
	viper.SetDefault("cache.ttl", "30s")
	viper.SetDefault("rate_limit.mutations_per_min", 60)
	viper.SetDefault("analytics.months_back", 12)
	viper.SetDefault("analytics.upcoming_horizon_days", 30)
	viper.SetDefault("analytics.leaderboard_size", 5)
}
