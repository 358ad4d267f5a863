// Package config provides configuration management for the application.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type Config struct {
	Logging  LoggingConfig
	Database DatabaseConfig
	Server   ServerConfig
	YouTube  YouTubeConfig
	AI       AIConfig
	Scoring  ScoringConfig
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Port            int
	ShutdownTimeout time.Duration
}

// DatabaseConfig contains database connection configuration.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type DatabaseConfig struct {
	Host           string
	Name           string
	User           string
	Password       string
	SSLMode        string
	Port           int
	MaxConnections int
	MinConnections int
	MaxIdleTime    time.Duration
	MaxLifetime    time.Duration
}

// YouTubeConfig contains the video search provider configuration.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type YouTubeConfig struct {
	APIKey         string
	Region         string
	Timeout        time.Duration
	DefaultResults int
	SerpResults    int
}

// AIConfig contains the generative text provider configuration.
type AIConfig struct {
	APIKey string
	Model  string
}

// ScoringConfig contains tunables for the scoring and suggestion engine.
type ScoringConfig struct {
	EntityTopK      int
	HashtagCap      int
	HashtagFeedCap  int
	LibraryPageSize int
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level string
	File  string
}

// Load loads configuration from .env, config file and environment variables.
func Load() (*Config, error) {
	// Best effort: a missing .env is fine, real env vars still apply.
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvPrefix("APP")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found, use defaults and env vars
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Conventional key names from .env take precedence over the config file.
	if v := os.Getenv("YOUTUBE_API_KEY"); v != "" {
		cfg.YouTube.APIKey = v
	}
	if v := os.Getenv("GOOGLE_API_KEY"); v != "" {
		cfg.AI.APIKey = v
	}

	return &cfg, nil
}

func setDefaults() {
	// Server
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.shutdowntimeout", 30*time.Second)

	// Database
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.name", "seo_assistant")
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.password", "postgres")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("database.maxconnections", 10)
	viper.SetDefault("database.minconnections", 5)
	viper.SetDefault("database.maxidletime", 10*time.Minute)
	viper.SetDefault("database.maxlifetime", 1*time.Hour)

	// YouTube Data API
	viper.SetDefault("youtube.apikey", "")
	viper.SetDefault("youtube.region", "US")
	viper.SetDefault("youtube.timeout", 10*time.Second)
	viper.SetDefault("youtube.defaultresults", 10)
	viper.SetDefault("youtube.serpresults", 15)

	// Generative AI
	viper.SetDefault("ai.apikey", "")
	viper.SetDefault("ai.model", "gemini-2.5-flash")

	// Scoring engine
	viper.SetDefault("scoring.entitytopk", 10)
	viper.SetDefault("scoring.hashtagcap", 6)
	viper.SetDefault("scoring.hashtagfeedcap", 15)
	viper.SetDefault("scoring.librarypagesize", 10)

	// Logging
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.file", "")
}
