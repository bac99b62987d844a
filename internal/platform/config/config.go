package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// DeleteAuthCode must accompany destructive operations (bill and journal
	// entry deletes). Empty disables the check, intended for development only.
	DeleteAuthCode string

	// RateLimit uses the ulule/limiter format, e.g. "100-M" for 100
	// requests per minute per client IP.
	RateLimit string

	// CORSAllowOrigins is a comma-separated origin list; "*" allows all.
	CORSAllowOrigins string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("DELETE_AUTH_CODE", "")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:      viper.GetString("PGSQL_URL"),
		Port:             viper.GetString("PORT"),
		IsProduction:     viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:    viper.GetBool("ENABLE_DB_CHECK"),
		DeleteAuthCode:   viper.GetString("DELETE_AUTH_CODE"),
		RateLimit:        viper.GetString("RATE_LIMIT"),
		CORSAllowOrigins: viper.GetString("CORS_ALLOW_ORIGINS"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.DeleteAuthCode == "" {
		log.Println("Warning: DELETE_AUTH_CODE not set. Destructive operations will not require a code.")
	}

	return cfg, nil
}
