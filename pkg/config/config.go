// Package config loads the example CLI configuration from environment
// variables, with an optional .env file for local development.
package config

import (
	"errors"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the CLI configuration.
type Config struct {
	Token   string
	BaseURL string
	Timeout time.Duration
}

// LoadConfig reads configuration from the environment and a .env file if one
// is present. FIO_TOKEN is mandatory; everything else has defaults.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("FIO_TOKEN", "")
	viper.SetDefault("FIO_BASE_URL", "https://fioapi.fio.cz/v1/rest")
	viper.SetDefault("FIO_TIMEOUT", "30s")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Token = viper.GetString("FIO_TOKEN")
	if cfg.Token == "" {
		return nil, errors.New("FIO_TOKEN environment variable not set")
	}

	cfg.BaseURL = viper.GetString("FIO_BASE_URL")

	timeoutStr := viper.GetString("FIO_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		timeout = 30 * time.Second
		log.Printf("Warning: Invalid value for FIO_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
	}
	cfg.Timeout = timeout

	return cfg, nil
}
