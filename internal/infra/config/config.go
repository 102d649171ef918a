package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	OKCBaseURL  string
	OKCUsername string
	OKCPassword string

	DatabaseURL string

	FetchConcurrency int // semaphore limit for parallel API fetches

	LogLevel    string
	Environment string

	CronSpecKPI             string // daily/weekly/monthly KPI snapshot refresh
	CronSpecPremium         string // current-period premium refresh
	CronSpecPremiumBackfill string // 6-month premium backfill
	CronSpecSL              string // service-level collection
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}

	cfg.OKCBaseURL = os.Getenv("OKC_BASE_URL")
	if cfg.OKCBaseURL == "" {
		return nil, fmt.Errorf("OKC_BASE_URL is not set")
	}

	cfg.OKCUsername = os.Getenv("OKC_USERNAME")
	if cfg.OKCUsername == "" {
		return nil, fmt.Errorf("OKC_USERNAME is not set")
	}

	cfg.OKCPassword = os.Getenv("OKC_PASSWORD")
	if cfg.OKCPassword == "" {
		return nil, fmt.Errorf("OKC_PASSWORD is not set")
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	concurrencyStr := os.Getenv("FETCH_CONCURRENCY")
	if concurrencyStr == "" {
		cfg.FetchConcurrency = 10 // Default semaphore limit
	} else {
		n, err := strconv.Atoi(concurrencyStr)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid FETCH_CONCURRENCY: %q", concurrencyStr)
		}
		cfg.FetchConcurrency = n
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	cfg.CronSpecKPI = os.Getenv("CRON_SPEC_KPI")
	if cfg.CronSpecKPI == "" {
		cfg.CronSpecKPI = "*/30 * * * *" // Default: every 30 minutes
	}

	cfg.CronSpecPremium = os.Getenv("CRON_SPEC_PREMIUM")
	if cfg.CronSpecPremium == "" {
		cfg.CronSpecPremium = "0 6 * * *" // Default: 6:00 AM daily
	}

	cfg.CronSpecPremiumBackfill = os.Getenv("CRON_SPEC_PREMIUM_BACKFILL")
	if cfg.CronSpecPremiumBackfill == "" {
		cfg.CronSpecPremiumBackfill = "0 4 1 * *" // Default: 4:00 AM on the 1st
	}

	cfg.CronSpecSL = os.Getenv("CRON_SPEC_SL")
	if cfg.CronSpecSL == "" {
		cfg.CronSpecSL = "0 * * * *" // Default: hourly
	}

	return cfg, nil
}
