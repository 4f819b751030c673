package configs

import (
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Deployment-specific settings can be overridden by environment variables
// so that the same config file works across environments.

// envOverride updates some configs by environment variables.
func envOverride(config *Config) (*Config, error) {
	if listenPort := os.Getenv("DATEINFO_LISTEN_PORT"); listenPort != "" {
		config.ListenPort = listenPort
	}

	if timezone := os.Getenv("DATEINFO_TIMEZONE"); timezone != "" {
		config.Timezone = timezone
	}

	if apiURL := os.Getenv("DATEINFO_HOLIDAY_API_URL"); apiURL != "" {
		config.HolidayAPIURL = apiURL
	}

	if cachePath := os.Getenv("DATEINFO_CACHE_PATH"); cachePath != "" {
		config.CachePath = cachePath
	}

	if timeoutMs := os.Getenv("DATEINFO_API_TIMEOUT_MS"); timeoutMs != "" {
		ms, err := strconv.Atoi(timeoutMs)
		if err != nil || ms <= 0 {
			return nil, errors.Errorf("DATEINFO_API_TIMEOUT_MS must be a positive integer, got %q", timeoutMs)
		}
		config.APITimeout = time.Duration(ms) * time.Millisecond
	}

	if ttlDays := os.Getenv("DATEINFO_CACHE_TTL_DAYS"); ttlDays != "" {
		days, err := strconv.Atoi(ttlDays)
		if err != nil || days <= 0 {
			return nil, errors.Errorf("DATEINFO_CACHE_TTL_DAYS must be a positive integer, got %q", ttlDays)
		}
		config.CacheTTL = time.Duration(days) * 24 * time.Hour
	}

	if logLevel := os.Getenv("DATEINFO_LOG_LEVEL"); logLevel != "" {
		config.LogLevel = logLevel
	}

	return config, nil
}
