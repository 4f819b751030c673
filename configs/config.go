// Package configs loads the dateinfo YAML configuration.
package configs

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Defaults applied when the config file omits a key.
const (
	DefaultListenPort   = "5994"
	DefaultTimezone     = "Asia/Tokyo"
	DefaultCachePath    = "holiday_cache.json"
	DefaultAPITimeoutMs = 4500
	DefaultCacheTTLDays = 120
	DefaultLogLevel     = "info"
)

// Config holds the runtime settings of the dateinfo server and CLI.
// HolidayAPIURL may stay empty, in which case the api package default
// authority is used.
type Config struct {
	ListenPort    string
	Timezone      string
	HolidayAPIURL string
	APITimeout    time.Duration
	CachePath     string
	CacheTTL      time.Duration
	LogLevel      string
}

// Load reads the configuration file at path. A missing file yields the
// default configuration; environment variable overrides still apply.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Parse(nil)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read the configuration file %s", path)
	}
	return Parse(data)
}

// Parse builds a Config from the YAML payload, applies the defaults and
// the environment variable overrides.
func Parse(data []byte) (*Config, error) {
	var aux struct {
		ListenPort    string `yaml:"listen_port"`
		Timezone      string `yaml:"timezone"`
		HolidayAPIURL string `yaml:"holiday_api_url"`
		APITimeoutMs  int    `yaml:"api_timeout_ms"`
		CachePath     string `yaml:"cache_path"`
		CacheTTLDays  int    `yaml:"cache_ttl_days"`
		LogLevel      string `yaml:"log_level"`
	}

	if err := yaml.Unmarshal(data, &aux); err != nil {
		return nil, errors.Wrap(err, "failed to parse the configuration file")
	}

	if aux.ListenPort == "" {
		aux.ListenPort = DefaultListenPort
	}
	if aux.Timezone == "" {
		aux.Timezone = DefaultTimezone
	}
	if aux.APITimeoutMs <= 0 {
		aux.APITimeoutMs = DefaultAPITimeoutMs
	}
	if aux.CachePath == "" {
		aux.CachePath = DefaultCachePath
	}
	if aux.CacheTTLDays <= 0 {
		aux.CacheTTLDays = DefaultCacheTTLDays
	}
	if aux.LogLevel == "" {
		aux.LogLevel = DefaultLogLevel
	}

	config := &Config{
		ListenPort:    aux.ListenPort,
		Timezone:      aux.Timezone,
		HolidayAPIURL: aux.HolidayAPIURL,
		APITimeout:    time.Duration(aux.APITimeoutMs) * time.Millisecond,
		CachePath:     aux.CachePath,
		CacheTTL:      time.Duration(aux.CacheTTLDays) * 24 * time.Hour,
		LogLevel:      aux.LogLevel,
	}
	return envOverride(config)
}
