package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the bill tracker.
type Config struct {
	General   GeneralConfig   `mapstructure:"general"`
	Data      DataConfig      `mapstructure:"data"`
	Server    ServerConfig    `mapstructure:"server"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// GeneralConfig contains general application settings.
type GeneralConfig struct {
	Title string `mapstructure:"title"`
	Debug bool   `mapstructure:"debug"` // enables per-bill resolution logging
}

// DataConfig names the two input sources: the summary CSV and the
// optional directory of per-bill raw JSON records.
type DataConfig struct {
	SummaryCSV string `mapstructure:"summary_csv"`
	RawDir     string `mapstructure:"raw_dir"`
}

func (d DataConfig) Validate() error {
	if strings.TrimSpace(d.SummaryCSV) == "" {
		return fmt.Errorf("data.summary_csv is required")
	}
	return nil
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Listen string `mapstructure:"listen"`
}

func (s ServerConfig) Validate() error {
	if strings.TrimSpace(s.Listen) == "" {
		return fmt.Errorf("server.listen is required")
	}
	return nil
}

// TelemetryConfig controls the Prometheus metrics endpoint.
type TelemetryConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Load reads configuration from an optional file, layered under
// BILLTRACKER_* environment variables. When path is empty the usual
// locations are searched and a missing file is not an error; every
// setting has a default.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("billtracker")
	v.SetConfigType("yaml")

	v.SetDefault("general.title", "Right to Repair Bills — Dashboard")
	v.SetDefault("general.debug", false)
	v.SetDefault("data.summary_csv", "bills_summary.csv")
	v.SetDefault("data.raw_dir", "bills_raw")
	v.SetDefault("server.listen", ":8080")
	v.SetDefault("telemetry.enabled", true)

	if path == "" {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	} else {
		v.SetConfigFile(path)
	}

	v.SetEnvPrefix("BILLTRACKER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Data.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Server.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
