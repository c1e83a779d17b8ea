package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors Config with yaml tags and pointer fields so only
// keys present in the file override the defaults beneath them.
// PollInterval stays a string because yaml has no duration scalar.
type fileConfig struct {
	Port         *string `yaml:"port"`
	PollInterval *string `yaml:"poll_interval"`
	Provider     *string        `yaml:"provider"`
	League       *string        `yaml:"league"`
	FootballData struct {
		BaseURL  *string `yaml:"base_url"`
		APIKey   *string `yaml:"api_key"`
		MaxPages *int    `yaml:"max_pages"`
	} `yaml:"football_data"`
	Metrics struct {
		Enabled      *bool   `yaml:"enabled"`
		Port         *string `yaml:"port"`
		OtlpEndpoint *string `yaml:"otlp_endpoint"`
		ServiceName  *string `yaml:"service_name"`
	} `yaml:"metrics"`
	Snapshots struct {
		Dir           *string `yaml:"dir"`
		RetentionDays *int    `yaml:"retention_days"`
		AdminToken    *string `yaml:"admin_token"`
	} `yaml:"snapshots"`
}

// applyFile layers values from a YAML file over cfg. A missing or
// unreadable file leaves cfg untouched; config files are optional.
func applyFile(cfg Config, path string) Config {
	if path == "" {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg
	}

	setString(&cfg.Port, fc.Port)
	if fc.PollInterval != nil {
		if parsed, err := time.ParseDuration(*fc.PollInterval); err == nil && parsed > 0 {
			cfg.PollInterval = parsed
		}
	}
	setString(&cfg.Provider, fc.Provider)
	setString(&cfg.League, fc.League)

	setString(&cfg.FootballData.BaseURL, fc.FootballData.BaseURL)
	setString(&cfg.FootballData.APIKey, fc.FootballData.APIKey)
	setInt(&cfg.FootballData.MaxPages, fc.FootballData.MaxPages)

	if fc.Metrics.Enabled != nil {
		cfg.Metrics.Enabled = *fc.Metrics.Enabled
	}
	setString(&cfg.Metrics.Port, fc.Metrics.Port)
	setString(&cfg.Metrics.OtlpEndpoint, fc.Metrics.OtlpEndpoint)
	setString(&cfg.Metrics.ServiceName, fc.Metrics.ServiceName)

	setString(&cfg.Snapshots.Dir, fc.Snapshots.Dir)
	setInt(&cfg.Snapshots.RetentionDays, fc.Snapshots.RetentionDays)
	setString(&cfg.Snapshots.AdminToken, fc.Snapshots.AdminToken)

	return cfg
}

func setString(dst *string, src *string) {
	if src != nil && *src != "" {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil && *src > 0 {
		*dst = *src
	}
}
