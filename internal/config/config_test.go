package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		envConfigFile, envPort, envPollInterval, envProvider, envLeague,
		envMetricsPort, envMetricsOn, envOtelEndpoint, envOtelService, envOtelInsecure,
		envAdminToken, envSnapshotDir, envSnapshotDays,
		envFDBaseURL, envFDAPIKey, envFDMaxPages,
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()
	if cfg.Port != "4000" {
		t.Fatalf("unexpected port: %q", cfg.Port)
	}
	if cfg.PollInterval != 2*time.Minute {
		t.Fatalf("unexpected poll interval: %v", cfg.PollInterval)
	}
	if cfg.Provider != "static" || cfg.League != "ARG" {
		t.Fatalf("unexpected provider/league: %q/%q", cfg.Provider, cfg.League)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != "9090" {
		t.Fatalf("unexpected metrics config: %+v", cfg.Metrics)
	}
	if cfg.Snapshots.Dir != "data/snapshots" || cfg.Snapshots.RetentionDays != 60 {
		t.Fatalf("unexpected snapshot config: %+v", cfg.Snapshots)
	}
	if cfg.Snapshots.AdminToken != "" {
		t.Fatalf("admin token must default empty")
	}
	if cfg.FootballData.BaseURL != "https://api.football-data.org/v4" {
		t.Fatalf("unexpected football-data base URL: %q", cfg.FootballData.BaseURL)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(envPort, "8080")
	t.Setenv(envPollInterval, "30s")
	t.Setenv(envProvider, "footballdata")
	t.Setenv(envLeague, "PL")
	t.Setenv(envAdminToken, "secret")
	t.Setenv(envSnapshotDays, "7")
	t.Setenv(envMetricsOn, "false")
	t.Setenv(envFDAPIKey, "token-123")

	cfg := Load()
	if cfg.Port != "8080" || cfg.PollInterval != 30*time.Second {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
	if cfg.Provider != "footballdata" || cfg.League != "PL" {
		t.Fatalf("unexpected provider/league: %q/%q", cfg.Provider, cfg.League)
	}
	if cfg.Snapshots.AdminToken != "secret" || cfg.Snapshots.RetentionDays != 7 {
		t.Fatalf("unexpected snapshot config: %+v", cfg.Snapshots)
	}
	if cfg.Metrics.Enabled {
		t.Fatalf("metrics must be disabled")
	}
	if cfg.FootballData.APIKey != "token-123" {
		t.Fatalf("unexpected API key: %q", cfg.FootballData.APIKey)
	}
}

func TestLoadInvalidEnvFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv(envPollInterval, "soon")
	t.Setenv(envSnapshotDays, "-4")
	t.Setenv(envMetricsOn, "maybe")

	cfg := Load()
	if cfg.PollInterval != 2*time.Minute {
		t.Fatalf("invalid duration must fall back: %v", cfg.PollInterval)
	}
	if cfg.Snapshots.RetentionDays != 60 {
		t.Fatalf("negative retention must fall back: %d", cfg.Snapshots.RetentionDays)
	}
	if !cfg.Metrics.Enabled {
		t.Fatalf("unparseable bool must fall back to default")
	}
}

func TestLoadConfigFileLayer(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
port: "5000"
provider: footballdata
poll_interval: 5m
snapshots:
  dir: /var/snapshots
  retention_days: 14
metrics:
  enabled: false
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(envConfigFile, path)

	cfg := Load()
	if cfg.Port != "5000" || cfg.Provider != "footballdata" {
		t.Fatalf("file values must apply: %+v", cfg)
	}
	if cfg.PollInterval != 5*time.Minute {
		t.Fatalf("unexpected poll interval: %v", cfg.PollInterval)
	}
	if cfg.Snapshots.Dir != "/var/snapshots" || cfg.Snapshots.RetentionDays != 14 {
		t.Fatalf("unexpected snapshot config: %+v", cfg.Snapshots)
	}
	if cfg.Metrics.Enabled {
		t.Fatalf("file must disable metrics")
	}
	// Keys absent from the file keep their defaults.
	if cfg.League != "ARG" {
		t.Fatalf("unexpected league: %q", cfg.League)
	}
}

func TestEnvWinsOverFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("port: \"5000\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(envConfigFile, path)
	t.Setenv(envPort, "8080")

	if cfg := Load(); cfg.Port != "8080" {
		t.Fatalf("env must win over file, got %q", cfg.Port)
	}
}

func TestLoadMissingConfigFileIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv(envConfigFile, filepath.Join(t.TempDir(), "missing.yaml"))

	if cfg := Load(); cfg.Port != "4000" {
		t.Fatalf("missing file must leave defaults, got %q", cfg.Port)
	}
}
