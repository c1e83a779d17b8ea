package config

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	PollInterval Duration
	Provider     string
	League       string
	FootballData FootballDataConfig
	Metrics      MetricsConfig
	Snapshots    SnapshotConfig
}

// Load builds the configuration in three layers: defaults, an optional
// YAML config file named by CONFIG_FILE, then environment variables.
func Load() Config {
	cfg := Config{
		Port:         defaultPort,
		PollInterval: defaultPollInterval,
		Provider:     defaultProvider,
		League:       defaultLeague,
		FootballData: defaultFootballData(),
		Metrics:      defaultMetrics(),
		Snapshots:    defaultSnapshots(),
	}
	cfg = applyFile(cfg, envOrDefault(envConfigFile, ""))
	return applyEnv(cfg)
}

func applyEnv(cfg Config) Config {
	cfg.Port = envOrDefault(envPort, cfg.Port)
	cfg.PollInterval = durationEnvOrDefault(envPollInterval, cfg.PollInterval)
	cfg.Provider = envOrDefault(envProvider, cfg.Provider)
	cfg.League = envOrDefault(envLeague, cfg.League)
	cfg.FootballData = applyFootballDataEnv(cfg.FootballData)
	cfg.Metrics = applyMetricsEnv(cfg.Metrics)
	cfg.Snapshots = applySnapshotsEnv(cfg.Snapshots)
	return cfg
}
