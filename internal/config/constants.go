package config

import "time"

const (
	envConfigFile   = "CONFIG_FILE"
	envPort         = "PORT"
	envPollInterval = "POLL_INTERVAL"
	envProvider     = "PROVIDER"
	envLeague       = "LEAGUE"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"
	envAdminToken   = "ADMIN_TOKEN"
	envSnapshotDir  = "SNAPSHOT_DIR"
	envSnapshotDays = "SNAPSHOT_RETENTION_DAYS"

	defaultPort = "4000"
	// Fixture data moves slowly outside match hours; a conservative
	// default also respects free-tier upstream quotas.
	defaultPollInterval        = 2 * Duration(time.Minute)
	defaultProvider            = "static"
	defaultLeague              = "ARG"
	defaultMetricsPort         = "9090"
	defaultSnapshotDir         = "data/snapshots"
	defaultSnapshotRetention   = 60
	defaultServiceName         = "prode-service"
	defaultFootballDataBaseURL = "https://api.football-data.org/v4"
)
