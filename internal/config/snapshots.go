package config

// SnapshotConfig controls standings snapshot persistence.
type SnapshotConfig struct {
	Dir           string // base path for snapshot files
	RetentionDays int    // rolling window of daily standings to keep
	AdminToken    string // guards the admin refresh/import endpoints
}

func defaultSnapshots() SnapshotConfig {
	return SnapshotConfig{
		Dir:           defaultSnapshotDir,
		RetentionDays: defaultSnapshotRetention,
	}
}

func applySnapshotsEnv(cfg SnapshotConfig) SnapshotConfig {
	cfg.Dir = envOrDefault(envSnapshotDir, cfg.Dir)
	cfg.RetentionDays = intEnvOrDefault(envSnapshotDays, cfg.RetentionDays)
	cfg.AdminToken = envOrDefault(envAdminToken, cfg.AdminToken)
	return cfg
}
