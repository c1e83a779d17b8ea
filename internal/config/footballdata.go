package config

const (
	envFDBaseURL  = "FOOTBALL_DATA_BASE_URL"
	envFDAPIKey   = "FOOTBALL_DATA_API_KEY"
	envFDMaxPages = "FOOTBALL_DATA_MAX_PAGES"
)

// FootballDataConfig controls how we talk to the football-data API.
type FootballDataConfig struct {
	BaseURL  string
	APIKey   string
	MaxPages int
}

func defaultFootballData() FootballDataConfig {
	return FootballDataConfig{
		BaseURL:  defaultFootballDataBaseURL,
		MaxPages: 10,
	}
}

func applyFootballDataEnv(cfg FootballDataConfig) FootballDataConfig {
	cfg.BaseURL = envOrDefault(envFDBaseURL, cfg.BaseURL)
	cfg.APIKey = envOrDefault(envFDAPIKey, cfg.APIKey)
	cfg.MaxPages = intEnvOrDefault(envFDMaxPages, cfg.MaxPages)
	return cfg
}
