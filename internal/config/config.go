package config

import "time"

// Config holds runtime settings for the TaskKeeper CLI.
//
// Fields:
//   - DatabaseDSN: path/DSN of the local SQLite database.
//   - DefaultTheme: theme applied when no preference is persisted yet.
//   - ErrorDisplayDuration: how long a transient form error stays visible.
type Config struct {
	DatabaseDSN          string
	DefaultTheme         string
	ErrorDisplayDuration time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "taskkeeper.db"
	c.DefaultTheme = "light"
	c.ErrorDisplayDuration = 3 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
