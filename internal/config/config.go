package config

import "time"

// Config holds runtime settings for the BirthdayBook CLI.
//
// Fields:
//   - DatabaseDSN: path of the local SQLite database file.
//   - SecretKey: HMAC secret for signing session tokens (HS256).
//     Do not use the test default outside development.
//   - SessionValidityDuration: how long a persisted session survives
//     without a fresh login.
type Config struct {
	DatabaseDSN             string
	SecretKey               string
	SessionValidityDuration time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "birthdaybook.db"
	c.SecretKey = "secretKey"
	c.SessionValidityDuration = 24 * time.Hour
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
