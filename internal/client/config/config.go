// Package config assembles runtime settings for the JoyTrade client.
// Values are layered: compiled defaults, then a JSON config file (path via
// -c/-config), then command-line flags. Later sources win.
package config

import "time"

// Config holds the client's runtime settings.
//
// Fields:
//   - APIBaseURL: root of the marketplace REST service, including the
//     /api prefix.
//   - TokenDBPath: bbolt file persisting the credential token.
//   - LogPath: structured log destination (stdout stays free for the UI).
//   - RequestTimeout: per-request HTTP timeout; there is no retry layer.
type Config struct {
	APIBaseURL     string
	TokenDBPath    string
	LogPath        string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000/api"
	c.TokenDBPath = "joytrade.db"
	c.LogPath = "joytrade.log"
	c.RequestTimeout = 15 * time.Second
}

// Load builds a Config from defaults, the JSON file (if one is named), and
// flags, in that order. args is os.Args[1:].
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg, configFilePath(args)); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
