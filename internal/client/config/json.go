package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// jsonConfig is the file-format DTO. RequestTimeout is a duration string
// such as "15s".
type jsonConfig struct {
	APIBaseURL     string `json:"api_base_url"`
	TokenDBPath    string `json:"token_db_path"`
	LogPath        string `json:"log_path"`
	RequestTimeout string `json:"request_timeout"`
}

// configFilePath extracts the config file path from -c/-config/--config,
// in either "-c path" or "--config=path" form. Empty when absent.
func configFilePath(args []string) string {
	names := []string{"-c", "-config", "--config"}
	for i := 0; i < len(args); i++ {
		for _, name := range names {
			if args[i] == name && i+1 < len(args) {
				return args[i+1]
			}
			if strings.HasPrefix(args[i], name+"=") {
				return strings.TrimPrefix(args[i], name+"=")
			}
		}
	}
	return ""
}

// parseJSON overlays cfg with values from the JSON file at path. A missing
// path is not an error; a named but unreadable or malformed file is.
func parseJSON(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.TokenDBPath != "" {
		cfg.TokenDBPath = jc.TokenDBPath
	}
	if jc.LogPath != "" {
		cfg.LogPath = jc.LogPath
	}
	if jc.RequestTimeout != "" {
		d, err := time.ParseDuration(jc.RequestTimeout)
		if err != nil {
			return fmt.Errorf("parse request_timeout: %w", err)
		}
		cfg.RequestTimeout = d
	}
	return nil
}
