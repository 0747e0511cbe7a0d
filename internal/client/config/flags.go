package config

import (
	"flag"
	"io"
	"time"
)

// parseFlags overlays cfg with command-line flags:
//
//	-a string   base URL of the marketplace API
//	-d string   path to the token database
//	-l string   path to the log file
//	-t int      request timeout in seconds
//	-c string   path to a JSON config file (consumed by parseJSON)
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("joytrade", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var configFile string
	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the marketplace API")
	fs.StringVar(&cfg.TokenDBPath, "d", cfg.TokenDBPath, "path to the token database")
	fs.StringVar(&cfg.LogPath, "l", cfg.LogPath, "path to the log file")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&configFile, "c", "", "path to a JSON config file")
	fs.StringVar(&configFile, "config", "", "path to a JSON config file (long form)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	return nil
}
