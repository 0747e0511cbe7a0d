package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"joytrade/internal/client/api"
	"joytrade/internal/client/cli"
	"joytrade/internal/client/config"
	"joytrade/internal/client/session"
	"joytrade/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		return err
	}

	log, closeLog, err := logging.NewFileLogger(cfg.LogPath)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := session.OpenBoltStore(cfg.TokenDBPath)
	if err != nil {
		return fmt.Errorf("token store: %w", err)
	}
	defer store.Close()

	client := api.New(ctx, cfg.APIBaseURL, cfg.RequestTimeout, log)
	sess := session.NewManager(client, store, log)

	app := cli.NewApp(client, sess, log)
	return app.Run(ctx)
}
