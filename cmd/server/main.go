package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"today-games-service/internal/config"
	"today-games-service/internal/logging"
	"today-games-service/internal/server"
)

const serviceName = "today-games-service"

// Set via -ldflags at build time.
var appVersion = "dev"

type flags struct {
	host  string
	port  int
	debug bool
}

// runServer is swapped in tests so the command can be exercised without binding a port.
var runServer = func(ctx context.Context, cfg config.Config) error {
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		File:    cfg.Log.File,
		Service: serviceName,
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	server.New(cfg, logger).Run(ctx, stop)
	return nil
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:           serviceName,
		Short:         "Serve today's games from Airtable as JSON",
		Version:       appVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			applyFlags(cmd, f, &cfg)
			return runServer(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&f.host, "host", "", "listen host (overrides HOST)")
	cmd.Flags().IntVarP(&f.port, "port", "p", 0, "listen port (overrides PORT)")
	cmd.Flags().BoolVar(&f.debug, "debug", false, "debug logging and per-record diagnostics")
	return cmd
}

// applyFlags copies explicitly set flags over the environment config.
func applyFlags(cmd *cobra.Command, f flags, cfg *config.Config) {
	if cmd.Flags().Changed("host") {
		cfg.Host = f.host
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = f.port
	}
	if f.debug {
		cfg.EnableDebug()
	}
}

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", serviceName, err)
		os.Exit(1)
	}
}
