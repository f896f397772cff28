package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"dns-query-collector/internal/app"
	"dns-query-collector/internal/shared/configs"

	"github.com/spf13/pflag"
)

func main() {
	filePath := pflag.StringP("filepath", "f", "", "DNS query log file to ingest (required)")
	configPath := pflag.StringP("config", "c", "./configs/configs.yml", "configuration file")
	pflag.Parse()

	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "Missing required flag --filepath")
		pflag.Usage()
		os.Exit(2)
	}

	// Load configuration
	cfg, err := configs.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize application
	application, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize app: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := application.Run(ctx, *filePath, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Run failed: %v\n", err)
		stop()
		os.Exit(1)
	}
}
