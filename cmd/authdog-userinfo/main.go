package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/authdog/authdog-go-sdk/internal/app"
	"github.com/authdog/authdog-go-sdk/internal/config"
	"github.com/authdog/authdog-go-sdk/internal/logger"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "authdog-userinfo: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("authdog-userinfo", flag.ContinueOnError)
	token := fs.String("token", "", "access token (defaults to AUTHDOG_ACCESS_TOKEN)")
	format := fs.String("format", "", "output format: json or yaml (defaults to OUTPUT_FORMAT)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *format != "" {
		if err := cfg.SetOutputFormat(*format); err != nil {
			return fmt.Errorf("-format: %w", err)
		}
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	lookup, err := app.NewLookup(cfg, log, os.Stdout)
	if err != nil {
		log.ErrorObj("failed to initialize lookup", "error", err.Error())
		return err
	}
	defer lookup.Close()

	return lookup.Run(ctx, *token)
}
