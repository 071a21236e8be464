package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	"github.com/midbel/cli"

	"github.com/zephyrtronium/postfix/internal/config"
	"github.com/zephyrtronium/postfix/internal/server"
)

var serveCmd = cli.Command{
	Name:    "serve",
	Alias:   []string{"server"},
	Summary: "serve the calculator over HTTP",
	Handler: &ServeCmd{},
}

type ServeCmd struct {
	Config string
	Port   string
}

func (c *ServeCmd) Run(args []string) error {
	set := flag.NewFlagSet("serve", flag.ContinueOnError)
	set.StringVar(&c.Config, "c", "", "YAML configuration file")
	set.StringVar(&c.Port, "p", "", "port to listen on (overrides configuration)")
	if err := set.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(c.Config)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		return errFail
	}
	if c.Port != "" {
		cfg.Port = c.Port
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	level, _ := config.ParseLevel(cfg.LogLevel)
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s := server.New(cfg)
	slog.Info("Starting server", "port", cfg.Port, "mode", cfg.Mode)
	if err := s.Start(ctx); err != nil {
		slog.Error("Server stopped", "error", err)
		return errFail
	}
	slog.Info("Server stopped")
	return nil
}
