// hmactors opens the interactive actor sandbox in the terminal.
//
// Usage:
//
//	hmactors [--config scenarios/creatures.toml] [--seed 7] [--generate] [--log sandbox.log]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"hmactors/internal/config"
	"hmactors/internal/game"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	cfg, logPath, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}

	// The terminal belongs to the sandbox, so logs go to a file or nowhere.
	var w io.Writer = io.Discard
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		w = f
	}
	logger, err := newLogger(w, cfg)
	if err != nil {
		return err
	}

	g, err := game.New(cfg, logger)
	if err != nil {
		return err
	}
	g.Run(ctx)
	return nil
}

// parseArgs reads the flags and the scenario they name, and returns the
// validated config with the log file path.
func parseArgs(args []string, stderr io.Writer) (config.Config, string, error) {
	fs := flag.NewFlagSet("hmactors", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "Path to a TOML scenario (empty arena if unset)")
	seed := fs.Uint64("seed", 0, "Override the scenario seed")
	gen := fs.Bool("generate", false, "Play in a generated temple instead of the configured arena")
	logPath := fs.String("log", "", "Write logs to this file")
	if err := fs.Parse(args); err != nil {
		return config.Config{}, "", err
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			return config.Config{}, "", err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg.Seed = *seed
		}
	})
	if *gen && !cfg.Generate.Enabled {
		cfg.Generate.Enabled = true
		cfg.Arena = config.Arena{Width: 48, Depth: 32}
		cfg.Spawns = nil
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, "", fmt.Errorf("config: %w", err)
	}
	return cfg, *logPath, nil
}

func newLogger(w io.Writer, cfg config.Config) (*slog.Logger, error) {
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	switch cfg.LogFormat {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("unknown log format %q", cfg.LogFormat)
}
