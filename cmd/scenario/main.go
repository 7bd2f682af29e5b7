// scenario runs a scene headless for a fixed number of ticks and prints the
// run summary as JSON. Build:
//
//	go build -o scenario ./cmd/scenario
//
// Usage:
//
//	./scenario [--config scenarios/fire_pool.toml] [--seed 7] [--ticks 600]
package main

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"hmactors/internal/audio"
	"hmactors/internal/config"
	"hmactors/internal/scene"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("scenario", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "Path to a TOML scenario (built-in sandbox if empty)")
	seed := fs.Uint64("seed", 0, "Override the scenario seed")
	ticks := fs.Int("ticks", 0, "Override the number of ticks to run")
	level := fs.String("log-level", "", "Override log_level (debug, info, warn, error)")
	format := fs.String("log-format", "", "Override log_format (text or json)")
	sounds := fs.Bool("sounds", false, "Log every sound cue at debug level")
	saveLog := fs.Bool("runlog", true, "Append the summary to the run log under $XDG_DATA_HOME")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			return err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seed
		case "ticks":
			cfg.Ticks = *ticks
		case "log-level":
			cfg.LogLevel = *level
		case "log-format":
			cfg.LogFormat = *format
		}
	})
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger, err := newLogger(stderr, cfg)
	if err != nil {
		return err
	}

	var opts scene.Options
	if *sounds {
		opts.Sound = audio.LogSink{Logger: logger}
	}
	s, err := cfg.NewScene(logger, opts)
	if err != nil {
		return err
	}

	rl := simulate(ctx, s, cfg)
	if *saveLog {
		scene.SaveRunLog(rl, s.Logger())
	}
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rl); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return ctx.Err()
}

// simulate ticks s, applying scripted events on their tick, until the
// configured tick count, the target's death or cancellation.
func simulate(ctx context.Context, s *scene.Scene, cfg config.Config) scene.RunLog {
	log := s.Logger()
	log.Info("scenario started", "name", cfg.Name, "ticks", cfg.Ticks, "actors", s.Len())

	events := slices.Clone(cfg.Events)
	slices.SortStableFunc(events, func(a, b config.Event) int { return cmp.Compare(a.Tick, b.Tick) })

	next := 0
	for s.Ticks() < uint64(cfg.Ticks) {
		if ctx.Err() != nil {
			log.Warn("scenario interrupted", "tick", s.Ticks())
			break
		}
		for ; next < len(events) && events[next].Tick <= s.Ticks()+1; next++ {
			e := events[next]
			log.Debug("event", "tick", s.Ticks()+1, "action", e.Action)
			e.Apply(s)
		}
		s.Tick()
		if s.Target.Health.Dead() {
			log.Info("target defeated", "tick", s.Ticks())
			break
		}
	}

	rl := s.RunLog(cfg.Name)
	log.Info("scenario finished", "ticks", rl.Ticks, "killed", rl.Killed, "target_health", rl.TargetHealth)
	return rl
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
