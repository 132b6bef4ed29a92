package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/maximpopov11/pokeworld/internal/agent"
	"github.com/maximpopov11/pokeworld/internal/engine"
	"github.com/maximpopov11/pokeworld/internal/infrastructure/storage"
	"github.com/maximpopov11/pokeworld/internal/network"
	"github.com/maximpopov11/pokeworld/internal/server"
	"github.com/maximpopov11/pokeworld/internal/terminal"
	"github.com/maximpopov11/pokeworld/internal/version"
	"github.com/maximpopov11/pokeworld/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	var (
		seed       int64
		trainers   int
		configPath string
		replayPath string
		recordPath string
		spectate   string
		strict     bool
		autoplay   int
	)
	flag.Int64Var(&seed, "seed", 0, "World seed (0 for random)")
	flag.IntVar(&trainers, "trainers", 0, "Trainers per tile")
	flag.StringVar(&configPath, "config", "", "Path to a YAML config file")
	flag.StringVar(&replayPath, "replay", "", "Play back a replay file without a terminal")
	flag.StringVar(&recordPath, "record", "", "Record the session to a replay file")
	flag.StringVar(&spectate, "spectate", "", "Address for the spectator server, e.g. :8080")
	flag.BoolVar(&strict, "strict", false, "Panic on world generation failures")
	flag.IntVar(&autoplay, "autoplay", 0, "Let a bot play this many commands instead of the terminal")
	flag.Parse()

	logger.Log.WithFields(version.LogFields()).Info("Starting pokeworld")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if replayPath != "" {
		if err := playback(ctx, replayPath, spectate); err != nil {
			logger.Log.WithError(err).Fatal("Replay failed")
		}
		return
	}

	cfg := engine.NewConfig()
	if configPath != "" {
		var err error
		if cfg, err = engine.LoadConfig(configPath); err != nil {
			logger.Log.WithError(err).Fatal("Failed to load config")
		}
	}
	// Flags given on the command line win over the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			if seed != 0 {
				cfg.Seed = seed
			}
		case "trainers":
			cfg.Trainers = trainers
		case "record":
			cfg.ReplayPath = recordPath
		case "spectate":
			cfg.SpectatorAddr = spectate
		case "strict":
			cfg.Strict = strict
		}
	})

	run := play
	if autoplay > 0 {
		run = func(ctx context.Context, cfg engine.Config) error {
			return botSession(ctx, cfg, autoplay)
		}
	}
	if err := run(ctx, cfg); err != nil {
		logger.Log.WithError(err).Fatal("Session failed")
	}
	logger.Log.Info("Done.")
}

// play runs an interactive session on the terminal.
func play(ctx context.Context, cfg engine.Config) error {
	if os.Getenv("LOG_FILE") == "" {
		logger.Discard()
	}

	term, err := terminal.Open()
	if err != nil {
		return err
	}
	defer term.Close()

	return session(ctx, cfg, term, term)
}

// botSession runs a headless session driven by the autopilot.
func botSession(ctx context.Context, cfg engine.Config, steps int) error {
	bot := agent.NewBot(cfg.Seed, steps)
	if err := session(ctx, cfg, bot, bot); err != nil {
		return err
	}
	logger.Log.WithField("steps", steps).Info("Bot finished")
	return nil
}

// session wires the optional spectator server and recorder around a front
// end and runs the game to the end.
func session(ctx context.Context, cfg engine.Config, in engine.InputSource, out engine.Renderer) error {
	renderers := engine.Renderers{out}
	if cfg.SpectatorAddr != "" {
		renderers = append(renderers, startSpectators(ctx, cfg.SpectatorAddr))
	}

	opts := engine.Options{Input: in, Renderer: renderers}
	if cfg.ReplayPath != "" {
		w, err := storage.Create(cfg.ReplayPath, storage.Meta{
			Seed:            cfg.Seed,
			Trainers:        cfg.Trainers,
			EncounterChance: cfg.EncounterChance,
			Strict:          cfg.Strict,
			Species:         cfg.Creatures,
		})
		if err != nil {
			return err
		}
		defer func() {
			if err := w.Close(); err != nil {
				logger.Log.WithError(err).Error("Failed to close replay")
			}
		}()
		opts.Recorder = w
	}

	inst, err := engine.NewInstance(cfg, opts)
	if err != nil {
		return err
	}
	return inst.Run(ctx)
}

// playback re-runs a recorded session headless.
func playback(ctx context.Context, path, spectate string) error {
	rp, err := storage.Load(path)
	if err != nil {
		return err
	}
	logger.Log.WithFields(logrus.Fields{
		"path":     path,
		"seed":     rp.Meta.Seed,
		"commands": len(rp.Records),
	}).Info("Replay loaded")

	opts := engine.Options{Input: rp.Input()}
	if spectate != "" {
		opts.Renderer = startSpectators(ctx, spectate)
	}
	inst, err := engine.NewInstance(rp.Config(), opts)
	if err != nil {
		return err
	}
	if err := inst.Run(ctx); err != nil {
		return err
	}

	p := inst.Player()
	logger.Log.WithFields(logrus.Fields{
		"tick":   inst.Tick(),
		"tile_x": p.Tile.X,
		"tile_y": p.Tile.Y,
		"x":      p.Pos.X,
		"y":      p.Pos.Y,
		"party":  len(p.Party),
	}).Info("Replay finished")
	return nil
}

func startSpectators(ctx context.Context, addr string) *network.Broadcaster {
	hub := network.NewBroadcaster()
	srv := server.New(hub, addr)
	go func() {
		if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Log.WithError(err).Error("Spectator server stopped")
		}
	}()
	return hub
}
