package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/flanker/audio"
	"github.com/lixenwraith/flanker/config"
	"github.com/lixenwraith/flanker/core"
	"github.com/lixenwraith/flanker/engine"
	"github.com/lixenwraith/flanker/input"
	"github.com/lixenwraith/flanker/parameter"
	"github.com/lixenwraith/flanker/render"
	"github.com/lixenwraith/flanker/status"
	"github.com/lixenwraith/flanker/telemetry"
	"github.com/lixenwraith/flanker/terrain"
)

func runCommand(configPath, telemetryAddr string, debug bool) error {
	// Console until the screen takes over so build progress and errors stay visible
	setupConsoleLogging(os.Stderr, debug)

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if debug {
		cfg.Policy.Debug = true
	}
	if telemetryAddr != "" {
		cfg.Telemetry.Addr = telemetryAddr
	}

	t, err := loadTerrain(cfg)
	if err != nil {
		return err
	}

	keys, err := keyTable(cfg.Input)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer screen.Fini()

	if logFile := setupLogging(debug); logFile != nil {
		defer logFile.Close()
	}

	// Panic recovery: restore the terminal before printing the trace
	crash := core.CrashReporter{Restore: screen.Fini, Out: os.Stderr}
	defer func() {
		if r := recover(); r != nil {
			crash.Report(r)
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics := status.NewRegistry()
	probe := terrain.NewPlayerProbe(t, cfg.World.WaterLevel)
	game := engine.NewGame(cfg, probe, metrics)

	renderer := render.NewRenderer(screen, t, keys, metrics, render.Options{
		WorldSize:    cfg.World.Size,
		WaterLevel:   cfg.World.WaterLevel,
		CellsPerUnit: cfg.Render.CellsPerUnit,
		FogDensity:   cfg.Render.FogDensity,
		Debug:        cfg.Policy.Debug,
	})
	sinks := []engine.FrameSink{renderer}

	var sound *audio.SoundManager
	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager(cfg.Flight.MaxSpeed)
		if err := sm.Initialize(); err != nil {
			log.Warn().Err(err).Msg("audio initialization failed, continuing without audio")
		} else {
			defer sm.Cleanup()
			sound = sm
			game.Explosion().Observe(sm)
			sinks = append(sinks, sm)
		}
	}
	renderer.SetMuted(sound == nil)

	if cfg.Telemetry.Addr != "" {
		srv := telemetry.NewServer(cfg.Telemetry.Every, metrics)
		go func() {
			if err := srv.Serve(ctx, cfg.Telemetry.Addr); err != nil {
				log.Error().Err(err).Msg("telemetry stopped")
			}
		}()
		sinks = append(sinks, srv)
	}

	runner := &engine.Runner{
		Game:     game,
		Events:   screen,
		Keys:     keys,
		Latch:    input.NewLatch(cfg.Input.HoldWindow()),
		Clock:    engine.NewFrameClock(engine.NewMonotonicTimeProvider(), parameter.MaxFrameDelta),
		Interval: parameter.FrameUpdateInterval,
		Sinks:    sinks,
		OnAction: func(a input.Action) {
			switch a {
			case input.ActionToggleHelp:
				renderer.ToggleHelp()
			case input.ActionToggleMute:
				if sound != nil {
					renderer.SetMuted(sound.ToggleMute())
				}
			}
		},
		OnResize: screen.Sync,
	}

	err = runner.Run(ctx)
	log.Info().Interface("counters", metrics.Snapshot()).Msg("session ended")
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// keyTable applies configured bindings over the defaults
func keyTable(cfg config.Input) (*input.KeyTable, error) {
	keys := input.DefaultKeyTable()
	for action, names := range cfg.Bindings {
		if err := keys.Bind(action, names); err != nil {
			return nil, err
		}
	}
	return keys, nil
}

// loadTerrain reads the terrain cache, building it from the configured images on a cold start
func loadTerrain(cfg config.Config) (*terrain.Terrain, error) {
	t, built, err := terrain.LoadOrBuild(terrain.Sources{
		Heightfield: cfg.Terrain.Heightfield,
		ColorMap:    cfg.Terrain.ColorMap,
		Cache:       cfg.Terrain.Cache,
		Scale:       cfg.Terrain.HeightScale,
	})
	if err != nil {
		return nil, err
	}
	log.Info().Bool("built", built).Int("width", t.Width).Msg("terrain ready")
	return t, nil
}
