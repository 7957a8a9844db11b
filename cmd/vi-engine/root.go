package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/vi-engine/config"
	"github.com/lixenwraith/vi-engine/engine"
	"github.com/lixenwraith/vi-engine/game"
	"github.com/lixenwraith/vi-engine/input"
	"github.com/lixenwraith/vi-engine/render"
	"github.com/lixenwraith/vi-engine/terminal"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "vi-engine",
		Short:         "Entity/component engine demo running in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "vi-engine", version)
		},
	}
}

type runFlags struct {
	configPath string
	debug      bool
	frames     int
	headless   bool
}

func newRunCmd() *cobra.Command {
	var flags runFlags
	cmd := &cobra.Command{
		Use:     "run",
		Short:   "Run the demo scene",
		Example: "vi-engine run --debug --frames 600",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("debug") {
				cfg.Debug = flags.debug
			}
			if cmd.Flags().Changed("frames") {
				cfg.MaxFrames = flags.frames
			}
			if flags.headless && cfg.MaxFrames == 0 {
				return eris.New("headless runs need --frames")
			}

			level, err := cfg.Level()
			if err != nil {
				return err
			}
			logger, logFile, err := setupLogging(cfg.Debug, cfg.LogDir, level)
			if err != nil {
				return err
			}
			if logFile != nil {
				defer logFile.Close()
			}

			parent := cmd.Context()
			if parent == nil {
				parent = context.Background()
			}
			ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if flags.headless {
				return runHeadless(ctx, cmd, cfg, logger)
			}
			return runTerminal(ctx, cfg, logger)
		},
	}
	cmd.Flags().StringVar(&flags.configPath, "config", "", "TOML config file")
	cmd.Flags().BoolVar(&flags.debug, "debug", false, "write logs to the log directory")
	cmd.Flags().IntVar(&flags.frames, "frames", 0, "stop after N frames (0 runs until quit)")
	cmd.Flags().BoolVar(&flags.headless, "headless", false, "render to an in-memory recorder instead of the terminal")
	return cmd
}

func runTerminal(ctx context.Context, cfg config.Config, logger zerolog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return eris.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return eris.Wrap(err, "init screen")
	}
	defer screen.Fini()
	terminal.SetCrashScreen(screen)
	defer func() {
		if r := recover(); r != nil {
			terminal.HandleCrash(r)
		}
	}()
	screen.HideCursor()

	device := terminal.NewDevice(screen)
	clock := engine.NewTimeProvider()
	state := input.NewState(clock)
	pump := terminal.NewPump(screen, state, device, logger)

	w, h := device.Size()
	cfg.Width, cfg.Height = w, h
	g, err := game.New(game.Options{
		Config: cfg,
		Device: device,
		Input:  state,
		Events: pump,
		Logger: logger,
		Clock:  clock,
	})
	if err != nil {
		return err
	}
	defer g.Shutdown()

	if err := buildDemo(g); err != nil {
		return err
	}
	pump.OnResize(g.Batch)
	pump.Start()
	defer pump.Stop()

	if cfg.Debug {
		engine.LogWorld(&logger, g.Ctx.World, zerolog.DebugLevel)
	}
	return g.Run(ctx)
}

func runHeadless(ctx context.Context, cmd *cobra.Command, cfg config.Config, logger zerolog.Logger) error {
	rec := render.NewRecorder(cfg.Width, cfg.Height)
	g, err := game.New(game.Options{Config: cfg, Device: rec, Logger: logger})
	if err != nil {
		return err
	}
	defer g.Shutdown()

	if err := buildDemo(g); err != nil {
		return err
	}
	if err := g.Run(ctx); err != nil {
		return err
	}

	st := g.Batch.Stats()
	fmt.Fprintf(cmd.OutOrStdout(), "frames=%d entities=%d colliders=%d draws=%d raycasts=%d\n",
		g.Frames(), g.Ctx.World.Count(), g.Physics.Count(), st.Draws, g.Physics.Stats().Raycasts)
	return nil
}
