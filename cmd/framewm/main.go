package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/1broseidon/framewm/internal/config"
	"github.com/1broseidon/framewm/internal/ipc"
	"github.com/1broseidon/framewm/internal/platform"
	"github.com/1broseidon/framewm/internal/runtimepath"
	"github.com/1broseidon/framewm/internal/wm"
	"github.com/1broseidon/framewm/internal/x11"
)

const appName = "framewm"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath string
	display    string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          appName,
		Short:        "A small reparenting X11 window manager",
		Long:         "framewm frames every top-level window with a title bar. Drag with button 1 to move, button 3 to resize; button 2 closes the client.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runManager(cmd, opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file path (default: ~/.config/framewm/config.yaml)")
	root.Flags().StringVar(&opts.display, "display", "", "X display to manage (default: $DISPLAY)")
	root.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	root.AddCommand(newConfigCmd(opts))
	root.AddCommand(newStatusCmd())
	root.AddCommand(newClientsCmd())
	return root
}

func loadConfig(path string) (*config.LoadResult, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFromPath(path)
}

func newLogger(level string) (*slog.Logger, *slog.LevelVar, error) {
	lvl, err := config.ParseLogLevel(level)
	if err != nil {
		return nil, nil, err
	}
	var levelVar slog.LevelVar
	levelVar.Set(lvl)
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: &levelVar})), &levelVar, nil
}

// watchConfig applies log level changes from the config file while the
// manager runs. Frame and color settings take effect on restart.
func watchConfig(ctx context.Context, path string, running *config.Config, levelVar *slog.LevelVar, logger *slog.Logger) {
	w := config.NewWatcher(path, logger)
	err := w.Run(ctx, func(res *config.LoadResult) {
		if lvl, err := config.ParseLogLevel(res.Config.LogLevel); err == nil {
			levelVar.Set(lvl)
		}
		if res.Config.Frame != running.Frame || res.Config.Colors != running.Colors || res.Config.Font != running.Font {
			logger.Info("config reloaded; frame changes apply after restart", "file", path)
			return
		}
		logger.Info("config reloaded", "file", path, "log_level", res.Config.LogLevel)
	})
	if err != nil {
		logger.Warn("config watcher stopped", "error", err)
	}
}

func frameOptions(cfg *config.Config) wm.Options {
	return wm.Options{
		MinWidth:    cfg.Frame.MinWidth,
		MinHeight:   cfg.Frame.MinHeight,
		Inset:       cfg.Frame.Inset,
		TitleHeight: cfg.Frame.TitleHeight,
	}
}

func frameStyle(cfg *config.Config) x11.FrameStyle {
	return x11.FrameStyle{
		Font:       cfg.Font,
		Background: cfg.Colors.Background,
		Border:     cfg.Colors.Border,
		Text:       cfg.Colors.Text,
	}
}

func runManager(cmd *cobra.Command, opts *rootOptions) error {
	res, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	cfg := res.Config
	if opts.display != "" {
		cfg.Display = opts.display
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}

	logger, levelVar, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	for _, f := range res.Files {
		logger.Debug("loaded config", "file", f)
	}

	if cfg.XAuthority != "" {
		if err := os.Setenv("XAUTHORITY", cfg.XAuthority); err != nil {
			logger.Warn("failed to set XAUTHORITY", "error", err)
		}
	}

	backend, err := platform.NewLinuxBackend(platform.Options{
		Display: cfg.Display,
		Name:    appName,
		Style:   frameStyle(cfg),
		Logger:  logger,
	})
	if err != nil {
		return err
	}
	defer backend.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Closing the connection unblocks the pending NextEvent.
	go func() {
		<-ctx.Done()
		backend.Close()
	}()

	configPath := opts.configPath
	if configPath == "" {
		configPath, _ = config.DefaultConfigPath()
	}
	if configPath != "" && opts.logLevel == "" {
		go watchConfig(ctx, configPath, cfg, levelVar, logger)
	}

	env := wm.New(backend, frameOptions(cfg), logger)
	if err := env.Scan(); err != nil {
		return err
	}

	socketPath, err := runtimepath.SocketPath(cfg.Display)
	if err != nil {
		logger.Warn("control socket disabled", "error", err)
	} else {
		srv := ipc.NewServer(socketPath, cfg.Display, env, logger)
		if err := srv.Start(); err != nil {
			logger.Warn("control socket disabled", "error", err)
		} else {
			defer srv.Stop()
		}
	}

	logger.Info("framewm started", "display", cfg.Display, "clients", env.Clients().Len())
	if err := env.Run(ctx); err != nil {
		return err
	}
	logger.Info("framewm stopped")
	return nil
}
