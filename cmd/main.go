package main

import (
	"fmt"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"logweave/internal/app"
	"logweave/internal/app/cli"
	"logweave/internal/app/colors"
	"logweave/internal/config"
	"logweave/internal/config/logger"
)

// main is the entry point for the application
func main() {
	runApp(os.Args[1:])
}

// runApp contains the main application logic
func runApp(args []string) {
	opts, err := cli.Parse(args)
	if err != nil {
		exit(err)
	}

	cfg, err := loadConfig(opts.ConfigFile)
	if err != nil {
		exit(err)
	}

	applyOptions(cfg, opts)

	application := createApp(cfg, opts)
	application.Run()
}

// loadConfig wraps config.LoadFile for easier testing
func loadConfig(path string) (*config.Config, error) {
	return config.LoadFile(path)
}

// applyOptions lets command-line flags override the logging config
func applyOptions(cfg *config.Config, opts *cli.Options) {
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}

	if opts.Color != cli.ColorAuto {
		cfg.Logging.Color = opts.Color
	}
}

// createApp creates the FX application with the given config and options
func createApp(cfg *config.Config, opts *cli.Options) *fx.App {
	return fx.New(
		fx.WithLogger(createFxLogger(cfg)),
		fx.Supply(cfg, opts),
		app.Module,
	)
}

// createFxLogger returns an FX logger based on the config
func createFxLogger(cfg *config.Config) func() fxevent.Logger {
	return func() fxevent.Logger {
		if cfg.Logging.Level == logger.DebugLevel {
			return &fxevent.ConsoleLogger{W: os.Stderr}
		}

		return fxevent.NopLogger
	}
}

func exit(err error) {
	fmt.Fprintf(os.Stderr, "%s %v\n", colors.Error("Error:"), err)
	os.Exit(1)
}
