package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mordilloSan/go-devlog/logger"
)

// Example demonstrating go-devlog usage.
// Usage: ./go-devlog --level=debug --destination=file --dump 'hello'
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := logger.DefaultConfig()
	color := colorFlag(logger.ColorAuto)
	var envFile, dump string

	cmd := &cobra.Command{
		Use:          "go-devlog",
		Short:        "Write a sample of every go-devlog feature to the configured destination",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if envFile != "" {
				if err := godotenv.Load(envFile); err != nil {
					return fmt.Errorf("load %s: %w", envFile, err)
				}
			}

			cfg.Color = logger.ColorMode(color)
			logger.Init(cfg)
			defer logger.Close()

			// LOGGER_LEVEL / LOGGER_DESTINATION win over flags.
			logger.ReadEnvironment()

			demo(dump)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Var(&cfg.Level, "level", "threshold: ALL, DEBUG, INFO, WARN, ERROR, FATAL, OFF or 0-6")
	flags.Var(&cfg.Destination, "destination", "STDOUT, STDERR, FILE, SYSTEM or 0-3")
	flags.StringVar(&cfg.Subsystem, "subsystem", "", "system log subsystem (required for SYSTEM)")
	flags.StringVar(&cfg.Category, "category", "", "system log category (required for SYSTEM)")
	flags.StringVar(&cfg.Product, "product", "", "log directory name under ~/log (default: executable name)")
	flags.StringVar(&cfg.Dir, "dir", "", "log directory, replacing ~/log/<product>")
	flags.Var(&color, "color", "console colors: auto, always or never")
	flags.StringVar(&envFile, "env-file", "", "load environment variables from this .env file first")
	flags.StringVar(&dump, "dump", "", "also write this text to its own dump file")

	return cmd
}

func demo(dump string) {
	logger.Stamp()
	logger.TimerMark()

	logger.Debugf("starting at %v", time.Now())
	logger.Info("hello world")
	logger.Warn("be careful")
	logger.Error(errors.New("something happened"))
	logger.Debug(logger.None[string]())
	logger.Fatal("fatal lines ignore the threshold and do not exit")

	logger.TimerMeasure()

	if dump != "" {
		logger.DumpFile(dump)
	}
}
