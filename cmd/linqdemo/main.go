package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/hasbyte1/go-linq-utils/internal/config"
	"github.com/hasbyte1/go-linq-utils/internal/demo"
	"github.com/hasbyte1/go-linq-utils/internal/logger"
)

func main() {
	fs := pflag.NewFlagSet("linqdemo", pflag.ContinueOnError)
	configFile := fs.StringP("config", "c", "", "YAML configuration file")
	envFile := fs.String("env-file", "", "dotenv file with LINQDEMO_* overrides")
	config.RegisterFlags(fs)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Walks through lazy query operators on sample data.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEvery option can also be set as %s_<NAME>, e.g. %s_SEED=7.\n", config.EnvPrefix, config.EnvPrefix)
	}

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}

	cfg, err := config.Load(config.Options{
		ConfigFile: *configFile,
		EnvFile:    *envFile,
		Flags:      fs,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log, os.Stderr)
	log.Debug().
		Uint64("seed", cfg.Seed).
		Int("take", cfg.Take).
		Str("locale", cfg.Locale).
		Msg("configuration loaded")

	runner, err := demo.New(*cfg, os.Stdout, log)
	if err != nil {
		log.Error().Err(err).Msg("setup failed")
		os.Exit(1)
	}
	if err := runner.Run(); err != nil {
		log.Error().Err(err).Msg("demo failed")
		os.Exit(1)
	}
}
