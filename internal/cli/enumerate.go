package cli

import (
	"archive/zip"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/enumfiles/internal/config"
	"github.com/vvka-141/enumfiles/internal/files/filesystem"
	"github.com/vvka-141/enumfiles/internal/files/traverser"
	"github.com/vvka-141/enumfiles/internal/logging"
	"github.com/vvka-141/enumfiles/internal/ui"
	"github.com/vvka-141/enumfiles/pkg/enumfiles"
)

// runEnumerate resolves settings, lists root and prints the result.
func runEnumerate(cmd *cobra.Command, root string, kind enumfiles.Kind, recursive bool) error {
	logger := logging.NewConsoleLoggerWithWriter(cmd.ErrOrStderr(), globalFlags.verbose)

	cfg, err := resolveConfig(cmd, logger)
	if err != nil {
		return err
	}

	opts := []traverser.Option{
		traverser.WithLogger(logger),
		traverser.WithConcurrency(cfg.Concurrency),
	}

	var t *traverser.Traverser
	if globalFlags.archive != "" {
		archive, err := zip.OpenReader(globalFlags.archive)
		if err != nil {
			return fmt.Errorf("failed to open archive %s: %w", globalFlags.archive, err)
		}
		defer archive.Close()

		logger.Verbose("enumerating inside archive %s", globalFlags.archive)
		t = traverser.NewWithFS(filesystem.NewFSFileSystem(&archive.Reader), opts...)
	} else {
		t = traverser.New(opts...)
	}

	paths, err := t.Enumerate(root, kind, recursive)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	return ui.NewPrinter(out, cfg.Format, ui.DetectColor(cfg.Color, out)).Print(paths, kind)
}

// resolveConfig layers defaults, the config file, .env, the environment
// and explicitly set flags, in increasing precedence.
func resolveConfig(cmd *cobra.Command, logger enumfiles.Logger) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)

	if globalFlags.configPath != "" {
		cfg, err = config.LoadFile(globalFlags.configPath)
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("%w: %s not found", enumfiles.ErrInvalidConfig, globalFlags.configPath)
		}
	} else {
		cfg, err = config.Load(".")
		if errors.Is(err, config.ErrConfigNotFound) {
			cfg, err = config.Default(), nil
		} else if err == nil {
			logger.Verbose("loaded %s", enumfiles.ConfigFileName)
		}
	}
	if err != nil {
		return nil, err
	}

	if err := config.ApplyEnv(cfg, enumfiles.EnvFileName); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = globalFlags.format
	}
	if flags.Changed("color") {
		cfg.Color = globalFlags.color
	}
	if flags.Changed("concurrency") {
		cfg.Concurrency = globalFlags.concurrency
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger.Verbose("format=%s color=%s concurrency=%d", cfg.Format, cfg.Color, cfg.Concurrency)
	return cfg, nil
}
