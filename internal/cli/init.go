package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/partslist/internal/paths"
)

func newInitCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Init creates the configuration directory and a default config.yaml in it.
An existing config.yaml is left unchanged.

Use --lists-dir to record the directory that holds your parts lists.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, flags)
		},
	}
}

func runInit(cmd *cobra.Command, flags *rootFlags) error {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}

	cfg := configFile{
		LogLevel:  defaultLogLevel,
		LogFormat: defaultLogFormat,
	}
	if flags.listsDir != "" {
		abs, err := filepath.Abs(flags.listsDir)
		if err != nil {
			return fmt.Errorf("resolve lists dir: %w", err)
		}
		cfg.ListsDir = abs
	}

	created, err := writeConfigIfMissing(configDir, cfg)
	if err != nil {
		return err
	}

	path := filepath.Join(configDir, configFileExt)
	if created {
		fmt.Fprintln(cmd.OutOrStdout(), "Wrote", path)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "Config already exists at", path)
	}
	return nil
}
