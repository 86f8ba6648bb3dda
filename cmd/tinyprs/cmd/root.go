/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssargent/tinyprs/pkg/config"
	"github.com/ssargent/tinyprs/pkg/di"
	"github.com/ssargent/tinyprs/pkg/logging"
)

// configOptional marks commands that run without an existing config file
const configOptional = "config-optional"

var container *di.Container

// SetContainer injects the dependency container
func SetContainer(c *di.Container) {
	container = c
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tinyprs",
	Short: "tinyprs - tinySA preset converter",
	Long: `tinyprs converts tinySA .prs preset files to editable JSON or YAML
documents and back, verifies preset checksums and keeps an archive of presets.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if container == nil {
			return errors.New("dependency container not initialized")
		}
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		applyGlobalFlags(cmd, cfg)

		logger, err := logging.New(cfg.Logging)
		if err != nil {
			return err
		}
		container.Configure(cfg, logger)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := run()
	if err != nil {
		os.Exit(1)
	}
}

// run executes the command tree and then writes the metrics textfile, so
// failed conversions are counted too
func run() error {
	err := rootCmd.Execute()
	if container != nil {
		_ = container.Logger().Sync()
		if merr := container.WriteMetrics(); merr != nil {
			rootCmd.PrintErrf("Error writing metrics: %v\n", merr)
			if err == nil {
				err = merr
			}
		}
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.config/tinyprs/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "Log format (console or json)")
	rootCmd.PersistentFlags().String("metrics-file", "", "Write Prometheus metrics to this textfile on exit")
}

// resolveConfig loads --config, or the default config file when present.
// Without a file the defaults are used.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	explicit := path != ""
	if !explicit {
		path = config.GetDefaultConfigPath()
	}

	if config.ConfigExists(path) {
		return config.LoadConfig(path)
	}
	if explicit && cmd.Annotations[configOptional] == "" {
		return nil, fmt.Errorf("config file does not exist: %s", path)
	}
	return config.DefaultConfig(), nil
}

func applyGlobalFlags(cmd *cobra.Command, cfg *config.Config) {
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.Logging.Level = v
	}
	if v, _ := cmd.Flags().GetString("log-format"); v != "" {
		cfg.Logging.Format = v
	}
	if v, _ := cmd.Flags().GetString("metrics-file"); v != "" {
		cfg.Metrics.Textfile = v
	}
}

func configPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.GetDefaultConfigPath()
	}
	return path
}
