/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ssargent/tinyprs/pkg/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a tinyprs configuration",
	Long: `Create a configuration file with defaults and a generated API key.

This command will:
- Write the configuration file with secure permissions
- Generate an API key for the REST API server
- Set the archive data directory

Examples:
  tinyprs init
  tinyprs init --config ./tinyprs.yaml --data-dir ./archive --force`,
	Annotations: map[string]string{configOptional: "true"},
	Args:        cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, _ := cmd.Flags().GetString("data-dir")
		force, _ := cmd.Flags().GetBool("force")
		path := configPath(cmd)

		if config.ConfigExists(path) && !force {
			cmd.Printf("Configuration already exists at %s. Use --force to overwrite.\n", path)
			return nil
		}

		cfg, err := config.BootstrapConfig(path, dataDir)
		if err != nil {
			return err
		}

		cmd.Printf("✅ Configuration written to %s\n", path)
		cmd.Printf("Archive directory: %s\n", cfg.Archive.DataDir)
		cmd.Printf("API key: %s\n", cfg.Server.APIKey)
		cmd.Printf("\nYou can now start the server with:\n")
		cmd.Printf("  tinyprs serve --config %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().String("data-dir", "", "Archive data directory (default ./archive)")
	initCmd.Flags().Bool("force", false, "Overwrite an existing configuration")
}
