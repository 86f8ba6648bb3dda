/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ssargent/tinyprs/pkg/api"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start the tinyprs REST API server.

The server decodes, encodes and verifies presets over HTTP and exposes the
preset archive. Requests must carry X-API-Key when an API key is configured.

Examples:
  tinyprs serve
  tinyprs serve --api-key=mysecretkey --port=8080 --bind=0.0.0.0`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := container.Config()
		if cmd.Flags().Changed("port") {
			cfg.Server.Port, _ = cmd.Flags().GetInt("port")
		}
		if v, _ := cmd.Flags().GetString("bind"); v != "" {
			cfg.Server.Bind = v
		}
		if v, _ := cmd.Flags().GetString("api-key"); v != "" {
			cfg.Server.APIKey = v
		}

		archive, err := container.OpenArchive()
		if err != nil {
			return err
		}
		defer archive.Close()

		server, err := container.APIServer(archive)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger := container.Logger()
		if cfg.Server.APIKey == "" {
			logger.Warn("API key not configured, requests are not authenticated")
		}
		serverConfig := container.ServerConfig()
		logger.Info("starting tinyprs REST API server",
			zap.String("bind", serverConfig.Bind),
			zap.Int("port", serverConfig.Port),
			zap.String("archive", cfg.Archive.DataDir))

		starter := container.GetServerFactory().CreateServerStarter()
		if err := starter.StartServer(ctx, api.NewRouter(server, container.Registry()), serverConfig); err != nil {
			return err
		}
		logger.Info("server stopped")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	serveCmd.Flags().String("bind", "", "Address to bind to")
	serveCmd.Flags().String("api-key", "", "API key for authentication")
}
