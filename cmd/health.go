package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rorical/RoriSense/internal/app"
	"github.com/Rorical/RoriSense/internal/client"
	"github.com/Rorical/RoriSense/internal/config"
	"github.com/Rorical/RoriSense/internal/logging"
)

var (
	healthOutput string
	healthURL    string
)

var healthCmd = &cobra.Command{
	Use:          "health",
	Short:        "Check that the sentiment endpoint is up and has its model loaded",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateFormat(healthOutput); err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cfg.GetBackend() != config.BackendHTTP {
			return fmt.Errorf("health checks need the %q backend, profile uses %q", config.BackendHTTP, cfg.GetBackend())
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		logger := logging.InitLogger(cliLogLevel(cfg))

		opts := []client.Option{
			client.WithLogger(logger),
			client.WithUserAgent("rorisense/" + app.Version),
		}
		if healthURL != "" {
			opts = append(opts, client.WithHealthURL(healthURL))
		}
		c := client.NewHTTPClient(cfg.GetEndpoint(), opts...)

		status, err := c.Health(cmd.Context())
		if err != nil {
			return err
		}

		if err := writeHealth(cmd.OutOrStdout(), c.HealthURL(), status, healthOutput); err != nil {
			return err
		}
		if !status.Healthy() {
			return errors.New("endpoint is not ready to serve predictions")
		}
		return nil
	},
}

func init() {
	healthCmd.Flags().StringVarP(&healthOutput, "output", "o", formatText, "output format: text, json or yaml")
	healthCmd.Flags().StringVar(&healthURL, "url", "", "health URL (defaults to the endpoint with its path replaced by /health)")
	rootCmd.AddCommand(healthCmd)
}
