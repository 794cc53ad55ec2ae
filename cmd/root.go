package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/Rorical/RoriSense/internal/app"
	"github.com/Rorical/RoriSense/internal/config"
)

var overrides config.Overrides

var rootCmd = &cobra.Command{
	Use:   "rorisense",
	Short: "Terminal sentiment analyzer",
	Long:  `RoriSense sends text to a sentiment classification endpoint and shows the label, confidence and probabilities.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Default behavior: run the interactive analyzer
		cfg, err := loadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		application, err := app.NewApplication(cfg)
		if err != nil {
			log.Fatalf("Failed to create application: %v", err)
		}
		defer application.Stop()

		if err := application.Start(); err != nil {
			log.Fatalf("Application error: %v", err)
		}
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Printf("Command execution error: %v", err)
		stop()
		os.Exit(1)
	}
}

// loadConfig reads the config file, .env, environment and flags in that
// order of increasing precedence.
func loadConfig() (*config.Config, error) {
	config.LoadEnvFile()
	return config.Load(overrides)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&overrides.Profile, "profile", "", "profile to use instead of the active one")
	flags.StringVar(&overrides.Endpoint, "endpoint", "", "sentiment endpoint URL (e.g. http://localhost:5001/predict)")
	flags.StringVar(&overrides.Backend, "backend", "", `classifier backend: "http" or "openai"`)
	flags.StringVar(&overrides.Model, "model", "", "model name for the openai backend")
	flags.StringVar(&overrides.BaseURL, "base-url", "", "API base URL for the openai backend")
	flags.StringVar(&overrides.LogLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&overrides.LogFile, "log-file", "", "file the interactive UI logs to")

	// Add subcommands
	rootCmd.AddCommand(profileCmd)
}
