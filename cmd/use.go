package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/Rorical/RoriSense/internal/app"
	"github.com/Rorical/RoriSense/internal/config"
)

var useCmd = &cobra.Command{
	Use:   "use [profile-name]",
	Short: "Switch to a profile and start the analyzer",
	Long:  `Switch to the specified profile and immediately start the interactive analyzer.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		profileName := args[0]

		cfg, err := config.LoadStored()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		if _, exists := cfg.Profiles[profileName]; !exists {
			log.Fatalf("Profile '%s' does not exist", profileName)
		}

		// Switch to the profile
		cfg.ActiveProfile = profileName
		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		// Reload so the new profile and any overrides take effect
		overrides.Profile = profileName
		cfg, err = loadConfig()
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

func init() {
	rootCmd.AddCommand(useCmd)
}
