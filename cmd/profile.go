package cmd

import (
	"fmt"
	"log"
	"sort"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/Rorical/RoriSense/internal/config"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage classifier profiles",
	Long:  `Manage profiles pointing at different sentiment endpoints or backends.`,
}

var listProfilesCmd = &cobra.Command{
	Use:   "list",
	Short: "List all profiles",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadStored()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		fmt.Printf("Active Profile: %s\n\n", cfg.ActiveProfile)
		fmt.Println("Available Profiles:")
		for _, name := range profileNames(cfg, "") {
			profile := cfg.Profiles[name]
			marker := ""
			if name == cfg.ActiveProfile {
				marker = " (active)"
			}
			fmt.Printf("  %s%s\n", name, marker)
			printProfile(profile, "    ")
			fmt.Println()
		}
	},
}

var showProfileCmd = &cobra.Command{
	Use:   "show [profile-name]",
	Short: "Show profile details",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadStored()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		profileName := args[0]
		profile, exists := cfg.Profiles[profileName]
		if !exists {
			log.Fatalf("Profile '%s' does not exist", profileName)
		}

		fmt.Printf("Profile: %s\n", profileName)
		printProfile(profile, "")
	},
}

var addProfileCmd = &cobra.Command{
	Use:   "add [profile-name]",
	Short: "Add a new profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadStored()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		var profileName string
		if len(args) > 0 {
			profileName = args[0]
		} else {
			prompt := promptui.Prompt{
				Label: "Profile name",
			}
			profileName, err = prompt.Run()
			if err != nil {
				log.Fatalf("Prompt failed: %v", err)
			}
		}

		if _, exists := cfg.Profiles[profileName]; exists {
			log.Fatalf("Profile '%s' already exists", profileName)
		}

		profile, err := promptProfile(config.NewDefaultProfile())
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}

		cfg.Profiles[profileName] = profile
		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Profile '%s' added successfully!\n", profileName)
	},
}

var editProfileCmd = &cobra.Command{
	Use:   "edit [profile-name]",
	Short: "Edit an existing profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadStored()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		profileName := selectProfile(cfg, args, "Select profile to edit", "")

		profile, exists := cfg.Profiles[profileName]
		if !exists {
			log.Fatalf("Profile '%s' does not exist", profileName)
		}

		profile, err = promptProfile(profile)
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}

		cfg.Profiles[profileName] = profile
		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Profile '%s' updated successfully!\n", profileName)
	},
}

var deleteProfileCmd = &cobra.Command{
	Use:   "delete [profile-name]",
	Short: "Delete a profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadStored()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		profileName := selectProfile(cfg, args, "Select profile to delete", "")
		if _, exists := cfg.Profiles[profileName]; !exists {
			log.Fatalf("Profile '%s' does not exist", profileName)
		}

		confirmPrompt := promptui.Prompt{
			Label:     fmt.Sprintf("Delete profile '%s'? (y/N)", profileName),
			IsConfirm: true,
		}
		if _, err := confirmPrompt.Run(); err != nil {
			fmt.Println("Deletion cancelled")
			return
		}

		removeProfile(cfg, profileName)

		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Profile '%s' deleted successfully!\n", profileName)
	},
}

var switchProfileCmd = &cobra.Command{
	Use:   "switch [profile-name]",
	Short: "Switch to a different profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadStored()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		if len(args) == 0 && len(profileNames(cfg, cfg.ActiveProfile)) == 0 {
			fmt.Println("No other profiles available to switch to")
			return
		}
		profileName := selectProfile(cfg, args, "Select profile to switch to", cfg.ActiveProfile)

		if _, exists := cfg.Profiles[profileName]; !exists {
			log.Fatalf("Profile '%s' does not exist", profileName)
		}

		cfg.ActiveProfile = profileName
		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Switched to profile '%s'\n", profileName)
	},
}

// removeProfile deletes name, moving the active profile elsewhere and
// recreating the default when nothing is left.
func removeProfile(cfg *config.Config, name string) {
	delete(cfg.Profiles, name)
	if cfg.ActiveProfile != name {
		return
	}
	if remaining := profileNames(cfg, ""); len(remaining) > 0 {
		cfg.ActiveProfile = remaining[0]
		return
	}
	cfg.ActiveProfile = config.DefaultProfile
	cfg.Profiles[config.DefaultProfile] = config.NewDefaultProfile()
}

// profileNames lists profile names in order, leaving out skip.
func profileNames(cfg *config.Config, skip string) []string {
	names := make([]string, 0, len(cfg.Profiles))
	for name := range cfg.Profiles {
		if name != skip {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func selectProfile(cfg *config.Config, args []string, label, skip string) string {
	if len(args) > 0 {
		return args[0]
	}

	names := profileNames(cfg, skip)
	if len(names) == 0 {
		log.Fatalf("No profiles available")
	}

	prompt := promptui.Select{
		Label: label,
		Items: names,
	}
	_, name, err := prompt.Run()
	if err != nil {
		log.Fatalf("Selection failed: %v", err)
	}
	return name
}

func promptProfile(profile config.Profile) (config.Profile, error) {
	backendPrompt := promptui.Select{
		Label: "Backend",
		Items: []string{config.BackendHTTP, config.BackendOpenAI},
	}
	if profile.Backend == config.BackendOpenAI {
		backendPrompt.CursorPos = 1
	}
	_, backend, err := backendPrompt.Run()
	if err != nil {
		return profile, err
	}
	profile.Backend = backend

	if backend == config.BackendHTTP {
		endpointPrompt := promptui.Prompt{
			Label:   "Endpoint",
			Default: profile.Endpoint,
		}
		if profile.Endpoint, err = endpointPrompt.Run(); err != nil {
			return profile, err
		}
		return profile, nil
	}

	apiKeyPrompt := promptui.Prompt{
		Label:   "API Key",
		Default: profile.APIKey,
		Mask:    '*',
	}
	if profile.APIKey, err = apiKeyPrompt.Run(); err != nil {
		return profile, err
	}

	modelPrompt := promptui.Prompt{
		Label:   "Model",
		Default: profile.Model,
	}
	if profile.Model, err = modelPrompt.Run(); err != nil {
		return profile, err
	}

	baseURLPrompt := promptui.Prompt{
		Label:   "Base URL (optional)",
		Default: profile.BaseURL,
	}
	if profile.BaseURL, err = baseURLPrompt.Run(); err != nil {
		return profile, err
	}
	return profile, nil
}

func printProfile(profile config.Profile, indent string) {
	backend := profile.Backend
	if backend == "" {
		backend = config.BackendHTTP
	}
	fmt.Printf("%sBackend: %s\n", indent, backend)
	if backend == config.BackendHTTP {
		fmt.Printf("%sEndpoint: %s\n", indent, profile.Endpoint)
		return
	}
	fmt.Printf("%sModel: %s\n", indent, profile.Model)
	if profile.BaseURL != "" {
		fmt.Printf("%sBase URL: %s\n", indent, profile.BaseURL)
	}
	hasKey := "Not set"
	if profile.APIKey != "" {
		hasKey = "Set (hidden for security)"
	}
	fmt.Printf("%sAPI Key: %s\n", indent, hasKey)
}

func init() {
	// Add subcommands to profile
	profileCmd.AddCommand(listProfilesCmd)
	profileCmd.AddCommand(showProfileCmd)
	profileCmd.AddCommand(addProfileCmd)
	profileCmd.AddCommand(editProfileCmd)
	profileCmd.AddCommand(deleteProfileCmd)
	profileCmd.AddCommand(switchProfileCmd)
}
