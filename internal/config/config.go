package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"

	"github.com/subosito/gotenv"
	"go-simpler.org/env"
)

const (
	BackendHTTP   = "http"
	BackendOpenAI = "openai"

	DefaultEndpoint = "http://localhost:5001/predict"
	DefaultModel    = "gpt-4o-mini"
	DefaultProfile  = "default"
)

type Profile struct {
	Endpoint string `json:"endpoint,omitempty"`
	Backend  string `json:"backend,omitempty"`
	APIKey   string `json:"api_key,omitempty"`
	BaseURL  string `json:"base_url,omitempty"`
	Model    string `json:"model,omitempty"`
}

type Config struct {
	Profiles       map[string]Profile `json:"profiles"`
	ActiveProfile  string             `json:"active_profile"`
	LogLevel       string             `json:"log_level,omitempty"`
	LogFile        string             `json:"log_file,omitempty"`
	currentProfile *Profile
}

// Overrides are settings taken from the environment or the command line.
// Empty fields leave the profile value alone.
type Overrides struct {
	Profile  string `env:"RORISENSE_PROFILE"`
	Endpoint string `env:"RORISENSE_ENDPOINT"`
	Backend  string `env:"RORISENSE_BACKEND"`
	APIKey   string `env:"RORISENSE_API_KEY"`
	BaseURL  string `env:"RORISENSE_BASE_URL"`
	Model    string `env:"RORISENSE_MODEL"`
	LogLevel string `env:"RORISENSE_LOG_LEVEL"`
	LogFile  string `env:"RORISENSE_LOG_FILE"`
}

// LoadEnvFile loads a .env file from the working directory if there is one.
func LoadEnvFile() {
	if err := gotenv.Load(); err != nil {
		slog.Debug("No .env file found, using OS environment")
	}
}

// LoadConfig reads the config file, creating a default one on first run,
// and applies environment overrides.
func LoadConfig() (*Config, error) {
	return Load(Overrides{})
}

// Load is LoadConfig with command-line overrides, which win over the
// environment.
func Load(flags Overrides) (*Config, error) {
	config, err := LoadStored()
	if err != nil {
		return nil, err
	}

	var overrides Overrides
	if err := env.Load(&overrides, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}
	overrides = overrides.Merge(flags)

	if overrides.Profile != "" {
		if _, exists := config.Profiles[overrides.Profile]; !exists {
			return nil, fmt.Errorf("profile '%s' does not exist", overrides.Profile)
		}
		config.ActiveProfile = overrides.Profile
	}

	if err := config.setCurrentProfile(); err != nil {
		return nil, fmt.Errorf("failed to set current profile: %w", err)
	}
	config.Apply(overrides)

	return config, nil
}

// LoadStored reads the config file as saved, without environment or flag
// overrides. Profile management edits this view so a later Save never
// persists a temporary override.
func LoadStored() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	if err := ensureConfigDir(configPath); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	config, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return config, nil
}

// Merge returns o with every non-empty field of top laid over it.
func (o Overrides) Merge(top Overrides) Overrides {
	pick := func(base, over string) string {
		if over != "" {
			return over
		}
		return base
	}
	return Overrides{
		Profile:  pick(o.Profile, top.Profile),
		Endpoint: pick(o.Endpoint, top.Endpoint),
		Backend:  pick(o.Backend, top.Backend),
		APIKey:   pick(o.APIKey, top.APIKey),
		BaseURL:  pick(o.BaseURL, top.BaseURL),
		Model:    pick(o.Model, top.Model),
		LogLevel: pick(o.LogLevel, top.LogLevel),
		LogFile:  pick(o.LogFile, top.LogFile),
	}
}

// Apply layers non-empty overrides on top of the active profile. It does not
// touch the stored profiles, so a later Save keeps the file unchanged.
func (c *Config) Apply(o Overrides) {
	if c.currentProfile == nil {
		c.currentProfile = &Profile{}
	}
	p := *c.currentProfile
	if o.Endpoint != "" {
		p.Endpoint = o.Endpoint
	}
	if o.Backend != "" {
		p.Backend = o.Backend
	}
	if o.APIKey != "" {
		p.APIKey = o.APIKey
	}
	if o.BaseURL != "" {
		p.BaseURL = o.BaseURL
	}
	if o.Model != "" {
		p.Model = o.Model
	}
	c.currentProfile = &p

	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	if o.LogFile != "" {
		c.LogFile = o.LogFile
	}
}

// Validate checks that the active profile can reach a classifier.
func (c *Config) Validate() error {
	switch c.GetBackend() {
	case BackendHTTP:
		u, err := url.Parse(c.GetEndpoint())
		if err != nil {
			return fmt.Errorf("invalid endpoint %q: %w", c.GetEndpoint(), err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("endpoint %q must be an http or https url", c.GetEndpoint())
		}
		if u.Host == "" {
			return fmt.Errorf("endpoint %q has no host", c.GetEndpoint())
		}
	case BackendOpenAI:
		if c.GetAPIKey() == "" {
			return fmt.Errorf("backend %q needs an API key", BackendOpenAI)
		}
	default:
		return fmt.Errorf("unknown backend %q (want %q or %q)", c.GetBackend(), BackendHTTP, BackendOpenAI)
	}
	return nil
}

func (c *Config) GetEndpoint() string {
	if c.currentProfile == nil || c.currentProfile.Endpoint == "" {
		return DefaultEndpoint
	}
	return c.currentProfile.Endpoint
}

func (c *Config) GetBackend() string {
	if c.currentProfile == nil || c.currentProfile.Backend == "" {
		return BackendHTTP
	}
	return c.currentProfile.Backend
}

func (c *Config) GetAPIKey() string {
	if c.currentProfile == nil {
		return ""
	}
	return c.currentProfile.APIKey
}

func (c *Config) GetModel() string {
	if c.currentProfile == nil || c.currentProfile.Model == "" {
		return DefaultModel
	}
	return c.currentProfile.Model
}

func (c *Config) GetBaseURL() string {
	if c.currentProfile == nil {
		return ""
	}
	return c.currentProfile.BaseURL
}

func (c *Config) GetLogLevel() string {
	if c.LogLevel == "" {
		return "info"
	}
	return c.LogLevel
}

// GetLogFile is where the TUI writes its log.
func (c *Config) GetLogFile() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	configPath, err := getConfigPath()
	if err != nil {
		return ""
	}
	return filepath.Join(filepath.Dir(configPath), "rorisense.log")
}

// Path is the location of the config file.
func Path() (string, error) {
	return getConfigPath()
}

func getConfigPath() (string, error) {
	var configDir string

	// Use RORISENSE_HOME if set, otherwise use user's home directory
	if home := os.Getenv("RORISENSE_HOME"); home != "" {
		configDir = home
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = homeDir
	}

	return filepath.Join(configDir, ".rorisense", "config.json"), nil
}

func ensureConfigDir(configPath string) error {
	return os.MkdirAll(filepath.Dir(configPath), 0755)
}

func loadConfigFile(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

// NewDefaultProfile is the profile written on first run.
func NewDefaultProfile() Profile {
	return Profile{
		Endpoint: DefaultEndpoint,
		Backend:  BackendHTTP,
		Model:    DefaultModel,
	}
}

func createDefaultConfig(configPath string) (*Config, error) {
	config := &Config{
		Profiles: map[string]Profile{
			DefaultProfile: NewDefaultProfile(),
		},
		ActiveProfile: DefaultProfile,
	}

	if err := saveConfig(config, configPath); err != nil {
		return nil, err
	}

	return config, nil
}

func saveConfig(config *Config, configPath string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	return saveConfig(c, configPath)
}

func (c *Config) setCurrentProfile() error {
	if len(c.Profiles) == 0 {
		return fmt.Errorf("no profiles defined")
	}

	profile, exists := c.Profiles[c.ActiveProfile]
	if !exists {
		// If active profile doesn't exist, try to use the first available profile
		for name, p := range c.Profiles {
			c.ActiveProfile = name
			profile = p
			exists = true
			break
		}
	}

	if !exists {
		return fmt.Errorf("no valid profiles found")
	}

	c.currentProfile = &profile
	return nil
}
