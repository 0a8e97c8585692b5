package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

var AppFs = afero.NewOsFs()

// Config holds the application configuration
type Config struct {
	OpenAIAPIKey  string
	Provider      string
	Model         string
	RootDir       string
	MaxToolRounds int
	TraceEnabled  bool
	TraceProject  string
}

// LoadConfig loads configuration from config files, .env files, and
// environment variables, in increasing order of priority.
func LoadConfig() (*Config, error) {
	// Find home directory
	home, err := homedir.Dir()
	if err != nil {
		return nil, err
	}

	// Set config file paths
	viper.SetConfigName(".mentat")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath(home)
	viper.AddConfigPath(filepath.Join(home, ".config", "mentat"))

	// Set environment variable prefix
	viper.SetEnvPrefix("MENTAT")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("provider", "openai")
	viper.SetDefault("model", "gpt-4o")
	viper.SetDefault("root_dir", ".")
	viper.SetDefault("max_tool_rounds", 15)
	viper.SetDefault("trace_project", "mentat")

	// Try to read config file (ignore if not found)
	_ = viper.ReadInConfig()

	// Load .env file if it exists
	if _, err := AppFs.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}

	// Load .env.local if it exists (higher priority)
	if _, err := AppFs.Stat(".env.local"); err == nil {
		_ = godotenv.Overload(".env.local")
	}

	cfg := &Config{
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		Provider:      viper.GetString("provider"),
		Model:         viper.GetString("model"),
		RootDir:       viper.GetString("root_dir"),
		MaxToolRounds: viper.GetInt("max_tool_rounds"),
		TraceEnabled:  viper.GetBool("trace"),
		TraceProject:  viper.GetString("trace_project"),
	}

	return cfg, nil
}

// Validate checks that the configuration is usable for talking to a model
// provider.
func (c *Config) Validate() error {
	if c.OpenAIAPIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is not set")
	}
	if c.Model == "" {
		return fmt.Errorf("model is not set")
	}
	if c.MaxToolRounds <= 0 {
		return fmt.Errorf("max_tool_rounds must be positive, got %d", c.MaxToolRounds)
	}
	return nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config) error {
	viper.Set("provider", cfg.Provider)
	viper.Set("model", cfg.Model)
	viper.Set("root_dir", cfg.RootDir)
	viper.Set("max_tool_rounds", cfg.MaxToolRounds)
	viper.Set("trace", cfg.TraceEnabled)
	viper.Set("trace_project", cfg.TraceProject)

	home, err := homedir.Dir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(home, ".config", "mentat")
	if err := AppFs.MkdirAll(configPath, 0755); err != nil {
		return err
	}

	configFile := filepath.Join(configPath, ".mentat.yaml")
	return viper.WriteConfigAs(configFile)
}
