package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/sofic/sofic/internal/baseline"
)

// Config represents the sofic configuration
type Config struct {
	Root         string `mapstructure:"root" json:"root,omitempty"`
	Format       string `mapstructure:"format" json:"format"`
	Output       string `mapstructure:"output" json:"output,omitempty"`
	Quiet        bool   `mapstructure:"quiet" json:"quiet"`
	Verbose      bool   `mapstructure:"verbose" json:"verbose"`
	NoColor      bool   `mapstructure:"noColor" json:"noColor"`
	Concurrency  int    `mapstructure:"concurrency" json:"concurrency"`
	Baseline     bool   `mapstructure:"baseline" json:"baseline"`
	BaselinePath string `mapstructure:"baselinePath" json:"baselinePath"`

	// CreateBaseline is a one-off action and is never saved.
	CreateBaseline bool `mapstructure:"createBaseline" json:"-"`
	// Home is the directory that holds the user config store (~/.sofic).
	Home string `mapstructure:"home" json:"-"`
}

// configFiles are tried in order in the working directory.
var configFiles = []string{".soficrc.json", ".soficrc.yaml", ".soficrc.yml"}

// LoadConfig loads configuration from defaults, an optional config file,
// SOFIC_* environment variables and any flags already bound to viper.
// An explicit configFile must exist; the implicit .soficrc files are optional.
func LoadConfig(configFile, rootPath string) (*Config, error) {
	homeDir, _ := os.UserHomeDir()
	viper.SetDefault("root", ".")
	viper.SetDefault("format", "console")
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("noColor", false)
	viper.SetDefault("concurrency", 1)
	viper.SetDefault("baseline", false)
	viper.SetDefault("createBaseline", false)
	viper.SetDefault("baselinePath", baseline.DefaultFileName)
	viper.SetDefault("home", homeDir)

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFile, err)
		}
	} else {
		for _, path := range configFiles {
			if _, err := os.Stat(path); err != nil {
				continue
			}
			viper.SetConfigFile(path)
			if err := viper.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file %s: %w", path, err)
			}
			break
		}
	}

	viper.SetEnvPrefix("SOFIC")
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if rootPath != "" {
		config.Root = rootPath
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	switch config.Format {
	case "console", "json", "markdown":
	default:
		return fmt.Errorf("invalid format: %s. Must be 'console', 'json', or 'markdown'", config.Format)
	}

	if config.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1")
	}

	if config.Format == "console" && config.Output != "" {
		return fmt.Errorf("output file is only supported for 'json' and 'markdown' formats")
	}

	if config.Baseline && config.CreateBaseline {
		return fmt.Errorf("--baseline and --create-baseline are mutually exclusive")
	}

	if config.BaselinePath == "" {
		return fmt.Errorf("baseline path must not be empty")
	}

	return nil
}

// SaveConfig writes config as JSON that LoadConfig can read back, e.g. as
// .soficrc.json. Home and CreateBaseline are machine or run specific and are
// left out.
func SaveConfig(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	jsonData, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	jsonData = append(jsonData, '\n')
	if err := os.WriteFile(path, jsonData, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}
