package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

// OperatingTemplate paints recurring operating hours onto a new project's
// grid. The rrule picks the days, the hour range picks the window.
type OperatingTemplate struct {
	RRule     string `yaml:"rrule" validate:"required"`
	StartHour int    `yaml:"startHour" validate:"min=0,max=23"`
	EndHour   int    `yaml:"endHour" validate:"min=1,max=24"`
}

// Config represents the application configuration
type Config struct {
	DatabaseURL        string              `yaml:"databaseURL" validate:"required"`
	DefaultTargetHours float64             `yaml:"defaultTargetHours,omitempty"`
	DefaultMaxHours    float64             `yaml:"defaultMaxHours,omitempty"`
	OperatingTemplates []OperatingTemplate `yaml:"operatingTemplates,omitempty" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from fudashi_config.yaml.
// It looks for the config file in the current directory first, then in the
// user's home directory.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.DefaultTargetHours <= 0 {
		cfg.DefaultTargetHours = 40
	}
	if cfg.DefaultMaxHours <= 0 {
		cfg.DefaultMaxHours = 40
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks template syntax
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, tmpl := range cfg.OperatingTemplates {
		if _, err := rrule.StrToRRule(tmpl.RRule); err != nil {
			return fmt.Errorf("invalid rrule in operatingTemplates[%d]: %w", i, err)
		}
		if tmpl.EndHour <= tmpl.StartHour {
			return fmt.Errorf("operatingTemplates[%d]: endHour %d must be after startHour %d", i, tmpl.EndHour, tmpl.StartHour)
		}
	}

	return nil
}

// findConfigFile searches for fudashi_config.yaml in current directory and home directory
func findConfigFile() (string, error) {
	configFileName := "fudashi_config.yaml"

	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
