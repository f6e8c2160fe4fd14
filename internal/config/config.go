package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/caringcompass/carematch/pkg/domain"
)

// RecurrenceOverride replaces the built-in expansion of a task frequency
// with an explicit recurrence rule.
type RecurrenceOverride struct {
	Frequency string `yaml:"frequency" validate:"required"`
	RRule     string `yaml:"rrule" validate:"required"`
}

// MatchingConfig tunes the ranking weights of the matching engine. Weights
// reorder results but never change who is eligible.
type MatchingConfig struct {
	PreferredSkillsWeight float64 `yaml:"preferredSkillsWeight" validate:"omitempty,min=0"`
	TravelWeight          float64 `yaml:"travelWeight" validate:"omitempty,min=0"`
}

// GeocoderConfig points at the external geocoding service and its cache.
type GeocoderConfig struct {
	BaseURL       string `yaml:"baseURL" validate:"required,url"`
	RedisAddr     string `yaml:"redisAddr,omitempty"`
	RedisPassword string `yaml:"redisPassword,omitempty"`
	CacheTTLHours int    `yaml:"cacheTTLHours,omitempty" validate:"omitempty,min=1"`
}

// Config represents the application configuration
type Config struct {
	DatabaseURL string         `yaml:"databaseURL" validate:"required"`
	Geocoder    GeocoderConfig `yaml:"geocoder"`
	Matching    MatchingConfig `yaml:"matching,omitempty"`

	// CredentialPolicy maps a task category to the credential types that
	// satisfy it, any one of which suffices. Categories absent from the map
	// are ungated.
	CredentialPolicy map[string][]string `yaml:"credentialPolicy,omitempty"`

	RecurrenceOverrides []RecurrenceOverride `yaml:"recurrenceOverrides,omitempty" validate:"dive"`

	DefaultVisitDurationMinutes int `yaml:"defaultVisitDurationMinutes,omitempty" validate:"omitempty,min=15"`
	InviteTTLDays               int `yaml:"inviteTTLDays,omitempty" validate:"omitempty,min=1"`
	CredentialAlertDays         int `yaml:"credentialAlertDays,omitempty" validate:"omitempty,min=1"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from carematch.yaml
// It looks for the config file in the current directory first, then in the user's home directory
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

	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Matching.PreferredSkillsWeight == 0 {
		cfg.Matching.PreferredSkillsWeight = 3.0
	}
	if cfg.Matching.TravelWeight == 0 {
		cfg.Matching.TravelWeight = 1.0
	}
	if cfg.Geocoder.CacheTTLHours == 0 {
		cfg.Geocoder.CacheTTLHours = 24
	}
	if cfg.DefaultVisitDurationMinutes == 0 {
		cfg.DefaultVisitDurationMinutes = 60
	}
	if cfg.InviteTTLDays == 0 {
		cfg.InviteTTLDays = 7
	}
	if cfg.CredentialAlertDays == 0 {
		cfg.CredentialAlertDays = 30
	}
}

// Validate validates the configuration struct, the credential policy enums
// and rrule syntax for each recurrence override.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for category, types := range cfg.CredentialPolicy {
		if !domain.TaskCategory(category).Valid() {
			return fmt.Errorf("invalid task category %q in credentialPolicy", category)
		}
		for _, t := range types {
			if !domain.CredentialType(t).Valid() {
				return fmt.Errorf("invalid credential type %q in credentialPolicy[%s]", t, category)
			}
		}
	}

	for i, override := range cfg.RecurrenceOverrides {
		if !domain.TaskFrequency(override.Frequency).Valid() {
			return fmt.Errorf("invalid frequency in recurrenceOverrides[%d]: %q", i, override.Frequency)
		}
		if _, err := rrule.StrToRRule(override.RRule); err != nil {
			return fmt.Errorf("invalid rrule in recurrenceOverrides[%d]: %w", i, err)
		}
	}

	return nil
}

// DomainCredentialPolicy converts the policy map to domain types.
func (c *Config) DomainCredentialPolicy() map[domain.TaskCategory][]domain.CredentialType {
	if len(c.CredentialPolicy) == 0 {
		return nil
	}
	policy := make(map[domain.TaskCategory][]domain.CredentialType, len(c.CredentialPolicy))
	for category, types := range c.CredentialPolicy {
		creds := make([]domain.CredentialType, len(types))
		for i, t := range types {
			creds[i] = domain.CredentialType(t)
		}
		policy[domain.TaskCategory(category)] = creds
	}
	return policy
}

// DefaultVisitDuration returns the configured visit length.
func (c *Config) DefaultVisitDuration() time.Duration {
	return time.Duration(c.DefaultVisitDurationMinutes) * time.Minute
}

// InviteTTL returns the configured invite lifetime.
func (c *Config) InviteTTL() time.Duration {
	return time.Duration(c.InviteTTLDays) * 24 * time.Hour
}

// GeocodeCacheTTL returns the configured geocode cache lifetime.
func (c *Config) GeocodeCacheTTL() time.Duration {
	return time.Duration(c.Geocoder.CacheTTLHours) * time.Hour
}

// findConfigFile searches for carematch.yaml in current directory and home directory
func findConfigFile() (string, error) {
	configFileName := "carematch.yaml"

	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
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
