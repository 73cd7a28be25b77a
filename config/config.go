// Package config loads the bridge configuration from a YAML file or, when no
// file is present, from the environment. Secret values support ${ENV_VAR}
// expansion and file indirection; they are never logged.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Environment variables consulted when no config file is found.
const (
	EnvUsername    = "BITBUCKET_USERNAME"
	EnvAppPassword = "BITBUCKET_APP_PASSWORD"
	EnvBaseURL     = "BITBUCKET_API_BASE_URL"
)

// Config is the top-level configuration for bitbridge.
type Config struct {
	Bitbucket BitbucketConfig `yaml:"bitbucket"`
}

// BitbucketConfig holds the credentials and endpoint of the remote API.
// Credentials are decided once at process start; the client built from them
// lives for the process lifetime.
type BitbucketConfig struct {
	Username    string `yaml:"username"`     // Inline, ${ENV_VAR}, or file path
	AppPassword string `yaml:"app_password"` // Inline, ${ENV_VAR}, or file path
	BaseURL     string `yaml:"base_url"`     // Empty means the public API root
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// Load reads and parses a configuration file, expanding environment
// variables and resolving secret file paths.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var cfg Config
	if unmarshalErr := yaml.Unmarshal(data, &cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	cfg.Bitbucket.Username = ResolveSecret(cfg.Bitbucket.Username)
	cfg.Bitbucket.AppPassword = ResolveSecret(cfg.Bitbucket.AppPassword)

	if validateErr := validate(&cfg); validateErr != nil {
		return nil, validateErr
	}

	return &cfg, nil
}

// FromEnv builds a configuration from the BITBUCKET_* environment variables.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Bitbucket: BitbucketConfig{
			Username:    os.Getenv(EnvUsername),
			AppPassword: os.Getenv(EnvAppPassword),
			BaseURL:     os.Getenv(EnvBaseURL),
		},
	}
	if validateErr := validate(cfg); validateErr != nil {
		return nil, validateErr
	}
	return cfg, nil
}

// Resolve loads the configuration from the given path, from the first file
// found in the default locations, or from the environment, in that order.
func Resolve(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	if found, err := FindConfigFile(); err == nil {
		logger.Infof("Using config file: %s", found)
		return Load(found)
	}
	return FromEnv()
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".bitbridge.yaml",
		".bitbridge.yml",
		"bitbridge.yaml",
		"bitbridge.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// ResolveSecret expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the secret from the
// file.
func ResolveSecret(raw string) string {
	if raw == "" {
		return raw
	}

	// Expand ${ENV_VAR} references
	resolved := envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})

	// If the resolved value is a path to an existing file, read the secret from it
	if _, statErr := os.Stat(resolved); statErr == nil {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read secret file %q: %v", resolved, readErr)
			return resolved
		}
		return strings.TrimSpace(string(data))
	}

	return resolved
}

// validate checks for required configuration values.
func validate(cfg *Config) error {
	if cfg.Bitbucket.Username == "" {
		return fmt.Errorf(
			"bitbucket.username is required (set inline, via ${ENV_VAR}, or %s)",
			EnvUsername,
		)
	}
	if cfg.Bitbucket.AppPassword == "" {
		return fmt.Errorf(
			"bitbucket.app_password is required (set inline, via ${ENV_VAR}, or %s)",
			EnvAppPassword,
		)
	}
	return nil
}
