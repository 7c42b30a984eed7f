package slogtint

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads a Config from a YAML file, or from a TOML file if the name ends in ".toml".
func LoadConfig(cfgFile string) (*Config, error) {
	data, err := os.ReadFile(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("error reading config file (%s): %w", cfgFile, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(cfgFile)) {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, &ConfigurationError{Key: cfgFile, Err: fmt.Errorf("error unmarshalling config file: %w", err)}
	}

	return &cfg, nil
}

// LoadProfiles returns base merged with the profiles of the config. A config profile replaces a base
// profile of the same name as a whole.
func (c Config) LoadProfiles(base Profiles) (Profiles, error) {
	ps := base.Clone()
	for name, raw := range c.Profiles {
		p, err := NormalizeProfile(raw)
		if err != nil {
			var cerr *ConfigurationError
			if errors.As(err, &cerr) {
				cerr.Key = name + "." + cerr.Key
			}
			return nil, err
		}
		ps[name] = p
	}
	return ps, nil
}

// ResetSequence returns the configured reset sequence, or fallback if the config does not set one.
func (c Config) ResetSequence(fallback string) (string, error) {
	if c.Reset == nil {
		return fallback, nil
	}
	reset, err := ParseStyle(*c.Reset)
	if err != nil {
		var cerr *ConfigurationError
		if errors.As(err, &cerr) {
			cerr.Key = "reset"
		}
		return "", err
	}
	return reset, nil
}
